// Package audit persists append-only audit records for every
// state-changing operation. Records are written off the request path;
// an audit failure is logged loudly but never fails the operation it
// describes.
package audit

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/auditlog"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/worker"
)

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Logger writes audit records.
type Logger struct {
	client *ent.Client
	pools  *worker.Pools
}

// NewLogger creates an audit Logger.
func NewLogger(client *ent.Client, pools *worker.Pools) *Logger {
	return &Logger{client: client, pools: pools}
}

// Record writes one audit entry asynchronously.
func (l *Logger) Record(action, resourceType, resourceID, actor string, details map[string]interface{}) {
	err := l.pools.SubmitDetached(func(ctx context.Context) {
		create := l.client.AuditLog.Create().
			SetID(newID()).
			SetAction(action).
			SetResourceType(resourceType).
			SetResourceID(resourceID).
			SetActor(actor)
		if len(details) > 0 {
			create.SetDetails(details)
		}
		if _, err := create.Save(ctx); err != nil {
			logger.Error("Audit record write failed",
				zap.String("action", action),
				zap.String("resource_id", resourceID),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		logger.Error("Audit record dropped",
			zap.String("action", action),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
	}
}

// QueryFilter narrows an audit listing.
type QueryFilter struct {
	ResourceType string
	ResourceID   string
	Actor        string
	Limit        int
}

// Query returns audit entries matching the filter, newest first.
func (l *Logger) Query(ctx context.Context, f QueryFilter) ([]*ent.AuditLog, error) {
	q := l.client.AuditLog.Query()
	if f.ResourceType != "" {
		q = q.Where(auditlog.ResourceType(f.ResourceType))
	}
	if f.ResourceID != "" {
		q = q.Where(auditlog.ResourceID(f.ResourceID))
	}
	if f.Actor != "" {
		q = q.Where(auditlog.Actor(f.Actor))
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return q.Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
