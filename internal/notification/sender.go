// Package notification delivers in-app inbox notifications and wires
// the triggers that produce them from domain events.
package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	entnotification "github.com/sergioLiiD/yaavs-v5-sub002/ent/notification"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
)

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Message is one notification to deliver.
type Message struct {
	RecipientID  string
	Kind         string
	Title        string
	Body         string
	ResourceType string
	ResourceID   string
}

// InboxSender stores notifications in the database for in-app
// consumption. Failures are logged and swallowed; a missed inbox row
// must never fail the operation that produced it.
type InboxSender struct {
	client *ent.Client
}

// NewInboxSender creates an InboxSender.
func NewInboxSender(client *ent.Client) *InboxSender {
	return &InboxSender{client: client}
}

// Send stores one notification.
func (s *InboxSender) Send(ctx context.Context, msg Message) {
	_, err := s.client.Notification.Create().
		SetID(newID()).
		SetRecipientID(msg.RecipientID).
		SetKind(entnotification.Kind(msg.Kind)).
		SetTitle(msg.Title).
		SetMessage(msg.Body).
		SetResourceType(msg.ResourceType).
		SetResourceID(msg.ResourceID).
		Save(ctx)
	if err != nil {
		logger.Error("Notification write failed",
			zap.String("recipient_id", msg.RecipientID),
			zap.String("kind", msg.Kind),
			zap.Error(err),
		)
	}
}

// ListUnread returns a recipient's unread notifications, newest first.
func (s *InboxSender) ListUnread(ctx context.Context, recipientID string, limit int) ([]*ent.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.client.Notification.Query().
		Where(
			entnotification.RecipientID(recipientID),
			entnotification.Read(false),
		).
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// MarkRead marks a recipient's notifications as read.
func (s *InboxSender) MarkRead(ctx context.Context, recipientID string, ids []string) (int, error) {
	return s.client.Notification.Update().
		Where(
			entnotification.RecipientID(recipientID),
			entnotification.IDIn(ids...),
			entnotification.Read(false),
		).
		SetRead(true).
		Save(ctx)
}

// DeleteOlderThan removes notifications created before the cutoff.
// Called by the periodic cleanup job.
func (s *InboxSender) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	return s.client.Notification.Delete().
		Where(entnotification.CreatedAtLT(cutoff)).
		Exec(ctx)
}
