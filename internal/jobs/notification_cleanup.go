package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/notification"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
)

// DefaultNotificationRetention is used when no retention is configured.
const DefaultNotificationRetention = 90 * 24 * time.Hour

// NotificationCleanupArgs are the arguments for the inbox cleanup job.
type NotificationCleanupArgs struct {
	// Retention overrides the configured retention when positive.
	Retention time.Duration `json:"retention,omitempty"`
}

// Kind implements river.JobArgs.
func (NotificationCleanupArgs) Kind() string { return "notification_cleanup" }

// InsertOpts ensures at most one cleanup is enqueued per day.
func (NotificationCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// NotificationCleanupWorker deletes inbox rows older than the
// retention window.
type NotificationCleanupWorker struct {
	river.WorkerDefaults[NotificationCleanupArgs]

	sender    *notification.InboxSender
	retention time.Duration
}

// NewNotificationCleanupWorker creates the worker. Non-positive
// retention falls back to the 90-day default.
func NewNotificationCleanupWorker(sender *notification.InboxSender, retention time.Duration) *NotificationCleanupWorker {
	if retention <= 0 {
		retention = DefaultNotificationRetention
	}
	return &NotificationCleanupWorker{sender: sender, retention: retention}
}

// Work implements river.Worker.
func (w *NotificationCleanupWorker) Work(ctx context.Context, job *river.Job[NotificationCleanupArgs]) error {
	retention := w.retention
	if job.Args.Retention > 0 {
		retention = job.Args.Retention
	}
	cutoff := time.Now().Add(-retention)

	deleted, err := w.sender.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("delete old notifications: %w", err)
	}

	logger.Info("Notification cleanup finished",
		zap.Int("deleted", deleted),
		zap.Time("cutoff", cutoff),
	)
	return nil
}

// NotificationCleanupPeriodicJob builds the periodic job definition,
// running daily.
func NotificationCleanupPeriodicJob() *river.PeriodicJob {
	return river.NewPeriodicJob(
		river.PeriodicInterval(24*time.Hour),
		func() (river.JobArgs, *river.InsertOpts) {
			return NotificationCleanupArgs{}, nil
		},
		&river.PeriodicJobOpts{RunOnStart: false},
	)
}
