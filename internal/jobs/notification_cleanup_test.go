package jobs

import (
	"testing"
	"time"

	"github.com/riverqueue/river"
)

func TestNotificationCleanupArgsKind(t *testing.T) {
	t.Parallel()

	if got := (NotificationCleanupArgs{}).Kind(); got != "notification_cleanup" {
		t.Fatalf("Kind() = %q, want %q", got, "notification_cleanup")
	}
}

func TestNotificationCleanupInsertOpts(t *testing.T) {
	t.Parallel()

	opts := NotificationCleanupArgs{}.InsertOpts()

	if opts.Queue != river.QueueDefault {
		t.Errorf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Errorf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Errorf("UniqueOpts.ByPeriod = %v, want 24h", opts.UniqueOpts.ByPeriod)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Error("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Error("UniqueOpts.ByArgs = false, want true")
	}
}

func TestNewNotificationCleanupWorkerRetention(t *testing.T) {
	t.Parallel()

	w := NewNotificationCleanupWorker(nil, 0)
	if w.retention != DefaultNotificationRetention {
		t.Errorf("retention = %v, want default %v", w.retention, DefaultNotificationRetention)
	}

	w = NewNotificationCleanupWorker(nil, 30*24*time.Hour)
	if w.retention != 30*24*time.Hour {
		t.Errorf("retention = %v, want 720h", w.retention)
	}
}

func TestNotificationCleanupPeriodicJob(t *testing.T) {
	t.Parallel()

	if job := NotificationCleanupPeriodicJob(); job == nil {
		t.Fatal("NotificationCleanupPeriodicJob() returned nil")
	}
}
