package jobs

import (
	"testing"
	"time"

	"github.com/riverqueue/river"
)

func TestLowStockScanArgsKind(t *testing.T) {
	t.Parallel()

	if got := (LowStockScanArgs{}).Kind(); got != "low_stock_scan" {
		t.Fatalf("Kind() = %q, want %q", got, "low_stock_scan")
	}
}

func TestLowStockScanInsertOpts(t *testing.T) {
	t.Parallel()

	opts := LowStockScanArgs{}.InsertOpts()

	if opts.Queue != river.QueueDefault {
		t.Errorf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Errorf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Hour {
		t.Errorf("UniqueOpts.ByPeriod = %v, want 1h", opts.UniqueOpts.ByPeriod)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Error("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Error("UniqueOpts.ByArgs = false, want true")
	}
}

func TestNewLowStockScanWorkerRecipient(t *testing.T) {
	t.Parallel()

	w := NewLowStockScanWorker(nil, nil)
	if w.recipient != "inventory" {
		t.Errorf("recipient = %q, want %q", w.recipient, "inventory")
	}
}

func TestLowStockPeriodicJob(t *testing.T) {
	t.Parallel()

	if job := LowStockPeriodicJob(time.Hour); job == nil {
		t.Fatal("LowStockPeriodicJob() returned nil")
	}
}
