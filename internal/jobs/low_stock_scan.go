// Package jobs contains the River background jobs: the periodic low
// stock scan and inbox cleanup.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/notification"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/service"
)

// LowStockScanArgs are the arguments for the periodic low stock scan.
type LowStockScanArgs struct{}

// Kind implements river.JobArgs.
func (LowStockScanArgs) Kind() string { return "low_stock_scan" }

// InsertOpts deduplicates scans enqueued within the same hour.
func (LowStockScanArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// LowStockScanWorker alerts the inventory inbox about parts at or
// below their minimum stock.
type LowStockScanWorker struct {
	river.WorkerDefaults[LowStockScanArgs]

	parts  *service.PartService
	sender *notification.InboxSender
	// recipient is the shared inventory inbox, not a person.
	recipient string
}

// NewLowStockScanWorker creates the worker.
func NewLowStockScanWorker(parts *service.PartService, sender *notification.InboxSender) *LowStockScanWorker {
	return &LowStockScanWorker{parts: parts, sender: sender, recipient: "inventory"}
}

// Work implements river.Worker.
func (w *LowStockScanWorker) Work(ctx context.Context, job *river.Job[LowStockScanArgs]) error {
	low, err := w.parts.ListLowStock(ctx)
	if err != nil {
		return fmt.Errorf("list low stock parts: %w", err)
	}
	if len(low) == 0 {
		return nil
	}

	for _, p := range low {
		w.sender.Send(ctx, notification.Message{
			RecipientID:  w.recipient,
			Kind:         "LOW_STOCK",
			Title:        "Low stock: " + p.Name,
			Body:         fmt.Sprintf("%s (%s) is at %d, minimum is %d.", p.Name, p.Sku, p.StockQuantity, p.MinimumStock),
			ResourceType: "part",
			ResourceID:   p.ID,
		})
	}

	logger.Info("Low stock scan finished",
		zap.Int("parts_below_minimum", len(low)),
	)
	return nil
}

// LowStockPeriodicJob builds the periodic job definition.
func LowStockPeriodicJob(interval time.Duration) *river.PeriodicJob {
	return river.NewPeriodicJob(
		river.PeriodicInterval(interval),
		func() (river.JobArgs, *river.InsertOpts) {
			return LowStockScanArgs{}, nil
		},
		&river.PeriodicJobOpts{RunOnStart: true},
	)
}
