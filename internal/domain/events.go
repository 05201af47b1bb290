package domain

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/worker"
)

// StatusChange describes a ticket lifecycle transition that already
// committed. Handlers run after the fact and must not veto it.
type StatusChange struct {
	TicketID   string
	CustomerID string
	From       Status
	To         Status
	Actor      string
}

// StatusChangeHandler reacts to a committed status change.
type StatusChangeHandler interface {
	HandleStatusChange(ctx context.Context, ev StatusChange)
}

// Dispatcher fans committed events out to handlers on the worker pool
// so that notification and audit work never blocks a request.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []StatusChangeHandler
	pools    *worker.Pools
}

// NewDispatcher creates an event dispatcher over the given pools.
func NewDispatcher(pools *worker.Pools) *Dispatcher {
	return &Dispatcher{pools: pools}
}

// Subscribe registers a handler. Registration normally happens once
// during bootstrap, before any events flow.
func (d *Dispatcher) Subscribe(h StatusChangeHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// DispatchStatusChange delivers the event to every handler as a
// detached task. Delivery is best effort; a full pool is logged and
// dropped rather than failing the already-committed transition.
func (d *Dispatcher) DispatchStatusChange(ev StatusChange) {
	d.mu.RLock()
	handlers := make([]StatusChangeHandler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.RUnlock()

	for _, h := range handlers {
		h := h
		err := d.pools.SubmitDetached(func(ctx context.Context) {
			h.HandleStatusChange(ctx, ev)
		})
		if err != nil {
			logger.Warn("Status change event dropped",
				zap.String("ticket_id", ev.TicketID),
				zap.String("to", string(ev.To)),
				zap.Error(err),
			)
		}
	}
}
