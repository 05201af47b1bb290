package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/domain"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/service"
)

// CancelTicketUsecase cancels a ticket from any non-terminal status.
// If stock was already deducted the cancellation restores it through
// compensating ledger entries, and every ACTIVE payment is voided.
// All of it commits in one transaction with the status flip.
type CancelTicketUsecase struct {
	client     *ent.Client
	pool       *pgxpool.Pool
	inventory  *InventoryAtomicWriter
	tickets    *service.TicketService
	dispatcher *domain.Dispatcher
}

// NewCancelTicketUsecase creates a CancelTicketUsecase.
func NewCancelTicketUsecase(
	client *ent.Client,
	pool *pgxpool.Pool,
	inventory *InventoryAtomicWriter,
	tickets *service.TicketService,
	dispatcher *domain.Dispatcher,
) *CancelTicketUsecase {
	return &CancelTicketUsecase{
		client:     client,
		pool:       pool,
		inventory:  inventory,
		tickets:    tickets,
		dispatcher: dispatcher,
	}
}

// Execute cancels the ticket.
func (u *CancelTicketUsecase) Execute(ctx context.Context, ticketID, actor, reason string) (*ent.Ticket, error) {
	t, err := u.tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	current := domain.Status(t.Status)
	if _, err := service.NextStatus(service.OpCancel, current); err != nil {
		return nil, err
	}

	var reversal *ReverseResult
	err = withTx(ctx, u.pool, func(tx pgx.Tx) error {
		now := time.Now()
		tag, err := tx.Exec(ctx,
			`UPDATE tickets
			 SET status = $2,
			     cancelled = true,
			     cancel_reason = $3,
			     status_before_cancellation = $4,
			     cancelled_at = $5,
			     updated_at = $5
			 WHERE id = $1 AND status = $4 AND cancelled = false`,
			ticketID, string(domain.StatusCancelled), reason, string(current), now,
		)
		if err != nil {
			return fmt.Errorf("update ticket status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errConcurrentTransition
		}

		reversal, err = u.inventory.ReverseTx(ctx, tx, ticketID, actor)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`UPDATE payments
			 SET state = $2, voided_at = $3, voided_by = $4, updated_at = $3
			 WHERE ticket_id = $1 AND state = $5`,
			ticketID, string(domain.PaymentStateVoided), now, actor,
			string(domain.PaymentStateActive),
		); err != nil {
			return fmt.Errorf("void payments: %w", err)
		}
		return nil
	})
	if err != nil {
		if err == errConcurrentTransition {
			return nil, errors.InvalidTransition(string(service.OpCancel), string(current))
		}
		return nil, err
	}

	logger.Info("Ticket cancelled",
		zap.String("ticket_id", ticketID),
		zap.String("was", string(current)),
		zap.Bool("stock_reversed", reversal.Reversed),
		zap.Int("parts_restored", len(reversal.Restored)),
		zap.String("actor", actor),
	)

	if u.dispatcher != nil {
		u.dispatcher.DispatchStatusChange(domain.StatusChange{
			TicketID:   ticketID,
			CustomerID: t.CustomerID,
			From:       current,
			To:         domain.StatusCancelled,
			Actor:      actor,
		})
	}

	return u.tickets.Get(ctx, ticketID)
}
