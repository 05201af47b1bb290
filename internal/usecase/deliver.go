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

// DeliverUsecase hands the device back to the customer. Delivery is
// gated on a settled balance: the derived balance must be zero or
// negative, never positive. A second delivery attempt fails loudly
// because handing the same device out twice is an operational error
// someone should see.
type DeliverUsecase struct {
	client     *ent.Client
	pool       *pgxpool.Pool
	balance    *service.BalanceService
	tickets    *service.TicketService
	dispatcher *domain.Dispatcher
}

// NewDeliverUsecase creates a DeliverUsecase.
func NewDeliverUsecase(
	client *ent.Client,
	pool *pgxpool.Pool,
	balance *service.BalanceService,
	tickets *service.TicketService,
	dispatcher *domain.Dispatcher,
) *DeliverUsecase {
	return &DeliverUsecase{
		client:     client,
		pool:       pool,
		balance:    balance,
		tickets:    tickets,
		dispatcher: dispatcher,
	}
}

// Execute delivers the ticket's device.
func (u *DeliverUsecase) Execute(ctx context.Context, ticketID, actor string) (*ent.Ticket, error) {
	t, err := u.tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.Cancelled {
		return nil, errors.Conflict(errors.CodeTicketCancelled, "ticket is cancelled")
	}
	if t.Delivered {
		return nil, errors.Conflict(errors.CodeTicketDelivered, "ticket is already delivered")
	}

	current := domain.Status(t.Status)
	if _, err := service.NextStatus(service.OpDeliver, current); err != nil {
		return nil, err
	}

	breakdown, err := u.balance.Breakdown(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if breakdown.BalanceCents > 0 {
		return nil, errors.OutstandingBalance(breakdown.BalanceCents)
	}

	err = withTx(ctx, u.pool, func(tx pgx.Tx) error {
		now := time.Now()
		tag, err := tx.Exec(ctx,
			`UPDATE tickets
			 SET status = $2, delivered = true, delivered_at = $3, updated_at = $3
			 WHERE id = $1
			   AND status = ANY($4)
			   AND cancelled = false
			   AND delivered = false`,
			ticketID, string(domain.StatusDelivered), now,
			[]string{string(domain.StatusRepaired), string(domain.StatusReadyForDelivery)},
		)
		if err != nil {
			return fmt.Errorf("update ticket status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errConcurrentTransition
		}
		return nil
	})
	if err != nil {
		if err == errConcurrentTransition {
			return nil, errors.InvalidTransition(string(service.OpDeliver), string(current))
		}
		return nil, err
	}

	logger.Info("Ticket delivered",
		zap.String("ticket_id", ticketID),
		zap.Int64("paid_cents", breakdown.PaidCents),
		zap.String("actor", actor),
	)

	if u.dispatcher != nil {
		u.dispatcher.DispatchStatusChange(domain.StatusChange{
			TicketID:   ticketID,
			CustomerID: t.CustomerID,
			From:       current,
			To:         domain.StatusDelivered,
			Actor:      actor,
		})
	}

	return u.tickets.Get(ctx, ticketID)
}
