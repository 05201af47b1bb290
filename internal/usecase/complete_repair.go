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

// CompleteRepairUsecase moves a ticket from IN_REPAIR to REPAIRED and
// deducts the consumed parts from stock, all in one transaction.
//
// The status flip and the deduction commit together, so REPAIRED
// always implies stock was deducted. A repeat call on a REPAIRED
// ticket is a silent success; the stock_deductions unique key makes
// the deduction side of any race exactly-once regardless.
type CompleteRepairUsecase struct {
	client      *ent.Client
	pool        *pgxpool.Pool
	consumption *service.ConsumptionService
	validator   *service.StockValidator
	inventory   *InventoryAtomicWriter
	tickets     *service.TicketService
	dispatcher  *domain.Dispatcher
}

// NewCompleteRepairUsecase creates a CompleteRepairUsecase.
func NewCompleteRepairUsecase(
	client *ent.Client,
	pool *pgxpool.Pool,
	consumption *service.ConsumptionService,
	validator *service.StockValidator,
	inventory *InventoryAtomicWriter,
	tickets *service.TicketService,
	dispatcher *domain.Dispatcher,
) *CompleteRepairUsecase {
	return &CompleteRepairUsecase{
		client:      client,
		pool:        pool,
		consumption: consumption,
		validator:   validator,
		inventory:   inventory,
		tickets:     tickets,
		dispatcher:  dispatcher,
	}
}

// Execute completes the repair for a ticket.
func (u *CompleteRepairUsecase) Execute(ctx context.Context, ticketID, actor string) (*ent.Ticket, error) {
	t, err := u.tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.Cancelled {
		return nil, errors.Conflict(errors.CodeTicketCancelled, "ticket is cancelled")
	}

	current := domain.Status(t.Status)
	if current == domain.StatusRepaired {
		// Retry of a completed call. Nothing to do.
		return t, nil
	}
	if _, err := service.NextStatus(service.OpCompleteRepair, current); err != nil {
		return nil, err
	}

	// Derivation is idempotent and persists even when the deduction
	// below fails on stock; a later retry reuses the stored usages.
	usages, err := u.consumption.EnsureUsages(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	// Advisory pre-check so the caller gets the complete shortage
	// list; the deduction re-validates under row locks.
	missing, err := u.validator.Validate(ctx, usages)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, errors.InsufficientStock(missing)
	}

	reqs := make([]Requirement, len(usages))
	for i, usage := range usages {
		reqs[i] = Requirement{PartID: usage.PartID, Quantity: usage.Quantity}
	}

	var result *DeductResult
	err = withTx(ctx, u.pool, func(tx pgx.Tx) error {
		now := time.Now()
		tag, err := tx.Exec(ctx,
			`UPDATE tickets
			 SET status = $2, repair_finished_at = $3, updated_at = $3
			 WHERE id = $1 AND status = $4 AND cancelled = false`,
			ticketID, string(domain.StatusRepaired), now, string(domain.StatusInRepair),
		)
		if err != nil {
			return fmt.Errorf("update ticket status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errConcurrentTransition
		}

		if _, err := tx.Exec(ctx,
			`UPDATE repair_records
			 SET finished_at = $2, updated_at = $2
			 WHERE ticket_id = $1 AND finished_at IS NULL`,
			ticketID, now,
		); err != nil {
			return fmt.Errorf("finish repair record: %w", err)
		}

		result, err = u.inventory.DeductTx(ctx, tx, ticketID, actor, reqs)
		return err
	})
	if err != nil {
		if err == errConcurrentTransition {
			return u.resolveRace(ctx, ticketID, current)
		}
		return nil, err
	}

	logger.Info("Repair completed",
		zap.String("ticket_id", ticketID),
		zap.Bool("deduction_already_applied", result.AlreadyApplied),
		zap.Int("parts_deducted", len(result.Applied)),
		zap.String("actor", actor),
	)

	if u.dispatcher != nil {
		u.dispatcher.DispatchStatusChange(domain.StatusChange{
			TicketID:   ticketID,
			CustomerID: t.CustomerID,
			From:       current,
			To:         domain.StatusRepaired,
			Actor:      actor,
		})
	}

	return u.tickets.Get(ctx, ticketID)
}

// resolveRace re-reads the ticket after a guarded update matched
// nothing. A concurrent completeRepair winning the race is still
// success for this caller.
func (u *CompleteRepairUsecase) resolveRace(ctx context.Context, ticketID string, attempted domain.Status) (*ent.Ticket, error) {
	t, err := u.tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if domain.Status(t.Status) == domain.StatusRepaired && !t.Cancelled {
		return t, nil
	}
	return nil, errors.InvalidTransition(string(service.OpCompleteRepair), string(attempted))
}
