// Package usecase implements the multi-table write paths that need
// more control than Ent gives: exactly-once stock deduction, its
// cancellation reversal, and the delivery gate. These run raw SQL on
// the shared pgx pool so row locking and conflict handling are
// explicit.
package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/domain"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
)

// generateID returns a UUIDv7 (time-ordered) with a v4 fallback.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// errConcurrentTransition aborts a transaction whose guarded ticket
// update matched no row; the caller re-reads and decides whether the
// race still counts as success.
var errConcurrentTransition = fmt.Errorf("concurrent ticket transition")

// withTx runs fn in a transaction on the pool, rolling back on error.
func withTx(ctx context.Context, pool *pgxpool.Pool, fn func(pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Requirement is one part demand of a deduction.
type Requirement struct {
	PartID   string
	Quantity int
}

// DeductResult reports what a deduction call did.
type DeductResult struct {
	// AlreadyApplied is true when a previous call deducted for this
	// ticket; the current call changed nothing and that is success.
	AlreadyApplied bool
	// Applied lists the requirements actually deducted this call.
	Applied []Requirement
}

// ReverseResult reports what a reversal call did.
type ReverseResult struct {
	// Reversed is false when there was nothing to reverse, either
	// because stock was never deducted or a previous call already
	// compensated it.
	Reversed bool
	// Restored lists the quantities put back per part.
	Restored []Requirement
}

// InventoryAtomicWriter is the only component allowed to mutate
// parts.stock_quantity. Every mutation happens in one transaction
// with its ledger entry; the stock_deductions table is the
// idempotency record for the repair-consumption path.
type InventoryAtomicWriter struct {
	pool *pgxpool.Pool
}

// NewInventoryAtomicWriter creates an InventoryAtomicWriter over the
// shared pool.
func NewInventoryAtomicWriter(pool *pgxpool.Pool) *InventoryAtomicWriter {
	return &InventoryAtomicWriter{pool: pool}
}

// DeductTx applies the repair consumption for a ticket exactly once.
//
// The repair_records row lock serializes deduction against reversal
// for the same ticket. The stock_deductions insert is the idempotency
// point: a conflict means an earlier transaction already deducted, so
// this one stops without touching stock. Part rows are locked in id
// order to keep concurrent multi-part deductions deadlock free, and
// stock is re-validated under those locks; the pre-flight validator
// read may be stale by now.
func (w *InventoryAtomicWriter) DeductTx(ctx context.Context, tx pgx.Tx, ticketID, actor string, reqs []Requirement) (*DeductResult, error) {
	var recordID string
	err := tx.QueryRow(ctx,
		`SELECT id FROM repair_records WHERE ticket_id = $1 FOR UPDATE`,
		ticketID,
	).Scan(&recordID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.NotFound(errors.CodeTicketNotFound, "ticket has no repair record")
		}
		return nil, fmt.Errorf("lock repair record: %w", err)
	}

	now := time.Now()
	tag, err := tx.Exec(ctx,
		`INSERT INTO stock_deductions (id, ticket_id, created_by, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (ticket_id) DO NOTHING`,
		generateID(), ticketID, actor, now,
	)
	if err != nil {
		return nil, fmt.Errorf("record deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &DeductResult{AlreadyApplied: true}, nil
	}

	if len(reqs) == 0 {
		return &DeductResult{}, nil
	}

	need := make(map[string]int, len(reqs))
	ids := make([]string, 0, len(reqs))
	for _, r := range reqs {
		if _, ok := need[r.PartID]; !ok {
			ids = append(ids, r.PartID)
		}
		need[r.PartID] += r.Quantity
	}
	sort.Strings(ids)

	rows, err := tx.Query(ctx,
		`SELECT id, name, sku, stock_quantity
		 FROM parts
		 WHERE id = ANY($1)
		 ORDER BY id
		 FOR UPDATE`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("lock parts: %w", err)
	}

	type lockedPart struct {
		name  string
		sku   string
		stock int
	}
	locked := make(map[string]lockedPart, len(ids))
	for rows.Next() {
		var id string
		var p lockedPart
		if err := rows.Scan(&id, &p.name, &p.sku, &p.stock); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan part: %w", err)
		}
		locked[id] = p
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read parts: %w", err)
	}

	var missing []errors.MissingPart
	for _, id := range ids {
		p, ok := locked[id]
		if !ok {
			missing = append(missing, errors.MissingPart{
				PartID:   id,
				Required: need[id],
				Missing:  need[id],
			})
			continue
		}
		if p.stock < need[id] {
			missing = append(missing, errors.MissingPart{
				PartID:    id,
				Name:      p.name,
				SKU:       p.sku,
				Required:  need[id],
				Available: p.stock,
				Missing:   need[id] - p.stock,
			})
		}
	}
	if len(missing) > 0 {
		// Rolling back also discards the stock_deductions row, so a
		// retry after restocking starts clean.
		return nil, errors.InsufficientStock(missing)
	}

	ref := domain.TicketRef(ticketID)
	applied := make([]Requirement, 0, len(ids))
	for _, id := range ids {
		qty := need[id]
		if _, err := tx.Exec(ctx,
			`UPDATE parts
			 SET stock_quantity = stock_quantity - $2, updated_at = $3
			 WHERE id = $1`,
			id, qty, now,
		); err != nil {
			return nil, fmt.Errorf("deduct part %s: %w", id, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO ledger_entries (id, part_id, quantity_delta, kind, reference, created_by, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			generateID(), id, -qty, string(domain.LedgerKindRepairConsumption), ref, actor, now,
		); err != nil {
			return nil, fmt.Errorf("ledger entry for part %s: %w", id, err)
		}
		applied = append(applied, Requirement{PartID: id, Quantity: qty})
	}

	return &DeductResult{Applied: applied}, nil
}

// ReverseTx compensates a prior deduction exactly once. The quantities
// to restore come from the consumption ledger entries, not from the
// part usages, so the reversal mirrors exactly what was deducted even
// if usages were edited since.
func (w *InventoryAtomicWriter) ReverseTx(ctx context.Context, tx pgx.Tx, ticketID, actor string) (*ReverseResult, error) {
	// Same lock order as DeductTx.
	var recordID string
	err := tx.QueryRow(ctx,
		`SELECT id FROM repair_records WHERE ticket_id = $1 FOR UPDATE`,
		ticketID,
	).Scan(&recordID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// No repair record means no deduction ever happened.
			return &ReverseResult{}, nil
		}
		return nil, fmt.Errorf("lock repair record: %w", err)
	}

	now := time.Now()
	tag, err := tx.Exec(ctx,
		`UPDATE stock_deductions
		 SET reversed_at = $2, reversed_by = $3
		 WHERE ticket_id = $1 AND reversed_at IS NULL`,
		ticketID, now, actor,
	)
	if err != nil {
		return nil, fmt.Errorf("mark deduction reversed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &ReverseResult{}, nil
	}

	ref := domain.TicketRef(ticketID)
	rows, err := tx.Query(ctx,
		`SELECT part_id, -SUM(quantity_delta)
		 FROM ledger_entries
		 WHERE reference = $1 AND kind = $2
		 GROUP BY part_id
		 ORDER BY part_id`,
		ref, string(domain.LedgerKindRepairConsumption),
	)
	if err != nil {
		return nil, fmt.Errorf("read consumption entries: %w", err)
	}

	var restored []Requirement
	for rows.Next() {
		var r Requirement
		if err := rows.Scan(&r.PartID, &r.Quantity); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan consumption entry: %w", err)
		}
		restored = append(restored, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read consumption entries: %w", err)
	}

	for _, r := range restored {
		if _, err := tx.Exec(ctx,
			`UPDATE parts
			 SET stock_quantity = stock_quantity + $2, updated_at = $3
			 WHERE id = $1`,
			r.PartID, r.Quantity, now,
		); err != nil {
			return nil, fmt.Errorf("restore part %s: %w", r.PartID, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO ledger_entries (id, part_id, quantity_delta, kind, reference, created_by, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			generateID(), r.PartID, r.Quantity, string(domain.LedgerKindRepairReversal), ref, actor, now,
		); err != nil {
			return nil, fmt.Errorf("reversal entry for part %s: %w", r.PartID, err)
		}
	}

	return &ReverseResult{Reversed: true, Restored: restored}, nil
}

// AdjustStock applies a manual stock movement (restock, sale, or
// correction) with its ledger entry in one transaction. The delta is
// signed; a movement that would push stock negative is rejected.
func (w *InventoryAtomicWriter) AdjustStock(ctx context.Context, partID string, delta int, kind domain.LedgerKind, reference, actor string) error {
	if delta == 0 {
		return errors.BadRequest(errors.CodeInvalidAdjustment, "adjustment delta must be non-zero")
	}
	switch kind {
	case domain.LedgerKindRestock, domain.LedgerKindSale, domain.LedgerKindManualAdjustment:
	default:
		return errors.BadRequest(errors.CodeInvalidAdjustment, "kind not allowed for manual adjustment")
	}

	return withTx(ctx, w.pool, func(tx pgx.Tx) error {
		var stock int
		err := tx.QueryRow(ctx,
			`SELECT stock_quantity FROM parts WHERE id = $1 FOR UPDATE`,
			partID,
		).Scan(&stock)
		if err != nil {
			if err == pgx.ErrNoRows {
				return errors.NotFound(errors.CodePartNotFound, "part not found")
			}
			return fmt.Errorf("lock part: %w", err)
		}

		if stock+delta < 0 {
			return errors.BadRequest(errors.CodeInvalidAdjustment,
				fmt.Sprintf("adjustment would leave stock at %d", stock+delta))
		}

		now := time.Now()
		if _, err := tx.Exec(ctx,
			`UPDATE parts
			 SET stock_quantity = stock_quantity + $2, updated_at = $3
			 WHERE id = $1`,
			partID, delta, now,
		); err != nil {
			return fmt.Errorf("adjust part: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO ledger_entries (id, part_id, quantity_delta, kind, reference, created_by, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			generateID(), partID, delta, string(kind), reference, actor, now,
		); err != nil {
			return fmt.Errorf("ledger entry: %w", err)
		}
		return nil
	})
}
