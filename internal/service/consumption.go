package service

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/part"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/partusage"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/repairrecord"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/matcher"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
)

// ConsumptionService derives part usages for a repair record from the
// ticket's approved budget lines. Derivation runs once per repair
// record; re-running returns the stored usages untouched so a retried
// completeRepair never doubles the requirement.
type ConsumptionService struct {
	client  *ent.Client
	budgets *BudgetService
	match   matcher.Matcher
}

// NewConsumptionService creates a ConsumptionService.
func NewConsumptionService(client *ent.Client, budgets *BudgetService, m matcher.Matcher) *ConsumptionService {
	return &ConsumptionService{client: client, budgets: budgets, match: m}
}

// EnsureUsages returns the part usages for the ticket's repair record,
// deriving them from the budget on first call. Lines that resolve to
// no part (pure service concepts) are skipped; lines the matcher
// rejects fail the whole derivation so nothing half-derived persists.
func (s *ConsumptionService) EnsureUsages(ctx context.Context, ticketID string) ([]*ent.PartUsage, error) {
	rec, err := s.client.RepairRecord.Query().
		Where(repairrecord.TicketID(ticketID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errors.NotFound(errors.CodeTicketNotFound, "ticket has no repair record")
		}
		return nil, err
	}

	existing, err := s.client.PartUsage.Query().
		Where(partusage.RepairRecordID(rec.ID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	view, err := s.budgets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalogRefs(ctx)
	if err != nil {
		return nil, err
	}

	// Aggregate per part so the unique (repair_record_id, part_id)
	// index never trips on two lines naming the same part.
	type agg struct {
		quantity int
		source   string
	}
	byPart := make(map[string]*agg)
	order := make([]string, 0, len(view.Items))

	for _, item := range view.Items {
		match, err := s.match.Resolve(item.Description, catalog)
		if err != nil {
			var ambiguous *matcher.AmbiguousError
			if stderrors.As(err, &ambiguous) {
				names := make([]string, len(ambiguous.Candidates))
				for i, c := range ambiguous.Candidates {
					names[i] = c.Name + " (" + c.SKU + ")"
				}
				return nil, errors.AmbiguousPartMatch(item.Description, names)
			}
			var unresolved *matcher.UnresolvedSKUError
			if stderrors.As(err, &unresolved) {
				return nil, errors.ConversionFailed(item.Description)
			}
			return nil, err
		}
		if match == nil {
			continue // service concept, no stock impact
		}
		a, ok := byPart[match.Part.ID]
		if !ok {
			a = &agg{source: item.Description}
			byPart[match.Part.ID] = a
			order = append(order, match.Part.ID)
		}
		a.quantity += item.Quantity
	}

	if len(byPart) == 0 {
		return nil, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	bulk := make([]*ent.PartUsageCreate, 0, len(byPart))
	for _, partID := range order {
		a := byPart[partID]
		bulk = append(bulk, tx.PartUsage.Create().
			SetID(generateID()).
			SetRepairRecordID(rec.ID).
			SetPartID(partID).
			SetQuantity(a.quantity).
			SetSourceDescription(a.source))
	}
	if _, err = tx.PartUsage.CreateBulk(bulk...).Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent derivation won; use its result.
			_ = tx.Rollback()
			return s.client.PartUsage.Query().
				Where(partusage.RepairRecordID(rec.ID)).
				All(ctx)
		}
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	logger.Info("Part usages derived",
		zap.String("ticket_id", ticketID),
		zap.Int("parts", len(byPart)),
	)

	return s.client.PartUsage.Query().
		Where(partusage.RepairRecordID(rec.ID)).
		All(ctx)
}

func (s *ConsumptionService) catalogRefs(ctx context.Context) ([]matcher.PartRef, error) {
	parts, err := s.client.Part.Query().
		Where(part.Active(true)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]matcher.PartRef, len(parts))
	for i, p := range parts {
		refs[i] = matcher.PartRef{ID: p.ID, Name: p.Name, SKU: p.Sku}
	}
	return refs, nil
}
