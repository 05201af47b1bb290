package service

import (
	"context"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/ledgerentry"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/part"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/domain"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
)

// StockAdjuster is the slice of the inventory atomic writer the part
// service needs for manual movements. Stock never changes through Ent
// updates; everything goes through the ledgered path.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, partID string, delta int, kind domain.LedgerKind, reference, actor string) error
}

// PartService manages the part catalog and the manual stock
// operations (restock, sale, correction).
type PartService struct {
	client   *ent.Client
	adjuster StockAdjuster
}

// NewPartService creates a PartService.
func NewPartService(client *ent.Client, adjuster StockAdjuster) *PartService {
	return &PartService{client: client, adjuster: adjuster}
}

// CreatePartInput carries the catalog fields for a new part.
type CreatePartInput struct {
	Name           string
	SKU            string
	InitialStock   int
	MinimumStock   int
	MaximumStock   int
	UnitPriceCents int64
}

// Create adds a part to the catalog.
func (s *PartService) Create(ctx context.Context, in CreatePartInput) (*ent.Part, error) {
	p, err := s.client.Part.Create().
		SetID(generateID()).
		SetName(in.Name).
		SetSku(in.SKU).
		SetStockQuantity(in.InitialStock).
		SetMinimumStock(in.MinimumStock).
		SetMaximumStock(in.MaximumStock).
		SetUnitPriceCents(in.UnitPriceCents).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, errors.Conflict(errors.CodePartExists, "a part with this SKU already exists")
		}
		return nil, err
	}
	return p, nil
}

// Get fetches a part by id.
func (s *PartService) Get(ctx context.Context, id string) (*ent.Part, error) {
	p, err := s.client.Part.Query().Where(part.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errors.NotFound(errors.CodePartNotFound, "part not found")
		}
		return nil, err
	}
	return p, nil
}

// UpdatePartInput carries the mutable catalog fields. Stock quantity
// is deliberately absent; use the stock operations.
type UpdatePartInput struct {
	Name           *string
	MinimumStock   *int
	MaximumStock   *int
	UnitPriceCents *int64
	Active         *bool
}

// Update edits catalog fields of a part.
func (s *PartService) Update(ctx context.Context, id string, in UpdatePartInput) (*ent.Part, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	u := s.client.Part.UpdateOneID(id)
	if in.Name != nil {
		u.SetName(*in.Name)
	}
	if in.MinimumStock != nil {
		u.SetMinimumStock(*in.MinimumStock)
	}
	if in.MaximumStock != nil {
		u.SetMaximumStock(*in.MaximumStock)
	}
	if in.UnitPriceCents != nil {
		u.SetUnitPriceCents(*in.UnitPriceCents)
	}
	if in.Active != nil {
		u.SetActive(*in.Active)
	}
	return u.Save(ctx)
}

// List returns catalog parts, optionally only active ones.
func (s *PartService) List(ctx context.Context, activeOnly bool) ([]*ent.Part, error) {
	q := s.client.Part.Query()
	if activeOnly {
		q = q.Where(part.Active(true))
	}
	return q.Order(ent.Asc(part.FieldName)).All(ctx)
}

// lowStockPredicate matches parts at or below their minimum. Column
// against column, so it drops down to a raw selector.
func lowStockPredicate() predicate.Part {
	return predicate.Part(func(s *entsql.Selector) {
		s.Where(entsql.ColumnsLTE(
			s.C(part.FieldStockQuantity),
			s.C(part.FieldMinimumStock),
		))
	})
}

// ListLowStock returns active parts whose stock is at or below their
// configured minimum.
func (s *PartService) ListLowStock(ctx context.Context) ([]*ent.Part, error) {
	return s.client.Part.Query().
		Where(part.Active(true), lowStockPredicate()).
		Order(ent.Asc(part.FieldName)).
		All(ctx)
}

// Ledger returns the movement history of a part, newest first.
func (s *PartService) Ledger(ctx context.Context, partID string, limit int) ([]*ent.LedgerEntry, error) {
	if _, err := s.Get(ctx, partID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.client.LedgerEntry.Query().
		Where(ledgerentry.PartID(partID)).
		Order(ent.Desc(ledgerentry.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// Restock adds stock with a RESTOCK ledger entry.
func (s *PartService) Restock(ctx context.Context, partID string, quantity int, reference, actor string) error {
	if quantity <= 0 {
		return errors.BadRequest(errors.CodeInvalidAdjustment, "restock quantity must be positive")
	}
	return s.adjuster.AdjustStock(ctx, partID, quantity, domain.LedgerKindRestock, reference, actor)
}

// Sell removes stock with a SALE ledger entry, for over-the-counter
// part sales outside any ticket.
func (s *PartService) Sell(ctx context.Context, partID string, quantity int, reference, actor string) error {
	if quantity <= 0 {
		return errors.BadRequest(errors.CodeInvalidAdjustment, "sale quantity must be positive")
	}
	return s.adjuster.AdjustStock(ctx, partID, -quantity, domain.LedgerKindSale, reference, actor)
}

// Adjust applies a signed manual correction with its ledger entry.
func (s *PartService) Adjust(ctx context.Context, partID string, delta int, reference, actor string) error {
	return s.adjuster.AdjustStock(ctx, partID, delta, domain.LedgerKindManualAdjustment, reference, actor)
}
