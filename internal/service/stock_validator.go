package service

import (
	"context"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/part"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
)

// StockValidator checks whether on-hand stock covers a set of part
// usages. Its read is advisory; the inventory atomic writer re-checks
// under row locks before mutating, so a validator pass is never a
// promise, only an early, complete shortage report.
type StockValidator struct {
	client *ent.Client
}

// NewStockValidator creates a StockValidator.
func NewStockValidator(client *ent.Client) *StockValidator {
	return &StockValidator{client: client}
}

// Validate returns every shortage at once. Callers get the full
// restock list in one round trip instead of one part per failure.
func (v *StockValidator) Validate(ctx context.Context, usages []*ent.PartUsage) ([]errors.MissingPart, error) {
	if len(usages) == 0 {
		return nil, nil
	}

	ids := make([]string, len(usages))
	need := make(map[string]int, len(usages))
	for i, u := range usages {
		ids[i] = u.PartID
		need[u.PartID] += u.Quantity
	}

	parts, err := v.client.Part.Query().
		Where(part.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*ent.Part, len(parts))
	for _, p := range parts {
		byID[p.ID] = p
	}

	var missing []errors.MissingPart
	for _, u := range usages {
		p, ok := byID[u.PartID]
		if !ok {
			missing = append(missing, errors.MissingPart{
				PartID:   u.PartID,
				Required: need[u.PartID],
				Missing:  need[u.PartID],
			})
			delete(need, u.PartID)
			continue
		}
		required, ok := need[p.ID]
		if !ok {
			continue // already reported via aggregate
		}
		if p.StockQuantity < required {
			missing = append(missing, errors.MissingPart{
				PartID:    p.ID,
				Name:      p.Name,
				SKU:       p.Sku,
				Required:  required,
				Available: p.StockQuantity,
				Missing:   required - p.StockQuantity,
			})
		}
		delete(need, p.ID)
	}

	return missing, nil
}
