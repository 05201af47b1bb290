package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BudgetItem holds the schema definition for one line item (concept) of
// a budget: free-text description, quantity, unit price, plus an
// optional ad-hoc extra concept with its own price.
type BudgetItem struct {
	ent.Schema
}

// Mixin of the BudgetItem.
func (BudgetItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the BudgetItem.
func (BudgetItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("budget_id").
			NotEmpty().
			Immutable(),
		field.String("description").
			NotEmpty(),
		field.Int("quantity").
			Positive(),
		field.Int64("unit_price_cents").
			NonNegative(),
		field.String("extra_concept").
			Optional(),
		field.Int64("extra_price_cents").
			Default(0).
			NonNegative(),
	}
}

// Indexes of the BudgetItem.
func (BudgetItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("budget_id"),
	}
}
