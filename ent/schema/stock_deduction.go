package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StockDeduction holds the schema definition for the StockDeduction
// entity: the explicit idempotency key for repair-consumption stock
// mutation. The unique ticket_id constraint is what makes the deduction
// exactly-once; the application treats a conflict on insert as
// "already applied, succeed anyway".
//
// Reversal (on cancellation) flips reversed_at under a
// WHERE reversed_at IS NULL guard so compensation is exactly-once too.
type StockDeduction struct {
	ent.Schema
}

// Mixin of the StockDeduction.
func (StockDeduction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the StockDeduction.
func (StockDeduction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("created_by").
			NotEmpty().
			Immutable(),
		field.Time("reversed_at").
			Optional().
			Nillable(),
		field.String("reversed_by").
			Optional(),
	}
}

// Indexes of the StockDeduction.
func (StockDeduction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id").Unique(),
	}
}
