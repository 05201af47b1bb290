package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Budget holds the schema definition for the Budget entity: the priced
// estimate for a ticket (1:1). The total is always derived from the
// budget items, never stored.
type Budget struct {
	ent.Schema
}

// Mixin of the Budget.
func (Budget) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Budget.
func (Budget) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			NotEmpty().
			Unique(). // At most one budget per ticket
			Immutable(),
		field.Bool("approved").
			Default(false),
		field.String("approved_by").
			Optional(),
		field.Time("approved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Budget.
func (Budget) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id").Unique(),
	}
}
