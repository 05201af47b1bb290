package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Payment holds the schema definition for the Payment entity. Only
// ACTIVE payments count toward the ticket balance; voiding is a state
// flip, never a delete.
type Payment struct {
	ent.Schema
}

// Mixin of the Payment.
func (Payment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Payment.
func (Payment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			NotEmpty().
			Immutable(),
		field.Int64("amount_cents").
			Positive().
			Immutable(),
		field.Enum("method").
			Values("CASH", "CARD", "TRANSFER", "MERCADOPAGO"),
		field.Enum("state").
			Values("ACTIVE", "VOIDED").
			Default("ACTIVE"),
		field.String("provider_payment_id").
			Optional(), // Gateway-side id for MERCADOPAGO payments
		field.String("created_by").
			NotEmpty().
			Immutable(),
		field.Time("voided_at").
			Optional().
			Nillable(),
		field.String("voided_by").
			Optional(),
	}
}

// Indexes of the Payment.
func (Payment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id"),
		index.Fields("state"),
	}
}
