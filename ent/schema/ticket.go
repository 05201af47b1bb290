package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for the Ticket entity: one unit of
// repair work for one customer device.
//
// The status enum is the single source of truth for lifecycle position;
// the presence of related rows (repair record, budget) is a derived
// consequence, never the authority. Cancellation is orthogonal: the
// pre-cancellation status is preserved for audit.
type Ticket struct {
	ent.Schema
}

// Mixin of the Ticket.
func (Ticket) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("customer_id").
			NotEmpty().
			Immutable(),
		field.String("device_id").
			NotEmpty().
			Immutable(),
		field.String("technician_id").
			Optional(),
		field.Enum("status").
			Values(
				"RECEIVED",
				"DIAGNOSING",
				"DIAGNOSIS_COMPLETE",
				"BUDGET_PENDING",
				"BUDGET_APPROVED",
				"IN_REPAIR",
				"REPAIRED",
				"READY_FOR_DELIVERY",
				"DELIVERED",
				"CANCELLED",
			).
			Default("RECEIVED"),
		field.Bool("cancelled").
			Default(false),
		field.String("cancel_reason").
			Optional(),
		field.String("status_before_cancellation").
			Optional(), // Last pre-cancellation status, kept for audit
		field.Bool("delivered").
			Default(false),
		field.String("problem_description").
			Optional(),
		field.Time("diagnosis_started_at").
			Optional().
			Nillable(),
		field.Time("diagnosis_finished_at").
			Optional().
			Nillable(),
		field.Time("repair_started_at").
			Optional().
			Nillable(),
		field.Time("repair_finished_at").
			Optional().
			Nillable(),
		field.Time("delivered_at").
			Optional().
			Nillable(),
		field.Time("cancelled_at").
			Optional().
			Nillable(),
		field.String("created_by").
			NotEmpty().
			Immutable(),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("customer_id"),
		index.Fields("technician_id"),
	}
}
