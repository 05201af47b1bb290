package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for in-app inbox
// notifications (ticket status changes, low stock alerts).
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("recipient_id").
			NotEmpty().
			Immutable(),
		field.Enum("kind").
			Values("TICKET_STATUS_CHANGE", "LOW_STOCK", "PAYMENT_REGISTERED"),
		field.String("title").
			NotEmpty(),
		field.String("message").
			NotEmpty(),
		field.String("resource_type").
			Optional(), // e.g. "ticket", "part"
		field.String("resource_id").
			Optional(),
		field.Bool("read").
			Default(false),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "read"),
		index.Fields("created_at"),
	}
}
