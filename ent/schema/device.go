package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Device holds the schema definition for the Device entity: the physical
// unit a ticket repairs. Brand/model catalogs are managed externally;
// here they are plain descriptive fields.
type Device struct {
	ent.Schema
}

// Mixin of the Device.
func (Device) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Device.
func (Device) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("customer_id").
			NotEmpty().
			Immutable(),
		field.String("kind").
			Optional(), // e.g. "phone", "laptop"
		field.String("brand").
			Optional(),
		field.String("model").
			Optional(),
		field.String("serial_number").
			Optional(),
	}
}

// Indexes of the Device.
func (Device) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("customer_id"),
	}
}
