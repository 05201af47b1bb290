package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RepairRecord holds the schema definition for the RepairRecord entity.
// Created lazily on the first repair-related action; the unique
// ticket_id index enforces at most one record per ticket.
type RepairRecord struct {
	ent.Schema
}

// Mixin of the RepairRecord.
func (RepairRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the RepairRecord.
func (RepairRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Text("diagnosis").
			Optional(),
		field.Text("observations").
			Optional(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the RepairRecord.
func (RepairRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id").Unique(),
	}
}
