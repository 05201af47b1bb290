package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PartUsage holds the schema definition for a part consumption record:
// the derived link between a repair record and a catalog part plus the
// quantity used. Derived once per repair record from the budget items;
// the (repair_record_id, part_id) unique index prevents double
// derivation from aggregating the same part twice.
type PartUsage struct {
	ent.Schema
}

// Mixin of the PartUsage.
func (PartUsage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the PartUsage.
func (PartUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("repair_record_id").
			NotEmpty().
			Immutable(),
		field.String("part_id").
			NotEmpty().
			Immutable(),
		field.Int("quantity").
			Positive(),
		field.String("source_description").
			Optional().
			Immutable(), // Budget line text the part was resolved from
	}
}

// Indexes of the PartUsage.
func (PartUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("repair_record_id", "part_id").Unique(),
		index.Fields("part_id"),
	}
}
