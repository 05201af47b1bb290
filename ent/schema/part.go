package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Part holds the schema definition for a catalog inventory part.
//
// stock_quantity is mutated only through ledger entry application (the
// inventory atomic writer); the DB-level CHECK enforces the
// non-negative invariant.
type Part struct {
	ent.Schema
}

// Mixin of the Part.
func (Part) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Annotations of the Part.
func (Part) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Check("stock_quantity >= 0"),
	}
}

// Fields of the Part.
func (Part) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("sku").
			NotEmpty().
			Unique(),
		field.Int("stock_quantity").
			Default(0).
			NonNegative(),
		field.Int("minimum_stock").
			Default(0).
			NonNegative(),
		field.Int("maximum_stock").
			Default(0).
			NonNegative(),
		field.Int64("unit_price_cents").
			Default(0).
			NonNegative(),
		field.Bool("active").
			Default(true),
	}
}

// Indexes of the Part.
func (Part) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("active"),
	}
}
