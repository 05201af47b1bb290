package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LedgerEntry holds the schema definition for the LedgerEntry entity.
// Append-only stock movement records. Hard-delete is NOT allowed;
// corrections are compensating entries with the opposite sign.
type LedgerEntry struct {
	ent.Schema
}

// Mixin of the LedgerEntry.
func (LedgerEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the LedgerEntry.
func (LedgerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("part_id").
			NotEmpty().
			Immutable(),
		field.Int("quantity_delta").
			Immutable(), // Signed: negative = stock out, positive = stock in
		field.Enum("kind").
			Values(
				"REPAIR_CONSUMPTION",
				"REPAIR_REVERSAL",
				"SALE",
				"RESTOCK",
				"MANUAL_ADJUSTMENT",
			).
			Immutable(),
		field.String("reference").
			Optional().
			Immutable(), // e.g. "Ticket-<id>" for repair paths
		field.String("created_by").
			NotEmpty().
			Immutable(),
	}
}

// Indexes of the LedgerEntry.
func (LedgerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reference", "kind"),
		index.Fields("part_id"),
		index.Fields("created_at"),
	}
}
