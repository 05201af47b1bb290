// Code generated by ent, DO NOT EDIT.

package ledgerentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ledgerentry type in the database.
	Label = "ledger_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPartID holds the string denoting the part_id field in the database.
	FieldPartID = "part_id"
	// FieldQuantityDelta holds the string denoting the quantity_delta field in the database.
	FieldQuantityDelta = "quantity_delta"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldReference holds the string denoting the reference field in the database.
	FieldReference = "reference"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// Table holds the table name of the ledgerentry in the database.
	Table = "ledger_entries"
)

// Columns holds all SQL columns for ledgerentry fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPartID,
	FieldQuantityDelta,
	FieldKind,
	FieldReference,
	FieldCreatedBy,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// PartIDValidator is a validator for the "part_id" field. It is called by the builders before save.
	PartIDValidator func(string) error
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindREPAIR_CONSUMPTION Kind = "REPAIR_CONSUMPTION"
	KindREPAIR_REVERSAL    Kind = "REPAIR_REVERSAL"
	KindSALE               Kind = "SALE"
	KindRESTOCK            Kind = "RESTOCK"
	KindMANUAL_ADJUSTMENT  Kind = "MANUAL_ADJUSTMENT"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindREPAIR_CONSUMPTION, KindREPAIR_REVERSAL, KindSALE, KindRESTOCK, KindMANUAL_ADJUSTMENT:
		return nil
	default:
		return fmt.Errorf("ledgerentry: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the LedgerEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPartID orders the results by the part_id field.
func ByPartID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartID, opts...).ToFunc()
}

// ByQuantityDelta orders the results by the quantity_delta field.
func ByQuantityDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantityDelta, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByReference orders the results by the reference field.
func ByReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReference, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}
