// Code generated by ent, DO NOT EDIT.

package partusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the partusage type in the database.
	Label = "part_usage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRepairRecordID holds the string denoting the repair_record_id field in the database.
	FieldRepairRecordID = "repair_record_id"
	// FieldPartID holds the string denoting the part_id field in the database.
	FieldPartID = "part_id"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldSourceDescription holds the string denoting the source_description field in the database.
	FieldSourceDescription = "source_description"
	// Table holds the table name of the partusage in the database.
	Table = "part_usages"
)

// Columns holds all SQL columns for partusage fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRepairRecordID,
	FieldPartID,
	FieldQuantity,
	FieldSourceDescription,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// RepairRecordIDValidator is a validator for the "repair_record_id" field. It is called by the builders before save.
	RepairRecordIDValidator func(string) error
	// PartIDValidator is a validator for the "part_id" field. It is called by the builders before save.
	PartIDValidator func(string) error
	// QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	QuantityValidator func(int) error
)

// OrderOption defines the ordering options for the PartUsage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRepairRecordID orders the results by the repair_record_id field.
func ByRepairRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepairRecordID, opts...).ToFunc()
}

// ByPartID orders the results by the part_id field.
func ByPartID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartID, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// BySourceDescription orders the results by the source_description field.
func BySourceDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceDescription, opts...).ToFunc()
}
