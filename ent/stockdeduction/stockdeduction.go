// Code generated by ent, DO NOT EDIT.

package stockdeduction

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stockdeduction type in the database.
	Label = "stock_deduction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTicketID holds the string denoting the ticket_id field in the database.
	FieldTicketID = "ticket_id"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldReversedAt holds the string denoting the reversed_at field in the database.
	FieldReversedAt = "reversed_at"
	// FieldReversedBy holds the string denoting the reversed_by field in the database.
	FieldReversedBy = "reversed_by"
	// Table holds the table name of the stockdeduction in the database.
	Table = "stock_deductions"
)

// Columns holds all SQL columns for stockdeduction fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldTicketID,
	FieldCreatedBy,
	FieldReversedAt,
	FieldReversedBy,
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
	// TicketIDValidator is a validator for the "ticket_id" field. It is called by the builders before save.
	TicketIDValidator func(string) error
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// OrderOption defines the ordering options for the StockDeduction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTicketID orders the results by the ticket_id field.
func ByTicketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketID, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByReversedAt orders the results by the reversed_at field.
func ByReversedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReversedAt, opts...).ToFunc()
}

// ByReversedBy orders the results by the reversed_by field.
func ByReversedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReversedBy, opts...).ToFunc()
}
