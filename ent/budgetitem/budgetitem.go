// Code generated by ent, DO NOT EDIT.

package budgetitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the budgetitem type in the database.
	Label = "budget_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldBudgetID holds the string denoting the budget_id field in the database.
	FieldBudgetID = "budget_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldUnitPriceCents holds the string denoting the unit_price_cents field in the database.
	FieldUnitPriceCents = "unit_price_cents"
	// FieldExtraConcept holds the string denoting the extra_concept field in the database.
	FieldExtraConcept = "extra_concept"
	// FieldExtraPriceCents holds the string denoting the extra_price_cents field in the database.
	FieldExtraPriceCents = "extra_price_cents"
	// Table holds the table name of the budgetitem in the database.
	Table = "budget_items"
)

// Columns holds all SQL columns for budgetitem fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldBudgetID,
	FieldDescription,
	FieldQuantity,
	FieldUnitPriceCents,
	FieldExtraConcept,
	FieldExtraPriceCents,
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
	// BudgetIDValidator is a validator for the "budget_id" field. It is called by the builders before save.
	BudgetIDValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	QuantityValidator func(int) error
	// UnitPriceCentsValidator is a validator for the "unit_price_cents" field. It is called by the builders before save.
	UnitPriceCentsValidator func(int64) error
	// DefaultExtraPriceCents holds the default value on creation for the "extra_price_cents" field.
	DefaultExtraPriceCents int64
	// ExtraPriceCentsValidator is a validator for the "extra_price_cents" field. It is called by the builders before save.
	ExtraPriceCentsValidator func(int64) error
)

// OrderOption defines the ordering options for the BudgetItem queries.
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

// ByBudgetID orders the results by the budget_id field.
func ByBudgetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByUnitPriceCents orders the results by the unit_price_cents field.
func ByUnitPriceCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitPriceCents, opts...).ToFunc()
}

// ByExtraConcept orders the results by the extra_concept field.
func ByExtraConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtraConcept, opts...).ToFunc()
}

// ByExtraPriceCents orders the results by the extra_price_cents field.
func ByExtraPriceCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtraPriceCents, opts...).ToFunc()
}
