// Code generated by ent, DO NOT EDIT.

package part

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the part type in the database.
	Label = "part"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSku holds the string denoting the sku field in the database.
	FieldSku = "sku"
	// FieldStockQuantity holds the string denoting the stock_quantity field in the database.
	FieldStockQuantity = "stock_quantity"
	// FieldMinimumStock holds the string denoting the minimum_stock field in the database.
	FieldMinimumStock = "minimum_stock"
	// FieldMaximumStock holds the string denoting the maximum_stock field in the database.
	FieldMaximumStock = "maximum_stock"
	// FieldUnitPriceCents holds the string denoting the unit_price_cents field in the database.
	FieldUnitPriceCents = "unit_price_cents"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// Table holds the table name of the part in the database.
	Table = "parts"
)

// Columns holds all SQL columns for part fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldSku,
	FieldStockQuantity,
	FieldMinimumStock,
	FieldMaximumStock,
	FieldUnitPriceCents,
	FieldActive,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SkuValidator is a validator for the "sku" field. It is called by the builders before save.
	SkuValidator func(string) error
	// DefaultStockQuantity holds the default value on creation for the "stock_quantity" field.
	DefaultStockQuantity int
	// StockQuantityValidator is a validator for the "stock_quantity" field. It is called by the builders before save.
	StockQuantityValidator func(int) error
	// DefaultMinimumStock holds the default value on creation for the "minimum_stock" field.
	DefaultMinimumStock int
	// MinimumStockValidator is a validator for the "minimum_stock" field. It is called by the builders before save.
	MinimumStockValidator func(int) error
	// DefaultMaximumStock holds the default value on creation for the "maximum_stock" field.
	DefaultMaximumStock int
	// MaximumStockValidator is a validator for the "maximum_stock" field. It is called by the builders before save.
	MaximumStockValidator func(int) error
	// DefaultUnitPriceCents holds the default value on creation for the "unit_price_cents" field.
	DefaultUnitPriceCents int64
	// UnitPriceCentsValidator is a validator for the "unit_price_cents" field. It is called by the builders before save.
	UnitPriceCentsValidator func(int64) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
)

// OrderOption defines the ordering options for the Part queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySku orders the results by the sku field.
func BySku(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSku, opts...).ToFunc()
}

// ByStockQuantity orders the results by the stock_quantity field.
func ByStockQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStockQuantity, opts...).ToFunc()
}

// ByMinimumStock orders the results by the minimum_stock field.
func ByMinimumStock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinimumStock, opts...).ToFunc()
}

// ByMaximumStock orders the results by the maximum_stock field.
func ByMaximumStock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaximumStock, opts...).ToFunc()
}

// ByUnitPriceCents orders the results by the unit_price_cents field.
func ByUnitPriceCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitPriceCents, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}
