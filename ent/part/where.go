// Code generated by ent, DO NOT EDIT.

package part

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Part {
	return predicate.Part(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Part {
	return predicate.Part(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Part {
	return predicate.Part(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Part {
	return predicate.Part(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Part {
	return predicate.Part(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Part {
	return predicate.Part(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Part {
	return predicate.Part(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Part {
	return predicate.Part(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Part {
	return predicate.Part(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldName, v))
}

// Sku applies equality check predicate on the "sku" field. It's identical to SkuEQ.
func Sku(v string) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldSku, v))
}

// StockQuantity applies equality check predicate on the "stock_quantity" field. It's identical to StockQuantityEQ.
func StockQuantity(v int) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldStockQuantity, v))
}

// MinimumStock applies equality check predicate on the "minimum_stock" field. It's identical to MinimumStockEQ.
func MinimumStock(v int) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldMinimumStock, v))
}

// MaximumStock applies equality check predicate on the "maximum_stock" field. It's identical to MaximumStockEQ.
func MaximumStock(v int) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldMaximumStock, v))
}

// UnitPriceCents applies equality check predicate on the "unit_price_cents" field. It's identical to UnitPriceCentsEQ.
func UnitPriceCents(v int64) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldUnitPriceCents, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Part {
	return predicate.Part(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Part {
	return predicate.Part(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Part {
	return predicate.Part(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Part {
	return predicate.Part(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Part {
	return predicate.Part(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Part {
	return predicate.Part(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Part {
	return predicate.Part(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Part {
	return predicate.Part(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Part {
	return predicate.Part(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Part {
	return predicate.Part(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Part {
	return predicate.Part(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Part {
	return predicate.Part(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Part {
	return predicate.Part(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Part {
	return predicate.Part(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Part {
	return predicate.Part(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Part {
	return predicate.Part(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Part {
	return predicate.Part(sql.FieldContainsFold(FieldName, v))
}

// SkuEQ applies the EQ predicate on the "sku" field.
func SkuEQ(v string) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldSku, v))
}

// SkuNEQ applies the NEQ predicate on the "sku" field.
func SkuNEQ(v string) predicate.Part {
	return predicate.Part(sql.FieldNEQ(FieldSku, v))
}

// SkuIn applies the In predicate on the "sku" field.
func SkuIn(vs ...string) predicate.Part {
	return predicate.Part(sql.FieldIn(FieldSku, vs...))
}

// SkuNotIn applies the NotIn predicate on the "sku" field.
func SkuNotIn(vs ...string) predicate.Part {
	return predicate.Part(sql.FieldNotIn(FieldSku, vs...))
}

// SkuGT applies the GT predicate on the "sku" field.
func SkuGT(v string) predicate.Part {
	return predicate.Part(sql.FieldGT(FieldSku, v))
}

// SkuGTE applies the GTE predicate on the "sku" field.
func SkuGTE(v string) predicate.Part {
	return predicate.Part(sql.FieldGTE(FieldSku, v))
}

// SkuLT applies the LT predicate on the "sku" field.
func SkuLT(v string) predicate.Part {
	return predicate.Part(sql.FieldLT(FieldSku, v))
}

// SkuLTE applies the LTE predicate on the "sku" field.
func SkuLTE(v string) predicate.Part {
	return predicate.Part(sql.FieldLTE(FieldSku, v))
}

// SkuContains applies the Contains predicate on the "sku" field.
func SkuContains(v string) predicate.Part {
	return predicate.Part(sql.FieldContains(FieldSku, v))
}

// SkuHasPrefix applies the HasPrefix predicate on the "sku" field.
func SkuHasPrefix(v string) predicate.Part {
	return predicate.Part(sql.FieldHasPrefix(FieldSku, v))
}

// SkuHasSuffix applies the HasSuffix predicate on the "sku" field.
func SkuHasSuffix(v string) predicate.Part {
	return predicate.Part(sql.FieldHasSuffix(FieldSku, v))
}

// SkuEqualFold applies the EqualFold predicate on the "sku" field.
func SkuEqualFold(v string) predicate.Part {
	return predicate.Part(sql.FieldEqualFold(FieldSku, v))
}

// SkuContainsFold applies the ContainsFold predicate on the "sku" field.
func SkuContainsFold(v string) predicate.Part {
	return predicate.Part(sql.FieldContainsFold(FieldSku, v))
}

// StockQuantityEQ applies the EQ predicate on the "stock_quantity" field.
func StockQuantityEQ(v int) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldStockQuantity, v))
}

// StockQuantityNEQ applies the NEQ predicate on the "stock_quantity" field.
func StockQuantityNEQ(v int) predicate.Part {
	return predicate.Part(sql.FieldNEQ(FieldStockQuantity, v))
}

// StockQuantityIn applies the In predicate on the "stock_quantity" field.
func StockQuantityIn(vs ...int) predicate.Part {
	return predicate.Part(sql.FieldIn(FieldStockQuantity, vs...))
}

// StockQuantityNotIn applies the NotIn predicate on the "stock_quantity" field.
func StockQuantityNotIn(vs ...int) predicate.Part {
	return predicate.Part(sql.FieldNotIn(FieldStockQuantity, vs...))
}

// StockQuantityGT applies the GT predicate on the "stock_quantity" field.
func StockQuantityGT(v int) predicate.Part {
	return predicate.Part(sql.FieldGT(FieldStockQuantity, v))
}

// StockQuantityGTE applies the GTE predicate on the "stock_quantity" field.
func StockQuantityGTE(v int) predicate.Part {
	return predicate.Part(sql.FieldGTE(FieldStockQuantity, v))
}

// StockQuantityLT applies the LT predicate on the "stock_quantity" field.
func StockQuantityLT(v int) predicate.Part {
	return predicate.Part(sql.FieldLT(FieldStockQuantity, v))
}

// StockQuantityLTE applies the LTE predicate on the "stock_quantity" field.
func StockQuantityLTE(v int) predicate.Part {
	return predicate.Part(sql.FieldLTE(FieldStockQuantity, v))
}

// MinimumStockEQ applies the EQ predicate on the "minimum_stock" field.
func MinimumStockEQ(v int) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldMinimumStock, v))
}

// MinimumStockNEQ applies the NEQ predicate on the "minimum_stock" field.
func MinimumStockNEQ(v int) predicate.Part {
	return predicate.Part(sql.FieldNEQ(FieldMinimumStock, v))
}

// MinimumStockIn applies the In predicate on the "minimum_stock" field.
func MinimumStockIn(vs ...int) predicate.Part {
	return predicate.Part(sql.FieldIn(FieldMinimumStock, vs...))
}

// MinimumStockNotIn applies the NotIn predicate on the "minimum_stock" field.
func MinimumStockNotIn(vs ...int) predicate.Part {
	return predicate.Part(sql.FieldNotIn(FieldMinimumStock, vs...))
}

// MinimumStockGT applies the GT predicate on the "minimum_stock" field.
func MinimumStockGT(v int) predicate.Part {
	return predicate.Part(sql.FieldGT(FieldMinimumStock, v))
}

// MinimumStockGTE applies the GTE predicate on the "minimum_stock" field.
func MinimumStockGTE(v int) predicate.Part {
	return predicate.Part(sql.FieldGTE(FieldMinimumStock, v))
}

// MinimumStockLT applies the LT predicate on the "minimum_stock" field.
func MinimumStockLT(v int) predicate.Part {
	return predicate.Part(sql.FieldLT(FieldMinimumStock, v))
}

// MinimumStockLTE applies the LTE predicate on the "minimum_stock" field.
func MinimumStockLTE(v int) predicate.Part {
	return predicate.Part(sql.FieldLTE(FieldMinimumStock, v))
}

// MaximumStockEQ applies the EQ predicate on the "maximum_stock" field.
func MaximumStockEQ(v int) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldMaximumStock, v))
}

// MaximumStockNEQ applies the NEQ predicate on the "maximum_stock" field.
func MaximumStockNEQ(v int) predicate.Part {
	return predicate.Part(sql.FieldNEQ(FieldMaximumStock, v))
}

// MaximumStockIn applies the In predicate on the "maximum_stock" field.
func MaximumStockIn(vs ...int) predicate.Part {
	return predicate.Part(sql.FieldIn(FieldMaximumStock, vs...))
}

// MaximumStockNotIn applies the NotIn predicate on the "maximum_stock" field.
func MaximumStockNotIn(vs ...int) predicate.Part {
	return predicate.Part(sql.FieldNotIn(FieldMaximumStock, vs...))
}

// MaximumStockGT applies the GT predicate on the "maximum_stock" field.
func MaximumStockGT(v int) predicate.Part {
	return predicate.Part(sql.FieldGT(FieldMaximumStock, v))
}

// MaximumStockGTE applies the GTE predicate on the "maximum_stock" field.
func MaximumStockGTE(v int) predicate.Part {
	return predicate.Part(sql.FieldGTE(FieldMaximumStock, v))
}

// MaximumStockLT applies the LT predicate on the "maximum_stock" field.
func MaximumStockLT(v int) predicate.Part {
	return predicate.Part(sql.FieldLT(FieldMaximumStock, v))
}

// MaximumStockLTE applies the LTE predicate on the "maximum_stock" field.
func MaximumStockLTE(v int) predicate.Part {
	return predicate.Part(sql.FieldLTE(FieldMaximumStock, v))
}

// UnitPriceCentsEQ applies the EQ predicate on the "unit_price_cents" field.
func UnitPriceCentsEQ(v int64) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldUnitPriceCents, v))
}

// UnitPriceCentsNEQ applies the NEQ predicate on the "unit_price_cents" field.
func UnitPriceCentsNEQ(v int64) predicate.Part {
	return predicate.Part(sql.FieldNEQ(FieldUnitPriceCents, v))
}

// UnitPriceCentsIn applies the In predicate on the "unit_price_cents" field.
func UnitPriceCentsIn(vs ...int64) predicate.Part {
	return predicate.Part(sql.FieldIn(FieldUnitPriceCents, vs...))
}

// UnitPriceCentsNotIn applies the NotIn predicate on the "unit_price_cents" field.
func UnitPriceCentsNotIn(vs ...int64) predicate.Part {
	return predicate.Part(sql.FieldNotIn(FieldUnitPriceCents, vs...))
}

// UnitPriceCentsGT applies the GT predicate on the "unit_price_cents" field.
func UnitPriceCentsGT(v int64) predicate.Part {
	return predicate.Part(sql.FieldGT(FieldUnitPriceCents, v))
}

// UnitPriceCentsGTE applies the GTE predicate on the "unit_price_cents" field.
func UnitPriceCentsGTE(v int64) predicate.Part {
	return predicate.Part(sql.FieldGTE(FieldUnitPriceCents, v))
}

// UnitPriceCentsLT applies the LT predicate on the "unit_price_cents" field.
func UnitPriceCentsLT(v int64) predicate.Part {
	return predicate.Part(sql.FieldLT(FieldUnitPriceCents, v))
}

// UnitPriceCentsLTE applies the LTE predicate on the "unit_price_cents" field.
func UnitPriceCentsLTE(v int64) predicate.Part {
	return predicate.Part(sql.FieldLTE(FieldUnitPriceCents, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Part {
	return predicate.Part(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Part {
	return predicate.Part(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Part) predicate.Part {
	return predicate.Part(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Part) predicate.Part {
	return predicate.Part(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Part) predicate.Part {
	return predicate.Part(sql.NotPredicates(p))
}
