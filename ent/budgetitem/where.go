// Code generated by ent, DO NOT EDIT.

package budgetitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// BudgetID applies equality check predicate on the "budget_id" field. It's identical to BudgetIDEQ.
func BudgetID(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldBudgetID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldDescription, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldQuantity, v))
}

// UnitPriceCents applies equality check predicate on the "unit_price_cents" field. It's identical to UnitPriceCentsEQ.
func UnitPriceCents(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldUnitPriceCents, v))
}

// ExtraConcept applies equality check predicate on the "extra_concept" field. It's identical to ExtraConceptEQ.
func ExtraConcept(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldExtraConcept, v))
}

// ExtraPriceCents applies equality check predicate on the "extra_price_cents" field. It's identical to ExtraPriceCentsEQ.
func ExtraPriceCents(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldExtraPriceCents, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// BudgetIDEQ applies the EQ predicate on the "budget_id" field.
func BudgetIDEQ(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldBudgetID, v))
}

// BudgetIDNEQ applies the NEQ predicate on the "budget_id" field.
func BudgetIDNEQ(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNEQ(FieldBudgetID, v))
}

// BudgetIDIn applies the In predicate on the "budget_id" field.
func BudgetIDIn(vs ...string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldIn(FieldBudgetID, vs...))
}

// BudgetIDNotIn applies the NotIn predicate on the "budget_id" field.
func BudgetIDNotIn(vs ...string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNotIn(FieldBudgetID, vs...))
}

// BudgetIDGT applies the GT predicate on the "budget_id" field.
func BudgetIDGT(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGT(FieldBudgetID, v))
}

// BudgetIDGTE applies the GTE predicate on the "budget_id" field.
func BudgetIDGTE(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGTE(FieldBudgetID, v))
}

// BudgetIDLT applies the LT predicate on the "budget_id" field.
func BudgetIDLT(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLT(FieldBudgetID, v))
}

// BudgetIDLTE applies the LTE predicate on the "budget_id" field.
func BudgetIDLTE(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLTE(FieldBudgetID, v))
}

// BudgetIDContains applies the Contains predicate on the "budget_id" field.
func BudgetIDContains(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldContains(FieldBudgetID, v))
}

// BudgetIDHasPrefix applies the HasPrefix predicate on the "budget_id" field.
func BudgetIDHasPrefix(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldHasPrefix(FieldBudgetID, v))
}

// BudgetIDHasSuffix applies the HasSuffix predicate on the "budget_id" field.
func BudgetIDHasSuffix(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldHasSuffix(FieldBudgetID, v))
}

// BudgetIDEqualFold applies the EqualFold predicate on the "budget_id" field.
func BudgetIDEqualFold(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEqualFold(FieldBudgetID, v))
}

// BudgetIDContainsFold applies the ContainsFold predicate on the "budget_id" field.
func BudgetIDContainsFold(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldContainsFold(FieldBudgetID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldContainsFold(FieldDescription, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLTE(FieldQuantity, v))
}

// UnitPriceCentsEQ applies the EQ predicate on the "unit_price_cents" field.
func UnitPriceCentsEQ(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldUnitPriceCents, v))
}

// UnitPriceCentsNEQ applies the NEQ predicate on the "unit_price_cents" field.
func UnitPriceCentsNEQ(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNEQ(FieldUnitPriceCents, v))
}

// UnitPriceCentsIn applies the In predicate on the "unit_price_cents" field.
func UnitPriceCentsIn(vs ...int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldIn(FieldUnitPriceCents, vs...))
}

// UnitPriceCentsNotIn applies the NotIn predicate on the "unit_price_cents" field.
func UnitPriceCentsNotIn(vs ...int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNotIn(FieldUnitPriceCents, vs...))
}

// UnitPriceCentsGT applies the GT predicate on the "unit_price_cents" field.
func UnitPriceCentsGT(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGT(FieldUnitPriceCents, v))
}

// UnitPriceCentsGTE applies the GTE predicate on the "unit_price_cents" field.
func UnitPriceCentsGTE(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGTE(FieldUnitPriceCents, v))
}

// UnitPriceCentsLT applies the LT predicate on the "unit_price_cents" field.
func UnitPriceCentsLT(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLT(FieldUnitPriceCents, v))
}

// UnitPriceCentsLTE applies the LTE predicate on the "unit_price_cents" field.
func UnitPriceCentsLTE(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLTE(FieldUnitPriceCents, v))
}

// ExtraConceptEQ applies the EQ predicate on the "extra_concept" field.
func ExtraConceptEQ(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldExtraConcept, v))
}

// ExtraConceptNEQ applies the NEQ predicate on the "extra_concept" field.
func ExtraConceptNEQ(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNEQ(FieldExtraConcept, v))
}

// ExtraConceptIn applies the In predicate on the "extra_concept" field.
func ExtraConceptIn(vs ...string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldIn(FieldExtraConcept, vs...))
}

// ExtraConceptNotIn applies the NotIn predicate on the "extra_concept" field.
func ExtraConceptNotIn(vs ...string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNotIn(FieldExtraConcept, vs...))
}

// ExtraConceptGT applies the GT predicate on the "extra_concept" field.
func ExtraConceptGT(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGT(FieldExtraConcept, v))
}

// ExtraConceptGTE applies the GTE predicate on the "extra_concept" field.
func ExtraConceptGTE(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGTE(FieldExtraConcept, v))
}

// ExtraConceptLT applies the LT predicate on the "extra_concept" field.
func ExtraConceptLT(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLT(FieldExtraConcept, v))
}

// ExtraConceptLTE applies the LTE predicate on the "extra_concept" field.
func ExtraConceptLTE(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLTE(FieldExtraConcept, v))
}

// ExtraConceptContains applies the Contains predicate on the "extra_concept" field.
func ExtraConceptContains(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldContains(FieldExtraConcept, v))
}

// ExtraConceptHasPrefix applies the HasPrefix predicate on the "extra_concept" field.
func ExtraConceptHasPrefix(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldHasPrefix(FieldExtraConcept, v))
}

// ExtraConceptHasSuffix applies the HasSuffix predicate on the "extra_concept" field.
func ExtraConceptHasSuffix(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldHasSuffix(FieldExtraConcept, v))
}

// ExtraConceptIsNil applies the IsNil predicate on the "extra_concept" field.
func ExtraConceptIsNil() predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldIsNull(FieldExtraConcept))
}

// ExtraConceptNotNil applies the NotNil predicate on the "extra_concept" field.
func ExtraConceptNotNil() predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNotNull(FieldExtraConcept))
}

// ExtraConceptEqualFold applies the EqualFold predicate on the "extra_concept" field.
func ExtraConceptEqualFold(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEqualFold(FieldExtraConcept, v))
}

// ExtraConceptContainsFold applies the ContainsFold predicate on the "extra_concept" field.
func ExtraConceptContainsFold(v string) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldContainsFold(FieldExtraConcept, v))
}

// ExtraPriceCentsEQ applies the EQ predicate on the "extra_price_cents" field.
func ExtraPriceCentsEQ(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldEQ(FieldExtraPriceCents, v))
}

// ExtraPriceCentsNEQ applies the NEQ predicate on the "extra_price_cents" field.
func ExtraPriceCentsNEQ(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNEQ(FieldExtraPriceCents, v))
}

// ExtraPriceCentsIn applies the In predicate on the "extra_price_cents" field.
func ExtraPriceCentsIn(vs ...int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldIn(FieldExtraPriceCents, vs...))
}

// ExtraPriceCentsNotIn applies the NotIn predicate on the "extra_price_cents" field.
func ExtraPriceCentsNotIn(vs ...int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldNotIn(FieldExtraPriceCents, vs...))
}

// ExtraPriceCentsGT applies the GT predicate on the "extra_price_cents" field.
func ExtraPriceCentsGT(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGT(FieldExtraPriceCents, v))
}

// ExtraPriceCentsGTE applies the GTE predicate on the "extra_price_cents" field.
func ExtraPriceCentsGTE(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldGTE(FieldExtraPriceCents, v))
}

// ExtraPriceCentsLT applies the LT predicate on the "extra_price_cents" field.
func ExtraPriceCentsLT(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLT(FieldExtraPriceCents, v))
}

// ExtraPriceCentsLTE applies the LTE predicate on the "extra_price_cents" field.
func ExtraPriceCentsLTE(v int64) predicate.BudgetItem {
	return predicate.BudgetItem(sql.FieldLTE(FieldExtraPriceCents, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BudgetItem) predicate.BudgetItem {
	return predicate.BudgetItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BudgetItem) predicate.BudgetItem {
	return predicate.BudgetItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BudgetItem) predicate.BudgetItem {
	return predicate.BudgetItem(sql.NotPredicates(p))
}
