// Code generated by ent, DO NOT EDIT.

package partusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldUpdatedAt, v))
}

// RepairRecordID applies equality check predicate on the "repair_record_id" field. It's identical to RepairRecordIDEQ.
func RepairRecordID(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldRepairRecordID, v))
}

// PartID applies equality check predicate on the "part_id" field. It's identical to PartIDEQ.
func PartID(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldPartID, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldQuantity, v))
}

// SourceDescription applies equality check predicate on the "source_description" field. It's identical to SourceDescriptionEQ.
func SourceDescription(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldSourceDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLTE(FieldUpdatedAt, v))
}

// RepairRecordIDEQ applies the EQ predicate on the "repair_record_id" field.
func RepairRecordIDEQ(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldRepairRecordID, v))
}

// RepairRecordIDNEQ applies the NEQ predicate on the "repair_record_id" field.
func RepairRecordIDNEQ(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNEQ(FieldRepairRecordID, v))
}

// RepairRecordIDIn applies the In predicate on the "repair_record_id" field.
func RepairRecordIDIn(vs ...string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldIn(FieldRepairRecordID, vs...))
}

// RepairRecordIDNotIn applies the NotIn predicate on the "repair_record_id" field.
func RepairRecordIDNotIn(vs ...string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNotIn(FieldRepairRecordID, vs...))
}

// RepairRecordIDGT applies the GT predicate on the "repair_record_id" field.
func RepairRecordIDGT(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGT(FieldRepairRecordID, v))
}

// RepairRecordIDGTE applies the GTE predicate on the "repair_record_id" field.
func RepairRecordIDGTE(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGTE(FieldRepairRecordID, v))
}

// RepairRecordIDLT applies the LT predicate on the "repair_record_id" field.
func RepairRecordIDLT(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLT(FieldRepairRecordID, v))
}

// RepairRecordIDLTE applies the LTE predicate on the "repair_record_id" field.
func RepairRecordIDLTE(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLTE(FieldRepairRecordID, v))
}

// RepairRecordIDContains applies the Contains predicate on the "repair_record_id" field.
func RepairRecordIDContains(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldContains(FieldRepairRecordID, v))
}

// RepairRecordIDHasPrefix applies the HasPrefix predicate on the "repair_record_id" field.
func RepairRecordIDHasPrefix(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldHasPrefix(FieldRepairRecordID, v))
}

// RepairRecordIDHasSuffix applies the HasSuffix predicate on the "repair_record_id" field.
func RepairRecordIDHasSuffix(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldHasSuffix(FieldRepairRecordID, v))
}

// RepairRecordIDEqualFold applies the EqualFold predicate on the "repair_record_id" field.
func RepairRecordIDEqualFold(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEqualFold(FieldRepairRecordID, v))
}

// RepairRecordIDContainsFold applies the ContainsFold predicate on the "repair_record_id" field.
func RepairRecordIDContainsFold(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldContainsFold(FieldRepairRecordID, v))
}

// PartIDEQ applies the EQ predicate on the "part_id" field.
func PartIDEQ(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldPartID, v))
}

// PartIDNEQ applies the NEQ predicate on the "part_id" field.
func PartIDNEQ(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNEQ(FieldPartID, v))
}

// PartIDIn applies the In predicate on the "part_id" field.
func PartIDIn(vs ...string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldIn(FieldPartID, vs...))
}

// PartIDNotIn applies the NotIn predicate on the "part_id" field.
func PartIDNotIn(vs ...string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNotIn(FieldPartID, vs...))
}

// PartIDGT applies the GT predicate on the "part_id" field.
func PartIDGT(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGT(FieldPartID, v))
}

// PartIDGTE applies the GTE predicate on the "part_id" field.
func PartIDGTE(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGTE(FieldPartID, v))
}

// PartIDLT applies the LT predicate on the "part_id" field.
func PartIDLT(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLT(FieldPartID, v))
}

// PartIDLTE applies the LTE predicate on the "part_id" field.
func PartIDLTE(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLTE(FieldPartID, v))
}

// PartIDContains applies the Contains predicate on the "part_id" field.
func PartIDContains(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldContains(FieldPartID, v))
}

// PartIDHasPrefix applies the HasPrefix predicate on the "part_id" field.
func PartIDHasPrefix(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldHasPrefix(FieldPartID, v))
}

// PartIDHasSuffix applies the HasSuffix predicate on the "part_id" field.
func PartIDHasSuffix(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldHasSuffix(FieldPartID, v))
}

// PartIDEqualFold applies the EqualFold predicate on the "part_id" field.
func PartIDEqualFold(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEqualFold(FieldPartID, v))
}

// PartIDContainsFold applies the ContainsFold predicate on the "part_id" field.
func PartIDContainsFold(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldContainsFold(FieldPartID, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLTE(FieldQuantity, v))
}

// SourceDescriptionEQ applies the EQ predicate on the "source_description" field.
func SourceDescriptionEQ(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEQ(FieldSourceDescription, v))
}

// SourceDescriptionNEQ applies the NEQ predicate on the "source_description" field.
func SourceDescriptionNEQ(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNEQ(FieldSourceDescription, v))
}

// SourceDescriptionIn applies the In predicate on the "source_description" field.
func SourceDescriptionIn(vs ...string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldIn(FieldSourceDescription, vs...))
}

// SourceDescriptionNotIn applies the NotIn predicate on the "source_description" field.
func SourceDescriptionNotIn(vs ...string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNotIn(FieldSourceDescription, vs...))
}

// SourceDescriptionGT applies the GT predicate on the "source_description" field.
func SourceDescriptionGT(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGT(FieldSourceDescription, v))
}

// SourceDescriptionGTE applies the GTE predicate on the "source_description" field.
func SourceDescriptionGTE(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldGTE(FieldSourceDescription, v))
}

// SourceDescriptionLT applies the LT predicate on the "source_description" field.
func SourceDescriptionLT(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLT(FieldSourceDescription, v))
}

// SourceDescriptionLTE applies the LTE predicate on the "source_description" field.
func SourceDescriptionLTE(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldLTE(FieldSourceDescription, v))
}

// SourceDescriptionContains applies the Contains predicate on the "source_description" field.
func SourceDescriptionContains(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldContains(FieldSourceDescription, v))
}

// SourceDescriptionHasPrefix applies the HasPrefix predicate on the "source_description" field.
func SourceDescriptionHasPrefix(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldHasPrefix(FieldSourceDescription, v))
}

// SourceDescriptionHasSuffix applies the HasSuffix predicate on the "source_description" field.
func SourceDescriptionHasSuffix(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldHasSuffix(FieldSourceDescription, v))
}

// SourceDescriptionIsNil applies the IsNil predicate on the "source_description" field.
func SourceDescriptionIsNil() predicate.PartUsage {
	return predicate.PartUsage(sql.FieldIsNull(FieldSourceDescription))
}

// SourceDescriptionNotNil applies the NotNil predicate on the "source_description" field.
func SourceDescriptionNotNil() predicate.PartUsage {
	return predicate.PartUsage(sql.FieldNotNull(FieldSourceDescription))
}

// SourceDescriptionEqualFold applies the EqualFold predicate on the "source_description" field.
func SourceDescriptionEqualFold(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldEqualFold(FieldSourceDescription, v))
}

// SourceDescriptionContainsFold applies the ContainsFold predicate on the "source_description" field.
func SourceDescriptionContainsFold(v string) predicate.PartUsage {
	return predicate.PartUsage(sql.FieldContainsFold(FieldSourceDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PartUsage) predicate.PartUsage {
	return predicate.PartUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PartUsage) predicate.PartUsage {
	return predicate.PartUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PartUsage) predicate.PartUsage {
	return predicate.PartUsage(sql.NotPredicates(p))
}
