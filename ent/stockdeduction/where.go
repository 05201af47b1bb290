// Code generated by ent, DO NOT EDIT.

package stockdeduction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldCreatedAt, v))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldTicketID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldCreatedBy, v))
}

// ReversedAt applies equality check predicate on the "reversed_at" field. It's identical to ReversedAtEQ.
func ReversedAt(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldReversedAt, v))
}

// ReversedBy applies equality check predicate on the "reversed_by" field. It's identical to ReversedByEQ.
func ReversedBy(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldReversedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLTE(FieldCreatedAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldContainsFold(FieldTicketID, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldContainsFold(FieldCreatedBy, v))
}

// ReversedAtEQ applies the EQ predicate on the "reversed_at" field.
func ReversedAtEQ(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldReversedAt, v))
}

// ReversedAtNEQ applies the NEQ predicate on the "reversed_at" field.
func ReversedAtNEQ(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNEQ(FieldReversedAt, v))
}

// ReversedAtIn applies the In predicate on the "reversed_at" field.
func ReversedAtIn(vs ...time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldIn(FieldReversedAt, vs...))
}

// ReversedAtNotIn applies the NotIn predicate on the "reversed_at" field.
func ReversedAtNotIn(vs ...time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNotIn(FieldReversedAt, vs...))
}

// ReversedAtGT applies the GT predicate on the "reversed_at" field.
func ReversedAtGT(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGT(FieldReversedAt, v))
}

// ReversedAtGTE applies the GTE predicate on the "reversed_at" field.
func ReversedAtGTE(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGTE(FieldReversedAt, v))
}

// ReversedAtLT applies the LT predicate on the "reversed_at" field.
func ReversedAtLT(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLT(FieldReversedAt, v))
}

// ReversedAtLTE applies the LTE predicate on the "reversed_at" field.
func ReversedAtLTE(v time.Time) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLTE(FieldReversedAt, v))
}

// ReversedAtIsNil applies the IsNil predicate on the "reversed_at" field.
func ReversedAtIsNil() predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldIsNull(FieldReversedAt))
}

// ReversedAtNotNil applies the NotNil predicate on the "reversed_at" field.
func ReversedAtNotNil() predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNotNull(FieldReversedAt))
}

// ReversedByEQ applies the EQ predicate on the "reversed_by" field.
func ReversedByEQ(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEQ(FieldReversedBy, v))
}

// ReversedByNEQ applies the NEQ predicate on the "reversed_by" field.
func ReversedByNEQ(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNEQ(FieldReversedBy, v))
}

// ReversedByIn applies the In predicate on the "reversed_by" field.
func ReversedByIn(vs ...string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldIn(FieldReversedBy, vs...))
}

// ReversedByNotIn applies the NotIn predicate on the "reversed_by" field.
func ReversedByNotIn(vs ...string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNotIn(FieldReversedBy, vs...))
}

// ReversedByGT applies the GT predicate on the "reversed_by" field.
func ReversedByGT(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGT(FieldReversedBy, v))
}

// ReversedByGTE applies the GTE predicate on the "reversed_by" field.
func ReversedByGTE(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldGTE(FieldReversedBy, v))
}

// ReversedByLT applies the LT predicate on the "reversed_by" field.
func ReversedByLT(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLT(FieldReversedBy, v))
}

// ReversedByLTE applies the LTE predicate on the "reversed_by" field.
func ReversedByLTE(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldLTE(FieldReversedBy, v))
}

// ReversedByContains applies the Contains predicate on the "reversed_by" field.
func ReversedByContains(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldContains(FieldReversedBy, v))
}

// ReversedByHasPrefix applies the HasPrefix predicate on the "reversed_by" field.
func ReversedByHasPrefix(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldHasPrefix(FieldReversedBy, v))
}

// ReversedByHasSuffix applies the HasSuffix predicate on the "reversed_by" field.
func ReversedByHasSuffix(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldHasSuffix(FieldReversedBy, v))
}

// ReversedByIsNil applies the IsNil predicate on the "reversed_by" field.
func ReversedByIsNil() predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldIsNull(FieldReversedBy))
}

// ReversedByNotNil applies the NotNil predicate on the "reversed_by" field.
func ReversedByNotNil() predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldNotNull(FieldReversedBy))
}

// ReversedByEqualFold applies the EqualFold predicate on the "reversed_by" field.
func ReversedByEqualFold(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldEqualFold(FieldReversedBy, v))
}

// ReversedByContainsFold applies the ContainsFold predicate on the "reversed_by" field.
func ReversedByContainsFold(v string) predicate.StockDeduction {
	return predicate.StockDeduction(sql.FieldContainsFold(FieldReversedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StockDeduction) predicate.StockDeduction {
	return predicate.StockDeduction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StockDeduction) predicate.StockDeduction {
	return predicate.StockDeduction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StockDeduction) predicate.StockDeduction {
	return predicate.StockDeduction(sql.NotPredicates(p))
}
