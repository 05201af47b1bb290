// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCustomerID, v))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDeviceID, v))
}

// TechnicianID applies equality check predicate on the "technician_id" field. It's identical to TechnicianIDEQ.
func TechnicianID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTechnicianID, v))
}

// Cancelled applies equality check predicate on the "cancelled" field. It's identical to CancelledEQ.
func Cancelled(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCancelled, v))
}

// CancelReason applies equality check predicate on the "cancel_reason" field. It's identical to CancelReasonEQ.
func CancelReason(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCancelReason, v))
}

// StatusBeforeCancellation applies equality check predicate on the "status_before_cancellation" field. It's identical to StatusBeforeCancellationEQ.
func StatusBeforeCancellation(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldStatusBeforeCancellation, v))
}

// Delivered applies equality check predicate on the "delivered" field. It's identical to DeliveredEQ.
func Delivered(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDelivered, v))
}

// ProblemDescription applies equality check predicate on the "problem_description" field. It's identical to ProblemDescriptionEQ.
func ProblemDescription(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProblemDescription, v))
}

// DiagnosisStartedAt applies equality check predicate on the "diagnosis_started_at" field. It's identical to DiagnosisStartedAtEQ.
func DiagnosisStartedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDiagnosisStartedAt, v))
}

// DiagnosisFinishedAt applies equality check predicate on the "diagnosis_finished_at" field. It's identical to DiagnosisFinishedAtEQ.
func DiagnosisFinishedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDiagnosisFinishedAt, v))
}

// RepairStartedAt applies equality check predicate on the "repair_started_at" field. It's identical to RepairStartedAtEQ.
func RepairStartedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRepairStartedAt, v))
}

// RepairFinishedAt applies equality check predicate on the "repair_finished_at" field. It's identical to RepairFinishedAtEQ.
func RepairFinishedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRepairFinishedAt, v))
}

// DeliveredAt applies equality check predicate on the "delivered_at" field. It's identical to DeliveredAtEQ.
func DeliveredAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDeliveredAt, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCancelledAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldUpdatedAt, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCustomerID, vs...))
}

// CustomerIDGT applies the GT predicate on the "customer_id" field.
func CustomerIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCustomerID, v))
}

// CustomerIDGTE applies the GTE predicate on the "customer_id" field.
func CustomerIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCustomerID, v))
}

// CustomerIDLT applies the LT predicate on the "customer_id" field.
func CustomerIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCustomerID, v))
}

// CustomerIDLTE applies the LTE predicate on the "customer_id" field.
func CustomerIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCustomerID, v))
}

// CustomerIDContains applies the Contains predicate on the "customer_id" field.
func CustomerIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldCustomerID, v))
}

// CustomerIDHasPrefix applies the HasPrefix predicate on the "customer_id" field.
func CustomerIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldCustomerID, v))
}

// CustomerIDHasSuffix applies the HasSuffix predicate on the "customer_id" field.
func CustomerIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldCustomerID, v))
}

// CustomerIDEqualFold applies the EqualFold predicate on the "customer_id" field.
func CustomerIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldCustomerID, v))
}

// CustomerIDContainsFold applies the ContainsFold predicate on the "customer_id" field.
func CustomerIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldCustomerID, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldDeviceID, v))
}

// TechnicianIDEQ applies the EQ predicate on the "technician_id" field.
func TechnicianIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTechnicianID, v))
}

// TechnicianIDNEQ applies the NEQ predicate on the "technician_id" field.
func TechnicianIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTechnicianID, v))
}

// TechnicianIDIn applies the In predicate on the "technician_id" field.
func TechnicianIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTechnicianID, vs...))
}

// TechnicianIDNotIn applies the NotIn predicate on the "technician_id" field.
func TechnicianIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTechnicianID, vs...))
}

// TechnicianIDGT applies the GT predicate on the "technician_id" field.
func TechnicianIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldTechnicianID, v))
}

// TechnicianIDGTE applies the GTE predicate on the "technician_id" field.
func TechnicianIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldTechnicianID, v))
}

// TechnicianIDLT applies the LT predicate on the "technician_id" field.
func TechnicianIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldTechnicianID, v))
}

// TechnicianIDLTE applies the LTE predicate on the "technician_id" field.
func TechnicianIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldTechnicianID, v))
}

// TechnicianIDContains applies the Contains predicate on the "technician_id" field.
func TechnicianIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldTechnicianID, v))
}

// TechnicianIDHasPrefix applies the HasPrefix predicate on the "technician_id" field.
func TechnicianIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldTechnicianID, v))
}

// TechnicianIDHasSuffix applies the HasSuffix predicate on the "technician_id" field.
func TechnicianIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldTechnicianID, v))
}

// TechnicianIDIsNil applies the IsNil predicate on the "technician_id" field.
func TechnicianIDIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldTechnicianID))
}

// TechnicianIDNotNil applies the NotNil predicate on the "technician_id" field.
func TechnicianIDNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldTechnicianID))
}

// TechnicianIDEqualFold applies the EqualFold predicate on the "technician_id" field.
func TechnicianIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldTechnicianID, v))
}

// TechnicianIDContainsFold applies the ContainsFold predicate on the "technician_id" field.
func TechnicianIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldTechnicianID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldStatus, vs...))
}

// CancelledEQ applies the EQ predicate on the "cancelled" field.
func CancelledEQ(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCancelled, v))
}

// CancelledNEQ applies the NEQ predicate on the "cancelled" field.
func CancelledNEQ(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCancelled, v))
}

// CancelReasonEQ applies the EQ predicate on the "cancel_reason" field.
func CancelReasonEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCancelReason, v))
}

// CancelReasonNEQ applies the NEQ predicate on the "cancel_reason" field.
func CancelReasonNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCancelReason, v))
}

// CancelReasonIn applies the In predicate on the "cancel_reason" field.
func CancelReasonIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCancelReason, vs...))
}

// CancelReasonNotIn applies the NotIn predicate on the "cancel_reason" field.
func CancelReasonNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCancelReason, vs...))
}

// CancelReasonGT applies the GT predicate on the "cancel_reason" field.
func CancelReasonGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCancelReason, v))
}

// CancelReasonGTE applies the GTE predicate on the "cancel_reason" field.
func CancelReasonGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCancelReason, v))
}

// CancelReasonLT applies the LT predicate on the "cancel_reason" field.
func CancelReasonLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCancelReason, v))
}

// CancelReasonLTE applies the LTE predicate on the "cancel_reason" field.
func CancelReasonLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCancelReason, v))
}

// CancelReasonContains applies the Contains predicate on the "cancel_reason" field.
func CancelReasonContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldCancelReason, v))
}

// CancelReasonHasPrefix applies the HasPrefix predicate on the "cancel_reason" field.
func CancelReasonHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldCancelReason, v))
}

// CancelReasonHasSuffix applies the HasSuffix predicate on the "cancel_reason" field.
func CancelReasonHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldCancelReason, v))
}

// CancelReasonIsNil applies the IsNil predicate on the "cancel_reason" field.
func CancelReasonIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldCancelReason))
}

// CancelReasonNotNil applies the NotNil predicate on the "cancel_reason" field.
func CancelReasonNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldCancelReason))
}

// CancelReasonEqualFold applies the EqualFold predicate on the "cancel_reason" field.
func CancelReasonEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldCancelReason, v))
}

// CancelReasonContainsFold applies the ContainsFold predicate on the "cancel_reason" field.
func CancelReasonContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldCancelReason, v))
}

// StatusBeforeCancellationEQ applies the EQ predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldStatusBeforeCancellation, v))
}

// StatusBeforeCancellationNEQ applies the NEQ predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldStatusBeforeCancellation, v))
}

// StatusBeforeCancellationIn applies the In predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldStatusBeforeCancellation, vs...))
}

// StatusBeforeCancellationNotIn applies the NotIn predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldStatusBeforeCancellation, vs...))
}

// StatusBeforeCancellationGT applies the GT predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldStatusBeforeCancellation, v))
}

// StatusBeforeCancellationGTE applies the GTE predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldStatusBeforeCancellation, v))
}

// StatusBeforeCancellationLT applies the LT predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldStatusBeforeCancellation, v))
}

// StatusBeforeCancellationLTE applies the LTE predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldStatusBeforeCancellation, v))
}

// StatusBeforeCancellationContains applies the Contains predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldStatusBeforeCancellation, v))
}

// StatusBeforeCancellationHasPrefix applies the HasPrefix predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldStatusBeforeCancellation, v))
}

// StatusBeforeCancellationHasSuffix applies the HasSuffix predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldStatusBeforeCancellation, v))
}

// StatusBeforeCancellationIsNil applies the IsNil predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldStatusBeforeCancellation))
}

// StatusBeforeCancellationNotNil applies the NotNil predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldStatusBeforeCancellation))
}

// StatusBeforeCancellationEqualFold applies the EqualFold predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldStatusBeforeCancellation, v))
}

// StatusBeforeCancellationContainsFold applies the ContainsFold predicate on the "status_before_cancellation" field.
func StatusBeforeCancellationContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldStatusBeforeCancellation, v))
}

// DeliveredEQ applies the EQ predicate on the "delivered" field.
func DeliveredEQ(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDelivered, v))
}

// DeliveredNEQ applies the NEQ predicate on the "delivered" field.
func DeliveredNEQ(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldDelivered, v))
}

// ProblemDescriptionEQ applies the EQ predicate on the "problem_description" field.
func ProblemDescriptionEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProblemDescription, v))
}

// ProblemDescriptionNEQ applies the NEQ predicate on the "problem_description" field.
func ProblemDescriptionNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldProblemDescription, v))
}

// ProblemDescriptionIn applies the In predicate on the "problem_description" field.
func ProblemDescriptionIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldProblemDescription, vs...))
}

// ProblemDescriptionNotIn applies the NotIn predicate on the "problem_description" field.
func ProblemDescriptionNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldProblemDescription, vs...))
}

// ProblemDescriptionGT applies the GT predicate on the "problem_description" field.
func ProblemDescriptionGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldProblemDescription, v))
}

// ProblemDescriptionGTE applies the GTE predicate on the "problem_description" field.
func ProblemDescriptionGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldProblemDescription, v))
}

// ProblemDescriptionLT applies the LT predicate on the "problem_description" field.
func ProblemDescriptionLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldProblemDescription, v))
}

// ProblemDescriptionLTE applies the LTE predicate on the "problem_description" field.
func ProblemDescriptionLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldProblemDescription, v))
}

// ProblemDescriptionContains applies the Contains predicate on the "problem_description" field.
func ProblemDescriptionContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldProblemDescription, v))
}

// ProblemDescriptionHasPrefix applies the HasPrefix predicate on the "problem_description" field.
func ProblemDescriptionHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldProblemDescription, v))
}

// ProblemDescriptionHasSuffix applies the HasSuffix predicate on the "problem_description" field.
func ProblemDescriptionHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldProblemDescription, v))
}

// ProblemDescriptionIsNil applies the IsNil predicate on the "problem_description" field.
func ProblemDescriptionIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldProblemDescription))
}

// ProblemDescriptionNotNil applies the NotNil predicate on the "problem_description" field.
func ProblemDescriptionNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldProblemDescription))
}

// ProblemDescriptionEqualFold applies the EqualFold predicate on the "problem_description" field.
func ProblemDescriptionEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldProblemDescription, v))
}

// ProblemDescriptionContainsFold applies the ContainsFold predicate on the "problem_description" field.
func ProblemDescriptionContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldProblemDescription, v))
}

// DiagnosisStartedAtEQ applies the EQ predicate on the "diagnosis_started_at" field.
func DiagnosisStartedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDiagnosisStartedAt, v))
}

// DiagnosisStartedAtNEQ applies the NEQ predicate on the "diagnosis_started_at" field.
func DiagnosisStartedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldDiagnosisStartedAt, v))
}

// DiagnosisStartedAtIn applies the In predicate on the "diagnosis_started_at" field.
func DiagnosisStartedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldDiagnosisStartedAt, vs...))
}

// DiagnosisStartedAtNotIn applies the NotIn predicate on the "diagnosis_started_at" field.
func DiagnosisStartedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldDiagnosisStartedAt, vs...))
}

// DiagnosisStartedAtGT applies the GT predicate on the "diagnosis_started_at" field.
func DiagnosisStartedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldDiagnosisStartedAt, v))
}

// DiagnosisStartedAtGTE applies the GTE predicate on the "diagnosis_started_at" field.
func DiagnosisStartedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldDiagnosisStartedAt, v))
}

// DiagnosisStartedAtLT applies the LT predicate on the "diagnosis_started_at" field.
func DiagnosisStartedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldDiagnosisStartedAt, v))
}

// DiagnosisStartedAtLTE applies the LTE predicate on the "diagnosis_started_at" field.
func DiagnosisStartedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldDiagnosisStartedAt, v))
}

// DiagnosisStartedAtIsNil applies the IsNil predicate on the "diagnosis_started_at" field.
func DiagnosisStartedAtIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldDiagnosisStartedAt))
}

// DiagnosisStartedAtNotNil applies the NotNil predicate on the "diagnosis_started_at" field.
func DiagnosisStartedAtNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldDiagnosisStartedAt))
}

// DiagnosisFinishedAtEQ applies the EQ predicate on the "diagnosis_finished_at" field.
func DiagnosisFinishedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDiagnosisFinishedAt, v))
}

// DiagnosisFinishedAtNEQ applies the NEQ predicate on the "diagnosis_finished_at" field.
func DiagnosisFinishedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldDiagnosisFinishedAt, v))
}

// DiagnosisFinishedAtIn applies the In predicate on the "diagnosis_finished_at" field.
func DiagnosisFinishedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldDiagnosisFinishedAt, vs...))
}

// DiagnosisFinishedAtNotIn applies the NotIn predicate on the "diagnosis_finished_at" field.
func DiagnosisFinishedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldDiagnosisFinishedAt, vs...))
}

// DiagnosisFinishedAtGT applies the GT predicate on the "diagnosis_finished_at" field.
func DiagnosisFinishedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldDiagnosisFinishedAt, v))
}

// DiagnosisFinishedAtGTE applies the GTE predicate on the "diagnosis_finished_at" field.
func DiagnosisFinishedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldDiagnosisFinishedAt, v))
}

// DiagnosisFinishedAtLT applies the LT predicate on the "diagnosis_finished_at" field.
func DiagnosisFinishedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldDiagnosisFinishedAt, v))
}

// DiagnosisFinishedAtLTE applies the LTE predicate on the "diagnosis_finished_at" field.
func DiagnosisFinishedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldDiagnosisFinishedAt, v))
}

// DiagnosisFinishedAtIsNil applies the IsNil predicate on the "diagnosis_finished_at" field.
func DiagnosisFinishedAtIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldDiagnosisFinishedAt))
}

// DiagnosisFinishedAtNotNil applies the NotNil predicate on the "diagnosis_finished_at" field.
func DiagnosisFinishedAtNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldDiagnosisFinishedAt))
}

// RepairStartedAtEQ applies the EQ predicate on the "repair_started_at" field.
func RepairStartedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRepairStartedAt, v))
}

// RepairStartedAtNEQ applies the NEQ predicate on the "repair_started_at" field.
func RepairStartedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldRepairStartedAt, v))
}

// RepairStartedAtIn applies the In predicate on the "repair_started_at" field.
func RepairStartedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldRepairStartedAt, vs...))
}

// RepairStartedAtNotIn applies the NotIn predicate on the "repair_started_at" field.
func RepairStartedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldRepairStartedAt, vs...))
}

// RepairStartedAtGT applies the GT predicate on the "repair_started_at" field.
func RepairStartedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldRepairStartedAt, v))
}

// RepairStartedAtGTE applies the GTE predicate on the "repair_started_at" field.
func RepairStartedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldRepairStartedAt, v))
}

// RepairStartedAtLT applies the LT predicate on the "repair_started_at" field.
func RepairStartedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldRepairStartedAt, v))
}

// RepairStartedAtLTE applies the LTE predicate on the "repair_started_at" field.
func RepairStartedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldRepairStartedAt, v))
}

// RepairStartedAtIsNil applies the IsNil predicate on the "repair_started_at" field.
func RepairStartedAtIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldRepairStartedAt))
}

// RepairStartedAtNotNil applies the NotNil predicate on the "repair_started_at" field.
func RepairStartedAtNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldRepairStartedAt))
}

// RepairFinishedAtEQ applies the EQ predicate on the "repair_finished_at" field.
func RepairFinishedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRepairFinishedAt, v))
}

// RepairFinishedAtNEQ applies the NEQ predicate on the "repair_finished_at" field.
func RepairFinishedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldRepairFinishedAt, v))
}

// RepairFinishedAtIn applies the In predicate on the "repair_finished_at" field.
func RepairFinishedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldRepairFinishedAt, vs...))
}

// RepairFinishedAtNotIn applies the NotIn predicate on the "repair_finished_at" field.
func RepairFinishedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldRepairFinishedAt, vs...))
}

// RepairFinishedAtGT applies the GT predicate on the "repair_finished_at" field.
func RepairFinishedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldRepairFinishedAt, v))
}

// RepairFinishedAtGTE applies the GTE predicate on the "repair_finished_at" field.
func RepairFinishedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldRepairFinishedAt, v))
}

// RepairFinishedAtLT applies the LT predicate on the "repair_finished_at" field.
func RepairFinishedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldRepairFinishedAt, v))
}

// RepairFinishedAtLTE applies the LTE predicate on the "repair_finished_at" field.
func RepairFinishedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldRepairFinishedAt, v))
}

// RepairFinishedAtIsNil applies the IsNil predicate on the "repair_finished_at" field.
func RepairFinishedAtIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldRepairFinishedAt))
}

// RepairFinishedAtNotNil applies the NotNil predicate on the "repair_finished_at" field.
func RepairFinishedAtNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldRepairFinishedAt))
}

// DeliveredAtEQ applies the EQ predicate on the "delivered_at" field.
func DeliveredAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredAtNEQ applies the NEQ predicate on the "delivered_at" field.
func DeliveredAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldDeliveredAt, v))
}

// DeliveredAtIn applies the In predicate on the "delivered_at" field.
func DeliveredAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldDeliveredAt, vs...))
}

// DeliveredAtNotIn applies the NotIn predicate on the "delivered_at" field.
func DeliveredAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldDeliveredAt, vs...))
}

// DeliveredAtGT applies the GT predicate on the "delivered_at" field.
func DeliveredAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldDeliveredAt, v))
}

// DeliveredAtGTE applies the GTE predicate on the "delivered_at" field.
func DeliveredAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldDeliveredAt, v))
}

// DeliveredAtLT applies the LT predicate on the "delivered_at" field.
func DeliveredAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldDeliveredAt, v))
}

// DeliveredAtLTE applies the LTE predicate on the "delivered_at" field.
func DeliveredAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldDeliveredAt, v))
}

// DeliveredAtIsNil applies the IsNil predicate on the "delivered_at" field.
func DeliveredAtIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldDeliveredAt))
}

// DeliveredAtNotNil applies the NotNil predicate on the "delivered_at" field.
func DeliveredAtNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldDeliveredAt))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldCancelledAt))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldCreatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.NotPredicates(p))
}
