// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ticket type in the database.
	Label = "ticket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCustomerID holds the string denoting the customer_id field in the database.
	FieldCustomerID = "customer_id"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldTechnicianID holds the string denoting the technician_id field in the database.
	FieldTechnicianID = "technician_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCancelled holds the string denoting the cancelled field in the database.
	FieldCancelled = "cancelled"
	// FieldCancelReason holds the string denoting the cancel_reason field in the database.
	FieldCancelReason = "cancel_reason"
	// FieldStatusBeforeCancellation holds the string denoting the status_before_cancellation field in the database.
	FieldStatusBeforeCancellation = "status_before_cancellation"
	// FieldDelivered holds the string denoting the delivered field in the database.
	FieldDelivered = "delivered"
	// FieldProblemDescription holds the string denoting the problem_description field in the database.
	FieldProblemDescription = "problem_description"
	// FieldDiagnosisStartedAt holds the string denoting the diagnosis_started_at field in the database.
	FieldDiagnosisStartedAt = "diagnosis_started_at"
	// FieldDiagnosisFinishedAt holds the string denoting the diagnosis_finished_at field in the database.
	FieldDiagnosisFinishedAt = "diagnosis_finished_at"
	// FieldRepairStartedAt holds the string denoting the repair_started_at field in the database.
	FieldRepairStartedAt = "repair_started_at"
	// FieldRepairFinishedAt holds the string denoting the repair_finished_at field in the database.
	FieldRepairFinishedAt = "repair_finished_at"
	// FieldDeliveredAt holds the string denoting the delivered_at field in the database.
	FieldDeliveredAt = "delivered_at"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// Table holds the table name of the ticket in the database.
	Table = "tickets"
)

// Columns holds all SQL columns for ticket fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCustomerID,
	FieldDeviceID,
	FieldTechnicianID,
	FieldStatus,
	FieldCancelled,
	FieldCancelReason,
	FieldStatusBeforeCancellation,
	FieldDelivered,
	FieldProblemDescription,
	FieldDiagnosisStartedAt,
	FieldDiagnosisFinishedAt,
	FieldRepairStartedAt,
	FieldRepairFinishedAt,
	FieldDeliveredAt,
	FieldCancelledAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	CustomerIDValidator func(string) error
	// DeviceIDValidator is a validator for the "device_id" field. It is called by the builders before save.
	DeviceIDValidator func(string) error
	// DefaultCancelled holds the default value on creation for the "cancelled" field.
	DefaultCancelled bool
	// DefaultDelivered holds the default value on creation for the "delivered" field.
	DefaultDelivered bool
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRECEIVED is the default value of the Status enum.
const DefaultStatus = StatusRECEIVED

// Status values.
const (
	StatusRECEIVED           Status = "RECEIVED"
	StatusDIAGNOSING         Status = "DIAGNOSING"
	StatusDIAGNOSIS_COMPLETE Status = "DIAGNOSIS_COMPLETE"
	StatusBUDGET_PENDING     Status = "BUDGET_PENDING"
	StatusBUDGET_APPROVED    Status = "BUDGET_APPROVED"
	StatusIN_REPAIR          Status = "IN_REPAIR"
	StatusREPAIRED           Status = "REPAIRED"
	StatusREADY_FOR_DELIVERY Status = "READY_FOR_DELIVERY"
	StatusDELIVERED          Status = "DELIVERED"
	StatusCANCELLED          Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRECEIVED, StatusDIAGNOSING, StatusDIAGNOSIS_COMPLETE, StatusBUDGET_PENDING, StatusBUDGET_APPROVED, StatusIN_REPAIR, StatusREPAIRED, StatusREADY_FOR_DELIVERY, StatusDELIVERED, StatusCANCELLED:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Ticket queries.
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

// ByCustomerID orders the results by the customer_id field.
func ByCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerID, opts...).ToFunc()
}

// ByDeviceID orders the results by the device_id field.
func ByDeviceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceID, opts...).ToFunc()
}

// ByTechnicianID orders the results by the technician_id field.
func ByTechnicianID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTechnicianID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCancelled orders the results by the cancelled field.
func ByCancelled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelled, opts...).ToFunc()
}

// ByCancelReason orders the results by the cancel_reason field.
func ByCancelReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelReason, opts...).ToFunc()
}

// ByStatusBeforeCancellation orders the results by the status_before_cancellation field.
func ByStatusBeforeCancellation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusBeforeCancellation, opts...).ToFunc()
}

// ByDelivered orders the results by the delivered field.
func ByDelivered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelivered, opts...).ToFunc()
}

// ByProblemDescription orders the results by the problem_description field.
func ByProblemDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemDescription, opts...).ToFunc()
}

// ByDiagnosisStartedAt orders the results by the diagnosis_started_at field.
func ByDiagnosisStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosisStartedAt, opts...).ToFunc()
}

// ByDiagnosisFinishedAt orders the results by the diagnosis_finished_at field.
func ByDiagnosisFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosisFinishedAt, opts...).ToFunc()
}

// ByRepairStartedAt orders the results by the repair_started_at field.
func ByRepairStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepairStartedAt, opts...).ToFunc()
}

// ByRepairFinishedAt orders the results by the repair_finished_at field.
func ByRepairFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepairFinishedAt, opts...).ToFunc()
}

// ByDeliveredAt orders the results by the delivered_at field.
func ByDeliveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredAt, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}
