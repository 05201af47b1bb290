// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/ticket"
)

// TicketUpdate is the builder for updating Ticket entities.
type TicketUpdate struct {
	config
	hooks    []Hook
	mutation *TicketMutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdate) Where(ps ...predicate.Ticket) *TicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdate) SetUpdatedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTechnicianID sets the "technician_id" field.
func (_u *TicketUpdate) SetTechnicianID(v string) *TicketUpdate {
	_u.mutation.SetTechnicianID(v)
	return _u
}

// SetNillableTechnicianID sets the "technician_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTechnicianID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetTechnicianID(*v)
	}
	return _u
}

// ClearTechnicianID clears the value of the "technician_id" field.
func (_u *TicketUpdate) ClearTechnicianID() *TicketUpdate {
	_u.mutation.ClearTechnicianID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdate) SetStatus(v ticket.Status) *TicketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableStatus(v *ticket.Status) *TicketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *TicketUpdate) SetCancelled(v bool) *TicketUpdate {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableCancelled(v *bool) *TicketUpdate {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *TicketUpdate) SetCancelReason(v string) *TicketUpdate {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableCancelReason(v *string) *TicketUpdate {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *TicketUpdate) ClearCancelReason() *TicketUpdate {
	_u.mutation.ClearCancelReason()
	return _u
}

// SetStatusBeforeCancellation sets the "status_before_cancellation" field.
func (_u *TicketUpdate) SetStatusBeforeCancellation(v string) *TicketUpdate {
	_u.mutation.SetStatusBeforeCancellation(v)
	return _u
}

// SetNillableStatusBeforeCancellation sets the "status_before_cancellation" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableStatusBeforeCancellation(v *string) *TicketUpdate {
	if v != nil {
		_u.SetStatusBeforeCancellation(*v)
	}
	return _u
}

// ClearStatusBeforeCancellation clears the value of the "status_before_cancellation" field.
func (_u *TicketUpdate) ClearStatusBeforeCancellation() *TicketUpdate {
	_u.mutation.ClearStatusBeforeCancellation()
	return _u
}

// SetDelivered sets the "delivered" field.
func (_u *TicketUpdate) SetDelivered(v bool) *TicketUpdate {
	_u.mutation.SetDelivered(v)
	return _u
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDelivered(v *bool) *TicketUpdate {
	if v != nil {
		_u.SetDelivered(*v)
	}
	return _u
}

// SetProblemDescription sets the "problem_description" field.
func (_u *TicketUpdate) SetProblemDescription(v string) *TicketUpdate {
	_u.mutation.SetProblemDescription(v)
	return _u
}

// SetNillableProblemDescription sets the "problem_description" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableProblemDescription(v *string) *TicketUpdate {
	if v != nil {
		_u.SetProblemDescription(*v)
	}
	return _u
}

// ClearProblemDescription clears the value of the "problem_description" field.
func (_u *TicketUpdate) ClearProblemDescription() *TicketUpdate {
	_u.mutation.ClearProblemDescription()
	return _u
}

// SetDiagnosisStartedAt sets the "diagnosis_started_at" field.
func (_u *TicketUpdate) SetDiagnosisStartedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetDiagnosisStartedAt(v)
	return _u
}

// SetNillableDiagnosisStartedAt sets the "diagnosis_started_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDiagnosisStartedAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetDiagnosisStartedAt(*v)
	}
	return _u
}

// ClearDiagnosisStartedAt clears the value of the "diagnosis_started_at" field.
func (_u *TicketUpdate) ClearDiagnosisStartedAt() *TicketUpdate {
	_u.mutation.ClearDiagnosisStartedAt()
	return _u
}

// SetDiagnosisFinishedAt sets the "diagnosis_finished_at" field.
func (_u *TicketUpdate) SetDiagnosisFinishedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetDiagnosisFinishedAt(v)
	return _u
}

// SetNillableDiagnosisFinishedAt sets the "diagnosis_finished_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDiagnosisFinishedAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetDiagnosisFinishedAt(*v)
	}
	return _u
}

// ClearDiagnosisFinishedAt clears the value of the "diagnosis_finished_at" field.
func (_u *TicketUpdate) ClearDiagnosisFinishedAt() *TicketUpdate {
	_u.mutation.ClearDiagnosisFinishedAt()
	return _u
}

// SetRepairStartedAt sets the "repair_started_at" field.
func (_u *TicketUpdate) SetRepairStartedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetRepairStartedAt(v)
	return _u
}

// SetNillableRepairStartedAt sets the "repair_started_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableRepairStartedAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetRepairStartedAt(*v)
	}
	return _u
}

// ClearRepairStartedAt clears the value of the "repair_started_at" field.
func (_u *TicketUpdate) ClearRepairStartedAt() *TicketUpdate {
	_u.mutation.ClearRepairStartedAt()
	return _u
}

// SetRepairFinishedAt sets the "repair_finished_at" field.
func (_u *TicketUpdate) SetRepairFinishedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetRepairFinishedAt(v)
	return _u
}

// SetNillableRepairFinishedAt sets the "repair_finished_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableRepairFinishedAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetRepairFinishedAt(*v)
	}
	return _u
}

// ClearRepairFinishedAt clears the value of the "repair_finished_at" field.
func (_u *TicketUpdate) ClearRepairFinishedAt() *TicketUpdate {
	_u.mutation.ClearRepairFinishedAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *TicketUpdate) SetDeliveredAt(v time.Time) *TicketUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDeliveredAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *TicketUpdate) ClearDeliveredAt() *TicketUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *TicketUpdate) SetCancelledAt(v time.Time) *TicketUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableCancelledAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *TicketUpdate) ClearCancelledAt() *TicketUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdate) Mutation() *TicketMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TechnicianID(); ok {
		_spec.SetField(ticket.FieldTechnicianID, field.TypeString, value)
	}
	if _u.mutation.TechnicianIDCleared() {
		_spec.ClearField(ticket.FieldTechnicianID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(ticket.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(ticket.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(ticket.FieldCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.StatusBeforeCancellation(); ok {
		_spec.SetField(ticket.FieldStatusBeforeCancellation, field.TypeString, value)
	}
	if _u.mutation.StatusBeforeCancellationCleared() {
		_spec.ClearField(ticket.FieldStatusBeforeCancellation, field.TypeString)
	}
	if value, ok := _u.mutation.Delivered(); ok {
		_spec.SetField(ticket.FieldDelivered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProblemDescription(); ok {
		_spec.SetField(ticket.FieldProblemDescription, field.TypeString, value)
	}
	if _u.mutation.ProblemDescriptionCleared() {
		_spec.ClearField(ticket.FieldProblemDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DiagnosisStartedAt(); ok {
		_spec.SetField(ticket.FieldDiagnosisStartedAt, field.TypeTime, value)
	}
	if _u.mutation.DiagnosisStartedAtCleared() {
		_spec.ClearField(ticket.FieldDiagnosisStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DiagnosisFinishedAt(); ok {
		_spec.SetField(ticket.FieldDiagnosisFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.DiagnosisFinishedAtCleared() {
		_spec.ClearField(ticket.FieldDiagnosisFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RepairStartedAt(); ok {
		_spec.SetField(ticket.FieldRepairStartedAt, field.TypeTime, value)
	}
	if _u.mutation.RepairStartedAtCleared() {
		_spec.ClearField(ticket.FieldRepairStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RepairFinishedAt(); ok {
		_spec.SetField(ticket.FieldRepairFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.RepairFinishedAtCleared() {
		_spec.ClearField(ticket.FieldRepairFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(ticket.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(ticket.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(ticket.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(ticket.FieldCancelledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketUpdateOne is the builder for updating a single Ticket entity.
type TicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdateOne) SetUpdatedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTechnicianID sets the "technician_id" field.
func (_u *TicketUpdateOne) SetTechnicianID(v string) *TicketUpdateOne {
	_u.mutation.SetTechnicianID(v)
	return _u
}

// SetNillableTechnicianID sets the "technician_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTechnicianID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetTechnicianID(*v)
	}
	return _u
}

// ClearTechnicianID clears the value of the "technician_id" field.
func (_u *TicketUpdateOne) ClearTechnicianID() *TicketUpdateOne {
	_u.mutation.ClearTechnicianID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdateOne) SetStatus(v ticket.Status) *TicketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableStatus(v *ticket.Status) *TicketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *TicketUpdateOne) SetCancelled(v bool) *TicketUpdateOne {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableCancelled(v *bool) *TicketUpdateOne {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *TicketUpdateOne) SetCancelReason(v string) *TicketUpdateOne {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableCancelReason(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *TicketUpdateOne) ClearCancelReason() *TicketUpdateOne {
	_u.mutation.ClearCancelReason()
	return _u
}

// SetStatusBeforeCancellation sets the "status_before_cancellation" field.
func (_u *TicketUpdateOne) SetStatusBeforeCancellation(v string) *TicketUpdateOne {
	_u.mutation.SetStatusBeforeCancellation(v)
	return _u
}

// SetNillableStatusBeforeCancellation sets the "status_before_cancellation" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableStatusBeforeCancellation(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetStatusBeforeCancellation(*v)
	}
	return _u
}

// ClearStatusBeforeCancellation clears the value of the "status_before_cancellation" field.
func (_u *TicketUpdateOne) ClearStatusBeforeCancellation() *TicketUpdateOne {
	_u.mutation.ClearStatusBeforeCancellation()
	return _u
}

// SetDelivered sets the "delivered" field.
func (_u *TicketUpdateOne) SetDelivered(v bool) *TicketUpdateOne {
	_u.mutation.SetDelivered(v)
	return _u
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDelivered(v *bool) *TicketUpdateOne {
	if v != nil {
		_u.SetDelivered(*v)
	}
	return _u
}

// SetProblemDescription sets the "problem_description" field.
func (_u *TicketUpdateOne) SetProblemDescription(v string) *TicketUpdateOne {
	_u.mutation.SetProblemDescription(v)
	return _u
}

// SetNillableProblemDescription sets the "problem_description" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableProblemDescription(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetProblemDescription(*v)
	}
	return _u
}

// ClearProblemDescription clears the value of the "problem_description" field.
func (_u *TicketUpdateOne) ClearProblemDescription() *TicketUpdateOne {
	_u.mutation.ClearProblemDescription()
	return _u
}

// SetDiagnosisStartedAt sets the "diagnosis_started_at" field.
func (_u *TicketUpdateOne) SetDiagnosisStartedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetDiagnosisStartedAt(v)
	return _u
}

// SetNillableDiagnosisStartedAt sets the "diagnosis_started_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDiagnosisStartedAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetDiagnosisStartedAt(*v)
	}
	return _u
}

// ClearDiagnosisStartedAt clears the value of the "diagnosis_started_at" field.
func (_u *TicketUpdateOne) ClearDiagnosisStartedAt() *TicketUpdateOne {
	_u.mutation.ClearDiagnosisStartedAt()
	return _u
}

// SetDiagnosisFinishedAt sets the "diagnosis_finished_at" field.
func (_u *TicketUpdateOne) SetDiagnosisFinishedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetDiagnosisFinishedAt(v)
	return _u
}

// SetNillableDiagnosisFinishedAt sets the "diagnosis_finished_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDiagnosisFinishedAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetDiagnosisFinishedAt(*v)
	}
	return _u
}

// ClearDiagnosisFinishedAt clears the value of the "diagnosis_finished_at" field.
func (_u *TicketUpdateOne) ClearDiagnosisFinishedAt() *TicketUpdateOne {
	_u.mutation.ClearDiagnosisFinishedAt()
	return _u
}

// SetRepairStartedAt sets the "repair_started_at" field.
func (_u *TicketUpdateOne) SetRepairStartedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetRepairStartedAt(v)
	return _u
}

// SetNillableRepairStartedAt sets the "repair_started_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableRepairStartedAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetRepairStartedAt(*v)
	}
	return _u
}

// ClearRepairStartedAt clears the value of the "repair_started_at" field.
func (_u *TicketUpdateOne) ClearRepairStartedAt() *TicketUpdateOne {
	_u.mutation.ClearRepairStartedAt()
	return _u
}

// SetRepairFinishedAt sets the "repair_finished_at" field.
func (_u *TicketUpdateOne) SetRepairFinishedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetRepairFinishedAt(v)
	return _u
}

// SetNillableRepairFinishedAt sets the "repair_finished_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableRepairFinishedAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetRepairFinishedAt(*v)
	}
	return _u
}

// ClearRepairFinishedAt clears the value of the "repair_finished_at" field.
func (_u *TicketUpdateOne) ClearRepairFinishedAt() *TicketUpdateOne {
	_u.mutation.ClearRepairFinishedAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *TicketUpdateOne) SetDeliveredAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDeliveredAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *TicketUpdateOne) ClearDeliveredAt() *TicketUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *TicketUpdateOne) SetCancelledAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableCancelledAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *TicketUpdateOne) ClearCancelledAt() *TicketUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdateOne) Mutation() *TicketMutation {
	return _u.mutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdateOne) Where(ps ...predicate.Ticket) *TicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketUpdateOne) Select(field string, fields ...string) *TicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ticket entity.
func (_u *TicketUpdateOne) Save(ctx context.Context) (*Ticket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdateOne) SaveX(ctx context.Context) *Ticket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdateOne) sqlSave(ctx context.Context) (_node *Ticket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ticket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticket.FieldID)
		for _, f := range fields {
			if !ticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticket.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TechnicianID(); ok {
		_spec.SetField(ticket.FieldTechnicianID, field.TypeString, value)
	}
	if _u.mutation.TechnicianIDCleared() {
		_spec.ClearField(ticket.FieldTechnicianID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(ticket.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(ticket.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(ticket.FieldCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.StatusBeforeCancellation(); ok {
		_spec.SetField(ticket.FieldStatusBeforeCancellation, field.TypeString, value)
	}
	if _u.mutation.StatusBeforeCancellationCleared() {
		_spec.ClearField(ticket.FieldStatusBeforeCancellation, field.TypeString)
	}
	if value, ok := _u.mutation.Delivered(); ok {
		_spec.SetField(ticket.FieldDelivered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProblemDescription(); ok {
		_spec.SetField(ticket.FieldProblemDescription, field.TypeString, value)
	}
	if _u.mutation.ProblemDescriptionCleared() {
		_spec.ClearField(ticket.FieldProblemDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DiagnosisStartedAt(); ok {
		_spec.SetField(ticket.FieldDiagnosisStartedAt, field.TypeTime, value)
	}
	if _u.mutation.DiagnosisStartedAtCleared() {
		_spec.ClearField(ticket.FieldDiagnosisStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DiagnosisFinishedAt(); ok {
		_spec.SetField(ticket.FieldDiagnosisFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.DiagnosisFinishedAtCleared() {
		_spec.ClearField(ticket.FieldDiagnosisFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RepairStartedAt(); ok {
		_spec.SetField(ticket.FieldRepairStartedAt, field.TypeTime, value)
	}
	if _u.mutation.RepairStartedAtCleared() {
		_spec.ClearField(ticket.FieldRepairStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RepairFinishedAt(); ok {
		_spec.SetField(ticket.FieldRepairFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.RepairFinishedAtCleared() {
		_spec.ClearField(ticket.FieldRepairFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(ticket.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(ticket.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(ticket.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(ticket.FieldCancelledAt, field.TypeTime)
	}
	_node = &Ticket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
