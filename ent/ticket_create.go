// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/ticket"
)

// TicketCreate is the builder for creating a Ticket entity.
type TicketCreate struct {
	config
	mutation *TicketMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketCreate) SetCreatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCreatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TicketCreate) SetUpdatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableUpdatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *TicketCreate) SetCustomerID(v string) *TicketCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetDeviceID sets the "device_id" field.
func (_c *TicketCreate) SetDeviceID(v string) *TicketCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetTechnicianID sets the "technician_id" field.
func (_c *TicketCreate) SetTechnicianID(v string) *TicketCreate {
	_c.mutation.SetTechnicianID(v)
	return _c
}

// SetNillableTechnicianID sets the "technician_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableTechnicianID(v *string) *TicketCreate {
	if v != nil {
		_c.SetTechnicianID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TicketCreate) SetStatus(v ticket.Status) *TicketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TicketCreate) SetNillableStatus(v *ticket.Status) *TicketCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCancelled sets the "cancelled" field.
func (_c *TicketCreate) SetCancelled(v bool) *TicketCreate {
	_c.mutation.SetCancelled(v)
	return _c
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCancelled(v *bool) *TicketCreate {
	if v != nil {
		_c.SetCancelled(*v)
	}
	return _c
}

// SetCancelReason sets the "cancel_reason" field.
func (_c *TicketCreate) SetCancelReason(v string) *TicketCreate {
	_c.mutation.SetCancelReason(v)
	return _c
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCancelReason(v *string) *TicketCreate {
	if v != nil {
		_c.SetCancelReason(*v)
	}
	return _c
}

// SetStatusBeforeCancellation sets the "status_before_cancellation" field.
func (_c *TicketCreate) SetStatusBeforeCancellation(v string) *TicketCreate {
	_c.mutation.SetStatusBeforeCancellation(v)
	return _c
}

// SetNillableStatusBeforeCancellation sets the "status_before_cancellation" field if the given value is not nil.
func (_c *TicketCreate) SetNillableStatusBeforeCancellation(v *string) *TicketCreate {
	if v != nil {
		_c.SetStatusBeforeCancellation(*v)
	}
	return _c
}

// SetDelivered sets the "delivered" field.
func (_c *TicketCreate) SetDelivered(v bool) *TicketCreate {
	_c.mutation.SetDelivered(v)
	return _c
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_c *TicketCreate) SetNillableDelivered(v *bool) *TicketCreate {
	if v != nil {
		_c.SetDelivered(*v)
	}
	return _c
}

// SetProblemDescription sets the "problem_description" field.
func (_c *TicketCreate) SetProblemDescription(v string) *TicketCreate {
	_c.mutation.SetProblemDescription(v)
	return _c
}

// SetNillableProblemDescription sets the "problem_description" field if the given value is not nil.
func (_c *TicketCreate) SetNillableProblemDescription(v *string) *TicketCreate {
	if v != nil {
		_c.SetProblemDescription(*v)
	}
	return _c
}

// SetDiagnosisStartedAt sets the "diagnosis_started_at" field.
func (_c *TicketCreate) SetDiagnosisStartedAt(v time.Time) *TicketCreate {
	_c.mutation.SetDiagnosisStartedAt(v)
	return _c
}

// SetNillableDiagnosisStartedAt sets the "diagnosis_started_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableDiagnosisStartedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetDiagnosisStartedAt(*v)
	}
	return _c
}

// SetDiagnosisFinishedAt sets the "diagnosis_finished_at" field.
func (_c *TicketCreate) SetDiagnosisFinishedAt(v time.Time) *TicketCreate {
	_c.mutation.SetDiagnosisFinishedAt(v)
	return _c
}

// SetNillableDiagnosisFinishedAt sets the "diagnosis_finished_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableDiagnosisFinishedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetDiagnosisFinishedAt(*v)
	}
	return _c
}

// SetRepairStartedAt sets the "repair_started_at" field.
func (_c *TicketCreate) SetRepairStartedAt(v time.Time) *TicketCreate {
	_c.mutation.SetRepairStartedAt(v)
	return _c
}

// SetNillableRepairStartedAt sets the "repair_started_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableRepairStartedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetRepairStartedAt(*v)
	}
	return _c
}

// SetRepairFinishedAt sets the "repair_finished_at" field.
func (_c *TicketCreate) SetRepairFinishedAt(v time.Time) *TicketCreate {
	_c.mutation.SetRepairFinishedAt(v)
	return _c
}

// SetNillableRepairFinishedAt sets the "repair_finished_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableRepairFinishedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetRepairFinishedAt(*v)
	}
	return _c
}

// SetDeliveredAt sets the "delivered_at" field.
func (_c *TicketCreate) SetDeliveredAt(v time.Time) *TicketCreate {
	_c.mutation.SetDeliveredAt(v)
	return _c
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableDeliveredAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetDeliveredAt(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *TicketCreate) SetCancelledAt(v time.Time) *TicketCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCancelledAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *TicketCreate) SetCreatedBy(v string) *TicketCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TicketCreate) SetID(v string) *TicketCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TicketMutation object of the builder.
func (_c *TicketCreate) Mutation() *TicketMutation {
	return _c.mutation
}

// Save creates the Ticket in the database.
func (_c *TicketCreate) Save(ctx context.Context) (*Ticket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketCreate) SaveX(ctx context.Context) *Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ticket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := ticket.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		v := ticket.DefaultCancelled
		_c.mutation.SetCancelled(v)
	}
	if _, ok := _c.mutation.Delivered(); !ok {
		v := ticket.DefaultDelivered
		_c.mutation.SetDelivered(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Ticket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Ticket.updated_at"`)}
	}
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "Ticket.customer_id"`)}
	}
	if v, ok := _c.mutation.CustomerID(); ok {
		if err := ticket.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "Ticket.customer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "Ticket.device_id"`)}
	}
	if v, ok := _c.mutation.DeviceID(); ok {
		if err := ticket.DeviceIDValidator(v); err != nil {
			return &ValidationError{Name: "device_id", err: fmt.Errorf(`ent: validator failed for field "Ticket.device_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Ticket.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		return &ValidationError{Name: "cancelled", err: errors.New(`ent: missing required field "Ticket.cancelled"`)}
	}
	if _, ok := _c.mutation.Delivered(); !ok {
		return &ValidationError{Name: "delivered", err: errors.New(`ent: missing required field "Ticket.delivered"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Ticket.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := ticket.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Ticket.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *TicketCreate) sqlSave(ctx context.Context) (*Ticket, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Ticket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketCreate) createSpec() (*Ticket, *sqlgraph.CreateSpec) {
	var (
		_node = &Ticket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticket.Table, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CustomerID(); ok {
		_spec.SetField(ticket.FieldCustomerID, field.TypeString, value)
		_node.CustomerID = value
	}
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(ticket.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.TechnicianID(); ok {
		_spec.SetField(ticket.FieldTechnicianID, field.TypeString, value)
		_node.TechnicianID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Cancelled(); ok {
		_spec.SetField(ticket.FieldCancelled, field.TypeBool, value)
		_node.Cancelled = value
	}
	if value, ok := _c.mutation.CancelReason(); ok {
		_spec.SetField(ticket.FieldCancelReason, field.TypeString, value)
		_node.CancelReason = value
	}
	if value, ok := _c.mutation.StatusBeforeCancellation(); ok {
		_spec.SetField(ticket.FieldStatusBeforeCancellation, field.TypeString, value)
		_node.StatusBeforeCancellation = value
	}
	if value, ok := _c.mutation.Delivered(); ok {
		_spec.SetField(ticket.FieldDelivered, field.TypeBool, value)
		_node.Delivered = value
	}
	if value, ok := _c.mutation.ProblemDescription(); ok {
		_spec.SetField(ticket.FieldProblemDescription, field.TypeString, value)
		_node.ProblemDescription = value
	}
	if value, ok := _c.mutation.DiagnosisStartedAt(); ok {
		_spec.SetField(ticket.FieldDiagnosisStartedAt, field.TypeTime, value)
		_node.DiagnosisStartedAt = &value
	}
	if value, ok := _c.mutation.DiagnosisFinishedAt(); ok {
		_spec.SetField(ticket.FieldDiagnosisFinishedAt, field.TypeTime, value)
		_node.DiagnosisFinishedAt = &value
	}
	if value, ok := _c.mutation.RepairStartedAt(); ok {
		_spec.SetField(ticket.FieldRepairStartedAt, field.TypeTime, value)
		_node.RepairStartedAt = &value
	}
	if value, ok := _c.mutation.RepairFinishedAt(); ok {
		_spec.SetField(ticket.FieldRepairFinishedAt, field.TypeTime, value)
		_node.RepairFinishedAt = &value
	}
	if value, ok := _c.mutation.DeliveredAt(); ok {
		_spec.SetField(ticket.FieldDeliveredAt, field.TypeTime, value)
		_node.DeliveredAt = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(ticket.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(ticket.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ticket.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TicketUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TicketCreate) OnConflict(opts ...sql.ConflictOption) *TicketUpsertOne {
	_c.conflict = opts
	return &TicketUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TicketCreate) OnConflictColumns(columns ...string) *TicketUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TicketUpsertOne{
		create: _c,
	}
}

type (
	// TicketUpsertOne is the builder for "upsert"-ing
	//  one Ticket node.
	TicketUpsertOne struct {
		create *TicketCreate
	}

	// TicketUpsert is the "OnConflict" setter.
	TicketUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsert) SetUpdatedAt(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsert) UpdateUpdatedAt() *TicketUpsert {
	u.SetExcluded(ticket.FieldUpdatedAt)
	return u
}

// SetTechnicianID sets the "technician_id" field.
func (u *TicketUpsert) SetTechnicianID(v string) *TicketUpsert {
	u.Set(ticket.FieldTechnicianID, v)
	return u
}

// UpdateTechnicianID sets the "technician_id" field to the value that was provided on create.
func (u *TicketUpsert) UpdateTechnicianID() *TicketUpsert {
	u.SetExcluded(ticket.FieldTechnicianID)
	return u
}

// ClearTechnicianID clears the value of the "technician_id" field.
func (u *TicketUpsert) ClearTechnicianID() *TicketUpsert {
	u.SetNull(ticket.FieldTechnicianID)
	return u
}

// SetStatus sets the "status" field.
func (u *TicketUpsert) SetStatus(v ticket.Status) *TicketUpsert {
	u.Set(ticket.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsert) UpdateStatus() *TicketUpsert {
	u.SetExcluded(ticket.FieldStatus)
	return u
}

// SetCancelled sets the "cancelled" field.
func (u *TicketUpsert) SetCancelled(v bool) *TicketUpsert {
	u.Set(ticket.FieldCancelled, v)
	return u
}

// UpdateCancelled sets the "cancelled" field to the value that was provided on create.
func (u *TicketUpsert) UpdateCancelled() *TicketUpsert {
	u.SetExcluded(ticket.FieldCancelled)
	return u
}

// SetCancelReason sets the "cancel_reason" field.
func (u *TicketUpsert) SetCancelReason(v string) *TicketUpsert {
	u.Set(ticket.FieldCancelReason, v)
	return u
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *TicketUpsert) UpdateCancelReason() *TicketUpsert {
	u.SetExcluded(ticket.FieldCancelReason)
	return u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *TicketUpsert) ClearCancelReason() *TicketUpsert {
	u.SetNull(ticket.FieldCancelReason)
	return u
}

// SetStatusBeforeCancellation sets the "status_before_cancellation" field.
func (u *TicketUpsert) SetStatusBeforeCancellation(v string) *TicketUpsert {
	u.Set(ticket.FieldStatusBeforeCancellation, v)
	return u
}

// UpdateStatusBeforeCancellation sets the "status_before_cancellation" field to the value that was provided on create.
func (u *TicketUpsert) UpdateStatusBeforeCancellation() *TicketUpsert {
	u.SetExcluded(ticket.FieldStatusBeforeCancellation)
	return u
}

// ClearStatusBeforeCancellation clears the value of the "status_before_cancellation" field.
func (u *TicketUpsert) ClearStatusBeforeCancellation() *TicketUpsert {
	u.SetNull(ticket.FieldStatusBeforeCancellation)
	return u
}

// SetDelivered sets the "delivered" field.
func (u *TicketUpsert) SetDelivered(v bool) *TicketUpsert {
	u.Set(ticket.FieldDelivered, v)
	return u
}

// UpdateDelivered sets the "delivered" field to the value that was provided on create.
func (u *TicketUpsert) UpdateDelivered() *TicketUpsert {
	u.SetExcluded(ticket.FieldDelivered)
	return u
}

// SetProblemDescription sets the "problem_description" field.
func (u *TicketUpsert) SetProblemDescription(v string) *TicketUpsert {
	u.Set(ticket.FieldProblemDescription, v)
	return u
}

// UpdateProblemDescription sets the "problem_description" field to the value that was provided on create.
func (u *TicketUpsert) UpdateProblemDescription() *TicketUpsert {
	u.SetExcluded(ticket.FieldProblemDescription)
	return u
}

// ClearProblemDescription clears the value of the "problem_description" field.
func (u *TicketUpsert) ClearProblemDescription() *TicketUpsert {
	u.SetNull(ticket.FieldProblemDescription)
	return u
}

// SetDiagnosisStartedAt sets the "diagnosis_started_at" field.
func (u *TicketUpsert) SetDiagnosisStartedAt(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldDiagnosisStartedAt, v)
	return u
}

// UpdateDiagnosisStartedAt sets the "diagnosis_started_at" field to the value that was provided on create.
func (u *TicketUpsert) UpdateDiagnosisStartedAt() *TicketUpsert {
	u.SetExcluded(ticket.FieldDiagnosisStartedAt)
	return u
}

// ClearDiagnosisStartedAt clears the value of the "diagnosis_started_at" field.
func (u *TicketUpsert) ClearDiagnosisStartedAt() *TicketUpsert {
	u.SetNull(ticket.FieldDiagnosisStartedAt)
	return u
}

// SetDiagnosisFinishedAt sets the "diagnosis_finished_at" field.
func (u *TicketUpsert) SetDiagnosisFinishedAt(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldDiagnosisFinishedAt, v)
	return u
}

// UpdateDiagnosisFinishedAt sets the "diagnosis_finished_at" field to the value that was provided on create.
func (u *TicketUpsert) UpdateDiagnosisFinishedAt() *TicketUpsert {
	u.SetExcluded(ticket.FieldDiagnosisFinishedAt)
	return u
}

// ClearDiagnosisFinishedAt clears the value of the "diagnosis_finished_at" field.
func (u *TicketUpsert) ClearDiagnosisFinishedAt() *TicketUpsert {
	u.SetNull(ticket.FieldDiagnosisFinishedAt)
	return u
}

// SetRepairStartedAt sets the "repair_started_at" field.
func (u *TicketUpsert) SetRepairStartedAt(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldRepairStartedAt, v)
	return u
}

// UpdateRepairStartedAt sets the "repair_started_at" field to the value that was provided on create.
func (u *TicketUpsert) UpdateRepairStartedAt() *TicketUpsert {
	u.SetExcluded(ticket.FieldRepairStartedAt)
	return u
}

// ClearRepairStartedAt clears the value of the "repair_started_at" field.
func (u *TicketUpsert) ClearRepairStartedAt() *TicketUpsert {
	u.SetNull(ticket.FieldRepairStartedAt)
	return u
}

// SetRepairFinishedAt sets the "repair_finished_at" field.
func (u *TicketUpsert) SetRepairFinishedAt(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldRepairFinishedAt, v)
	return u
}

// UpdateRepairFinishedAt sets the "repair_finished_at" field to the value that was provided on create.
func (u *TicketUpsert) UpdateRepairFinishedAt() *TicketUpsert {
	u.SetExcluded(ticket.FieldRepairFinishedAt)
	return u
}

// ClearRepairFinishedAt clears the value of the "repair_finished_at" field.
func (u *TicketUpsert) ClearRepairFinishedAt() *TicketUpsert {
	u.SetNull(ticket.FieldRepairFinishedAt)
	return u
}

// SetDeliveredAt sets the "delivered_at" field.
func (u *TicketUpsert) SetDeliveredAt(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldDeliveredAt, v)
	return u
}

// UpdateDeliveredAt sets the "delivered_at" field to the value that was provided on create.
func (u *TicketUpsert) UpdateDeliveredAt() *TicketUpsert {
	u.SetExcluded(ticket.FieldDeliveredAt)
	return u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (u *TicketUpsert) ClearDeliveredAt() *TicketUpsert {
	u.SetNull(ticket.FieldDeliveredAt)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *TicketUpsert) SetCancelledAt(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *TicketUpsert) UpdateCancelledAt() *TicketUpsert {
	u.SetExcluded(ticket.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *TicketUpsert) ClearCancelledAt() *TicketUpsert {
	u.SetNull(ticket.FieldCancelledAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ticket.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TicketUpsertOne) UpdateNewValues() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ticket.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ticket.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CustomerID(); exists {
			s.SetIgnore(ticket.FieldCustomerID)
		}
		if _, exists := u.create.mutation.DeviceID(); exists {
			s.SetIgnore(ticket.FieldDeviceID)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(ticket.FieldCreatedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TicketUpsertOne) Ignore() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TicketUpsertOne) DoNothing() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TicketCreate.OnConflict
// documentation for more info.
func (u *TicketUpsertOne) Update(set func(*TicketUpsert)) *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TicketUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsertOne) SetUpdatedAt(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateUpdatedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTechnicianID sets the "technician_id" field.
func (u *TicketUpsertOne) SetTechnicianID(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetTechnicianID(v)
	})
}

// UpdateTechnicianID sets the "technician_id" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateTechnicianID() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateTechnicianID()
	})
}

// ClearTechnicianID clears the value of the "technician_id" field.
func (u *TicketUpsertOne) ClearTechnicianID() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearTechnicianID()
	})
}

// SetStatus sets the "status" field.
func (u *TicketUpsertOne) SetStatus(v ticket.Status) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateStatus() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateStatus()
	})
}

// SetCancelled sets the "cancelled" field.
func (u *TicketUpsertOne) SetCancelled(v bool) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetCancelled(v)
	})
}

// UpdateCancelled sets the "cancelled" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateCancelled() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateCancelled()
	})
}

// SetCancelReason sets the "cancel_reason" field.
func (u *TicketUpsertOne) SetCancelReason(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetCancelReason(v)
	})
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateCancelReason() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateCancelReason()
	})
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *TicketUpsertOne) ClearCancelReason() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearCancelReason()
	})
}

// SetStatusBeforeCancellation sets the "status_before_cancellation" field.
func (u *TicketUpsertOne) SetStatusBeforeCancellation(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetStatusBeforeCancellation(v)
	})
}

// UpdateStatusBeforeCancellation sets the "status_before_cancellation" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateStatusBeforeCancellation() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateStatusBeforeCancellation()
	})
}

// ClearStatusBeforeCancellation clears the value of the "status_before_cancellation" field.
func (u *TicketUpsertOne) ClearStatusBeforeCancellation() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearStatusBeforeCancellation()
	})
}

// SetDelivered sets the "delivered" field.
func (u *TicketUpsertOne) SetDelivered(v bool) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetDelivered(v)
	})
}

// UpdateDelivered sets the "delivered" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateDelivered() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDelivered()
	})
}

// SetProblemDescription sets the "problem_description" field.
func (u *TicketUpsertOne) SetProblemDescription(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetProblemDescription(v)
	})
}

// UpdateProblemDescription sets the "problem_description" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateProblemDescription() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateProblemDescription()
	})
}

// ClearProblemDescription clears the value of the "problem_description" field.
func (u *TicketUpsertOne) ClearProblemDescription() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearProblemDescription()
	})
}

// SetDiagnosisStartedAt sets the "diagnosis_started_at" field.
func (u *TicketUpsertOne) SetDiagnosisStartedAt(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetDiagnosisStartedAt(v)
	})
}

// UpdateDiagnosisStartedAt sets the "diagnosis_started_at" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateDiagnosisStartedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDiagnosisStartedAt()
	})
}

// ClearDiagnosisStartedAt clears the value of the "diagnosis_started_at" field.
func (u *TicketUpsertOne) ClearDiagnosisStartedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearDiagnosisStartedAt()
	})
}

// SetDiagnosisFinishedAt sets the "diagnosis_finished_at" field.
func (u *TicketUpsertOne) SetDiagnosisFinishedAt(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetDiagnosisFinishedAt(v)
	})
}

// UpdateDiagnosisFinishedAt sets the "diagnosis_finished_at" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateDiagnosisFinishedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDiagnosisFinishedAt()
	})
}

// ClearDiagnosisFinishedAt clears the value of the "diagnosis_finished_at" field.
func (u *TicketUpsertOne) ClearDiagnosisFinishedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearDiagnosisFinishedAt()
	})
}

// SetRepairStartedAt sets the "repair_started_at" field.
func (u *TicketUpsertOne) SetRepairStartedAt(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetRepairStartedAt(v)
	})
}

// UpdateRepairStartedAt sets the "repair_started_at" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateRepairStartedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateRepairStartedAt()
	})
}

// ClearRepairStartedAt clears the value of the "repair_started_at" field.
func (u *TicketUpsertOne) ClearRepairStartedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearRepairStartedAt()
	})
}

// SetRepairFinishedAt sets the "repair_finished_at" field.
func (u *TicketUpsertOne) SetRepairFinishedAt(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetRepairFinishedAt(v)
	})
}

// UpdateRepairFinishedAt sets the "repair_finished_at" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateRepairFinishedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateRepairFinishedAt()
	})
}

// ClearRepairFinishedAt clears the value of the "repair_finished_at" field.
func (u *TicketUpsertOne) ClearRepairFinishedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearRepairFinishedAt()
	})
}

// SetDeliveredAt sets the "delivered_at" field.
func (u *TicketUpsertOne) SetDeliveredAt(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetDeliveredAt(v)
	})
}

// UpdateDeliveredAt sets the "delivered_at" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateDeliveredAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDeliveredAt()
	})
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (u *TicketUpsertOne) ClearDeliveredAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearDeliveredAt()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *TicketUpsertOne) SetCancelledAt(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateCancelledAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *TicketUpsertOne) ClearCancelledAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearCancelledAt()
	})
}

// Exec executes the query.
func (u *TicketUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TicketCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TicketUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TicketUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TicketUpsertOne.ID is not supported by MySQL driver. Use TicketUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TicketUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TicketCreateBulk is the builder for creating many Ticket entities in bulk.
type TicketCreateBulk struct {
	config
	err      error
	builders []*TicketCreate
	conflict []sql.ConflictOption
}

// Save creates the Ticket entities in the database.
func (_c *TicketCreateBulk) Save(ctx context.Context) ([]*Ticket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ticket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TicketCreateBulk) SaveX(ctx context.Context) []*Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ticket.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TicketUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TicketCreateBulk) OnConflict(opts ...sql.ConflictOption) *TicketUpsertBulk {
	_c.conflict = opts
	return &TicketUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TicketCreateBulk) OnConflictColumns(columns ...string) *TicketUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TicketUpsertBulk{
		create: _c,
	}
}

// TicketUpsertBulk is the builder for "upsert"-ing
// a bulk of Ticket nodes.
type TicketUpsertBulk struct {
	create *TicketCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ticket.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TicketUpsertBulk) UpdateNewValues() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ticket.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ticket.FieldCreatedAt)
			}
			if _, exists := b.mutation.CustomerID(); exists {
				s.SetIgnore(ticket.FieldCustomerID)
			}
			if _, exists := b.mutation.DeviceID(); exists {
				s.SetIgnore(ticket.FieldDeviceID)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(ticket.FieldCreatedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TicketUpsertBulk) Ignore() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TicketUpsertBulk) DoNothing() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TicketCreateBulk.OnConflict
// documentation for more info.
func (u *TicketUpsertBulk) Update(set func(*TicketUpsert)) *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TicketUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsertBulk) SetUpdatedAt(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateUpdatedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTechnicianID sets the "technician_id" field.
func (u *TicketUpsertBulk) SetTechnicianID(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetTechnicianID(v)
	})
}

// UpdateTechnicianID sets the "technician_id" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateTechnicianID() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateTechnicianID()
	})
}

// ClearTechnicianID clears the value of the "technician_id" field.
func (u *TicketUpsertBulk) ClearTechnicianID() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearTechnicianID()
	})
}

// SetStatus sets the "status" field.
func (u *TicketUpsertBulk) SetStatus(v ticket.Status) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateStatus() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateStatus()
	})
}

// SetCancelled sets the "cancelled" field.
func (u *TicketUpsertBulk) SetCancelled(v bool) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetCancelled(v)
	})
}

// UpdateCancelled sets the "cancelled" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateCancelled() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateCancelled()
	})
}

// SetCancelReason sets the "cancel_reason" field.
func (u *TicketUpsertBulk) SetCancelReason(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetCancelReason(v)
	})
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateCancelReason() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateCancelReason()
	})
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *TicketUpsertBulk) ClearCancelReason() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearCancelReason()
	})
}

// SetStatusBeforeCancellation sets the "status_before_cancellation" field.
func (u *TicketUpsertBulk) SetStatusBeforeCancellation(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetStatusBeforeCancellation(v)
	})
}

// UpdateStatusBeforeCancellation sets the "status_before_cancellation" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateStatusBeforeCancellation() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateStatusBeforeCancellation()
	})
}

// ClearStatusBeforeCancellation clears the value of the "status_before_cancellation" field.
func (u *TicketUpsertBulk) ClearStatusBeforeCancellation() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearStatusBeforeCancellation()
	})
}

// SetDelivered sets the "delivered" field.
func (u *TicketUpsertBulk) SetDelivered(v bool) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetDelivered(v)
	})
}

// UpdateDelivered sets the "delivered" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateDelivered() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDelivered()
	})
}

// SetProblemDescription sets the "problem_description" field.
func (u *TicketUpsertBulk) SetProblemDescription(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetProblemDescription(v)
	})
}

// UpdateProblemDescription sets the "problem_description" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateProblemDescription() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateProblemDescription()
	})
}

// ClearProblemDescription clears the value of the "problem_description" field.
func (u *TicketUpsertBulk) ClearProblemDescription() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearProblemDescription()
	})
}

// SetDiagnosisStartedAt sets the "diagnosis_started_at" field.
func (u *TicketUpsertBulk) SetDiagnosisStartedAt(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetDiagnosisStartedAt(v)
	})
}

// UpdateDiagnosisStartedAt sets the "diagnosis_started_at" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateDiagnosisStartedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDiagnosisStartedAt()
	})
}

// ClearDiagnosisStartedAt clears the value of the "diagnosis_started_at" field.
func (u *TicketUpsertBulk) ClearDiagnosisStartedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearDiagnosisStartedAt()
	})
}

// SetDiagnosisFinishedAt sets the "diagnosis_finished_at" field.
func (u *TicketUpsertBulk) SetDiagnosisFinishedAt(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetDiagnosisFinishedAt(v)
	})
}

// UpdateDiagnosisFinishedAt sets the "diagnosis_finished_at" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateDiagnosisFinishedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDiagnosisFinishedAt()
	})
}

// ClearDiagnosisFinishedAt clears the value of the "diagnosis_finished_at" field.
func (u *TicketUpsertBulk) ClearDiagnosisFinishedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearDiagnosisFinishedAt()
	})
}

// SetRepairStartedAt sets the "repair_started_at" field.
func (u *TicketUpsertBulk) SetRepairStartedAt(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetRepairStartedAt(v)
	})
}

// UpdateRepairStartedAt sets the "repair_started_at" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateRepairStartedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateRepairStartedAt()
	})
}

// ClearRepairStartedAt clears the value of the "repair_started_at" field.
func (u *TicketUpsertBulk) ClearRepairStartedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearRepairStartedAt()
	})
}

// SetRepairFinishedAt sets the "repair_finished_at" field.
func (u *TicketUpsertBulk) SetRepairFinishedAt(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetRepairFinishedAt(v)
	})
}

// UpdateRepairFinishedAt sets the "repair_finished_at" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateRepairFinishedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateRepairFinishedAt()
	})
}

// ClearRepairFinishedAt clears the value of the "repair_finished_at" field.
func (u *TicketUpsertBulk) ClearRepairFinishedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearRepairFinishedAt()
	})
}

// SetDeliveredAt sets the "delivered_at" field.
func (u *TicketUpsertBulk) SetDeliveredAt(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetDeliveredAt(v)
	})
}

// UpdateDeliveredAt sets the "delivered_at" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateDeliveredAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDeliveredAt()
	})
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (u *TicketUpsertBulk) ClearDeliveredAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearDeliveredAt()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *TicketUpsertBulk) SetCancelledAt(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateCancelledAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *TicketUpsertBulk) ClearCancelledAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearCancelledAt()
	})
}

// Exec executes the query.
func (u *TicketUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TicketCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TicketCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TicketUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
