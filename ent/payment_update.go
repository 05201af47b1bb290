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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/payment"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
)

// PaymentUpdate is the builder for updating Payment entities.
type PaymentUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentMutation
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdate) Where(ps ...predicate.Payment) *PaymentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentUpdate) SetUpdatedAt(v time.Time) *PaymentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PaymentUpdate) SetMethod(v payment.Method) *PaymentUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableMethod(v *payment.Method) *PaymentUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *PaymentUpdate) SetState(v payment.State) *PaymentUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableState(v *payment.State) *PaymentUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetProviderPaymentID sets the "provider_payment_id" field.
func (_u *PaymentUpdate) SetProviderPaymentID(v string) *PaymentUpdate {
	_u.mutation.SetProviderPaymentID(v)
	return _u
}

// SetNillableProviderPaymentID sets the "provider_payment_id" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableProviderPaymentID(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetProviderPaymentID(*v)
	}
	return _u
}

// ClearProviderPaymentID clears the value of the "provider_payment_id" field.
func (_u *PaymentUpdate) ClearProviderPaymentID() *PaymentUpdate {
	_u.mutation.ClearProviderPaymentID()
	return _u
}

// SetVoidedAt sets the "voided_at" field.
func (_u *PaymentUpdate) SetVoidedAt(v time.Time) *PaymentUpdate {
	_u.mutation.SetVoidedAt(v)
	return _u
}

// SetNillableVoidedAt sets the "voided_at" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableVoidedAt(v *time.Time) *PaymentUpdate {
	if v != nil {
		_u.SetVoidedAt(*v)
	}
	return _u
}

// ClearVoidedAt clears the value of the "voided_at" field.
func (_u *PaymentUpdate) ClearVoidedAt() *PaymentUpdate {
	_u.mutation.ClearVoidedAt()
	return _u
}

// SetVoidedBy sets the "voided_by" field.
func (_u *PaymentUpdate) SetVoidedBy(v string) *PaymentUpdate {
	_u.mutation.SetVoidedBy(v)
	return _u
}

// SetNillableVoidedBy sets the "voided_by" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableVoidedBy(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetVoidedBy(*v)
	}
	return _u
}

// ClearVoidedBy clears the value of the "voided_by" field.
func (_u *PaymentUpdate) ClearVoidedBy() *PaymentUpdate {
	_u.mutation.ClearVoidedBy()
	return _u
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdate) Mutation() *PaymentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := payment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdate) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := payment.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Payment.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := payment.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Payment.state": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(payment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(payment.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(payment.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProviderPaymentID(); ok {
		_spec.SetField(payment.FieldProviderPaymentID, field.TypeString, value)
	}
	if _u.mutation.ProviderPaymentIDCleared() {
		_spec.ClearField(payment.FieldProviderPaymentID, field.TypeString)
	}
	if value, ok := _u.mutation.VoidedAt(); ok {
		_spec.SetField(payment.FieldVoidedAt, field.TypeTime, value)
	}
	if _u.mutation.VoidedAtCleared() {
		_spec.ClearField(payment.FieldVoidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VoidedBy(); ok {
		_spec.SetField(payment.FieldVoidedBy, field.TypeString, value)
	}
	if _u.mutation.VoidedByCleared() {
		_spec.ClearField(payment.FieldVoidedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentUpdateOne is the builder for updating a single Payment entity.
type PaymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentUpdateOne) SetUpdatedAt(v time.Time) *PaymentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PaymentUpdateOne) SetMethod(v payment.Method) *PaymentUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableMethod(v *payment.Method) *PaymentUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *PaymentUpdateOne) SetState(v payment.State) *PaymentUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableState(v *payment.State) *PaymentUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetProviderPaymentID sets the "provider_payment_id" field.
func (_u *PaymentUpdateOne) SetProviderPaymentID(v string) *PaymentUpdateOne {
	_u.mutation.SetProviderPaymentID(v)
	return _u
}

// SetNillableProviderPaymentID sets the "provider_payment_id" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableProviderPaymentID(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetProviderPaymentID(*v)
	}
	return _u
}

// ClearProviderPaymentID clears the value of the "provider_payment_id" field.
func (_u *PaymentUpdateOne) ClearProviderPaymentID() *PaymentUpdateOne {
	_u.mutation.ClearProviderPaymentID()
	return _u
}

// SetVoidedAt sets the "voided_at" field.
func (_u *PaymentUpdateOne) SetVoidedAt(v time.Time) *PaymentUpdateOne {
	_u.mutation.SetVoidedAt(v)
	return _u
}

// SetNillableVoidedAt sets the "voided_at" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableVoidedAt(v *time.Time) *PaymentUpdateOne {
	if v != nil {
		_u.SetVoidedAt(*v)
	}
	return _u
}

// ClearVoidedAt clears the value of the "voided_at" field.
func (_u *PaymentUpdateOne) ClearVoidedAt() *PaymentUpdateOne {
	_u.mutation.ClearVoidedAt()
	return _u
}

// SetVoidedBy sets the "voided_by" field.
func (_u *PaymentUpdateOne) SetVoidedBy(v string) *PaymentUpdateOne {
	_u.mutation.SetVoidedBy(v)
	return _u
}

// SetNillableVoidedBy sets the "voided_by" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableVoidedBy(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetVoidedBy(*v)
	}
	return _u
}

// ClearVoidedBy clears the value of the "voided_by" field.
func (_u *PaymentUpdateOne) ClearVoidedBy() *PaymentUpdateOne {
	_u.mutation.ClearVoidedBy()
	return _u
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdateOne) Mutation() *PaymentMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdateOne) Where(ps ...predicate.Payment) *PaymentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentUpdateOne) Select(field string, fields ...string) *PaymentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Payment entity.
func (_u *PaymentUpdateOne) Save(ctx context.Context) (*Payment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdateOne) SaveX(ctx context.Context) *Payment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := payment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdateOne) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := payment.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Payment.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := payment.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Payment.state": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentUpdateOne) sqlSave(ctx context.Context) (_node *Payment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Payment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payment.FieldID)
		for _, f := range fields {
			if !payment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != payment.FieldID {
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
		_spec.SetField(payment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(payment.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(payment.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProviderPaymentID(); ok {
		_spec.SetField(payment.FieldProviderPaymentID, field.TypeString, value)
	}
	if _u.mutation.ProviderPaymentIDCleared() {
		_spec.ClearField(payment.FieldProviderPaymentID, field.TypeString)
	}
	if value, ok := _u.mutation.VoidedAt(); ok {
		_spec.SetField(payment.FieldVoidedAt, field.TypeTime, value)
	}
	if _u.mutation.VoidedAtCleared() {
		_spec.ClearField(payment.FieldVoidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VoidedBy(); ok {
		_spec.SetField(payment.FieldVoidedBy, field.TypeString, value)
	}
	if _u.mutation.VoidedByCleared() {
		_spec.ClearField(payment.FieldVoidedBy, field.TypeString)
	}
	_node = &Payment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
