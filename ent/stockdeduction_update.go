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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/stockdeduction"
)

// StockDeductionUpdate is the builder for updating StockDeduction entities.
type StockDeductionUpdate struct {
	config
	hooks    []Hook
	mutation *StockDeductionMutation
}

// Where appends a list predicates to the StockDeductionUpdate builder.
func (_u *StockDeductionUpdate) Where(ps ...predicate.StockDeduction) *StockDeductionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReversedAt sets the "reversed_at" field.
func (_u *StockDeductionUpdate) SetReversedAt(v time.Time) *StockDeductionUpdate {
	_u.mutation.SetReversedAt(v)
	return _u
}

// SetNillableReversedAt sets the "reversed_at" field if the given value is not nil.
func (_u *StockDeductionUpdate) SetNillableReversedAt(v *time.Time) *StockDeductionUpdate {
	if v != nil {
		_u.SetReversedAt(*v)
	}
	return _u
}

// ClearReversedAt clears the value of the "reversed_at" field.
func (_u *StockDeductionUpdate) ClearReversedAt() *StockDeductionUpdate {
	_u.mutation.ClearReversedAt()
	return _u
}

// SetReversedBy sets the "reversed_by" field.
func (_u *StockDeductionUpdate) SetReversedBy(v string) *StockDeductionUpdate {
	_u.mutation.SetReversedBy(v)
	return _u
}

// SetNillableReversedBy sets the "reversed_by" field if the given value is not nil.
func (_u *StockDeductionUpdate) SetNillableReversedBy(v *string) *StockDeductionUpdate {
	if v != nil {
		_u.SetReversedBy(*v)
	}
	return _u
}

// ClearReversedBy clears the value of the "reversed_by" field.
func (_u *StockDeductionUpdate) ClearReversedBy() *StockDeductionUpdate {
	_u.mutation.ClearReversedBy()
	return _u
}

// Mutation returns the StockDeductionMutation object of the builder.
func (_u *StockDeductionUpdate) Mutation() *StockDeductionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StockDeductionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StockDeductionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StockDeductionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StockDeductionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StockDeductionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(stockdeduction.Table, stockdeduction.Columns, sqlgraph.NewFieldSpec(stockdeduction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReversedAt(); ok {
		_spec.SetField(stockdeduction.FieldReversedAt, field.TypeTime, value)
	}
	if _u.mutation.ReversedAtCleared() {
		_spec.ClearField(stockdeduction.FieldReversedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReversedBy(); ok {
		_spec.SetField(stockdeduction.FieldReversedBy, field.TypeString, value)
	}
	if _u.mutation.ReversedByCleared() {
		_spec.ClearField(stockdeduction.FieldReversedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stockdeduction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StockDeductionUpdateOne is the builder for updating a single StockDeduction entity.
type StockDeductionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StockDeductionMutation
}

// SetReversedAt sets the "reversed_at" field.
func (_u *StockDeductionUpdateOne) SetReversedAt(v time.Time) *StockDeductionUpdateOne {
	_u.mutation.SetReversedAt(v)
	return _u
}

// SetNillableReversedAt sets the "reversed_at" field if the given value is not nil.
func (_u *StockDeductionUpdateOne) SetNillableReversedAt(v *time.Time) *StockDeductionUpdateOne {
	if v != nil {
		_u.SetReversedAt(*v)
	}
	return _u
}

// ClearReversedAt clears the value of the "reversed_at" field.
func (_u *StockDeductionUpdateOne) ClearReversedAt() *StockDeductionUpdateOne {
	_u.mutation.ClearReversedAt()
	return _u
}

// SetReversedBy sets the "reversed_by" field.
func (_u *StockDeductionUpdateOne) SetReversedBy(v string) *StockDeductionUpdateOne {
	_u.mutation.SetReversedBy(v)
	return _u
}

// SetNillableReversedBy sets the "reversed_by" field if the given value is not nil.
func (_u *StockDeductionUpdateOne) SetNillableReversedBy(v *string) *StockDeductionUpdateOne {
	if v != nil {
		_u.SetReversedBy(*v)
	}
	return _u
}

// ClearReversedBy clears the value of the "reversed_by" field.
func (_u *StockDeductionUpdateOne) ClearReversedBy() *StockDeductionUpdateOne {
	_u.mutation.ClearReversedBy()
	return _u
}

// Mutation returns the StockDeductionMutation object of the builder.
func (_u *StockDeductionUpdateOne) Mutation() *StockDeductionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StockDeductionUpdate builder.
func (_u *StockDeductionUpdateOne) Where(ps ...predicate.StockDeduction) *StockDeductionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StockDeductionUpdateOne) Select(field string, fields ...string) *StockDeductionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StockDeduction entity.
func (_u *StockDeductionUpdateOne) Save(ctx context.Context) (*StockDeduction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StockDeductionUpdateOne) SaveX(ctx context.Context) *StockDeduction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StockDeductionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StockDeductionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StockDeductionUpdateOne) sqlSave(ctx context.Context) (_node *StockDeduction, err error) {
	_spec := sqlgraph.NewUpdateSpec(stockdeduction.Table, stockdeduction.Columns, sqlgraph.NewFieldSpec(stockdeduction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StockDeduction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stockdeduction.FieldID)
		for _, f := range fields {
			if !stockdeduction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stockdeduction.FieldID {
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
	if value, ok := _u.mutation.ReversedAt(); ok {
		_spec.SetField(stockdeduction.FieldReversedAt, field.TypeTime, value)
	}
	if _u.mutation.ReversedAtCleared() {
		_spec.ClearField(stockdeduction.FieldReversedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReversedBy(); ok {
		_spec.SetField(stockdeduction.FieldReversedBy, field.TypeString, value)
	}
	if _u.mutation.ReversedByCleared() {
		_spec.ClearField(stockdeduction.FieldReversedBy, field.TypeString)
	}
	_node = &StockDeduction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stockdeduction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
