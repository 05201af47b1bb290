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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/partusage"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
)

// PartUsageUpdate is the builder for updating PartUsage entities.
type PartUsageUpdate struct {
	config
	hooks    []Hook
	mutation *PartUsageMutation
}

// Where appends a list predicates to the PartUsageUpdate builder.
func (_u *PartUsageUpdate) Where(ps ...predicate.PartUsage) *PartUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PartUsageUpdate) SetUpdatedAt(v time.Time) *PartUsageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *PartUsageUpdate) SetQuantity(v int) *PartUsageUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *PartUsageUpdate) SetNillableQuantity(v *int) *PartUsageUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *PartUsageUpdate) AddQuantity(v int) *PartUsageUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// Mutation returns the PartUsageMutation object of the builder.
func (_u *PartUsageUpdate) Mutation() *PartUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PartUsageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PartUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PartUsageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := partusage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartUsageUpdate) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := partusage.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "PartUsage.quantity": %w`, err)}
		}
	}
	return nil
}

func (_u *PartUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(partusage.Table, partusage.Columns, sqlgraph.NewFieldSpec(partusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(partusage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(partusage.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(partusage.FieldQuantity, field.TypeInt, value)
	}
	if _u.mutation.SourceDescriptionCleared() {
		_spec.ClearField(partusage.FieldSourceDescription, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{partusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PartUsageUpdateOne is the builder for updating a single PartUsage entity.
type PartUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PartUsageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PartUsageUpdateOne) SetUpdatedAt(v time.Time) *PartUsageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *PartUsageUpdateOne) SetQuantity(v int) *PartUsageUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *PartUsageUpdateOne) SetNillableQuantity(v *int) *PartUsageUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *PartUsageUpdateOne) AddQuantity(v int) *PartUsageUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// Mutation returns the PartUsageMutation object of the builder.
func (_u *PartUsageUpdateOne) Mutation() *PartUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the PartUsageUpdate builder.
func (_u *PartUsageUpdateOne) Where(ps ...predicate.PartUsage) *PartUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PartUsageUpdateOne) Select(field string, fields ...string) *PartUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PartUsage entity.
func (_u *PartUsageUpdateOne) Save(ctx context.Context) (*PartUsage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartUsageUpdateOne) SaveX(ctx context.Context) *PartUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PartUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PartUsageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := partusage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartUsageUpdateOne) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := partusage.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "PartUsage.quantity": %w`, err)}
		}
	}
	return nil
}

func (_u *PartUsageUpdateOne) sqlSave(ctx context.Context) (_node *PartUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(partusage.Table, partusage.Columns, sqlgraph.NewFieldSpec(partusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PartUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, partusage.FieldID)
		for _, f := range fields {
			if !partusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != partusage.FieldID {
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
		_spec.SetField(partusage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(partusage.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(partusage.FieldQuantity, field.TypeInt, value)
	}
	if _u.mutation.SourceDescriptionCleared() {
		_spec.ClearField(partusage.FieldSourceDescription, field.TypeString)
	}
	_node = &PartUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{partusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
