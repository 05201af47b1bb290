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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/budgetitem"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
)

// BudgetItemUpdate is the builder for updating BudgetItem entities.
type BudgetItemUpdate struct {
	config
	hooks    []Hook
	mutation *BudgetItemMutation
}

// Where appends a list predicates to the BudgetItemUpdate builder.
func (_u *BudgetItemUpdate) Where(ps ...predicate.BudgetItem) *BudgetItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetItemUpdate) SetUpdatedAt(v time.Time) *BudgetItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *BudgetItemUpdate) SetDescription(v string) *BudgetItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BudgetItemUpdate) SetNillableDescription(v *string) *BudgetItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *BudgetItemUpdate) SetQuantity(v int) *BudgetItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *BudgetItemUpdate) SetNillableQuantity(v *int) *BudgetItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *BudgetItemUpdate) AddQuantity(v int) *BudgetItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (_u *BudgetItemUpdate) SetUnitPriceCents(v int64) *BudgetItemUpdate {
	_u.mutation.ResetUnitPriceCents()
	_u.mutation.SetUnitPriceCents(v)
	return _u
}

// SetNillableUnitPriceCents sets the "unit_price_cents" field if the given value is not nil.
func (_u *BudgetItemUpdate) SetNillableUnitPriceCents(v *int64) *BudgetItemUpdate {
	if v != nil {
		_u.SetUnitPriceCents(*v)
	}
	return _u
}

// AddUnitPriceCents adds value to the "unit_price_cents" field.
func (_u *BudgetItemUpdate) AddUnitPriceCents(v int64) *BudgetItemUpdate {
	_u.mutation.AddUnitPriceCents(v)
	return _u
}

// SetExtraConcept sets the "extra_concept" field.
func (_u *BudgetItemUpdate) SetExtraConcept(v string) *BudgetItemUpdate {
	_u.mutation.SetExtraConcept(v)
	return _u
}

// SetNillableExtraConcept sets the "extra_concept" field if the given value is not nil.
func (_u *BudgetItemUpdate) SetNillableExtraConcept(v *string) *BudgetItemUpdate {
	if v != nil {
		_u.SetExtraConcept(*v)
	}
	return _u
}

// ClearExtraConcept clears the value of the "extra_concept" field.
func (_u *BudgetItemUpdate) ClearExtraConcept() *BudgetItemUpdate {
	_u.mutation.ClearExtraConcept()
	return _u
}

// SetExtraPriceCents sets the "extra_price_cents" field.
func (_u *BudgetItemUpdate) SetExtraPriceCents(v int64) *BudgetItemUpdate {
	_u.mutation.ResetExtraPriceCents()
	_u.mutation.SetExtraPriceCents(v)
	return _u
}

// SetNillableExtraPriceCents sets the "extra_price_cents" field if the given value is not nil.
func (_u *BudgetItemUpdate) SetNillableExtraPriceCents(v *int64) *BudgetItemUpdate {
	if v != nil {
		_u.SetExtraPriceCents(*v)
	}
	return _u
}

// AddExtraPriceCents adds value to the "extra_price_cents" field.
func (_u *BudgetItemUpdate) AddExtraPriceCents(v int64) *BudgetItemUpdate {
	_u.mutation.AddExtraPriceCents(v)
	return _u
}

// Mutation returns the BudgetItemMutation object of the builder.
func (_u *BudgetItemUpdate) Mutation() *BudgetItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BudgetItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BudgetItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetItemUpdate) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := budgetitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := budgetitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPriceCents(); ok {
		if err := budgetitem.UnitPriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "unit_price_cents", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.unit_price_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtraPriceCents(); ok {
		if err := budgetitem.ExtraPriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "extra_price_cents", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.extra_price_cents": %w`, err)}
		}
	}
	return nil
}

func (_u *BudgetItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budgetitem.Table, budgetitem.Columns, sqlgraph.NewFieldSpec(budgetitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(budgetitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(budgetitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(budgetitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPriceCents(); ok {
		_spec.SetField(budgetitem.FieldUnitPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPriceCents(); ok {
		_spec.AddField(budgetitem.FieldUnitPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExtraConcept(); ok {
		_spec.SetField(budgetitem.FieldExtraConcept, field.TypeString, value)
	}
	if _u.mutation.ExtraConceptCleared() {
		_spec.ClearField(budgetitem.FieldExtraConcept, field.TypeString)
	}
	if value, ok := _u.mutation.ExtraPriceCents(); ok {
		_spec.SetField(budgetitem.FieldExtraPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExtraPriceCents(); ok {
		_spec.AddField(budgetitem.FieldExtraPriceCents, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BudgetItemUpdateOne is the builder for updating a single BudgetItem entity.
type BudgetItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BudgetItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetItemUpdateOne) SetUpdatedAt(v time.Time) *BudgetItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *BudgetItemUpdateOne) SetDescription(v string) *BudgetItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BudgetItemUpdateOne) SetNillableDescription(v *string) *BudgetItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *BudgetItemUpdateOne) SetQuantity(v int) *BudgetItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *BudgetItemUpdateOne) SetNillableQuantity(v *int) *BudgetItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *BudgetItemUpdateOne) AddQuantity(v int) *BudgetItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (_u *BudgetItemUpdateOne) SetUnitPriceCents(v int64) *BudgetItemUpdateOne {
	_u.mutation.ResetUnitPriceCents()
	_u.mutation.SetUnitPriceCents(v)
	return _u
}

// SetNillableUnitPriceCents sets the "unit_price_cents" field if the given value is not nil.
func (_u *BudgetItemUpdateOne) SetNillableUnitPriceCents(v *int64) *BudgetItemUpdateOne {
	if v != nil {
		_u.SetUnitPriceCents(*v)
	}
	return _u
}

// AddUnitPriceCents adds value to the "unit_price_cents" field.
func (_u *BudgetItemUpdateOne) AddUnitPriceCents(v int64) *BudgetItemUpdateOne {
	_u.mutation.AddUnitPriceCents(v)
	return _u
}

// SetExtraConcept sets the "extra_concept" field.
func (_u *BudgetItemUpdateOne) SetExtraConcept(v string) *BudgetItemUpdateOne {
	_u.mutation.SetExtraConcept(v)
	return _u
}

// SetNillableExtraConcept sets the "extra_concept" field if the given value is not nil.
func (_u *BudgetItemUpdateOne) SetNillableExtraConcept(v *string) *BudgetItemUpdateOne {
	if v != nil {
		_u.SetExtraConcept(*v)
	}
	return _u
}

// ClearExtraConcept clears the value of the "extra_concept" field.
func (_u *BudgetItemUpdateOne) ClearExtraConcept() *BudgetItemUpdateOne {
	_u.mutation.ClearExtraConcept()
	return _u
}

// SetExtraPriceCents sets the "extra_price_cents" field.
func (_u *BudgetItemUpdateOne) SetExtraPriceCents(v int64) *BudgetItemUpdateOne {
	_u.mutation.ResetExtraPriceCents()
	_u.mutation.SetExtraPriceCents(v)
	return _u
}

// SetNillableExtraPriceCents sets the "extra_price_cents" field if the given value is not nil.
func (_u *BudgetItemUpdateOne) SetNillableExtraPriceCents(v *int64) *BudgetItemUpdateOne {
	if v != nil {
		_u.SetExtraPriceCents(*v)
	}
	return _u
}

// AddExtraPriceCents adds value to the "extra_price_cents" field.
func (_u *BudgetItemUpdateOne) AddExtraPriceCents(v int64) *BudgetItemUpdateOne {
	_u.mutation.AddExtraPriceCents(v)
	return _u
}

// Mutation returns the BudgetItemMutation object of the builder.
func (_u *BudgetItemUpdateOne) Mutation() *BudgetItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the BudgetItemUpdate builder.
func (_u *BudgetItemUpdateOne) Where(ps ...predicate.BudgetItem) *BudgetItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BudgetItemUpdateOne) Select(field string, fields ...string) *BudgetItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BudgetItem entity.
func (_u *BudgetItemUpdateOne) Save(ctx context.Context) (*BudgetItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetItemUpdateOne) SaveX(ctx context.Context) *BudgetItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BudgetItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetItemUpdateOne) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := budgetitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := budgetitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPriceCents(); ok {
		if err := budgetitem.UnitPriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "unit_price_cents", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.unit_price_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtraPriceCents(); ok {
		if err := budgetitem.ExtraPriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "extra_price_cents", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.extra_price_cents": %w`, err)}
		}
	}
	return nil
}

func (_u *BudgetItemUpdateOne) sqlSave(ctx context.Context) (_node *BudgetItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budgetitem.Table, budgetitem.Columns, sqlgraph.NewFieldSpec(budgetitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BudgetItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budgetitem.FieldID)
		for _, f := range fields {
			if !budgetitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != budgetitem.FieldID {
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
		_spec.SetField(budgetitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(budgetitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(budgetitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(budgetitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPriceCents(); ok {
		_spec.SetField(budgetitem.FieldUnitPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPriceCents(); ok {
		_spec.AddField(budgetitem.FieldUnitPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExtraConcept(); ok {
		_spec.SetField(budgetitem.FieldExtraConcept, field.TypeString, value)
	}
	if _u.mutation.ExtraConceptCleared() {
		_spec.ClearField(budgetitem.FieldExtraConcept, field.TypeString)
	}
	if value, ok := _u.mutation.ExtraPriceCents(); ok {
		_spec.SetField(budgetitem.FieldExtraPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExtraPriceCents(); ok {
		_spec.AddField(budgetitem.FieldExtraPriceCents, field.TypeInt64, value)
	}
	_node = &BudgetItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
