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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/part"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
)

// PartUpdate is the builder for updating Part entities.
type PartUpdate struct {
	config
	hooks    []Hook
	mutation *PartMutation
}

// Where appends a list predicates to the PartUpdate builder.
func (_u *PartUpdate) Where(ps ...predicate.Part) *PartUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PartUpdate) SetUpdatedAt(v time.Time) *PartUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PartUpdate) SetName(v string) *PartUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PartUpdate) SetNillableName(v *string) *PartUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *PartUpdate) SetSku(v string) *PartUpdate {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *PartUpdate) SetNillableSku(v *string) *PartUpdate {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// SetStockQuantity sets the "stock_quantity" field.
func (_u *PartUpdate) SetStockQuantity(v int) *PartUpdate {
	_u.mutation.ResetStockQuantity()
	_u.mutation.SetStockQuantity(v)
	return _u
}

// SetNillableStockQuantity sets the "stock_quantity" field if the given value is not nil.
func (_u *PartUpdate) SetNillableStockQuantity(v *int) *PartUpdate {
	if v != nil {
		_u.SetStockQuantity(*v)
	}
	return _u
}

// AddStockQuantity adds value to the "stock_quantity" field.
func (_u *PartUpdate) AddStockQuantity(v int) *PartUpdate {
	_u.mutation.AddStockQuantity(v)
	return _u
}

// SetMinimumStock sets the "minimum_stock" field.
func (_u *PartUpdate) SetMinimumStock(v int) *PartUpdate {
	_u.mutation.ResetMinimumStock()
	_u.mutation.SetMinimumStock(v)
	return _u
}

// SetNillableMinimumStock sets the "minimum_stock" field if the given value is not nil.
func (_u *PartUpdate) SetNillableMinimumStock(v *int) *PartUpdate {
	if v != nil {
		_u.SetMinimumStock(*v)
	}
	return _u
}

// AddMinimumStock adds value to the "minimum_stock" field.
func (_u *PartUpdate) AddMinimumStock(v int) *PartUpdate {
	_u.mutation.AddMinimumStock(v)
	return _u
}

// SetMaximumStock sets the "maximum_stock" field.
func (_u *PartUpdate) SetMaximumStock(v int) *PartUpdate {
	_u.mutation.ResetMaximumStock()
	_u.mutation.SetMaximumStock(v)
	return _u
}

// SetNillableMaximumStock sets the "maximum_stock" field if the given value is not nil.
func (_u *PartUpdate) SetNillableMaximumStock(v *int) *PartUpdate {
	if v != nil {
		_u.SetMaximumStock(*v)
	}
	return _u
}

// AddMaximumStock adds value to the "maximum_stock" field.
func (_u *PartUpdate) AddMaximumStock(v int) *PartUpdate {
	_u.mutation.AddMaximumStock(v)
	return _u
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (_u *PartUpdate) SetUnitPriceCents(v int64) *PartUpdate {
	_u.mutation.ResetUnitPriceCents()
	_u.mutation.SetUnitPriceCents(v)
	return _u
}

// SetNillableUnitPriceCents sets the "unit_price_cents" field if the given value is not nil.
func (_u *PartUpdate) SetNillableUnitPriceCents(v *int64) *PartUpdate {
	if v != nil {
		_u.SetUnitPriceCents(*v)
	}
	return _u
}

// AddUnitPriceCents adds value to the "unit_price_cents" field.
func (_u *PartUpdate) AddUnitPriceCents(v int64) *PartUpdate {
	_u.mutation.AddUnitPriceCents(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *PartUpdate) SetActive(v bool) *PartUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PartUpdate) SetNillableActive(v *bool) *PartUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the PartMutation object of the builder.
func (_u *PartUpdate) Mutation() *PartMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PartUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PartUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PartUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := part.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := part.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Part.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sku(); ok {
		if err := part.SkuValidator(v); err != nil {
			return &ValidationError{Name: "sku", err: fmt.Errorf(`ent: validator failed for field "Part.sku": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StockQuantity(); ok {
		if err := part.StockQuantityValidator(v); err != nil {
			return &ValidationError{Name: "stock_quantity", err: fmt.Errorf(`ent: validator failed for field "Part.stock_quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinimumStock(); ok {
		if err := part.MinimumStockValidator(v); err != nil {
			return &ValidationError{Name: "minimum_stock", err: fmt.Errorf(`ent: validator failed for field "Part.minimum_stock": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaximumStock(); ok {
		if err := part.MaximumStockValidator(v); err != nil {
			return &ValidationError{Name: "maximum_stock", err: fmt.Errorf(`ent: validator failed for field "Part.maximum_stock": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPriceCents(); ok {
		if err := part.UnitPriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "unit_price_cents", err: fmt.Errorf(`ent: validator failed for field "Part.unit_price_cents": %w`, err)}
		}
	}
	return nil
}

func (_u *PartUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(part.Table, part.Columns, sqlgraph.NewFieldSpec(part.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(part.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(part.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(part.FieldSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.StockQuantity(); ok {
		_spec.SetField(part.FieldStockQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStockQuantity(); ok {
		_spec.AddField(part.FieldStockQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinimumStock(); ok {
		_spec.SetField(part.FieldMinimumStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinimumStock(); ok {
		_spec.AddField(part.FieldMinimumStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaximumStock(); ok {
		_spec.SetField(part.FieldMaximumStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaximumStock(); ok {
		_spec.AddField(part.FieldMaximumStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPriceCents(); ok {
		_spec.SetField(part.FieldUnitPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPriceCents(); ok {
		_spec.AddField(part.FieldUnitPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(part.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{part.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PartUpdateOne is the builder for updating a single Part entity.
type PartUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PartMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PartUpdateOne) SetUpdatedAt(v time.Time) *PartUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PartUpdateOne) SetName(v string) *PartUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillableName(v *string) *PartUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *PartUpdateOne) SetSku(v string) *PartUpdateOne {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillableSku(v *string) *PartUpdateOne {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// SetStockQuantity sets the "stock_quantity" field.
func (_u *PartUpdateOne) SetStockQuantity(v int) *PartUpdateOne {
	_u.mutation.ResetStockQuantity()
	_u.mutation.SetStockQuantity(v)
	return _u
}

// SetNillableStockQuantity sets the "stock_quantity" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillableStockQuantity(v *int) *PartUpdateOne {
	if v != nil {
		_u.SetStockQuantity(*v)
	}
	return _u
}

// AddStockQuantity adds value to the "stock_quantity" field.
func (_u *PartUpdateOne) AddStockQuantity(v int) *PartUpdateOne {
	_u.mutation.AddStockQuantity(v)
	return _u
}

// SetMinimumStock sets the "minimum_stock" field.
func (_u *PartUpdateOne) SetMinimumStock(v int) *PartUpdateOne {
	_u.mutation.ResetMinimumStock()
	_u.mutation.SetMinimumStock(v)
	return _u
}

// SetNillableMinimumStock sets the "minimum_stock" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillableMinimumStock(v *int) *PartUpdateOne {
	if v != nil {
		_u.SetMinimumStock(*v)
	}
	return _u
}

// AddMinimumStock adds value to the "minimum_stock" field.
func (_u *PartUpdateOne) AddMinimumStock(v int) *PartUpdateOne {
	_u.mutation.AddMinimumStock(v)
	return _u
}

// SetMaximumStock sets the "maximum_stock" field.
func (_u *PartUpdateOne) SetMaximumStock(v int) *PartUpdateOne {
	_u.mutation.ResetMaximumStock()
	_u.mutation.SetMaximumStock(v)
	return _u
}

// SetNillableMaximumStock sets the "maximum_stock" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillableMaximumStock(v *int) *PartUpdateOne {
	if v != nil {
		_u.SetMaximumStock(*v)
	}
	return _u
}

// AddMaximumStock adds value to the "maximum_stock" field.
func (_u *PartUpdateOne) AddMaximumStock(v int) *PartUpdateOne {
	_u.mutation.AddMaximumStock(v)
	return _u
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (_u *PartUpdateOne) SetUnitPriceCents(v int64) *PartUpdateOne {
	_u.mutation.ResetUnitPriceCents()
	_u.mutation.SetUnitPriceCents(v)
	return _u
}

// SetNillableUnitPriceCents sets the "unit_price_cents" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillableUnitPriceCents(v *int64) *PartUpdateOne {
	if v != nil {
		_u.SetUnitPriceCents(*v)
	}
	return _u
}

// AddUnitPriceCents adds value to the "unit_price_cents" field.
func (_u *PartUpdateOne) AddUnitPriceCents(v int64) *PartUpdateOne {
	_u.mutation.AddUnitPriceCents(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *PartUpdateOne) SetActive(v bool) *PartUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillableActive(v *bool) *PartUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the PartMutation object of the builder.
func (_u *PartUpdateOne) Mutation() *PartMutation {
	return _u.mutation
}

// Where appends a list predicates to the PartUpdate builder.
func (_u *PartUpdateOne) Where(ps ...predicate.Part) *PartUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PartUpdateOne) Select(field string, fields ...string) *PartUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Part entity.
func (_u *PartUpdateOne) Save(ctx context.Context) (*Part, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartUpdateOne) SaveX(ctx context.Context) *Part {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PartUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PartUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := part.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := part.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Part.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sku(); ok {
		if err := part.SkuValidator(v); err != nil {
			return &ValidationError{Name: "sku", err: fmt.Errorf(`ent: validator failed for field "Part.sku": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StockQuantity(); ok {
		if err := part.StockQuantityValidator(v); err != nil {
			return &ValidationError{Name: "stock_quantity", err: fmt.Errorf(`ent: validator failed for field "Part.stock_quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinimumStock(); ok {
		if err := part.MinimumStockValidator(v); err != nil {
			return &ValidationError{Name: "minimum_stock", err: fmt.Errorf(`ent: validator failed for field "Part.minimum_stock": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaximumStock(); ok {
		if err := part.MaximumStockValidator(v); err != nil {
			return &ValidationError{Name: "maximum_stock", err: fmt.Errorf(`ent: validator failed for field "Part.maximum_stock": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPriceCents(); ok {
		if err := part.UnitPriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "unit_price_cents", err: fmt.Errorf(`ent: validator failed for field "Part.unit_price_cents": %w`, err)}
		}
	}
	return nil
}

func (_u *PartUpdateOne) sqlSave(ctx context.Context) (_node *Part, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(part.Table, part.Columns, sqlgraph.NewFieldSpec(part.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Part.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, part.FieldID)
		for _, f := range fields {
			if !part.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != part.FieldID {
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
		_spec.SetField(part.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(part.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(part.FieldSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.StockQuantity(); ok {
		_spec.SetField(part.FieldStockQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStockQuantity(); ok {
		_spec.AddField(part.FieldStockQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinimumStock(); ok {
		_spec.SetField(part.FieldMinimumStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinimumStock(); ok {
		_spec.AddField(part.FieldMinimumStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaximumStock(); ok {
		_spec.SetField(part.FieldMaximumStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaximumStock(); ok {
		_spec.AddField(part.FieldMaximumStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPriceCents(); ok {
		_spec.SetField(part.FieldUnitPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPriceCents(); ok {
		_spec.AddField(part.FieldUnitPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(part.FieldActive, field.TypeBool, value)
	}
	_node = &Part{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{part.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
