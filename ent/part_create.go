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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/part"
)

// PartCreate is the builder for creating a Part entity.
type PartCreate struct {
	config
	mutation *PartMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PartCreate) SetCreatedAt(v time.Time) *PartCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PartCreate) SetNillableCreatedAt(v *time.Time) *PartCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PartCreate) SetUpdatedAt(v time.Time) *PartCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PartCreate) SetNillableUpdatedAt(v *time.Time) *PartCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PartCreate) SetName(v string) *PartCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSku sets the "sku" field.
func (_c *PartCreate) SetSku(v string) *PartCreate {
	_c.mutation.SetSku(v)
	return _c
}

// SetStockQuantity sets the "stock_quantity" field.
func (_c *PartCreate) SetStockQuantity(v int) *PartCreate {
	_c.mutation.SetStockQuantity(v)
	return _c
}

// SetNillableStockQuantity sets the "stock_quantity" field if the given value is not nil.
func (_c *PartCreate) SetNillableStockQuantity(v *int) *PartCreate {
	if v != nil {
		_c.SetStockQuantity(*v)
	}
	return _c
}

// SetMinimumStock sets the "minimum_stock" field.
func (_c *PartCreate) SetMinimumStock(v int) *PartCreate {
	_c.mutation.SetMinimumStock(v)
	return _c
}

// SetNillableMinimumStock sets the "minimum_stock" field if the given value is not nil.
func (_c *PartCreate) SetNillableMinimumStock(v *int) *PartCreate {
	if v != nil {
		_c.SetMinimumStock(*v)
	}
	return _c
}

// SetMaximumStock sets the "maximum_stock" field.
func (_c *PartCreate) SetMaximumStock(v int) *PartCreate {
	_c.mutation.SetMaximumStock(v)
	return _c
}

// SetNillableMaximumStock sets the "maximum_stock" field if the given value is not nil.
func (_c *PartCreate) SetNillableMaximumStock(v *int) *PartCreate {
	if v != nil {
		_c.SetMaximumStock(*v)
	}
	return _c
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (_c *PartCreate) SetUnitPriceCents(v int64) *PartCreate {
	_c.mutation.SetUnitPriceCents(v)
	return _c
}

// SetNillableUnitPriceCents sets the "unit_price_cents" field if the given value is not nil.
func (_c *PartCreate) SetNillableUnitPriceCents(v *int64) *PartCreate {
	if v != nil {
		_c.SetUnitPriceCents(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *PartCreate) SetActive(v bool) *PartCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *PartCreate) SetNillableActive(v *bool) *PartCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PartCreate) SetID(v string) *PartCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PartMutation object of the builder.
func (_c *PartCreate) Mutation() *PartMutation {
	return _c.mutation
}

// Save creates the Part in the database.
func (_c *PartCreate) Save(ctx context.Context) (*Part, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PartCreate) SaveX(ctx context.Context) *Part {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PartCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := part.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := part.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.StockQuantity(); !ok {
		v := part.DefaultStockQuantity
		_c.mutation.SetStockQuantity(v)
	}
	if _, ok := _c.mutation.MinimumStock(); !ok {
		v := part.DefaultMinimumStock
		_c.mutation.SetMinimumStock(v)
	}
	if _, ok := _c.mutation.MaximumStock(); !ok {
		v := part.DefaultMaximumStock
		_c.mutation.SetMaximumStock(v)
	}
	if _, ok := _c.mutation.UnitPriceCents(); !ok {
		v := part.DefaultUnitPriceCents
		_c.mutation.SetUnitPriceCents(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := part.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PartCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Part.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Part.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Part.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := part.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Part.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sku(); !ok {
		return &ValidationError{Name: "sku", err: errors.New(`ent: missing required field "Part.sku"`)}
	}
	if v, ok := _c.mutation.Sku(); ok {
		if err := part.SkuValidator(v); err != nil {
			return &ValidationError{Name: "sku", err: fmt.Errorf(`ent: validator failed for field "Part.sku": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StockQuantity(); !ok {
		return &ValidationError{Name: "stock_quantity", err: errors.New(`ent: missing required field "Part.stock_quantity"`)}
	}
	if v, ok := _c.mutation.StockQuantity(); ok {
		if err := part.StockQuantityValidator(v); err != nil {
			return &ValidationError{Name: "stock_quantity", err: fmt.Errorf(`ent: validator failed for field "Part.stock_quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinimumStock(); !ok {
		return &ValidationError{Name: "minimum_stock", err: errors.New(`ent: missing required field "Part.minimum_stock"`)}
	}
	if v, ok := _c.mutation.MinimumStock(); ok {
		if err := part.MinimumStockValidator(v); err != nil {
			return &ValidationError{Name: "minimum_stock", err: fmt.Errorf(`ent: validator failed for field "Part.minimum_stock": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaximumStock(); !ok {
		return &ValidationError{Name: "maximum_stock", err: errors.New(`ent: missing required field "Part.maximum_stock"`)}
	}
	if v, ok := _c.mutation.MaximumStock(); ok {
		if err := part.MaximumStockValidator(v); err != nil {
			return &ValidationError{Name: "maximum_stock", err: fmt.Errorf(`ent: validator failed for field "Part.maximum_stock": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPriceCents(); !ok {
		return &ValidationError{Name: "unit_price_cents", err: errors.New(`ent: missing required field "Part.unit_price_cents"`)}
	}
	if v, ok := _c.mutation.UnitPriceCents(); ok {
		if err := part.UnitPriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "unit_price_cents", err: fmt.Errorf(`ent: validator failed for field "Part.unit_price_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Part.active"`)}
	}
	return nil
}

func (_c *PartCreate) sqlSave(ctx context.Context) (*Part, error) {
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
			return nil, fmt.Errorf("unexpected Part.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PartCreate) createSpec() (*Part, *sqlgraph.CreateSpec) {
	var (
		_node = &Part{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(part.Table, sqlgraph.NewFieldSpec(part.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(part.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(part.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(part.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Sku(); ok {
		_spec.SetField(part.FieldSku, field.TypeString, value)
		_node.Sku = value
	}
	if value, ok := _c.mutation.StockQuantity(); ok {
		_spec.SetField(part.FieldStockQuantity, field.TypeInt, value)
		_node.StockQuantity = value
	}
	if value, ok := _c.mutation.MinimumStock(); ok {
		_spec.SetField(part.FieldMinimumStock, field.TypeInt, value)
		_node.MinimumStock = value
	}
	if value, ok := _c.mutation.MaximumStock(); ok {
		_spec.SetField(part.FieldMaximumStock, field.TypeInt, value)
		_node.MaximumStock = value
	}
	if value, ok := _c.mutation.UnitPriceCents(); ok {
		_spec.SetField(part.FieldUnitPriceCents, field.TypeInt64, value)
		_node.UnitPriceCents = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(part.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Part.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartCreate) OnConflict(opts ...sql.ConflictOption) *PartUpsertOne {
	_c.conflict = opts
	return &PartUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Part.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartCreate) OnConflictColumns(columns ...string) *PartUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartUpsertOne{
		create: _c,
	}
}

type (
	// PartUpsertOne is the builder for "upsert"-ing
	//  one Part node.
	PartUpsertOne struct {
		create *PartCreate
	}

	// PartUpsert is the "OnConflict" setter.
	PartUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PartUpsert) SetUpdatedAt(v time.Time) *PartUpsert {
	u.Set(part.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartUpsert) UpdateUpdatedAt() *PartUpsert {
	u.SetExcluded(part.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *PartUpsert) SetName(v string) *PartUpsert {
	u.Set(part.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PartUpsert) UpdateName() *PartUpsert {
	u.SetExcluded(part.FieldName)
	return u
}

// SetSku sets the "sku" field.
func (u *PartUpsert) SetSku(v string) *PartUpsert {
	u.Set(part.FieldSku, v)
	return u
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *PartUpsert) UpdateSku() *PartUpsert {
	u.SetExcluded(part.FieldSku)
	return u
}

// SetStockQuantity sets the "stock_quantity" field.
func (u *PartUpsert) SetStockQuantity(v int) *PartUpsert {
	u.Set(part.FieldStockQuantity, v)
	return u
}

// UpdateStockQuantity sets the "stock_quantity" field to the value that was provided on create.
func (u *PartUpsert) UpdateStockQuantity() *PartUpsert {
	u.SetExcluded(part.FieldStockQuantity)
	return u
}

// AddStockQuantity adds v to the "stock_quantity" field.
func (u *PartUpsert) AddStockQuantity(v int) *PartUpsert {
	u.Add(part.FieldStockQuantity, v)
	return u
}

// SetMinimumStock sets the "minimum_stock" field.
func (u *PartUpsert) SetMinimumStock(v int) *PartUpsert {
	u.Set(part.FieldMinimumStock, v)
	return u
}

// UpdateMinimumStock sets the "minimum_stock" field to the value that was provided on create.
func (u *PartUpsert) UpdateMinimumStock() *PartUpsert {
	u.SetExcluded(part.FieldMinimumStock)
	return u
}

// AddMinimumStock adds v to the "minimum_stock" field.
func (u *PartUpsert) AddMinimumStock(v int) *PartUpsert {
	u.Add(part.FieldMinimumStock, v)
	return u
}

// SetMaximumStock sets the "maximum_stock" field.
func (u *PartUpsert) SetMaximumStock(v int) *PartUpsert {
	u.Set(part.FieldMaximumStock, v)
	return u
}

// UpdateMaximumStock sets the "maximum_stock" field to the value that was provided on create.
func (u *PartUpsert) UpdateMaximumStock() *PartUpsert {
	u.SetExcluded(part.FieldMaximumStock)
	return u
}

// AddMaximumStock adds v to the "maximum_stock" field.
func (u *PartUpsert) AddMaximumStock(v int) *PartUpsert {
	u.Add(part.FieldMaximumStock, v)
	return u
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (u *PartUpsert) SetUnitPriceCents(v int64) *PartUpsert {
	u.Set(part.FieldUnitPriceCents, v)
	return u
}

// UpdateUnitPriceCents sets the "unit_price_cents" field to the value that was provided on create.
func (u *PartUpsert) UpdateUnitPriceCents() *PartUpsert {
	u.SetExcluded(part.FieldUnitPriceCents)
	return u
}

// AddUnitPriceCents adds v to the "unit_price_cents" field.
func (u *PartUpsert) AddUnitPriceCents(v int64) *PartUpsert {
	u.Add(part.FieldUnitPriceCents, v)
	return u
}

// SetActive sets the "active" field.
func (u *PartUpsert) SetActive(v bool) *PartUpsert {
	u.Set(part.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PartUpsert) UpdateActive() *PartUpsert {
	u.SetExcluded(part.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Part.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(part.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartUpsertOne) UpdateNewValues() *PartUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(part.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(part.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Part.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PartUpsertOne) Ignore() *PartUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartUpsertOne) DoNothing() *PartUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartCreate.OnConflict
// documentation for more info.
func (u *PartUpsertOne) Update(set func(*PartUpsert)) *PartUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PartUpsertOne) SetUpdatedAt(v time.Time) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartUpsertOne) UpdateUpdatedAt() *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *PartUpsertOne) SetName(v string) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PartUpsertOne) UpdateName() *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.UpdateName()
	})
}

// SetSku sets the "sku" field.
func (u *PartUpsertOne) SetSku(v string) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.SetSku(v)
	})
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *PartUpsertOne) UpdateSku() *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.UpdateSku()
	})
}

// SetStockQuantity sets the "stock_quantity" field.
func (u *PartUpsertOne) SetStockQuantity(v int) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.SetStockQuantity(v)
	})
}

// AddStockQuantity adds v to the "stock_quantity" field.
func (u *PartUpsertOne) AddStockQuantity(v int) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.AddStockQuantity(v)
	})
}

// UpdateStockQuantity sets the "stock_quantity" field to the value that was provided on create.
func (u *PartUpsertOne) UpdateStockQuantity() *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.UpdateStockQuantity()
	})
}

// SetMinimumStock sets the "minimum_stock" field.
func (u *PartUpsertOne) SetMinimumStock(v int) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.SetMinimumStock(v)
	})
}

// AddMinimumStock adds v to the "minimum_stock" field.
func (u *PartUpsertOne) AddMinimumStock(v int) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.AddMinimumStock(v)
	})
}

// UpdateMinimumStock sets the "minimum_stock" field to the value that was provided on create.
func (u *PartUpsertOne) UpdateMinimumStock() *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.UpdateMinimumStock()
	})
}

// SetMaximumStock sets the "maximum_stock" field.
func (u *PartUpsertOne) SetMaximumStock(v int) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.SetMaximumStock(v)
	})
}

// AddMaximumStock adds v to the "maximum_stock" field.
func (u *PartUpsertOne) AddMaximumStock(v int) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.AddMaximumStock(v)
	})
}

// UpdateMaximumStock sets the "maximum_stock" field to the value that was provided on create.
func (u *PartUpsertOne) UpdateMaximumStock() *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.UpdateMaximumStock()
	})
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (u *PartUpsertOne) SetUnitPriceCents(v int64) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.SetUnitPriceCents(v)
	})
}

// AddUnitPriceCents adds v to the "unit_price_cents" field.
func (u *PartUpsertOne) AddUnitPriceCents(v int64) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.AddUnitPriceCents(v)
	})
}

// UpdateUnitPriceCents sets the "unit_price_cents" field to the value that was provided on create.
func (u *PartUpsertOne) UpdateUnitPriceCents() *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.UpdateUnitPriceCents()
	})
}

// SetActive sets the "active" field.
func (u *PartUpsertOne) SetActive(v bool) *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PartUpsertOne) UpdateActive() *PartUpsertOne {
	return u.Update(func(s *PartUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *PartUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PartCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PartUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PartUpsertOne.ID is not supported by MySQL driver. Use PartUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PartUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PartCreateBulk is the builder for creating many Part entities in bulk.
type PartCreateBulk struct {
	config
	err      error
	builders []*PartCreate
	conflict []sql.ConflictOption
}

// Save creates the Part entities in the database.
func (_c *PartCreateBulk) Save(ctx context.Context) ([]*Part, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Part, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PartMutation)
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
func (_c *PartCreateBulk) SaveX(ctx context.Context) []*Part {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Part.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartCreateBulk) OnConflict(opts ...sql.ConflictOption) *PartUpsertBulk {
	_c.conflict = opts
	return &PartUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Part.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartCreateBulk) OnConflictColumns(columns ...string) *PartUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartUpsertBulk{
		create: _c,
	}
}

// PartUpsertBulk is the builder for "upsert"-ing
// a bulk of Part nodes.
type PartUpsertBulk struct {
	create *PartCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Part.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(part.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartUpsertBulk) UpdateNewValues() *PartUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(part.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(part.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Part.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PartUpsertBulk) Ignore() *PartUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartUpsertBulk) DoNothing() *PartUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartCreateBulk.OnConflict
// documentation for more info.
func (u *PartUpsertBulk) Update(set func(*PartUpsert)) *PartUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PartUpsertBulk) SetUpdatedAt(v time.Time) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartUpsertBulk) UpdateUpdatedAt() *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *PartUpsertBulk) SetName(v string) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PartUpsertBulk) UpdateName() *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.UpdateName()
	})
}

// SetSku sets the "sku" field.
func (u *PartUpsertBulk) SetSku(v string) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.SetSku(v)
	})
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *PartUpsertBulk) UpdateSku() *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.UpdateSku()
	})
}

// SetStockQuantity sets the "stock_quantity" field.
func (u *PartUpsertBulk) SetStockQuantity(v int) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.SetStockQuantity(v)
	})
}

// AddStockQuantity adds v to the "stock_quantity" field.
func (u *PartUpsertBulk) AddStockQuantity(v int) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.AddStockQuantity(v)
	})
}

// UpdateStockQuantity sets the "stock_quantity" field to the value that was provided on create.
func (u *PartUpsertBulk) UpdateStockQuantity() *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.UpdateStockQuantity()
	})
}

// SetMinimumStock sets the "minimum_stock" field.
func (u *PartUpsertBulk) SetMinimumStock(v int) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.SetMinimumStock(v)
	})
}

// AddMinimumStock adds v to the "minimum_stock" field.
func (u *PartUpsertBulk) AddMinimumStock(v int) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.AddMinimumStock(v)
	})
}

// UpdateMinimumStock sets the "minimum_stock" field to the value that was provided on create.
func (u *PartUpsertBulk) UpdateMinimumStock() *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.UpdateMinimumStock()
	})
}

// SetMaximumStock sets the "maximum_stock" field.
func (u *PartUpsertBulk) SetMaximumStock(v int) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.SetMaximumStock(v)
	})
}

// AddMaximumStock adds v to the "maximum_stock" field.
func (u *PartUpsertBulk) AddMaximumStock(v int) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.AddMaximumStock(v)
	})
}

// UpdateMaximumStock sets the "maximum_stock" field to the value that was provided on create.
func (u *PartUpsertBulk) UpdateMaximumStock() *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.UpdateMaximumStock()
	})
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (u *PartUpsertBulk) SetUnitPriceCents(v int64) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.SetUnitPriceCents(v)
	})
}

// AddUnitPriceCents adds v to the "unit_price_cents" field.
func (u *PartUpsertBulk) AddUnitPriceCents(v int64) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.AddUnitPriceCents(v)
	})
}

// UpdateUnitPriceCents sets the "unit_price_cents" field to the value that was provided on create.
func (u *PartUpsertBulk) UpdateUnitPriceCents() *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.UpdateUnitPriceCents()
	})
}

// SetActive sets the "active" field.
func (u *PartUpsertBulk) SetActive(v bool) *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PartUpsertBulk) UpdateActive() *PartUpsertBulk {
	return u.Update(func(s *PartUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *PartUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PartCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PartCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
