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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/budgetitem"
)

// BudgetItemCreate is the builder for creating a BudgetItem entity.
type BudgetItemCreate struct {
	config
	mutation *BudgetItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BudgetItemCreate) SetCreatedAt(v time.Time) *BudgetItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BudgetItemCreate) SetNillableCreatedAt(v *time.Time) *BudgetItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BudgetItemCreate) SetUpdatedAt(v time.Time) *BudgetItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BudgetItemCreate) SetNillableUpdatedAt(v *time.Time) *BudgetItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBudgetID sets the "budget_id" field.
func (_c *BudgetItemCreate) SetBudgetID(v string) *BudgetItemCreate {
	_c.mutation.SetBudgetID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *BudgetItemCreate) SetDescription(v string) *BudgetItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *BudgetItemCreate) SetQuantity(v int) *BudgetItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (_c *BudgetItemCreate) SetUnitPriceCents(v int64) *BudgetItemCreate {
	_c.mutation.SetUnitPriceCents(v)
	return _c
}

// SetExtraConcept sets the "extra_concept" field.
func (_c *BudgetItemCreate) SetExtraConcept(v string) *BudgetItemCreate {
	_c.mutation.SetExtraConcept(v)
	return _c
}

// SetNillableExtraConcept sets the "extra_concept" field if the given value is not nil.
func (_c *BudgetItemCreate) SetNillableExtraConcept(v *string) *BudgetItemCreate {
	if v != nil {
		_c.SetExtraConcept(*v)
	}
	return _c
}

// SetExtraPriceCents sets the "extra_price_cents" field.
func (_c *BudgetItemCreate) SetExtraPriceCents(v int64) *BudgetItemCreate {
	_c.mutation.SetExtraPriceCents(v)
	return _c
}

// SetNillableExtraPriceCents sets the "extra_price_cents" field if the given value is not nil.
func (_c *BudgetItemCreate) SetNillableExtraPriceCents(v *int64) *BudgetItemCreate {
	if v != nil {
		_c.SetExtraPriceCents(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BudgetItemCreate) SetID(v string) *BudgetItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BudgetItemMutation object of the builder.
func (_c *BudgetItemCreate) Mutation() *BudgetItemMutation {
	return _c.mutation
}

// Save creates the BudgetItem in the database.
func (_c *BudgetItemCreate) Save(ctx context.Context) (*BudgetItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetItemCreate) SaveX(ctx context.Context) *BudgetItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := budgetitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := budgetitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ExtraPriceCents(); !ok {
		v := budgetitem.DefaultExtraPriceCents
		_c.mutation.SetExtraPriceCents(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BudgetItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BudgetItem.updated_at"`)}
	}
	if _, ok := _c.mutation.BudgetID(); !ok {
		return &ValidationError{Name: "budget_id", err: errors.New(`ent: missing required field "BudgetItem.budget_id"`)}
	}
	if v, ok := _c.mutation.BudgetID(); ok {
		if err := budgetitem.BudgetIDValidator(v); err != nil {
			return &ValidationError{Name: "budget_id", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.budget_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "BudgetItem.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := budgetitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "BudgetItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := budgetitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPriceCents(); !ok {
		return &ValidationError{Name: "unit_price_cents", err: errors.New(`ent: missing required field "BudgetItem.unit_price_cents"`)}
	}
	if v, ok := _c.mutation.UnitPriceCents(); ok {
		if err := budgetitem.UnitPriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "unit_price_cents", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.unit_price_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtraPriceCents(); !ok {
		return &ValidationError{Name: "extra_price_cents", err: errors.New(`ent: missing required field "BudgetItem.extra_price_cents"`)}
	}
	if v, ok := _c.mutation.ExtraPriceCents(); ok {
		if err := budgetitem.ExtraPriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "extra_price_cents", err: fmt.Errorf(`ent: validator failed for field "BudgetItem.extra_price_cents": %w`, err)}
		}
	}
	return nil
}

func (_c *BudgetItemCreate) sqlSave(ctx context.Context) (*BudgetItem, error) {
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
			return nil, fmt.Errorf("unexpected BudgetItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BudgetItemCreate) createSpec() (*BudgetItem, *sqlgraph.CreateSpec) {
	var (
		_node = &BudgetItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budgetitem.Table, sqlgraph.NewFieldSpec(budgetitem.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(budgetitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.BudgetID(); ok {
		_spec.SetField(budgetitem.FieldBudgetID, field.TypeString, value)
		_node.BudgetID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(budgetitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(budgetitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPriceCents(); ok {
		_spec.SetField(budgetitem.FieldUnitPriceCents, field.TypeInt64, value)
		_node.UnitPriceCents = value
	}
	if value, ok := _c.mutation.ExtraConcept(); ok {
		_spec.SetField(budgetitem.FieldExtraConcept, field.TypeString, value)
		_node.ExtraConcept = value
	}
	if value, ok := _c.mutation.ExtraPriceCents(); ok {
		_spec.SetField(budgetitem.FieldExtraPriceCents, field.TypeInt64, value)
		_node.ExtraPriceCents = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BudgetItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BudgetItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BudgetItemCreate) OnConflict(opts ...sql.ConflictOption) *BudgetItemUpsertOne {
	_c.conflict = opts
	return &BudgetItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BudgetItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BudgetItemCreate) OnConflictColumns(columns ...string) *BudgetItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BudgetItemUpsertOne{
		create: _c,
	}
}

type (
	// BudgetItemUpsertOne is the builder for "upsert"-ing
	//  one BudgetItem node.
	BudgetItemUpsertOne struct {
		create *BudgetItemCreate
	}

	// BudgetItemUpsert is the "OnConflict" setter.
	BudgetItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetItemUpsert) SetUpdatedAt(v time.Time) *BudgetItemUpsert {
	u.Set(budgetitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetItemUpsert) UpdateUpdatedAt() *BudgetItemUpsert {
	u.SetExcluded(budgetitem.FieldUpdatedAt)
	return u
}

// SetDescription sets the "description" field.
func (u *BudgetItemUpsert) SetDescription(v string) *BudgetItemUpsert {
	u.Set(budgetitem.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BudgetItemUpsert) UpdateDescription() *BudgetItemUpsert {
	u.SetExcluded(budgetitem.FieldDescription)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *BudgetItemUpsert) SetQuantity(v int) *BudgetItemUpsert {
	u.Set(budgetitem.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *BudgetItemUpsert) UpdateQuantity() *BudgetItemUpsert {
	u.SetExcluded(budgetitem.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *BudgetItemUpsert) AddQuantity(v int) *BudgetItemUpsert {
	u.Add(budgetitem.FieldQuantity, v)
	return u
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (u *BudgetItemUpsert) SetUnitPriceCents(v int64) *BudgetItemUpsert {
	u.Set(budgetitem.FieldUnitPriceCents, v)
	return u
}

// UpdateUnitPriceCents sets the "unit_price_cents" field to the value that was provided on create.
func (u *BudgetItemUpsert) UpdateUnitPriceCents() *BudgetItemUpsert {
	u.SetExcluded(budgetitem.FieldUnitPriceCents)
	return u
}

// AddUnitPriceCents adds v to the "unit_price_cents" field.
func (u *BudgetItemUpsert) AddUnitPriceCents(v int64) *BudgetItemUpsert {
	u.Add(budgetitem.FieldUnitPriceCents, v)
	return u
}

// SetExtraConcept sets the "extra_concept" field.
func (u *BudgetItemUpsert) SetExtraConcept(v string) *BudgetItemUpsert {
	u.Set(budgetitem.FieldExtraConcept, v)
	return u
}

// UpdateExtraConcept sets the "extra_concept" field to the value that was provided on create.
func (u *BudgetItemUpsert) UpdateExtraConcept() *BudgetItemUpsert {
	u.SetExcluded(budgetitem.FieldExtraConcept)
	return u
}

// ClearExtraConcept clears the value of the "extra_concept" field.
func (u *BudgetItemUpsert) ClearExtraConcept() *BudgetItemUpsert {
	u.SetNull(budgetitem.FieldExtraConcept)
	return u
}

// SetExtraPriceCents sets the "extra_price_cents" field.
func (u *BudgetItemUpsert) SetExtraPriceCents(v int64) *BudgetItemUpsert {
	u.Set(budgetitem.FieldExtraPriceCents, v)
	return u
}

// UpdateExtraPriceCents sets the "extra_price_cents" field to the value that was provided on create.
func (u *BudgetItemUpsert) UpdateExtraPriceCents() *BudgetItemUpsert {
	u.SetExcluded(budgetitem.FieldExtraPriceCents)
	return u
}

// AddExtraPriceCents adds v to the "extra_price_cents" field.
func (u *BudgetItemUpsert) AddExtraPriceCents(v int64) *BudgetItemUpsert {
	u.Add(budgetitem.FieldExtraPriceCents, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BudgetItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(budgetitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BudgetItemUpsertOne) UpdateNewValues() *BudgetItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(budgetitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(budgetitem.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.BudgetID(); exists {
			s.SetIgnore(budgetitem.FieldBudgetID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BudgetItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BudgetItemUpsertOne) Ignore() *BudgetItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BudgetItemUpsertOne) DoNothing() *BudgetItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BudgetItemCreate.OnConflict
// documentation for more info.
func (u *BudgetItemUpsertOne) Update(set func(*BudgetItemUpsert)) *BudgetItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BudgetItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetItemUpsertOne) SetUpdatedAt(v time.Time) *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetItemUpsertOne) UpdateUpdatedAt() *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDescription sets the "description" field.
func (u *BudgetItemUpsertOne) SetDescription(v string) *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BudgetItemUpsertOne) UpdateDescription() *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateDescription()
	})
}

// SetQuantity sets the "quantity" field.
func (u *BudgetItemUpsertOne) SetQuantity(v int) *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *BudgetItemUpsertOne) AddQuantity(v int) *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *BudgetItemUpsertOne) UpdateQuantity() *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (u *BudgetItemUpsertOne) SetUnitPriceCents(v int64) *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetUnitPriceCents(v)
	})
}

// AddUnitPriceCents adds v to the "unit_price_cents" field.
func (u *BudgetItemUpsertOne) AddUnitPriceCents(v int64) *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.AddUnitPriceCents(v)
	})
}

// UpdateUnitPriceCents sets the "unit_price_cents" field to the value that was provided on create.
func (u *BudgetItemUpsertOne) UpdateUnitPriceCents() *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateUnitPriceCents()
	})
}

// SetExtraConcept sets the "extra_concept" field.
func (u *BudgetItemUpsertOne) SetExtraConcept(v string) *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetExtraConcept(v)
	})
}

// UpdateExtraConcept sets the "extra_concept" field to the value that was provided on create.
func (u *BudgetItemUpsertOne) UpdateExtraConcept() *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateExtraConcept()
	})
}

// ClearExtraConcept clears the value of the "extra_concept" field.
func (u *BudgetItemUpsertOne) ClearExtraConcept() *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.ClearExtraConcept()
	})
}

// SetExtraPriceCents sets the "extra_price_cents" field.
func (u *BudgetItemUpsertOne) SetExtraPriceCents(v int64) *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetExtraPriceCents(v)
	})
}

// AddExtraPriceCents adds v to the "extra_price_cents" field.
func (u *BudgetItemUpsertOne) AddExtraPriceCents(v int64) *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.AddExtraPriceCents(v)
	})
}

// UpdateExtraPriceCents sets the "extra_price_cents" field to the value that was provided on create.
func (u *BudgetItemUpsertOne) UpdateExtraPriceCents() *BudgetItemUpsertOne {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateExtraPriceCents()
	})
}

// Exec executes the query.
func (u *BudgetItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BudgetItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BudgetItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BudgetItemUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BudgetItemUpsertOne.ID is not supported by MySQL driver. Use BudgetItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BudgetItemUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BudgetItemCreateBulk is the builder for creating many BudgetItem entities in bulk.
type BudgetItemCreateBulk struct {
	config
	err      error
	builders []*BudgetItemCreate
	conflict []sql.ConflictOption
}

// Save creates the BudgetItem entities in the database.
func (_c *BudgetItemCreateBulk) Save(ctx context.Context) ([]*BudgetItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BudgetItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetItemMutation)
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
func (_c *BudgetItemCreateBulk) SaveX(ctx context.Context) []*BudgetItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BudgetItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BudgetItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BudgetItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *BudgetItemUpsertBulk {
	_c.conflict = opts
	return &BudgetItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BudgetItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BudgetItemCreateBulk) OnConflictColumns(columns ...string) *BudgetItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BudgetItemUpsertBulk{
		create: _c,
	}
}

// BudgetItemUpsertBulk is the builder for "upsert"-ing
// a bulk of BudgetItem nodes.
type BudgetItemUpsertBulk struct {
	create *BudgetItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BudgetItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(budgetitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BudgetItemUpsertBulk) UpdateNewValues() *BudgetItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(budgetitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(budgetitem.FieldCreatedAt)
			}
			if _, exists := b.mutation.BudgetID(); exists {
				s.SetIgnore(budgetitem.FieldBudgetID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BudgetItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BudgetItemUpsertBulk) Ignore() *BudgetItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BudgetItemUpsertBulk) DoNothing() *BudgetItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BudgetItemCreateBulk.OnConflict
// documentation for more info.
func (u *BudgetItemUpsertBulk) Update(set func(*BudgetItemUpsert)) *BudgetItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BudgetItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetItemUpsertBulk) SetUpdatedAt(v time.Time) *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetItemUpsertBulk) UpdateUpdatedAt() *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDescription sets the "description" field.
func (u *BudgetItemUpsertBulk) SetDescription(v string) *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BudgetItemUpsertBulk) UpdateDescription() *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateDescription()
	})
}

// SetQuantity sets the "quantity" field.
func (u *BudgetItemUpsertBulk) SetQuantity(v int) *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *BudgetItemUpsertBulk) AddQuantity(v int) *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *BudgetItemUpsertBulk) UpdateQuantity() *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (u *BudgetItemUpsertBulk) SetUnitPriceCents(v int64) *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetUnitPriceCents(v)
	})
}

// AddUnitPriceCents adds v to the "unit_price_cents" field.
func (u *BudgetItemUpsertBulk) AddUnitPriceCents(v int64) *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.AddUnitPriceCents(v)
	})
}

// UpdateUnitPriceCents sets the "unit_price_cents" field to the value that was provided on create.
func (u *BudgetItemUpsertBulk) UpdateUnitPriceCents() *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateUnitPriceCents()
	})
}

// SetExtraConcept sets the "extra_concept" field.
func (u *BudgetItemUpsertBulk) SetExtraConcept(v string) *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetExtraConcept(v)
	})
}

// UpdateExtraConcept sets the "extra_concept" field to the value that was provided on create.
func (u *BudgetItemUpsertBulk) UpdateExtraConcept() *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateExtraConcept()
	})
}

// ClearExtraConcept clears the value of the "extra_concept" field.
func (u *BudgetItemUpsertBulk) ClearExtraConcept() *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.ClearExtraConcept()
	})
}

// SetExtraPriceCents sets the "extra_price_cents" field.
func (u *BudgetItemUpsertBulk) SetExtraPriceCents(v int64) *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.SetExtraPriceCents(v)
	})
}

// AddExtraPriceCents adds v to the "extra_price_cents" field.
func (u *BudgetItemUpsertBulk) AddExtraPriceCents(v int64) *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.AddExtraPriceCents(v)
	})
}

// UpdateExtraPriceCents sets the "extra_price_cents" field to the value that was provided on create.
func (u *BudgetItemUpsertBulk) UpdateExtraPriceCents() *BudgetItemUpsertBulk {
	return u.Update(func(s *BudgetItemUpsert) {
		s.UpdateExtraPriceCents()
	})
}

// Exec executes the query.
func (u *BudgetItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BudgetItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BudgetItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BudgetItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
