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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/partusage"
)

// PartUsageCreate is the builder for creating a PartUsage entity.
type PartUsageCreate struct {
	config
	mutation *PartUsageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PartUsageCreate) SetCreatedAt(v time.Time) *PartUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PartUsageCreate) SetNillableCreatedAt(v *time.Time) *PartUsageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PartUsageCreate) SetUpdatedAt(v time.Time) *PartUsageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PartUsageCreate) SetNillableUpdatedAt(v *time.Time) *PartUsageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRepairRecordID sets the "repair_record_id" field.
func (_c *PartUsageCreate) SetRepairRecordID(v string) *PartUsageCreate {
	_c.mutation.SetRepairRecordID(v)
	return _c
}

// SetPartID sets the "part_id" field.
func (_c *PartUsageCreate) SetPartID(v string) *PartUsageCreate {
	_c.mutation.SetPartID(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *PartUsageCreate) SetQuantity(v int) *PartUsageCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetSourceDescription sets the "source_description" field.
func (_c *PartUsageCreate) SetSourceDescription(v string) *PartUsageCreate {
	_c.mutation.SetSourceDescription(v)
	return _c
}

// SetNillableSourceDescription sets the "source_description" field if the given value is not nil.
func (_c *PartUsageCreate) SetNillableSourceDescription(v *string) *PartUsageCreate {
	if v != nil {
		_c.SetSourceDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PartUsageCreate) SetID(v string) *PartUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PartUsageMutation object of the builder.
func (_c *PartUsageCreate) Mutation() *PartUsageMutation {
	return _c.mutation
}

// Save creates the PartUsage in the database.
func (_c *PartUsageCreate) Save(ctx context.Context) (*PartUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PartUsageCreate) SaveX(ctx context.Context) *PartUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PartUsageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := partusage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := partusage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PartUsageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PartUsage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PartUsage.updated_at"`)}
	}
	if _, ok := _c.mutation.RepairRecordID(); !ok {
		return &ValidationError{Name: "repair_record_id", err: errors.New(`ent: missing required field "PartUsage.repair_record_id"`)}
	}
	if v, ok := _c.mutation.RepairRecordID(); ok {
		if err := partusage.RepairRecordIDValidator(v); err != nil {
			return &ValidationError{Name: "repair_record_id", err: fmt.Errorf(`ent: validator failed for field "PartUsage.repair_record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PartID(); !ok {
		return &ValidationError{Name: "part_id", err: errors.New(`ent: missing required field "PartUsage.part_id"`)}
	}
	if v, ok := _c.mutation.PartID(); ok {
		if err := partusage.PartIDValidator(v); err != nil {
			return &ValidationError{Name: "part_id", err: fmt.Errorf(`ent: validator failed for field "PartUsage.part_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "PartUsage.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := partusage.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "PartUsage.quantity": %w`, err)}
		}
	}
	return nil
}

func (_c *PartUsageCreate) sqlSave(ctx context.Context) (*PartUsage, error) {
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
			return nil, fmt.Errorf("unexpected PartUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PartUsageCreate) createSpec() (*PartUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &PartUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(partusage.Table, sqlgraph.NewFieldSpec(partusage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(partusage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(partusage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RepairRecordID(); ok {
		_spec.SetField(partusage.FieldRepairRecordID, field.TypeString, value)
		_node.RepairRecordID = value
	}
	if value, ok := _c.mutation.PartID(); ok {
		_spec.SetField(partusage.FieldPartID, field.TypeString, value)
		_node.PartID = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(partusage.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.SourceDescription(); ok {
		_spec.SetField(partusage.FieldSourceDescription, field.TypeString, value)
		_node.SourceDescription = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PartUsage.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartUsageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartUsageCreate) OnConflict(opts ...sql.ConflictOption) *PartUsageUpsertOne {
	_c.conflict = opts
	return &PartUsageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PartUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartUsageCreate) OnConflictColumns(columns ...string) *PartUsageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartUsageUpsertOne{
		create: _c,
	}
}

type (
	// PartUsageUpsertOne is the builder for "upsert"-ing
	//  one PartUsage node.
	PartUsageUpsertOne struct {
		create *PartUsageCreate
	}

	// PartUsageUpsert is the "OnConflict" setter.
	PartUsageUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PartUsageUpsert) SetUpdatedAt(v time.Time) *PartUsageUpsert {
	u.Set(partusage.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartUsageUpsert) UpdateUpdatedAt() *PartUsageUpsert {
	u.SetExcluded(partusage.FieldUpdatedAt)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *PartUsageUpsert) SetQuantity(v int) *PartUsageUpsert {
	u.Set(partusage.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *PartUsageUpsert) UpdateQuantity() *PartUsageUpsert {
	u.SetExcluded(partusage.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *PartUsageUpsert) AddQuantity(v int) *PartUsageUpsert {
	u.Add(partusage.FieldQuantity, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PartUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(partusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartUsageUpsertOne) UpdateNewValues() *PartUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(partusage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(partusage.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.RepairRecordID(); exists {
			s.SetIgnore(partusage.FieldRepairRecordID)
		}
		if _, exists := u.create.mutation.PartID(); exists {
			s.SetIgnore(partusage.FieldPartID)
		}
		if _, exists := u.create.mutation.SourceDescription(); exists {
			s.SetIgnore(partusage.FieldSourceDescription)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PartUsage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PartUsageUpsertOne) Ignore() *PartUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartUsageUpsertOne) DoNothing() *PartUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartUsageCreate.OnConflict
// documentation for more info.
func (u *PartUsageUpsertOne) Update(set func(*PartUsageUpsert)) *PartUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PartUsageUpsertOne) SetUpdatedAt(v time.Time) *PartUsageUpsertOne {
	return u.Update(func(s *PartUsageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartUsageUpsertOne) UpdateUpdatedAt() *PartUsageUpsertOne {
	return u.Update(func(s *PartUsageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetQuantity sets the "quantity" field.
func (u *PartUsageUpsertOne) SetQuantity(v int) *PartUsageUpsertOne {
	return u.Update(func(s *PartUsageUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *PartUsageUpsertOne) AddQuantity(v int) *PartUsageUpsertOne {
	return u.Update(func(s *PartUsageUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *PartUsageUpsertOne) UpdateQuantity() *PartUsageUpsertOne {
	return u.Update(func(s *PartUsageUpsert) {
		s.UpdateQuantity()
	})
}

// Exec executes the query.
func (u *PartUsageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PartUsageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartUsageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PartUsageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PartUsageUpsertOne.ID is not supported by MySQL driver. Use PartUsageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PartUsageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PartUsageCreateBulk is the builder for creating many PartUsage entities in bulk.
type PartUsageCreateBulk struct {
	config
	err      error
	builders []*PartUsageCreate
	conflict []sql.ConflictOption
}

// Save creates the PartUsage entities in the database.
func (_c *PartUsageCreateBulk) Save(ctx context.Context) ([]*PartUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PartUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PartUsageMutation)
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
func (_c *PartUsageCreateBulk) SaveX(ctx context.Context) []*PartUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PartUsage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartUsageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartUsageCreateBulk) OnConflict(opts ...sql.ConflictOption) *PartUsageUpsertBulk {
	_c.conflict = opts
	return &PartUsageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PartUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartUsageCreateBulk) OnConflictColumns(columns ...string) *PartUsageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartUsageUpsertBulk{
		create: _c,
	}
}

// PartUsageUpsertBulk is the builder for "upsert"-ing
// a bulk of PartUsage nodes.
type PartUsageUpsertBulk struct {
	create *PartUsageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PartUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(partusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartUsageUpsertBulk) UpdateNewValues() *PartUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(partusage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(partusage.FieldCreatedAt)
			}
			if _, exists := b.mutation.RepairRecordID(); exists {
				s.SetIgnore(partusage.FieldRepairRecordID)
			}
			if _, exists := b.mutation.PartID(); exists {
				s.SetIgnore(partusage.FieldPartID)
			}
			if _, exists := b.mutation.SourceDescription(); exists {
				s.SetIgnore(partusage.FieldSourceDescription)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PartUsage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PartUsageUpsertBulk) Ignore() *PartUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartUsageUpsertBulk) DoNothing() *PartUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartUsageCreateBulk.OnConflict
// documentation for more info.
func (u *PartUsageUpsertBulk) Update(set func(*PartUsageUpsert)) *PartUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PartUsageUpsertBulk) SetUpdatedAt(v time.Time) *PartUsageUpsertBulk {
	return u.Update(func(s *PartUsageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartUsageUpsertBulk) UpdateUpdatedAt() *PartUsageUpsertBulk {
	return u.Update(func(s *PartUsageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetQuantity sets the "quantity" field.
func (u *PartUsageUpsertBulk) SetQuantity(v int) *PartUsageUpsertBulk {
	return u.Update(func(s *PartUsageUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *PartUsageUpsertBulk) AddQuantity(v int) *PartUsageUpsertBulk {
	return u.Update(func(s *PartUsageUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *PartUsageUpsertBulk) UpdateQuantity() *PartUsageUpsertBulk {
	return u.Update(func(s *PartUsageUpsert) {
		s.UpdateQuantity()
	})
}

// Exec executes the query.
func (u *PartUsageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PartUsageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PartUsageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartUsageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
