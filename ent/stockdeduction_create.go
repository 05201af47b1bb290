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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/stockdeduction"
)

// StockDeductionCreate is the builder for creating a StockDeduction entity.
type StockDeductionCreate struct {
	config
	mutation *StockDeductionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StockDeductionCreate) SetCreatedAt(v time.Time) *StockDeductionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StockDeductionCreate) SetNillableCreatedAt(v *time.Time) *StockDeductionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTicketID sets the "ticket_id" field.
func (_c *StockDeductionCreate) SetTicketID(v string) *StockDeductionCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *StockDeductionCreate) SetCreatedBy(v string) *StockDeductionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetReversedAt sets the "reversed_at" field.
func (_c *StockDeductionCreate) SetReversedAt(v time.Time) *StockDeductionCreate {
	_c.mutation.SetReversedAt(v)
	return _c
}

// SetNillableReversedAt sets the "reversed_at" field if the given value is not nil.
func (_c *StockDeductionCreate) SetNillableReversedAt(v *time.Time) *StockDeductionCreate {
	if v != nil {
		_c.SetReversedAt(*v)
	}
	return _c
}

// SetReversedBy sets the "reversed_by" field.
func (_c *StockDeductionCreate) SetReversedBy(v string) *StockDeductionCreate {
	_c.mutation.SetReversedBy(v)
	return _c
}

// SetNillableReversedBy sets the "reversed_by" field if the given value is not nil.
func (_c *StockDeductionCreate) SetNillableReversedBy(v *string) *StockDeductionCreate {
	if v != nil {
		_c.SetReversedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StockDeductionCreate) SetID(v string) *StockDeductionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StockDeductionMutation object of the builder.
func (_c *StockDeductionCreate) Mutation() *StockDeductionMutation {
	return _c.mutation
}

// Save creates the StockDeduction in the database.
func (_c *StockDeductionCreate) Save(ctx context.Context) (*StockDeduction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StockDeductionCreate) SaveX(ctx context.Context) *StockDeduction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StockDeductionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StockDeductionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StockDeductionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stockdeduction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StockDeductionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StockDeduction.created_at"`)}
	}
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "StockDeduction.ticket_id"`)}
	}
	if v, ok := _c.mutation.TicketID(); ok {
		if err := stockdeduction.TicketIDValidator(v); err != nil {
			return &ValidationError{Name: "ticket_id", err: fmt.Errorf(`ent: validator failed for field "StockDeduction.ticket_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "StockDeduction.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := stockdeduction.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "StockDeduction.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *StockDeductionCreate) sqlSave(ctx context.Context) (*StockDeduction, error) {
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
			return nil, fmt.Errorf("unexpected StockDeduction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StockDeductionCreate) createSpec() (*StockDeduction, *sqlgraph.CreateSpec) {
	var (
		_node = &StockDeduction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stockdeduction.Table, sqlgraph.NewFieldSpec(stockdeduction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stockdeduction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(stockdeduction.FieldTicketID, field.TypeString, value)
		_node.TicketID = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(stockdeduction.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.ReversedAt(); ok {
		_spec.SetField(stockdeduction.FieldReversedAt, field.TypeTime, value)
		_node.ReversedAt = &value
	}
	if value, ok := _c.mutation.ReversedBy(); ok {
		_spec.SetField(stockdeduction.FieldReversedBy, field.TypeString, value)
		_node.ReversedBy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StockDeduction.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StockDeductionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StockDeductionCreate) OnConflict(opts ...sql.ConflictOption) *StockDeductionUpsertOne {
	_c.conflict = opts
	return &StockDeductionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StockDeduction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StockDeductionCreate) OnConflictColumns(columns ...string) *StockDeductionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StockDeductionUpsertOne{
		create: _c,
	}
}

type (
	// StockDeductionUpsertOne is the builder for "upsert"-ing
	//  one StockDeduction node.
	StockDeductionUpsertOne struct {
		create *StockDeductionCreate
	}

	// StockDeductionUpsert is the "OnConflict" setter.
	StockDeductionUpsert struct {
		*sql.UpdateSet
	}
)

// SetReversedAt sets the "reversed_at" field.
func (u *StockDeductionUpsert) SetReversedAt(v time.Time) *StockDeductionUpsert {
	u.Set(stockdeduction.FieldReversedAt, v)
	return u
}

// UpdateReversedAt sets the "reversed_at" field to the value that was provided on create.
func (u *StockDeductionUpsert) UpdateReversedAt() *StockDeductionUpsert {
	u.SetExcluded(stockdeduction.FieldReversedAt)
	return u
}

// ClearReversedAt clears the value of the "reversed_at" field.
func (u *StockDeductionUpsert) ClearReversedAt() *StockDeductionUpsert {
	u.SetNull(stockdeduction.FieldReversedAt)
	return u
}

// SetReversedBy sets the "reversed_by" field.
func (u *StockDeductionUpsert) SetReversedBy(v string) *StockDeductionUpsert {
	u.Set(stockdeduction.FieldReversedBy, v)
	return u
}

// UpdateReversedBy sets the "reversed_by" field to the value that was provided on create.
func (u *StockDeductionUpsert) UpdateReversedBy() *StockDeductionUpsert {
	u.SetExcluded(stockdeduction.FieldReversedBy)
	return u
}

// ClearReversedBy clears the value of the "reversed_by" field.
func (u *StockDeductionUpsert) ClearReversedBy() *StockDeductionUpsert {
	u.SetNull(stockdeduction.FieldReversedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StockDeduction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stockdeduction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StockDeductionUpsertOne) UpdateNewValues() *StockDeductionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stockdeduction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stockdeduction.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(stockdeduction.FieldTicketID)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(stockdeduction.FieldCreatedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StockDeduction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StockDeductionUpsertOne) Ignore() *StockDeductionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StockDeductionUpsertOne) DoNothing() *StockDeductionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StockDeductionCreate.OnConflict
// documentation for more info.
func (u *StockDeductionUpsertOne) Update(set func(*StockDeductionUpsert)) *StockDeductionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StockDeductionUpsert{UpdateSet: update})
	}))
	return u
}

// SetReversedAt sets the "reversed_at" field.
func (u *StockDeductionUpsertOne) SetReversedAt(v time.Time) *StockDeductionUpsertOne {
	return u.Update(func(s *StockDeductionUpsert) {
		s.SetReversedAt(v)
	})
}

// UpdateReversedAt sets the "reversed_at" field to the value that was provided on create.
func (u *StockDeductionUpsertOne) UpdateReversedAt() *StockDeductionUpsertOne {
	return u.Update(func(s *StockDeductionUpsert) {
		s.UpdateReversedAt()
	})
}

// ClearReversedAt clears the value of the "reversed_at" field.
func (u *StockDeductionUpsertOne) ClearReversedAt() *StockDeductionUpsertOne {
	return u.Update(func(s *StockDeductionUpsert) {
		s.ClearReversedAt()
	})
}

// SetReversedBy sets the "reversed_by" field.
func (u *StockDeductionUpsertOne) SetReversedBy(v string) *StockDeductionUpsertOne {
	return u.Update(func(s *StockDeductionUpsert) {
		s.SetReversedBy(v)
	})
}

// UpdateReversedBy sets the "reversed_by" field to the value that was provided on create.
func (u *StockDeductionUpsertOne) UpdateReversedBy() *StockDeductionUpsertOne {
	return u.Update(func(s *StockDeductionUpsert) {
		s.UpdateReversedBy()
	})
}

// ClearReversedBy clears the value of the "reversed_by" field.
func (u *StockDeductionUpsertOne) ClearReversedBy() *StockDeductionUpsertOne {
	return u.Update(func(s *StockDeductionUpsert) {
		s.ClearReversedBy()
	})
}

// Exec executes the query.
func (u *StockDeductionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StockDeductionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StockDeductionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StockDeductionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StockDeductionUpsertOne.ID is not supported by MySQL driver. Use StockDeductionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StockDeductionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StockDeductionCreateBulk is the builder for creating many StockDeduction entities in bulk.
type StockDeductionCreateBulk struct {
	config
	err      error
	builders []*StockDeductionCreate
	conflict []sql.ConflictOption
}

// Save creates the StockDeduction entities in the database.
func (_c *StockDeductionCreateBulk) Save(ctx context.Context) ([]*StockDeduction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StockDeduction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StockDeductionMutation)
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
func (_c *StockDeductionCreateBulk) SaveX(ctx context.Context) []*StockDeduction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StockDeductionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StockDeductionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StockDeduction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StockDeductionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StockDeductionCreateBulk) OnConflict(opts ...sql.ConflictOption) *StockDeductionUpsertBulk {
	_c.conflict = opts
	return &StockDeductionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StockDeduction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StockDeductionCreateBulk) OnConflictColumns(columns ...string) *StockDeductionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StockDeductionUpsertBulk{
		create: _c,
	}
}

// StockDeductionUpsertBulk is the builder for "upsert"-ing
// a bulk of StockDeduction nodes.
type StockDeductionUpsertBulk struct {
	create *StockDeductionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StockDeduction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stockdeduction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StockDeductionUpsertBulk) UpdateNewValues() *StockDeductionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stockdeduction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stockdeduction.FieldCreatedAt)
			}
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(stockdeduction.FieldTicketID)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(stockdeduction.FieldCreatedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StockDeduction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StockDeductionUpsertBulk) Ignore() *StockDeductionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StockDeductionUpsertBulk) DoNothing() *StockDeductionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StockDeductionCreateBulk.OnConflict
// documentation for more info.
func (u *StockDeductionUpsertBulk) Update(set func(*StockDeductionUpsert)) *StockDeductionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StockDeductionUpsert{UpdateSet: update})
	}))
	return u
}

// SetReversedAt sets the "reversed_at" field.
func (u *StockDeductionUpsertBulk) SetReversedAt(v time.Time) *StockDeductionUpsertBulk {
	return u.Update(func(s *StockDeductionUpsert) {
		s.SetReversedAt(v)
	})
}

// UpdateReversedAt sets the "reversed_at" field to the value that was provided on create.
func (u *StockDeductionUpsertBulk) UpdateReversedAt() *StockDeductionUpsertBulk {
	return u.Update(func(s *StockDeductionUpsert) {
		s.UpdateReversedAt()
	})
}

// ClearReversedAt clears the value of the "reversed_at" field.
func (u *StockDeductionUpsertBulk) ClearReversedAt() *StockDeductionUpsertBulk {
	return u.Update(func(s *StockDeductionUpsert) {
		s.ClearReversedAt()
	})
}

// SetReversedBy sets the "reversed_by" field.
func (u *StockDeductionUpsertBulk) SetReversedBy(v string) *StockDeductionUpsertBulk {
	return u.Update(func(s *StockDeductionUpsert) {
		s.SetReversedBy(v)
	})
}

// UpdateReversedBy sets the "reversed_by" field to the value that was provided on create.
func (u *StockDeductionUpsertBulk) UpdateReversedBy() *StockDeductionUpsertBulk {
	return u.Update(func(s *StockDeductionUpsert) {
		s.UpdateReversedBy()
	})
}

// ClearReversedBy clears the value of the "reversed_by" field.
func (u *StockDeductionUpsertBulk) ClearReversedBy() *StockDeductionUpsertBulk {
	return u.Update(func(s *StockDeductionUpsert) {
		s.ClearReversedBy()
	})
}

// Exec executes the query.
func (u *StockDeductionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StockDeductionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StockDeductionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StockDeductionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
