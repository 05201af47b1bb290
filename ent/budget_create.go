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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/budget"
)

// BudgetCreate is the builder for creating a Budget entity.
type BudgetCreate struct {
	config
	mutation *BudgetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BudgetCreate) SetCreatedAt(v time.Time) *BudgetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableCreatedAt(v *time.Time) *BudgetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BudgetCreate) SetUpdatedAt(v time.Time) *BudgetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableUpdatedAt(v *time.Time) *BudgetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTicketID sets the "ticket_id" field.
func (_c *BudgetCreate) SetTicketID(v string) *BudgetCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetApproved sets the "approved" field.
func (_c *BudgetCreate) SetApproved(v bool) *BudgetCreate {
	_c.mutation.SetApproved(v)
	return _c
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableApproved(v *bool) *BudgetCreate {
	if v != nil {
		_c.SetApproved(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *BudgetCreate) SetApprovedBy(v string) *BudgetCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableApprovedBy(v *string) *BudgetCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *BudgetCreate) SetApprovedAt(v time.Time) *BudgetCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableApprovedAt(v *time.Time) *BudgetCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BudgetCreate) SetID(v string) *BudgetCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BudgetMutation object of the builder.
func (_c *BudgetCreate) Mutation() *BudgetMutation {
	return _c.mutation
}

// Save creates the Budget in the database.
func (_c *BudgetCreate) Save(ctx context.Context) (*Budget, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetCreate) SaveX(ctx context.Context) *Budget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := budget.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := budget.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Approved(); !ok {
		v := budget.DefaultApproved
		_c.mutation.SetApproved(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Budget.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Budget.updated_at"`)}
	}
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "Budget.ticket_id"`)}
	}
	if v, ok := _c.mutation.TicketID(); ok {
		if err := budget.TicketIDValidator(v); err != nil {
			return &ValidationError{Name: "ticket_id", err: fmt.Errorf(`ent: validator failed for field "Budget.ticket_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Approved(); !ok {
		return &ValidationError{Name: "approved", err: errors.New(`ent: missing required field "Budget.approved"`)}
	}
	return nil
}

func (_c *BudgetCreate) sqlSave(ctx context.Context) (*Budget, error) {
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
			return nil, fmt.Errorf("unexpected Budget.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BudgetCreate) createSpec() (*Budget, *sqlgraph.CreateSpec) {
	var (
		_node = &Budget{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budget.Table, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(budget.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(budget.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(budget.FieldTicketID, field.TypeString, value)
		_node.TicketID = value
	}
	if value, ok := _c.mutation.Approved(); ok {
		_spec.SetField(budget.FieldApproved, field.TypeBool, value)
		_node.Approved = value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(budget.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(budget.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Budget.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BudgetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BudgetCreate) OnConflict(opts ...sql.ConflictOption) *BudgetUpsertOne {
	_c.conflict = opts
	return &BudgetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BudgetCreate) OnConflictColumns(columns ...string) *BudgetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BudgetUpsertOne{
		create: _c,
	}
}

type (
	// BudgetUpsertOne is the builder for "upsert"-ing
	//  one Budget node.
	BudgetUpsertOne struct {
		create *BudgetCreate
	}

	// BudgetUpsert is the "OnConflict" setter.
	BudgetUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetUpsert) SetUpdatedAt(v time.Time) *BudgetUpsert {
	u.Set(budget.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateUpdatedAt() *BudgetUpsert {
	u.SetExcluded(budget.FieldUpdatedAt)
	return u
}

// SetApproved sets the "approved" field.
func (u *BudgetUpsert) SetApproved(v bool) *BudgetUpsert {
	u.Set(budget.FieldApproved, v)
	return u
}

// UpdateApproved sets the "approved" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateApproved() *BudgetUpsert {
	u.SetExcluded(budget.FieldApproved)
	return u
}

// SetApprovedBy sets the "approved_by" field.
func (u *BudgetUpsert) SetApprovedBy(v string) *BudgetUpsert {
	u.Set(budget.FieldApprovedBy, v)
	return u
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateApprovedBy() *BudgetUpsert {
	u.SetExcluded(budget.FieldApprovedBy)
	return u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *BudgetUpsert) ClearApprovedBy() *BudgetUpsert {
	u.SetNull(budget.FieldApprovedBy)
	return u
}

// SetApprovedAt sets the "approved_at" field.
func (u *BudgetUpsert) SetApprovedAt(v time.Time) *BudgetUpsert {
	u.Set(budget.FieldApprovedAt, v)
	return u
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateApprovedAt() *BudgetUpsert {
	u.SetExcluded(budget.FieldApprovedAt)
	return u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *BudgetUpsert) ClearApprovedAt() *BudgetUpsert {
	u.SetNull(budget.FieldApprovedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(budget.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BudgetUpsertOne) UpdateNewValues() *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(budget.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(budget.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(budget.FieldTicketID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Budget.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BudgetUpsertOne) Ignore() *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BudgetUpsertOne) DoNothing() *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BudgetCreate.OnConflict
// documentation for more info.
func (u *BudgetUpsertOne) Update(set func(*BudgetUpsert)) *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BudgetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetUpsertOne) SetUpdatedAt(v time.Time) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateUpdatedAt() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetApproved sets the "approved" field.
func (u *BudgetUpsertOne) SetApproved(v bool) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetApproved(v)
	})
}

// UpdateApproved sets the "approved" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateApproved() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateApproved()
	})
}

// SetApprovedBy sets the "approved_by" field.
func (u *BudgetUpsertOne) SetApprovedBy(v string) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetApprovedBy(v)
	})
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateApprovedBy() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateApprovedBy()
	})
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *BudgetUpsertOne) ClearApprovedBy() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.ClearApprovedBy()
	})
}

// SetApprovedAt sets the "approved_at" field.
func (u *BudgetUpsertOne) SetApprovedAt(v time.Time) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetApprovedAt(v)
	})
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateApprovedAt() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateApprovedAt()
	})
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *BudgetUpsertOne) ClearApprovedAt() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.ClearApprovedAt()
	})
}

// Exec executes the query.
func (u *BudgetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BudgetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BudgetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BudgetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BudgetUpsertOne.ID is not supported by MySQL driver. Use BudgetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BudgetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BudgetCreateBulk is the builder for creating many Budget entities in bulk.
type BudgetCreateBulk struct {
	config
	err      error
	builders []*BudgetCreate
	conflict []sql.ConflictOption
}

// Save creates the Budget entities in the database.
func (_c *BudgetCreateBulk) Save(ctx context.Context) ([]*Budget, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Budget, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetMutation)
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
func (_c *BudgetCreateBulk) SaveX(ctx context.Context) []*Budget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Budget.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BudgetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BudgetCreateBulk) OnConflict(opts ...sql.ConflictOption) *BudgetUpsertBulk {
	_c.conflict = opts
	return &BudgetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BudgetCreateBulk) OnConflictColumns(columns ...string) *BudgetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BudgetUpsertBulk{
		create: _c,
	}
}

// BudgetUpsertBulk is the builder for "upsert"-ing
// a bulk of Budget nodes.
type BudgetUpsertBulk struct {
	create *BudgetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(budget.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BudgetUpsertBulk) UpdateNewValues() *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(budget.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(budget.FieldCreatedAt)
			}
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(budget.FieldTicketID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BudgetUpsertBulk) Ignore() *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BudgetUpsertBulk) DoNothing() *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BudgetCreateBulk.OnConflict
// documentation for more info.
func (u *BudgetUpsertBulk) Update(set func(*BudgetUpsert)) *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BudgetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetUpsertBulk) SetUpdatedAt(v time.Time) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateUpdatedAt() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetApproved sets the "approved" field.
func (u *BudgetUpsertBulk) SetApproved(v bool) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetApproved(v)
	})
}

// UpdateApproved sets the "approved" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateApproved() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateApproved()
	})
}

// SetApprovedBy sets the "approved_by" field.
func (u *BudgetUpsertBulk) SetApprovedBy(v string) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetApprovedBy(v)
	})
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateApprovedBy() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateApprovedBy()
	})
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *BudgetUpsertBulk) ClearApprovedBy() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.ClearApprovedBy()
	})
}

// SetApprovedAt sets the "approved_at" field.
func (u *BudgetUpsertBulk) SetApprovedAt(v time.Time) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetApprovedAt(v)
	})
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateApprovedAt() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateApprovedAt()
	})
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *BudgetUpsertBulk) ClearApprovedAt() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.ClearApprovedAt()
	})
}

// Exec executes the query.
func (u *BudgetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BudgetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BudgetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BudgetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
