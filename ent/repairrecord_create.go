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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/repairrecord"
)

// RepairRecordCreate is the builder for creating a RepairRecord entity.
type RepairRecordCreate struct {
	config
	mutation *RepairRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RepairRecordCreate) SetCreatedAt(v time.Time) *RepairRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RepairRecordCreate) SetNillableCreatedAt(v *time.Time) *RepairRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RepairRecordCreate) SetUpdatedAt(v time.Time) *RepairRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RepairRecordCreate) SetNillableUpdatedAt(v *time.Time) *RepairRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTicketID sets the "ticket_id" field.
func (_c *RepairRecordCreate) SetTicketID(v string) *RepairRecordCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *RepairRecordCreate) SetDiagnosis(v string) *RepairRecordCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_c *RepairRecordCreate) SetNillableDiagnosis(v *string) *RepairRecordCreate {
	if v != nil {
		_c.SetDiagnosis(*v)
	}
	return _c
}

// SetObservations sets the "observations" field.
func (_c *RepairRecordCreate) SetObservations(v string) *RepairRecordCreate {
	_c.mutation.SetObservations(v)
	return _c
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_c *RepairRecordCreate) SetNillableObservations(v *string) *RepairRecordCreate {
	if v != nil {
		_c.SetObservations(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RepairRecordCreate) SetStartedAt(v time.Time) *RepairRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RepairRecordCreate) SetNillableStartedAt(v *time.Time) *RepairRecordCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *RepairRecordCreate) SetFinishedAt(v time.Time) *RepairRecordCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *RepairRecordCreate) SetNillableFinishedAt(v *time.Time) *RepairRecordCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RepairRecordCreate) SetID(v string) *RepairRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RepairRecordMutation object of the builder.
func (_c *RepairRecordCreate) Mutation() *RepairRecordMutation {
	return _c.mutation
}

// Save creates the RepairRecord in the database.
func (_c *RepairRecordCreate) Save(ctx context.Context) (*RepairRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RepairRecordCreate) SaveX(ctx context.Context) *RepairRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepairRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepairRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RepairRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := repairrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := repairrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RepairRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RepairRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RepairRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "RepairRecord.ticket_id"`)}
	}
	if v, ok := _c.mutation.TicketID(); ok {
		if err := repairrecord.TicketIDValidator(v); err != nil {
			return &ValidationError{Name: "ticket_id", err: fmt.Errorf(`ent: validator failed for field "RepairRecord.ticket_id": %w`, err)}
		}
	}
	return nil
}

func (_c *RepairRecordCreate) sqlSave(ctx context.Context) (*RepairRecord, error) {
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
			return nil, fmt.Errorf("unexpected RepairRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RepairRecordCreate) createSpec() (*RepairRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &RepairRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(repairrecord.Table, sqlgraph.NewFieldSpec(repairrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(repairrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(repairrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(repairrecord.FieldTicketID, field.TypeString, value)
		_node.TicketID = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(repairrecord.FieldDiagnosis, field.TypeString, value)
		_node.Diagnosis = value
	}
	if value, ok := _c.mutation.Observations(); ok {
		_spec.SetField(repairrecord.FieldObservations, field.TypeString, value)
		_node.Observations = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(repairrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(repairrecord.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RepairRecord.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RepairRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RepairRecordCreate) OnConflict(opts ...sql.ConflictOption) *RepairRecordUpsertOne {
	_c.conflict = opts
	return &RepairRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RepairRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RepairRecordCreate) OnConflictColumns(columns ...string) *RepairRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RepairRecordUpsertOne{
		create: _c,
	}
}

type (
	// RepairRecordUpsertOne is the builder for "upsert"-ing
	//  one RepairRecord node.
	RepairRecordUpsertOne struct {
		create *RepairRecordCreate
	}

	// RepairRecordUpsert is the "OnConflict" setter.
	RepairRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RepairRecordUpsert) SetUpdatedAt(v time.Time) *RepairRecordUpsert {
	u.Set(repairrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RepairRecordUpsert) UpdateUpdatedAt() *RepairRecordUpsert {
	u.SetExcluded(repairrecord.FieldUpdatedAt)
	return u
}

// SetDiagnosis sets the "diagnosis" field.
func (u *RepairRecordUpsert) SetDiagnosis(v string) *RepairRecordUpsert {
	u.Set(repairrecord.FieldDiagnosis, v)
	return u
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *RepairRecordUpsert) UpdateDiagnosis() *RepairRecordUpsert {
	u.SetExcluded(repairrecord.FieldDiagnosis)
	return u
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (u *RepairRecordUpsert) ClearDiagnosis() *RepairRecordUpsert {
	u.SetNull(repairrecord.FieldDiagnosis)
	return u
}

// SetObservations sets the "observations" field.
func (u *RepairRecordUpsert) SetObservations(v string) *RepairRecordUpsert {
	u.Set(repairrecord.FieldObservations, v)
	return u
}

// UpdateObservations sets the "observations" field to the value that was provided on create.
func (u *RepairRecordUpsert) UpdateObservations() *RepairRecordUpsert {
	u.SetExcluded(repairrecord.FieldObservations)
	return u
}

// ClearObservations clears the value of the "observations" field.
func (u *RepairRecordUpsert) ClearObservations() *RepairRecordUpsert {
	u.SetNull(repairrecord.FieldObservations)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *RepairRecordUpsert) SetStartedAt(v time.Time) *RepairRecordUpsert {
	u.Set(repairrecord.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RepairRecordUpsert) UpdateStartedAt() *RepairRecordUpsert {
	u.SetExcluded(repairrecord.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RepairRecordUpsert) ClearStartedAt() *RepairRecordUpsert {
	u.SetNull(repairrecord.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *RepairRecordUpsert) SetFinishedAt(v time.Time) *RepairRecordUpsert {
	u.Set(repairrecord.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RepairRecordUpsert) UpdateFinishedAt() *RepairRecordUpsert {
	u.SetExcluded(repairrecord.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RepairRecordUpsert) ClearFinishedAt() *RepairRecordUpsert {
	u.SetNull(repairrecord.FieldFinishedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RepairRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(repairrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RepairRecordUpsertOne) UpdateNewValues() *RepairRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(repairrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(repairrecord.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(repairrecord.FieldTicketID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RepairRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RepairRecordUpsertOne) Ignore() *RepairRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RepairRecordUpsertOne) DoNothing() *RepairRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RepairRecordCreate.OnConflict
// documentation for more info.
func (u *RepairRecordUpsertOne) Update(set func(*RepairRecordUpsert)) *RepairRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RepairRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RepairRecordUpsertOne) SetUpdatedAt(v time.Time) *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RepairRecordUpsertOne) UpdateUpdatedAt() *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDiagnosis sets the "diagnosis" field.
func (u *RepairRecordUpsertOne) SetDiagnosis(v string) *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.SetDiagnosis(v)
	})
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *RepairRecordUpsertOne) UpdateDiagnosis() *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.UpdateDiagnosis()
	})
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (u *RepairRecordUpsertOne) ClearDiagnosis() *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.ClearDiagnosis()
	})
}

// SetObservations sets the "observations" field.
func (u *RepairRecordUpsertOne) SetObservations(v string) *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.SetObservations(v)
	})
}

// UpdateObservations sets the "observations" field to the value that was provided on create.
func (u *RepairRecordUpsertOne) UpdateObservations() *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.UpdateObservations()
	})
}

// ClearObservations clears the value of the "observations" field.
func (u *RepairRecordUpsertOne) ClearObservations() *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.ClearObservations()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RepairRecordUpsertOne) SetStartedAt(v time.Time) *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RepairRecordUpsertOne) UpdateStartedAt() *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RepairRecordUpsertOne) ClearStartedAt() *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *RepairRecordUpsertOne) SetFinishedAt(v time.Time) *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RepairRecordUpsertOne) UpdateFinishedAt() *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RepairRecordUpsertOne) ClearFinishedAt() *RepairRecordUpsertOne {
	return u.Update(func(s *RepairRecordUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *RepairRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RepairRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RepairRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RepairRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RepairRecordUpsertOne.ID is not supported by MySQL driver. Use RepairRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RepairRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RepairRecordCreateBulk is the builder for creating many RepairRecord entities in bulk.
type RepairRecordCreateBulk struct {
	config
	err      error
	builders []*RepairRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the RepairRecord entities in the database.
func (_c *RepairRecordCreateBulk) Save(ctx context.Context) ([]*RepairRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RepairRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RepairRecordMutation)
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
func (_c *RepairRecordCreateBulk) SaveX(ctx context.Context) []*RepairRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepairRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepairRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RepairRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RepairRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RepairRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *RepairRecordUpsertBulk {
	_c.conflict = opts
	return &RepairRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RepairRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RepairRecordCreateBulk) OnConflictColumns(columns ...string) *RepairRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RepairRecordUpsertBulk{
		create: _c,
	}
}

// RepairRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of RepairRecord nodes.
type RepairRecordUpsertBulk struct {
	create *RepairRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RepairRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(repairrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RepairRecordUpsertBulk) UpdateNewValues() *RepairRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(repairrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(repairrecord.FieldCreatedAt)
			}
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(repairrecord.FieldTicketID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RepairRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RepairRecordUpsertBulk) Ignore() *RepairRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RepairRecordUpsertBulk) DoNothing() *RepairRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RepairRecordCreateBulk.OnConflict
// documentation for more info.
func (u *RepairRecordUpsertBulk) Update(set func(*RepairRecordUpsert)) *RepairRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RepairRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RepairRecordUpsertBulk) SetUpdatedAt(v time.Time) *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RepairRecordUpsertBulk) UpdateUpdatedAt() *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDiagnosis sets the "diagnosis" field.
func (u *RepairRecordUpsertBulk) SetDiagnosis(v string) *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.SetDiagnosis(v)
	})
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *RepairRecordUpsertBulk) UpdateDiagnosis() *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.UpdateDiagnosis()
	})
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (u *RepairRecordUpsertBulk) ClearDiagnosis() *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.ClearDiagnosis()
	})
}

// SetObservations sets the "observations" field.
func (u *RepairRecordUpsertBulk) SetObservations(v string) *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.SetObservations(v)
	})
}

// UpdateObservations sets the "observations" field to the value that was provided on create.
func (u *RepairRecordUpsertBulk) UpdateObservations() *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.UpdateObservations()
	})
}

// ClearObservations clears the value of the "observations" field.
func (u *RepairRecordUpsertBulk) ClearObservations() *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.ClearObservations()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RepairRecordUpsertBulk) SetStartedAt(v time.Time) *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RepairRecordUpsertBulk) UpdateStartedAt() *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RepairRecordUpsertBulk) ClearStartedAt() *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *RepairRecordUpsertBulk) SetFinishedAt(v time.Time) *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RepairRecordUpsertBulk) UpdateFinishedAt() *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RepairRecordUpsertBulk) ClearFinishedAt() *RepairRecordUpsertBulk {
	return u.Update(func(s *RepairRecordUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *RepairRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RepairRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RepairRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RepairRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
