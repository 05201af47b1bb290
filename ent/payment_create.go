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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/payment"
)

// PaymentCreate is the builder for creating a Payment entity.
type PaymentCreate struct {
	config
	mutation *PaymentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaymentCreate) SetCreatedAt(v time.Time) *PaymentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableCreatedAt(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaymentCreate) SetUpdatedAt(v time.Time) *PaymentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableUpdatedAt(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTicketID sets the "ticket_id" field.
func (_c *PaymentCreate) SetTicketID(v string) *PaymentCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetAmountCents sets the "amount_cents" field.
func (_c *PaymentCreate) SetAmountCents(v int64) *PaymentCreate {
	_c.mutation.SetAmountCents(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *PaymentCreate) SetMethod(v payment.Method) *PaymentCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetState sets the "state" field.
func (_c *PaymentCreate) SetState(v payment.State) *PaymentCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableState(v *payment.State) *PaymentCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetProviderPaymentID sets the "provider_payment_id" field.
func (_c *PaymentCreate) SetProviderPaymentID(v string) *PaymentCreate {
	_c.mutation.SetProviderPaymentID(v)
	return _c
}

// SetNillableProviderPaymentID sets the "provider_payment_id" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableProviderPaymentID(v *string) *PaymentCreate {
	if v != nil {
		_c.SetProviderPaymentID(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *PaymentCreate) SetCreatedBy(v string) *PaymentCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetVoidedAt sets the "voided_at" field.
func (_c *PaymentCreate) SetVoidedAt(v time.Time) *PaymentCreate {
	_c.mutation.SetVoidedAt(v)
	return _c
}

// SetNillableVoidedAt sets the "voided_at" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableVoidedAt(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetVoidedAt(*v)
	}
	return _c
}

// SetVoidedBy sets the "voided_by" field.
func (_c *PaymentCreate) SetVoidedBy(v string) *PaymentCreate {
	_c.mutation.SetVoidedBy(v)
	return _c
}

// SetNillableVoidedBy sets the "voided_by" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableVoidedBy(v *string) *PaymentCreate {
	if v != nil {
		_c.SetVoidedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentCreate) SetID(v string) *PaymentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PaymentMutation object of the builder.
func (_c *PaymentCreate) Mutation() *PaymentMutation {
	return _c.mutation
}

// Save creates the Payment in the database.
func (_c *PaymentCreate) Save(ctx context.Context) (*Payment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentCreate) SaveX(ctx context.Context) *Payment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := payment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := payment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := payment.DefaultState
		_c.mutation.SetState(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Payment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Payment.updated_at"`)}
	}
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "Payment.ticket_id"`)}
	}
	if v, ok := _c.mutation.TicketID(); ok {
		if err := payment.TicketIDValidator(v); err != nil {
			return &ValidationError{Name: "ticket_id", err: fmt.Errorf(`ent: validator failed for field "Payment.ticket_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountCents(); !ok {
		return &ValidationError{Name: "amount_cents", err: errors.New(`ent: missing required field "Payment.amount_cents"`)}
	}
	if v, ok := _c.mutation.AmountCents(); ok {
		if err := payment.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "Payment.amount_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "Payment.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := payment.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Payment.method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Payment.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := payment.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Payment.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Payment.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := payment.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Payment.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *PaymentCreate) sqlSave(ctx context.Context) (*Payment, error) {
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
			return nil, fmt.Errorf("unexpected Payment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaymentCreate) createSpec() (*Payment, *sqlgraph.CreateSpec) {
	var (
		_node = &Payment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payment.Table, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(payment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(payment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(payment.FieldTicketID, field.TypeString, value)
		_node.TicketID = value
	}
	if value, ok := _c.mutation.AmountCents(); ok {
		_spec.SetField(payment.FieldAmountCents, field.TypeInt64, value)
		_node.AmountCents = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(payment.FieldMethod, field.TypeEnum, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(payment.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ProviderPaymentID(); ok {
		_spec.SetField(payment.FieldProviderPaymentID, field.TypeString, value)
		_node.ProviderPaymentID = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(payment.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.VoidedAt(); ok {
		_spec.SetField(payment.FieldVoidedAt, field.TypeTime, value)
		_node.VoidedAt = &value
	}
	if value, ok := _c.mutation.VoidedBy(); ok {
		_spec.SetField(payment.FieldVoidedBy, field.TypeString, value)
		_node.VoidedBy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Payment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentCreate) OnConflict(opts ...sql.ConflictOption) *PaymentUpsertOne {
	_c.conflict = opts
	return &PaymentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentCreate) OnConflictColumns(columns ...string) *PaymentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentUpsertOne{
		create: _c,
	}
}

type (
	// PaymentUpsertOne is the builder for "upsert"-ing
	//  one Payment node.
	PaymentUpsertOne struct {
		create *PaymentCreate
	}

	// PaymentUpsert is the "OnConflict" setter.
	PaymentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentUpsert) SetUpdatedAt(v time.Time) *PaymentUpsert {
	u.Set(payment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateUpdatedAt() *PaymentUpsert {
	u.SetExcluded(payment.FieldUpdatedAt)
	return u
}

// SetMethod sets the "method" field.
func (u *PaymentUpsert) SetMethod(v payment.Method) *PaymentUpsert {
	u.Set(payment.FieldMethod, v)
	return u
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateMethod() *PaymentUpsert {
	u.SetExcluded(payment.FieldMethod)
	return u
}

// SetState sets the "state" field.
func (u *PaymentUpsert) SetState(v payment.State) *PaymentUpsert {
	u.Set(payment.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateState() *PaymentUpsert {
	u.SetExcluded(payment.FieldState)
	return u
}

// SetProviderPaymentID sets the "provider_payment_id" field.
func (u *PaymentUpsert) SetProviderPaymentID(v string) *PaymentUpsert {
	u.Set(payment.FieldProviderPaymentID, v)
	return u
}

// UpdateProviderPaymentID sets the "provider_payment_id" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateProviderPaymentID() *PaymentUpsert {
	u.SetExcluded(payment.FieldProviderPaymentID)
	return u
}

// ClearProviderPaymentID clears the value of the "provider_payment_id" field.
func (u *PaymentUpsert) ClearProviderPaymentID() *PaymentUpsert {
	u.SetNull(payment.FieldProviderPaymentID)
	return u
}

// SetVoidedAt sets the "voided_at" field.
func (u *PaymentUpsert) SetVoidedAt(v time.Time) *PaymentUpsert {
	u.Set(payment.FieldVoidedAt, v)
	return u
}

// UpdateVoidedAt sets the "voided_at" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateVoidedAt() *PaymentUpsert {
	u.SetExcluded(payment.FieldVoidedAt)
	return u
}

// ClearVoidedAt clears the value of the "voided_at" field.
func (u *PaymentUpsert) ClearVoidedAt() *PaymentUpsert {
	u.SetNull(payment.FieldVoidedAt)
	return u
}

// SetVoidedBy sets the "voided_by" field.
func (u *PaymentUpsert) SetVoidedBy(v string) *PaymentUpsert {
	u.Set(payment.FieldVoidedBy, v)
	return u
}

// UpdateVoidedBy sets the "voided_by" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateVoidedBy() *PaymentUpsert {
	u.SetExcluded(payment.FieldVoidedBy)
	return u
}

// ClearVoidedBy clears the value of the "voided_by" field.
func (u *PaymentUpsert) ClearVoidedBy() *PaymentUpsert {
	u.SetNull(payment.FieldVoidedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(payment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentUpsertOne) UpdateNewValues() *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(payment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(payment.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(payment.FieldTicketID)
		}
		if _, exists := u.create.mutation.AmountCents(); exists {
			s.SetIgnore(payment.FieldAmountCents)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(payment.FieldCreatedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Payment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaymentUpsertOne) Ignore() *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentUpsertOne) DoNothing() *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentCreate.OnConflict
// documentation for more info.
func (u *PaymentUpsertOne) Update(set func(*PaymentUpsert)) *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentUpsertOne) SetUpdatedAt(v time.Time) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateUpdatedAt() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMethod sets the "method" field.
func (u *PaymentUpsertOne) SetMethod(v payment.Method) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetMethod(v)
	})
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateMethod() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateMethod()
	})
}

// SetState sets the "state" field.
func (u *PaymentUpsertOne) SetState(v payment.State) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateState() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateState()
	})
}

// SetProviderPaymentID sets the "provider_payment_id" field.
func (u *PaymentUpsertOne) SetProviderPaymentID(v string) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetProviderPaymentID(v)
	})
}

// UpdateProviderPaymentID sets the "provider_payment_id" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateProviderPaymentID() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateProviderPaymentID()
	})
}

// ClearProviderPaymentID clears the value of the "provider_payment_id" field.
func (u *PaymentUpsertOne) ClearProviderPaymentID() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearProviderPaymentID()
	})
}

// SetVoidedAt sets the "voided_at" field.
func (u *PaymentUpsertOne) SetVoidedAt(v time.Time) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetVoidedAt(v)
	})
}

// UpdateVoidedAt sets the "voided_at" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateVoidedAt() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateVoidedAt()
	})
}

// ClearVoidedAt clears the value of the "voided_at" field.
func (u *PaymentUpsertOne) ClearVoidedAt() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearVoidedAt()
	})
}

// SetVoidedBy sets the "voided_by" field.
func (u *PaymentUpsertOne) SetVoidedBy(v string) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetVoidedBy(v)
	})
}

// UpdateVoidedBy sets the "voided_by" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateVoidedBy() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateVoidedBy()
	})
}

// ClearVoidedBy clears the value of the "voided_by" field.
func (u *PaymentUpsertOne) ClearVoidedBy() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearVoidedBy()
	})
}

// Exec executes the query.
func (u *PaymentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaymentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PaymentUpsertOne.ID is not supported by MySQL driver. Use PaymentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaymentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaymentCreateBulk is the builder for creating many Payment entities in bulk.
type PaymentCreateBulk struct {
	config
	err      error
	builders []*PaymentCreate
	conflict []sql.ConflictOption
}

// Save creates the Payment entities in the database.
func (_c *PaymentCreateBulk) Save(ctx context.Context) ([]*Payment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Payment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentMutation)
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
func (_c *PaymentCreateBulk) SaveX(ctx context.Context) []*Payment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Payment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaymentUpsertBulk {
	_c.conflict = opts
	return &PaymentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentCreateBulk) OnConflictColumns(columns ...string) *PaymentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentUpsertBulk{
		create: _c,
	}
}

// PaymentUpsertBulk is the builder for "upsert"-ing
// a bulk of Payment nodes.
type PaymentUpsertBulk struct {
	create *PaymentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(payment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentUpsertBulk) UpdateNewValues() *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(payment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(payment.FieldCreatedAt)
			}
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(payment.FieldTicketID)
			}
			if _, exists := b.mutation.AmountCents(); exists {
				s.SetIgnore(payment.FieldAmountCents)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(payment.FieldCreatedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaymentUpsertBulk) Ignore() *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentUpsertBulk) DoNothing() *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentCreateBulk.OnConflict
// documentation for more info.
func (u *PaymentUpsertBulk) Update(set func(*PaymentUpsert)) *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentUpsertBulk) SetUpdatedAt(v time.Time) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateUpdatedAt() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMethod sets the "method" field.
func (u *PaymentUpsertBulk) SetMethod(v payment.Method) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetMethod(v)
	})
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateMethod() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateMethod()
	})
}

// SetState sets the "state" field.
func (u *PaymentUpsertBulk) SetState(v payment.State) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateState() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateState()
	})
}

// SetProviderPaymentID sets the "provider_payment_id" field.
func (u *PaymentUpsertBulk) SetProviderPaymentID(v string) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetProviderPaymentID(v)
	})
}

// UpdateProviderPaymentID sets the "provider_payment_id" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateProviderPaymentID() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateProviderPaymentID()
	})
}

// ClearProviderPaymentID clears the value of the "provider_payment_id" field.
func (u *PaymentUpsertBulk) ClearProviderPaymentID() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearProviderPaymentID()
	})
}

// SetVoidedAt sets the "voided_at" field.
func (u *PaymentUpsertBulk) SetVoidedAt(v time.Time) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetVoidedAt(v)
	})
}

// UpdateVoidedAt sets the "voided_at" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateVoidedAt() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateVoidedAt()
	})
}

// ClearVoidedAt clears the value of the "voided_at" field.
func (u *PaymentUpsertBulk) ClearVoidedAt() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearVoidedAt()
	})
}

// SetVoidedBy sets the "voided_by" field.
func (u *PaymentUpsertBulk) SetVoidedBy(v string) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetVoidedBy(v)
	})
}

// UpdateVoidedBy sets the "voided_by" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateVoidedBy() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateVoidedBy()
	})
}

// ClearVoidedBy clears the value of the "voided_by" field.
func (u *PaymentUpsertBulk) ClearVoidedBy() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearVoidedBy()
	})
}

// Exec executes the query.
func (u *PaymentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PaymentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
