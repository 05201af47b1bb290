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
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/repairrecord"
)

// RepairRecordUpdate is the builder for updating RepairRecord entities.
type RepairRecordUpdate struct {
	config
	hooks    []Hook
	mutation *RepairRecordMutation
}

// Where appends a list predicates to the RepairRecordUpdate builder.
func (_u *RepairRecordUpdate) Where(ps ...predicate.RepairRecord) *RepairRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RepairRecordUpdate) SetUpdatedAt(v time.Time) *RepairRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *RepairRecordUpdate) SetDiagnosis(v string) *RepairRecordUpdate {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *RepairRecordUpdate) SetNillableDiagnosis(v *string) *RepairRecordUpdate {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (_u *RepairRecordUpdate) ClearDiagnosis() *RepairRecordUpdate {
	_u.mutation.ClearDiagnosis()
	return _u
}

// SetObservations sets the "observations" field.
func (_u *RepairRecordUpdate) SetObservations(v string) *RepairRecordUpdate {
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *RepairRecordUpdate) SetNillableObservations(v *string) *RepairRecordUpdate {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// ClearObservations clears the value of the "observations" field.
func (_u *RepairRecordUpdate) ClearObservations() *RepairRecordUpdate {
	_u.mutation.ClearObservations()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RepairRecordUpdate) SetStartedAt(v time.Time) *RepairRecordUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RepairRecordUpdate) SetNillableStartedAt(v *time.Time) *RepairRecordUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RepairRecordUpdate) ClearStartedAt() *RepairRecordUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RepairRecordUpdate) SetFinishedAt(v time.Time) *RepairRecordUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RepairRecordUpdate) SetNillableFinishedAt(v *time.Time) *RepairRecordUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RepairRecordUpdate) ClearFinishedAt() *RepairRecordUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the RepairRecordMutation object of the builder.
func (_u *RepairRecordUpdate) Mutation() *RepairRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RepairRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepairRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RepairRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepairRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RepairRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := repairrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RepairRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(repairrecord.Table, repairrecord.Columns, sqlgraph.NewFieldSpec(repairrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(repairrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(repairrecord.FieldDiagnosis, field.TypeString, value)
	}
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(repairrecord.FieldDiagnosis, field.TypeString)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(repairrecord.FieldObservations, field.TypeString, value)
	}
	if _u.mutation.ObservationsCleared() {
		_spec.ClearField(repairrecord.FieldObservations, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(repairrecord.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(repairrecord.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(repairrecord.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(repairrecord.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repairrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RepairRecordUpdateOne is the builder for updating a single RepairRecord entity.
type RepairRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RepairRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RepairRecordUpdateOne) SetUpdatedAt(v time.Time) *RepairRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *RepairRecordUpdateOne) SetDiagnosis(v string) *RepairRecordUpdateOne {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *RepairRecordUpdateOne) SetNillableDiagnosis(v *string) *RepairRecordUpdateOne {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (_u *RepairRecordUpdateOne) ClearDiagnosis() *RepairRecordUpdateOne {
	_u.mutation.ClearDiagnosis()
	return _u
}

// SetObservations sets the "observations" field.
func (_u *RepairRecordUpdateOne) SetObservations(v string) *RepairRecordUpdateOne {
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *RepairRecordUpdateOne) SetNillableObservations(v *string) *RepairRecordUpdateOne {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// ClearObservations clears the value of the "observations" field.
func (_u *RepairRecordUpdateOne) ClearObservations() *RepairRecordUpdateOne {
	_u.mutation.ClearObservations()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RepairRecordUpdateOne) SetStartedAt(v time.Time) *RepairRecordUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RepairRecordUpdateOne) SetNillableStartedAt(v *time.Time) *RepairRecordUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RepairRecordUpdateOne) ClearStartedAt() *RepairRecordUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RepairRecordUpdateOne) SetFinishedAt(v time.Time) *RepairRecordUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RepairRecordUpdateOne) SetNillableFinishedAt(v *time.Time) *RepairRecordUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RepairRecordUpdateOne) ClearFinishedAt() *RepairRecordUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the RepairRecordMutation object of the builder.
func (_u *RepairRecordUpdateOne) Mutation() *RepairRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the RepairRecordUpdate builder.
func (_u *RepairRecordUpdateOne) Where(ps ...predicate.RepairRecord) *RepairRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RepairRecordUpdateOne) Select(field string, fields ...string) *RepairRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RepairRecord entity.
func (_u *RepairRecordUpdateOne) Save(ctx context.Context) (*RepairRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepairRecordUpdateOne) SaveX(ctx context.Context) *RepairRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RepairRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepairRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RepairRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := repairrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RepairRecordUpdateOne) sqlSave(ctx context.Context) (_node *RepairRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(repairrecord.Table, repairrecord.Columns, sqlgraph.NewFieldSpec(repairrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RepairRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, repairrecord.FieldID)
		for _, f := range fields {
			if !repairrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != repairrecord.FieldID {
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
		_spec.SetField(repairrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(repairrecord.FieldDiagnosis, field.TypeString, value)
	}
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(repairrecord.FieldDiagnosis, field.TypeString)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(repairrecord.FieldObservations, field.TypeString, value)
	}
	if _u.mutation.ObservationsCleared() {
		_spec.ClearField(repairrecord.FieldObservations, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(repairrecord.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(repairrecord.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(repairrecord.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(repairrecord.FieldFinishedAt, field.TypeTime)
	}
	_node = &RepairRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repairrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
