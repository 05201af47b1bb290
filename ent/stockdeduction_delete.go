// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/predicate"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/stockdeduction"
)

// StockDeductionDelete is the builder for deleting a StockDeduction entity.
type StockDeductionDelete struct {
	config
	hooks    []Hook
	mutation *StockDeductionMutation
}

// Where appends a list predicates to the StockDeductionDelete builder.
func (_d *StockDeductionDelete) Where(ps ...predicate.StockDeduction) *StockDeductionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *StockDeductionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StockDeductionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *StockDeductionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(stockdeduction.Table, sqlgraph.NewFieldSpec(stockdeduction.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// StockDeductionDeleteOne is the builder for deleting a single StockDeduction entity.
type StockDeductionDeleteOne struct {
	_d *StockDeductionDelete
}

// Where appends a list predicates to the StockDeductionDelete builder.
func (_d *StockDeductionDeleteOne) Where(ps ...predicate.StockDeduction) *StockDeductionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *StockDeductionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{stockdeduction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StockDeductionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
