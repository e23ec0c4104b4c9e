// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reconkit/phone-recon/gen/ent/extractednumber"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
)

// ExtractedNumberDelete is the builder for deleting a ExtractedNumber entity.
type ExtractedNumberDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedNumberMutation
}

// Where appends a list predicates to the ExtractedNumberDelete builder.
func (_d *ExtractedNumberDelete) Where(ps ...predicate.ExtractedNumber) *ExtractedNumberDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedNumberDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedNumberDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedNumberDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractednumber.Table, sqlgraph.NewFieldSpec(extractednumber.FieldID, field.TypeUUID))
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

// ExtractedNumberDeleteOne is the builder for deleting a single ExtractedNumber entity.
type ExtractedNumberDeleteOne struct {
	_d *ExtractedNumberDelete
}

// Where appends a list predicates to the ExtractedNumberDelete builder.
func (_d *ExtractedNumberDeleteOne) Where(ps ...predicate.ExtractedNumber) *ExtractedNumberDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedNumberDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractednumber.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedNumberDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
