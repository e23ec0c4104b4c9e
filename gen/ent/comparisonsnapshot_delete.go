// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reconkit/phone-recon/gen/ent/comparisonsnapshot"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
)

// ComparisonSnapshotDelete is the builder for deleting a ComparisonSnapshot entity.
type ComparisonSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *ComparisonSnapshotMutation
}

// Where appends a list predicates to the ComparisonSnapshotDelete builder.
func (_d *ComparisonSnapshotDelete) Where(ps ...predicate.ComparisonSnapshot) *ComparisonSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ComparisonSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComparisonSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ComparisonSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(comparisonsnapshot.Table, sqlgraph.NewFieldSpec(comparisonsnapshot.FieldID, field.TypeUUID))
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

// ComparisonSnapshotDeleteOne is the builder for deleting a single ComparisonSnapshot entity.
type ComparisonSnapshotDeleteOne struct {
	_d *ComparisonSnapshotDelete
}

// Where appends a list predicates to the ComparisonSnapshotDelete builder.
func (_d *ComparisonSnapshotDeleteOne) Where(ps ...predicate.ComparisonSnapshot) *ComparisonSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ComparisonSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{comparisonsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComparisonSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
