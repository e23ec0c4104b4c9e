// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reconkit/phone-recon/gen/ent/existingcontact"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
)

// ExistingContactDelete is the builder for deleting a ExistingContact entity.
type ExistingContactDelete struct {
	config
	hooks    []Hook
	mutation *ExistingContactMutation
}

// Where appends a list predicates to the ExistingContactDelete builder.
func (_d *ExistingContactDelete) Where(ps ...predicate.ExistingContact) *ExistingContactDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExistingContactDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExistingContactDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExistingContactDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(existingcontact.Table, sqlgraph.NewFieldSpec(existingcontact.FieldID, field.TypeUUID))
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

// ExistingContactDeleteOne is the builder for deleting a single ExistingContact entity.
type ExistingContactDeleteOne struct {
	_d *ExistingContactDelete
}

// Where appends a list predicates to the ExistingContactDelete builder.
func (_d *ExistingContactDeleteOne) Where(ps ...predicate.ExistingContact) *ExistingContactDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExistingContactDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{existingcontact.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExistingContactDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
