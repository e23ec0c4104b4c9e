// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/gen/ent/comparisonsnapshot"
)

// ComparisonSnapshotCreate is the builder for creating a ComparisonSnapshot entity.
type ComparisonSnapshotCreate struct {
	config
	mutation *ComparisonSnapshotMutation
	hooks    []Hook
}

// SetTotalExtracted sets the "total_extracted" field.
func (_c *ComparisonSnapshotCreate) SetTotalExtracted(v int) *ComparisonSnapshotCreate {
	_c.mutation.SetTotalExtracted(v)
	return _c
}

// SetTotalContacts sets the "total_contacts" field.
func (_c *ComparisonSnapshotCreate) SetTotalContacts(v int) *ComparisonSnapshotCreate {
	_c.mutation.SetTotalContacts(v)
	return _c
}

// SetExactMatches sets the "exact_matches" field.
func (_c *ComparisonSnapshotCreate) SetExactMatches(v int) *ComparisonSnapshotCreate {
	_c.mutation.SetExactMatches(v)
	return _c
}

// SetPartialMatches sets the "partial_matches" field.
func (_c *ComparisonSnapshotCreate) SetPartialMatches(v int) *ComparisonSnapshotCreate {
	_c.mutation.SetPartialMatches(v)
	return _c
}

// SetNewNumbers sets the "new_numbers" field.
func (_c *ComparisonSnapshotCreate) SetNewNumbers(v int) *ComparisonSnapshotCreate {
	_c.mutation.SetNewNumbers(v)
	return _c
}

// SetNotCompared sets the "not_compared" field.
func (_c *ComparisonSnapshotCreate) SetNotCompared(v int) *ComparisonSnapshotCreate {
	_c.mutation.SetNotCompared(v)
	return _c
}

// SetMatchRate sets the "match_rate" field.
func (_c *ComparisonSnapshotCreate) SetMatchRate(v float64) *ComparisonSnapshotCreate {
	_c.mutation.SetMatchRate(v)
	return _c
}

// SetComparedAt sets the "compared_at" field.
func (_c *ComparisonSnapshotCreate) SetComparedAt(v time.Time) *ComparisonSnapshotCreate {
	_c.mutation.SetComparedAt(v)
	return _c
}

// SetNillableComparedAt sets the "compared_at" field if the given value is not nil.
func (_c *ComparisonSnapshotCreate) SetNillableComparedAt(v *time.Time) *ComparisonSnapshotCreate {
	if v != nil {
		_c.SetComparedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ComparisonSnapshotCreate) SetID(v uuid.UUID) *ComparisonSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ComparisonSnapshotCreate) SetNillableID(v *uuid.UUID) *ComparisonSnapshotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ComparisonSnapshotMutation object of the builder.
func (_c *ComparisonSnapshotCreate) Mutation() *ComparisonSnapshotMutation {
	return _c.mutation
}

// Save creates the ComparisonSnapshot in the database.
func (_c *ComparisonSnapshotCreate) Save(ctx context.Context) (*ComparisonSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ComparisonSnapshotCreate) SaveX(ctx context.Context) *ComparisonSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComparisonSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComparisonSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ComparisonSnapshotCreate) defaults() {
	if _, ok := _c.mutation.ComparedAt(); !ok {
		v := comparisonsnapshot.DefaultComparedAt()
		_c.mutation.SetComparedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := comparisonsnapshot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ComparisonSnapshotCreate) check() error {
	if _, ok := _c.mutation.TotalExtracted(); !ok {
		return &ValidationError{Name: "total_extracted", err: errors.New(`ent: missing required field "ComparisonSnapshot.total_extracted"`)}
	}
	if v, ok := _c.mutation.TotalExtracted(); ok {
		if err := comparisonsnapshot.TotalExtractedValidator(v); err != nil {
			return &ValidationError{Name: "total_extracted", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.total_extracted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalContacts(); !ok {
		return &ValidationError{Name: "total_contacts", err: errors.New(`ent: missing required field "ComparisonSnapshot.total_contacts"`)}
	}
	if v, ok := _c.mutation.TotalContacts(); ok {
		if err := comparisonsnapshot.TotalContactsValidator(v); err != nil {
			return &ValidationError{Name: "total_contacts", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.total_contacts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExactMatches(); !ok {
		return &ValidationError{Name: "exact_matches", err: errors.New(`ent: missing required field "ComparisonSnapshot.exact_matches"`)}
	}
	if v, ok := _c.mutation.ExactMatches(); ok {
		if err := comparisonsnapshot.ExactMatchesValidator(v); err != nil {
			return &ValidationError{Name: "exact_matches", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.exact_matches": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PartialMatches(); !ok {
		return &ValidationError{Name: "partial_matches", err: errors.New(`ent: missing required field "ComparisonSnapshot.partial_matches"`)}
	}
	if v, ok := _c.mutation.PartialMatches(); ok {
		if err := comparisonsnapshot.PartialMatchesValidator(v); err != nil {
			return &ValidationError{Name: "partial_matches", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.partial_matches": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NewNumbers(); !ok {
		return &ValidationError{Name: "new_numbers", err: errors.New(`ent: missing required field "ComparisonSnapshot.new_numbers"`)}
	}
	if v, ok := _c.mutation.NewNumbers(); ok {
		if err := comparisonsnapshot.NewNumbersValidator(v); err != nil {
			return &ValidationError{Name: "new_numbers", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.new_numbers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NotCompared(); !ok {
		return &ValidationError{Name: "not_compared", err: errors.New(`ent: missing required field "ComparisonSnapshot.not_compared"`)}
	}
	if v, ok := _c.mutation.NotCompared(); ok {
		if err := comparisonsnapshot.NotComparedValidator(v); err != nil {
			return &ValidationError{Name: "not_compared", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.not_compared": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MatchRate(); !ok {
		return &ValidationError{Name: "match_rate", err: errors.New(`ent: missing required field "ComparisonSnapshot.match_rate"`)}
	}
	if _, ok := _c.mutation.ComparedAt(); !ok {
		return &ValidationError{Name: "compared_at", err: errors.New(`ent: missing required field "ComparisonSnapshot.compared_at"`)}
	}
	return nil
}

func (_c *ComparisonSnapshotCreate) sqlSave(ctx context.Context) (*ComparisonSnapshot, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ComparisonSnapshotCreate) createSpec() (*ComparisonSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ComparisonSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(comparisonsnapshot.Table, sqlgraph.NewFieldSpec(comparisonsnapshot.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TotalExtracted(); ok {
		_spec.SetField(comparisonsnapshot.FieldTotalExtracted, field.TypeInt, value)
		_node.TotalExtracted = value
	}
	if value, ok := _c.mutation.TotalContacts(); ok {
		_spec.SetField(comparisonsnapshot.FieldTotalContacts, field.TypeInt, value)
		_node.TotalContacts = value
	}
	if value, ok := _c.mutation.ExactMatches(); ok {
		_spec.SetField(comparisonsnapshot.FieldExactMatches, field.TypeInt, value)
		_node.ExactMatches = value
	}
	if value, ok := _c.mutation.PartialMatches(); ok {
		_spec.SetField(comparisonsnapshot.FieldPartialMatches, field.TypeInt, value)
		_node.PartialMatches = value
	}
	if value, ok := _c.mutation.NewNumbers(); ok {
		_spec.SetField(comparisonsnapshot.FieldNewNumbers, field.TypeInt, value)
		_node.NewNumbers = value
	}
	if value, ok := _c.mutation.NotCompared(); ok {
		_spec.SetField(comparisonsnapshot.FieldNotCompared, field.TypeInt, value)
		_node.NotCompared = value
	}
	if value, ok := _c.mutation.MatchRate(); ok {
		_spec.SetField(comparisonsnapshot.FieldMatchRate, field.TypeFloat64, value)
		_node.MatchRate = value
	}
	if value, ok := _c.mutation.ComparedAt(); ok {
		_spec.SetField(comparisonsnapshot.FieldComparedAt, field.TypeTime, value)
		_node.ComparedAt = value
	}
	return _node, _spec
}

// ComparisonSnapshotCreateBulk is the builder for creating many ComparisonSnapshot entities in bulk.
type ComparisonSnapshotCreateBulk struct {
	config
	err      error
	builders []*ComparisonSnapshotCreate
}

// Save creates the ComparisonSnapshot entities in the database.
func (_c *ComparisonSnapshotCreateBulk) Save(ctx context.Context) ([]*ComparisonSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ComparisonSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComparisonSnapshotMutation)
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
func (_c *ComparisonSnapshotCreateBulk) SaveX(ctx context.Context) []*ComparisonSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComparisonSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComparisonSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
