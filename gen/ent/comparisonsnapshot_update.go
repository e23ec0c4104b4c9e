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
	"github.com/reconkit/phone-recon/gen/ent/comparisonsnapshot"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
)

// ComparisonSnapshotUpdate is the builder for updating ComparisonSnapshot entities.
type ComparisonSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ComparisonSnapshotMutation
}

// Where appends a list predicates to the ComparisonSnapshotUpdate builder.
func (_u *ComparisonSnapshotUpdate) Where(ps ...predicate.ComparisonSnapshot) *ComparisonSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalExtracted sets the "total_extracted" field.
func (_u *ComparisonSnapshotUpdate) SetTotalExtracted(v int) *ComparisonSnapshotUpdate {
	_u.mutation.ResetTotalExtracted()
	_u.mutation.SetTotalExtracted(v)
	return _u
}

// SetNillableTotalExtracted sets the "total_extracted" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdate) SetNillableTotalExtracted(v *int) *ComparisonSnapshotUpdate {
	if v != nil {
		_u.SetTotalExtracted(*v)
	}
	return _u
}

// AddTotalExtracted adds value to the "total_extracted" field.
func (_u *ComparisonSnapshotUpdate) AddTotalExtracted(v int) *ComparisonSnapshotUpdate {
	_u.mutation.AddTotalExtracted(v)
	return _u
}

// SetTotalContacts sets the "total_contacts" field.
func (_u *ComparisonSnapshotUpdate) SetTotalContacts(v int) *ComparisonSnapshotUpdate {
	_u.mutation.ResetTotalContacts()
	_u.mutation.SetTotalContacts(v)
	return _u
}

// SetNillableTotalContacts sets the "total_contacts" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdate) SetNillableTotalContacts(v *int) *ComparisonSnapshotUpdate {
	if v != nil {
		_u.SetTotalContacts(*v)
	}
	return _u
}

// AddTotalContacts adds value to the "total_contacts" field.
func (_u *ComparisonSnapshotUpdate) AddTotalContacts(v int) *ComparisonSnapshotUpdate {
	_u.mutation.AddTotalContacts(v)
	return _u
}

// SetExactMatches sets the "exact_matches" field.
func (_u *ComparisonSnapshotUpdate) SetExactMatches(v int) *ComparisonSnapshotUpdate {
	_u.mutation.ResetExactMatches()
	_u.mutation.SetExactMatches(v)
	return _u
}

// SetNillableExactMatches sets the "exact_matches" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdate) SetNillableExactMatches(v *int) *ComparisonSnapshotUpdate {
	if v != nil {
		_u.SetExactMatches(*v)
	}
	return _u
}

// AddExactMatches adds value to the "exact_matches" field.
func (_u *ComparisonSnapshotUpdate) AddExactMatches(v int) *ComparisonSnapshotUpdate {
	_u.mutation.AddExactMatches(v)
	return _u
}

// SetPartialMatches sets the "partial_matches" field.
func (_u *ComparisonSnapshotUpdate) SetPartialMatches(v int) *ComparisonSnapshotUpdate {
	_u.mutation.ResetPartialMatches()
	_u.mutation.SetPartialMatches(v)
	return _u
}

// SetNillablePartialMatches sets the "partial_matches" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdate) SetNillablePartialMatches(v *int) *ComparisonSnapshotUpdate {
	if v != nil {
		_u.SetPartialMatches(*v)
	}
	return _u
}

// AddPartialMatches adds value to the "partial_matches" field.
func (_u *ComparisonSnapshotUpdate) AddPartialMatches(v int) *ComparisonSnapshotUpdate {
	_u.mutation.AddPartialMatches(v)
	return _u
}

// SetNewNumbers sets the "new_numbers" field.
func (_u *ComparisonSnapshotUpdate) SetNewNumbers(v int) *ComparisonSnapshotUpdate {
	_u.mutation.ResetNewNumbers()
	_u.mutation.SetNewNumbers(v)
	return _u
}

// SetNillableNewNumbers sets the "new_numbers" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdate) SetNillableNewNumbers(v *int) *ComparisonSnapshotUpdate {
	if v != nil {
		_u.SetNewNumbers(*v)
	}
	return _u
}

// AddNewNumbers adds value to the "new_numbers" field.
func (_u *ComparisonSnapshotUpdate) AddNewNumbers(v int) *ComparisonSnapshotUpdate {
	_u.mutation.AddNewNumbers(v)
	return _u
}

// SetNotCompared sets the "not_compared" field.
func (_u *ComparisonSnapshotUpdate) SetNotCompared(v int) *ComparisonSnapshotUpdate {
	_u.mutation.ResetNotCompared()
	_u.mutation.SetNotCompared(v)
	return _u
}

// SetNillableNotCompared sets the "not_compared" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdate) SetNillableNotCompared(v *int) *ComparisonSnapshotUpdate {
	if v != nil {
		_u.SetNotCompared(*v)
	}
	return _u
}

// AddNotCompared adds value to the "not_compared" field.
func (_u *ComparisonSnapshotUpdate) AddNotCompared(v int) *ComparisonSnapshotUpdate {
	_u.mutation.AddNotCompared(v)
	return _u
}

// SetMatchRate sets the "match_rate" field.
func (_u *ComparisonSnapshotUpdate) SetMatchRate(v float64) *ComparisonSnapshotUpdate {
	_u.mutation.ResetMatchRate()
	_u.mutation.SetMatchRate(v)
	return _u
}

// SetNillableMatchRate sets the "match_rate" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdate) SetNillableMatchRate(v *float64) *ComparisonSnapshotUpdate {
	if v != nil {
		_u.SetMatchRate(*v)
	}
	return _u
}

// AddMatchRate adds value to the "match_rate" field.
func (_u *ComparisonSnapshotUpdate) AddMatchRate(v float64) *ComparisonSnapshotUpdate {
	_u.mutation.AddMatchRate(v)
	return _u
}

// SetComparedAt sets the "compared_at" field.
func (_u *ComparisonSnapshotUpdate) SetComparedAt(v time.Time) *ComparisonSnapshotUpdate {
	_u.mutation.SetComparedAt(v)
	return _u
}

// SetNillableComparedAt sets the "compared_at" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdate) SetNillableComparedAt(v *time.Time) *ComparisonSnapshotUpdate {
	if v != nil {
		_u.SetComparedAt(*v)
	}
	return _u
}

// Mutation returns the ComparisonSnapshotMutation object of the builder.
func (_u *ComparisonSnapshotUpdate) Mutation() *ComparisonSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ComparisonSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComparisonSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ComparisonSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComparisonSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComparisonSnapshotUpdate) check() error {
	if v, ok := _u.mutation.TotalExtracted(); ok {
		if err := comparisonsnapshot.TotalExtractedValidator(v); err != nil {
			return &ValidationError{Name: "total_extracted", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.total_extracted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalContacts(); ok {
		if err := comparisonsnapshot.TotalContactsValidator(v); err != nil {
			return &ValidationError{Name: "total_contacts", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.total_contacts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExactMatches(); ok {
		if err := comparisonsnapshot.ExactMatchesValidator(v); err != nil {
			return &ValidationError{Name: "exact_matches", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.exact_matches": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PartialMatches(); ok {
		if err := comparisonsnapshot.PartialMatchesValidator(v); err != nil {
			return &ValidationError{Name: "partial_matches", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.partial_matches": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewNumbers(); ok {
		if err := comparisonsnapshot.NewNumbersValidator(v); err != nil {
			return &ValidationError{Name: "new_numbers", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.new_numbers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NotCompared(); ok {
		if err := comparisonsnapshot.NotComparedValidator(v); err != nil {
			return &ValidationError{Name: "not_compared", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.not_compared": %w`, err)}
		}
	}
	return nil
}

func (_u *ComparisonSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comparisonsnapshot.Table, comparisonsnapshot.Columns, sqlgraph.NewFieldSpec(comparisonsnapshot.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalExtracted(); ok {
		_spec.SetField(comparisonsnapshot.FieldTotalExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExtracted(); ok {
		_spec.AddField(comparisonsnapshot.FieldTotalExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalContacts(); ok {
		_spec.SetField(comparisonsnapshot.FieldTotalContacts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalContacts(); ok {
		_spec.AddField(comparisonsnapshot.FieldTotalContacts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExactMatches(); ok {
		_spec.SetField(comparisonsnapshot.FieldExactMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExactMatches(); ok {
		_spec.AddField(comparisonsnapshot.FieldExactMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PartialMatches(); ok {
		_spec.SetField(comparisonsnapshot.FieldPartialMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPartialMatches(); ok {
		_spec.AddField(comparisonsnapshot.FieldPartialMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewNumbers(); ok {
		_spec.SetField(comparisonsnapshot.FieldNewNumbers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewNumbers(); ok {
		_spec.AddField(comparisonsnapshot.FieldNewNumbers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NotCompared(); ok {
		_spec.SetField(comparisonsnapshot.FieldNotCompared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNotCompared(); ok {
		_spec.AddField(comparisonsnapshot.FieldNotCompared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MatchRate(); ok {
		_spec.SetField(comparisonsnapshot.FieldMatchRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchRate(); ok {
		_spec.AddField(comparisonsnapshot.FieldMatchRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ComparedAt(); ok {
		_spec.SetField(comparisonsnapshot.FieldComparedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comparisonsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ComparisonSnapshotUpdateOne is the builder for updating a single ComparisonSnapshot entity.
type ComparisonSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ComparisonSnapshotMutation
}

// SetTotalExtracted sets the "total_extracted" field.
func (_u *ComparisonSnapshotUpdateOne) SetTotalExtracted(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.ResetTotalExtracted()
	_u.mutation.SetTotalExtracted(v)
	return _u
}

// SetNillableTotalExtracted sets the "total_extracted" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdateOne) SetNillableTotalExtracted(v *int) *ComparisonSnapshotUpdateOne {
	if v != nil {
		_u.SetTotalExtracted(*v)
	}
	return _u
}

// AddTotalExtracted adds value to the "total_extracted" field.
func (_u *ComparisonSnapshotUpdateOne) AddTotalExtracted(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.AddTotalExtracted(v)
	return _u
}

// SetTotalContacts sets the "total_contacts" field.
func (_u *ComparisonSnapshotUpdateOne) SetTotalContacts(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.ResetTotalContacts()
	_u.mutation.SetTotalContacts(v)
	return _u
}

// SetNillableTotalContacts sets the "total_contacts" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdateOne) SetNillableTotalContacts(v *int) *ComparisonSnapshotUpdateOne {
	if v != nil {
		_u.SetTotalContacts(*v)
	}
	return _u
}

// AddTotalContacts adds value to the "total_contacts" field.
func (_u *ComparisonSnapshotUpdateOne) AddTotalContacts(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.AddTotalContacts(v)
	return _u
}

// SetExactMatches sets the "exact_matches" field.
func (_u *ComparisonSnapshotUpdateOne) SetExactMatches(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.ResetExactMatches()
	_u.mutation.SetExactMatches(v)
	return _u
}

// SetNillableExactMatches sets the "exact_matches" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdateOne) SetNillableExactMatches(v *int) *ComparisonSnapshotUpdateOne {
	if v != nil {
		_u.SetExactMatches(*v)
	}
	return _u
}

// AddExactMatches adds value to the "exact_matches" field.
func (_u *ComparisonSnapshotUpdateOne) AddExactMatches(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.AddExactMatches(v)
	return _u
}

// SetPartialMatches sets the "partial_matches" field.
func (_u *ComparisonSnapshotUpdateOne) SetPartialMatches(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.ResetPartialMatches()
	_u.mutation.SetPartialMatches(v)
	return _u
}

// SetNillablePartialMatches sets the "partial_matches" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdateOne) SetNillablePartialMatches(v *int) *ComparisonSnapshotUpdateOne {
	if v != nil {
		_u.SetPartialMatches(*v)
	}
	return _u
}

// AddPartialMatches adds value to the "partial_matches" field.
func (_u *ComparisonSnapshotUpdateOne) AddPartialMatches(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.AddPartialMatches(v)
	return _u
}

// SetNewNumbers sets the "new_numbers" field.
func (_u *ComparisonSnapshotUpdateOne) SetNewNumbers(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.ResetNewNumbers()
	_u.mutation.SetNewNumbers(v)
	return _u
}

// SetNillableNewNumbers sets the "new_numbers" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdateOne) SetNillableNewNumbers(v *int) *ComparisonSnapshotUpdateOne {
	if v != nil {
		_u.SetNewNumbers(*v)
	}
	return _u
}

// AddNewNumbers adds value to the "new_numbers" field.
func (_u *ComparisonSnapshotUpdateOne) AddNewNumbers(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.AddNewNumbers(v)
	return _u
}

// SetNotCompared sets the "not_compared" field.
func (_u *ComparisonSnapshotUpdateOne) SetNotCompared(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.ResetNotCompared()
	_u.mutation.SetNotCompared(v)
	return _u
}

// SetNillableNotCompared sets the "not_compared" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdateOne) SetNillableNotCompared(v *int) *ComparisonSnapshotUpdateOne {
	if v != nil {
		_u.SetNotCompared(*v)
	}
	return _u
}

// AddNotCompared adds value to the "not_compared" field.
func (_u *ComparisonSnapshotUpdateOne) AddNotCompared(v int) *ComparisonSnapshotUpdateOne {
	_u.mutation.AddNotCompared(v)
	return _u
}

// SetMatchRate sets the "match_rate" field.
func (_u *ComparisonSnapshotUpdateOne) SetMatchRate(v float64) *ComparisonSnapshotUpdateOne {
	_u.mutation.ResetMatchRate()
	_u.mutation.SetMatchRate(v)
	return _u
}

// SetNillableMatchRate sets the "match_rate" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdateOne) SetNillableMatchRate(v *float64) *ComparisonSnapshotUpdateOne {
	if v != nil {
		_u.SetMatchRate(*v)
	}
	return _u
}

// AddMatchRate adds value to the "match_rate" field.
func (_u *ComparisonSnapshotUpdateOne) AddMatchRate(v float64) *ComparisonSnapshotUpdateOne {
	_u.mutation.AddMatchRate(v)
	return _u
}

// SetComparedAt sets the "compared_at" field.
func (_u *ComparisonSnapshotUpdateOne) SetComparedAt(v time.Time) *ComparisonSnapshotUpdateOne {
	_u.mutation.SetComparedAt(v)
	return _u
}

// SetNillableComparedAt sets the "compared_at" field if the given value is not nil.
func (_u *ComparisonSnapshotUpdateOne) SetNillableComparedAt(v *time.Time) *ComparisonSnapshotUpdateOne {
	if v != nil {
		_u.SetComparedAt(*v)
	}
	return _u
}

// Mutation returns the ComparisonSnapshotMutation object of the builder.
func (_u *ComparisonSnapshotUpdateOne) Mutation() *ComparisonSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ComparisonSnapshotUpdate builder.
func (_u *ComparisonSnapshotUpdateOne) Where(ps ...predicate.ComparisonSnapshot) *ComparisonSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ComparisonSnapshotUpdateOne) Select(field string, fields ...string) *ComparisonSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ComparisonSnapshot entity.
func (_u *ComparisonSnapshotUpdateOne) Save(ctx context.Context) (*ComparisonSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComparisonSnapshotUpdateOne) SaveX(ctx context.Context) *ComparisonSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ComparisonSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComparisonSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComparisonSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.TotalExtracted(); ok {
		if err := comparisonsnapshot.TotalExtractedValidator(v); err != nil {
			return &ValidationError{Name: "total_extracted", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.total_extracted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalContacts(); ok {
		if err := comparisonsnapshot.TotalContactsValidator(v); err != nil {
			return &ValidationError{Name: "total_contacts", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.total_contacts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExactMatches(); ok {
		if err := comparisonsnapshot.ExactMatchesValidator(v); err != nil {
			return &ValidationError{Name: "exact_matches", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.exact_matches": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PartialMatches(); ok {
		if err := comparisonsnapshot.PartialMatchesValidator(v); err != nil {
			return &ValidationError{Name: "partial_matches", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.partial_matches": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewNumbers(); ok {
		if err := comparisonsnapshot.NewNumbersValidator(v); err != nil {
			return &ValidationError{Name: "new_numbers", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.new_numbers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NotCompared(); ok {
		if err := comparisonsnapshot.NotComparedValidator(v); err != nil {
			return &ValidationError{Name: "not_compared", err: fmt.Errorf(`ent: validator failed for field "ComparisonSnapshot.not_compared": %w`, err)}
		}
	}
	return nil
}

func (_u *ComparisonSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ComparisonSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comparisonsnapshot.Table, comparisonsnapshot.Columns, sqlgraph.NewFieldSpec(comparisonsnapshot.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ComparisonSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, comparisonsnapshot.FieldID)
		for _, f := range fields {
			if !comparisonsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != comparisonsnapshot.FieldID {
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
	if value, ok := _u.mutation.TotalExtracted(); ok {
		_spec.SetField(comparisonsnapshot.FieldTotalExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExtracted(); ok {
		_spec.AddField(comparisonsnapshot.FieldTotalExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalContacts(); ok {
		_spec.SetField(comparisonsnapshot.FieldTotalContacts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalContacts(); ok {
		_spec.AddField(comparisonsnapshot.FieldTotalContacts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExactMatches(); ok {
		_spec.SetField(comparisonsnapshot.FieldExactMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExactMatches(); ok {
		_spec.AddField(comparisonsnapshot.FieldExactMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PartialMatches(); ok {
		_spec.SetField(comparisonsnapshot.FieldPartialMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPartialMatches(); ok {
		_spec.AddField(comparisonsnapshot.FieldPartialMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewNumbers(); ok {
		_spec.SetField(comparisonsnapshot.FieldNewNumbers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewNumbers(); ok {
		_spec.AddField(comparisonsnapshot.FieldNewNumbers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NotCompared(); ok {
		_spec.SetField(comparisonsnapshot.FieldNotCompared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNotCompared(); ok {
		_spec.AddField(comparisonsnapshot.FieldNotCompared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MatchRate(); ok {
		_spec.SetField(comparisonsnapshot.FieldMatchRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchRate(); ok {
		_spec.AddField(comparisonsnapshot.FieldMatchRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ComparedAt(); ok {
		_spec.SetField(comparisonsnapshot.FieldComparedAt, field.TypeTime, value)
	}
	_node = &ComparisonSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comparisonsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
