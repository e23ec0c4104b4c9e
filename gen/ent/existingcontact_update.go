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
	"github.com/reconkit/phone-recon/gen/ent/existingcontact"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
)

// ExistingContactUpdate is the builder for updating ExistingContact entities.
type ExistingContactUpdate struct {
	config
	hooks    []Hook
	mutation *ExistingContactMutation
}

// Where appends a list predicates to the ExistingContactUpdate builder.
func (_u *ExistingContactUpdate) Where(ps ...predicate.ExistingContact) *ExistingContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNormalizedNumber sets the "normalized_number" field.
func (_u *ExistingContactUpdate) SetNormalizedNumber(v string) *ExistingContactUpdate {
	_u.mutation.SetNormalizedNumber(v)
	return _u
}

// SetNillableNormalizedNumber sets the "normalized_number" field if the given value is not nil.
func (_u *ExistingContactUpdate) SetNillableNormalizedNumber(v *string) *ExistingContactUpdate {
	if v != nil {
		_u.SetNormalizedNumber(*v)
	}
	return _u
}

// SetRawNumber sets the "raw_number" field.
func (_u *ExistingContactUpdate) SetRawNumber(v string) *ExistingContactUpdate {
	_u.mutation.SetRawNumber(v)
	return _u
}

// SetNillableRawNumber sets the "raw_number" field if the given value is not nil.
func (_u *ExistingContactUpdate) SetNillableRawNumber(v *string) *ExistingContactUpdate {
	if v != nil {
		_u.SetRawNumber(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExistingContactUpdate) SetName(v string) *ExistingContactUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExistingContactUpdate) SetNillableName(v *string) *ExistingContactUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ExistingContactUpdate) ClearName() *ExistingContactUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ExistingContactUpdate) SetEmail(v string) *ExistingContactUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ExistingContactUpdate) SetNillableEmail(v *string) *ExistingContactUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ExistingContactUpdate) ClearEmail() *ExistingContactUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ExistingContactUpdate) SetCompany(v string) *ExistingContactUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ExistingContactUpdate) SetNillableCompany(v *string) *ExistingContactUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ExistingContactUpdate) ClearCompany() *ExistingContactUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetSource sets the "source" field.
func (_u *ExistingContactUpdate) SetSource(v string) *ExistingContactUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExistingContactUpdate) SetNillableSource(v *string) *ExistingContactUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ExistingContactUpdate) SetExternalID(v string) *ExistingContactUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ExistingContactUpdate) SetNillableExternalID(v *string) *ExistingContactUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *ExistingContactUpdate) ClearExternalID() *ExistingContactUpdate {
	_u.mutation.ClearExternalID()
	return _u
}

// SetImportedAt sets the "imported_at" field.
func (_u *ExistingContactUpdate) SetImportedAt(v time.Time) *ExistingContactUpdate {
	_u.mutation.SetImportedAt(v)
	return _u
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_u *ExistingContactUpdate) SetNillableImportedAt(v *time.Time) *ExistingContactUpdate {
	if v != nil {
		_u.SetImportedAt(*v)
	}
	return _u
}

// Mutation returns the ExistingContactMutation object of the builder.
func (_u *ExistingContactUpdate) Mutation() *ExistingContactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExistingContactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExistingContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExistingContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExistingContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExistingContactUpdate) check() error {
	if v, ok := _u.mutation.NormalizedNumber(); ok {
		if err := existingcontact.NormalizedNumberValidator(v); err != nil {
			return &ValidationError{Name: "normalized_number", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.normalized_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawNumber(); ok {
		if err := existingcontact.RawNumberValidator(v); err != nil {
			return &ValidationError{Name: "raw_number", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.raw_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := existingcontact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := existingcontact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Company(); ok {
		if err := existingcontact.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.company": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := existingcontact.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalID(); ok {
		if err := existingcontact.ExternalIDValidator(v); err != nil {
			return &ValidationError{Name: "external_id", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.external_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExistingContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(existingcontact.Table, existingcontact.Columns, sqlgraph.NewFieldSpec(existingcontact.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NormalizedNumber(); ok {
		_spec.SetField(existingcontact.FieldNormalizedNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawNumber(); ok {
		_spec.SetField(existingcontact.FieldRawNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(existingcontact.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(existingcontact.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(existingcontact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(existingcontact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(existingcontact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(existingcontact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(existingcontact.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(existingcontact.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(existingcontact.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.ImportedAt(); ok {
		_spec.SetField(existingcontact.FieldImportedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{existingcontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExistingContactUpdateOne is the builder for updating a single ExistingContact entity.
type ExistingContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExistingContactMutation
}

// SetNormalizedNumber sets the "normalized_number" field.
func (_u *ExistingContactUpdateOne) SetNormalizedNumber(v string) *ExistingContactUpdateOne {
	_u.mutation.SetNormalizedNumber(v)
	return _u
}

// SetNillableNormalizedNumber sets the "normalized_number" field if the given value is not nil.
func (_u *ExistingContactUpdateOne) SetNillableNormalizedNumber(v *string) *ExistingContactUpdateOne {
	if v != nil {
		_u.SetNormalizedNumber(*v)
	}
	return _u
}

// SetRawNumber sets the "raw_number" field.
func (_u *ExistingContactUpdateOne) SetRawNumber(v string) *ExistingContactUpdateOne {
	_u.mutation.SetRawNumber(v)
	return _u
}

// SetNillableRawNumber sets the "raw_number" field if the given value is not nil.
func (_u *ExistingContactUpdateOne) SetNillableRawNumber(v *string) *ExistingContactUpdateOne {
	if v != nil {
		_u.SetRawNumber(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExistingContactUpdateOne) SetName(v string) *ExistingContactUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExistingContactUpdateOne) SetNillableName(v *string) *ExistingContactUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ExistingContactUpdateOne) ClearName() *ExistingContactUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ExistingContactUpdateOne) SetEmail(v string) *ExistingContactUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ExistingContactUpdateOne) SetNillableEmail(v *string) *ExistingContactUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ExistingContactUpdateOne) ClearEmail() *ExistingContactUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ExistingContactUpdateOne) SetCompany(v string) *ExistingContactUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ExistingContactUpdateOne) SetNillableCompany(v *string) *ExistingContactUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ExistingContactUpdateOne) ClearCompany() *ExistingContactUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetSource sets the "source" field.
func (_u *ExistingContactUpdateOne) SetSource(v string) *ExistingContactUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExistingContactUpdateOne) SetNillableSource(v *string) *ExistingContactUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ExistingContactUpdateOne) SetExternalID(v string) *ExistingContactUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ExistingContactUpdateOne) SetNillableExternalID(v *string) *ExistingContactUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *ExistingContactUpdateOne) ClearExternalID() *ExistingContactUpdateOne {
	_u.mutation.ClearExternalID()
	return _u
}

// SetImportedAt sets the "imported_at" field.
func (_u *ExistingContactUpdateOne) SetImportedAt(v time.Time) *ExistingContactUpdateOne {
	_u.mutation.SetImportedAt(v)
	return _u
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_u *ExistingContactUpdateOne) SetNillableImportedAt(v *time.Time) *ExistingContactUpdateOne {
	if v != nil {
		_u.SetImportedAt(*v)
	}
	return _u
}

// Mutation returns the ExistingContactMutation object of the builder.
func (_u *ExistingContactUpdateOne) Mutation() *ExistingContactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExistingContactUpdate builder.
func (_u *ExistingContactUpdateOne) Where(ps ...predicate.ExistingContact) *ExistingContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExistingContactUpdateOne) Select(field string, fields ...string) *ExistingContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExistingContact entity.
func (_u *ExistingContactUpdateOne) Save(ctx context.Context) (*ExistingContact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExistingContactUpdateOne) SaveX(ctx context.Context) *ExistingContact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExistingContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExistingContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExistingContactUpdateOne) check() error {
	if v, ok := _u.mutation.NormalizedNumber(); ok {
		if err := existingcontact.NormalizedNumberValidator(v); err != nil {
			return &ValidationError{Name: "normalized_number", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.normalized_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawNumber(); ok {
		if err := existingcontact.RawNumberValidator(v); err != nil {
			return &ValidationError{Name: "raw_number", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.raw_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := existingcontact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := existingcontact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Company(); ok {
		if err := existingcontact.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.company": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := existingcontact.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalID(); ok {
		if err := existingcontact.ExternalIDValidator(v); err != nil {
			return &ValidationError{Name: "external_id", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.external_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExistingContactUpdateOne) sqlSave(ctx context.Context) (_node *ExistingContact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(existingcontact.Table, existingcontact.Columns, sqlgraph.NewFieldSpec(existingcontact.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExistingContact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, existingcontact.FieldID)
		for _, f := range fields {
			if !existingcontact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != existingcontact.FieldID {
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
	if value, ok := _u.mutation.NormalizedNumber(); ok {
		_spec.SetField(existingcontact.FieldNormalizedNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawNumber(); ok {
		_spec.SetField(existingcontact.FieldRawNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(existingcontact.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(existingcontact.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(existingcontact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(existingcontact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(existingcontact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(existingcontact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(existingcontact.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(existingcontact.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(existingcontact.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.ImportedAt(); ok {
		_spec.SetField(existingcontact.FieldImportedAt, field.TypeTime, value)
	}
	_node = &ExistingContact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{existingcontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
