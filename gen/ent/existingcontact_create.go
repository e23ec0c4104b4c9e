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
	"github.com/reconkit/phone-recon/gen/ent/existingcontact"
)

// ExistingContactCreate is the builder for creating a ExistingContact entity.
type ExistingContactCreate struct {
	config
	mutation *ExistingContactMutation
	hooks    []Hook
}

// SetNormalizedNumber sets the "normalized_number" field.
func (_c *ExistingContactCreate) SetNormalizedNumber(v string) *ExistingContactCreate {
	_c.mutation.SetNormalizedNumber(v)
	return _c
}

// SetRawNumber sets the "raw_number" field.
func (_c *ExistingContactCreate) SetRawNumber(v string) *ExistingContactCreate {
	_c.mutation.SetRawNumber(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ExistingContactCreate) SetName(v string) *ExistingContactCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *ExistingContactCreate) SetNillableName(v *string) *ExistingContactCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ExistingContactCreate) SetEmail(v string) *ExistingContactCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ExistingContactCreate) SetNillableEmail(v *string) *ExistingContactCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *ExistingContactCreate) SetCompany(v string) *ExistingContactCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *ExistingContactCreate) SetNillableCompany(v *string) *ExistingContactCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ExistingContactCreate) SetSource(v string) *ExistingContactCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ExistingContactCreate) SetNillableSource(v *string) *ExistingContactCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *ExistingContactCreate) SetExternalID(v string) *ExistingContactCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_c *ExistingContactCreate) SetNillableExternalID(v *string) *ExistingContactCreate {
	if v != nil {
		_c.SetExternalID(*v)
	}
	return _c
}

// SetImportedAt sets the "imported_at" field.
func (_c *ExistingContactCreate) SetImportedAt(v time.Time) *ExistingContactCreate {
	_c.mutation.SetImportedAt(v)
	return _c
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_c *ExistingContactCreate) SetNillableImportedAt(v *time.Time) *ExistingContactCreate {
	if v != nil {
		_c.SetImportedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExistingContactCreate) SetID(v uuid.UUID) *ExistingContactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExistingContactCreate) SetNillableID(v *uuid.UUID) *ExistingContactCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExistingContactMutation object of the builder.
func (_c *ExistingContactCreate) Mutation() *ExistingContactMutation {
	return _c.mutation
}

// Save creates the ExistingContact in the database.
func (_c *ExistingContactCreate) Save(ctx context.Context) (*ExistingContact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExistingContactCreate) SaveX(ctx context.Context) *ExistingContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExistingContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExistingContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExistingContactCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := existingcontact.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		v := existingcontact.DefaultImportedAt()
		_c.mutation.SetImportedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := existingcontact.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExistingContactCreate) check() error {
	if _, ok := _c.mutation.NormalizedNumber(); !ok {
		return &ValidationError{Name: "normalized_number", err: errors.New(`ent: missing required field "ExistingContact.normalized_number"`)}
	}
	if v, ok := _c.mutation.NormalizedNumber(); ok {
		if err := existingcontact.NormalizedNumberValidator(v); err != nil {
			return &ValidationError{Name: "normalized_number", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.normalized_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawNumber(); !ok {
		return &ValidationError{Name: "raw_number", err: errors.New(`ent: missing required field "ExistingContact.raw_number"`)}
	}
	if v, ok := _c.mutation.RawNumber(); ok {
		if err := existingcontact.RawNumberValidator(v); err != nil {
			return &ValidationError{Name: "raw_number", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.raw_number": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := existingcontact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := existingcontact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Company(); ok {
		if err := existingcontact.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.company": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ExistingContact.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := existingcontact.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.source": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ExternalID(); ok {
		if err := existingcontact.ExternalIDValidator(v); err != nil {
			return &ValidationError{Name: "external_id", err: fmt.Errorf(`ent: validator failed for field "ExistingContact.external_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		return &ValidationError{Name: "imported_at", err: errors.New(`ent: missing required field "ExistingContact.imported_at"`)}
	}
	return nil
}

func (_c *ExistingContactCreate) sqlSave(ctx context.Context) (*ExistingContact, error) {
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

func (_c *ExistingContactCreate) createSpec() (*ExistingContact, *sqlgraph.CreateSpec) {
	var (
		_node = &ExistingContact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(existingcontact.Table, sqlgraph.NewFieldSpec(existingcontact.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.NormalizedNumber(); ok {
		_spec.SetField(existingcontact.FieldNormalizedNumber, field.TypeString, value)
		_node.NormalizedNumber = value
	}
	if value, ok := _c.mutation.RawNumber(); ok {
		_spec.SetField(existingcontact.FieldRawNumber, field.TypeString, value)
		_node.RawNumber = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(existingcontact.FieldName, field.TypeString, value)
		_node.Name = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(existingcontact.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(existingcontact.FieldCompany, field.TypeString, value)
		_node.Company = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(existingcontact.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(existingcontact.FieldExternalID, field.TypeString, value)
		_node.ExternalID = &value
	}
	if value, ok := _c.mutation.ImportedAt(); ok {
		_spec.SetField(existingcontact.FieldImportedAt, field.TypeTime, value)
		_node.ImportedAt = value
	}
	return _node, _spec
}

// ExistingContactCreateBulk is the builder for creating many ExistingContact entities in bulk.
type ExistingContactCreateBulk struct {
	config
	err      error
	builders []*ExistingContactCreate
}

// Save creates the ExistingContact entities in the database.
func (_c *ExistingContactCreateBulk) Save(ctx context.Context) ([]*ExistingContact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExistingContact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExistingContactMutation)
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
func (_c *ExistingContactCreateBulk) SaveX(ctx context.Context) []*ExistingContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExistingContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExistingContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
