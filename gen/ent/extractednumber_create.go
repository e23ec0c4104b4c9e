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
	"github.com/reconkit/phone-recon/gen/ent/extractednumber"
	"github.com/reconkit/phone-recon/gen/ent/group"
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
)

// ExtractedNumberCreate is the builder for creating a ExtractedNumber entity.
type ExtractedNumberCreate struct {
	config
	mutation *ExtractedNumberMutation
	hooks    []Hook
}

// SetScreenshotID sets the "screenshot_id" field.
func (_c *ExtractedNumberCreate) SetScreenshotID(v uuid.UUID) *ExtractedNumberCreate {
	_c.mutation.SetScreenshotID(v)
	return _c
}

// SetRawNumber sets the "raw_number" field.
func (_c *ExtractedNumberCreate) SetRawNumber(v string) *ExtractedNumberCreate {
	_c.mutation.SetRawNumber(v)
	return _c
}

// SetNormalizedNumber sets the "normalized_number" field.
func (_c *ExtractedNumberCreate) SetNormalizedNumber(v string) *ExtractedNumberCreate {
	_c.mutation.SetNormalizedNumber(v)
	return _c
}

// SetNillableNormalizedNumber sets the "normalized_number" field if the given value is not nil.
func (_c *ExtractedNumberCreate) SetNillableNormalizedNumber(v *string) *ExtractedNumberCreate {
	if v != nil {
		_c.SetNormalizedNumber(*v)
	}
	return _c
}

// SetCountryCode sets the "country_code" field.
func (_c *ExtractedNumberCreate) SetCountryCode(v string) *ExtractedNumberCreate {
	_c.mutation.SetCountryCode(v)
	return _c
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_c *ExtractedNumberCreate) SetNillableCountryCode(v *string) *ExtractedNumberCreate {
	if v != nil {
		_c.SetCountryCode(*v)
	}
	return _c
}

// SetCountryName sets the "country_name" field.
func (_c *ExtractedNumberCreate) SetCountryName(v string) *ExtractedNumberCreate {
	_c.mutation.SetCountryName(v)
	return _c
}

// SetNillableCountryName sets the "country_name" field if the given value is not nil.
func (_c *ExtractedNumberCreate) SetNillableCountryName(v *string) *ExtractedNumberCreate {
	if v != nil {
		_c.SetCountryName(*v)
	}
	return _c
}

// SetCarrier sets the "carrier" field.
func (_c *ExtractedNumberCreate) SetCarrier(v string) *ExtractedNumberCreate {
	_c.mutation.SetCarrier(v)
	return _c
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_c *ExtractedNumberCreate) SetNillableCarrier(v *string) *ExtractedNumberCreate {
	if v != nil {
		_c.SetCarrier(*v)
	}
	return _c
}

// SetNumberType sets the "number_type" field.
func (_c *ExtractedNumberCreate) SetNumberType(v string) *ExtractedNumberCreate {
	_c.mutation.SetNumberType(v)
	return _c
}

// SetNillableNumberType sets the "number_type" field if the given value is not nil.
func (_c *ExtractedNumberCreate) SetNillableNumberType(v *string) *ExtractedNumberCreate {
	if v != nil {
		_c.SetNumberType(*v)
	}
	return _c
}

// SetIsValid sets the "is_valid" field.
func (_c *ExtractedNumberCreate) SetIsValid(v bool) *ExtractedNumberCreate {
	_c.mutation.SetIsValid(v)
	return _c
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_c *ExtractedNumberCreate) SetNillableIsValid(v *bool) *ExtractedNumberCreate {
	if v != nil {
		_c.SetIsValid(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *ExtractedNumberCreate) SetExtractedAt(v time.Time) *ExtractedNumberCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *ExtractedNumberCreate) SetNillableExtractedAt(v *time.Time) *ExtractedNumberCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedNumberCreate) SetID(v uuid.UUID) *ExtractedNumberCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedNumberCreate) SetNillableID(v *uuid.UUID) *ExtractedNumberCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetScreenshot sets the "screenshot" edge to the Screenshot entity.
func (_c *ExtractedNumberCreate) SetScreenshot(v *Screenshot) *ExtractedNumberCreate {
	return _c.SetScreenshotID(v.ID)
}

// AddGroupIDs adds the "groups" edge to the Group entity by IDs.
func (_c *ExtractedNumberCreate) AddGroupIDs(ids ...uuid.UUID) *ExtractedNumberCreate {
	_c.mutation.AddGroupIDs(ids...)
	return _c
}

// AddGroups adds the "groups" edges to the Group entity.
func (_c *ExtractedNumberCreate) AddGroups(v ...*Group) *ExtractedNumberCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGroupIDs(ids...)
}

// Mutation returns the ExtractedNumberMutation object of the builder.
func (_c *ExtractedNumberCreate) Mutation() *ExtractedNumberMutation {
	return _c.mutation
}

// Save creates the ExtractedNumber in the database.
func (_c *ExtractedNumberCreate) Save(ctx context.Context) (*ExtractedNumber, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedNumberCreate) SaveX(ctx context.Context) *ExtractedNumber {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedNumberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedNumberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedNumberCreate) defaults() {
	if _, ok := _c.mutation.IsValid(); !ok {
		v := extractednumber.DefaultIsValid
		_c.mutation.SetIsValid(v)
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := extractednumber.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractednumber.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedNumberCreate) check() error {
	if _, ok := _c.mutation.ScreenshotID(); !ok {
		return &ValidationError{Name: "screenshot_id", err: errors.New(`ent: missing required field "ExtractedNumber.screenshot_id"`)}
	}
	if _, ok := _c.mutation.RawNumber(); !ok {
		return &ValidationError{Name: "raw_number", err: errors.New(`ent: missing required field "ExtractedNumber.raw_number"`)}
	}
	if v, ok := _c.mutation.RawNumber(); ok {
		if err := extractednumber.RawNumberValidator(v); err != nil {
			return &ValidationError{Name: "raw_number", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.raw_number": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NormalizedNumber(); ok {
		if err := extractednumber.NormalizedNumberValidator(v); err != nil {
			return &ValidationError{Name: "normalized_number", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.normalized_number": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CountryCode(); ok {
		if err := extractednumber.CountryCodeValidator(v); err != nil {
			return &ValidationError{Name: "country_code", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.country_code": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CountryName(); ok {
		if err := extractednumber.CountryNameValidator(v); err != nil {
			return &ValidationError{Name: "country_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.country_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Carrier(); ok {
		if err := extractednumber.CarrierValidator(v); err != nil {
			return &ValidationError{Name: "carrier", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.carrier": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NumberType(); ok {
		if err := extractednumber.NumberTypeValidator(v); err != nil {
			return &ValidationError{Name: "number_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.number_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		return &ValidationError{Name: "is_valid", err: errors.New(`ent: missing required field "ExtractedNumber.is_valid"`)}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "ExtractedNumber.extracted_at"`)}
	}
	if len(_c.mutation.ScreenshotIDs()) == 0 {
		return &ValidationError{Name: "screenshot", err: errors.New(`ent: missing required edge "ExtractedNumber.screenshot"`)}
	}
	return nil
}

func (_c *ExtractedNumberCreate) sqlSave(ctx context.Context) (*ExtractedNumber, error) {
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

func (_c *ExtractedNumberCreate) createSpec() (*ExtractedNumber, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedNumber{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractednumber.Table, sqlgraph.NewFieldSpec(extractednumber.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RawNumber(); ok {
		_spec.SetField(extractednumber.FieldRawNumber, field.TypeString, value)
		_node.RawNumber = value
	}
	if value, ok := _c.mutation.NormalizedNumber(); ok {
		_spec.SetField(extractednumber.FieldNormalizedNumber, field.TypeString, value)
		_node.NormalizedNumber = &value
	}
	if value, ok := _c.mutation.CountryCode(); ok {
		_spec.SetField(extractednumber.FieldCountryCode, field.TypeString, value)
		_node.CountryCode = &value
	}
	if value, ok := _c.mutation.CountryName(); ok {
		_spec.SetField(extractednumber.FieldCountryName, field.TypeString, value)
		_node.CountryName = &value
	}
	if value, ok := _c.mutation.Carrier(); ok {
		_spec.SetField(extractednumber.FieldCarrier, field.TypeString, value)
		_node.Carrier = &value
	}
	if value, ok := _c.mutation.NumberType(); ok {
		_spec.SetField(extractednumber.FieldNumberType, field.TypeString, value)
		_node.NumberType = &value
	}
	if value, ok := _c.mutation.IsValid(); ok {
		_spec.SetField(extractednumber.FieldIsValid, field.TypeBool, value)
		_node.IsValid = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(extractednumber.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if nodes := _c.mutation.ScreenshotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractednumber.ScreenshotTable,
			Columns: []string{extractednumber.ScreenshotColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screenshot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ScreenshotID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   extractednumber.GroupsTable,
			Columns: extractednumber.GroupsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractedNumberCreateBulk is the builder for creating many ExtractedNumber entities in bulk.
type ExtractedNumberCreateBulk struct {
	config
	err      error
	builders []*ExtractedNumberCreate
}

// Save creates the ExtractedNumber entities in the database.
func (_c *ExtractedNumberCreateBulk) Save(ctx context.Context) ([]*ExtractedNumber, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedNumber, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedNumberMutation)
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
func (_c *ExtractedNumberCreateBulk) SaveX(ctx context.Context) []*ExtractedNumber {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedNumberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedNumberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
