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
	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/gen/ent/extractednumber"
	"github.com/reconkit/phone-recon/gen/ent/group"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
)

// ExtractedNumberUpdate is the builder for updating ExtractedNumber entities.
type ExtractedNumberUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedNumberMutation
}

// Where appends a list predicates to the ExtractedNumberUpdate builder.
func (_u *ExtractedNumberUpdate) Where(ps ...predicate.ExtractedNumber) *ExtractedNumberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScreenshotID sets the "screenshot_id" field.
func (_u *ExtractedNumberUpdate) SetScreenshotID(v uuid.UUID) *ExtractedNumberUpdate {
	_u.mutation.SetScreenshotID(v)
	return _u
}

// SetNillableScreenshotID sets the "screenshot_id" field if the given value is not nil.
func (_u *ExtractedNumberUpdate) SetNillableScreenshotID(v *uuid.UUID) *ExtractedNumberUpdate {
	if v != nil {
		_u.SetScreenshotID(*v)
	}
	return _u
}

// SetRawNumber sets the "raw_number" field.
func (_u *ExtractedNumberUpdate) SetRawNumber(v string) *ExtractedNumberUpdate {
	_u.mutation.SetRawNumber(v)
	return _u
}

// SetNillableRawNumber sets the "raw_number" field if the given value is not nil.
func (_u *ExtractedNumberUpdate) SetNillableRawNumber(v *string) *ExtractedNumberUpdate {
	if v != nil {
		_u.SetRawNumber(*v)
	}
	return _u
}

// SetNormalizedNumber sets the "normalized_number" field.
func (_u *ExtractedNumberUpdate) SetNormalizedNumber(v string) *ExtractedNumberUpdate {
	_u.mutation.SetNormalizedNumber(v)
	return _u
}

// SetNillableNormalizedNumber sets the "normalized_number" field if the given value is not nil.
func (_u *ExtractedNumberUpdate) SetNillableNormalizedNumber(v *string) *ExtractedNumberUpdate {
	if v != nil {
		_u.SetNormalizedNumber(*v)
	}
	return _u
}

// ClearNormalizedNumber clears the value of the "normalized_number" field.
func (_u *ExtractedNumberUpdate) ClearNormalizedNumber() *ExtractedNumberUpdate {
	_u.mutation.ClearNormalizedNumber()
	return _u
}

// SetCountryCode sets the "country_code" field.
func (_u *ExtractedNumberUpdate) SetCountryCode(v string) *ExtractedNumberUpdate {
	_u.mutation.SetCountryCode(v)
	return _u
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_u *ExtractedNumberUpdate) SetNillableCountryCode(v *string) *ExtractedNumberUpdate {
	if v != nil {
		_u.SetCountryCode(*v)
	}
	return _u
}

// ClearCountryCode clears the value of the "country_code" field.
func (_u *ExtractedNumberUpdate) ClearCountryCode() *ExtractedNumberUpdate {
	_u.mutation.ClearCountryCode()
	return _u
}

// SetCountryName sets the "country_name" field.
func (_u *ExtractedNumberUpdate) SetCountryName(v string) *ExtractedNumberUpdate {
	_u.mutation.SetCountryName(v)
	return _u
}

// SetNillableCountryName sets the "country_name" field if the given value is not nil.
func (_u *ExtractedNumberUpdate) SetNillableCountryName(v *string) *ExtractedNumberUpdate {
	if v != nil {
		_u.SetCountryName(*v)
	}
	return _u
}

// ClearCountryName clears the value of the "country_name" field.
func (_u *ExtractedNumberUpdate) ClearCountryName() *ExtractedNumberUpdate {
	_u.mutation.ClearCountryName()
	return _u
}

// SetCarrier sets the "carrier" field.
func (_u *ExtractedNumberUpdate) SetCarrier(v string) *ExtractedNumberUpdate {
	_u.mutation.SetCarrier(v)
	return _u
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_u *ExtractedNumberUpdate) SetNillableCarrier(v *string) *ExtractedNumberUpdate {
	if v != nil {
		_u.SetCarrier(*v)
	}
	return _u
}

// ClearCarrier clears the value of the "carrier" field.
func (_u *ExtractedNumberUpdate) ClearCarrier() *ExtractedNumberUpdate {
	_u.mutation.ClearCarrier()
	return _u
}

// SetNumberType sets the "number_type" field.
func (_u *ExtractedNumberUpdate) SetNumberType(v string) *ExtractedNumberUpdate {
	_u.mutation.SetNumberType(v)
	return _u
}

// SetNillableNumberType sets the "number_type" field if the given value is not nil.
func (_u *ExtractedNumberUpdate) SetNillableNumberType(v *string) *ExtractedNumberUpdate {
	if v != nil {
		_u.SetNumberType(*v)
	}
	return _u
}

// ClearNumberType clears the value of the "number_type" field.
func (_u *ExtractedNumberUpdate) ClearNumberType() *ExtractedNumberUpdate {
	_u.mutation.ClearNumberType()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *ExtractedNumberUpdate) SetIsValid(v bool) *ExtractedNumberUpdate {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *ExtractedNumberUpdate) SetNillableIsValid(v *bool) *ExtractedNumberUpdate {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *ExtractedNumberUpdate) SetExtractedAt(v time.Time) *ExtractedNumberUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *ExtractedNumberUpdate) SetNillableExtractedAt(v *time.Time) *ExtractedNumberUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetScreenshot sets the "screenshot" edge to the Screenshot entity.
func (_u *ExtractedNumberUpdate) SetScreenshot(v *Screenshot) *ExtractedNumberUpdate {
	return _u.SetScreenshotID(v.ID)
}

// AddGroupIDs adds the "groups" edge to the Group entity by IDs.
func (_u *ExtractedNumberUpdate) AddGroupIDs(ids ...uuid.UUID) *ExtractedNumberUpdate {
	_u.mutation.AddGroupIDs(ids...)
	return _u
}

// AddGroups adds the "groups" edges to the Group entity.
func (_u *ExtractedNumberUpdate) AddGroups(v ...*Group) *ExtractedNumberUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupIDs(ids...)
}

// Mutation returns the ExtractedNumberMutation object of the builder.
func (_u *ExtractedNumberUpdate) Mutation() *ExtractedNumberMutation {
	return _u.mutation
}

// ClearScreenshot clears the "screenshot" edge to the Screenshot entity.
func (_u *ExtractedNumberUpdate) ClearScreenshot() *ExtractedNumberUpdate {
	_u.mutation.ClearScreenshot()
	return _u
}

// ClearGroups clears all "groups" edges to the Group entity.
func (_u *ExtractedNumberUpdate) ClearGroups() *ExtractedNumberUpdate {
	_u.mutation.ClearGroups()
	return _u
}

// RemoveGroupIDs removes the "groups" edge to Group entities by IDs.
func (_u *ExtractedNumberUpdate) RemoveGroupIDs(ids ...uuid.UUID) *ExtractedNumberUpdate {
	_u.mutation.RemoveGroupIDs(ids...)
	return _u
}

// RemoveGroups removes "groups" edges to Group entities.
func (_u *ExtractedNumberUpdate) RemoveGroups(v ...*Group) *ExtractedNumberUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedNumberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedNumberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedNumberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedNumberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedNumberUpdate) check() error {
	if v, ok := _u.mutation.RawNumber(); ok {
		if err := extractednumber.RawNumberValidator(v); err != nil {
			return &ValidationError{Name: "raw_number", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.raw_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedNumber(); ok {
		if err := extractednumber.NormalizedNumberValidator(v); err != nil {
			return &ValidationError{Name: "normalized_number", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.normalized_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryCode(); ok {
		if err := extractednumber.CountryCodeValidator(v); err != nil {
			return &ValidationError{Name: "country_code", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.country_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryName(); ok {
		if err := extractednumber.CountryNameValidator(v); err != nil {
			return &ValidationError{Name: "country_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.country_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Carrier(); ok {
		if err := extractednumber.CarrierValidator(v); err != nil {
			return &ValidationError{Name: "carrier", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.carrier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumberType(); ok {
		if err := extractednumber.NumberTypeValidator(v); err != nil {
			return &ValidationError{Name: "number_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.number_type": %w`, err)}
		}
	}
	if _u.mutation.ScreenshotCleared() && len(_u.mutation.ScreenshotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedNumber.screenshot"`)
	}
	return nil
}

func (_u *ExtractedNumberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractednumber.Table, extractednumber.Columns, sqlgraph.NewFieldSpec(extractednumber.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawNumber(); ok {
		_spec.SetField(extractednumber.FieldRawNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedNumber(); ok {
		_spec.SetField(extractednumber.FieldNormalizedNumber, field.TypeString, value)
	}
	if _u.mutation.NormalizedNumberCleared() {
		_spec.ClearField(extractednumber.FieldNormalizedNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CountryCode(); ok {
		_spec.SetField(extractednumber.FieldCountryCode, field.TypeString, value)
	}
	if _u.mutation.CountryCodeCleared() {
		_spec.ClearField(extractednumber.FieldCountryCode, field.TypeString)
	}
	if value, ok := _u.mutation.CountryName(); ok {
		_spec.SetField(extractednumber.FieldCountryName, field.TypeString, value)
	}
	if _u.mutation.CountryNameCleared() {
		_spec.ClearField(extractednumber.FieldCountryName, field.TypeString)
	}
	if value, ok := _u.mutation.Carrier(); ok {
		_spec.SetField(extractednumber.FieldCarrier, field.TypeString, value)
	}
	if _u.mutation.CarrierCleared() {
		_spec.ClearField(extractednumber.FieldCarrier, field.TypeString)
	}
	if value, ok := _u.mutation.NumberType(); ok {
		_spec.SetField(extractednumber.FieldNumberType, field.TypeString, value)
	}
	if _u.mutation.NumberTypeCleared() {
		_spec.ClearField(extractednumber.FieldNumberType, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(extractednumber.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(extractednumber.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.ScreenshotCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScreenshotIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupsIDs(); len(nodes) > 0 && !_u.mutation.GroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractednumber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedNumberUpdateOne is the builder for updating a single ExtractedNumber entity.
type ExtractedNumberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedNumberMutation
}

// SetScreenshotID sets the "screenshot_id" field.
func (_u *ExtractedNumberUpdateOne) SetScreenshotID(v uuid.UUID) *ExtractedNumberUpdateOne {
	_u.mutation.SetScreenshotID(v)
	return _u
}

// SetNillableScreenshotID sets the "screenshot_id" field if the given value is not nil.
func (_u *ExtractedNumberUpdateOne) SetNillableScreenshotID(v *uuid.UUID) *ExtractedNumberUpdateOne {
	if v != nil {
		_u.SetScreenshotID(*v)
	}
	return _u
}

// SetRawNumber sets the "raw_number" field.
func (_u *ExtractedNumberUpdateOne) SetRawNumber(v string) *ExtractedNumberUpdateOne {
	_u.mutation.SetRawNumber(v)
	return _u
}

// SetNillableRawNumber sets the "raw_number" field if the given value is not nil.
func (_u *ExtractedNumberUpdateOne) SetNillableRawNumber(v *string) *ExtractedNumberUpdateOne {
	if v != nil {
		_u.SetRawNumber(*v)
	}
	return _u
}

// SetNormalizedNumber sets the "normalized_number" field.
func (_u *ExtractedNumberUpdateOne) SetNormalizedNumber(v string) *ExtractedNumberUpdateOne {
	_u.mutation.SetNormalizedNumber(v)
	return _u
}

// SetNillableNormalizedNumber sets the "normalized_number" field if the given value is not nil.
func (_u *ExtractedNumberUpdateOne) SetNillableNormalizedNumber(v *string) *ExtractedNumberUpdateOne {
	if v != nil {
		_u.SetNormalizedNumber(*v)
	}
	return _u
}

// ClearNormalizedNumber clears the value of the "normalized_number" field.
func (_u *ExtractedNumberUpdateOne) ClearNormalizedNumber() *ExtractedNumberUpdateOne {
	_u.mutation.ClearNormalizedNumber()
	return _u
}

// SetCountryCode sets the "country_code" field.
func (_u *ExtractedNumberUpdateOne) SetCountryCode(v string) *ExtractedNumberUpdateOne {
	_u.mutation.SetCountryCode(v)
	return _u
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_u *ExtractedNumberUpdateOne) SetNillableCountryCode(v *string) *ExtractedNumberUpdateOne {
	if v != nil {
		_u.SetCountryCode(*v)
	}
	return _u
}

// ClearCountryCode clears the value of the "country_code" field.
func (_u *ExtractedNumberUpdateOne) ClearCountryCode() *ExtractedNumberUpdateOne {
	_u.mutation.ClearCountryCode()
	return _u
}

// SetCountryName sets the "country_name" field.
func (_u *ExtractedNumberUpdateOne) SetCountryName(v string) *ExtractedNumberUpdateOne {
	_u.mutation.SetCountryName(v)
	return _u
}

// SetNillableCountryName sets the "country_name" field if the given value is not nil.
func (_u *ExtractedNumberUpdateOne) SetNillableCountryName(v *string) *ExtractedNumberUpdateOne {
	if v != nil {
		_u.SetCountryName(*v)
	}
	return _u
}

// ClearCountryName clears the value of the "country_name" field.
func (_u *ExtractedNumberUpdateOne) ClearCountryName() *ExtractedNumberUpdateOne {
	_u.mutation.ClearCountryName()
	return _u
}

// SetCarrier sets the "carrier" field.
func (_u *ExtractedNumberUpdateOne) SetCarrier(v string) *ExtractedNumberUpdateOne {
	_u.mutation.SetCarrier(v)
	return _u
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_u *ExtractedNumberUpdateOne) SetNillableCarrier(v *string) *ExtractedNumberUpdateOne {
	if v != nil {
		_u.SetCarrier(*v)
	}
	return _u
}

// ClearCarrier clears the value of the "carrier" field.
func (_u *ExtractedNumberUpdateOne) ClearCarrier() *ExtractedNumberUpdateOne {
	_u.mutation.ClearCarrier()
	return _u
}

// SetNumberType sets the "number_type" field.
func (_u *ExtractedNumberUpdateOne) SetNumberType(v string) *ExtractedNumberUpdateOne {
	_u.mutation.SetNumberType(v)
	return _u
}

// SetNillableNumberType sets the "number_type" field if the given value is not nil.
func (_u *ExtractedNumberUpdateOne) SetNillableNumberType(v *string) *ExtractedNumberUpdateOne {
	if v != nil {
		_u.SetNumberType(*v)
	}
	return _u
}

// ClearNumberType clears the value of the "number_type" field.
func (_u *ExtractedNumberUpdateOne) ClearNumberType() *ExtractedNumberUpdateOne {
	_u.mutation.ClearNumberType()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *ExtractedNumberUpdateOne) SetIsValid(v bool) *ExtractedNumberUpdateOne {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *ExtractedNumberUpdateOne) SetNillableIsValid(v *bool) *ExtractedNumberUpdateOne {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *ExtractedNumberUpdateOne) SetExtractedAt(v time.Time) *ExtractedNumberUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *ExtractedNumberUpdateOne) SetNillableExtractedAt(v *time.Time) *ExtractedNumberUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetScreenshot sets the "screenshot" edge to the Screenshot entity.
func (_u *ExtractedNumberUpdateOne) SetScreenshot(v *Screenshot) *ExtractedNumberUpdateOne {
	return _u.SetScreenshotID(v.ID)
}

// AddGroupIDs adds the "groups" edge to the Group entity by IDs.
func (_u *ExtractedNumberUpdateOne) AddGroupIDs(ids ...uuid.UUID) *ExtractedNumberUpdateOne {
	_u.mutation.AddGroupIDs(ids...)
	return _u
}

// AddGroups adds the "groups" edges to the Group entity.
func (_u *ExtractedNumberUpdateOne) AddGroups(v ...*Group) *ExtractedNumberUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupIDs(ids...)
}

// Mutation returns the ExtractedNumberMutation object of the builder.
func (_u *ExtractedNumberUpdateOne) Mutation() *ExtractedNumberMutation {
	return _u.mutation
}

// ClearScreenshot clears the "screenshot" edge to the Screenshot entity.
func (_u *ExtractedNumberUpdateOne) ClearScreenshot() *ExtractedNumberUpdateOne {
	_u.mutation.ClearScreenshot()
	return _u
}

// ClearGroups clears all "groups" edges to the Group entity.
func (_u *ExtractedNumberUpdateOne) ClearGroups() *ExtractedNumberUpdateOne {
	_u.mutation.ClearGroups()
	return _u
}

// RemoveGroupIDs removes the "groups" edge to Group entities by IDs.
func (_u *ExtractedNumberUpdateOne) RemoveGroupIDs(ids ...uuid.UUID) *ExtractedNumberUpdateOne {
	_u.mutation.RemoveGroupIDs(ids...)
	return _u
}

// RemoveGroups removes "groups" edges to Group entities.
func (_u *ExtractedNumberUpdateOne) RemoveGroups(v ...*Group) *ExtractedNumberUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupIDs(ids...)
}

// Where appends a list predicates to the ExtractedNumberUpdate builder.
func (_u *ExtractedNumberUpdateOne) Where(ps ...predicate.ExtractedNumber) *ExtractedNumberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedNumberUpdateOne) Select(field string, fields ...string) *ExtractedNumberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedNumber entity.
func (_u *ExtractedNumberUpdateOne) Save(ctx context.Context) (*ExtractedNumber, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedNumberUpdateOne) SaveX(ctx context.Context) *ExtractedNumber {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedNumberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedNumberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedNumberUpdateOne) check() error {
	if v, ok := _u.mutation.RawNumber(); ok {
		if err := extractednumber.RawNumberValidator(v); err != nil {
			return &ValidationError{Name: "raw_number", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.raw_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedNumber(); ok {
		if err := extractednumber.NormalizedNumberValidator(v); err != nil {
			return &ValidationError{Name: "normalized_number", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.normalized_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryCode(); ok {
		if err := extractednumber.CountryCodeValidator(v); err != nil {
			return &ValidationError{Name: "country_code", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.country_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryName(); ok {
		if err := extractednumber.CountryNameValidator(v); err != nil {
			return &ValidationError{Name: "country_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.country_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Carrier(); ok {
		if err := extractednumber.CarrierValidator(v); err != nil {
			return &ValidationError{Name: "carrier", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.carrier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumberType(); ok {
		if err := extractednumber.NumberTypeValidator(v); err != nil {
			return &ValidationError{Name: "number_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedNumber.number_type": %w`, err)}
		}
	}
	if _u.mutation.ScreenshotCleared() && len(_u.mutation.ScreenshotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedNumber.screenshot"`)
	}
	return nil
}

func (_u *ExtractedNumberUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedNumber, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractednumber.Table, extractednumber.Columns, sqlgraph.NewFieldSpec(extractednumber.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedNumber.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractednumber.FieldID)
		for _, f := range fields {
			if !extractednumber.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractednumber.FieldID {
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
	if value, ok := _u.mutation.RawNumber(); ok {
		_spec.SetField(extractednumber.FieldRawNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedNumber(); ok {
		_spec.SetField(extractednumber.FieldNormalizedNumber, field.TypeString, value)
	}
	if _u.mutation.NormalizedNumberCleared() {
		_spec.ClearField(extractednumber.FieldNormalizedNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CountryCode(); ok {
		_spec.SetField(extractednumber.FieldCountryCode, field.TypeString, value)
	}
	if _u.mutation.CountryCodeCleared() {
		_spec.ClearField(extractednumber.FieldCountryCode, field.TypeString)
	}
	if value, ok := _u.mutation.CountryName(); ok {
		_spec.SetField(extractednumber.FieldCountryName, field.TypeString, value)
	}
	if _u.mutation.CountryNameCleared() {
		_spec.ClearField(extractednumber.FieldCountryName, field.TypeString)
	}
	if value, ok := _u.mutation.Carrier(); ok {
		_spec.SetField(extractednumber.FieldCarrier, field.TypeString, value)
	}
	if _u.mutation.CarrierCleared() {
		_spec.ClearField(extractednumber.FieldCarrier, field.TypeString)
	}
	if value, ok := _u.mutation.NumberType(); ok {
		_spec.SetField(extractednumber.FieldNumberType, field.TypeString, value)
	}
	if _u.mutation.NumberTypeCleared() {
		_spec.ClearField(extractednumber.FieldNumberType, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(extractednumber.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(extractednumber.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.ScreenshotCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScreenshotIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupsIDs(); len(nodes) > 0 && !_u.mutation.GroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedNumber{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractednumber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
