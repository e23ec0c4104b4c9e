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
	"github.com/reconkit/phone-recon/gen/ent/predicate"
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
)

// ScreenshotUpdate is the builder for updating Screenshot entities.
type ScreenshotUpdate struct {
	config
	hooks    []Hook
	mutation *ScreenshotMutation
}

// Where appends a list predicates to the ScreenshotUpdate builder.
func (_u *ScreenshotUpdate) Where(ps ...predicate.Screenshot) *ScreenshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ScreenshotUpdate) SetFilename(v string) *ScreenshotUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ScreenshotUpdate) SetNillableFilename(v *string) *ScreenshotUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ScreenshotUpdate) SetFilePath(v string) *ScreenshotUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ScreenshotUpdate) SetNillableFilePath(v *string) *ScreenshotUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ScreenshotUpdate) SetSource(v string) *ScreenshotUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ScreenshotUpdate) SetNillableSource(v *string) *ScreenshotUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *ScreenshotUpdate) ClearSource() *ScreenshotUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ScreenshotUpdate) SetOcrText(v string) *ScreenshotUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ScreenshotUpdate) SetNillableOcrText(v *string) *ScreenshotUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ScreenshotUpdate) ClearOcrText() *ScreenshotUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *ScreenshotUpdate) SetProcessed(v bool) *ScreenshotUpdate {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *ScreenshotUpdate) SetNillableProcessed(v *bool) *ScreenshotUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ScreenshotUpdate) SetNotes(v string) *ScreenshotUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ScreenshotUpdate) SetNillableNotes(v *string) *ScreenshotUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ScreenshotUpdate) ClearNotes() *ScreenshotUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ScreenshotUpdate) SetUploadedAt(v time.Time) *ScreenshotUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ScreenshotUpdate) SetNillableUploadedAt(v *time.Time) *ScreenshotUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddNumberIDs adds the "numbers" edge to the ExtractedNumber entity by IDs.
func (_u *ScreenshotUpdate) AddNumberIDs(ids ...uuid.UUID) *ScreenshotUpdate {
	_u.mutation.AddNumberIDs(ids...)
	return _u
}

// AddNumbers adds the "numbers" edges to the ExtractedNumber entity.
func (_u *ScreenshotUpdate) AddNumbers(v ...*ExtractedNumber) *ScreenshotUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNumberIDs(ids...)
}

// Mutation returns the ScreenshotMutation object of the builder.
func (_u *ScreenshotUpdate) Mutation() *ScreenshotMutation {
	return _u.mutation
}

// ClearNumbers clears all "numbers" edges to the ExtractedNumber entity.
func (_u *ScreenshotUpdate) ClearNumbers() *ScreenshotUpdate {
	_u.mutation.ClearNumbers()
	return _u
}

// RemoveNumberIDs removes the "numbers" edge to ExtractedNumber entities by IDs.
func (_u *ScreenshotUpdate) RemoveNumberIDs(ids ...uuid.UUID) *ScreenshotUpdate {
	_u.mutation.RemoveNumberIDs(ids...)
	return _u
}

// RemoveNumbers removes "numbers" edges to ExtractedNumber entities.
func (_u *ScreenshotUpdate) RemoveNumbers(v ...*ExtractedNumber) *ScreenshotUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNumberIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScreenshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScreenshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScreenshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScreenshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScreenshotUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := screenshot.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Screenshot.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := screenshot.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Screenshot.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := screenshot.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Screenshot.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ScreenshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(screenshot.Table, screenshot.Columns, sqlgraph.NewFieldSpec(screenshot.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(screenshot.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(screenshot.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(screenshot.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(screenshot.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(screenshot.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(screenshot.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(screenshot.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(screenshot.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(screenshot.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(screenshot.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.NumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screenshot.NumbersTable,
			Columns: []string{screenshot.NumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractednumber.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNumbersIDs(); len(nodes) > 0 && !_u.mutation.NumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screenshot.NumbersTable,
			Columns: []string{screenshot.NumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractednumber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NumbersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screenshot.NumbersTable,
			Columns: []string{screenshot.NumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractednumber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{screenshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScreenshotUpdateOne is the builder for updating a single Screenshot entity.
type ScreenshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScreenshotMutation
}

// SetFilename sets the "filename" field.
func (_u *ScreenshotUpdateOne) SetFilename(v string) *ScreenshotUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ScreenshotUpdateOne) SetNillableFilename(v *string) *ScreenshotUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ScreenshotUpdateOne) SetFilePath(v string) *ScreenshotUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ScreenshotUpdateOne) SetNillableFilePath(v *string) *ScreenshotUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ScreenshotUpdateOne) SetSource(v string) *ScreenshotUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ScreenshotUpdateOne) SetNillableSource(v *string) *ScreenshotUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *ScreenshotUpdateOne) ClearSource() *ScreenshotUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ScreenshotUpdateOne) SetOcrText(v string) *ScreenshotUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ScreenshotUpdateOne) SetNillableOcrText(v *string) *ScreenshotUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ScreenshotUpdateOne) ClearOcrText() *ScreenshotUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *ScreenshotUpdateOne) SetProcessed(v bool) *ScreenshotUpdateOne {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *ScreenshotUpdateOne) SetNillableProcessed(v *bool) *ScreenshotUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ScreenshotUpdateOne) SetNotes(v string) *ScreenshotUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ScreenshotUpdateOne) SetNillableNotes(v *string) *ScreenshotUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ScreenshotUpdateOne) ClearNotes() *ScreenshotUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ScreenshotUpdateOne) SetUploadedAt(v time.Time) *ScreenshotUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ScreenshotUpdateOne) SetNillableUploadedAt(v *time.Time) *ScreenshotUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddNumberIDs adds the "numbers" edge to the ExtractedNumber entity by IDs.
func (_u *ScreenshotUpdateOne) AddNumberIDs(ids ...uuid.UUID) *ScreenshotUpdateOne {
	_u.mutation.AddNumberIDs(ids...)
	return _u
}

// AddNumbers adds the "numbers" edges to the ExtractedNumber entity.
func (_u *ScreenshotUpdateOne) AddNumbers(v ...*ExtractedNumber) *ScreenshotUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNumberIDs(ids...)
}

// Mutation returns the ScreenshotMutation object of the builder.
func (_u *ScreenshotUpdateOne) Mutation() *ScreenshotMutation {
	return _u.mutation
}

// ClearNumbers clears all "numbers" edges to the ExtractedNumber entity.
func (_u *ScreenshotUpdateOne) ClearNumbers() *ScreenshotUpdateOne {
	_u.mutation.ClearNumbers()
	return _u
}

// RemoveNumberIDs removes the "numbers" edge to ExtractedNumber entities by IDs.
func (_u *ScreenshotUpdateOne) RemoveNumberIDs(ids ...uuid.UUID) *ScreenshotUpdateOne {
	_u.mutation.RemoveNumberIDs(ids...)
	return _u
}

// RemoveNumbers removes "numbers" edges to ExtractedNumber entities.
func (_u *ScreenshotUpdateOne) RemoveNumbers(v ...*ExtractedNumber) *ScreenshotUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNumberIDs(ids...)
}

// Where appends a list predicates to the ScreenshotUpdate builder.
func (_u *ScreenshotUpdateOne) Where(ps ...predicate.Screenshot) *ScreenshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScreenshotUpdateOne) Select(field string, fields ...string) *ScreenshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Screenshot entity.
func (_u *ScreenshotUpdateOne) Save(ctx context.Context) (*Screenshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScreenshotUpdateOne) SaveX(ctx context.Context) *Screenshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScreenshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScreenshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScreenshotUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := screenshot.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Screenshot.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := screenshot.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Screenshot.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := screenshot.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Screenshot.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ScreenshotUpdateOne) sqlSave(ctx context.Context) (_node *Screenshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(screenshot.Table, screenshot.Columns, sqlgraph.NewFieldSpec(screenshot.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Screenshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, screenshot.FieldID)
		for _, f := range fields {
			if !screenshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != screenshot.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(screenshot.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(screenshot.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(screenshot.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(screenshot.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(screenshot.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(screenshot.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(screenshot.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(screenshot.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(screenshot.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(screenshot.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.NumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screenshot.NumbersTable,
			Columns: []string{screenshot.NumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractednumber.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNumbersIDs(); len(nodes) > 0 && !_u.mutation.NumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screenshot.NumbersTable,
			Columns: []string{screenshot.NumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractednumber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NumbersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screenshot.NumbersTable,
			Columns: []string{screenshot.NumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractednumber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Screenshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{screenshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
