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
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
)

// ScreenshotCreate is the builder for creating a Screenshot entity.
type ScreenshotCreate struct {
	config
	mutation *ScreenshotMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *ScreenshotCreate) SetFilename(v string) *ScreenshotCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *ScreenshotCreate) SetFilePath(v string) *ScreenshotCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ScreenshotCreate) SetSource(v string) *ScreenshotCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ScreenshotCreate) SetNillableSource(v *string) *ScreenshotCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *ScreenshotCreate) SetOcrText(v string) *ScreenshotCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *ScreenshotCreate) SetNillableOcrText(v *string) *ScreenshotCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetProcessed sets the "processed" field.
func (_c *ScreenshotCreate) SetProcessed(v bool) *ScreenshotCreate {
	_c.mutation.SetProcessed(v)
	return _c
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_c *ScreenshotCreate) SetNillableProcessed(v *bool) *ScreenshotCreate {
	if v != nil {
		_c.SetProcessed(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ScreenshotCreate) SetNotes(v string) *ScreenshotCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ScreenshotCreate) SetNillableNotes(v *string) *ScreenshotCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *ScreenshotCreate) SetUploadedAt(v time.Time) *ScreenshotCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *ScreenshotCreate) SetNillableUploadedAt(v *time.Time) *ScreenshotCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScreenshotCreate) SetID(v uuid.UUID) *ScreenshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScreenshotCreate) SetNillableID(v *uuid.UUID) *ScreenshotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddNumberIDs adds the "numbers" edge to the ExtractedNumber entity by IDs.
func (_c *ScreenshotCreate) AddNumberIDs(ids ...uuid.UUID) *ScreenshotCreate {
	_c.mutation.AddNumberIDs(ids...)
	return _c
}

// AddNumbers adds the "numbers" edges to the ExtractedNumber entity.
func (_c *ScreenshotCreate) AddNumbers(v ...*ExtractedNumber) *ScreenshotCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNumberIDs(ids...)
}

// Mutation returns the ScreenshotMutation object of the builder.
func (_c *ScreenshotCreate) Mutation() *ScreenshotMutation {
	return _c.mutation
}

// Save creates the Screenshot in the database.
func (_c *ScreenshotCreate) Save(ctx context.Context) (*Screenshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScreenshotCreate) SaveX(ctx context.Context) *Screenshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScreenshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScreenshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScreenshotCreate) defaults() {
	if _, ok := _c.mutation.Processed(); !ok {
		v := screenshot.DefaultProcessed
		_c.mutation.SetProcessed(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := screenshot.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := screenshot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScreenshotCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Screenshot.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := screenshot.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Screenshot.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "Screenshot.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := screenshot.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Screenshot.file_path": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := screenshot.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Screenshot.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Processed(); !ok {
		return &ValidationError{Name: "processed", err: errors.New(`ent: missing required field "Screenshot.processed"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Screenshot.uploaded_at"`)}
	}
	return nil
}

func (_c *ScreenshotCreate) sqlSave(ctx context.Context) (*Screenshot, error) {
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

func (_c *ScreenshotCreate) createSpec() (*Screenshot, *sqlgraph.CreateSpec) {
	var (
		_node = &Screenshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(screenshot.Table, sqlgraph.NewFieldSpec(screenshot.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(screenshot.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(screenshot.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(screenshot.FieldSource, field.TypeString, value)
		_node.Source = &value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(screenshot.FieldOcrText, field.TypeString, value)
		_node.OcrText = &value
	}
	if value, ok := _c.mutation.Processed(); ok {
		_spec.SetField(screenshot.FieldProcessed, field.TypeBool, value)
		_node.Processed = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(screenshot.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(screenshot.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.NumbersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScreenshotCreateBulk is the builder for creating many Screenshot entities in bulk.
type ScreenshotCreateBulk struct {
	config
	err      error
	builders []*ScreenshotCreate
}

// Save creates the Screenshot entities in the database.
func (_c *ScreenshotCreateBulk) Save(ctx context.Context) ([]*Screenshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Screenshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScreenshotMutation)
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
func (_c *ScreenshotCreateBulk) SaveX(ctx context.Context) []*Screenshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScreenshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScreenshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
