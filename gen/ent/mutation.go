// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/gen/ent/comparisonsnapshot"
	"github.com/reconkit/phone-recon/gen/ent/existingcontact"
	"github.com/reconkit/phone-recon/gen/ent/extractednumber"
	"github.com/reconkit/phone-recon/gen/ent/group"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeComparisonSnapshot = "ComparisonSnapshot"
	TypeExistingContact    = "ExistingContact"
	TypeExtractedNumber    = "ExtractedNumber"
	TypeGroup              = "Group"
	TypeScreenshot         = "Screenshot"
)

// ComparisonSnapshotMutation represents an operation that mutates the ComparisonSnapshot nodes in the graph.
type ComparisonSnapshotMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	total_extracted    *int
	addtotal_extracted *int
	total_contacts     *int
	addtotal_contacts  *int
	exact_matches      *int
	addexact_matches   *int
	partial_matches    *int
	addpartial_matches *int
	new_numbers        *int
	addnew_numbers     *int
	not_compared       *int
	addnot_compared    *int
	match_rate         *float64
	addmatch_rate      *float64
	compared_at        *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ComparisonSnapshot, error)
	predicates         []predicate.ComparisonSnapshot
}

var _ ent.Mutation = (*ComparisonSnapshotMutation)(nil)

// comparisonsnapshotOption allows management of the mutation configuration using functional options.
type comparisonsnapshotOption func(*ComparisonSnapshotMutation)

// newComparisonSnapshotMutation creates new mutation for the ComparisonSnapshot entity.
func newComparisonSnapshotMutation(c config, op Op, opts ...comparisonsnapshotOption) *ComparisonSnapshotMutation {
	m := &ComparisonSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeComparisonSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withComparisonSnapshotID sets the ID field of the mutation.
func withComparisonSnapshotID(id uuid.UUID) comparisonsnapshotOption {
	return func(m *ComparisonSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ComparisonSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ComparisonSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ComparisonSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComparisonSnapshot sets the old ComparisonSnapshot of the mutation.
func withComparisonSnapshot(node *ComparisonSnapshot) comparisonsnapshotOption {
	return func(m *ComparisonSnapshotMutation) {
		m.oldValue = func(context.Context) (*ComparisonSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ComparisonSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ComparisonSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ComparisonSnapshot entities.
func (m *ComparisonSnapshotMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ComparisonSnapshotMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ComparisonSnapshotMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ComparisonSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTotalExtracted sets the "total_extracted" field.
func (m *ComparisonSnapshotMutation) SetTotalExtracted(i int) {
	m.total_extracted = &i
	m.addtotal_extracted = nil
}

// TotalExtracted returns the value of the "total_extracted" field in the mutation.
func (m *ComparisonSnapshotMutation) TotalExtracted() (r int, exists bool) {
	v := m.total_extracted
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalExtracted returns the old "total_extracted" field's value of the ComparisonSnapshot entity.
// If the ComparisonSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonSnapshotMutation) OldTotalExtracted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalExtracted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalExtracted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalExtracted: %w", err)
	}
	return oldValue.TotalExtracted, nil
}

// AddTotalExtracted adds i to the "total_extracted" field.
func (m *ComparisonSnapshotMutation) AddTotalExtracted(i int) {
	if m.addtotal_extracted != nil {
		*m.addtotal_extracted += i
	} else {
		m.addtotal_extracted = &i
	}
}

// AddedTotalExtracted returns the value that was added to the "total_extracted" field in this mutation.
func (m *ComparisonSnapshotMutation) AddedTotalExtracted() (r int, exists bool) {
	v := m.addtotal_extracted
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalExtracted resets all changes to the "total_extracted" field.
func (m *ComparisonSnapshotMutation) ResetTotalExtracted() {
	m.total_extracted = nil
	m.addtotal_extracted = nil
}

// SetTotalContacts sets the "total_contacts" field.
func (m *ComparisonSnapshotMutation) SetTotalContacts(i int) {
	m.total_contacts = &i
	m.addtotal_contacts = nil
}

// TotalContacts returns the value of the "total_contacts" field in the mutation.
func (m *ComparisonSnapshotMutation) TotalContacts() (r int, exists bool) {
	v := m.total_contacts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalContacts returns the old "total_contacts" field's value of the ComparisonSnapshot entity.
// If the ComparisonSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonSnapshotMutation) OldTotalContacts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalContacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalContacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalContacts: %w", err)
	}
	return oldValue.TotalContacts, nil
}

// AddTotalContacts adds i to the "total_contacts" field.
func (m *ComparisonSnapshotMutation) AddTotalContacts(i int) {
	if m.addtotal_contacts != nil {
		*m.addtotal_contacts += i
	} else {
		m.addtotal_contacts = &i
	}
}

// AddedTotalContacts returns the value that was added to the "total_contacts" field in this mutation.
func (m *ComparisonSnapshotMutation) AddedTotalContacts() (r int, exists bool) {
	v := m.addtotal_contacts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalContacts resets all changes to the "total_contacts" field.
func (m *ComparisonSnapshotMutation) ResetTotalContacts() {
	m.total_contacts = nil
	m.addtotal_contacts = nil
}

// SetExactMatches sets the "exact_matches" field.
func (m *ComparisonSnapshotMutation) SetExactMatches(i int) {
	m.exact_matches = &i
	m.addexact_matches = nil
}

// ExactMatches returns the value of the "exact_matches" field in the mutation.
func (m *ComparisonSnapshotMutation) ExactMatches() (r int, exists bool) {
	v := m.exact_matches
	if v == nil {
		return
	}
	return *v, true
}

// OldExactMatches returns the old "exact_matches" field's value of the ComparisonSnapshot entity.
// If the ComparisonSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonSnapshotMutation) OldExactMatches(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExactMatches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExactMatches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExactMatches: %w", err)
	}
	return oldValue.ExactMatches, nil
}

// AddExactMatches adds i to the "exact_matches" field.
func (m *ComparisonSnapshotMutation) AddExactMatches(i int) {
	if m.addexact_matches != nil {
		*m.addexact_matches += i
	} else {
		m.addexact_matches = &i
	}
}

// AddedExactMatches returns the value that was added to the "exact_matches" field in this mutation.
func (m *ComparisonSnapshotMutation) AddedExactMatches() (r int, exists bool) {
	v := m.addexact_matches
	if v == nil {
		return
	}
	return *v, true
}

// ResetExactMatches resets all changes to the "exact_matches" field.
func (m *ComparisonSnapshotMutation) ResetExactMatches() {
	m.exact_matches = nil
	m.addexact_matches = nil
}

// SetPartialMatches sets the "partial_matches" field.
func (m *ComparisonSnapshotMutation) SetPartialMatches(i int) {
	m.partial_matches = &i
	m.addpartial_matches = nil
}

// PartialMatches returns the value of the "partial_matches" field in the mutation.
func (m *ComparisonSnapshotMutation) PartialMatches() (r int, exists bool) {
	v := m.partial_matches
	if v == nil {
		return
	}
	return *v, true
}

// OldPartialMatches returns the old "partial_matches" field's value of the ComparisonSnapshot entity.
// If the ComparisonSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonSnapshotMutation) OldPartialMatches(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartialMatches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartialMatches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartialMatches: %w", err)
	}
	return oldValue.PartialMatches, nil
}

// AddPartialMatches adds i to the "partial_matches" field.
func (m *ComparisonSnapshotMutation) AddPartialMatches(i int) {
	if m.addpartial_matches != nil {
		*m.addpartial_matches += i
	} else {
		m.addpartial_matches = &i
	}
}

// AddedPartialMatches returns the value that was added to the "partial_matches" field in this mutation.
func (m *ComparisonSnapshotMutation) AddedPartialMatches() (r int, exists bool) {
	v := m.addpartial_matches
	if v == nil {
		return
	}
	return *v, true
}

// ResetPartialMatches resets all changes to the "partial_matches" field.
func (m *ComparisonSnapshotMutation) ResetPartialMatches() {
	m.partial_matches = nil
	m.addpartial_matches = nil
}

// SetNewNumbers sets the "new_numbers" field.
func (m *ComparisonSnapshotMutation) SetNewNumbers(i int) {
	m.new_numbers = &i
	m.addnew_numbers = nil
}

// NewNumbers returns the value of the "new_numbers" field in the mutation.
func (m *ComparisonSnapshotMutation) NewNumbers() (r int, exists bool) {
	v := m.new_numbers
	if v == nil {
		return
	}
	return *v, true
}

// OldNewNumbers returns the old "new_numbers" field's value of the ComparisonSnapshot entity.
// If the ComparisonSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonSnapshotMutation) OldNewNumbers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewNumbers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewNumbers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewNumbers: %w", err)
	}
	return oldValue.NewNumbers, nil
}

// AddNewNumbers adds i to the "new_numbers" field.
func (m *ComparisonSnapshotMutation) AddNewNumbers(i int) {
	if m.addnew_numbers != nil {
		*m.addnew_numbers += i
	} else {
		m.addnew_numbers = &i
	}
}

// AddedNewNumbers returns the value that was added to the "new_numbers" field in this mutation.
func (m *ComparisonSnapshotMutation) AddedNewNumbers() (r int, exists bool) {
	v := m.addnew_numbers
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewNumbers resets all changes to the "new_numbers" field.
func (m *ComparisonSnapshotMutation) ResetNewNumbers() {
	m.new_numbers = nil
	m.addnew_numbers = nil
}

// SetNotCompared sets the "not_compared" field.
func (m *ComparisonSnapshotMutation) SetNotCompared(i int) {
	m.not_compared = &i
	m.addnot_compared = nil
}

// NotCompared returns the value of the "not_compared" field in the mutation.
func (m *ComparisonSnapshotMutation) NotCompared() (r int, exists bool) {
	v := m.not_compared
	if v == nil {
		return
	}
	return *v, true
}

// OldNotCompared returns the old "not_compared" field's value of the ComparisonSnapshot entity.
// If the ComparisonSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonSnapshotMutation) OldNotCompared(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotCompared is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotCompared requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotCompared: %w", err)
	}
	return oldValue.NotCompared, nil
}

// AddNotCompared adds i to the "not_compared" field.
func (m *ComparisonSnapshotMutation) AddNotCompared(i int) {
	if m.addnot_compared != nil {
		*m.addnot_compared += i
	} else {
		m.addnot_compared = &i
	}
}

// AddedNotCompared returns the value that was added to the "not_compared" field in this mutation.
func (m *ComparisonSnapshotMutation) AddedNotCompared() (r int, exists bool) {
	v := m.addnot_compared
	if v == nil {
		return
	}
	return *v, true
}

// ResetNotCompared resets all changes to the "not_compared" field.
func (m *ComparisonSnapshotMutation) ResetNotCompared() {
	m.not_compared = nil
	m.addnot_compared = nil
}

// SetMatchRate sets the "match_rate" field.
func (m *ComparisonSnapshotMutation) SetMatchRate(f float64) {
	m.match_rate = &f
	m.addmatch_rate = nil
}

// MatchRate returns the value of the "match_rate" field in the mutation.
func (m *ComparisonSnapshotMutation) MatchRate() (r float64, exists bool) {
	v := m.match_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchRate returns the old "match_rate" field's value of the ComparisonSnapshot entity.
// If the ComparisonSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonSnapshotMutation) OldMatchRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchRate: %w", err)
	}
	return oldValue.MatchRate, nil
}

// AddMatchRate adds f to the "match_rate" field.
func (m *ComparisonSnapshotMutation) AddMatchRate(f float64) {
	if m.addmatch_rate != nil {
		*m.addmatch_rate += f
	} else {
		m.addmatch_rate = &f
	}
}

// AddedMatchRate returns the value that was added to the "match_rate" field in this mutation.
func (m *ComparisonSnapshotMutation) AddedMatchRate() (r float64, exists bool) {
	v := m.addmatch_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatchRate resets all changes to the "match_rate" field.
func (m *ComparisonSnapshotMutation) ResetMatchRate() {
	m.match_rate = nil
	m.addmatch_rate = nil
}

// SetComparedAt sets the "compared_at" field.
func (m *ComparisonSnapshotMutation) SetComparedAt(t time.Time) {
	m.compared_at = &t
}

// ComparedAt returns the value of the "compared_at" field in the mutation.
func (m *ComparisonSnapshotMutation) ComparedAt() (r time.Time, exists bool) {
	v := m.compared_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComparedAt returns the old "compared_at" field's value of the ComparisonSnapshot entity.
// If the ComparisonSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonSnapshotMutation) OldComparedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComparedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComparedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComparedAt: %w", err)
	}
	return oldValue.ComparedAt, nil
}

// ResetComparedAt resets all changes to the "compared_at" field.
func (m *ComparisonSnapshotMutation) ResetComparedAt() {
	m.compared_at = nil
}

// Where appends a list predicates to the ComparisonSnapshotMutation builder.
func (m *ComparisonSnapshotMutation) Where(ps ...predicate.ComparisonSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ComparisonSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ComparisonSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ComparisonSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ComparisonSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ComparisonSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ComparisonSnapshot).
func (m *ComparisonSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ComparisonSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.total_extracted != nil {
		fields = append(fields, comparisonsnapshot.FieldTotalExtracted)
	}
	if m.total_contacts != nil {
		fields = append(fields, comparisonsnapshot.FieldTotalContacts)
	}
	if m.exact_matches != nil {
		fields = append(fields, comparisonsnapshot.FieldExactMatches)
	}
	if m.partial_matches != nil {
		fields = append(fields, comparisonsnapshot.FieldPartialMatches)
	}
	if m.new_numbers != nil {
		fields = append(fields, comparisonsnapshot.FieldNewNumbers)
	}
	if m.not_compared != nil {
		fields = append(fields, comparisonsnapshot.FieldNotCompared)
	}
	if m.match_rate != nil {
		fields = append(fields, comparisonsnapshot.FieldMatchRate)
	}
	if m.compared_at != nil {
		fields = append(fields, comparisonsnapshot.FieldComparedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ComparisonSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case comparisonsnapshot.FieldTotalExtracted:
		return m.TotalExtracted()
	case comparisonsnapshot.FieldTotalContacts:
		return m.TotalContacts()
	case comparisonsnapshot.FieldExactMatches:
		return m.ExactMatches()
	case comparisonsnapshot.FieldPartialMatches:
		return m.PartialMatches()
	case comparisonsnapshot.FieldNewNumbers:
		return m.NewNumbers()
	case comparisonsnapshot.FieldNotCompared:
		return m.NotCompared()
	case comparisonsnapshot.FieldMatchRate:
		return m.MatchRate()
	case comparisonsnapshot.FieldComparedAt:
		return m.ComparedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ComparisonSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case comparisonsnapshot.FieldTotalExtracted:
		return m.OldTotalExtracted(ctx)
	case comparisonsnapshot.FieldTotalContacts:
		return m.OldTotalContacts(ctx)
	case comparisonsnapshot.FieldExactMatches:
		return m.OldExactMatches(ctx)
	case comparisonsnapshot.FieldPartialMatches:
		return m.OldPartialMatches(ctx)
	case comparisonsnapshot.FieldNewNumbers:
		return m.OldNewNumbers(ctx)
	case comparisonsnapshot.FieldNotCompared:
		return m.OldNotCompared(ctx)
	case comparisonsnapshot.FieldMatchRate:
		return m.OldMatchRate(ctx)
	case comparisonsnapshot.FieldComparedAt:
		return m.OldComparedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ComparisonSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComparisonSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case comparisonsnapshot.FieldTotalExtracted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalExtracted(v)
		return nil
	case comparisonsnapshot.FieldTotalContacts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalContacts(v)
		return nil
	case comparisonsnapshot.FieldExactMatches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExactMatches(v)
		return nil
	case comparisonsnapshot.FieldPartialMatches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartialMatches(v)
		return nil
	case comparisonsnapshot.FieldNewNumbers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewNumbers(v)
		return nil
	case comparisonsnapshot.FieldNotCompared:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotCompared(v)
		return nil
	case comparisonsnapshot.FieldMatchRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchRate(v)
		return nil
	case comparisonsnapshot.FieldComparedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComparedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ComparisonSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ComparisonSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_extracted != nil {
		fields = append(fields, comparisonsnapshot.FieldTotalExtracted)
	}
	if m.addtotal_contacts != nil {
		fields = append(fields, comparisonsnapshot.FieldTotalContacts)
	}
	if m.addexact_matches != nil {
		fields = append(fields, comparisonsnapshot.FieldExactMatches)
	}
	if m.addpartial_matches != nil {
		fields = append(fields, comparisonsnapshot.FieldPartialMatches)
	}
	if m.addnew_numbers != nil {
		fields = append(fields, comparisonsnapshot.FieldNewNumbers)
	}
	if m.addnot_compared != nil {
		fields = append(fields, comparisonsnapshot.FieldNotCompared)
	}
	if m.addmatch_rate != nil {
		fields = append(fields, comparisonsnapshot.FieldMatchRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ComparisonSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case comparisonsnapshot.FieldTotalExtracted:
		return m.AddedTotalExtracted()
	case comparisonsnapshot.FieldTotalContacts:
		return m.AddedTotalContacts()
	case comparisonsnapshot.FieldExactMatches:
		return m.AddedExactMatches()
	case comparisonsnapshot.FieldPartialMatches:
		return m.AddedPartialMatches()
	case comparisonsnapshot.FieldNewNumbers:
		return m.AddedNewNumbers()
	case comparisonsnapshot.FieldNotCompared:
		return m.AddedNotCompared()
	case comparisonsnapshot.FieldMatchRate:
		return m.AddedMatchRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComparisonSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case comparisonsnapshot.FieldTotalExtracted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalExtracted(v)
		return nil
	case comparisonsnapshot.FieldTotalContacts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalContacts(v)
		return nil
	case comparisonsnapshot.FieldExactMatches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExactMatches(v)
		return nil
	case comparisonsnapshot.FieldPartialMatches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPartialMatches(v)
		return nil
	case comparisonsnapshot.FieldNewNumbers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewNumbers(v)
		return nil
	case comparisonsnapshot.FieldNotCompared:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNotCompared(v)
		return nil
	case comparisonsnapshot.FieldMatchRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchRate(v)
		return nil
	}
	return fmt.Errorf("unknown ComparisonSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ComparisonSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ComparisonSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ComparisonSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ComparisonSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ComparisonSnapshotMutation) ResetField(name string) error {
	switch name {
	case comparisonsnapshot.FieldTotalExtracted:
		m.ResetTotalExtracted()
		return nil
	case comparisonsnapshot.FieldTotalContacts:
		m.ResetTotalContacts()
		return nil
	case comparisonsnapshot.FieldExactMatches:
		m.ResetExactMatches()
		return nil
	case comparisonsnapshot.FieldPartialMatches:
		m.ResetPartialMatches()
		return nil
	case comparisonsnapshot.FieldNewNumbers:
		m.ResetNewNumbers()
		return nil
	case comparisonsnapshot.FieldNotCompared:
		m.ResetNotCompared()
		return nil
	case comparisonsnapshot.FieldMatchRate:
		m.ResetMatchRate()
		return nil
	case comparisonsnapshot.FieldComparedAt:
		m.ResetComparedAt()
		return nil
	}
	return fmt.Errorf("unknown ComparisonSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ComparisonSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ComparisonSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ComparisonSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ComparisonSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ComparisonSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ComparisonSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ComparisonSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ComparisonSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ComparisonSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ComparisonSnapshot edge %s", name)
}

// ExistingContactMutation represents an operation that mutates the ExistingContact nodes in the graph.
type ExistingContactMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	normalized_number *string
	raw_number        *string
	name              *string
	email             *string
	company           *string
	source            *string
	external_id       *string
	imported_at       *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ExistingContact, error)
	predicates        []predicate.ExistingContact
}

var _ ent.Mutation = (*ExistingContactMutation)(nil)

// existingcontactOption allows management of the mutation configuration using functional options.
type existingcontactOption func(*ExistingContactMutation)

// newExistingContactMutation creates new mutation for the ExistingContact entity.
func newExistingContactMutation(c config, op Op, opts ...existingcontactOption) *ExistingContactMutation {
	m := &ExistingContactMutation{
		config:        c,
		op:            op,
		typ:           TypeExistingContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExistingContactID sets the ID field of the mutation.
func withExistingContactID(id uuid.UUID) existingcontactOption {
	return func(m *ExistingContactMutation) {
		var (
			err   error
			once  sync.Once
			value *ExistingContact
		)
		m.oldValue = func(ctx context.Context) (*ExistingContact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExistingContact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExistingContact sets the old ExistingContact of the mutation.
func withExistingContact(node *ExistingContact) existingcontactOption {
	return func(m *ExistingContactMutation) {
		m.oldValue = func(context.Context) (*ExistingContact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExistingContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExistingContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExistingContact entities.
func (m *ExistingContactMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExistingContactMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExistingContactMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExistingContact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNormalizedNumber sets the "normalized_number" field.
func (m *ExistingContactMutation) SetNormalizedNumber(s string) {
	m.normalized_number = &s
}

// NormalizedNumber returns the value of the "normalized_number" field in the mutation.
func (m *ExistingContactMutation) NormalizedNumber() (r string, exists bool) {
	v := m.normalized_number
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedNumber returns the old "normalized_number" field's value of the ExistingContact entity.
// If the ExistingContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExistingContactMutation) OldNormalizedNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedNumber: %w", err)
	}
	return oldValue.NormalizedNumber, nil
}

// ResetNormalizedNumber resets all changes to the "normalized_number" field.
func (m *ExistingContactMutation) ResetNormalizedNumber() {
	m.normalized_number = nil
}

// SetRawNumber sets the "raw_number" field.
func (m *ExistingContactMutation) SetRawNumber(s string) {
	m.raw_number = &s
}

// RawNumber returns the value of the "raw_number" field in the mutation.
func (m *ExistingContactMutation) RawNumber() (r string, exists bool) {
	v := m.raw_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRawNumber returns the old "raw_number" field's value of the ExistingContact entity.
// If the ExistingContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExistingContactMutation) OldRawNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawNumber: %w", err)
	}
	return oldValue.RawNumber, nil
}

// ResetRawNumber resets all changes to the "raw_number" field.
func (m *ExistingContactMutation) ResetRawNumber() {
	m.raw_number = nil
}

// SetName sets the "name" field.
func (m *ExistingContactMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExistingContactMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ExistingContact entity.
// If the ExistingContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExistingContactMutation) OldName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *ExistingContactMutation) ClearName() {
	m.name = nil
	m.clearedFields[existingcontact.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *ExistingContactMutation) NameCleared() bool {
	_, ok := m.clearedFields[existingcontact.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *ExistingContactMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, existingcontact.FieldName)
}

// SetEmail sets the "email" field.
func (m *ExistingContactMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ExistingContactMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ExistingContact entity.
// If the ExistingContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExistingContactMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ExistingContactMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[existingcontact.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ExistingContactMutation) EmailCleared() bool {
	_, ok := m.clearedFields[existingcontact.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ExistingContactMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, existingcontact.FieldEmail)
}

// SetCompany sets the "company" field.
func (m *ExistingContactMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *ExistingContactMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the ExistingContact entity.
// If the ExistingContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExistingContactMutation) OldCompany(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *ExistingContactMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[existingcontact.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *ExistingContactMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[existingcontact.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *ExistingContactMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, existingcontact.FieldCompany)
}

// SetSource sets the "source" field.
func (m *ExistingContactMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ExistingContactMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ExistingContact entity.
// If the ExistingContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExistingContactMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ExistingContactMutation) ResetSource() {
	m.source = nil
}

// SetExternalID sets the "external_id" field.
func (m *ExistingContactMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *ExistingContactMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the ExistingContact entity.
// If the ExistingContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExistingContactMutation) OldExternalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ClearExternalID clears the value of the "external_id" field.
func (m *ExistingContactMutation) ClearExternalID() {
	m.external_id = nil
	m.clearedFields[existingcontact.FieldExternalID] = struct{}{}
}

// ExternalIDCleared returns if the "external_id" field was cleared in this mutation.
func (m *ExistingContactMutation) ExternalIDCleared() bool {
	_, ok := m.clearedFields[existingcontact.FieldExternalID]
	return ok
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *ExistingContactMutation) ResetExternalID() {
	m.external_id = nil
	delete(m.clearedFields, existingcontact.FieldExternalID)
}

// SetImportedAt sets the "imported_at" field.
func (m *ExistingContactMutation) SetImportedAt(t time.Time) {
	m.imported_at = &t
}

// ImportedAt returns the value of the "imported_at" field in the mutation.
func (m *ExistingContactMutation) ImportedAt() (r time.Time, exists bool) {
	v := m.imported_at
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedAt returns the old "imported_at" field's value of the ExistingContact entity.
// If the ExistingContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExistingContactMutation) OldImportedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedAt: %w", err)
	}
	return oldValue.ImportedAt, nil
}

// ResetImportedAt resets all changes to the "imported_at" field.
func (m *ExistingContactMutation) ResetImportedAt() {
	m.imported_at = nil
}

// Where appends a list predicates to the ExistingContactMutation builder.
func (m *ExistingContactMutation) Where(ps ...predicate.ExistingContact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExistingContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExistingContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExistingContact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExistingContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExistingContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExistingContact).
func (m *ExistingContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExistingContactMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.normalized_number != nil {
		fields = append(fields, existingcontact.FieldNormalizedNumber)
	}
	if m.raw_number != nil {
		fields = append(fields, existingcontact.FieldRawNumber)
	}
	if m.name != nil {
		fields = append(fields, existingcontact.FieldName)
	}
	if m.email != nil {
		fields = append(fields, existingcontact.FieldEmail)
	}
	if m.company != nil {
		fields = append(fields, existingcontact.FieldCompany)
	}
	if m.source != nil {
		fields = append(fields, existingcontact.FieldSource)
	}
	if m.external_id != nil {
		fields = append(fields, existingcontact.FieldExternalID)
	}
	if m.imported_at != nil {
		fields = append(fields, existingcontact.FieldImportedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExistingContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case existingcontact.FieldNormalizedNumber:
		return m.NormalizedNumber()
	case existingcontact.FieldRawNumber:
		return m.RawNumber()
	case existingcontact.FieldName:
		return m.Name()
	case existingcontact.FieldEmail:
		return m.Email()
	case existingcontact.FieldCompany:
		return m.Company()
	case existingcontact.FieldSource:
		return m.Source()
	case existingcontact.FieldExternalID:
		return m.ExternalID()
	case existingcontact.FieldImportedAt:
		return m.ImportedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExistingContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case existingcontact.FieldNormalizedNumber:
		return m.OldNormalizedNumber(ctx)
	case existingcontact.FieldRawNumber:
		return m.OldRawNumber(ctx)
	case existingcontact.FieldName:
		return m.OldName(ctx)
	case existingcontact.FieldEmail:
		return m.OldEmail(ctx)
	case existingcontact.FieldCompany:
		return m.OldCompany(ctx)
	case existingcontact.FieldSource:
		return m.OldSource(ctx)
	case existingcontact.FieldExternalID:
		return m.OldExternalID(ctx)
	case existingcontact.FieldImportedAt:
		return m.OldImportedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExistingContact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExistingContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case existingcontact.FieldNormalizedNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedNumber(v)
		return nil
	case existingcontact.FieldRawNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawNumber(v)
		return nil
	case existingcontact.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case existingcontact.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case existingcontact.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case existingcontact.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case existingcontact.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case existingcontact.FieldImportedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExistingContact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExistingContactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExistingContactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExistingContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExistingContact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExistingContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(existingcontact.FieldName) {
		fields = append(fields, existingcontact.FieldName)
	}
	if m.FieldCleared(existingcontact.FieldEmail) {
		fields = append(fields, existingcontact.FieldEmail)
	}
	if m.FieldCleared(existingcontact.FieldCompany) {
		fields = append(fields, existingcontact.FieldCompany)
	}
	if m.FieldCleared(existingcontact.FieldExternalID) {
		fields = append(fields, existingcontact.FieldExternalID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExistingContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExistingContactMutation) ClearField(name string) error {
	switch name {
	case existingcontact.FieldName:
		m.ClearName()
		return nil
	case existingcontact.FieldEmail:
		m.ClearEmail()
		return nil
	case existingcontact.FieldCompany:
		m.ClearCompany()
		return nil
	case existingcontact.FieldExternalID:
		m.ClearExternalID()
		return nil
	}
	return fmt.Errorf("unknown ExistingContact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExistingContactMutation) ResetField(name string) error {
	switch name {
	case existingcontact.FieldNormalizedNumber:
		m.ResetNormalizedNumber()
		return nil
	case existingcontact.FieldRawNumber:
		m.ResetRawNumber()
		return nil
	case existingcontact.FieldName:
		m.ResetName()
		return nil
	case existingcontact.FieldEmail:
		m.ResetEmail()
		return nil
	case existingcontact.FieldCompany:
		m.ResetCompany()
		return nil
	case existingcontact.FieldSource:
		m.ResetSource()
		return nil
	case existingcontact.FieldExternalID:
		m.ResetExternalID()
		return nil
	case existingcontact.FieldImportedAt:
		m.ResetImportedAt()
		return nil
	}
	return fmt.Errorf("unknown ExistingContact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExistingContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExistingContactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExistingContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExistingContactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExistingContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExistingContactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExistingContactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExistingContact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExistingContactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExistingContact edge %s", name)
}

// ExtractedNumberMutation represents an operation that mutates the ExtractedNumber nodes in the graph.
type ExtractedNumberMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	raw_number        *string
	normalized_number *string
	country_code      *string
	country_name      *string
	carrier           *string
	number_type       *string
	is_valid          *bool
	extracted_at      *time.Time
	clearedFields     map[string]struct{}
	screenshot        *uuid.UUID
	clearedscreenshot bool
	groups            map[uuid.UUID]struct{}
	removedgroups     map[uuid.UUID]struct{}
	clearedgroups     bool
	done              bool
	oldValue          func(context.Context) (*ExtractedNumber, error)
	predicates        []predicate.ExtractedNumber
}

var _ ent.Mutation = (*ExtractedNumberMutation)(nil)

// extractednumberOption allows management of the mutation configuration using functional options.
type extractednumberOption func(*ExtractedNumberMutation)

// newExtractedNumberMutation creates new mutation for the ExtractedNumber entity.
func newExtractedNumberMutation(c config, op Op, opts ...extractednumberOption) *ExtractedNumberMutation {
	m := &ExtractedNumberMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedNumber,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedNumberID sets the ID field of the mutation.
func withExtractedNumberID(id uuid.UUID) extractednumberOption {
	return func(m *ExtractedNumberMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedNumber
		)
		m.oldValue = func(ctx context.Context) (*ExtractedNumber, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedNumber.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedNumber sets the old ExtractedNumber of the mutation.
func withExtractedNumber(node *ExtractedNumber) extractednumberOption {
	return func(m *ExtractedNumberMutation) {
		m.oldValue = func(context.Context) (*ExtractedNumber, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedNumberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedNumberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedNumber entities.
func (m *ExtractedNumberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedNumberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedNumberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedNumber.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScreenshotID sets the "screenshot_id" field.
func (m *ExtractedNumberMutation) SetScreenshotID(u uuid.UUID) {
	m.screenshot = &u
}

// ScreenshotID returns the value of the "screenshot_id" field in the mutation.
func (m *ExtractedNumberMutation) ScreenshotID() (r uuid.UUID, exists bool) {
	v := m.screenshot
	if v == nil {
		return
	}
	return *v, true
}

// OldScreenshotID returns the old "screenshot_id" field's value of the ExtractedNumber entity.
// If the ExtractedNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedNumberMutation) OldScreenshotID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreenshotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreenshotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreenshotID: %w", err)
	}
	return oldValue.ScreenshotID, nil
}

// ResetScreenshotID resets all changes to the "screenshot_id" field.
func (m *ExtractedNumberMutation) ResetScreenshotID() {
	m.screenshot = nil
}

// SetRawNumber sets the "raw_number" field.
func (m *ExtractedNumberMutation) SetRawNumber(s string) {
	m.raw_number = &s
}

// RawNumber returns the value of the "raw_number" field in the mutation.
func (m *ExtractedNumberMutation) RawNumber() (r string, exists bool) {
	v := m.raw_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRawNumber returns the old "raw_number" field's value of the ExtractedNumber entity.
// If the ExtractedNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedNumberMutation) OldRawNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawNumber: %w", err)
	}
	return oldValue.RawNumber, nil
}

// ResetRawNumber resets all changes to the "raw_number" field.
func (m *ExtractedNumberMutation) ResetRawNumber() {
	m.raw_number = nil
}

// SetNormalizedNumber sets the "normalized_number" field.
func (m *ExtractedNumberMutation) SetNormalizedNumber(s string) {
	m.normalized_number = &s
}

// NormalizedNumber returns the value of the "normalized_number" field in the mutation.
func (m *ExtractedNumberMutation) NormalizedNumber() (r string, exists bool) {
	v := m.normalized_number
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedNumber returns the old "normalized_number" field's value of the ExtractedNumber entity.
// If the ExtractedNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedNumberMutation) OldNormalizedNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedNumber: %w", err)
	}
	return oldValue.NormalizedNumber, nil
}

// ClearNormalizedNumber clears the value of the "normalized_number" field.
func (m *ExtractedNumberMutation) ClearNormalizedNumber() {
	m.normalized_number = nil
	m.clearedFields[extractednumber.FieldNormalizedNumber] = struct{}{}
}

// NormalizedNumberCleared returns if the "normalized_number" field was cleared in this mutation.
func (m *ExtractedNumberMutation) NormalizedNumberCleared() bool {
	_, ok := m.clearedFields[extractednumber.FieldNormalizedNumber]
	return ok
}

// ResetNormalizedNumber resets all changes to the "normalized_number" field.
func (m *ExtractedNumberMutation) ResetNormalizedNumber() {
	m.normalized_number = nil
	delete(m.clearedFields, extractednumber.FieldNormalizedNumber)
}

// SetCountryCode sets the "country_code" field.
func (m *ExtractedNumberMutation) SetCountryCode(s string) {
	m.country_code = &s
}

// CountryCode returns the value of the "country_code" field in the mutation.
func (m *ExtractedNumberMutation) CountryCode() (r string, exists bool) {
	v := m.country_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCountryCode returns the old "country_code" field's value of the ExtractedNumber entity.
// If the ExtractedNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedNumberMutation) OldCountryCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountryCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountryCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountryCode: %w", err)
	}
	return oldValue.CountryCode, nil
}

// ClearCountryCode clears the value of the "country_code" field.
func (m *ExtractedNumberMutation) ClearCountryCode() {
	m.country_code = nil
	m.clearedFields[extractednumber.FieldCountryCode] = struct{}{}
}

// CountryCodeCleared returns if the "country_code" field was cleared in this mutation.
func (m *ExtractedNumberMutation) CountryCodeCleared() bool {
	_, ok := m.clearedFields[extractednumber.FieldCountryCode]
	return ok
}

// ResetCountryCode resets all changes to the "country_code" field.
func (m *ExtractedNumberMutation) ResetCountryCode() {
	m.country_code = nil
	delete(m.clearedFields, extractednumber.FieldCountryCode)
}

// SetCountryName sets the "country_name" field.
func (m *ExtractedNumberMutation) SetCountryName(s string) {
	m.country_name = &s
}

// CountryName returns the value of the "country_name" field in the mutation.
func (m *ExtractedNumberMutation) CountryName() (r string, exists bool) {
	v := m.country_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCountryName returns the old "country_name" field's value of the ExtractedNumber entity.
// If the ExtractedNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedNumberMutation) OldCountryName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountryName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountryName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountryName: %w", err)
	}
	return oldValue.CountryName, nil
}

// ClearCountryName clears the value of the "country_name" field.
func (m *ExtractedNumberMutation) ClearCountryName() {
	m.country_name = nil
	m.clearedFields[extractednumber.FieldCountryName] = struct{}{}
}

// CountryNameCleared returns if the "country_name" field was cleared in this mutation.
func (m *ExtractedNumberMutation) CountryNameCleared() bool {
	_, ok := m.clearedFields[extractednumber.FieldCountryName]
	return ok
}

// ResetCountryName resets all changes to the "country_name" field.
func (m *ExtractedNumberMutation) ResetCountryName() {
	m.country_name = nil
	delete(m.clearedFields, extractednumber.FieldCountryName)
}

// SetCarrier sets the "carrier" field.
func (m *ExtractedNumberMutation) SetCarrier(s string) {
	m.carrier = &s
}

// Carrier returns the value of the "carrier" field in the mutation.
func (m *ExtractedNumberMutation) Carrier() (r string, exists bool) {
	v := m.carrier
	if v == nil {
		return
	}
	return *v, true
}

// OldCarrier returns the old "carrier" field's value of the ExtractedNumber entity.
// If the ExtractedNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedNumberMutation) OldCarrier(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarrier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarrier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarrier: %w", err)
	}
	return oldValue.Carrier, nil
}

// ClearCarrier clears the value of the "carrier" field.
func (m *ExtractedNumberMutation) ClearCarrier() {
	m.carrier = nil
	m.clearedFields[extractednumber.FieldCarrier] = struct{}{}
}

// CarrierCleared returns if the "carrier" field was cleared in this mutation.
func (m *ExtractedNumberMutation) CarrierCleared() bool {
	_, ok := m.clearedFields[extractednumber.FieldCarrier]
	return ok
}

// ResetCarrier resets all changes to the "carrier" field.
func (m *ExtractedNumberMutation) ResetCarrier() {
	m.carrier = nil
	delete(m.clearedFields, extractednumber.FieldCarrier)
}

// SetNumberType sets the "number_type" field.
func (m *ExtractedNumberMutation) SetNumberType(s string) {
	m.number_type = &s
}

// NumberType returns the value of the "number_type" field in the mutation.
func (m *ExtractedNumberMutation) NumberType() (r string, exists bool) {
	v := m.number_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNumberType returns the old "number_type" field's value of the ExtractedNumber entity.
// If the ExtractedNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedNumberMutation) OldNumberType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumberType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumberType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumberType: %w", err)
	}
	return oldValue.NumberType, nil
}

// ClearNumberType clears the value of the "number_type" field.
func (m *ExtractedNumberMutation) ClearNumberType() {
	m.number_type = nil
	m.clearedFields[extractednumber.FieldNumberType] = struct{}{}
}

// NumberTypeCleared returns if the "number_type" field was cleared in this mutation.
func (m *ExtractedNumberMutation) NumberTypeCleared() bool {
	_, ok := m.clearedFields[extractednumber.FieldNumberType]
	return ok
}

// ResetNumberType resets all changes to the "number_type" field.
func (m *ExtractedNumberMutation) ResetNumberType() {
	m.number_type = nil
	delete(m.clearedFields, extractednumber.FieldNumberType)
}

// SetIsValid sets the "is_valid" field.
func (m *ExtractedNumberMutation) SetIsValid(b bool) {
	m.is_valid = &b
}

// IsValid returns the value of the "is_valid" field in the mutation.
func (m *ExtractedNumberMutation) IsValid() (r bool, exists bool) {
	v := m.is_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValid returns the old "is_valid" field's value of the ExtractedNumber entity.
// If the ExtractedNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedNumberMutation) OldIsValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValid: %w", err)
	}
	return oldValue.IsValid, nil
}

// ResetIsValid resets all changes to the "is_valid" field.
func (m *ExtractedNumberMutation) ResetIsValid() {
	m.is_valid = nil
}

// SetExtractedAt sets the "extracted_at" field.
func (m *ExtractedNumberMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *ExtractedNumberMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the ExtractedNumber entity.
// If the ExtractedNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedNumberMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *ExtractedNumberMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// ClearScreenshot clears the "screenshot" edge to the Screenshot entity.
func (m *ExtractedNumberMutation) ClearScreenshot() {
	m.clearedscreenshot = true
	m.clearedFields[extractednumber.FieldScreenshotID] = struct{}{}
}

// ScreenshotCleared reports if the "screenshot" edge to the Screenshot entity was cleared.
func (m *ExtractedNumberMutation) ScreenshotCleared() bool {
	return m.clearedscreenshot
}

// ScreenshotIDs returns the "screenshot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScreenshotID instead. It exists only for internal usage by the builders.
func (m *ExtractedNumberMutation) ScreenshotIDs() (ids []uuid.UUID) {
	if id := m.screenshot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScreenshot resets all changes to the "screenshot" edge.
func (m *ExtractedNumberMutation) ResetScreenshot() {
	m.screenshot = nil
	m.clearedscreenshot = false
}

// AddGroupIDs adds the "groups" edge to the Group entity by ids.
func (m *ExtractedNumberMutation) AddGroupIDs(ids ...uuid.UUID) {
	if m.groups == nil {
		m.groups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.groups[ids[i]] = struct{}{}
	}
}

// ClearGroups clears the "groups" edge to the Group entity.
func (m *ExtractedNumberMutation) ClearGroups() {
	m.clearedgroups = true
}

// GroupsCleared reports if the "groups" edge to the Group entity was cleared.
func (m *ExtractedNumberMutation) GroupsCleared() bool {
	return m.clearedgroups
}

// RemoveGroupIDs removes the "groups" edge to the Group entity by IDs.
func (m *ExtractedNumberMutation) RemoveGroupIDs(ids ...uuid.UUID) {
	if m.removedgroups == nil {
		m.removedgroups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.groups, ids[i])
		m.removedgroups[ids[i]] = struct{}{}
	}
}

// RemovedGroups returns the removed IDs of the "groups" edge to the Group entity.
func (m *ExtractedNumberMutation) RemovedGroupsIDs() (ids []uuid.UUID) {
	for id := range m.removedgroups {
		ids = append(ids, id)
	}
	return
}

// GroupsIDs returns the "groups" edge IDs in the mutation.
func (m *ExtractedNumberMutation) GroupsIDs() (ids []uuid.UUID) {
	for id := range m.groups {
		ids = append(ids, id)
	}
	return
}

// ResetGroups resets all changes to the "groups" edge.
func (m *ExtractedNumberMutation) ResetGroups() {
	m.groups = nil
	m.clearedgroups = false
	m.removedgroups = nil
}

// Where appends a list predicates to the ExtractedNumberMutation builder.
func (m *ExtractedNumberMutation) Where(ps ...predicate.ExtractedNumber) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedNumberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedNumberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedNumber, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedNumberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedNumberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedNumber).
func (m *ExtractedNumberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedNumberMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.screenshot != nil {
		fields = append(fields, extractednumber.FieldScreenshotID)
	}
	if m.raw_number != nil {
		fields = append(fields, extractednumber.FieldRawNumber)
	}
	if m.normalized_number != nil {
		fields = append(fields, extractednumber.FieldNormalizedNumber)
	}
	if m.country_code != nil {
		fields = append(fields, extractednumber.FieldCountryCode)
	}
	if m.country_name != nil {
		fields = append(fields, extractednumber.FieldCountryName)
	}
	if m.carrier != nil {
		fields = append(fields, extractednumber.FieldCarrier)
	}
	if m.number_type != nil {
		fields = append(fields, extractednumber.FieldNumberType)
	}
	if m.is_valid != nil {
		fields = append(fields, extractednumber.FieldIsValid)
	}
	if m.extracted_at != nil {
		fields = append(fields, extractednumber.FieldExtractedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedNumberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractednumber.FieldScreenshotID:
		return m.ScreenshotID()
	case extractednumber.FieldRawNumber:
		return m.RawNumber()
	case extractednumber.FieldNormalizedNumber:
		return m.NormalizedNumber()
	case extractednumber.FieldCountryCode:
		return m.CountryCode()
	case extractednumber.FieldCountryName:
		return m.CountryName()
	case extractednumber.FieldCarrier:
		return m.Carrier()
	case extractednumber.FieldNumberType:
		return m.NumberType()
	case extractednumber.FieldIsValid:
		return m.IsValid()
	case extractednumber.FieldExtractedAt:
		return m.ExtractedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedNumberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractednumber.FieldScreenshotID:
		return m.OldScreenshotID(ctx)
	case extractednumber.FieldRawNumber:
		return m.OldRawNumber(ctx)
	case extractednumber.FieldNormalizedNumber:
		return m.OldNormalizedNumber(ctx)
	case extractednumber.FieldCountryCode:
		return m.OldCountryCode(ctx)
	case extractednumber.FieldCountryName:
		return m.OldCountryName(ctx)
	case extractednumber.FieldCarrier:
		return m.OldCarrier(ctx)
	case extractednumber.FieldNumberType:
		return m.OldNumberType(ctx)
	case extractednumber.FieldIsValid:
		return m.OldIsValid(ctx)
	case extractednumber.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedNumber field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedNumberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractednumber.FieldScreenshotID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreenshotID(v)
		return nil
	case extractednumber.FieldRawNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawNumber(v)
		return nil
	case extractednumber.FieldNormalizedNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedNumber(v)
		return nil
	case extractednumber.FieldCountryCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountryCode(v)
		return nil
	case extractednumber.FieldCountryName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountryName(v)
		return nil
	case extractednumber.FieldCarrier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarrier(v)
		return nil
	case extractednumber.FieldNumberType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumberType(v)
		return nil
	case extractednumber.FieldIsValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValid(v)
		return nil
	case extractednumber.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedNumber field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedNumberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedNumberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedNumberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractedNumber numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedNumberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractednumber.FieldNormalizedNumber) {
		fields = append(fields, extractednumber.FieldNormalizedNumber)
	}
	if m.FieldCleared(extractednumber.FieldCountryCode) {
		fields = append(fields, extractednumber.FieldCountryCode)
	}
	if m.FieldCleared(extractednumber.FieldCountryName) {
		fields = append(fields, extractednumber.FieldCountryName)
	}
	if m.FieldCleared(extractednumber.FieldCarrier) {
		fields = append(fields, extractednumber.FieldCarrier)
	}
	if m.FieldCleared(extractednumber.FieldNumberType) {
		fields = append(fields, extractednumber.FieldNumberType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedNumberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedNumberMutation) ClearField(name string) error {
	switch name {
	case extractednumber.FieldNormalizedNumber:
		m.ClearNormalizedNumber()
		return nil
	case extractednumber.FieldCountryCode:
		m.ClearCountryCode()
		return nil
	case extractednumber.FieldCountryName:
		m.ClearCountryName()
		return nil
	case extractednumber.FieldCarrier:
		m.ClearCarrier()
		return nil
	case extractednumber.FieldNumberType:
		m.ClearNumberType()
		return nil
	}
	return fmt.Errorf("unknown ExtractedNumber nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedNumberMutation) ResetField(name string) error {
	switch name {
	case extractednumber.FieldScreenshotID:
		m.ResetScreenshotID()
		return nil
	case extractednumber.FieldRawNumber:
		m.ResetRawNumber()
		return nil
	case extractednumber.FieldNormalizedNumber:
		m.ResetNormalizedNumber()
		return nil
	case extractednumber.FieldCountryCode:
		m.ResetCountryCode()
		return nil
	case extractednumber.FieldCountryName:
		m.ResetCountryName()
		return nil
	case extractednumber.FieldCarrier:
		m.ResetCarrier()
		return nil
	case extractednumber.FieldNumberType:
		m.ResetNumberType()
		return nil
	case extractednumber.FieldIsValid:
		m.ResetIsValid()
		return nil
	case extractednumber.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedNumber field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedNumberMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.screenshot != nil {
		edges = append(edges, extractednumber.EdgeScreenshot)
	}
	if m.groups != nil {
		edges = append(edges, extractednumber.EdgeGroups)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedNumberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractednumber.EdgeScreenshot:
		if id := m.screenshot; id != nil {
			return []ent.Value{*id}
		}
	case extractednumber.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.groups))
		for id := range m.groups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedNumberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedgroups != nil {
		edges = append(edges, extractednumber.EdgeGroups)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedNumberMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractednumber.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.removedgroups))
		for id := range m.removedgroups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedNumberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedscreenshot {
		edges = append(edges, extractednumber.EdgeScreenshot)
	}
	if m.clearedgroups {
		edges = append(edges, extractednumber.EdgeGroups)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedNumberMutation) EdgeCleared(name string) bool {
	switch name {
	case extractednumber.EdgeScreenshot:
		return m.clearedscreenshot
	case extractednumber.EdgeGroups:
		return m.clearedgroups
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedNumberMutation) ClearEdge(name string) error {
	switch name {
	case extractednumber.EdgeScreenshot:
		m.ClearScreenshot()
		return nil
	}
	return fmt.Errorf("unknown ExtractedNumber unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedNumberMutation) ResetEdge(name string) error {
	switch name {
	case extractednumber.EdgeScreenshot:
		m.ResetScreenshot()
		return nil
	case extractednumber.EdgeGroups:
		m.ResetGroups()
		return nil
	}
	return fmt.Errorf("unknown ExtractedNumber edge %s", name)
}

// GroupMutation represents an operation that mutates the Group nodes in the graph.
type GroupMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	description    *string
	color          *string
	is_system      *bool
	country_code   *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	numbers        map[uuid.UUID]struct{}
	removednumbers map[uuid.UUID]struct{}
	clearednumbers bool
	done           bool
	oldValue       func(context.Context) (*Group, error)
	predicates     []predicate.Group
}

var _ ent.Mutation = (*GroupMutation)(nil)

// groupOption allows management of the mutation configuration using functional options.
type groupOption func(*GroupMutation)

// newGroupMutation creates new mutation for the Group entity.
func newGroupMutation(c config, op Op, opts ...groupOption) *GroupMutation {
	m := &GroupMutation{
		config:        c,
		op:            op,
		typ:           TypeGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupID sets the ID field of the mutation.
func withGroupID(id uuid.UUID) groupOption {
	return func(m *GroupMutation) {
		var (
			err   error
			once  sync.Once
			value *Group
		)
		m.oldValue = func(ctx context.Context) (*Group, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Group.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroup sets the old Group of the mutation.
func withGroup(node *Group) groupOption {
	return func(m *GroupMutation) {
		m.oldValue = func(context.Context) (*Group, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Group entities.
func (m *GroupMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Group.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *GroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *GroupMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *GroupMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *GroupMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *GroupMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[group.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *GroupMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[group.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *GroupMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, group.FieldDescription)
}

// SetColor sets the "color" field.
func (m *GroupMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *GroupMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ResetColor resets all changes to the "color" field.
func (m *GroupMutation) ResetColor() {
	m.color = nil
}

// SetIsSystem sets the "is_system" field.
func (m *GroupMutation) SetIsSystem(b bool) {
	m.is_system = &b
}

// IsSystem returns the value of the "is_system" field in the mutation.
func (m *GroupMutation) IsSystem() (r bool, exists bool) {
	v := m.is_system
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSystem returns the old "is_system" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldIsSystem(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSystem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSystem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSystem: %w", err)
	}
	return oldValue.IsSystem, nil
}

// ResetIsSystem resets all changes to the "is_system" field.
func (m *GroupMutation) ResetIsSystem() {
	m.is_system = nil
}

// SetCountryCode sets the "country_code" field.
func (m *GroupMutation) SetCountryCode(s string) {
	m.country_code = &s
}

// CountryCode returns the value of the "country_code" field in the mutation.
func (m *GroupMutation) CountryCode() (r string, exists bool) {
	v := m.country_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCountryCode returns the old "country_code" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCountryCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountryCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountryCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountryCode: %w", err)
	}
	return oldValue.CountryCode, nil
}

// ClearCountryCode clears the value of the "country_code" field.
func (m *GroupMutation) ClearCountryCode() {
	m.country_code = nil
	m.clearedFields[group.FieldCountryCode] = struct{}{}
}

// CountryCodeCleared returns if the "country_code" field was cleared in this mutation.
func (m *GroupMutation) CountryCodeCleared() bool {
	_, ok := m.clearedFields[group.FieldCountryCode]
	return ok
}

// ResetCountryCode resets all changes to the "country_code" field.
func (m *GroupMutation) ResetCountryCode() {
	m.country_code = nil
	delete(m.clearedFields, group.FieldCountryCode)
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddNumberIDs adds the "numbers" edge to the ExtractedNumber entity by ids.
func (m *GroupMutation) AddNumberIDs(ids ...uuid.UUID) {
	if m.numbers == nil {
		m.numbers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.numbers[ids[i]] = struct{}{}
	}
}

// ClearNumbers clears the "numbers" edge to the ExtractedNumber entity.
func (m *GroupMutation) ClearNumbers() {
	m.clearednumbers = true
}

// NumbersCleared reports if the "numbers" edge to the ExtractedNumber entity was cleared.
func (m *GroupMutation) NumbersCleared() bool {
	return m.clearednumbers
}

// RemoveNumberIDs removes the "numbers" edge to the ExtractedNumber entity by IDs.
func (m *GroupMutation) RemoveNumberIDs(ids ...uuid.UUID) {
	if m.removednumbers == nil {
		m.removednumbers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.numbers, ids[i])
		m.removednumbers[ids[i]] = struct{}{}
	}
}

// RemovedNumbers returns the removed IDs of the "numbers" edge to the ExtractedNumber entity.
func (m *GroupMutation) RemovedNumbersIDs() (ids []uuid.UUID) {
	for id := range m.removednumbers {
		ids = append(ids, id)
	}
	return
}

// NumbersIDs returns the "numbers" edge IDs in the mutation.
func (m *GroupMutation) NumbersIDs() (ids []uuid.UUID) {
	for id := range m.numbers {
		ids = append(ids, id)
	}
	return
}

// ResetNumbers resets all changes to the "numbers" edge.
func (m *GroupMutation) ResetNumbers() {
	m.numbers = nil
	m.clearednumbers = false
	m.removednumbers = nil
}

// Where appends a list predicates to the GroupMutation builder.
func (m *GroupMutation) Where(ps ...predicate.Group) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Group, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Group).
func (m *GroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, group.FieldName)
	}
	if m.description != nil {
		fields = append(fields, group.FieldDescription)
	}
	if m.color != nil {
		fields = append(fields, group.FieldColor)
	}
	if m.is_system != nil {
		fields = append(fields, group.FieldIsSystem)
	}
	if m.country_code != nil {
		fields = append(fields, group.FieldCountryCode)
	}
	if m.created_at != nil {
		fields = append(fields, group.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case group.FieldName:
		return m.Name()
	case group.FieldDescription:
		return m.Description()
	case group.FieldColor:
		return m.Color()
	case group.FieldIsSystem:
		return m.IsSystem()
	case group.FieldCountryCode:
		return m.CountryCode()
	case group.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case group.FieldName:
		return m.OldName(ctx)
	case group.FieldDescription:
		return m.OldDescription(ctx)
	case group.FieldColor:
		return m.OldColor(ctx)
	case group.FieldIsSystem:
		return m.OldIsSystem(ctx)
	case group.FieldCountryCode:
		return m.OldCountryCode(ctx)
	case group.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Group field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case group.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case group.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case group.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case group.FieldIsSystem:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSystem(v)
		return nil
	case group.FieldCountryCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountryCode(v)
		return nil
	case group.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Group numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(group.FieldDescription) {
		fields = append(fields, group.FieldDescription)
	}
	if m.FieldCleared(group.FieldCountryCode) {
		fields = append(fields, group.FieldCountryCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMutation) ClearField(name string) error {
	switch name {
	case group.FieldDescription:
		m.ClearDescription()
		return nil
	case group.FieldCountryCode:
		m.ClearCountryCode()
		return nil
	}
	return fmt.Errorf("unknown Group nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMutation) ResetField(name string) error {
	switch name {
	case group.FieldName:
		m.ResetName()
		return nil
	case group.FieldDescription:
		m.ResetDescription()
		return nil
	case group.FieldColor:
		m.ResetColor()
		return nil
	case group.FieldIsSystem:
		m.ResetIsSystem()
		return nil
	case group.FieldCountryCode:
		m.ResetCountryCode()
		return nil
	case group.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.numbers != nil {
		edges = append(edges, group.EdgeNumbers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeNumbers:
		ids := make([]ent.Value, 0, len(m.numbers))
		for id := range m.numbers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removednumbers != nil {
		edges = append(edges, group.EdgeNumbers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeNumbers:
		ids := make([]ent.Value, 0, len(m.removednumbers))
		for id := range m.removednumbers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearednumbers {
		edges = append(edges, group.EdgeNumbers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMutation) EdgeCleared(name string) bool {
	switch name {
	case group.EdgeNumbers:
		return m.clearednumbers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Group unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMutation) ResetEdge(name string) error {
	switch name {
	case group.EdgeNumbers:
		m.ResetNumbers()
		return nil
	}
	return fmt.Errorf("unknown Group edge %s", name)
}

// ScreenshotMutation represents an operation that mutates the Screenshot nodes in the graph.
type ScreenshotMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	filename       *string
	file_path      *string
	source         *string
	ocr_text       *string
	processed      *bool
	notes          *string
	uploaded_at    *time.Time
	clearedFields  map[string]struct{}
	numbers        map[uuid.UUID]struct{}
	removednumbers map[uuid.UUID]struct{}
	clearednumbers bool
	done           bool
	oldValue       func(context.Context) (*Screenshot, error)
	predicates     []predicate.Screenshot
}

var _ ent.Mutation = (*ScreenshotMutation)(nil)

// screenshotOption allows management of the mutation configuration using functional options.
type screenshotOption func(*ScreenshotMutation)

// newScreenshotMutation creates new mutation for the Screenshot entity.
func newScreenshotMutation(c config, op Op, opts ...screenshotOption) *ScreenshotMutation {
	m := &ScreenshotMutation{
		config:        c,
		op:            op,
		typ:           TypeScreenshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScreenshotID sets the ID field of the mutation.
func withScreenshotID(id uuid.UUID) screenshotOption {
	return func(m *ScreenshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Screenshot
		)
		m.oldValue = func(ctx context.Context) (*Screenshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Screenshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScreenshot sets the old Screenshot of the mutation.
func withScreenshot(node *Screenshot) screenshotOption {
	return func(m *ScreenshotMutation) {
		m.oldValue = func(context.Context) (*Screenshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScreenshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScreenshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Screenshot entities.
func (m *ScreenshotMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScreenshotMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScreenshotMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Screenshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *ScreenshotMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ScreenshotMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Screenshot entity.
// If the Screenshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreenshotMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ScreenshotMutation) ResetFilename() {
	m.filename = nil
}

// SetFilePath sets the "file_path" field.
func (m *ScreenshotMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *ScreenshotMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Screenshot entity.
// If the Screenshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreenshotMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *ScreenshotMutation) ResetFilePath() {
	m.file_path = nil
}

// SetSource sets the "source" field.
func (m *ScreenshotMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ScreenshotMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Screenshot entity.
// If the Screenshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreenshotMutation) OldSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *ScreenshotMutation) ClearSource() {
	m.source = nil
	m.clearedFields[screenshot.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *ScreenshotMutation) SourceCleared() bool {
	_, ok := m.clearedFields[screenshot.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *ScreenshotMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, screenshot.FieldSource)
}

// SetOcrText sets the "ocr_text" field.
func (m *ScreenshotMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ScreenshotMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the Screenshot entity.
// If the Screenshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreenshotMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ScreenshotMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[screenshot.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ScreenshotMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[screenshot.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ScreenshotMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, screenshot.FieldOcrText)
}

// SetProcessed sets the "processed" field.
func (m *ScreenshotMutation) SetProcessed(b bool) {
	m.processed = &b
}

// Processed returns the value of the "processed" field in the mutation.
func (m *ScreenshotMutation) Processed() (r bool, exists bool) {
	v := m.processed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessed returns the old "processed" field's value of the Screenshot entity.
// If the Screenshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreenshotMutation) OldProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessed: %w", err)
	}
	return oldValue.Processed, nil
}

// ResetProcessed resets all changes to the "processed" field.
func (m *ScreenshotMutation) ResetProcessed() {
	m.processed = nil
}

// SetNotes sets the "notes" field.
func (m *ScreenshotMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ScreenshotMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Screenshot entity.
// If the Screenshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreenshotMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ScreenshotMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[screenshot.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ScreenshotMutation) NotesCleared() bool {
	_, ok := m.clearedFields[screenshot.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ScreenshotMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, screenshot.FieldNotes)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ScreenshotMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ScreenshotMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Screenshot entity.
// If the Screenshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreenshotMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ScreenshotMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddNumberIDs adds the "numbers" edge to the ExtractedNumber entity by ids.
func (m *ScreenshotMutation) AddNumberIDs(ids ...uuid.UUID) {
	if m.numbers == nil {
		m.numbers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.numbers[ids[i]] = struct{}{}
	}
}

// ClearNumbers clears the "numbers" edge to the ExtractedNumber entity.
func (m *ScreenshotMutation) ClearNumbers() {
	m.clearednumbers = true
}

// NumbersCleared reports if the "numbers" edge to the ExtractedNumber entity was cleared.
func (m *ScreenshotMutation) NumbersCleared() bool {
	return m.clearednumbers
}

// RemoveNumberIDs removes the "numbers" edge to the ExtractedNumber entity by IDs.
func (m *ScreenshotMutation) RemoveNumberIDs(ids ...uuid.UUID) {
	if m.removednumbers == nil {
		m.removednumbers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.numbers, ids[i])
		m.removednumbers[ids[i]] = struct{}{}
	}
}

// RemovedNumbers returns the removed IDs of the "numbers" edge to the ExtractedNumber entity.
func (m *ScreenshotMutation) RemovedNumbersIDs() (ids []uuid.UUID) {
	for id := range m.removednumbers {
		ids = append(ids, id)
	}
	return
}

// NumbersIDs returns the "numbers" edge IDs in the mutation.
func (m *ScreenshotMutation) NumbersIDs() (ids []uuid.UUID) {
	for id := range m.numbers {
		ids = append(ids, id)
	}
	return
}

// ResetNumbers resets all changes to the "numbers" edge.
func (m *ScreenshotMutation) ResetNumbers() {
	m.numbers = nil
	m.clearednumbers = false
	m.removednumbers = nil
}

// Where appends a list predicates to the ScreenshotMutation builder.
func (m *ScreenshotMutation) Where(ps ...predicate.Screenshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScreenshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScreenshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Screenshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScreenshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScreenshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Screenshot).
func (m *ScreenshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScreenshotMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.filename != nil {
		fields = append(fields, screenshot.FieldFilename)
	}
	if m.file_path != nil {
		fields = append(fields, screenshot.FieldFilePath)
	}
	if m.source != nil {
		fields = append(fields, screenshot.FieldSource)
	}
	if m.ocr_text != nil {
		fields = append(fields, screenshot.FieldOcrText)
	}
	if m.processed != nil {
		fields = append(fields, screenshot.FieldProcessed)
	}
	if m.notes != nil {
		fields = append(fields, screenshot.FieldNotes)
	}
	if m.uploaded_at != nil {
		fields = append(fields, screenshot.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScreenshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case screenshot.FieldFilename:
		return m.Filename()
	case screenshot.FieldFilePath:
		return m.FilePath()
	case screenshot.FieldSource:
		return m.Source()
	case screenshot.FieldOcrText:
		return m.OcrText()
	case screenshot.FieldProcessed:
		return m.Processed()
	case screenshot.FieldNotes:
		return m.Notes()
	case screenshot.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScreenshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case screenshot.FieldFilename:
		return m.OldFilename(ctx)
	case screenshot.FieldFilePath:
		return m.OldFilePath(ctx)
	case screenshot.FieldSource:
		return m.OldSource(ctx)
	case screenshot.FieldOcrText:
		return m.OldOcrText(ctx)
	case screenshot.FieldProcessed:
		return m.OldProcessed(ctx)
	case screenshot.FieldNotes:
		return m.OldNotes(ctx)
	case screenshot.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Screenshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScreenshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case screenshot.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case screenshot.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case screenshot.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case screenshot.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case screenshot.FieldProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessed(v)
		return nil
	case screenshot.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case screenshot.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Screenshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScreenshotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScreenshotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScreenshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Screenshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScreenshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(screenshot.FieldSource) {
		fields = append(fields, screenshot.FieldSource)
	}
	if m.FieldCleared(screenshot.FieldOcrText) {
		fields = append(fields, screenshot.FieldOcrText)
	}
	if m.FieldCleared(screenshot.FieldNotes) {
		fields = append(fields, screenshot.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScreenshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScreenshotMutation) ClearField(name string) error {
	switch name {
	case screenshot.FieldSource:
		m.ClearSource()
		return nil
	case screenshot.FieldOcrText:
		m.ClearOcrText()
		return nil
	case screenshot.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Screenshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScreenshotMutation) ResetField(name string) error {
	switch name {
	case screenshot.FieldFilename:
		m.ResetFilename()
		return nil
	case screenshot.FieldFilePath:
		m.ResetFilePath()
		return nil
	case screenshot.FieldSource:
		m.ResetSource()
		return nil
	case screenshot.FieldOcrText:
		m.ResetOcrText()
		return nil
	case screenshot.FieldProcessed:
		m.ResetProcessed()
		return nil
	case screenshot.FieldNotes:
		m.ResetNotes()
		return nil
	case screenshot.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Screenshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScreenshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.numbers != nil {
		edges = append(edges, screenshot.EdgeNumbers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScreenshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case screenshot.EdgeNumbers:
		ids := make([]ent.Value, 0, len(m.numbers))
		for id := range m.numbers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScreenshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removednumbers != nil {
		edges = append(edges, screenshot.EdgeNumbers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScreenshotMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case screenshot.EdgeNumbers:
		ids := make([]ent.Value, 0, len(m.removednumbers))
		for id := range m.removednumbers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScreenshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearednumbers {
		edges = append(edges, screenshot.EdgeNumbers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScreenshotMutation) EdgeCleared(name string) bool {
	switch name {
	case screenshot.EdgeNumbers:
		return m.clearednumbers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScreenshotMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Screenshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScreenshotMutation) ResetEdge(name string) error {
	switch name {
	case screenshot.EdgeNumbers:
		m.ResetNumbers()
		return nil
	}
	return fmt.Errorf("unknown Screenshot edge %s", name)
}
