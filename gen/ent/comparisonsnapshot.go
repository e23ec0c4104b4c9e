// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/gen/ent/comparisonsnapshot"
)

// ComparisonSnapshot is the model entity for the ComparisonSnapshot schema.
type ComparisonSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TotalExtracted holds the value of the "total_extracted" field.
	TotalExtracted int `json:"total_extracted,omitempty"`
	// TotalContacts holds the value of the "total_contacts" field.
	TotalContacts int `json:"total_contacts,omitempty"`
	// ExactMatches holds the value of the "exact_matches" field.
	ExactMatches int `json:"exact_matches,omitempty"`
	// PartialMatches holds the value of the "partial_matches" field.
	PartialMatches int `json:"partial_matches,omitempty"`
	// NewNumbers holds the value of the "new_numbers" field.
	NewNumbers int `json:"new_numbers,omitempty"`
	// NotCompared holds the value of the "not_compared" field.
	NotCompared int `json:"not_compared,omitempty"`
	// MatchRate holds the value of the "match_rate" field.
	MatchRate float64 `json:"match_rate,omitempty"`
	// ComparedAt holds the value of the "compared_at" field.
	ComparedAt   time.Time `json:"compared_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ComparisonSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case comparisonsnapshot.FieldMatchRate:
			values[i] = new(sql.NullFloat64)
		case comparisonsnapshot.FieldTotalExtracted, comparisonsnapshot.FieldTotalContacts, comparisonsnapshot.FieldExactMatches, comparisonsnapshot.FieldPartialMatches, comparisonsnapshot.FieldNewNumbers, comparisonsnapshot.FieldNotCompared:
			values[i] = new(sql.NullInt64)
		case comparisonsnapshot.FieldComparedAt:
			values[i] = new(sql.NullTime)
		case comparisonsnapshot.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ComparisonSnapshot fields.
func (_m *ComparisonSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case comparisonsnapshot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case comparisonsnapshot.FieldTotalExtracted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_extracted", values[i])
			} else if value.Valid {
				_m.TotalExtracted = int(value.Int64)
			}
		case comparisonsnapshot.FieldTotalContacts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_contacts", values[i])
			} else if value.Valid {
				_m.TotalContacts = int(value.Int64)
			}
		case comparisonsnapshot.FieldExactMatches:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exact_matches", values[i])
			} else if value.Valid {
				_m.ExactMatches = int(value.Int64)
			}
		case comparisonsnapshot.FieldPartialMatches:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field partial_matches", values[i])
			} else if value.Valid {
				_m.PartialMatches = int(value.Int64)
			}
		case comparisonsnapshot.FieldNewNumbers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_numbers", values[i])
			} else if value.Valid {
				_m.NewNumbers = int(value.Int64)
			}
		case comparisonsnapshot.FieldNotCompared:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field not_compared", values[i])
			} else if value.Valid {
				_m.NotCompared = int(value.Int64)
			}
		case comparisonsnapshot.FieldMatchRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field match_rate", values[i])
			} else if value.Valid {
				_m.MatchRate = value.Float64
			}
		case comparisonsnapshot.FieldComparedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field compared_at", values[i])
			} else if value.Valid {
				_m.ComparedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ComparisonSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ComparisonSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ComparisonSnapshot.
// Note that you need to call ComparisonSnapshot.Unwrap() before calling this method if this ComparisonSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ComparisonSnapshot) Update() *ComparisonSnapshotUpdateOne {
	return NewComparisonSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ComparisonSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ComparisonSnapshot) Unwrap() *ComparisonSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ComparisonSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ComparisonSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ComparisonSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("total_extracted=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalExtracted))
	builder.WriteString(", ")
	builder.WriteString("total_contacts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalContacts))
	builder.WriteString(", ")
	builder.WriteString("exact_matches=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExactMatches))
	builder.WriteString(", ")
	builder.WriteString("partial_matches=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartialMatches))
	builder.WriteString(", ")
	builder.WriteString("new_numbers=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewNumbers))
	builder.WriteString(", ")
	builder.WriteString("not_compared=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotCompared))
	builder.WriteString(", ")
	builder.WriteString("match_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchRate))
	builder.WriteString(", ")
	builder.WriteString("compared_at=")
	builder.WriteString(_m.ComparedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ComparisonSnapshots is a parsable slice of ComparisonSnapshot.
type ComparisonSnapshots []*ComparisonSnapshot
