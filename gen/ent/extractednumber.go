// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/gen/ent/extractednumber"
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
)

// ExtractedNumber is the model entity for the ExtractedNumber schema.
type ExtractedNumber struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ScreenshotID holds the value of the "screenshot_id" field.
	ScreenshotID uuid.UUID `json:"screenshot_id,omitempty"`
	// RawNumber holds the value of the "raw_number" field.
	RawNumber string `json:"raw_number,omitempty"`
	// NormalizedNumber holds the value of the "normalized_number" field.
	NormalizedNumber *string `json:"normalized_number,omitempty"`
	// CountryCode holds the value of the "country_code" field.
	CountryCode *string `json:"country_code,omitempty"`
	// CountryName holds the value of the "country_name" field.
	CountryName *string `json:"country_name,omitempty"`
	// Carrier holds the value of the "carrier" field.
	Carrier *string `json:"carrier,omitempty"`
	// NumberType holds the value of the "number_type" field.
	NumberType *string `json:"number_type,omitempty"`
	// IsValid holds the value of the "is_valid" field.
	IsValid bool `json:"is_valid,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedNumberQuery when eager-loading is set.
	Edges        ExtractedNumberEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedNumberEdges holds the relations/edges for other nodes in the graph.
type ExtractedNumberEdges struct {
	// Screenshot holds the value of the screenshot edge.
	Screenshot *Screenshot `json:"screenshot,omitempty"`
	// Groups holds the value of the groups edge.
	Groups []*Group `json:"groups,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ScreenshotOrErr returns the Screenshot value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedNumberEdges) ScreenshotOrErr() (*Screenshot, error) {
	if e.Screenshot != nil {
		return e.Screenshot, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: screenshot.Label}
	}
	return nil, &NotLoadedError{edge: "screenshot"}
}

// GroupsOrErr returns the Groups value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractedNumberEdges) GroupsOrErr() ([]*Group, error) {
	if e.loadedTypes[1] {
		return e.Groups, nil
	}
	return nil, &NotLoadedError{edge: "groups"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedNumber) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractednumber.FieldIsValid:
			values[i] = new(sql.NullBool)
		case extractednumber.FieldRawNumber, extractednumber.FieldNormalizedNumber, extractednumber.FieldCountryCode, extractednumber.FieldCountryName, extractednumber.FieldCarrier, extractednumber.FieldNumberType:
			values[i] = new(sql.NullString)
		case extractednumber.FieldExtractedAt:
			values[i] = new(sql.NullTime)
		case extractednumber.FieldID, extractednumber.FieldScreenshotID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedNumber fields.
func (_m *ExtractedNumber) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractednumber.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractednumber.FieldScreenshotID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field screenshot_id", values[i])
			} else if value != nil {
				_m.ScreenshotID = *value
			}
		case extractednumber.FieldRawNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_number", values[i])
			} else if value.Valid {
				_m.RawNumber = value.String
			}
		case extractednumber.FieldNormalizedNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_number", values[i])
			} else if value.Valid {
				_m.NormalizedNumber = new(string)
				*_m.NormalizedNumber = value.String
			}
		case extractednumber.FieldCountryCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country_code", values[i])
			} else if value.Valid {
				_m.CountryCode = new(string)
				*_m.CountryCode = value.String
			}
		case extractednumber.FieldCountryName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country_name", values[i])
			} else if value.Valid {
				_m.CountryName = new(string)
				*_m.CountryName = value.String
			}
		case extractednumber.FieldCarrier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field carrier", values[i])
			} else if value.Valid {
				_m.Carrier = new(string)
				*_m.Carrier = value.String
			}
		case extractednumber.FieldNumberType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field number_type", values[i])
			} else if value.Valid {
				_m.NumberType = new(string)
				*_m.NumberType = value.String
			}
		case extractednumber.FieldIsValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_valid", values[i])
			} else if value.Valid {
				_m.IsValid = value.Bool
			}
		case extractednumber.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedNumber.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedNumber) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScreenshot queries the "screenshot" edge of the ExtractedNumber entity.
func (_m *ExtractedNumber) QueryScreenshot() *ScreenshotQuery {
	return NewExtractedNumberClient(_m.config).QueryScreenshot(_m)
}

// QueryGroups queries the "groups" edge of the ExtractedNumber entity.
func (_m *ExtractedNumber) QueryGroups() *GroupQuery {
	return NewExtractedNumberClient(_m.config).QueryGroups(_m)
}

// Update returns a builder for updating this ExtractedNumber.
// Note that you need to call ExtractedNumber.Unwrap() before calling this method if this ExtractedNumber
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedNumber) Update() *ExtractedNumberUpdateOne {
	return NewExtractedNumberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedNumber entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedNumber) Unwrap() *ExtractedNumber {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedNumber is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedNumber) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedNumber(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("screenshot_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScreenshotID))
	builder.WriteString(", ")
	builder.WriteString("raw_number=")
	builder.WriteString(_m.RawNumber)
	builder.WriteString(", ")
	if v := _m.NormalizedNumber; v != nil {
		builder.WriteString("normalized_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CountryCode; v != nil {
		builder.WriteString("country_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CountryName; v != nil {
		builder.WriteString("country_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Carrier; v != nil {
		builder.WriteString("carrier=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NumberType; v != nil {
		builder.WriteString("number_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsValid))
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedNumbers is a parsable slice of ExtractedNumber.
type ExtractedNumbers []*ExtractedNumber
