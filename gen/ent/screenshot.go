// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
)

// Screenshot is the model entity for the Screenshot schema.
type Screenshot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// Source holds the value of the "source" field.
	Source *string `json:"source,omitempty"`
	// OcrText holds the value of the "ocr_text" field.
	OcrText *string `json:"ocr_text,omitempty"`
	// Processed holds the value of the "processed" field.
	Processed bool `json:"processed,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScreenshotQuery when eager-loading is set.
	Edges        ScreenshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScreenshotEdges holds the relations/edges for other nodes in the graph.
type ScreenshotEdges struct {
	// Numbers holds the value of the numbers edge.
	Numbers []*ExtractedNumber `json:"numbers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// NumbersOrErr returns the Numbers value or an error if the edge
// was not loaded in eager-loading.
func (e ScreenshotEdges) NumbersOrErr() ([]*ExtractedNumber, error) {
	if e.loadedTypes[0] {
		return e.Numbers, nil
	}
	return nil, &NotLoadedError{edge: "numbers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Screenshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case screenshot.FieldProcessed:
			values[i] = new(sql.NullBool)
		case screenshot.FieldFilename, screenshot.FieldFilePath, screenshot.FieldSource, screenshot.FieldOcrText, screenshot.FieldNotes:
			values[i] = new(sql.NullString)
		case screenshot.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case screenshot.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Screenshot fields.
func (_m *Screenshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case screenshot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case screenshot.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case screenshot.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case screenshot.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = new(string)
				*_m.Source = value.String
			}
		case screenshot.FieldOcrText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_text", values[i])
			} else if value.Valid {
				_m.OcrText = new(string)
				*_m.OcrText = value.String
			}
		case screenshot.FieldProcessed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field processed", values[i])
			} else if value.Valid {
				_m.Processed = value.Bool
			}
		case screenshot.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case screenshot.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Screenshot.
// This includes values selected through modifiers, order, etc.
func (_m *Screenshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNumbers queries the "numbers" edge of the Screenshot entity.
func (_m *Screenshot) QueryNumbers() *ExtractedNumberQuery {
	return NewScreenshotClient(_m.config).QueryNumbers(_m)
}

// Update returns a builder for updating this Screenshot.
// Note that you need to call Screenshot.Unwrap() before calling this method if this Screenshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Screenshot) Update() *ScreenshotUpdateOne {
	return NewScreenshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Screenshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Screenshot) Unwrap() *Screenshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Screenshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Screenshot) String() string {
	var builder strings.Builder
	builder.WriteString("Screenshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	if v := _m.Source; v != nil {
		builder.WriteString("source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OcrText; v != nil {
		builder.WriteString("ocr_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Processed))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Screenshots is a parsable slice of Screenshot.
type Screenshots []*Screenshot
