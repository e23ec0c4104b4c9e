// Code generated by ent, DO NOT EDIT.

package existingcontact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the existingcontact type in the database.
	Label = "existing_contact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNormalizedNumber holds the string denoting the normalized_number field in the database.
	FieldNormalizedNumber = "normalized_number"
	// FieldRawNumber holds the string denoting the raw_number field in the database.
	FieldRawNumber = "raw_number"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldImportedAt holds the string denoting the imported_at field in the database.
	FieldImportedAt = "imported_at"
	// Table holds the table name of the existingcontact in the database.
	Table = "existing_contacts"
)

// Columns holds all SQL columns for existingcontact fields.
var Columns = []string{
	FieldID,
	FieldNormalizedNumber,
	FieldRawNumber,
	FieldName,
	FieldEmail,
	FieldCompany,
	FieldSource,
	FieldExternalID,
	FieldImportedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NormalizedNumberValidator is a validator for the "normalized_number" field. It is called by the builders before save.
	NormalizedNumberValidator func(string) error
	// RawNumberValidator is a validator for the "raw_number" field. It is called by the builders before save.
	RawNumberValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// CompanyValidator is a validator for the "company" field. It is called by the builders before save.
	CompanyValidator func(string) error
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// ExternalIDValidator is a validator for the "external_id" field. It is called by the builders before save.
	ExternalIDValidator func(string) error
	// DefaultImportedAt holds the default value on creation for the "imported_at" field.
	DefaultImportedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExistingContact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNormalizedNumber orders the results by the normalized_number field.
func ByNormalizedNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedNumber, opts...).ToFunc()
}

// ByRawNumber orders the results by the raw_number field.
func ByRawNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawNumber, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByImportedAt orders the results by the imported_at field.
func ByImportedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportedAt, opts...).ToFunc()
}
