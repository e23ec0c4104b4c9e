// Code generated by ent, DO NOT EDIT.

package comparisonsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the comparisonsnapshot type in the database.
	Label = "comparison_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTotalExtracted holds the string denoting the total_extracted field in the database.
	FieldTotalExtracted = "total_extracted"
	// FieldTotalContacts holds the string denoting the total_contacts field in the database.
	FieldTotalContacts = "total_contacts"
	// FieldExactMatches holds the string denoting the exact_matches field in the database.
	FieldExactMatches = "exact_matches"
	// FieldPartialMatches holds the string denoting the partial_matches field in the database.
	FieldPartialMatches = "partial_matches"
	// FieldNewNumbers holds the string denoting the new_numbers field in the database.
	FieldNewNumbers = "new_numbers"
	// FieldNotCompared holds the string denoting the not_compared field in the database.
	FieldNotCompared = "not_compared"
	// FieldMatchRate holds the string denoting the match_rate field in the database.
	FieldMatchRate = "match_rate"
	// FieldComparedAt holds the string denoting the compared_at field in the database.
	FieldComparedAt = "compared_at"
	// Table holds the table name of the comparisonsnapshot in the database.
	Table = "comparison_snapshots"
)

// Columns holds all SQL columns for comparisonsnapshot fields.
var Columns = []string{
	FieldID,
	FieldTotalExtracted,
	FieldTotalContacts,
	FieldExactMatches,
	FieldPartialMatches,
	FieldNewNumbers,
	FieldNotCompared,
	FieldMatchRate,
	FieldComparedAt,
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
	// TotalExtractedValidator is a validator for the "total_extracted" field. It is called by the builders before save.
	TotalExtractedValidator func(int) error
	// TotalContactsValidator is a validator for the "total_contacts" field. It is called by the builders before save.
	TotalContactsValidator func(int) error
	// ExactMatchesValidator is a validator for the "exact_matches" field. It is called by the builders before save.
	ExactMatchesValidator func(int) error
	// PartialMatchesValidator is a validator for the "partial_matches" field. It is called by the builders before save.
	PartialMatchesValidator func(int) error
	// NewNumbersValidator is a validator for the "new_numbers" field. It is called by the builders before save.
	NewNumbersValidator func(int) error
	// NotComparedValidator is a validator for the "not_compared" field. It is called by the builders before save.
	NotComparedValidator func(int) error
	// DefaultComparedAt holds the default value on creation for the "compared_at" field.
	DefaultComparedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ComparisonSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTotalExtracted orders the results by the total_extracted field.
func ByTotalExtracted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalExtracted, opts...).ToFunc()
}

// ByTotalContacts orders the results by the total_contacts field.
func ByTotalContacts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalContacts, opts...).ToFunc()
}

// ByExactMatches orders the results by the exact_matches field.
func ByExactMatches(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExactMatches, opts...).ToFunc()
}

// ByPartialMatches orders the results by the partial_matches field.
func ByPartialMatches(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartialMatches, opts...).ToFunc()
}

// ByNewNumbers orders the results by the new_numbers field.
func ByNewNumbers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewNumbers, opts...).ToFunc()
}

// ByNotCompared orders the results by the not_compared field.
func ByNotCompared(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotCompared, opts...).ToFunc()
}

// ByMatchRate orders the results by the match_rate field.
func ByMatchRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchRate, opts...).ToFunc()
}

// ByComparedAt orders the results by the compared_at field.
func ByComparedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComparedAt, opts...).ToFunc()
}
