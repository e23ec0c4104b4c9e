// Code generated by ent, DO NOT EDIT.

package extractednumber

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractednumber type in the database.
	Label = "extracted_number"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldScreenshotID holds the string denoting the screenshot_id field in the database.
	FieldScreenshotID = "screenshot_id"
	// FieldRawNumber holds the string denoting the raw_number field in the database.
	FieldRawNumber = "raw_number"
	// FieldNormalizedNumber holds the string denoting the normalized_number field in the database.
	FieldNormalizedNumber = "normalized_number"
	// FieldCountryCode holds the string denoting the country_code field in the database.
	FieldCountryCode = "country_code"
	// FieldCountryName holds the string denoting the country_name field in the database.
	FieldCountryName = "country_name"
	// FieldCarrier holds the string denoting the carrier field in the database.
	FieldCarrier = "carrier"
	// FieldNumberType holds the string denoting the number_type field in the database.
	FieldNumberType = "number_type"
	// FieldIsValid holds the string denoting the is_valid field in the database.
	FieldIsValid = "is_valid"
	// FieldExtractedAt holds the string denoting the extracted_at field in the database.
	FieldExtractedAt = "extracted_at"
	// EdgeScreenshot holds the string denoting the screenshot edge name in mutations.
	EdgeScreenshot = "screenshot"
	// EdgeGroups holds the string denoting the groups edge name in mutations.
	EdgeGroups = "groups"
	// Table holds the table name of the extractednumber in the database.
	Table = "extracted_numbers"
	// ScreenshotTable is the table that holds the screenshot relation/edge.
	ScreenshotTable = "extracted_numbers"
	// ScreenshotInverseTable is the table name for the Screenshot entity.
	// It exists in this package in order to avoid circular dependency with the "screenshot" package.
	ScreenshotInverseTable = "screenshots"
	// ScreenshotColumn is the table column denoting the screenshot relation/edge.
	ScreenshotColumn = "screenshot_id"
	// GroupsTable is the table that holds the groups relation/edge. The primary key declared below.
	GroupsTable = "group_numbers"
	// GroupsInverseTable is the table name for the Group entity.
	// It exists in this package in order to avoid circular dependency with the "group" package.
	GroupsInverseTable = "groups"
)

// Columns holds all SQL columns for extractednumber fields.
var Columns = []string{
	FieldID,
	FieldScreenshotID,
	FieldRawNumber,
	FieldNormalizedNumber,
	FieldCountryCode,
	FieldCountryName,
	FieldCarrier,
	FieldNumberType,
	FieldIsValid,
	FieldExtractedAt,
}

var (
	// GroupsPrimaryKey and GroupsColumn2 are the table columns denoting the
	// primary key for the groups relation (M2M).
	GroupsPrimaryKey = []string{"group_id", "extracted_number_id"}
)

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
	// RawNumberValidator is a validator for the "raw_number" field. It is called by the builders before save.
	RawNumberValidator func(string) error
	// NormalizedNumberValidator is a validator for the "normalized_number" field. It is called by the builders before save.
	NormalizedNumberValidator func(string) error
	// CountryCodeValidator is a validator for the "country_code" field. It is called by the builders before save.
	CountryCodeValidator func(string) error
	// CountryNameValidator is a validator for the "country_name" field. It is called by the builders before save.
	CountryNameValidator func(string) error
	// CarrierValidator is a validator for the "carrier" field. It is called by the builders before save.
	CarrierValidator func(string) error
	// NumberTypeValidator is a validator for the "number_type" field. It is called by the builders before save.
	NumberTypeValidator func(string) error
	// DefaultIsValid holds the default value on creation for the "is_valid" field.
	DefaultIsValid bool
	// DefaultExtractedAt holds the default value on creation for the "extracted_at" field.
	DefaultExtractedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractedNumber queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScreenshotID orders the results by the screenshot_id field.
func ByScreenshotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScreenshotID, opts...).ToFunc()
}

// ByRawNumber orders the results by the raw_number field.
func ByRawNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawNumber, opts...).ToFunc()
}

// ByNormalizedNumber orders the results by the normalized_number field.
func ByNormalizedNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedNumber, opts...).ToFunc()
}

// ByCountryCode orders the results by the country_code field.
func ByCountryCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountryCode, opts...).ToFunc()
}

// ByCountryName orders the results by the country_name field.
func ByCountryName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountryName, opts...).ToFunc()
}

// ByCarrier orders the results by the carrier field.
func ByCarrier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCarrier, opts...).ToFunc()
}

// ByNumberType orders the results by the number_type field.
func ByNumberType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumberType, opts...).ToFunc()
}

// ByIsValid orders the results by the is_valid field.
func ByIsValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsValid, opts...).ToFunc()
}

// ByExtractedAt orders the results by the extracted_at field.
func ByExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAt, opts...).ToFunc()
}

// ByScreenshotField orders the results by screenshot field.
func ByScreenshotField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScreenshotStep(), sql.OrderByField(field, opts...))
	}
}

// ByGroupsCount orders the results by groups count.
func ByGroupsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGroupsStep(), opts...)
	}
}

// ByGroups orders the results by groups terms.
func ByGroups(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newScreenshotStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScreenshotInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ScreenshotTable, ScreenshotColumn),
	)
}
func newGroupsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, GroupsTable, GroupsPrimaryKey...),
	)
}
