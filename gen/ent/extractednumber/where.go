// Code generated by ent, DO NOT EDIT.

package extractednumber

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLTE(FieldID, id))
}

// ScreenshotID applies equality check predicate on the "screenshot_id" field. It's identical to ScreenshotIDEQ.
func ScreenshotID(v uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldScreenshotID, v))
}

// RawNumber applies equality check predicate on the "raw_number" field. It's identical to RawNumberEQ.
func RawNumber(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldRawNumber, v))
}

// NormalizedNumber applies equality check predicate on the "normalized_number" field. It's identical to NormalizedNumberEQ.
func NormalizedNumber(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldNormalizedNumber, v))
}

// CountryCode applies equality check predicate on the "country_code" field. It's identical to CountryCodeEQ.
func CountryCode(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldCountryCode, v))
}

// CountryName applies equality check predicate on the "country_name" field. It's identical to CountryNameEQ.
func CountryName(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldCountryName, v))
}

// Carrier applies equality check predicate on the "carrier" field. It's identical to CarrierEQ.
func Carrier(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldCarrier, v))
}

// NumberType applies equality check predicate on the "number_type" field. It's identical to NumberTypeEQ.
func NumberType(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldNumberType, v))
}

// IsValid applies equality check predicate on the "is_valid" field. It's identical to IsValidEQ.
func IsValid(v bool) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldIsValid, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldExtractedAt, v))
}

// ScreenshotIDEQ applies the EQ predicate on the "screenshot_id" field.
func ScreenshotIDEQ(v uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldScreenshotID, v))
}

// ScreenshotIDNEQ applies the NEQ predicate on the "screenshot_id" field.
func ScreenshotIDNEQ(v uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNEQ(FieldScreenshotID, v))
}

// ScreenshotIDIn applies the In predicate on the "screenshot_id" field.
func ScreenshotIDIn(vs ...uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIn(FieldScreenshotID, vs...))
}

// ScreenshotIDNotIn applies the NotIn predicate on the "screenshot_id" field.
func ScreenshotIDNotIn(vs ...uuid.UUID) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotIn(FieldScreenshotID, vs...))
}

// RawNumberEQ applies the EQ predicate on the "raw_number" field.
func RawNumberEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldRawNumber, v))
}

// RawNumberNEQ applies the NEQ predicate on the "raw_number" field.
func RawNumberNEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNEQ(FieldRawNumber, v))
}

// RawNumberIn applies the In predicate on the "raw_number" field.
func RawNumberIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIn(FieldRawNumber, vs...))
}

// RawNumberNotIn applies the NotIn predicate on the "raw_number" field.
func RawNumberNotIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotIn(FieldRawNumber, vs...))
}

// RawNumberGT applies the GT predicate on the "raw_number" field.
func RawNumberGT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGT(FieldRawNumber, v))
}

// RawNumberGTE applies the GTE predicate on the "raw_number" field.
func RawNumberGTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGTE(FieldRawNumber, v))
}

// RawNumberLT applies the LT predicate on the "raw_number" field.
func RawNumberLT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLT(FieldRawNumber, v))
}

// RawNumberLTE applies the LTE predicate on the "raw_number" field.
func RawNumberLTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLTE(FieldRawNumber, v))
}

// RawNumberContains applies the Contains predicate on the "raw_number" field.
func RawNumberContains(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContains(FieldRawNumber, v))
}

// RawNumberHasPrefix applies the HasPrefix predicate on the "raw_number" field.
func RawNumberHasPrefix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasPrefix(FieldRawNumber, v))
}

// RawNumberHasSuffix applies the HasSuffix predicate on the "raw_number" field.
func RawNumberHasSuffix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasSuffix(FieldRawNumber, v))
}

// RawNumberEqualFold applies the EqualFold predicate on the "raw_number" field.
func RawNumberEqualFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEqualFold(FieldRawNumber, v))
}

// RawNumberContainsFold applies the ContainsFold predicate on the "raw_number" field.
func RawNumberContainsFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContainsFold(FieldRawNumber, v))
}

// NormalizedNumberEQ applies the EQ predicate on the "normalized_number" field.
func NormalizedNumberEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldNormalizedNumber, v))
}

// NormalizedNumberNEQ applies the NEQ predicate on the "normalized_number" field.
func NormalizedNumberNEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNEQ(FieldNormalizedNumber, v))
}

// NormalizedNumberIn applies the In predicate on the "normalized_number" field.
func NormalizedNumberIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIn(FieldNormalizedNumber, vs...))
}

// NormalizedNumberNotIn applies the NotIn predicate on the "normalized_number" field.
func NormalizedNumberNotIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotIn(FieldNormalizedNumber, vs...))
}

// NormalizedNumberGT applies the GT predicate on the "normalized_number" field.
func NormalizedNumberGT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGT(FieldNormalizedNumber, v))
}

// NormalizedNumberGTE applies the GTE predicate on the "normalized_number" field.
func NormalizedNumberGTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGTE(FieldNormalizedNumber, v))
}

// NormalizedNumberLT applies the LT predicate on the "normalized_number" field.
func NormalizedNumberLT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLT(FieldNormalizedNumber, v))
}

// NormalizedNumberLTE applies the LTE predicate on the "normalized_number" field.
func NormalizedNumberLTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLTE(FieldNormalizedNumber, v))
}

// NormalizedNumberContains applies the Contains predicate on the "normalized_number" field.
func NormalizedNumberContains(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContains(FieldNormalizedNumber, v))
}

// NormalizedNumberHasPrefix applies the HasPrefix predicate on the "normalized_number" field.
func NormalizedNumberHasPrefix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasPrefix(FieldNormalizedNumber, v))
}

// NormalizedNumberHasSuffix applies the HasSuffix predicate on the "normalized_number" field.
func NormalizedNumberHasSuffix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasSuffix(FieldNormalizedNumber, v))
}

// NormalizedNumberIsNil applies the IsNil predicate on the "normalized_number" field.
func NormalizedNumberIsNil() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIsNull(FieldNormalizedNumber))
}

// NormalizedNumberNotNil applies the NotNil predicate on the "normalized_number" field.
func NormalizedNumberNotNil() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotNull(FieldNormalizedNumber))
}

// NormalizedNumberEqualFold applies the EqualFold predicate on the "normalized_number" field.
func NormalizedNumberEqualFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEqualFold(FieldNormalizedNumber, v))
}

// NormalizedNumberContainsFold applies the ContainsFold predicate on the "normalized_number" field.
func NormalizedNumberContainsFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContainsFold(FieldNormalizedNumber, v))
}

// CountryCodeEQ applies the EQ predicate on the "country_code" field.
func CountryCodeEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldCountryCode, v))
}

// CountryCodeNEQ applies the NEQ predicate on the "country_code" field.
func CountryCodeNEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNEQ(FieldCountryCode, v))
}

// CountryCodeIn applies the In predicate on the "country_code" field.
func CountryCodeIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIn(FieldCountryCode, vs...))
}

// CountryCodeNotIn applies the NotIn predicate on the "country_code" field.
func CountryCodeNotIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotIn(FieldCountryCode, vs...))
}

// CountryCodeGT applies the GT predicate on the "country_code" field.
func CountryCodeGT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGT(FieldCountryCode, v))
}

// CountryCodeGTE applies the GTE predicate on the "country_code" field.
func CountryCodeGTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGTE(FieldCountryCode, v))
}

// CountryCodeLT applies the LT predicate on the "country_code" field.
func CountryCodeLT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLT(FieldCountryCode, v))
}

// CountryCodeLTE applies the LTE predicate on the "country_code" field.
func CountryCodeLTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLTE(FieldCountryCode, v))
}

// CountryCodeContains applies the Contains predicate on the "country_code" field.
func CountryCodeContains(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContains(FieldCountryCode, v))
}

// CountryCodeHasPrefix applies the HasPrefix predicate on the "country_code" field.
func CountryCodeHasPrefix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasPrefix(FieldCountryCode, v))
}

// CountryCodeHasSuffix applies the HasSuffix predicate on the "country_code" field.
func CountryCodeHasSuffix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasSuffix(FieldCountryCode, v))
}

// CountryCodeIsNil applies the IsNil predicate on the "country_code" field.
func CountryCodeIsNil() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIsNull(FieldCountryCode))
}

// CountryCodeNotNil applies the NotNil predicate on the "country_code" field.
func CountryCodeNotNil() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotNull(FieldCountryCode))
}

// CountryCodeEqualFold applies the EqualFold predicate on the "country_code" field.
func CountryCodeEqualFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEqualFold(FieldCountryCode, v))
}

// CountryCodeContainsFold applies the ContainsFold predicate on the "country_code" field.
func CountryCodeContainsFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContainsFold(FieldCountryCode, v))
}

// CountryNameEQ applies the EQ predicate on the "country_name" field.
func CountryNameEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldCountryName, v))
}

// CountryNameNEQ applies the NEQ predicate on the "country_name" field.
func CountryNameNEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNEQ(FieldCountryName, v))
}

// CountryNameIn applies the In predicate on the "country_name" field.
func CountryNameIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIn(FieldCountryName, vs...))
}

// CountryNameNotIn applies the NotIn predicate on the "country_name" field.
func CountryNameNotIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotIn(FieldCountryName, vs...))
}

// CountryNameGT applies the GT predicate on the "country_name" field.
func CountryNameGT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGT(FieldCountryName, v))
}

// CountryNameGTE applies the GTE predicate on the "country_name" field.
func CountryNameGTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGTE(FieldCountryName, v))
}

// CountryNameLT applies the LT predicate on the "country_name" field.
func CountryNameLT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLT(FieldCountryName, v))
}

// CountryNameLTE applies the LTE predicate on the "country_name" field.
func CountryNameLTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLTE(FieldCountryName, v))
}

// CountryNameContains applies the Contains predicate on the "country_name" field.
func CountryNameContains(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContains(FieldCountryName, v))
}

// CountryNameHasPrefix applies the HasPrefix predicate on the "country_name" field.
func CountryNameHasPrefix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasPrefix(FieldCountryName, v))
}

// CountryNameHasSuffix applies the HasSuffix predicate on the "country_name" field.
func CountryNameHasSuffix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasSuffix(FieldCountryName, v))
}

// CountryNameIsNil applies the IsNil predicate on the "country_name" field.
func CountryNameIsNil() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIsNull(FieldCountryName))
}

// CountryNameNotNil applies the NotNil predicate on the "country_name" field.
func CountryNameNotNil() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotNull(FieldCountryName))
}

// CountryNameEqualFold applies the EqualFold predicate on the "country_name" field.
func CountryNameEqualFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEqualFold(FieldCountryName, v))
}

// CountryNameContainsFold applies the ContainsFold predicate on the "country_name" field.
func CountryNameContainsFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContainsFold(FieldCountryName, v))
}

// CarrierEQ applies the EQ predicate on the "carrier" field.
func CarrierEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldCarrier, v))
}

// CarrierNEQ applies the NEQ predicate on the "carrier" field.
func CarrierNEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNEQ(FieldCarrier, v))
}

// CarrierIn applies the In predicate on the "carrier" field.
func CarrierIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIn(FieldCarrier, vs...))
}

// CarrierNotIn applies the NotIn predicate on the "carrier" field.
func CarrierNotIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotIn(FieldCarrier, vs...))
}

// CarrierGT applies the GT predicate on the "carrier" field.
func CarrierGT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGT(FieldCarrier, v))
}

// CarrierGTE applies the GTE predicate on the "carrier" field.
func CarrierGTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGTE(FieldCarrier, v))
}

// CarrierLT applies the LT predicate on the "carrier" field.
func CarrierLT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLT(FieldCarrier, v))
}

// CarrierLTE applies the LTE predicate on the "carrier" field.
func CarrierLTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLTE(FieldCarrier, v))
}

// CarrierContains applies the Contains predicate on the "carrier" field.
func CarrierContains(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContains(FieldCarrier, v))
}

// CarrierHasPrefix applies the HasPrefix predicate on the "carrier" field.
func CarrierHasPrefix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasPrefix(FieldCarrier, v))
}

// CarrierHasSuffix applies the HasSuffix predicate on the "carrier" field.
func CarrierHasSuffix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasSuffix(FieldCarrier, v))
}

// CarrierIsNil applies the IsNil predicate on the "carrier" field.
func CarrierIsNil() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIsNull(FieldCarrier))
}

// CarrierNotNil applies the NotNil predicate on the "carrier" field.
func CarrierNotNil() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotNull(FieldCarrier))
}

// CarrierEqualFold applies the EqualFold predicate on the "carrier" field.
func CarrierEqualFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEqualFold(FieldCarrier, v))
}

// CarrierContainsFold applies the ContainsFold predicate on the "carrier" field.
func CarrierContainsFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContainsFold(FieldCarrier, v))
}

// NumberTypeEQ applies the EQ predicate on the "number_type" field.
func NumberTypeEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldNumberType, v))
}

// NumberTypeNEQ applies the NEQ predicate on the "number_type" field.
func NumberTypeNEQ(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNEQ(FieldNumberType, v))
}

// NumberTypeIn applies the In predicate on the "number_type" field.
func NumberTypeIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIn(FieldNumberType, vs...))
}

// NumberTypeNotIn applies the NotIn predicate on the "number_type" field.
func NumberTypeNotIn(vs ...string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotIn(FieldNumberType, vs...))
}

// NumberTypeGT applies the GT predicate on the "number_type" field.
func NumberTypeGT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGT(FieldNumberType, v))
}

// NumberTypeGTE applies the GTE predicate on the "number_type" field.
func NumberTypeGTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGTE(FieldNumberType, v))
}

// NumberTypeLT applies the LT predicate on the "number_type" field.
func NumberTypeLT(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLT(FieldNumberType, v))
}

// NumberTypeLTE applies the LTE predicate on the "number_type" field.
func NumberTypeLTE(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLTE(FieldNumberType, v))
}

// NumberTypeContains applies the Contains predicate on the "number_type" field.
func NumberTypeContains(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContains(FieldNumberType, v))
}

// NumberTypeHasPrefix applies the HasPrefix predicate on the "number_type" field.
func NumberTypeHasPrefix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasPrefix(FieldNumberType, v))
}

// NumberTypeHasSuffix applies the HasSuffix predicate on the "number_type" field.
func NumberTypeHasSuffix(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldHasSuffix(FieldNumberType, v))
}

// NumberTypeIsNil applies the IsNil predicate on the "number_type" field.
func NumberTypeIsNil() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIsNull(FieldNumberType))
}

// NumberTypeNotNil applies the NotNil predicate on the "number_type" field.
func NumberTypeNotNil() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotNull(FieldNumberType))
}

// NumberTypeEqualFold applies the EqualFold predicate on the "number_type" field.
func NumberTypeEqualFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEqualFold(FieldNumberType, v))
}

// NumberTypeContainsFold applies the ContainsFold predicate on the "number_type" field.
func NumberTypeContainsFold(v string) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldContainsFold(FieldNumberType, v))
}

// IsValidEQ applies the EQ predicate on the "is_valid" field.
func IsValidEQ(v bool) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldIsValid, v))
}

// IsValidNEQ applies the NEQ predicate on the "is_valid" field.
func IsValidNEQ(v bool) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNEQ(FieldIsValid, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.FieldLTE(FieldExtractedAt, v))
}

// HasScreenshot applies the HasEdge predicate on the "screenshot" edge.
func HasScreenshot() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScreenshotTable, ScreenshotColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScreenshotWith applies the HasEdge predicate on the "screenshot" edge with a given conditions (other predicates).
func HasScreenshotWith(preds ...predicate.Screenshot) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(func(s *sql.Selector) {
		step := newScreenshotStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGroups applies the HasEdge predicate on the "groups" edge.
func HasGroups() predicate.ExtractedNumber {
	return predicate.ExtractedNumber(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, GroupsTable, GroupsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupsWith applies the HasEdge predicate on the "groups" edge with a given conditions (other predicates).
func HasGroupsWith(preds ...predicate.Group) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(func(s *sql.Selector) {
		step := newGroupsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedNumber) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedNumber) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedNumber) predicate.ExtractedNumber {
	return predicate.ExtractedNumber(sql.NotPredicates(p))
}
