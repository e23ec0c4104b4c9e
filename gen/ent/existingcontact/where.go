// Code generated by ent, DO NOT EDIT.

package existingcontact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLTE(FieldID, id))
}

// NormalizedNumber applies equality check predicate on the "normalized_number" field. It's identical to NormalizedNumberEQ.
func NormalizedNumber(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldNormalizedNumber, v))
}

// RawNumber applies equality check predicate on the "raw_number" field. It's identical to RawNumberEQ.
func RawNumber(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldRawNumber, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldEmail, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldCompany, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldSource, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldExternalID, v))
}

// ImportedAt applies equality check predicate on the "imported_at" field. It's identical to ImportedAtEQ.
func ImportedAt(v time.Time) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldImportedAt, v))
}

// NormalizedNumberEQ applies the EQ predicate on the "normalized_number" field.
func NormalizedNumberEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldNormalizedNumber, v))
}

// NormalizedNumberNEQ applies the NEQ predicate on the "normalized_number" field.
func NormalizedNumberNEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNEQ(FieldNormalizedNumber, v))
}

// NormalizedNumberIn applies the In predicate on the "normalized_number" field.
func NormalizedNumberIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIn(FieldNormalizedNumber, vs...))
}

// NormalizedNumberNotIn applies the NotIn predicate on the "normalized_number" field.
func NormalizedNumberNotIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotIn(FieldNormalizedNumber, vs...))
}

// NormalizedNumberGT applies the GT predicate on the "normalized_number" field.
func NormalizedNumberGT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGT(FieldNormalizedNumber, v))
}

// NormalizedNumberGTE applies the GTE predicate on the "normalized_number" field.
func NormalizedNumberGTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGTE(FieldNormalizedNumber, v))
}

// NormalizedNumberLT applies the LT predicate on the "normalized_number" field.
func NormalizedNumberLT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLT(FieldNormalizedNumber, v))
}

// NormalizedNumberLTE applies the LTE predicate on the "normalized_number" field.
func NormalizedNumberLTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLTE(FieldNormalizedNumber, v))
}

// NormalizedNumberContains applies the Contains predicate on the "normalized_number" field.
func NormalizedNumberContains(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContains(FieldNormalizedNumber, v))
}

// NormalizedNumberHasPrefix applies the HasPrefix predicate on the "normalized_number" field.
func NormalizedNumberHasPrefix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasPrefix(FieldNormalizedNumber, v))
}

// NormalizedNumberHasSuffix applies the HasSuffix predicate on the "normalized_number" field.
func NormalizedNumberHasSuffix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasSuffix(FieldNormalizedNumber, v))
}

// NormalizedNumberEqualFold applies the EqualFold predicate on the "normalized_number" field.
func NormalizedNumberEqualFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEqualFold(FieldNormalizedNumber, v))
}

// NormalizedNumberContainsFold applies the ContainsFold predicate on the "normalized_number" field.
func NormalizedNumberContainsFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContainsFold(FieldNormalizedNumber, v))
}

// RawNumberEQ applies the EQ predicate on the "raw_number" field.
func RawNumberEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldRawNumber, v))
}

// RawNumberNEQ applies the NEQ predicate on the "raw_number" field.
func RawNumberNEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNEQ(FieldRawNumber, v))
}

// RawNumberIn applies the In predicate on the "raw_number" field.
func RawNumberIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIn(FieldRawNumber, vs...))
}

// RawNumberNotIn applies the NotIn predicate on the "raw_number" field.
func RawNumberNotIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotIn(FieldRawNumber, vs...))
}

// RawNumberGT applies the GT predicate on the "raw_number" field.
func RawNumberGT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGT(FieldRawNumber, v))
}

// RawNumberGTE applies the GTE predicate on the "raw_number" field.
func RawNumberGTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGTE(FieldRawNumber, v))
}

// RawNumberLT applies the LT predicate on the "raw_number" field.
func RawNumberLT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLT(FieldRawNumber, v))
}

// RawNumberLTE applies the LTE predicate on the "raw_number" field.
func RawNumberLTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLTE(FieldRawNumber, v))
}

// RawNumberContains applies the Contains predicate on the "raw_number" field.
func RawNumberContains(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContains(FieldRawNumber, v))
}

// RawNumberHasPrefix applies the HasPrefix predicate on the "raw_number" field.
func RawNumberHasPrefix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasPrefix(FieldRawNumber, v))
}

// RawNumberHasSuffix applies the HasSuffix predicate on the "raw_number" field.
func RawNumberHasSuffix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasSuffix(FieldRawNumber, v))
}

// RawNumberEqualFold applies the EqualFold predicate on the "raw_number" field.
func RawNumberEqualFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEqualFold(FieldRawNumber, v))
}

// RawNumberContainsFold applies the ContainsFold predicate on the "raw_number" field.
func RawNumberContainsFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContainsFold(FieldRawNumber, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContainsFold(FieldEmail, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContainsFold(FieldCompany, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContainsFold(FieldSource, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDIsNil applies the IsNil predicate on the "external_id" field.
func ExternalIDIsNil() predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIsNull(FieldExternalID))
}

// ExternalIDNotNil applies the NotNil predicate on the "external_id" field.
func ExternalIDNotNil() predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotNull(FieldExternalID))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldContainsFold(FieldExternalID, v))
}

// ImportedAtEQ applies the EQ predicate on the "imported_at" field.
func ImportedAtEQ(v time.Time) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldEQ(FieldImportedAt, v))
}

// ImportedAtNEQ applies the NEQ predicate on the "imported_at" field.
func ImportedAtNEQ(v time.Time) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNEQ(FieldImportedAt, v))
}

// ImportedAtIn applies the In predicate on the "imported_at" field.
func ImportedAtIn(vs ...time.Time) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldIn(FieldImportedAt, vs...))
}

// ImportedAtNotIn applies the NotIn predicate on the "imported_at" field.
func ImportedAtNotIn(vs ...time.Time) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldNotIn(FieldImportedAt, vs...))
}

// ImportedAtGT applies the GT predicate on the "imported_at" field.
func ImportedAtGT(v time.Time) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGT(FieldImportedAt, v))
}

// ImportedAtGTE applies the GTE predicate on the "imported_at" field.
func ImportedAtGTE(v time.Time) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldGTE(FieldImportedAt, v))
}

// ImportedAtLT applies the LT predicate on the "imported_at" field.
func ImportedAtLT(v time.Time) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLT(FieldImportedAt, v))
}

// ImportedAtLTE applies the LTE predicate on the "imported_at" field.
func ImportedAtLTE(v time.Time) predicate.ExistingContact {
	return predicate.ExistingContact(sql.FieldLTE(FieldImportedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExistingContact) predicate.ExistingContact {
	return predicate.ExistingContact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExistingContact) predicate.ExistingContact {
	return predicate.ExistingContact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExistingContact) predicate.ExistingContact {
	return predicate.ExistingContact(sql.NotPredicates(p))
}
