// Code generated by ent, DO NOT EDIT.

package comparisonsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLTE(FieldID, id))
}

// TotalExtracted applies equality check predicate on the "total_extracted" field. It's identical to TotalExtractedEQ.
func TotalExtracted(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldTotalExtracted, v))
}

// TotalContacts applies equality check predicate on the "total_contacts" field. It's identical to TotalContactsEQ.
func TotalContacts(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldTotalContacts, v))
}

// ExactMatches applies equality check predicate on the "exact_matches" field. It's identical to ExactMatchesEQ.
func ExactMatches(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldExactMatches, v))
}

// PartialMatches applies equality check predicate on the "partial_matches" field. It's identical to PartialMatchesEQ.
func PartialMatches(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldPartialMatches, v))
}

// NewNumbers applies equality check predicate on the "new_numbers" field. It's identical to NewNumbersEQ.
func NewNumbers(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldNewNumbers, v))
}

// NotCompared applies equality check predicate on the "not_compared" field. It's identical to NotComparedEQ.
func NotCompared(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldNotCompared, v))
}

// MatchRate applies equality check predicate on the "match_rate" field. It's identical to MatchRateEQ.
func MatchRate(v float64) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldMatchRate, v))
}

// ComparedAt applies equality check predicate on the "compared_at" field. It's identical to ComparedAtEQ.
func ComparedAt(v time.Time) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldComparedAt, v))
}

// TotalExtractedEQ applies the EQ predicate on the "total_extracted" field.
func TotalExtractedEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldTotalExtracted, v))
}

// TotalExtractedNEQ applies the NEQ predicate on the "total_extracted" field.
func TotalExtractedNEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNEQ(FieldTotalExtracted, v))
}

// TotalExtractedIn applies the In predicate on the "total_extracted" field.
func TotalExtractedIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldIn(FieldTotalExtracted, vs...))
}

// TotalExtractedNotIn applies the NotIn predicate on the "total_extracted" field.
func TotalExtractedNotIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNotIn(FieldTotalExtracted, vs...))
}

// TotalExtractedGT applies the GT predicate on the "total_extracted" field.
func TotalExtractedGT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGT(FieldTotalExtracted, v))
}

// TotalExtractedGTE applies the GTE predicate on the "total_extracted" field.
func TotalExtractedGTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGTE(FieldTotalExtracted, v))
}

// TotalExtractedLT applies the LT predicate on the "total_extracted" field.
func TotalExtractedLT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLT(FieldTotalExtracted, v))
}

// TotalExtractedLTE applies the LTE predicate on the "total_extracted" field.
func TotalExtractedLTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLTE(FieldTotalExtracted, v))
}

// TotalContactsEQ applies the EQ predicate on the "total_contacts" field.
func TotalContactsEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldTotalContacts, v))
}

// TotalContactsNEQ applies the NEQ predicate on the "total_contacts" field.
func TotalContactsNEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNEQ(FieldTotalContacts, v))
}

// TotalContactsIn applies the In predicate on the "total_contacts" field.
func TotalContactsIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldIn(FieldTotalContacts, vs...))
}

// TotalContactsNotIn applies the NotIn predicate on the "total_contacts" field.
func TotalContactsNotIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNotIn(FieldTotalContacts, vs...))
}

// TotalContactsGT applies the GT predicate on the "total_contacts" field.
func TotalContactsGT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGT(FieldTotalContacts, v))
}

// TotalContactsGTE applies the GTE predicate on the "total_contacts" field.
func TotalContactsGTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGTE(FieldTotalContacts, v))
}

// TotalContactsLT applies the LT predicate on the "total_contacts" field.
func TotalContactsLT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLT(FieldTotalContacts, v))
}

// TotalContactsLTE applies the LTE predicate on the "total_contacts" field.
func TotalContactsLTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLTE(FieldTotalContacts, v))
}

// ExactMatchesEQ applies the EQ predicate on the "exact_matches" field.
func ExactMatchesEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldExactMatches, v))
}

// ExactMatchesNEQ applies the NEQ predicate on the "exact_matches" field.
func ExactMatchesNEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNEQ(FieldExactMatches, v))
}

// ExactMatchesIn applies the In predicate on the "exact_matches" field.
func ExactMatchesIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldIn(FieldExactMatches, vs...))
}

// ExactMatchesNotIn applies the NotIn predicate on the "exact_matches" field.
func ExactMatchesNotIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNotIn(FieldExactMatches, vs...))
}

// ExactMatchesGT applies the GT predicate on the "exact_matches" field.
func ExactMatchesGT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGT(FieldExactMatches, v))
}

// ExactMatchesGTE applies the GTE predicate on the "exact_matches" field.
func ExactMatchesGTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGTE(FieldExactMatches, v))
}

// ExactMatchesLT applies the LT predicate on the "exact_matches" field.
func ExactMatchesLT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLT(FieldExactMatches, v))
}

// ExactMatchesLTE applies the LTE predicate on the "exact_matches" field.
func ExactMatchesLTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLTE(FieldExactMatches, v))
}

// PartialMatchesEQ applies the EQ predicate on the "partial_matches" field.
func PartialMatchesEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldPartialMatches, v))
}

// PartialMatchesNEQ applies the NEQ predicate on the "partial_matches" field.
func PartialMatchesNEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNEQ(FieldPartialMatches, v))
}

// PartialMatchesIn applies the In predicate on the "partial_matches" field.
func PartialMatchesIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldIn(FieldPartialMatches, vs...))
}

// PartialMatchesNotIn applies the NotIn predicate on the "partial_matches" field.
func PartialMatchesNotIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNotIn(FieldPartialMatches, vs...))
}

// PartialMatchesGT applies the GT predicate on the "partial_matches" field.
func PartialMatchesGT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGT(FieldPartialMatches, v))
}

// PartialMatchesGTE applies the GTE predicate on the "partial_matches" field.
func PartialMatchesGTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGTE(FieldPartialMatches, v))
}

// PartialMatchesLT applies the LT predicate on the "partial_matches" field.
func PartialMatchesLT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLT(FieldPartialMatches, v))
}

// PartialMatchesLTE applies the LTE predicate on the "partial_matches" field.
func PartialMatchesLTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLTE(FieldPartialMatches, v))
}

// NewNumbersEQ applies the EQ predicate on the "new_numbers" field.
func NewNumbersEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldNewNumbers, v))
}

// NewNumbersNEQ applies the NEQ predicate on the "new_numbers" field.
func NewNumbersNEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNEQ(FieldNewNumbers, v))
}

// NewNumbersIn applies the In predicate on the "new_numbers" field.
func NewNumbersIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldIn(FieldNewNumbers, vs...))
}

// NewNumbersNotIn applies the NotIn predicate on the "new_numbers" field.
func NewNumbersNotIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNotIn(FieldNewNumbers, vs...))
}

// NewNumbersGT applies the GT predicate on the "new_numbers" field.
func NewNumbersGT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGT(FieldNewNumbers, v))
}

// NewNumbersGTE applies the GTE predicate on the "new_numbers" field.
func NewNumbersGTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGTE(FieldNewNumbers, v))
}

// NewNumbersLT applies the LT predicate on the "new_numbers" field.
func NewNumbersLT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLT(FieldNewNumbers, v))
}

// NewNumbersLTE applies the LTE predicate on the "new_numbers" field.
func NewNumbersLTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLTE(FieldNewNumbers, v))
}

// NotComparedEQ applies the EQ predicate on the "not_compared" field.
func NotComparedEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldNotCompared, v))
}

// NotComparedNEQ applies the NEQ predicate on the "not_compared" field.
func NotComparedNEQ(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNEQ(FieldNotCompared, v))
}

// NotComparedIn applies the In predicate on the "not_compared" field.
func NotComparedIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldIn(FieldNotCompared, vs...))
}

// NotComparedNotIn applies the NotIn predicate on the "not_compared" field.
func NotComparedNotIn(vs ...int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNotIn(FieldNotCompared, vs...))
}

// NotComparedGT applies the GT predicate on the "not_compared" field.
func NotComparedGT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGT(FieldNotCompared, v))
}

// NotComparedGTE applies the GTE predicate on the "not_compared" field.
func NotComparedGTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGTE(FieldNotCompared, v))
}

// NotComparedLT applies the LT predicate on the "not_compared" field.
func NotComparedLT(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLT(FieldNotCompared, v))
}

// NotComparedLTE applies the LTE predicate on the "not_compared" field.
func NotComparedLTE(v int) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLTE(FieldNotCompared, v))
}

// MatchRateEQ applies the EQ predicate on the "match_rate" field.
func MatchRateEQ(v float64) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldMatchRate, v))
}

// MatchRateNEQ applies the NEQ predicate on the "match_rate" field.
func MatchRateNEQ(v float64) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNEQ(FieldMatchRate, v))
}

// MatchRateIn applies the In predicate on the "match_rate" field.
func MatchRateIn(vs ...float64) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldIn(FieldMatchRate, vs...))
}

// MatchRateNotIn applies the NotIn predicate on the "match_rate" field.
func MatchRateNotIn(vs ...float64) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNotIn(FieldMatchRate, vs...))
}

// MatchRateGT applies the GT predicate on the "match_rate" field.
func MatchRateGT(v float64) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGT(FieldMatchRate, v))
}

// MatchRateGTE applies the GTE predicate on the "match_rate" field.
func MatchRateGTE(v float64) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGTE(FieldMatchRate, v))
}

// MatchRateLT applies the LT predicate on the "match_rate" field.
func MatchRateLT(v float64) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLT(FieldMatchRate, v))
}

// MatchRateLTE applies the LTE predicate on the "match_rate" field.
func MatchRateLTE(v float64) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLTE(FieldMatchRate, v))
}

// ComparedAtEQ applies the EQ predicate on the "compared_at" field.
func ComparedAtEQ(v time.Time) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldEQ(FieldComparedAt, v))
}

// ComparedAtNEQ applies the NEQ predicate on the "compared_at" field.
func ComparedAtNEQ(v time.Time) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNEQ(FieldComparedAt, v))
}

// ComparedAtIn applies the In predicate on the "compared_at" field.
func ComparedAtIn(vs ...time.Time) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldIn(FieldComparedAt, vs...))
}

// ComparedAtNotIn applies the NotIn predicate on the "compared_at" field.
func ComparedAtNotIn(vs ...time.Time) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldNotIn(FieldComparedAt, vs...))
}

// ComparedAtGT applies the GT predicate on the "compared_at" field.
func ComparedAtGT(v time.Time) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGT(FieldComparedAt, v))
}

// ComparedAtGTE applies the GTE predicate on the "compared_at" field.
func ComparedAtGTE(v time.Time) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldGTE(FieldComparedAt, v))
}

// ComparedAtLT applies the LT predicate on the "compared_at" field.
func ComparedAtLT(v time.Time) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLT(FieldComparedAt, v))
}

// ComparedAtLTE applies the LTE predicate on the "compared_at" field.
func ComparedAtLTE(v time.Time) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.FieldLTE(FieldComparedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ComparisonSnapshot) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ComparisonSnapshot) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ComparisonSnapshot) predicate.ComparisonSnapshot {
	return predicate.ComparisonSnapshot(sql.NotPredicates(p))
}
