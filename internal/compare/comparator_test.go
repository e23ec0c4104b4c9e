package compare

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconkit/phone-recon/constants"
	"github.com/reconkit/phone-recon/internal/entity"
)

func number(canonical, countryCode string) *entity.ExtractedNumber {
	n := &entity.ExtractedNumber{ID: uuid.New(), RawNumber: canonical}
	if canonical != "" {
		n.NormalizedNumber = &canonical
		n.IsValid = true
	}
	if countryCode != "" {
		n.CountryCode = &countryCode
	}
	return n
}

func contact(canonical string, importedAt time.Time) *entity.ExistingContact {
	return &entity.ExistingContact{
		ID:               uuid.New(),
		NormalizedNumber: canonical,
		RawNumber:        canonical,
		Source:           "csv",
		ImportedAt:       importedAt,
	}
}

func TestCompareExactMatch(t *testing.T) {
	now := time.Now()
	c := contact("+12125550123", now)

	cls, stats := Compare(
		[]*entity.ExtractedNumber{number("+12125550123", "+1")},
		[]*entity.ExistingContact{c},
	)

	require.Len(t, cls, 1)
	assert.Equal(t, constants.MatchExact, cls[0].MatchType)
	require.NotNil(t, cls[0].ContactID)
	assert.Equal(t, c.ID, *cls[0].ContactID)
	assert.Equal(t, 1, stats.ExactMatches)
	assert.Equal(t, 1.0, stats.MatchRate)
}

func TestCompareExactBeatsPartial(t *testing.T) {
	now := time.Now()
	full := contact("+12125550123", now)
	bare := contact("2125550123", now)

	cls, _ := Compare(
		[]*entity.ExtractedNumber{number("+12125550123", "+1")},
		[]*entity.ExistingContact{bare, full},
	)

	require.Len(t, cls, 1)
	assert.Equal(t, constants.MatchExact, cls[0].MatchType)
	assert.Equal(t, full.ID, *cls[0].ContactID)
}

func TestComparePartialWhenContactLacksPrefix(t *testing.T) {
	c := contact("2125550123", time.Now())

	cls, stats := Compare(
		[]*entity.ExtractedNumber{number("+12125550123", "+1")},
		[]*entity.ExistingContact{c},
	)

	assert.Equal(t, constants.MatchPartial, cls[0].MatchType)
	assert.Equal(t, c.ID, *cls[0].ContactID)
	assert.Equal(t, 1, stats.PartialMatches)
}

func TestComparePartialWhenNumberLacksPrefix(t *testing.T) {
	c := contact("+15551234567", time.Now())

	cls, _ := Compare(
		[]*entity.ExtractedNumber{number("5551234567", "")},
		[]*entity.ExistingContact{c},
	)

	assert.Equal(t, constants.MatchPartial, cls[0].MatchType)
	assert.Equal(t, c.ID, *cls[0].ContactID)
}

func TestCompareNeverStripsBothSides(t *testing.T) {
	// same national digits under different calling codes is not a match
	c := contact("+442125550123", time.Now())

	cls, stats := Compare(
		[]*entity.ExtractedNumber{number("+12125550123", "+1")},
		[]*entity.ExistingContact{c},
	)

	assert.Equal(t, constants.MatchNew, cls[0].MatchType)
	assert.Nil(t, cls[0].ContactID)
	assert.Equal(t, 1, stats.NewNumbers)
}

func TestCompareUnknownWithoutCanonicalForm(t *testing.T) {
	rejected := &entity.ExtractedNumber{ID: uuid.New(), RawNumber: "12 34 56"}

	cls, stats := Compare(
		[]*entity.ExtractedNumber{rejected},
		[]*entity.ExistingContact{contact("+12125550123", time.Now())},
	)

	assert.Equal(t, constants.MatchUnknown, cls[0].MatchType)
	assert.Equal(t, 1, stats.NotCompared)
	assert.Zero(t, stats.MatchRate, "unknown rows stay out of the denominator")
}

func TestCompareTieBreaksToNewestImport(t *testing.T) {
	older := contact("+12125550123", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := contact("+12125550123", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	cls, _ := Compare(
		[]*entity.ExtractedNumber{number("+12125550123", "+1")},
		[]*entity.ExistingContact{older, newer},
	)

	assert.Equal(t, newer.ID, *cls[0].ContactID)
}

func TestCompareStatsShape(t *testing.T) {
	contacts := []*entity.ExistingContact{
		contact("+12125550123", time.Now()),
		contact("5551234567", time.Now()),
	}
	numbers := []*entity.ExtractedNumber{
		number("+12125550123", "+1"), // exact
		number("+15551234567", "+1"), // partial, contact has no prefix
		number("+447700900123", "+44"), // new
		{ID: uuid.New(), RawNumber: "junk"}, // unknown
	}

	cls, stats := Compare(numbers, contacts)

	require.Len(t, cls, 4)
	assert.Equal(t, 4, stats.TotalExtracted)
	assert.Equal(t, 2, stats.TotalContacts)
	assert.Equal(t, 1, stats.ExactMatches)
	assert.Equal(t, 1, stats.PartialMatches)
	assert.Equal(t, 1, stats.NewNumbers)
	assert.Equal(t, 1, stats.NotCompared)
	assert.InDelta(t, 2.0/3.0, stats.MatchRate, 1e-9)
	assert.True(t, stats.ComparedAt.IsZero(), "the caller stamps the snapshot time")
}

func TestCompareEmptyInputs(t *testing.T) {
	cls, stats := Compare(nil, nil)

	assert.Empty(t, cls)
	assert.Zero(t, stats.MatchRate)
	assert.Zero(t, stats.TotalExtracted)
}

func TestCompareIsDeterministic(t *testing.T) {
	contacts := []*entity.ExistingContact{
		contact("+12125550123", time.Now().Truncate(time.Second)),
		contact("2125550123", time.Now().Truncate(time.Second)),
		contact("+15551234567", time.Now().Truncate(time.Second)),
	}
	numbers := []*entity.ExtractedNumber{
		number("+12125550123", "+1"),
		number("5551234567", ""),
		number("+919876543210", "+91"),
	}

	cls1, stats1 := Compare(numbers, contacts)
	cls2, stats2 := Compare(numbers, contacts)

	assert.Equal(t, cls1, cls2)
	assert.Equal(t, stats1, stats2)
}
