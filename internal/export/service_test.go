package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/reconkit/phone-recon/constants"
	"github.com/reconkit/phone-recon/internal/entity"
)

type fakeNumbers struct {
	rows       []*entity.ExtractedNumber
	err        error
	gotCountry string
	gotValid   *bool
}

func (f *fakeNumbers) ListAll(_ context.Context, countryCode string, isValid *bool) ([]*entity.ExtractedNumber, error) {
	f.gotCountry, f.gotValid = countryCode, isValid
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.ExtractedNumber
	for _, n := range f.rows {
		if countryCode != "" && (n.CountryCode == nil || *n.CountryCode != countryCode) {
			continue
		}
		if isValid != nil && n.IsValid != *isValid {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

type fakeContacts struct {
	rows []*entity.ExistingContact
}

func (f *fakeContacts) ListAll(context.Context) ([]*entity.ExistingContact, error) {
	return f.rows, nil
}

var extractedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func validNumber(raw, canonical, code, country string) *entity.ExtractedNumber {
	numberType := "fixed_line_or_mobile"
	return &entity.ExtractedNumber{
		ID:               uuid.New(),
		ScreenshotID:     uuid.New(),
		RawNumber:        raw,
		NormalizedNumber: &canonical,
		CountryCode:      &code,
		CountryName:      &country,
		NumberType:       &numberType,
		IsValid:          true,
		ExtractedAt:      extractedAt,
	}
}

func rejectedNumber(raw string) *entity.ExtractedNumber {
	return &entity.ExtractedNumber{
		ID:           uuid.New(),
		ScreenshotID: uuid.New(),
		RawNumber:    raw,
		ExtractedAt:  extractedAt,
	}
}

func contact(canonical, name, email, company string) *entity.ExistingContact {
	c := &entity.ExistingContact{
		ID:               uuid.New(),
		NormalizedNumber: canonical,
		RawNumber:        canonical,
		Source:           "zoho",
		ImportedAt:       extractedAt,
	}
	if name != "" {
		c.Name = &name
	}
	if email != "" {
		c.Email = &email
	}
	if company != "" {
		c.Company = &company
	}
	return c
}

func newService(numbers *fakeNumbers, contacts *fakeContacts) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(numbers, contacts, logger)
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestNumbersCSV(t *testing.T) {
	numbers := &fakeNumbers{rows: []*entity.ExtractedNumber{
		validNumber("+1 (212) 555-0123", "+12125550123", "+1", "United States"),
		rejectedNumber("+1 555 123 4567"),
	}}
	svc := newService(numbers, &fakeContacts{})

	data, filename, err := svc.NumbersCSV(context.Background(), NumbersFilter{})
	require.NoError(t, err)
	assert.Equal(t, "extracted_numbers.csv", filename)

	records := parseCSV(t, data)
	require.Len(t, records, 3)
	assert.Equal(t, numberHeaders, records[0])
	assert.Equal(t, []string{
		"+1 (212) 555-0123", "+12125550123", "+1", "United States",
		"", "fixed_line_or_mobile", "Yes", "2026-03-14T09:30:00Z",
	}, records[1])
	assert.Equal(t, []string{
		"+1 555 123 4567", "", "", "", "", "", "No", "2026-03-14T09:30:00Z",
	}, records[2])
}

func TestNumbersCSVPassesFilters(t *testing.T) {
	numbers := &fakeNumbers{rows: []*entity.ExtractedNumber{
		validNumber("+1 (212) 555-0123", "+12125550123", "+1", "United States"),
		validNumber("+44 20 7946 0958", "+442079460958", "+44", "United Kingdom"),
	}}
	svc := newService(numbers, &fakeContacts{})

	valid := true
	data, _, err := svc.NumbersCSV(context.Background(), NumbersFilter{CountryCode: "+44", IsValid: &valid})
	require.NoError(t, err)

	assert.Equal(t, "+44", numbers.gotCountry)
	require.NotNil(t, numbers.gotValid)
	assert.True(t, *numbers.gotValid)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	assert.Equal(t, "+442079460958", records[1][1])
}

func TestNumbersXLSX(t *testing.T) {
	numbers := &fakeNumbers{rows: []*entity.ExtractedNumber{
		validNumber("+1 (212) 555-0123", "+12125550123", "+1", "United States"),
	}}
	svc := newService(numbers, &fakeContacts{})

	data, filename, err := svc.NumbersXLSX(context.Background(), NumbersFilter{})
	require.NoError(t, err)
	assert.Equal(t, "extracted_numbers.xlsx", filename)

	fx, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer fx.Close()

	rows, err := fx.GetRows("Numbers")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, numberHeaders, rows[0])
	assert.Equal(t, "+12125550123", rows[1][1])
	assert.Equal(t, "Yes", rows[1][6])
}

func TestComparisonCSVJoinsContacts(t *testing.T) {
	// exact, partial via stripped prefix, new, and one row with no canonical
	numbers := &fakeNumbers{rows: []*entity.ExtractedNumber{
		validNumber("+1 (212) 555-0123", "+12125550123", "+1", "United States"),
		validNumber("+44 20 7946 0958", "+442079460958", "+44", "United Kingdom"),
		validNumber("+49 151 12345678", "+4915112345678", "+49", "Germany"),
		rejectedNumber("+1 555 123 4567"),
	}}
	contacts := &fakeContacts{rows: []*entity.ExistingContact{
		contact("+12125550123", "Alice", "alice@example.com", "Acme"),
		contact("2079460958", "Bob", "", ""),
	}}
	svc := newService(numbers, contacts)

	data, filename, err := svc.ComparisonCSV(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "comparison_results.csv", filename)

	records := parseCSV(t, data)
	require.Len(t, records, 4) // header + exact + partial + new; unknown stays out

	assert.Equal(t, []string{
		"+1 (212) 555-0123", "+12125550123", "United States",
		"existing-exact", "1.0", "Alice", "alice@example.com", "Acme",
	}, records[1])
	assert.Equal(t, []string{
		"+44 20 7946 0958", "+442079460958", "United Kingdom",
		"existing-partial", "0.8", "Bob", "", "",
	}, records[2])
	assert.Equal(t, []string{
		"+49 151 12345678", "+4915112345678", "Germany",
		"new", "0.0", "", "", "",
	}, records[3])
}

func TestComparisonCSVFiltersByMatchType(t *testing.T) {
	numbers := &fakeNumbers{rows: []*entity.ExtractedNumber{
		validNumber("+1 (212) 555-0123", "+12125550123", "+1", "United States"),
		rejectedNumber("garbled"),
	}}
	contacts := &fakeContacts{rows: []*entity.ExistingContact{
		contact("+12125550123", "Alice", "", ""),
	}}
	svc := newService(numbers, contacts)

	data, _, err := svc.ComparisonCSV(context.Background(), constants.MatchUnknown)
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	assert.Equal(t, "garbled", records[1][0])
	assert.Equal(t, "unknown", records[1][3])
	assert.Equal(t, "0.0", records[1][4])
}

func TestNewNumbersCSV(t *testing.T) {
	numbers := &fakeNumbers{rows: []*entity.ExtractedNumber{
		validNumber("+1 (212) 555-0123", "+12125550123", "+1", "United States"),
		validNumber("+49 151 12345678", "+4915112345678", "+49", "Germany"),
	}}
	contacts := &fakeContacts{rows: []*entity.ExistingContact{
		contact("+12125550123", "Alice", "", ""),
	}}
	svc := newService(numbers, contacts)

	data, filename, err := svc.NewNumbersCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new_numbers.csv", filename)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	assert.Equal(t, []string{
		"+49 151 12345678", "+4915112345678", "+49", "Germany", "", "fixed_line_or_mobile",
	}, records[1])
}

func TestNumbersCSVPropagatesStoreError(t *testing.T) {
	numbers := &fakeNumbers{err: assert.AnError}
	svc := newService(numbers, &fakeContacts{})

	_, _, err := svc.NumbersCSV(context.Background(), NumbersFilter{})
	assert.ErrorIs(t, err, assert.AnError)
}
