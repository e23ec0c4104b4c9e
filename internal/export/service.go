// Package export renders extracted numbers and comparison outcomes as CSV
// and XLSX downloads.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/reconkit/phone-recon/constants"
	"github.com/reconkit/phone-recon/internal/compare"
	"github.com/reconkit/phone-recon/internal/entity"
)

// NumberSource and ContactSource are the read slices exports need. The
// repository package satisfies both.
type NumberSource interface {
	ListAll(ctx context.Context, countryCode string, isValid *bool) ([]*entity.ExtractedNumber, error)
}

type ContactSource interface {
	ListAll(ctx context.Context) ([]*entity.ExistingContact, error)
}

// NumbersFilter narrows a numbers export. Zero values mean "no filter".
type NumbersFilter struct {
	CountryCode string
	IsValid     *bool
}

// Service is a tiny façade over the stores that produces download bytes.
type Service struct {
	numbers  NumberSource
	contacts ContactSource
	logger   *slog.Logger
}

func NewService(numbers NumberSource, contacts ContactSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{numbers: numbers, contacts: contacts, logger: logger}
}

var numberHeaders = []string{
	"Raw Number",
	"Normalized Number",
	"Country Code",
	"Country Name",
	"Carrier",
	"Number Type",
	"Is Valid",
	"Extracted At",
}

// NumbersCSV exports the matching numbers as CSV, one row per stored
// extraction including rejected candidates.
func (s *Service) NumbersCSV(ctx context.Context, f NumbersFilter) ([]byte, string, error) {
	start := time.Now()
	rows, err := s.numbers.ListAll(ctx, f.CountryCode, f.IsValid)
	if err != nil {
		return nil, "", fmt.Errorf("query numbers: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(numberHeaders); err != nil {
		return nil, "", fmt.Errorf("csv write: %w", err)
	}
	for _, n := range rows {
		if err := w.Write(numberRecord(n)); err != nil {
			return nil, "", fmt.Errorf("csv write: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("csv write: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"kind", "numbers",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), "extracted_numbers.csv", nil
}

// NumbersXLSX exports the matching numbers as an XLSX workbook with the same
// columns as the CSV export.
func (s *Service) NumbersXLSX(ctx context.Context, f NumbersFilter) ([]byte, string, error) {
	start := time.Now()
	rows, err := s.numbers.ListAll(ctx, f.CountryCode, f.IsValid)
	if err != nil {
		return nil, "", fmt.Errorf("query numbers: %w", err)
	}

	fx := excelize.NewFile()
	const sheet = "Numbers"
	if index, _ := fx.GetSheetIndex(sheet); index == -1 {
		if _, err := fx.NewSheet(sheet); err != nil {
			return nil, "", err
		}
	}
	activeIndex, _ := fx.GetSheetIndex(sheet)
	fx.SetActiveSheet(activeIndex)

	for i, h := range numberHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = fx.SetCellValue(sheet, cell, h)
	}
	for rowIdx, n := range rows {
		record := numberRecord(n)
		for col, v := range record {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			_ = fx.SetCellValue(sheet, cell, v)
		}
	}

	_ = fx.SetColWidth(sheet, "A", "B", 20) // raw, normalized
	_ = fx.SetColWidth(sheet, "C", "C", 12) // code
	_ = fx.SetColWidth(sheet, "D", "D", 22) // country
	_ = fx.SetColWidth(sheet, "E", "F", 16) // carrier, type
	_ = fx.SetColWidth(sheet, "H", "H", 24) // timestamp

	buf, err := fx.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"kind", "numbers",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), "extracted_numbers.xlsx", nil
}

// ComparisonCSV reruns the comparison and exports one row per verdict,
// joined with the matched contact. An empty matchType exports the compared
// rows (exact, partial, new); pass unknown explicitly to audit rows that
// never had a canonical form.
func (s *Service) ComparisonCSV(ctx context.Context, matchType constants.MatchType) ([]byte, string, error) {
	start := time.Now()
	numbers, contacts, err := s.loadBoth(ctx)
	if err != nil {
		return nil, "", err
	}
	classifications, _ := compare.Compare(numbers, contacts)

	contactByID := make(map[uuid.UUID]*entity.ExistingContact, len(contacts))
	for _, c := range contacts {
		contactByID[c.ID] = c
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"Extracted Number",
		"Normalized",
		"Country",
		"Match Type",
		"Confidence",
		"Existing Contact Name",
		"Existing Contact Email",
		"Existing Contact Company",
	}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("csv write: %w", err)
	}

	exported := 0
	for i, cls := range classifications {
		if matchType == "" && cls.MatchType == constants.MatchUnknown {
			continue
		}
		if matchType != "" && cls.MatchType != matchType {
			continue
		}
		n := numbers[i]

		var contact *entity.ExistingContact
		if cls.ContactID != nil {
			contact = contactByID[*cls.ContactID]
		}
		record := []string{
			n.RawNumber,
			orEmpty(n.NormalizedNumber),
			orEmpty(n.CountryName),
			string(cls.MatchType),
			strconv.FormatFloat(confidenceFor(cls.MatchType), 'f', 1, 64),
			contactField(contact, func(c *entity.ExistingContact) *string { return c.Name }),
			contactField(contact, func(c *entity.ExistingContact) *string { return c.Email }),
			contactField(contact, func(c *entity.ExistingContact) *string { return c.Company }),
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("csv write: %w", err)
		}
		exported++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("csv write: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"kind", "comparison",
		"match_type", string(matchType),
		"rows", exported,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), "comparison_results.csv", nil
}

// NewNumbersCSV exports the numbers the comparison classified as new, in the
// numbers-export shape minus validity columns.
func (s *Service) NewNumbersCSV(ctx context.Context) ([]byte, string, error) {
	start := time.Now()
	numbers, contacts, err := s.loadBoth(ctx)
	if err != nil {
		return nil, "", err
	}
	classifications, _ := compare.Compare(numbers, contacts)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"Raw Number",
		"Normalized Number",
		"Country Code",
		"Country Name",
		"Carrier",
		"Number Type",
	}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("csv write: %w", err)
	}

	exported := 0
	for i, cls := range classifications {
		if cls.MatchType != constants.MatchNew {
			continue
		}
		n := numbers[i]
		record := []string{
			n.RawNumber,
			orEmpty(n.NormalizedNumber),
			orEmpty(n.CountryCode),
			orEmpty(n.CountryName),
			orEmpty(n.Carrier),
			orEmpty(n.NumberType),
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("csv write: %w", err)
		}
		exported++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("csv write: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"kind", "new_numbers",
		"rows", exported,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), "new_numbers.csv", nil
}

func (s *Service) loadBoth(ctx context.Context) ([]*entity.ExtractedNumber, []*entity.ExistingContact, error) {
	numbers, err := s.numbers.ListAll(ctx, "", nil)
	if err != nil {
		return nil, nil, fmt.Errorf("query numbers: %w", err)
	}
	contacts, err := s.contacts.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("query contacts: %w", err)
	}
	return numbers, contacts, nil
}

func numberRecord(n *entity.ExtractedNumber) []string {
	valid := "No"
	if n.IsValid {
		valid = "Yes"
	}
	return []string{
		n.RawNumber,
		orEmpty(n.NormalizedNumber),
		orEmpty(n.CountryCode),
		orEmpty(n.CountryName),
		orEmpty(n.Carrier),
		orEmpty(n.NumberType),
		valid,
		n.ExtractedAt.UTC().Format(time.RFC3339),
	}
}

// confidenceFor keeps the historical export contract: verdicts map to fixed
// confidences rather than a per-row score.
func confidenceFor(m constants.MatchType) float64 {
	switch m {
	case constants.MatchExact:
		return 1.0
	case constants.MatchPartial:
		return 0.8
	default:
		return 0.0
	}
}

func contactField(c *entity.ExistingContact, pick func(*entity.ExistingContact) *string) string {
	if c == nil {
		return ""
	}
	return orEmpty(pick(c))
}

func orEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
