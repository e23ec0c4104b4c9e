// Package imports loads reference contacts from CSV exports. The column
// layout of those exports varies by vendor, so callers first Preview the
// file to get a suggested role mapping, then confirm a mapping and Import.
package imports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/csvmap"
	"github.com/reconkit/phone-recon/internal/entity"
	"github.com/reconkit/phone-recon/internal/phone"
)

// ContactStore is the persistence slice the importer needs. The repository
// package satisfies it.
type ContactStore interface {
	Upsert(ctx context.Context, contact *entity.ExistingContact) (*entity.ExistingContact, bool, error)
}

// Preview is what a caller needs to confirm a mapping before importing:
// the header row, a few sample rows and the suggested role assignment.
type Preview struct {
	Headers    []string
	SampleRows [][]string
	Suggestion csvmap.Suggestion
}

type Service struct {
	store      ContactStore
	normalizer *phone.Normalizer
	logger     *slog.Logger
}

func NewService(store ContactStore, normalizer *phone.Normalizer, logger *slog.Logger) *Service {
	return &Service{store: store, normalizer: normalizer, logger: logger}
}

// Preview reads just enough of the CSV to drive a mapping confirmation.
// sampleRows caps how many data rows come back; non-positive means 5.
func (s *Service) Preview(r io.Reader, sampleRows int) (*Preview, error) {
	if sampleRows <= 0 {
		sampleRows = 5
	}

	cr := newCSVReader(r)
	headers, err := readHeader(cr)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for len(rows) < sampleRows {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rows = append(rows, trimCells(rec))
	}

	return &Preview{
		Headers:    headers,
		SampleRows: rows,
		Suggestion: csvmap.Suggest(headers, rows),
	}, nil
}

// Import streams the CSV through the confirmed mapping and upserts one
// contact per usable row. Rows with an empty phone cell are skipped, rows
// whose phone does not normalize count as invalid, and rows whose canonical
// number was already imported under the same source count as duplicates.
func (s *Service) Import(ctx context.Context, r io.Reader, rawMapping map[string]string, sourceLabel string) (*entity.ImportStats, error) {
	mapping, err := ValidateMapping(rawMapping)
	if err != nil {
		return nil, err
	}
	sourceLabel = strings.TrimSpace(sourceLabel)
	if sourceLabel == "" {
		sourceLabel = "csv"
	}

	cr := newCSVReader(r)
	headers, err := readHeader(cr)
	if err != nil {
		return nil, err
	}

	idx, err := resolveColumns(headers, mapping)
	if err != nil {
		return nil, err
	}

	stats := &entity.ImportStats{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stats.TotalRows++

		rawPhone := cell(rec, idx, csvmap.RolePhone)
		if rawPhone == "" {
			stats.Skipped++
			continue
		}

		// contact exports carry their own country prefix, so no region hint
		norm := s.normalizer.Normalize(rawPhone, "")
		if norm.Rejected() {
			stats.InvalidPhones++
			continue
		}

		contact := &entity.ExistingContact{
			NormalizedNumber: *norm.NormalizedNumber,
			RawNumber:        norm.Raw,
			Name:             optionalCell(rec, idx, csvmap.RoleName),
			Email:            optionalCell(rec, idx, csvmap.RoleEmail),
			Company:          optionalCell(rec, idx, csvmap.RoleCompany),
			ExternalID:       optionalCell(rec, idx, csvmap.RoleExternalID),
			Source:           sourceLabel,
		}
		_, created, err := s.store.Upsert(ctx, contact)
		if err != nil {
			s.logger.Error("failed to upsert contact", "normalized_number", contact.NormalizedNumber, "error", err)
			return nil, err
		}
		if created {
			stats.Imported++
		} else {
			stats.Duplicates++
		}
	}

	s.logger.Info("contacts imported",
		"source", sourceLabel,
		"total_rows", stats.TotalRows,
		"imported", stats.Imported,
		"duplicates", stats.Duplicates,
		"invalid_phones", stats.InvalidPhones,
		"skipped", stats.Skipped)
	return stats, nil
}

func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // vendor exports are ragged more often than not
	return cr
}

func readHeader(cr *csv.Reader) ([]string, error) {
	headers, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv has no header row: %w", common.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	headers = trimCells(headers)
	if len(headers) > 0 {
		// spreadsheet exports love to prepend a UTF-8 BOM
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}
	return headers, nil
}

// resolveColumns turns the header names of a validated mapping into column
// indexes. A mapped header that is missing from the file is a mapping error,
// not a row error.
func resolveColumns(headers []string, mapping map[csvmap.Role]string) (map[csvmap.Role]int, error) {
	idx := make(map[csvmap.Role]int, len(mapping))
	for role, header := range mapping {
		found := -1
		for i, h := range headers {
			if strings.EqualFold(h, strings.TrimSpace(header)) {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("%w: mapped column %q not present in csv", common.ErrMapping, header)
		}
		idx[role] = found
	}
	return idx, nil
}

func trimCells(rec []string) []string {
	out := make([]string, len(rec))
	for i, v := range rec {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

func cell(rec []string, idx map[csvmap.Role]int, role csvmap.Role) string {
	i, ok := idx[role]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func optionalCell(rec []string, idx map[csvmap.Role]int, role csvmap.Role) *string {
	v := cell(rec, idx, role)
	if v == "" {
		return nil
	}
	return &v
}
