package repository

import (
	"context"
	"log/slog"
	"sort"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/reconkit/phone-recon/gen/ent"
	"github.com/reconkit/phone-recon/gen/ent/extractednumber"
	"github.com/reconkit/phone-recon/internal/entity"
	"github.com/reconkit/phone-recon/internal/utils"
)

// NumberFilter narrows List results. Zero values mean "no filter".
type NumberFilter struct {
	CountryCode  string
	IsValid      *bool
	ScreenshotID *uuid.UUID
	Search       string
	Page         int
	PageSize     int
}

// CountryCount is one row of the per-country breakdown.
type CountryCount struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	Count       int    `json:"count"`
}

// TypeCount is one row of the per-line-type breakdown.
type TypeCount struct {
	NumberType string `json:"number_type"`
	Count      int    `json:"count"`
}

// DuplicateGroup collects the rows sharing one canonical number across
// screenshots. Within a single screenshot the unique index keeps the
// canonical unique, so more than one row always means more than one
// screenshot.
type DuplicateGroup struct {
	NormalizedNumber string
	Numbers          []*entity.ExtractedNumber
}

type NumberRepository interface {
	// InsertOrGet stores an extracted number, or hands back the row that
	// already holds the same canonical for the same screenshot. The bool
	// reports whether a new row was created.
	InsertOrGet(ctx context.Context, n *entity.ExtractedNumber) (*entity.ExtractedNumber, bool, error)
	DeleteByScreenshot(ctx context.Context, screenshotID uuid.UUID) (int, error)
	List(ctx context.Context, filter NumberFilter) ([]*entity.ExtractedNumber, int, error)
	// ListAll returns every matching row unpaged, oldest first, for exports
	// and comparison runs. Empty countryCode and nil isValid mean no filter.
	ListAll(ctx context.Context, countryCode string, isValid *bool) ([]*entity.ExtractedNumber, error)
	CountByCountry(ctx context.Context) ([]CountryCount, error)
	CountByType(ctx context.Context) ([]TypeCount, error)
	CountTotals(ctx context.Context) (total int, valid int, err error)
	Duplicates(ctx context.Context) ([]DuplicateGroup, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error)
}

type numberRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewNumberRepository(client *ent.Client, logger *slog.Logger) NumberRepository {
	return &numberRepository{
		client: client,
		logger: logger,
	}
}

func (r *numberRepository) InsertOrGet(ctx context.Context, n *entity.ExtractedNumber) (*entity.ExtractedNumber, bool, error) {
	row, err := r.client.ExtractedNumber.Create().
		SetScreenshotID(n.ScreenshotID).
		SetRawNumber(n.RawNumber).
		SetNillableNormalizedNumber(n.NormalizedNumber).
		SetNillableCountryCode(n.CountryCode).
		SetNillableCountryName(n.CountryName).
		SetNillableCarrier(n.Carrier).
		SetNillableNumberType(n.NumberType).
		SetIsValid(n.IsValid).
		Save(ctx)
	if err == nil {
		return utils.ToExtractedNumber(row), true, nil
	}
	// Rows without a canonical never collide, so a constraint failure
	// there is a real error (missing screenshot, usually).
	if !ent.IsConstraintError(err) || n.NormalizedNumber == nil {
		r.logger.Error("failed to insert extracted number", "screenshot_id", n.ScreenshotID, "raw_number", n.RawNumber, "error", err)
		return nil, false, err
	}
	existing, ferr := r.client.ExtractedNumber.Query().
		Where(
			extractednumber.ScreenshotID(n.ScreenshotID),
			extractednumber.NormalizedNumber(*n.NormalizedNumber),
		).
		Only(ctx)
	if ferr != nil {
		r.logger.Error("failed to refetch extracted number after conflict", "screenshot_id", n.ScreenshotID, "normalized_number", *n.NormalizedNumber, "error", ferr)
		return nil, false, err
	}
	return utils.ToExtractedNumber(existing), false, nil
}

func (r *numberRepository) DeleteByScreenshot(ctx context.Context, screenshotID uuid.UUID) (int, error) {
	n, err := r.client.ExtractedNumber.Delete().
		Where(extractednumber.ScreenshotID(screenshotID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete numbers for screenshot", "screenshot_id", screenshotID, "error", err)
		return 0, err
	}
	return n, nil
}

func (r *numberRepository) List(ctx context.Context, filter NumberFilter) ([]*entity.ExtractedNumber, int, error) {
	q := r.client.ExtractedNumber.Query()
	if filter.CountryCode != "" {
		q = q.Where(extractednumber.CountryCodeEQ(filter.CountryCode))
	}
	if filter.IsValid != nil {
		q = q.Where(extractednumber.IsValid(*filter.IsValid))
	}
	if filter.ScreenshotID != nil {
		q = q.Where(extractednumber.ScreenshotID(*filter.ScreenshotID))
	}
	if filter.Search != "" {
		q = q.Where(extractednumber.Or(
			extractednumber.RawNumberContains(filter.Search),
			extractednumber.NormalizedNumberContains(filter.Search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count extracted numbers", "error", err)
		return nil, 0, err
	}

	page, size := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 50
	}
	rows, err := q.
		Order(extractednumber.ByExtractedAt(sql.OrderDesc())).
		Offset((page - 1) * size).
		Limit(size).
		WithGroups().
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list extracted numbers", "error", err)
		return nil, 0, err
	}

	result := make([]*entity.ExtractedNumber, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExtractedNumber(row)
	}
	return result, total, nil
}

func (r *numberRepository) ListAll(ctx context.Context, countryCode string, isValid *bool) ([]*entity.ExtractedNumber, error) {
	q := r.client.ExtractedNumber.Query()
	if countryCode != "" {
		q = q.Where(extractednumber.CountryCodeEQ(countryCode))
	}
	if isValid != nil {
		q = q.Where(extractednumber.IsValid(*isValid))
	}
	rows, err := q.Order(extractednumber.ByExtractedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list all extracted numbers", "error", err)
		return nil, err
	}
	result := make([]*entity.ExtractedNumber, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExtractedNumber(row)
	}
	return result, nil
}

func (r *numberRepository) CountByCountry(ctx context.Context) ([]CountryCount, error) {
	var rows []CountryCount
	err := r.client.ExtractedNumber.Query().
		Where(extractednumber.CountryCodeNotNil()).
		GroupBy(extractednumber.FieldCountryCode, extractednumber.FieldCountryName).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("failed to count numbers by country", "error", err)
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].CountryCode < rows[j].CountryCode
	})
	return rows, nil
}

func (r *numberRepository) CountByType(ctx context.Context) ([]TypeCount, error) {
	var rows []TypeCount
	err := r.client.ExtractedNumber.Query().
		Where(extractednumber.NumberTypeNotNil()).
		GroupBy(extractednumber.FieldNumberType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("failed to count numbers by type", "error", err)
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].NumberType < rows[j].NumberType
	})
	return rows, nil
}

func (r *numberRepository) CountTotals(ctx context.Context) (int, int, error) {
	total, err := r.client.ExtractedNumber.Query().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count extracted numbers", "error", err)
		return 0, 0, err
	}
	valid, err := r.client.ExtractedNumber.Query().
		Where(extractednumber.IsValid(true)).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count valid numbers", "error", err)
		return 0, 0, err
	}
	return total, valid, nil
}

func (r *numberRepository) Duplicates(ctx context.Context) ([]DuplicateGroup, error) {
	var agg []struct {
		NormalizedNumber string `json:"normalized_number"`
		Count            int    `json:"count"`
	}
	err := r.client.ExtractedNumber.Query().
		Where(extractednumber.NormalizedNumberNotNil()).
		GroupBy(extractednumber.FieldNormalizedNumber).
		Aggregate(ent.Count()).
		Scan(ctx, &agg)
	if err != nil {
		r.logger.Error("failed to aggregate duplicate numbers", "error", err)
		return nil, err
	}

	var repeated []string
	for _, a := range agg {
		if a.Count > 1 {
			repeated = append(repeated, a.NormalizedNumber)
		}
	}
	if len(repeated) == 0 {
		return nil, nil
	}

	rows, err := r.client.ExtractedNumber.Query().
		Where(extractednumber.NormalizedNumberIn(repeated...)).
		Order(extractednumber.ByNormalizedNumber(), extractednumber.ByExtractedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load duplicate numbers", "error", err)
		return nil, err
	}

	byCanonical := make(map[string]*DuplicateGroup, len(repeated))
	var out []DuplicateGroup
	order := make([]string, 0, len(repeated))
	for _, row := range rows {
		key := *row.NormalizedNumber
		g, ok := byCanonical[key]
		if !ok {
			g = &DuplicateGroup{NormalizedNumber: key}
			byCanonical[key] = g
			order = append(order, key)
		}
		g.Numbers = append(g.Numbers, utils.ToExtractedNumber(row))
	}
	for _, key := range order {
		out = append(out, *byCanonical[key])
	}
	return out, nil
}

func (r *numberRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.client.ExtractedNumber.Delete().
		Where(extractednumber.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete extracted numbers", "count", len(ids), "error", err)
		return 0, err
	}
	return n, nil
}
