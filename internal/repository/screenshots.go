package repository

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/reconkit/phone-recon/gen/ent"
	"github.com/reconkit/phone-recon/gen/ent/extractednumber"
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/entity"
	"github.com/reconkit/phone-recon/internal/utils"
)

// ScreenshotFilter narrows List results. Zero values mean "no filter".
type ScreenshotFilter struct {
	Source    string
	Processed *bool
	Page      int
	PageSize  int
}

type ScreenshotRepository interface {
	Create(ctx context.Context, filePath, filename string, source *string) (*entity.Screenshot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Screenshot, error)
	GetByPath(ctx context.Context, filePath string) (*entity.Screenshot, error)
	List(ctx context.Context, filter ScreenshotFilter) ([]*entity.Screenshot, int, error)
	UpdateMeta(ctx context.Context, id uuid.UUID, source, notes *string) (*entity.Screenshot, error)
	SetExtractionResult(ctx context.Context, id uuid.UUID, ocrText string) error
	ListUnprocessedIDs(ctx context.Context) ([]uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type screenshotRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewScreenshotRepository(client *ent.Client, logger *slog.Logger) ScreenshotRepository {
	return &screenshotRepository{
		client: client,
		logger: logger,
	}
}

func (r *screenshotRepository) Create(ctx context.Context, filePath, filename string, source *string) (*entity.Screenshot, error) {
	row, err := r.client.Screenshot.Create().
		SetFilePath(filePath).
		SetFilename(filename).
		SetNillableSource(source).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create screenshot", "file_path", filePath, "error", err)
		return nil, err
	}
	return utils.ToScreenshot(row), nil
}

func (r *screenshotRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Screenshot, error) {
	row, err := r.client.Screenshot.Query().
		Where(screenshot.ID(id)).
		WithNumbers(func(q *ent.ExtractedNumberQuery) {
			q.Select(extractednumber.FieldID)
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("screenshot %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to get screenshot", "screenshot_id", id, "error", err)
		return nil, err
	}
	return utils.ToScreenshot(row), nil
}

func (r *screenshotRepository) GetByPath(ctx context.Context, filePath string) (*entity.Screenshot, error) {
	row, err := r.client.Screenshot.Query().
		Where(screenshot.FilePath(filePath)).
		Order(screenshot.ByUploadedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("screenshot at %s: %w", filePath, common.ErrNotFound)
		}
		r.logger.Error("failed to get screenshot by path", "file_path", filePath, "error", err)
		return nil, err
	}
	return utils.ToScreenshot(row), nil
}

func (r *screenshotRepository) List(ctx context.Context, filter ScreenshotFilter) ([]*entity.Screenshot, int, error) {
	q := r.client.Screenshot.Query()
	if filter.Source != "" {
		q = q.Where(screenshot.SourceEQ(filter.Source))
	}
	if filter.Processed != nil {
		q = q.Where(screenshot.Processed(*filter.Processed))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count screenshots", "error", err)
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
		Order(screenshot.ByUploadedAt(sql.OrderDesc())).
		Offset((page - 1) * size).
		Limit(size).
		WithNumbers(func(nq *ent.ExtractedNumberQuery) {
			nq.Select(extractednumber.FieldID)
		}).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list screenshots", "error", err)
		return nil, 0, err
	}

	result := make([]*entity.Screenshot, len(rows))
	for i, row := range rows {
		result[i] = utils.ToScreenshot(row)
	}
	return result, total, nil
}

func (r *screenshotRepository) UpdateMeta(ctx context.Context, id uuid.UUID, source, notes *string) (*entity.Screenshot, error) {
	builder := r.client.Screenshot.UpdateOneID(id)
	if source != nil {
		builder = builder.SetSource(*source)
	}
	if notes != nil {
		builder = builder.SetNotes(*notes)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("screenshot %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to update screenshot", "screenshot_id", id, "error", err)
		return nil, err
	}
	return utils.ToScreenshot(row), nil
}

func (r *screenshotRepository) SetExtractionResult(ctx context.Context, id uuid.UUID, ocrText string) error {
	err := r.client.Screenshot.UpdateOneID(id).
		SetOcrText(ocrText).
		SetProcessed(true).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("screenshot %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to store extraction result", "screenshot_id", id, "error", err)
		return err
	}
	return nil
}

func (r *screenshotRepository) ListUnprocessedIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := r.client.Screenshot.Query().
		Where(screenshot.Processed(false)).
		Order(screenshot.ByUploadedAt()).
		IDs(ctx)
	if err != nil {
		r.logger.Error("failed to list unprocessed screenshots", "error", err)
		return nil, err
	}
	return ids, nil
}

func (r *screenshotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Screenshot.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("screenshot %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to delete screenshot", "screenshot_id", id, "error", err)
		return err
	}
	return nil
}
