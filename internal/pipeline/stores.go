package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/reconkit/phone-recon/internal/entity"
)

// The pipeline names only the persistence it needs, so tests can fake the
// stores without a database. The repository package satisfies all three.

type ScreenshotStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Screenshot, error)
	SetExtractionResult(ctx context.Context, id uuid.UUID, ocrText string) error
}

type NumberStore interface {
	DeleteByScreenshot(ctx context.Context, screenshotID uuid.UUID) (int, error)
	InsertOrGet(ctx context.Context, n *entity.ExtractedNumber) (*entity.ExtractedNumber, bool, error)
}

type GroupStore interface {
	EnsureCountryGroup(ctx context.Context, countryCode, countryName string) (*entity.Group, error)
	AddNumbers(ctx context.Context, groupID uuid.UUID, numberIDs []uuid.UUID) (int, error)
}
