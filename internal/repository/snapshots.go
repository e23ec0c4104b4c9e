package repository

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"

	"github.com/reconkit/phone-recon/gen/ent"
	"github.com/reconkit/phone-recon/gen/ent/comparisonsnapshot"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/entity"
	"github.com/reconkit/phone-recon/internal/utils"
)

type SnapshotRepository interface {
	// Save persists one comparison outcome. The stored row carries the
	// persist-time ComparedAt, which the returned stats echo.
	Save(ctx context.Context, stats *entity.ComparisonStats) (*entity.ComparisonStats, error)
	Latest(ctx context.Context) (*entity.ComparisonStats, error)
}

type snapshotRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSnapshotRepository(client *ent.Client, logger *slog.Logger) SnapshotRepository {
	return &snapshotRepository{
		client: client,
		logger: logger,
	}
}

func (r *snapshotRepository) Save(ctx context.Context, stats *entity.ComparisonStats) (*entity.ComparisonStats, error) {
	row, err := r.client.ComparisonSnapshot.Create().
		SetTotalExtracted(stats.TotalExtracted).
		SetTotalContacts(stats.TotalContacts).
		SetExactMatches(stats.ExactMatches).
		SetPartialMatches(stats.PartialMatches).
		SetNewNumbers(stats.NewNumbers).
		SetNotCompared(stats.NotCompared).
		SetMatchRate(stats.MatchRate).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save comparison snapshot", "error", err)
		return nil, err
	}
	return utils.ToComparisonStats(row), nil
}

func (r *snapshotRepository) Latest(ctx context.Context) (*entity.ComparisonStats, error) {
	row, err := r.client.ComparisonSnapshot.Query().
		Order(comparisonsnapshot.ByComparedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("no comparison has run yet: %w", common.ErrNotFound)
		}
		r.logger.Error("failed to load latest comparison snapshot", "error", err)
		return nil, err
	}
	return utils.ToComparisonStats(row), nil
}
