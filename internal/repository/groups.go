package repository

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/reconkit/phone-recon/constants"
	"github.com/reconkit/phone-recon/gen/ent"
	"github.com/reconkit/phone-recon/gen/ent/extractednumber"
	"github.com/reconkit/phone-recon/gen/ent/group"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/entity"
	"github.com/reconkit/phone-recon/internal/utils"
)

type GroupRepository interface {
	Create(ctx context.Context, name string, description *string, color string) (*entity.Group, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	List(ctx context.Context, includeSystem bool) ([]*entity.Group, error)
	// Update rejects system groups; the pipeline owns those.
	Update(ctx context.Context, id uuid.UUID, name, description, color *string) (*entity.Group, error)
	// Delete rejects system groups. Member numbers survive, memberships do not.
	Delete(ctx context.Context, id uuid.UUID) error
	// EnsureCountryGroup finds or creates the system group for a calling
	// code. Safe to call from concurrent extractions.
	EnsureCountryGroup(ctx context.Context, countryCode, countryName string) (*entity.Group, error)
	// AddNumbers links numbers into a group, skipping ones already linked.
	// Returns how many new memberships were created.
	AddNumbers(ctx context.Context, groupID uuid.UUID, numberIDs []uuid.UUID) (int, error)
	RemoveNumbers(ctx context.Context, groupID uuid.UUID, numberIDs []uuid.UUID) (int, error)
	MembersPage(ctx context.Context, groupID uuid.UUID, page, pageSize int) ([]*entity.ExtractedNumber, int, error)
}

type groupRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewGroupRepository(client *ent.Client, logger *slog.Logger) GroupRepository {
	return &groupRepository{
		client: client,
		logger: logger,
	}
}

func (r *groupRepository) Create(ctx context.Context, name string, description *string, color string) (*entity.Group, error) {
	if color == "" {
		color = constants.DefaultGroupColor
	}
	row, err := r.client.Group.Create().
		SetName(name).
		SetNillableDescription(description).
		SetColor(color).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("group %q already exists: %w", name, common.ErrInvalidInput)
		}
		r.logger.Error("failed to create group", "name", name, "error", err)
		return nil, err
	}
	return utils.ToGroup(row), nil
}

func (r *groupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	row, err := r.client.Group.Query().
		Where(group.ID(id)).
		WithNumbers(func(q *ent.ExtractedNumberQuery) {
			q.Select(extractednumber.FieldID)
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("group %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to get group", "group_id", id, "error", err)
		return nil, err
	}
	return utils.ToGroup(row), nil
}

func (r *groupRepository) List(ctx context.Context, includeSystem bool) ([]*entity.Group, error) {
	q := r.client.Group.Query()
	if !includeSystem {
		q = q.Where(group.IsSystem(false))
	}
	rows, err := q.
		Order(group.ByIsSystem(), group.ByName()).
		WithNumbers(func(nq *ent.ExtractedNumberQuery) {
			nq.Select(extractednumber.FieldID)
		}).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list groups", "error", err)
		return nil, err
	}
	result := make([]*entity.Group, len(rows))
	for i, row := range rows {
		result[i] = utils.ToGroup(row)
	}
	return result, nil
}

func (r *groupRepository) Update(ctx context.Context, id uuid.UUID, name, description, color *string) (*entity.Group, error) {
	if err := r.rejectSystemGroup(ctx, id); err != nil {
		return nil, err
	}
	builder := r.client.Group.UpdateOneID(id)
	if name != nil {
		builder = builder.SetName(*name)
	}
	if description != nil {
		builder = builder.SetDescription(*description)
	}
	if color != nil {
		builder = builder.SetColor(*color)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("group name already taken: %w", common.ErrInvalidInput)
		}
		r.logger.Error("failed to update group", "group_id", id, "error", err)
		return nil, err
	}
	return utils.ToGroup(row), nil
}

func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.rejectSystemGroup(ctx, id); err != nil {
		return err
	}
	if err := r.client.Group.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete group", "group_id", id, "error", err)
		return err
	}
	return nil
}

func (r *groupRepository) rejectSystemGroup(ctx context.Context, id uuid.UUID) error {
	row, err := r.client.Group.Query().
		Where(group.ID(id)).
		Select(group.FieldIsSystem).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("group %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to check group", "group_id", id, "error", err)
		return err
	}
	if row.IsSystem {
		return fmt.Errorf("system groups are managed by extraction: %w", common.ErrInvalidInput)
	}
	return nil
}

func (r *groupRepository) EnsureCountryGroup(ctx context.Context, countryCode, countryName string) (*entity.Group, error) {
	row, err := r.client.Group.Query().
		Where(group.CountryCodeEQ(countryCode), group.IsSystem(true)).
		Only(ctx)
	if err == nil {
		return utils.ToGroup(row), nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up country group", "country_code", countryCode, "error", err)
		return nil, err
	}

	name := countryName
	if name == "" {
		name = countryCode
	}
	created, cerr := r.client.Group.Create().
		SetName(fmt.Sprintf("%s (%s)", name, countryCode)).
		SetColor(constants.ColorForCountry(countryCode)).
		SetIsSystem(true).
		SetCountryCode(countryCode).
		Save(ctx)
	if cerr == nil {
		return utils.ToGroup(created), nil
	}
	if !ent.IsConstraintError(cerr) {
		r.logger.Error("failed to create country group", "country_code", countryCode, "error", cerr)
		return nil, cerr
	}

	// lost the creation race to a concurrent extraction; use the winner
	row, err = r.client.Group.Query().
		Where(group.CountryCodeEQ(countryCode), group.IsSystem(true)).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to refetch country group after conflict", "country_code", countryCode, "error", err)
		return nil, cerr
	}
	return utils.ToGroup(row), nil
}

func (r *groupRepository) AddNumbers(ctx context.Context, groupID uuid.UUID, numberIDs []uuid.UUID) (int, error) {
	if len(numberIDs) == 0 {
		return 0, nil
	}
	linked, err := r.client.Group.Query().
		Where(group.ID(groupID)).
		QueryNumbers().
		Where(extractednumber.IDIn(numberIDs...)).
		IDs(ctx)
	if err != nil {
		r.logger.Error("failed to check group memberships", "group_id", groupID, "error", err)
		return 0, err
	}
	seen := make(map[uuid.UUID]bool, len(linked))
	for _, id := range linked {
		seen[id] = true
	}
	toAdd := make([]uuid.UUID, 0, len(numberIDs))
	for _, id := range numberIDs {
		if !seen[id] {
			toAdd = append(toAdd, id)
			seen[id] = true
		}
	}
	if len(toAdd) == 0 {
		return 0, nil
	}
	err = r.client.Group.UpdateOneID(groupID).AddNumberIDs(toAdd...).Exec(ctx)
	if err != nil {
		// a concurrent extraction linked the same number first
		if ent.IsConstraintError(err) {
			return 0, nil
		}
		if ent.IsNotFound(err) {
			return 0, fmt.Errorf("group %s: %w", groupID, common.ErrNotFound)
		}
		r.logger.Error("failed to add numbers to group", "group_id", groupID, "count", len(toAdd), "error", err)
		return 0, err
	}
	return len(toAdd), nil
}

func (r *groupRepository) RemoveNumbers(ctx context.Context, groupID uuid.UUID, numberIDs []uuid.UUID) (int, error) {
	if len(numberIDs) == 0 {
		return 0, nil
	}
	linked, err := r.client.Group.Query().
		Where(group.ID(groupID)).
		QueryNumbers().
		Where(extractednumber.IDIn(numberIDs...)).
		IDs(ctx)
	if err != nil {
		r.logger.Error("failed to check group memberships", "group_id", groupID, "error", err)
		return 0, err
	}
	if len(linked) == 0 {
		return 0, nil
	}
	err = r.client.Group.UpdateOneID(groupID).RemoveNumberIDs(linked...).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, fmt.Errorf("group %s: %w", groupID, common.ErrNotFound)
		}
		r.logger.Error("failed to remove numbers from group", "group_id", groupID, "count", len(linked), "error", err)
		return 0, err
	}
	return len(linked), nil
}

func (r *groupRepository) MembersPage(ctx context.Context, groupID uuid.UUID, page, pageSize int) ([]*entity.ExtractedNumber, int, error) {
	base := r.client.Group.Query().
		Where(group.ID(groupID)).
		QueryNumbers()

	total, err := base.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count group members", "group_id", groupID, "error", err)
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	rows, err := base.
		Order(extractednumber.ByExtractedAt(sql.OrderDesc())).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list group members", "group_id", groupID, "error", err)
		return nil, 0, err
	}

	result := make([]*entity.ExtractedNumber, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExtractedNumber(row)
	}
	return result, total, nil
}
