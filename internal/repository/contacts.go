package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect/sql"

	"github.com/reconkit/phone-recon/gen/ent"
	"github.com/reconkit/phone-recon/gen/ent/existingcontact"
	"github.com/reconkit/phone-recon/internal/entity"
	"github.com/reconkit/phone-recon/internal/utils"
)

// ContactFilter narrows List results. Zero values mean "no filter".
type ContactFilter struct {
	Search   string
	Page     int
	PageSize int
}

type ContactRepository interface {
	// Upsert stores a contact keyed by (normalized_number, source). When the
	// key exists already, fields the incoming contact carries overwrite the
	// stored ones and the bool comes back false.
	Upsert(ctx context.Context, c *entity.ExistingContact) (*entity.ExistingContact, bool, error)
	List(ctx context.Context, filter ContactFilter) ([]*entity.ExistingContact, int, error)
	ListAll(ctx context.Context) ([]*entity.ExistingContact, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) (int, error)
}

type contactRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContactRepository(client *ent.Client, logger *slog.Logger) ContactRepository {
	return &contactRepository{
		client: client,
		logger: logger,
	}
}

func (r *contactRepository) Upsert(ctx context.Context, c *entity.ExistingContact) (*entity.ExistingContact, bool, error) {
	existing, err := r.client.ExistingContact.Query().
		Where(
			existingcontact.NormalizedNumber(c.NormalizedNumber),
			existingcontact.Source(c.Source),
		).
		Only(ctx)
	if err == nil {
		return r.update(ctx, existing, c)
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up contact", "normalized_number", c.NormalizedNumber, "source", c.Source, "error", err)
		return nil, false, err
	}

	row, cerr := r.client.ExistingContact.Create().
		SetNormalizedNumber(c.NormalizedNumber).
		SetRawNumber(c.RawNumber).
		SetNillableName(c.Name).
		SetNillableEmail(c.Email).
		SetNillableCompany(c.Company).
		SetSource(c.Source).
		SetNillableExternalID(c.ExternalID).
		Save(ctx)
	if cerr == nil {
		return utils.ToContact(row), true, nil
	}
	if !ent.IsConstraintError(cerr) {
		r.logger.Error("failed to create contact", "normalized_number", c.NormalizedNumber, "source", c.Source, "error", cerr)
		return nil, false, cerr
	}

	// lost the creation race; update the winner instead
	existing, err = r.client.ExistingContact.Query().
		Where(
			existingcontact.NormalizedNumber(c.NormalizedNumber),
			existingcontact.Source(c.Source),
		).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to refetch contact after conflict", "normalized_number", c.NormalizedNumber, "source", c.Source, "error", err)
		return nil, false, cerr
	}
	return r.update(ctx, existing, c)
}

func (r *contactRepository) update(ctx context.Context, existing *ent.ExistingContact, c *entity.ExistingContact) (*entity.ExistingContact, bool, error) {
	builder := r.client.ExistingContact.UpdateOneID(existing.ID)
	if c.Name != nil {
		builder = builder.SetName(*c.Name)
	}
	if c.Email != nil {
		builder = builder.SetEmail(*c.Email)
	}
	if c.Company != nil {
		builder = builder.SetCompany(*c.Company)
	}
	if c.ExternalID != nil {
		builder = builder.SetExternalID(*c.ExternalID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update contact", "contact_id", existing.ID, "error", err)
		return nil, false, err
	}
	return utils.ToContact(row), false, nil
}

func (r *contactRepository) List(ctx context.Context, filter ContactFilter) ([]*entity.ExistingContact, int, error) {
	q := r.client.ExistingContact.Query()
	if filter.Search != "" {
		q = q.Where(existingcontact.Or(
			existingcontact.NormalizedNumberContains(filter.Search),
			existingcontact.RawNumberContains(filter.Search),
			existingcontact.NameContainsFold(filter.Search),
			existingcontact.EmailContainsFold(filter.Search),
			existingcontact.CompanyContainsFold(filter.Search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count contacts", "error", err)
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
		Order(existingcontact.ByImportedAt(sql.OrderDesc())).
		Offset((page - 1) * size).
		Limit(size).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list contacts", "error", err)
		return nil, 0, err
	}

	result := make([]*entity.ExistingContact, len(rows))
	for i, row := range rows {
		result[i] = utils.ToContact(row)
	}
	return result, total, nil
}

func (r *contactRepository) ListAll(ctx context.Context) ([]*entity.ExistingContact, error) {
	rows, err := r.client.ExistingContact.Query().
		Order(existingcontact.ByImportedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list all contacts", "error", err)
		return nil, err
	}
	result := make([]*entity.ExistingContact, len(rows))
	for i, row := range rows {
		result[i] = utils.ToContact(row)
	}
	return result, nil
}

func (r *contactRepository) Count(ctx context.Context) (int, error) {
	n, err := r.client.ExistingContact.Query().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count contacts", "error", err)
		return 0, err
	}
	return n, nil
}

func (r *contactRepository) Clear(ctx context.Context) (int, error) {
	n, err := r.client.ExistingContact.Delete().Exec(ctx)
	if err != nil {
		r.logger.Error("failed to clear contacts", "error", err)
		return 0, err
	}
	return n, nil
}
