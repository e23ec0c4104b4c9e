package imports

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/csvmap"
	"github.com/reconkit/phone-recon/internal/entity"
	"github.com/reconkit/phone-recon/internal/phone"
)

type memStore struct {
	mu   sync.Mutex
	rows []*entity.ExistingContact
}

func (m *memStore) Upsert(_ context.Context, c *entity.ExistingContact) (*entity.ExistingContact, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.NormalizedNumber == c.NormalizedNumber && row.Source == c.Source {
			if c.Name != nil {
				row.Name = c.Name
			}
			if c.Email != nil {
				row.Email = c.Email
			}
			if c.Company != nil {
				row.Company = c.Company
			}
			if c.ExternalID != nil {
				row.ExternalID = c.ExternalID
			}
			return row, false, nil
		}
	}
	cp := *c
	cp.ID = uuid.New()
	cp.ImportedAt = time.Now().UTC()
	m.rows = append(m.rows, &cp)
	return &cp, true, nil
}

func (m *memStore) byNumber(normalized string) *entity.ExistingContact {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.NormalizedNumber == normalized {
			return row
		}
	}
	return nil
}

func newService(store ContactStore) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, phone.NewNormalizer(phone.NewParser()), logger)
}

const vendorCSV = `Phone Number,Full Name,E-mail,Organization
+1 212 555 0123,Alice,alice@example.com,Acme
+44 20 7946 0958,Bob,,
(212) 555-0123,Carol,carol@example.com,
,Dave,dave@example.com,
12345,Eve,,
+1 212 555 0123,Alice Again,,
`

var vendorMapping = map[string]string{
	"phone":   "Phone Number",
	"name":    "Full Name",
	"email":   "E-mail",
	"company": "Organization",
}

func TestImportCountsEveryOutcome(t *testing.T) {
	store := &memStore{}
	svc := newService(store)

	stats, err := svc.Import(context.Background(), strings.NewReader(vendorCSV), vendorMapping, "zoho")
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalRows)
	assert.Equal(t, 2, stats.Imported)      // Alice, Bob
	assert.Equal(t, 1, stats.Duplicates)    // Alice Again
	assert.Equal(t, 2, stats.InvalidPhones) // Carol lacks a prefix, Eve is too short
	assert.Equal(t, 1, stats.Skipped)       // Dave has no phone cell
	assert.Equal(t, stats.TotalRows, stats.Imported+stats.Duplicates+stats.InvalidPhones+stats.Skipped)

	require.Len(t, store.rows, 2)
	alice := store.byNumber("+12125550123")
	require.NotNil(t, alice)
	require.NotNil(t, alice.Name)
	assert.Equal(t, "Alice Again", *alice.Name) // the duplicate row updated the name
	require.NotNil(t, alice.Email)
	assert.Equal(t, "alice@example.com", *alice.Email)
	require.NotNil(t, alice.Company)
	assert.Equal(t, "Acme", *alice.Company)
	assert.Equal(t, "zoho", alice.Source)
	assert.Equal(t, "+1 212 555 0123", alice.RawNumber)

	bob := store.byNumber("+442079460958")
	require.NotNil(t, bob)
	assert.Nil(t, bob.Email)
	assert.Nil(t, bob.Company)
}

func TestImportDefaultsSourceLabel(t *testing.T) {
	store := &memStore{}
	svc := newService(store)

	_, err := svc.Import(context.Background(), strings.NewReader(vendorCSV), vendorMapping, "  ")
	require.NoError(t, err)

	alice := store.byNumber("+12125550123")
	require.NotNil(t, alice)
	assert.Equal(t, "csv", alice.Source)
}

func TestImportRejectsMappingWithoutPhone(t *testing.T) {
	svc := newService(&memStore{})

	_, err := svc.Import(context.Background(), strings.NewReader(vendorCSV), map[string]string{"name": "Full Name"}, "zoho")
	assert.ErrorIs(t, err, common.ErrMapping)
}

func TestImportRejectsUnknownMappingRole(t *testing.T) {
	svc := newService(&memStore{})

	mapping := map[string]string{"phone": "Phone Number", "birthday": "Born"}
	_, err := svc.Import(context.Background(), strings.NewReader(vendorCSV), mapping, "zoho")
	assert.ErrorIs(t, err, common.ErrMapping)
}

func TestImportRejectsMappedColumnMissingFromFile(t *testing.T) {
	svc := newService(&memStore{})

	mapping := map[string]string{"phone": "Mobile"}
	_, err := svc.Import(context.Background(), strings.NewReader(vendorCSV), mapping, "zoho")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMapping)
	assert.Contains(t, err.Error(), "Mobile")
}

func TestImportEmptyFile(t *testing.T) {
	svc := newService(&memStore{})

	_, err := svc.Import(context.Background(), strings.NewReader(""), vendorMapping, "zoho")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestImportRaggedRowsDoNotFail(t *testing.T) {
	store := &memStore{}
	svc := newService(store)

	csvData := "Phone,Name\n+1 212 555 0123\n+44 20 7946 0958,Bob,extra\n"
	stats, err := svc.Import(context.Background(), strings.NewReader(csvData), map[string]string{"phone": "Phone", "name": "Name"}, "csv")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalRows)
	assert.Equal(t, 2, stats.Imported)
	alice := store.byNumber("+12125550123")
	require.NotNil(t, alice)
	assert.Nil(t, alice.Name) // short row has no name cell
}

func TestPreviewSuggestsVendorHeaders(t *testing.T) {
	svc := newService(&memStore{})

	preview, err := svc.Preview(strings.NewReader(vendorCSV), 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"Phone Number", "Full Name", "E-mail", "Organization"}, preview.Headers)
	assert.Len(t, preview.SampleRows, 3)
	assert.Equal(t, "Phone Number", preview.Suggestion.Mapping[csvmap.RolePhone])
	assert.Equal(t, "Full Name", preview.Suggestion.Mapping[csvmap.RoleName])
	assert.Equal(t, "E-mail", preview.Suggestion.Mapping[csvmap.RoleEmail])
	assert.Equal(t, "Organization", preview.Suggestion.Mapping[csvmap.RoleCompany])
	assert.NotContains(t, preview.Suggestion.Mapping, csvmap.RoleExternalID)
	assert.NotEmpty(t, preview.Suggestion.Scores)
}

func TestPreviewStripsByteOrderMark(t *testing.T) {
	svc := newService(&memStore{})

	preview, err := svc.Preview(strings.NewReader("\uFEFFPhone,Name\n+12125550123,Alice\n"), 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"Phone", "Name"}, preview.Headers)
}

func TestPreviewDefaultsSampleRows(t *testing.T) {
	svc := newService(&memStore{})

	var b strings.Builder
	b.WriteString("Phone,Name\n")
	for i := 0; i < 8; i++ {
		b.WriteString("+12125550123,Alice\n")
	}

	preview, err := svc.Preview(strings.NewReader(b.String()), 0)
	require.NoError(t, err)
	assert.Len(t, preview.SampleRows, 5)
}

func TestPreviewEmptyFile(t *testing.T) {
	svc := newService(&memStore{})

	_, err := svc.Preview(strings.NewReader(""), 5)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestValidateMappingTypesRoles(t *testing.T) {
	mapping, err := ValidateMapping(map[string]string{"phone": "Phone", "external_id": "Record Id"})
	require.NoError(t, err)

	assert.Equal(t, "Phone", mapping[csvmap.RolePhone])
	assert.Equal(t, "Record Id", mapping[csvmap.RoleExternalID])
}

func TestValidateMappingRejectsBlankColumn(t *testing.T) {
	_, err := ValidateMapping(map[string]string{"phone": ""})
	assert.ErrorIs(t, err, common.ErrMapping)
}
