package csvmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestTypicalContactExport(t *testing.T) {
	headers := []string{"Mobile", "Full Name", "Email Address"}
	rows := [][]string{
		{"+1 212 555 0123", "Ada Lovelace", "ada@example.com"},
		{"2125550199", "Grace Hopper", "grace@example.com"},
	}

	got := Suggest(headers, rows)

	require.Equal(t, map[Role]string{
		RolePhone: "Mobile",
		RoleName:  "Full Name",
		RoleEmail: "Email Address",
	}, got.Mapping)
	assert.NotContains(t, got.Mapping, RoleCompany)
	assert.NotContains(t, got.Mapping, RoleExternalID)
}

func TestSuggestLeavesUnknownColumnsUnmapped(t *testing.T) {
	headers := []string{"Col1", "Col2"}
	rows := [][]string{{"12345678", "foo"}, {"87654321", "bar"}}

	got := Suggest(headers, rows)

	// digit-shaped content alone is not evidence without a header hit
	assert.Empty(t, got.Mapping)
}

func TestSuggestShapeGateOverridesHeaderHit(t *testing.T) {
	headers := []string{"Number of Employees", "Phone"}
	rows := [][]string{
		{"12", "+12125550123"},
		{"9500000", "2125550199"},
	}

	got := Suggest(headers, rows)

	// "Number of Employees" word-matches the phone vocabulary but its values
	// are mostly not phone shaped, so the real phone column wins
	require.Equal(t, "Phone", got.Mapping[RolePhone])
	for _, s := range got.Scores {
		if s.Role == RolePhone && s.Header == "Number of Employees" {
			t.Fatalf("gated column leaked into the score table: %+v", s)
		}
	}
}

func TestSuggestEmailNeedsAtSign(t *testing.T) {
	headers := []string{"Mail"}

	withEmails := Suggest(headers, [][]string{{"a@b.example"}, {"c@d.example"}})
	withIDs := Suggest(headers, [][]string{{"1001"}, {"1002"}})

	assert.Equal(t, "Mail", withEmails.Mapping[RoleEmail])
	assert.NotContains(t, withIDs.Mapping, RoleEmail)
}

func TestSuggestHeaderOnlyWhenNoSamples(t *testing.T) {
	got := Suggest([]string{"Phone", "Name"}, nil)

	assert.Equal(t, "Phone", got.Mapping[RolePhone])
	assert.Equal(t, "Name", got.Mapping[RoleName])
}

func TestSuggestTieBreaksLeftmost(t *testing.T) {
	got := Suggest([]string{"Phone", "Telephone"}, nil)

	assert.Equal(t, "Phone", got.Mapping[RolePhone])
}

func TestSuggestExternalIDVocabulary(t *testing.T) {
	got := Suggest([]string{"Record Id", "Paid"}, nil)

	// short tokens like "id" must match whole words only
	assert.Equal(t, "Record Id", got.Mapping[RoleExternalID])

	gotPaid := Suggest([]string{"Paid"}, nil)
	assert.NotContains(t, gotPaid.Mapping, RoleExternalID)
}

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"Phone_Number":   "phone number",
		" E-mail ":       "e mail",
		"FULL  NAME":     "full name",
		"phone.number":   "phone number",
		"Contact-Name--": "contact name",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeHeader(in), "input %q", in)
	}
}
