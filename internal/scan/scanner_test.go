package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconkit/phone-recon/constants"
)

func rawValues(cands []Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Raw
	}
	return out
}

func TestScanSingleInternationalCandidate(t *testing.T) {
	s := NewScanner(constants.SourceWhatsApp)

	got := s.Scan("Call me +1 (212) 555-0123 today")

	require.Len(t, got, 1)
	assert.Equal(t, "+1 (212) 555-0123", got[0].Raw)
	assert.Equal(t, 1, got[0].Line)
}

func TestScanLabeledNumberClaimsOneSpan(t *testing.T) {
	s := NewScanner(constants.SourceWhatsApp)

	got := s.Scan("Phone: +91 98765 43210")

	// the labeled pattern and the international pattern overlap; only one wins
	require.Len(t, got, 1)
	assert.Equal(t, "+91 98765 43210", got[0].Raw)
}

func TestScanTrimsTrailingPunctuation(t *testing.T) {
	s := NewScanner(constants.SourceWhatsApp)

	got := s.Scan("Phone: +1 212 555 0123. Call now")

	require.Len(t, got, 1)
	assert.Equal(t, "+1 212 555 0123", got[0].Raw)
}

func TestScanSkipsChatNoise(t *testing.T) {
	s := NewScanner(constants.SourceWhatsApp)

	text := "John Doe\n" +
		"Today 12:45 PM\n" +
		"24/08/2026 14:30\n" +
		"Seen by 3 people at 12:45\n"

	assert.Empty(t, s.Scan(text))
}

func TestScanPreservesOrderOfAppearance(t *testing.T) {
	s := NewScanner(constants.SourceSMS)

	text := "Call 2125550123 or 2125550199\n" +
		"backup: +44 20 7946 0958\n"

	got := s.Scan(text)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"2125550123", "2125550199", "+44 20 7946 0958"}, rawValues(got))
	assert.Equal(t, []int{1, 1, 2}, []int{got[0].Line, got[1].Line, got[2].Line})
	assert.Less(t, got[0].Pos, got[1].Pos)
}

func TestScanDoesNotDeduplicateRepeats(t *testing.T) {
	s := NewScanner(constants.SourceSMS)

	got := s.Scan("2125550123\n2125550123")

	require.Len(t, got, 2)
	assert.Equal(t, got[0].Raw, got[1].Raw)
}

func TestScanSourceSelectsPatternSet(t *testing.T) {
	// Indian-style 5+5 grouping is a WhatsApp pattern; the generic set must not fire.
	text := "ping me on 98765 43210"

	whatsapp := NewScanner(constants.SourceWhatsApp).Scan(text)
	generic := NewScanner(constants.SourceCallLog).Scan(text)

	require.Len(t, whatsapp, 1)
	assert.Equal(t, "98765 43210", whatsapp[0].Raw)
	assert.Empty(t, generic)
}

func TestScanRejectsShortAndOverlongRuns(t *testing.T) {
	s := NewScanner(constants.SourceSMS)

	// 6 digits is below the minimum shape, line gate already drops it
	assert.Empty(t, s.Scan("pin 123456"))
	// 16+ consecutive digits cannot be a dialable number
	assert.Empty(t, s.Scan("ref 12345678901234567890123"))
}

func TestTrimCandidate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{" +1 212 555 0123. ", "+1 212 555 0123"},
		{"(212) 555-0123", "(212) 555-0123"},
		{"(212 555 0123", "212 555 0123"},
		{"212-555-0123)", "212-555-0123"},
		{"-2125550123-", "2125550123"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, trimCandidate(tc.in), "input %q", tc.in)
	}
}
