package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedParser answers from a fixed table keyed by raw|region and records
// the calls it saw.
type scriptedParser struct {
	table map[string]ParsedNumber
	calls []string
}

func (p *scriptedParser) Parse(raw, region string) (ParsedNumber, error) {
	key := raw + "|" + region
	p.calls = append(p.calls, key)
	parsed, ok := p.table[key]
	if !ok {
		return ParsedNumber{}, ErrParseFailed
	}
	return parsed, nil
}

func TestNormalizeUsesDefaultRegionFirst(t *testing.T) {
	parser := &scriptedParser{table: map[string]ParsedNumber{
		"2125550123|US": {Canonical: "+12125550123", CountryCode: "+1", CountryName: "United States", NumberType: "FIXED_LINE_OR_MOBILE", IsValid: true},
	}}
	n := NewNormalizer(parser)

	got := n.Normalize("2125550123", "US")

	require.True(t, got.IsValid)
	require.NotNil(t, got.NormalizedNumber)
	assert.Equal(t, "+12125550123", *got.NormalizedNumber)
	assert.Equal(t, "+1", *got.CountryCode)
	assert.Equal(t, []string{"2125550123|US"}, parser.calls, "no retry when the hint works")
}

func TestNormalizePlusPrefixBeatsWrongHint(t *testing.T) {
	parser := &scriptedParser{table: map[string]ParsedNumber{
		// under the wrong hint the number parses but does not validate
		"+442079460958|US": {Canonical: "+442079460958", IsValid: false},
		"+442079460958|":   {Canonical: "+442079460958", CountryCode: "+44", CountryName: "United Kingdom", IsValid: true},
	}}
	n := NewNormalizer(parser)

	got := n.Normalize("+442079460958", "US")

	require.True(t, got.IsValid)
	assert.Equal(t, "+442079460958", *got.NormalizedNumber)
	assert.Equal(t, "United Kingdom", *got.CountryName)
	assert.Equal(t, []string{"+442079460958|US", "+442079460958|"}, parser.calls)
}

func TestNormalizeDoesNotRetryWithoutPlus(t *testing.T) {
	parser := &scriptedParser{table: map[string]ParsedNumber{}}
	n := NewNormalizer(parser)

	got := n.Normalize("98765 43210", "FR")

	assert.True(t, got.Rejected())
	assert.Equal(t, []string{"98765 43210|FR"}, parser.calls)
}

func TestNormalizeRejectedKeepsRawOnly(t *testing.T) {
	parser := &scriptedParser{table: map[string]ParsedNumber{
		// parseable but invalid, and no + prefix to retry with
		"5551234567|US": {Canonical: "+15551234567", CountryCode: "+1", IsValid: false},
	}}
	n := NewNormalizer(parser)

	got := n.Normalize("  5551234567 ", "US")

	assert.True(t, got.Rejected())
	assert.Equal(t, "5551234567", got.Raw)
	assert.Nil(t, got.NormalizedNumber)
	assert.Nil(t, got.CountryCode)
	assert.Nil(t, got.CountryName)
	assert.Nil(t, got.Carrier)
	assert.Nil(t, got.NumberType)
}

func TestNormalizeEmptyInput(t *testing.T) {
	parser := &scriptedParser{}
	n := NewNormalizer(parser)

	got := n.Normalize("   ", "US")

	assert.True(t, got.Rejected())
	assert.Empty(t, got.Raw)
	assert.Empty(t, parser.calls, "nothing to parse")
}

func TestNormalizeIsDeterministic(t *testing.T) {
	n := NewNormalizer(NewParser())

	first := n.Normalize("+1 (212) 555-0123", "US")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, n.Normalize("+1 (212) 555-0123", "US"))
	}
	require.True(t, first.IsValid)
	assert.Equal(t, "+12125550123", *first.NormalizedNumber)
}
