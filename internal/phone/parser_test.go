package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInternationalNumber(t *testing.T) {
	p := NewParser()

	got, err := p.Parse("+1 212 555 0123", "")

	require.NoError(t, err)
	assert.Equal(t, "+12125550123", got.Canonical)
	assert.Equal(t, "+1", got.CountryCode)
	assert.Equal(t, "United States", got.CountryName)
	assert.True(t, got.IsValid)
}

func TestParseNationalNumberNeedsRegion(t *testing.T) {
	p := NewParser()

	got, err := p.Parse("(212) 555-0123", "US")
	require.NoError(t, err)
	assert.Equal(t, "+12125550123", got.Canonical)
	assert.True(t, got.IsValid)

	_, err = p.Parse("(212) 555-0123", "")
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestParseBritishFixedLine(t *testing.T) {
	p := NewParser()

	got, err := p.Parse("020 7946 0958", "GB")

	require.NoError(t, err)
	assert.Equal(t, "+442079460958", got.Canonical)
	assert.Equal(t, "+44", got.CountryCode)
	assert.Equal(t, "United Kingdom", got.CountryName)
	assert.True(t, got.IsValid)
}

func TestParseKeepsInvalidButWellFormedNumbers(t *testing.T) {
	p := NewParser()

	// unassigned exchange: parseable shape, not a real number
	got, err := p.Parse("+1 555 123 4567", "")

	require.NoError(t, err)
	assert.False(t, got.IsValid)
}

func TestParseRejectsGarbage(t *testing.T) {
	p := NewParser()

	_, err := p.Parse("not a number", "US")

	assert.ErrorIs(t, err, ErrParseFailed)
}
