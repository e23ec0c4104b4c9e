package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMatchType(t *testing.T) {
	cases := []struct {
		input string
		want  MatchType
		ok    bool
	}{
		{"existing-exact", MatchExact, true},
		{"existing-partial", MatchPartial, true},
		{"new", MatchNew, true},
		{"unknown", MatchUnknown, true},
		{"exact", MatchExact, true},
		{"  Partial ", MatchPartial, true},
		{"none", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseMatchType(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestIsExisting(t *testing.T) {
	assert.True(t, MatchExact.IsExisting())
	assert.True(t, MatchPartial.IsExisting())
	assert.False(t, MatchNew.IsExisting())
	assert.False(t, MatchUnknown.IsExisting())
}
