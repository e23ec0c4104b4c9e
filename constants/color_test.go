package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorForCountryIsStable(t *testing.T) {
	first := ColorForCountry("+44")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ColorForCountry("+44"))
	}
}

func TestColorForCountryStaysInPalette(t *testing.T) {
	codes := []string{"", "+1", "+44", "+91", "+971", "+880", "+61", "+92"}
	for _, code := range codes {
		color := ColorForCountry(code)
		assert.Contains(t, groupPalette, color, "code %q", code)
	}
}
