package constants

import "strings"

// MatchType is the canonical comparator verdict for an extracted number.
type MatchType string

// Stable values (stored in comparison exports, returned over the API).
const (
	MatchExact   MatchType = "existing-exact"   // canonical forms equal
	MatchPartial MatchType = "existing-partial" // equal after stripping a country calling code
	MatchNew     MatchType = "new"              // canonical form seen in no existing contact
	MatchUnknown MatchType = "unknown"          // no canonical form, never compared
)

// IsExisting reports whether the verdict ties the number to an existing contact.
func (m MatchType) IsExisting() bool {
	return m == MatchExact || m == MatchPartial
}

// ParseMatchType maps free-form filter input to a known verdict value.
// The bare shorthands "exact" and "partial" are accepted too.
func ParseMatchType(input string) (MatchType, bool) {
	switch m := MatchType(strings.ToLower(strings.TrimSpace(input))); m {
	case MatchExact, MatchPartial, MatchNew, MatchUnknown:
		return m, true
	case "exact":
		return MatchExact, true
	case "partial":
		return MatchPartial, true
	}
	return "", false
}
