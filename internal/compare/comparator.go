// Package compare classifies extracted numbers against imported contacts.
//
// Compare is a pure function over the two slices it is handed: no clock, no
// store, no randomness. Callers re-run it whenever either store changed and
// persist the stats snapshot themselves.
package compare

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/reconkit/phone-recon/constants"
	"github.com/reconkit/phone-recon/internal/entity"
)

// Compare classifies every extracted number, in input order, against the
// contacts. Rules apply first-match-wins per number:
//
//  1. exact: a contact's normalized number equals the canonical form
//  2. partial: equality holds after stripping the country calling code from
//     one side (never both)
//  3. new: no rule matched a canonical form
//
// Numbers without a canonical form are unknown and never compared.
func Compare(numbers []*entity.ExtractedNumber, contacts []*entity.ExistingContact) ([]entity.Classification, entity.ComparisonStats) {
	exact := make(map[string][]*entity.ExistingContact, len(contacts))
	stripped := make(map[string][]*entity.ExistingContact)
	for _, c := range contacts {
		exact[c.NormalizedNumber] = append(exact[c.NormalizedNumber], c)
		if s := stripCallingCode(c.NormalizedNumber, ""); s != c.NormalizedNumber && s != "" {
			stripped[s] = append(stripped[s], c)
		}
	}

	stats := entity.ComparisonStats{
		TotalExtracted: len(numbers),
		TotalContacts:  len(contacts),
	}

	out := make([]entity.Classification, 0, len(numbers))
	for _, n := range numbers {
		cls := classify(n, exact, stripped)
		switch cls.MatchType {
		case constants.MatchExact:
			stats.ExactMatches++
		case constants.MatchPartial:
			stats.PartialMatches++
		case constants.MatchNew:
			stats.NewNumbers++
		default:
			stats.NotCompared++
		}
		out = append(out, cls)
	}

	if compared := stats.ExactMatches + stats.PartialMatches + stats.NewNumbers; compared > 0 {
		stats.MatchRate = float64(stats.ExactMatches+stats.PartialMatches) / float64(compared)
	}
	return out, stats
}

func classify(n *entity.ExtractedNumber, exact, stripped map[string][]*entity.ExistingContact) entity.Classification {
	cls := entity.Classification{NumberID: n.ID, MatchType: constants.MatchUnknown}
	if n.NormalizedNumber == nil {
		return cls
	}
	canonical := *n.NormalizedNumber

	if list := exact[canonical]; len(list) > 0 {
		cls.MatchType = constants.MatchExact
		id := pickContact(list).ID
		cls.ContactID = &id
		return cls
	}

	var code string
	if n.CountryCode != nil {
		code = *n.CountryCode
	}
	var partials []*entity.ExistingContact
	// contact stored without a prefix, extracted side stripped
	if s := stripCallingCode(canonical, code); s != canonical && s != "" {
		partials = append(partials, exact[s]...)
	}
	// extracted side has no prefix, contact side stripped
	partials = append(partials, stripped[canonical]...)

	if len(partials) > 0 {
		cls.MatchType = constants.MatchPartial
		id := pickContact(partials).ID
		cls.ContactID = &id
		return cls
	}

	cls.MatchType = constants.MatchNew
	return cls
}

// pickContact resolves ties toward the most recently imported contact; equal
// timestamps fall back to the smallest id so reruns stay stable.
func pickContact(list []*entity.ExistingContact) *entity.ExistingContact {
	best := list[0]
	for _, c := range list[1:] {
		if c.ImportedAt.After(best.ImportedAt) {
			best = c
			continue
		}
		if c.ImportedAt.Equal(best.ImportedAt) && c.ID.String() < best.ID.String() {
			best = c
		}
	}
	return best
}

// stripCallingCode removes the leading +NN calling code from an E.164-style
// string. countryCode is used when the caller stored it; otherwise the code
// is derived from the number itself. Inputs without a + prefix come back
// unchanged.
func stripCallingCode(canonical, countryCode string) string {
	if !strings.HasPrefix(canonical, "+") {
		return canonical
	}
	if countryCode != "" && strings.HasPrefix(canonical, countryCode) {
		return canonical[len(countryCode):]
	}
	num, err := phonenumbers.Parse(canonical, "")
	if err != nil {
		return strings.TrimPrefix(canonical, "+")
	}
	return strings.TrimPrefix(canonical, fmt.Sprintf("+%d", num.GetCountryCode()))
}
