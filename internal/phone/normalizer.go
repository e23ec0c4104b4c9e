package phone

import "strings"

// Result is the normalization outcome for one candidate. Only valid numbers
// get a canonical form; rejected candidates keep the raw string and nothing
// else, so they can still be stored as evidence.
type Result struct {
	Raw              string
	NormalizedNumber *string
	CountryCode      *string
	CountryName      *string
	Carrier          *string
	NumberType       *string
	IsValid          bool
}

// Rejected reports whether normalization produced no canonical form.
func (r Result) Rejected() bool {
	return !r.IsValid
}

// Normalizer turns raw candidates into canonical numbers. The policy is
// fixed: try the default region first; a candidate carrying its own + prefix
// gets a second chance under the region encoded in that prefix.
type Normalizer struct {
	parser Parser
}

func NewNormalizer(parser Parser) *Normalizer {
	return &Normalizer{parser: parser}
}

// Normalize parses raw under defaultRegion. The same raw and region always
// produce the same Result.
func (n *Normalizer) Normalize(raw, defaultRegion string) Result {
	out := Result{Raw: strings.TrimSpace(raw)}
	if out.Raw == "" {
		return out
	}

	parsed, err := n.parser.Parse(out.Raw, defaultRegion)
	if (err != nil || !parsed.IsValid) && strings.HasPrefix(out.Raw, "+") {
		// the + prefix names its own region, which beats the hint
		if retry, retryErr := n.parser.Parse(out.Raw, ""); retryErr == nil && retry.IsValid {
			parsed, err = retry, nil
		}
	}
	if err != nil || !parsed.IsValid {
		return out
	}

	out.IsValid = true
	out.NormalizedNumber = &parsed.Canonical
	out.CountryCode = &parsed.CountryCode
	out.CountryName = optional(parsed.CountryName)
	out.Carrier = optional(parsed.Carrier)
	out.NumberType = optional(parsed.NumberType)
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
