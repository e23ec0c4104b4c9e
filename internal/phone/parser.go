package phone

import "errors"

// ParsedNumber is the structured result of parsing one candidate.
type ParsedNumber struct {
	Canonical   string // E.164 form, e.g. +12125550123
	CountryCode string // calling code with +, e.g. +1
	CountryName string // display name, e.g. United States
	NumberType  string // MOBILE, FIXED_LINE, ...
	Carrier     string // best effort, often empty
	IsValid     bool
}

// ErrParseFailed reports input no region could make sense of.
var ErrParseFailed = errors.New("phone: parse failed")

// Parser abstracts the phone number library so the policy on top of it stays
// testable.
type Parser interface {
	// Parse interprets raw under region (ISO 3166-1 alpha-2, e.g. "US").
	// An empty region is allowed only for inputs carrying a + prefix.
	Parse(raw, region string) (ParsedNumber, error)
}
