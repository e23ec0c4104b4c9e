package constants

import (
	"strings"
)

// Source identifies the chat application a screenshot was captured from.
// The scanner picks its pattern set off this value.
type Source string

const (
	SourceWhatsApp Source = "whatsapp"
	SourceSMS      Source = "sms"
	SourceCallLog  Source = "call_log"
	SourceUnknown  Source = "unknown"
)

var allSources = []Source{
	SourceWhatsApp,
	SourceSMS,
	SourceCallLog,
	SourceUnknown,
}

// Sources returns the stable source values as strings, for schema validation.
func Sources() []string {
	result := make([]string, len(allSources))
	for i, s := range allSources {
		result[i] = string(s)
	}
	return result
}

// CanonicalSource maps free-form input to a known source value.
// Unrecognized input reports false and falls back to SourceUnknown.
func CanonicalSource(input string) (Source, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return SourceUnknown, false
	}

	// synonyms map
	synonyms := map[string]Source{
		"wa":        SourceWhatsApp,
		"whats_app": SourceWhatsApp,
		"whatsapp":  SourceWhatsApp,
		"imessage":  SourceSMS,
		"text":      SourceSMS,
		"messages":  SourceSMS,
		"calls":     SourceCallLog,
		"call log":  SourceCallLog,
		"dialer":    SourceCallLog,
	}

	if s, ok := synonyms[normalized]; ok {
		return s, true
	}

	for _, s := range allSources {
		if normalized == string(s) {
			return s, true
		}
	}

	return SourceUnknown, false
}
