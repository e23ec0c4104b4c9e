package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/reconkit/phone-recon/constants"
)

// Classification is the comparator verdict for a single extracted number.
// Verdicts are computed on demand and never stored.
type Classification struct {
	NumberID  uuid.UUID           `json:"number_id"`
	MatchType constants.MatchType `json:"match_type"`
	// ContactID points at the matched contact for exact and partial verdicts.
	ContactID *uuid.UUID `json:"contact_id,omitempty"`
}

// ComparisonStats is the aggregate outcome of one comparison run. A snapshot
// of it is persisted each run; ComparedAt is stamped at persist time.
type ComparisonStats struct {
	TotalExtracted int       `json:"total_extracted"`
	TotalContacts  int       `json:"total_contacts"`
	ExactMatches   int       `json:"exact_matches"`
	PartialMatches int       `json:"partial_matches"`
	NewNumbers     int       `json:"new_numbers"`
	NotCompared    int       `json:"not_compared"`
	MatchRate      float64   `json:"match_rate"`
	ComparedAt     time.Time `json:"compared_at"`
}
