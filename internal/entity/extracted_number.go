package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractedNumber represents one phone number candidate pulled out of a screenshot.
// Rejected candidates keep RawNumber only; NormalizedNumber stays nil for them.
type ExtractedNumber struct {
	ID               uuid.UUID `json:"id"`
	ScreenshotID     uuid.UUID `json:"screenshot_id"`
	RawNumber        string    `json:"raw_number"`
	NormalizedNumber *string   `json:"normalized_number,omitempty"`
	CountryCode      *string   `json:"country_code,omitempty"`
	CountryName      *string   `json:"country_name,omitempty"`
	Carrier          *string   `json:"carrier,omitempty"`
	NumberType       *string   `json:"number_type,omitempty"`
	IsValid          bool      `json:"is_valid"`
	ExtractedAt      time.Time `json:"extracted_at"`

	// Groups is filled when the caller asked for memberships.
	Groups []*Group `json:"groups,omitempty"`
}
