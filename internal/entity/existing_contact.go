package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExistingContact represents a reference contact imported from a CSV export.
type ExistingContact struct {
	ID               uuid.UUID `json:"id"`
	NormalizedNumber string    `json:"normalized_number"`
	RawNumber        string    `json:"raw_number"`
	Name             *string   `json:"name,omitempty"`
	Email            *string   `json:"email,omitempty"`
	Company          *string   `json:"company,omitempty"`
	Source           string    `json:"source"`
	ExternalID       *string   `json:"external_id,omitempty"`
	ImportedAt       time.Time `json:"imported_at"`
}
