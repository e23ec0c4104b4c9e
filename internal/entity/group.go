package entity

import (
	"time"

	"github.com/google/uuid"
)

// Group represents a collection of extracted numbers. System groups are the
// per-country groups the pipeline maintains; user groups are free-form.
type Group struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Color       string    `json:"color"`
	IsSystem    bool      `json:"is_system"`
	CountryCode *string   `json:"country_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// NumbersCount is filled by list queries, not stored.
	NumbersCount int `json:"numbers_count"`
}
