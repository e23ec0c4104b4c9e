package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionSummary is the per-screenshot outcome of one extraction run.
type ExtractionSummary struct {
	ScreenshotID uuid.UUID     `json:"screenshot_id"`
	Candidates   int           `json:"candidates"`
	Stored       int           `json:"stored"`
	Deduplicated int           `json:"deduplicated"`
	Rejected     int           `json:"rejected"`
	OCRDuration  time.Duration `json:"ocr_duration"`
}
