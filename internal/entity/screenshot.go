package entity

import (
	"time"

	"github.com/google/uuid"
)

// Screenshot represents an uploaded chat screenshot for data transfer between layers.
type Screenshot struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	Source     *string   `json:"source,omitempty"`
	OCRText    *string   `json:"ocr_text,omitempty"`
	Processed  bool      `json:"processed"`
	Notes      *string   `json:"notes,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`

	// NumbersCount is filled by list queries, not stored.
	NumbersCount int `json:"numbers_count"`
}
