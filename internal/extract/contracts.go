package extract

import (
	"context"
	"time"
)

// TextExtractor is stage 1 of the pipeline: screenshot file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Method   string // "image-ocr"
	Language string
	Passes   int
	Duration time.Duration
	Warnings []string
}
