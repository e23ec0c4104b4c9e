package extract

import (
	"context"

	"github.com/reconkit/phone-recon/internal/ocr"
)

// OCRAdapter exposes the tesseract extractor behind the TextExtractor
// contract so the pipeline never depends on the ocr package directly.
type OCRAdapter struct {
	e *ocr.Extractor
}

func NewOCRAdapter(e *ocr.Extractor) *OCRAdapter {
	return &OCRAdapter{e: e}
}

func (a *OCRAdapter) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	r, err := a.e.Extract(ctx, path)
	return TextExtractionResult{
		Text:     r.Text,
		Method:   r.Method,
		Language: r.Language,
		Passes:   r.Passes,
		Duration: r.Duration,
		Warnings: r.Warnings,
	}, err
}
