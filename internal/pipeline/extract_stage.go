package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/reconkit/phone-recon/constants"
	"github.com/reconkit/phone-recon/internal/entity"
	"github.com/reconkit/phone-recon/internal/extract"
	"github.com/reconkit/phone-recon/internal/phone"
	"github.com/reconkit/phone-recon/internal/scan"
)

// ExtractStage runs one screenshot through OCR, candidate scanning,
// normalization and persistence. Re-running it on the same screenshot
// replaces that screenshot's numbers instead of piling up rows.
type ExtractStage struct {
	Screenshots   ScreenshotStore
	Numbers       NumberStore
	Groups        GroupStore
	TextExtractor extract.TextExtractor
	Normalizer    *phone.Normalizer
	DefaultRegion string
	Logger        *slog.Logger
}

func NewExtractStage(
	screenshots ScreenshotStore,
	numbers NumberStore,
	groups GroupStore,
	tx extract.TextExtractor,
	normalizer *phone.Normalizer,
	defaultRegion string,
	logger *slog.Logger,
) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{
		Screenshots:   screenshots,
		Numbers:       numbers,
		Groups:        groups,
		TextExtractor: tx,
		Normalizer:    normalizer,
		DefaultRegion: defaultRegion,
		Logger:        logger,
	}
}

// Run extracts the numbers of one screenshot. sourceOverride, when set,
// beats the source stored on the screenshot for pattern selection. On
// failure the screenshot stays unprocessed so a later run retries it.
func (p *ExtractStage) Run(ctx context.Context, screenshotID uuid.UUID, sourceOverride string) (*entity.ExtractionSummary, error) {
	shot, err := p.Screenshots.GetByID(ctx, screenshotID)
	if err != nil {
		return nil, fmt.Errorf("get screenshot: %w", err)
	}

	src := p.resolveSource(shot, sourceOverride)

	res, err := p.TextExtractor.Extract(ctx, shot.FilePath)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	for _, w := range res.Warnings {
		p.Logger.Warn("pipeline.ocr.warning", "screenshot_id", screenshotID, "warning", w)
	}
	p.Logger.Info("pipeline.ocr.ok",
		"screenshot_id", screenshotID,
		"passes", res.Passes,
		"bytes", len(res.Text),
		"ocr_ms", res.Duration.Milliseconds(),
	)

	candidates := scan.NewScanner(src).Scan(res.Text)

	// a re-extraction starts from a clean slate
	if _, err := p.Numbers.DeleteByScreenshot(ctx, screenshotID); err != nil {
		return nil, fmt.Errorf("clear previous numbers: %w", err)
	}

	summary := &entity.ExtractionSummary{
		ScreenshotID: screenshotID,
		Candidates:   len(candidates),
		OCRDuration:  res.Duration,
	}

	// Identical raw strings repeat when several segmentation passes read
	// the same bubble; one evidence row per raw string is enough.
	seenRaw := make(map[string]bool, len(candidates))
	for _, cand := range candidates {
		if seenRaw[cand.Raw] {
			summary.Deduplicated++
			continue
		}
		seenRaw[cand.Raw] = true

		norm := p.Normalizer.Normalize(cand.Raw, p.DefaultRegion)
		stored, created, err := p.Numbers.InsertOrGet(ctx, &entity.ExtractedNumber{
			ScreenshotID:     screenshotID,
			RawNumber:        norm.Raw,
			NormalizedNumber: norm.NormalizedNumber,
			CountryCode:      norm.CountryCode,
			CountryName:      norm.CountryName,
			Carrier:          norm.Carrier,
			NumberType:       norm.NumberType,
			IsValid:          norm.IsValid,
		})
		if err != nil {
			return nil, fmt.Errorf("store number %q: %w", norm.Raw, err)
		}
		if !created {
			summary.Deduplicated++
		} else {
			summary.Stored++
			if !stored.IsValid {
				summary.Rejected++
			}
		}

		if stored.IsValid && stored.CountryCode != nil {
			if err := p.assignCountryGroup(ctx, stored); err != nil {
				return nil, err
			}
		}
	}

	if err := p.Screenshots.SetExtractionResult(ctx, screenshotID, res.Text); err != nil {
		return nil, fmt.Errorf("mark processed: %w", err)
	}

	p.Logger.Info("pipeline.extract.ok",
		"screenshot_id", screenshotID,
		"source", string(src),
		"candidates", summary.Candidates,
		"stored", summary.Stored,
		"deduplicated", summary.Deduplicated,
		"rejected", summary.Rejected,
	)
	return summary, nil
}

func (p *ExtractStage) resolveSource(shot *entity.Screenshot, override string) constants.Source {
	if override != "" {
		if s, ok := constants.CanonicalSource(override); ok {
			return s
		}
		p.Logger.Warn("unknown source override, falling back", "override", override)
	}
	if shot.Source != nil {
		if s, ok := constants.CanonicalSource(*shot.Source); ok {
			return s
		}
	}
	return constants.SourceUnknown
}

func (p *ExtractStage) assignCountryGroup(ctx context.Context, n *entity.ExtractedNumber) error {
	countryName := ""
	if n.CountryName != nil {
		countryName = *n.CountryName
	}
	g, err := p.Groups.EnsureCountryGroup(ctx, *n.CountryCode, countryName)
	if err != nil {
		return fmt.Errorf("ensure country group %s: %w", *n.CountryCode, err)
	}
	if _, err := p.Groups.AddNumbers(ctx, g.ID, []uuid.UUID{n.ID}); err != nil {
		return fmt.Errorf("assign country group %s: %w", *n.CountryCode, err)
	}
	return nil
}
