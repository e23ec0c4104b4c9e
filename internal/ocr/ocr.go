// Package ocr turns screenshot images into text by shelling out to
// tesseract. Chat screenshots mix bubbles, headers and timestamps, so a
// single page segmentation mode misses numbers; the extractor runs every
// configured mode and concatenates the distinct outputs.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/reconkit/phone-recon/constants"
)

type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string

	// PageSegModes holds the tesseract --psm values to run, in order.
	// Default is 6 (uniform block) then 11 (sparse text).
	PageSegModes []int

	OEM int // 1 = LSTM; leave 0 to use default
}

type Result struct {
	Text     string
	Method   string // "image-ocr"
	Language string
	Passes   int // how many segmentation passes contributed text
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if len(cfg.PageSegModes) == 0 {
		cfg.PageSegModes = []int{6, 11}
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// Extract runs tesseract over the screenshot once per configured
// segmentation mode. A pass that fails becomes a warning as long as another
// pass produced text; when every pass fails the last error is returned.
// Empty text with no error means a readable but textless image.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	if !constants.IsAllowedExt(ext) {
		e.logger.Error("unsupported screenshot extension", "path", path, "extension", ext)
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}
	e.logger.Debug("starting ocr extraction", "path", path, "psm_modes", e.cfg.PageSegModes)

	var (
		parts   []string
		warns   []string
		lastErr error
	)
	seen := make(map[string]bool)
	for _, psm := range e.cfg.PageSegModes {
		txt, warn, err := e.tesseractOCR(ctx, path, psm)
		warns = append(warns, warn...)
		if err != nil {
			warns = append(warns, fmt.Sprintf("psm %d: %v", psm, err))
			lastErr = err
			continue
		}
		txt = Normalize(txt)
		if txt == "" || seen[txt] {
			continue
		}
		seen[txt] = true
		parts = append(parts, txt)
	}
	if len(parts) == 0 && lastErr != nil {
		return Result{Warnings: warns, Duration: time.Since(start)}, lastErr
	}

	return Result{
		Text:     strings.Join(parts, "\n"),
		Method:   "image-ocr",
		Language: e.cfg.TesseractLang,
		Passes:   len(parts),
		Duration: time.Since(start),
		Warnings: warns,
	}, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string, psm int) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if psm > 0 {
		args = append(args, "--psm", strconv.Itoa(psm))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang> --psm <n>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}
