package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/reconkit/phone-recon/constants"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/ocr"
	"github.com/reconkit/phone-recon/internal/phone"
	"github.com/reconkit/phone-recon/internal/scan"
)

// Debug tool: run the OCR and scanning stages over one screenshot without
// touching a database, to see what tesseract and the patterns make of it.
func main() {
	var (
		source = flag.String("source", "", "chat app hint for pattern selection (e.g. whatsapp)")
		region = flag.String("region", "", "ISO region for numbers without a + prefix (overrides DEFAULT_REGION)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "runocr [--source app] [--region XX] <image-path>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	var src constants.Source
	if *source != "" {
		canon, ok := constants.CanonicalSource(*source)
		if !ok {
			logger.Error("unknown source", "source", *source)
			os.Exit(2)
		}
		src = canon
	}

	cfg := common.LoadConfig()
	if *region == "" {
		*region = cfg.Extraction.DefaultRegion
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.TesseractBin,
		TesseractLang: cfg.OCR.Language,
		TessdataDir:   cfg.OCR.TessdataDir,
		PageSegModes:  cfg.OCR.PageSegModes,
	}, logger)

	start := time.Now()
	res, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("ocr failed", "path", path, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}
	logger.Info("ocr ok",
		"path", path,
		"passes", res.Passes,
		"bytes", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	for _, w := range res.Warnings {
		logger.Warn("ocr warning", "warning", w)
	}

	candidates := scan.NewScanner(src).Scan(res.Text)
	logger.Info("scan ok", "candidates", len(candidates))

	normalizer := phone.NewNormalizer(phone.NewParser())
	for _, c := range candidates {
		n := normalizer.Normalize(c.Raw, *region)
		if n.Rejected() {
			logger.Info("candidate rejected", "raw", c.Raw, "line", c.Line)
			continue
		}
		logger.Info("candidate ok",
			"raw", c.Raw,
			"line", c.Line,
			"normalized", *n.NormalizedNumber,
			"country_code", *n.CountryCode,
		)
	}
}
