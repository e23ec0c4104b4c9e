package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/reconkit/phone-recon/constants"
	"github.com/reconkit/phone-recon/internal/async"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/compare"
	"github.com/reconkit/phone-recon/internal/export"
	"github.com/reconkit/phone-recon/internal/extract"
	"github.com/reconkit/phone-recon/internal/imports"
	"github.com/reconkit/phone-recon/internal/ingest"
	"github.com/reconkit/phone-recon/internal/ocr"
	"github.com/reconkit/phone-recon/internal/phone"
	"github.com/reconkit/phone-recon/internal/pipeline"
	repo "github.com/reconkit/phone-recon/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory of chat screenshots to register and extract")
		csvPath = flag.String("csv", "", "contacts CSV to import before comparing")
		mapping = flag.String("mapping", "", "JSON file mapping roles to CSV headers, e.g. {\"phone\":\"Phone Number\"}")
		source  = flag.String("source", "", "chat app the screenshots came from (whatsapp, sms, call_log)")
		out     = flag.String("out", "", "output directory for export files (defaults to the screenshot directory's parent)")
	)
	flag.Parse()

	if *dir == "" && *csvPath == "" {
		printError("Error: at least one of --dir or --csv is required\n")
		os.Exit(1)
	}
	if *csvPath != "" && *mapping == "" {
		printError("Error: --mapping is required with --csv\n")
		os.Exit(1)
	}
	var srcLabel string
	if *source != "" {
		src, ok := constants.CanonicalSource(*source)
		if !ok {
			printError("Error: --source %q is not a known chat app\n", *source)
			os.Exit(1)
		}
		srcLabel = string(src)
	}
	if *out == "" {
		if *dir != "" {
			*out = filepath.Dir(*dir)
		} else {
			*out = "."
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.DSN = "sqlite::memory:"
		cfg.Database.AutoMigrate = true
	}
	if cfg.Database.DSN == "" {
		printError("Error: DB_URL is required (or pass --inmem)\n")
		os.Exit(1)
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if cfg.Database.AutoMigrate {
		if err := repo.Migrate(ctx, entc, logger); err != nil {
			logger.Error("failed to migrate schema", "error", err)
			os.Exit(1)
		}
	}

	screenshotsRepo := repo.NewScreenshotRepository(entc, logger)
	numbersRepo := repo.NewNumberRepository(entc, logger)
	groupsRepo := repo.NewGroupRepository(entc, logger)
	contactsRepo := repo.NewContactRepository(entc, logger)
	snapshotsRepo := repo.NewSnapshotRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.TesseractBin,
		TesseractLang: cfg.OCR.Language,
		TessdataDir:   cfg.OCR.TessdataDir,
		PageSegModes:  cfg.OCR.PageSegModes,
	}, logger)
	normalizer := phone.NewNormalizer(phone.NewParser())
	stage := pipeline.NewExtractStage(
		screenshotsRepo,
		numbersRepo,
		groupsRepo,
		extract.NewOCRAdapter(extractor),
		normalizer,
		cfg.Extraction.DefaultRegion,
		logger,
	)

	extracted := 0
	extractFailures := 0
	if *dir != "" {
		registrar := ingest.NewRegistrar(screenshotsRepo, logger)
		logger.Info("registering screenshots", "dir", *dir)
		_, stats, err := registrar.RegisterDirectory(ctx, *dir, srcLabel, true)
		if err != nil {
			logger.Error("failed to register directory", "error", err)
			os.Exit(1)
		}
		logger.Info("registration complete",
			"scanned", stats.Scanned,
			"matched", stats.Matched,
			"registered", stats.Registered,
			"skipped", stats.Skipped,
			"failed", stats.Failed)

		// pick up everything pending, including leftovers from earlier runs
		ids, err := screenshotsRepo.ListUnprocessedIDs(ctx)
		if err != nil {
			logger.Error("failed to list unprocessed screenshots", "error", err)
			os.Exit(1)
		}
		jobs := make([]async.Job, len(ids))
		for i, id := range ids {
			jobs[i] = async.Job{ScreenshotID: id, Source: srcLabel}
		}

		workerPool := async.NewPool(stage, logger,
			async.WithWorkers(cfg.Extraction.Workers),
			async.WithJobTimeout(cfg.Extraction.ItemTimeout),
		)
		for _, r := range workerPool.RunBatch(ctx, jobs) {
			if r.Err != nil {
				extractFailures++
				continue
			}
			extracted++
		}
	}

	imported := 0
	if *csvPath != "" {
		roleMapping, err := readMapping(*mapping)
		if err != nil {
			logger.Error("failed to read mapping file", "path", *mapping, "error", err)
			os.Exit(1)
		}
		f, err := os.Open(*csvPath)
		if err != nil {
			logger.Error("failed to open contacts csv", "path", *csvPath, "error", err)
			os.Exit(1)
		}
		importSvc := imports.NewService(contactsRepo, normalizer, logger)
		// contacts carry their own import label; --source only describes screenshots
		stats, err := importSvc.Import(ctx, f, roleMapping, "")
		closeErr := f.Close()
		if err != nil {
			logger.Error("failed to import contacts", "error", err)
			os.Exit(1)
		}
		if closeErr != nil {
			logger.Error("failed to close contacts csv", "error", closeErr)
		}
		imported = stats.Imported
	}

	// compare whatever the store holds now and snapshot the outcome
	numbers, err := numbersRepo.ListAll(ctx, "", nil)
	if err != nil {
		logger.Error("failed to load numbers", "error", err)
		os.Exit(1)
	}
	contacts, err := contactsRepo.ListAll(ctx)
	if err != nil {
		logger.Error("failed to load contacts", "error", err)
		os.Exit(1)
	}
	_, stats := compare.Compare(numbers, contacts)
	saved, err := snapshotsRepo.Save(ctx, &stats)
	if err != nil {
		logger.Error("failed to save comparison snapshot", "error", err)
		os.Exit(1)
	}

	exportSvc := export.NewService(numbersRepo, contactsRepo, logger)
	written, err := writeExports(ctx, exportSvc, *out)
	if err != nil {
		logger.Error("failed to write exports", "error", err)
		os.Exit(1)
	}

	logger.Info("batch run complete",
		"extracted", extracted,
		"extract_failures", extractFailures,
		"contacts_imported", imported,
		"exact_matches", saved.ExactMatches,
		"partial_matches", saved.PartialMatches,
		"new_numbers", saved.NewNumbers,
		"output_dir", *out)

	fmt.Printf("Batch run complete!\n")
	fmt.Printf("- Screenshots extracted: %d (%d failed)\n", extracted, extractFailures)
	fmt.Printf("- Contacts imported: %d\n", imported)
	fmt.Printf("- Matches: %d exact, %d partial, %d new\n", saved.ExactMatches, saved.PartialMatches, saved.NewNumbers)
	fmt.Printf("- Match rate: %.1f%%\n", saved.MatchRate*100)
	for _, name := range written {
		fmt.Printf("- Wrote %s\n", name)
	}
}

func readMapping(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func writeExports(ctx context.Context, svc *export.Service, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	write := func(data []byte, filename string, err error) error {
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, filename)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	data, name, err := svc.NumbersCSV(ctx, export.NumbersFilter{})
	if err := write(data, name, err); err != nil {
		return written, err
	}
	data, name, err = svc.NumbersXLSX(ctx, export.NumbersFilter{})
	if err := write(data, name, err); err != nil {
		return written, err
	}
	data, name, err = svc.ComparisonCSV(ctx, "")
	if err := write(data, name, err); err != nil {
		return written, err
	}
	data, name, err = svc.NewNumbersCSV(ctx)
	if err := write(data, name, err); err != nil {
		return written, err
	}
	return written, nil
}
