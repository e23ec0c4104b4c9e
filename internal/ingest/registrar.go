// Package ingest registers screenshot files on disk so the extraction
// pipeline can pick them up. Registration is idempotent per path: feeding
// the same directory twice does not create duplicate screenshots.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/reconkit/phone-recon/constants"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/entity"
)

// Store is the screenshot persistence the registrar needs.
type Store interface {
	GetByPath(ctx context.Context, filePath string) (*entity.Screenshot, error)
	Create(ctx context.Context, filePath, filename string, source *string) (*entity.Screenshot, error)
}

// FileResult reports the outcome for one walked file.
type FileResult struct {
	Path       string
	Screenshot *entity.Screenshot
	Skipped    bool // already registered
	Err        string
}

// DirStats aggregates one directory walk.
type DirStats struct {
	Scanned    uint32
	Matched    uint32
	Registered uint32
	Skipped    uint32
	Failed     uint32
}

type Registrar struct {
	store  Store
	logger *slog.Logger
}

func NewRegistrar(store Store, logger *slog.Logger) *Registrar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registrar{store: store, logger: logger}
}

// RegisterPath registers a single screenshot file. The bool reports whether
// the path was already registered, in which case the existing screenshot
// comes back untouched.
func (r *Registrar) RegisterPath(ctx context.Context, path, source string) (*entity.Screenshot, bool, error) {
	path = filepath.Clean(strings.TrimSpace(path))
	if path == "" || path == "." {
		return nil, false, fmt.Errorf("path is required: %w", common.ErrInvalidInput)
	}

	ext := constants.NormalizeExt(filepath.Ext(path))
	if !constants.IsAllowedExt(ext) {
		return nil, false, fmt.Errorf("unsupported screenshot extension %q: %w", ext, common.ErrInvalidInput)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, false, fmt.Errorf("%s is a directory: %w", path, common.ErrInvalidInput)
	}

	if existing, err := r.store.GetByPath(ctx, path); err == nil {
		return existing, true, nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, false, err
	}

	var src *string
	if source != "" {
		src = &source
	}
	shot, err := r.store.Create(ctx, path, filepath.Base(path), src)
	if err != nil {
		return nil, false, err
	}
	r.logger.Info("registered screenshot", "path", path, "screenshot_id", shot.ID)
	return shot, false, nil
}

// RegisterDirectory walks root and registers every image file found,
// skipping hidden entries when asked. Per-file failures land in the
// results and the walk continues.
func (r *Registrar) RegisterDirectory(ctx context.Context, root, source string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, fmt.Errorf("root_path is required: %w", common.ErrInvalidInput)
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // keep walking
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !constants.IsAllowedExt(constants.NormalizeExt(filepath.Ext(path))) {
			return nil
		}
		stats.Matched++

		shot, skipped, err := r.RegisterPath(ctx, path, source)
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		results = append(results, FileResult{Path: path, Screenshot: shot, Skipped: skipped})
		if skipped {
			stats.Skipped++
		} else {
			stats.Registered++
		}
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk %s: %w", root, err)
	}

	r.logger.Info("directory registered",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"registered", stats.Registered,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)
	return results, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
