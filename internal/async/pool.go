// Package async fans screenshot extractions out to a bounded worker pool.
// Unlike a fire-and-forget queue, RunBatch is synchronous: callers hand in
// the whole batch and get per-job results back in the same order, which is
// what the batch RPC and the offline CLI both want.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/reconkit/phone-recon/internal/entity"
)

// Extractor is the slice of the pipeline the pool drives.
type Extractor interface {
	Run(ctx context.Context, screenshotID uuid.UUID, sourceOverride string) (*entity.ExtractionSummary, error)
}

// Job identifies one screenshot to extract.
type Job struct {
	ScreenshotID uuid.UUID
	Source       string // optional override for pattern selection
}

// Result pairs a job with its outcome. Exactly one of Summary and Err is
// meaningful.
type Result struct {
	Job     Job
	Summary *entity.ExtractionSummary
	Err     error
}

type Pool struct {
	extractor Extractor
	logger    *slog.Logger
	workers   int
	timeout   time.Duration
}

type Option func(*Pool)

func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewPool(extractor Extractor, logger *slog.Logger, opts ...Option) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		extractor: extractor,
		logger:    logger,
		workers:   4,
		timeout:   time.Minute,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// RunBatch processes all jobs and blocks until the last one finishes.
// Results land at the same index as their job. Each job runs under its own
// timeout; canceling ctx stops the dispatch, and jobs never picked up
// report the context error.
func (p *Pool) RunBatch(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}
	if err := ctx.Err(); err != nil {
		for i := range jobs {
			results[i] = Result{Job: jobs[i], Err: err}
		}
		return results
	}

	workers := p.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	idxCh := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range idxCh {
				job := jobs[i]
				jctx, cancel := context.WithTimeout(ctx, p.timeout)
				summary, err := p.extractor.Run(jctx, job.ScreenshotID, job.Source)
				cancel()

				// workers write disjoint indexes, so no lock is needed
				results[i] = Result{Job: job, Summary: summary, Err: err}
				if err != nil {
					p.logger.Error("extraction failed", "worker_id", workerID, "screenshot_id", job.ScreenshotID, "error", err)
				} else {
					p.logger.Info("extraction done", "worker_id", workerID, "screenshot_id", job.ScreenshotID, "stored", summary.Stored)
				}
			}
		}(w + 1)
	}

	next := 0
dispatch:
	for next < len(jobs) {
		select {
		case idxCh <- next:
			next++
		case <-ctx.Done():
			break dispatch
		}
	}
	close(idxCh)
	wg.Wait()

	// jobs never handed to a worker report the cancellation
	for i := next; i < len(jobs); i++ {
		results[i] = Result{Job: jobs[i], Err: ctx.Err()}
	}
	return results
}
