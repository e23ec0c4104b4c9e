package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconkit/phone-recon/internal/entity"
)

type scriptedExtractor struct {
	mu      sync.Mutex
	delay   time.Duration
	errs    map[uuid.UUID]error
	calls   []uuid.UUID
	running int
	peak    int
}

func (s *scriptedExtractor) Run(ctx context.Context, id uuid.UUID, _ string) (*entity.ExtractionSummary, error) {
	s.mu.Lock()
	s.calls = append(s.calls, id)
	s.running++
	if s.running > s.peak {
		s.peak = s.running
	}
	delay := s.delay
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running--
		s.mu.Unlock()
	}()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := s.errs[id]; err != nil {
		return nil, err
	}
	return &entity.ExtractionSummary{ScreenshotID: id, Stored: 1}, nil
}

func makeJobs(n int) []Job {
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = Job{ScreenshotID: uuid.New()}
	}
	return jobs
}

func TestRunBatchKeepsJobOrder(t *testing.T) {
	ext := &scriptedExtractor{delay: 5 * time.Millisecond}
	pool := NewPool(ext, nil, WithWorkers(4))
	jobs := makeJobs(8)

	results := pool.RunBatch(context.Background(), jobs)

	require.Len(t, results, len(jobs))
	for i, res := range results {
		assert.Equal(t, jobs[i].ScreenshotID, res.Job.ScreenshotID)
		require.NoError(t, res.Err)
		require.NotNil(t, res.Summary)
		assert.Equal(t, jobs[i].ScreenshotID, res.Summary.ScreenshotID)
	}
}

func TestRunBatchBoundsConcurrency(t *testing.T) {
	ext := &scriptedExtractor{delay: 20 * time.Millisecond}
	pool := NewPool(ext, nil, WithWorkers(2))

	pool.RunBatch(context.Background(), makeJobs(6))

	assert.LessOrEqual(t, ext.peak, 2)
	assert.Len(t, ext.calls, 6)
}

func TestRunBatchCollectsPerJobErrors(t *testing.T) {
	jobs := makeJobs(3)
	boom := errors.New("tesseract exploded")
	ext := &scriptedExtractor{errs: map[uuid.UUID]error{jobs[1].ScreenshotID: boom}}
	pool := NewPool(ext, nil)

	results := pool.RunBatch(context.Background(), jobs)

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, boom)
	assert.Nil(t, results[1].Summary)
	assert.NoError(t, results[2].Err)
}

func TestRunBatchAppliesJobTimeout(t *testing.T) {
	ext := &scriptedExtractor{delay: 200 * time.Millisecond}
	pool := NewPool(ext, nil, WithJobTimeout(10*time.Millisecond))
	jobs := makeJobs(1)

	results := pool.RunBatch(context.Background(), jobs)

	assert.ErrorIs(t, results[0].Err, context.DeadlineExceeded)
}

func TestRunBatchCanceledBeforeStart(t *testing.T) {
	ext := &scriptedExtractor{}
	pool := NewPool(ext, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := pool.RunBatch(ctx, makeJobs(3))

	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
	}
	assert.Empty(t, ext.calls)
}

func TestRunBatchEmpty(t *testing.T) {
	pool := NewPool(&scriptedExtractor{}, nil)
	assert.Empty(t, pool.RunBatch(context.Background(), nil))
}

func TestOptionsIgnoreNonPositiveValues(t *testing.T) {
	pool := NewPool(&scriptedExtractor{}, nil, WithWorkers(0), WithJobTimeout(0))
	assert.Equal(t, 4, pool.workers)
	assert.Equal(t, time.Minute, pool.timeout)
}
