package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/entity"
	"github.com/reconkit/phone-recon/internal/extract"
	"github.com/reconkit/phone-recon/internal/phone"
)

type fakeScreenshots struct {
	mu    sync.Mutex
	shots map[uuid.UUID]*entity.Screenshot
	texts map[uuid.UUID]string
}

func newFakeScreenshots(shots ...*entity.Screenshot) *fakeScreenshots {
	f := &fakeScreenshots{
		shots: make(map[uuid.UUID]*entity.Screenshot),
		texts: make(map[uuid.UUID]string),
	}
	for _, s := range shots {
		f.shots[s.ID] = s
	}
	return f
}

func (f *fakeScreenshots) GetByID(_ context.Context, id uuid.UUID) (*entity.Screenshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.shots[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeScreenshots) SetExtractionResult(_ context.Context, id uuid.UUID, ocrText string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.shots[id]
	if !ok {
		return common.ErrNotFound
	}
	s.Processed = true
	f.texts[id] = ocrText
	return nil
}

type fakeNumbers struct {
	mu   sync.Mutex
	rows []*entity.ExtractedNumber
}

func (f *fakeNumbers) DeleteByScreenshot(_ context.Context, screenshotID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.rows[:0]
	deleted := 0
	for _, row := range f.rows {
		if row.ScreenshotID == screenshotID {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	f.rows = kept
	return deleted, nil
}

func (f *fakeNumbers) InsertOrGet(_ context.Context, n *entity.ExtractedNumber) (*entity.ExtractedNumber, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n.NormalizedNumber != nil {
		for _, row := range f.rows {
			if row.ScreenshotID == n.ScreenshotID &&
				row.NormalizedNumber != nil &&
				*row.NormalizedNumber == *n.NormalizedNumber {
				cp := *row
				return &cp, false, nil
			}
		}
	}
	cp := *n
	cp.ID = uuid.New()
	cp.ExtractedAt = time.Now()
	f.rows = append(f.rows, &cp)
	out := cp
	return &out, true, nil
}

func (f *fakeNumbers) forScreenshot(id uuid.UUID) []*entity.ExtractedNumber {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ExtractedNumber
	for _, row := range f.rows {
		if row.ScreenshotID == id {
			out = append(out, row)
		}
	}
	return out
}

type fakeGroups struct {
	mu          sync.Mutex
	byCountry   map[string]*entity.Group
	members     map[uuid.UUID]map[uuid.UUID]bool
	ensureCalls int
}

func newFakeGroups() *fakeGroups {
	return &fakeGroups{
		byCountry: make(map[string]*entity.Group),
		members:   make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (f *fakeGroups) EnsureCountryGroup(_ context.Context, countryCode, countryName string) (*entity.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureCalls++
	if g, ok := f.byCountry[countryCode]; ok {
		cp := *g
		return &cp, nil
	}
	code := countryCode
	g := &entity.Group{
		ID:          uuid.New(),
		Name:        fmt.Sprintf("%s (%s)", countryName, countryCode),
		IsSystem:    true,
		CountryCode: &code,
		CreatedAt:   time.Now(),
	}
	f.byCountry[countryCode] = g
	f.members[g.ID] = make(map[uuid.UUID]bool)
	cp := *g
	return &cp, nil
}

func (f *fakeGroups) AddNumbers(_ context.Context, groupID uuid.UUID, numberIDs []uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.members[groupID]
	if !ok {
		return 0, common.ErrNotFound
	}
	added := 0
	for _, id := range numberIDs {
		if !set[id] {
			set[id] = true
			added++
		}
	}
	return added, nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	if f.err != nil {
		return extract.TextExtractionResult{}, f.err
	}
	return extract.TextExtractionResult{
		Text:     f.text,
		Method:   "image-ocr",
		Language: "eng",
		Passes:   1,
		Duration: 42 * time.Millisecond,
	}, nil
}

func strPtr(s string) *string { return &s }

func newShot(source *string) *entity.Screenshot {
	return &entity.Screenshot{
		ID:       uuid.New(),
		Filename: "chat.png",
		FilePath: "/uploads/chat.png",
		Source:   source,
	}
}

func newStage(shots *fakeScreenshots, numbers *fakeNumbers, groups *fakeGroups, tx extract.TextExtractor) *ExtractStage {
	return NewExtractStage(shots, numbers, groups, tx, phone.NewNormalizer(phone.NewParser()), "US", nil)
}

func TestRunStoresDeduplicatesAndRejects(t *testing.T) {
	shot := newShot(strPtr("whatsapp"))
	shots := newFakeScreenshots(shot)
	numbers := &fakeNumbers{}
	groups := newFakeGroups()
	text := "Alice: +1 (212) 555-0123\n" +
		"Contact: 212 555 0123\n" +
		"Bob: +1 555 123 4567\n" +
		"seen 2:45 PM\n" +
		"Alice: +1 (212) 555-0123"
	stage := newStage(shots, numbers, groups, &fakeExtractor{text: text})

	summary, err := stage.Run(context.Background(), shot.ID, "")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Candidates)
	assert.Equal(t, 2, summary.Stored, "one valid canonical plus one rejected evidence row")
	assert.Equal(t, 2, summary.Deduplicated, "same canonical via second raw form, plus a repeated raw string")
	assert.Equal(t, 1, summary.Rejected)

	rows := numbers.forScreenshot(shot.ID)
	require.Len(t, rows, 2)

	var valid, rejected *entity.ExtractedNumber
	for _, row := range rows {
		if row.IsValid {
			valid = row
		} else {
			rejected = row
		}
	}
	require.NotNil(t, valid)
	require.NotNil(t, rejected)
	require.NotNil(t, valid.NormalizedNumber)
	assert.Equal(t, "+12125550123", *valid.NormalizedNumber)
	assert.Equal(t, "+1", *valid.CountryCode)
	assert.Nil(t, rejected.NormalizedNumber, "rejected rows keep raw evidence only")
	assert.Equal(t, "+1 555 123 4567", rejected.RawNumber)
}

func TestRunMarksScreenshotProcessed(t *testing.T) {
	shot := newShot(strPtr("whatsapp"))
	shots := newFakeScreenshots(shot)
	stage := newStage(shots, &fakeNumbers{}, newFakeGroups(), &fakeExtractor{text: "Call +1 212 555 0123"})

	_, err := stage.Run(context.Background(), shot.ID, "")
	require.NoError(t, err)

	assert.True(t, shots.shots[shot.ID].Processed)
	assert.Equal(t, "Call +1 212 555 0123", shots.texts[shot.ID])
}

func TestRunEmptyTextStillMarksProcessed(t *testing.T) {
	shot := newShot(nil)
	shots := newFakeScreenshots(shot)
	numbers := &fakeNumbers{}
	stage := newStage(shots, numbers, newFakeGroups(), &fakeExtractor{text: ""})

	summary, err := stage.Run(context.Background(), shot.ID, "")
	require.NoError(t, err)

	assert.Zero(t, summary.Candidates)
	assert.Zero(t, summary.Stored)
	assert.True(t, shots.shots[shot.ID].Processed)
	assert.Empty(t, numbers.forScreenshot(shot.ID))
}

func TestRunReplacesRowsOnReExtraction(t *testing.T) {
	shot := newShot(strPtr("whatsapp"))
	shots := newFakeScreenshots(shot)
	numbers := &fakeNumbers{}
	groups := newFakeGroups()

	first := newStage(shots, numbers, groups, &fakeExtractor{text: "Alice: +1 212 555 0123\nBob: +44 20 7946 0958"})
	_, err := first.Run(context.Background(), shot.ID, "")
	require.NoError(t, err)
	require.Len(t, numbers.forScreenshot(shot.ID), 2)

	second := newStage(shots, numbers, groups, &fakeExtractor{text: "Alice: +1 212 555 0123"})
	_, err = second.Run(context.Background(), shot.ID, "")
	require.NoError(t, err)

	rows := numbers.forScreenshot(shot.ID)
	require.Len(t, rows, 1, "re-extraction replaces the screenshot's rows")
	assert.Equal(t, "+12125550123", *rows[0].NormalizedNumber)
}

func TestRunExtractorFailureKeepsExistingRows(t *testing.T) {
	shot := newShot(strPtr("whatsapp"))
	shots := newFakeScreenshots(shot)
	numbers := &fakeNumbers{}
	groups := newFakeGroups()

	seed := newStage(shots, numbers, groups, &fakeExtractor{text: "Alice: +1 212 555 0123"})
	_, err := seed.Run(context.Background(), shot.ID, "")
	require.NoError(t, err)
	shots.shots[shot.ID].Processed = false

	failing := newStage(shots, numbers, groups, &fakeExtractor{err: errors.New("tesseract missing")})
	_, err = failing.Run(context.Background(), shot.ID, "")
	require.Error(t, err)

	assert.Len(t, numbers.forScreenshot(shot.ID), 1, "a failed OCR pass must not wipe stored numbers")
	assert.False(t, shots.shots[shot.ID].Processed)
}

func TestRunUnknownScreenshot(t *testing.T) {
	stage := newStage(newFakeScreenshots(), &fakeNumbers{}, newFakeGroups(), &fakeExtractor{text: "x"})

	_, err := stage.Run(context.Background(), uuid.New(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRunSourceOverrideSelectsPatternSet(t *testing.T) {
	// Indian-style 5+5 grouping is only scanned for whatsapp sources.
	shot := newShot(nil)
	shots := newFakeScreenshots(shot)
	numbers := &fakeNumbers{}
	groups := newFakeGroups()
	text := "Ravi: 98765 43210"

	generic := newStage(shots, numbers, groups, &fakeExtractor{text: text})
	summary, err := generic.Run(context.Background(), shot.ID, "")
	require.NoError(t, err)
	assert.Zero(t, summary.Candidates)

	overridden := newStage(shots, numbers, groups, &fakeExtractor{text: text})
	summary, err = overridden.Run(context.Background(), shot.ID, "whatsapp")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Candidates)
	assert.Equal(t, 1, summary.Stored)
}

func TestRunConcurrentExtractionsShareCountryGroup(t *testing.T) {
	shotA := newShot(strPtr("whatsapp"))
	shotB := newShot(strPtr("whatsapp"))
	shots := newFakeScreenshots(shotA, shotB)
	numbers := &fakeNumbers{}
	groups := newFakeGroups()

	stageA := newStage(shots, numbers, groups, &fakeExtractor{text: "Alice: +1 212 555 0123"})
	stageB := newStage(shots, numbers, groups, &fakeExtractor{text: "Bob: +1 212 555 0199"})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = stageA.Run(context.Background(), shotA.ID, "")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = stageB.Run(context.Background(), shotB.ID, "")
	}()
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	require.Len(t, groups.byCountry, 1, "both extractions converge on one +1 group")
	g := groups.byCountry["+1"]
	require.NotNil(t, g)
	assert.Equal(t, "United States (+1)", g.Name)
	assert.Len(t, groups.members[g.ID], 2)
}
