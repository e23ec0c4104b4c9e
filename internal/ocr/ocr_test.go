package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	outputs map[string]string // keyed by --psm value
	fail    map[string]error
	calls   [][]string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	psm := ""
	for i, a := range args {
		if a == "--psm" && i+1 < len(args) {
			psm = args[i+1]
		}
	}
	if err, ok := s.fail[psm]; ok {
		return nil, []byte("tesseract blew up"), err
	}
	return []byte(s.outputs[psm]), nil, nil
}

func newStubbed(cfg Config, stub *stubRunner) *Extractor {
	e := NewExtractor(cfg, nil)
	e.runner = stub
	return e
}

func TestExtractConcatenatesSegmentationPasses(t *testing.T) {
	stub := &stubRunner{outputs: map[string]string{
		"6":  "Alice Smith\n+1 212 555 0123",
		"11": "+44 20 7946 0958",
	}}
	e := newStubbed(Config{PageSegModes: []int{6, 11}}, stub)

	res, err := e.Extract(context.Background(), "chat.png")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Passes)
	assert.Contains(t, res.Text, "+1 212 555 0123")
	assert.Contains(t, res.Text, "+44 20 7946 0958")
	assert.Equal(t, "image-ocr", res.Method)
	assert.Len(t, stub.calls, 2)
}

func TestExtractDropsIdenticalPassOutput(t *testing.T) {
	stub := &stubRunner{outputs: map[string]string{
		"6":  "+1 212 555 0123",
		"11": "+1 212 555 0123",
	}}
	e := newStubbed(Config{PageSegModes: []int{6, 11}}, stub)

	res, err := e.Extract(context.Background(), "chat.png")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Passes)
	assert.Equal(t, "+1 212 555 0123", res.Text)
}

func TestExtractFailedPassBecomesWarning(t *testing.T) {
	stub := &stubRunner{
		outputs: map[string]string{"11": "+44 20 7946 0958"},
		fail:    map[string]error{"6": errors.New("exit status 1")},
	}
	e := newStubbed(Config{PageSegModes: []int{6, 11}}, stub)

	res, err := e.Extract(context.Background(), "chat.png")
	require.NoError(t, err)
	assert.Equal(t, "+44 20 7946 0958", res.Text)
	assert.NotEmpty(t, res.Warnings)
}

func TestExtractAllPassesFailing(t *testing.T) {
	boom := errors.New("exit status 1")
	stub := &stubRunner{fail: map[string]error{"6": boom, "11": boom}}
	e := newStubbed(Config{PageSegModes: []int{6, 11}}, stub)

	_, err := e.Extract(context.Background(), "chat.png")
	require.Error(t, err)
}

func TestExtractEmptyTextIsNotAnError(t *testing.T) {
	stub := &stubRunner{outputs: map[string]string{"6": "", "11": ""}}
	e := newStubbed(Config{PageSegModes: []int{6, 11}}, stub)

	res, err := e.Extract(context.Background(), "blank.png")
	require.NoError(t, err)
	assert.Empty(t, res.Text)
	assert.Zero(t, res.Passes)
}

func TestExtractRejectsUnsupportedExtension(t *testing.T) {
	stub := &stubRunner{}
	e := newStubbed(Config{}, stub)

	_, err := e.Extract(context.Background(), "notes.txt")
	require.Error(t, err)
	assert.Empty(t, stub.calls, "tesseract must not run for non-image files")
}

func TestExtractPassesConfigToTesseract(t *testing.T) {
	stub := &stubRunner{outputs: map[string]string{"4": "hello"}}
	e := newStubbed(Config{
		Tesseract:     "/opt/tesseract",
		TesseractLang: "deu",
		TessdataDir:   "/opt/tessdata",
		PageSegModes:  []int{4},
		OEM:           1,
	}, stub)

	_, err := e.Extract(context.Background(), "chat.png")
	require.NoError(t, err)
	require.Len(t, stub.calls, 1)
	call := stub.calls[0]
	assert.Equal(t, "/opt/tesseract", call[0])
	assert.Contains(t, call, "deu")
	assert.Contains(t, call, "--tessdata-dir")
	assert.Contains(t, call, "/opt/tessdata")
	assert.Contains(t, call, "--oem")
}

func TestNormalize(t *testing.T) {
	in := "Alice\r\n│ +1 212 555 0123 │\r\n\n\n\nBob"
	got := Normalize(in)
	assert.Equal(t, "Alice\n  +1 212 555 0123\n\nBob", got)
}

func TestNormalizeKeepsPhonePunctuation(t *testing.T) {
	in := "+1 (212) 555-0123"
	assert.Equal(t, in, Normalize(in))
}
