package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/entity"
)

type memStore struct {
	byPath map[string]*entity.Screenshot
}

func newMemStore() *memStore {
	return &memStore{byPath: make(map[string]*entity.Screenshot)}
}

func (m *memStore) GetByPath(_ context.Context, filePath string) (*entity.Screenshot, error) {
	if s, ok := m.byPath[filePath]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (m *memStore) Create(_ context.Context, filePath, filename string, source *string) (*entity.Screenshot, error) {
	s := &entity.Screenshot{
		ID:         uuid.New(),
		Filename:   filename,
		FilePath:   filePath,
		Source:     source,
		UploadedAt: time.Now(),
	}
	m.byPath[filePath] = s
	cp := *s
	return &cp, nil
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
	return path
}

func TestRegisterPath(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "chat.png")
	store := newMemStore()
	reg := NewRegistrar(store, nil)

	shot, skipped, err := reg.RegisterPath(context.Background(), path, "whatsapp")
	require.NoError(t, err)
	assert.False(t, skipped)
	assert.Equal(t, "chat.png", shot.Filename)
	assert.Equal(t, path, shot.FilePath)
	require.NotNil(t, shot.Source)
	assert.Equal(t, "whatsapp", *shot.Source)
}

func TestRegisterPathIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "chat.png")
	store := newMemStore()
	reg := NewRegistrar(store, nil)

	first, _, err := reg.RegisterPath(context.Background(), path, "")
	require.NoError(t, err)
	second, skipped, err := reg.RegisterPath(context.Background(), path, "")
	require.NoError(t, err)

	assert.True(t, skipped)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.byPath, 1)
}

func TestRegisterPathRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "notes.txt")
	reg := NewRegistrar(newMemStore(), nil)

	_, _, err := reg.RegisterPath(context.Background(), path, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestRegisterPathMissingFile(t *testing.T) {
	reg := NewRegistrar(newMemStore(), nil)

	_, _, err := reg.RegisterPath(context.Background(), filepath.Join(t.TempDir(), "gone.png"), "")
	require.Error(t, err)
}

func TestRegisterDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.png")
	touch(t, dir, "b.jpg")
	touch(t, dir, "sub/c.jpeg")
	touch(t, dir, "notes.txt")
	touch(t, dir, ".hidden/d.png")
	store := newMemStore()
	reg := NewRegistrar(store, nil)

	results, stats, err := reg.RegisterDirectory(context.Background(), dir, "sms", true)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Matched, "txt and hidden files never match")
	assert.Equal(t, uint32(3), stats.Registered)
	assert.Zero(t, stats.Skipped)
	assert.Zero(t, stats.Failed)
	assert.Len(t, store.byPath, 3)

	registered := 0
	for _, res := range results {
		if res.Screenshot != nil {
			registered++
			require.NotNil(t, res.Screenshot.Source)
			assert.Equal(t, "sms", *res.Screenshot.Source)
		}
	}
	assert.Equal(t, 3, registered)
}

func TestRegisterDirectoryRerunSkips(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.png")
	touch(t, dir, "b.png")
	store := newMemStore()
	reg := NewRegistrar(store, nil)

	_, first, err := reg.RegisterDirectory(context.Background(), dir, "", false)
	require.NoError(t, err)
	require.Equal(t, uint32(2), first.Registered)

	_, second, err := reg.RegisterDirectory(context.Background(), dir, "", false)
	require.NoError(t, err)

	assert.Zero(t, second.Registered)
	assert.Equal(t, uint32(2), second.Skipped)
	assert.Len(t, store.byPath, 2)
}

func TestRegisterDirectoryEmptyRoot(t *testing.T) {
	reg := NewRegistrar(newMemStore(), nil)

	_, _, err := reg.RegisterDirectory(context.Background(), "   ", "", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
