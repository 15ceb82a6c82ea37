package checkpoint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loftlist/seedkit/internal/checkpoint"
	"github.com/loftlist/seedkit/internal/domain"
)

func newStore(t *testing.T) *checkpoint.Store {
	t.Helper()
	return checkpoint.New(filepath.Join(t.TempDir(), "acquisition-progress.json"))
}

func TestStore_LoadMissingIsNil(t *testing.T) {
	store := newStore(t)

	progress, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, progress)
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newStore(t)

	saved := &domain.AcquisitionProgress{
		CompletedCount:        42,
		LastCompletedCategory: domain.CategoryArmchair,
		AccumulatedImages: []domain.ImageRecord{
			{ID: "a1", Source: domain.SourceUnsplash, Category: domain.CategorySofa},
			{ID: "a2", Source: domain.SourcePexels, Category: domain.CategoryArmchair},
		},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 42, loaded.CompletedCount)
	assert.Equal(t, domain.CategoryArmchair, loaded.LastCompletedCategory)
	require.Len(t, loaded.AccumulatedImages, 2)
	assert.Equal(t, "a1", loaded.AccumulatedImages[0].ID)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(&domain.AcquisitionProgress{CompletedCount: 1}))
	require.NoError(t, store.Save(&domain.AcquisitionProgress{CompletedCount: 2}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.CompletedCount)
}

func TestStore_SaveCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "progress.json")
	store := checkpoint.New(path)

	require.NoError(t, store.Save(&domain.AcquisitionProgress{CompletedCount: 7}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(&domain.AcquisitionProgress{CompletedCount: 1}))
	require.NoError(t, store.Clear())

	progress, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, progress)

	// Clearing again must not fail.
	require.NoError(t, store.Clear())
}

func TestStore_LoadCorruptFails(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Load()
	assert.Error(t, err)
}
