package acquire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loftlist/seedkit/internal/domain"
)

func TestDedupe_RemovesDuplicateKeys(t *testing.T) {
	records := []domain.ImageRecord{
		{ID: "a", Source: domain.SourceUnsplash, URL: "https://img/a-v1"},
		{ID: "b", Source: domain.SourceUnsplash},
		{ID: "a", Source: domain.SourceUnsplash, URL: "https://img/a-v2"},
	}

	out := Dedupe(records)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "https://img/a-v2", out[0].URL, "last write wins")
	assert.Equal(t, "b", out[1].ID)
}

func TestDedupe_SameIDAcrossSourcesIsNotADuplicate(t *testing.T) {
	records := []domain.ImageRecord{
		{ID: "12345", Source: domain.SourceUnsplash},
		{ID: "12345", Source: domain.SourcePexels},
	}

	out := Dedupe(records)
	assert.Len(t, out, 2, "dedup key must be source-qualified")
}

func TestDedupe_Idempotent(t *testing.T) {
	records := []domain.ImageRecord{
		{ID: "a", Source: domain.SourceUnsplash},
		{ID: "a", Source: domain.SourcePexels},
		{ID: "b", Source: domain.SourcePexels},
		{ID: "a", Source: domain.SourceUnsplash},
		{ID: "c", Source: domain.SourceUnsplash},
	}

	once := Dedupe(records)
	twice := Dedupe(once)
	assert.Equal(t, once, twice)
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}
