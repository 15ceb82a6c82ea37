package acquire

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loftlist/seedkit/internal/checkpoint"
	"github.com/loftlist/seedkit/internal/domain"
	"github.com/loftlist/seedkit/internal/provider"
	"github.com/loftlist/seedkit/internal/validation"
)

// scriptedChain replays canned responses and records every query it sees.
type scriptedChain struct {
	// pages maps "query/page" to a canned response.
	pages   map[string][]domain.ImageRecord
	errs    map[string]error
	queries []string
}

func (s *scriptedChain) Search(_ context.Context, query string, page, _ int) ([]domain.ImageRecord, error) {
	key := fmt.Sprintf("%s/%d", query, page)
	s.queries = append(s.queries, key)
	if err, ok := s.errs[key]; ok {
		delete(s.errs, key) // errors fire once, then the page succeeds
		return nil, err
	}
	return s.pages[key], nil
}

func makeRecords(source domain.Source, prefix string, n int) []domain.ImageRecord {
	records := make([]domain.ImageRecord, n)
	for i := range n {
		records[i] = domain.ImageRecord{
			ID:           fmt.Sprintf("%s-%d", prefix, i),
			URL:          fmt.Sprintf("https://images.example.com/%s-%d.jpg", prefix, i),
			ThumbnailURL: fmt.Sprintf("https://images.example.com/%s-%d-small.jpg", prefix, i),
			Width:        1600,
			Height:       1000,
			Source:       source,
			Attribution: domain.Attribution{
				PhotographerName: "Test Photographer",
				License:          "Test License",
			},
		}
	}
	return records
}

func newTestEngine(t *testing.T, chain searcher, specs []domain.CategorySpec) (*Engine, string, *[]time.Duration) {
	t.Helper()
	dir := t.TempDir()
	store := checkpoint.New(filepath.Join(dir, domain.CheckpointFilename))
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	engine := New(chain, store, validation.New(), logger, dir)
	engine.specs = specs

	var sleeps []time.Duration
	engine.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	return engine, dir, &sleeps
}

func readImageCatalog(t *testing.T, dir, name string) domain.ImageCatalog {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	var catalog domain.ImageCatalog
	require.NoError(t, json.Unmarshal(data, &catalog))
	return catalog
}

func TestEngine_FreshAcquisition(t *testing.T) {
	chain := &scriptedChain{pages: map[string][]domain.ImageRecord{
		"modern sofa/1": makeRecords(domain.SourceUnsplash, "sofa", 30),
	}}
	specs := []domain.CategorySpec{
		{Category: domain.CategorySofa, Queries: []string{"modern sofa"}, Target: 30},
	}

	engine, dir, _ := newTestEngine(t, chain, specs)

	result, err := engine.Run(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, 30, result.TotalImages)
	assert.Equal(t, 30, result.PerSource[domain.SourceUnsplash])

	catalog := readImageCatalog(t, dir, domain.ImageCatalogFilename)
	assert.Len(t, catalog.Images, 30)
	for _, rec := range catalog.Images {
		assert.Equal(t, domain.CategorySofa, rec.Category)
	}
	assert.Equal(t, 30, catalog.Meta.TotalImages)
	assert.Equal(t, domain.LicenseNotice, catalog.Meta.LicenseNotice)

	// Per-source re-materialization exists too.
	perSource := readImageCatalog(t, dir, domain.SourceCatalogFilename(domain.SourceUnsplash))
	assert.Len(t, perSource.Images, 30)

	// Checkpoint must be gone after a successful run.
	_, statErr := os.Stat(filepath.Join(dir, domain.CheckpointFilename))
	assert.True(t, os.IsNotExist(statErr))
}

func TestEngine_ResumeSkipsCompletedCategories(t *testing.T) {
	chain := &scriptedChain{pages: map[string][]domain.ImageRecord{
		"armchair/1": makeRecords(domain.SourcePexels, "chair", 10),
	}}
	specs := []domain.CategorySpec{
		{Category: domain.CategorySofa, Queries: []string{"modern sofa"}, Target: 10},
		{Category: domain.CategoryArmchair, Queries: []string{"armchair"}, Target: 10},
	}

	engine, dir, _ := newTestEngine(t, chain, specs)

	// Simulate an interrupted run that finished the sofa category.
	accumulated := makeRecords(domain.SourceUnsplash, "sofa", 15)
	for i := range accumulated {
		accumulated[i].Category = domain.CategorySofa
	}
	require.NoError(t, engine.store.Save(&domain.AcquisitionProgress{
		CompletedCount:        15,
		LastCompletedCategory: domain.CategorySofa,
		AccumulatedImages:     accumulated,
	}))

	result, err := engine.Run(context.Background(), 100)
	require.NoError(t, err)

	for _, q := range chain.queries {
		assert.NotContains(t, q, "modern sofa", "completed category must not be re-queried")
	}

	// Checkpointed images survive into the final catalog.
	assert.GreaterOrEqual(t, result.TotalImages, 15)
	catalog := readImageCatalog(t, dir, domain.ImageCatalogFilename)
	assert.Equal(t, 25, len(catalog.Images))
}

func TestEngine_RetryBackoffThenSuccess(t *testing.T) {
	chain := &scriptedChain{
		pages: map[string][]domain.ImageRecord{
			"desk/1": makeRecords(domain.SourceUnsplash, "desk", 5),
		},
		errs: map[string]error{
			"desk/1": provider.ErrServer,
		},
	}
	specs := []domain.CategorySpec{
		{Category: domain.CategoryDesk, Queries: []string{"desk"}, Target: 5},
	}

	engine, _, sleeps := newTestEngine(t, chain, specs)

	result, err := engine.Run(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalImages)

	// One transient failure: a single 2s backoff, then success.
	require.Len(t, *sleeps, 1)
	assert.Equal(t, 2*time.Second, (*sleeps)[0])
}

func TestEngine_RateLimitPausesWithoutBackoffGrowth(t *testing.T) {
	chain := &scriptedChain{
		pages: map[string][]domain.ImageRecord{
			"desk/1": makeRecords(domain.SourceUnsplash, "desk", 5),
		},
		errs: map[string]error{
			"desk/1": provider.ErrRateLimited,
		},
	}
	specs := []domain.CategorySpec{
		{Category: domain.CategoryDesk, Queries: []string{"desk"}, Target: 5},
	}

	engine, _, sleeps := newTestEngine(t, chain, specs)

	result, err := engine.Run(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalImages)

	require.Len(t, *sleeps, 1)
	assert.Equal(t, 60*time.Second, (*sleeps)[0])
}

func TestEngine_ExhaustedRetriesDegradeToEmptyPage(t *testing.T) {
	// Every attempt fails; the engine must move on without error.
	alwaysFailing := &failingChain{err: provider.ErrServer}
	specs := []domain.CategorySpec{
		{Category: domain.CategoryDesk, Queries: []string{"desk"}, Target: 5},
	}

	engine, dir, sleeps := newTestEngine(t, alwaysFailing, specs)

	result, err := engine.Run(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalImages)

	// Every page of the query exhausts its retry budget with growing
	// backoff (2s, 4s, 6s) before the query gives up.
	require.Len(t, *sleeps, 3*maxPagesPerQuery)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}, (*sleeps)[:3])

	catalog := readImageCatalog(t, dir, domain.ImageCatalogFilename)
	assert.Empty(t, catalog.Images)
}

type failingChain struct{ err error }

func (f *failingChain) Search(context.Context, string, int, int) ([]domain.ImageRecord, error) {
	return nil, f.err
}

// pageFailChain fails one specific page persistently and serves the rest.
type pageFailChain struct {
	failKey string
	pages   map[string][]domain.ImageRecord
}

func (p *pageFailChain) Search(_ context.Context, query string, page, _ int) ([]domain.ImageRecord, error) {
	key := fmt.Sprintf("%s/%d", query, page)
	if key == p.failKey {
		return nil, provider.ErrServer
	}
	return p.pages[key], nil
}

func TestEngine_ExhaustedPageDoesNotEndQuery(t *testing.T) {
	// Page 1 burns its whole retry budget; page 2 must still be fetched.
	chain := &pageFailChain{
		failKey: "desk/1",
		pages: map[string][]domain.ImageRecord{
			"desk/2": makeRecords(domain.SourceUnsplash, "desk", 5),
		},
	}
	specs := []domain.CategorySpec{
		{Category: domain.CategoryDesk, Queries: []string{"desk"}, Target: 5},
	}

	engine, _, sleeps := newTestEngine(t, chain, specs)

	result, err := engine.Run(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalImages)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}, *sleeps)
}

func TestEngine_CancelledRunLeavesCheckpoint(t *testing.T) {
	chain := &scriptedChain{pages: map[string][]domain.ImageRecord{
		"armchair/1": makeRecords(domain.SourcePexels, "chair", 10),
	}}
	specs := []domain.CategorySpec{
		{Category: domain.CategorySofa, Queries: []string{"modern sofa"}, Target: 10},
		{Category: domain.CategoryArmchair, Queries: []string{"armchair"}, Target: 10},
	}

	engine, dir, _ := newTestEngine(t, chain, specs)

	// An interrupted earlier run left a checkpoint behind.
	accumulated := makeRecords(domain.SourceUnsplash, "sofa", 15)
	for i := range accumulated {
		accumulated[i].Category = domain.CategorySofa
	}
	require.NoError(t, engine.store.Save(&domain.AcquisitionProgress{
		CompletedCount:        15,
		LastCompletedCategory: domain.CategorySofa,
		AccumulatedImages:     accumulated,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Run(ctx, 100)
	require.ErrorIs(t, err, context.Canceled)

	assert.Empty(t, chain.queries, "no provider calls after cancellation")

	// The checkpoint must survive untouched for the next invocation.
	loaded, loadErr := engine.store.Load()
	require.NoError(t, loadErr)
	require.NotNil(t, loaded)
	assert.Equal(t, 15, loaded.CompletedCount)
	assert.Equal(t, domain.CategorySofa, loaded.LastCompletedCategory)
	assert.Len(t, loaded.AccumulatedImages, 15)

	// And no catalog artifacts may exist.
	_, statErr := os.Stat(filepath.Join(dir, domain.ImageCatalogFilename))
	assert.True(t, os.IsNotExist(statErr))
}

func TestEngine_GlobalTargetStopsRun(t *testing.T) {
	chain := &scriptedChain{pages: map[string][]domain.ImageRecord{
		"modern sofa/1": makeRecords(domain.SourceUnsplash, "sofa", 30),
		"armchair/1":    makeRecords(domain.SourceUnsplash, "chair", 30),
	}}
	specs := []domain.CategorySpec{
		{Category: domain.CategorySofa, Queries: []string{"modern sofa"}, Target: 30},
		{Category: domain.CategoryArmchair, Queries: []string{"armchair"}, Target: 30},
	}

	engine, _, _ := newTestEngine(t, chain, specs)

	result, err := engine.Run(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, 30, result.TotalImages)
	assert.NotContains(t, chain.queries, "armchair/1",
		"second category must not be fetched once the target is reached")
}

func TestEngine_DuplicatePagesCollapseInFinalCatalog(t *testing.T) {
	// Both queries return the same photos; dedup keeps them once.
	same := makeRecords(domain.SourceUnsplash, "sofa", 10)
	chain := &scriptedChain{pages: map[string][]domain.ImageRecord{
		"modern sofa/1":  same,
		"leather sofa/1": same,
	}}
	specs := []domain.CategorySpec{
		{Category: domain.CategorySofa, Queries: []string{"modern sofa", "leather sofa"}, Target: 20},
	}

	engine, _, _ := newTestEngine(t, chain, specs)

	result, err := engine.Run(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 10, result.TotalImages)
}
