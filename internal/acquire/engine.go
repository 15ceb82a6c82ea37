// Package acquire implements the image acquisition engine: a resumable,
// rate-limit-aware batch job that collects photo metadata from the
// configured providers into deduplicated catalog artifacts.
package acquire

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/loftlist/seedkit/internal/checkpoint"
	"github.com/loftlist/seedkit/internal/domain"
	"github.com/loftlist/seedkit/internal/provider"
)

const (
	// DefaultTarget is the total image count collected when the CLI is
	// given no argument.
	DefaultTarget = 800

	pageSize         = 30
	maxPagesPerQuery = 10
	maxRetries       = 3

	// rateLimitPause is the flat wait after a 429; it does not advance
	// the retry backoff.
	rateLimitPause = 60 * time.Second
	retryDelayUnit = 2 * time.Second
)

// errRetriesExhausted marks a page that degraded to empty after the
// retry budget. The query's later pages are still attempted; only a
// genuinely empty page ends a query.
var errRetriesExhausted = errors.New("page retries exhausted")

// searcher is the slice of the provider chain the engine depends on.
type searcher interface {
	Search(ctx context.Context, query string, page, perPage int) ([]domain.ImageRecord, error)
}

// recordValidator checks records before they enter an artifact.
type recordValidator interface {
	Validate(s any) error
}

// Engine orchestrates the acquisition run.
type Engine struct {
	chain     searcher
	store     *checkpoint.Store
	validator recordValidator
	logger    *slog.Logger
	dataDir   string

	// Overridable in tests.
	specs []domain.CategorySpec
	sleep func(time.Duration)
	now   func() time.Time
}

// New creates an engine writing artifacts under dataDir.
func New(chain searcher, store *checkpoint.Store, validator recordValidator, logger *slog.Logger, dataDir string) *Engine {
	return &Engine{
		chain:     chain,
		store:     store,
		validator: validator,
		logger:    logger,
		dataDir:   dataDir,
		specs:     domain.Specs(),
		sleep:     time.Sleep,
		now:       time.Now,
	}
}

// Result summarizes a completed acquisition run.
type Result struct {
	TotalImages int
	PerSource   map[domain.Source]int
	PerCategory map[domain.Category]int
}

// Run executes the acquisition job until every category is processed or
// targetTotal images have accumulated, then finalizes the catalogs and
// clears the checkpoint.
//
// Transient provider failures are retried and ultimately degraded to
// empty pages; Run errors on checkpoint or artifact I/O failures and on
// context cancellation. A cancelled run returns without finalizing, so
// the checkpoint stays at its last persisted state for the next
// invocation to resume from.
func (e *Engine) Run(ctx context.Context, targetTotal int) (*Result, error) {
	if targetTotal <= 0 {
		targetTotal = DefaultTarget
	}

	progress, err := e.store.Load()
	if err != nil {
		e.logger.Warn("checkpoint unreadable, starting fresh", "error", err)
		progress = nil
	}
	if progress == nil {
		e.logger.Info("starting fresh acquisition run", "target", targetTotal)
		progress = &domain.AcquisitionProgress{}
	} else {
		e.logger.Info("resuming acquisition run",
			"completed", progress.CompletedCount,
			"lastCategory", progress.LastCompletedCategory,
			"accumulated", len(progress.AccumulatedImages),
		)
	}

	for _, spec := range e.specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if progress.CategoryDone(spec.Category) {
			e.logger.Info("skipping completed category", "category", spec.Category)
			continue
		}
		if len(progress.AccumulatedImages) >= targetTotal {
			e.logger.Info("global target reached, stopping category loop",
				"target", targetTotal)
			break
		}

		if err := e.acquireCategory(ctx, spec, progress, targetTotal); err != nil {
			return nil, err
		}

		progress.LastCompletedCategory = spec.Category
		if err := e.store.Save(progress); err != nil {
			return nil, err
		}
	}

	return e.finalize(progress)
}

// acquireCategory fetches pages for every query of one category, saving
// the checkpoint after each successful page.
func (e *Engine) acquireCategory(ctx context.Context, spec domain.CategorySpec, progress *domain.AcquisitionProgress, targetTotal int) error {
	quota := (spec.Target + len(spec.Queries) - 1) / len(spec.Queries)

	e.logger.Info("acquiring category",
		"category", spec.Category,
		"queries", len(spec.Queries),
		"perQueryQuota", quota,
	)

	for _, query := range spec.Queries {
		collected := 0

		for page := 1; page <= maxPagesPerQuery; page++ {
			if collected >= quota || len(progress.AccumulatedImages) >= targetTotal {
				break
			}

			records, err := e.fetchPage(ctx, query, page)
			if err != nil {
				if errors.Is(err, errRetriesExhausted) {
					// This page degraded to empty; move on to the next one.
					continue
				}
				return err
			}
			if len(records) == 0 {
				// The provider has no more results for this query.
				break
			}

			for i := range records {
				records[i].Category = spec.Category
			}

			progress.AccumulatedImages = append(progress.AccumulatedImages, records...)
			progress.CompletedCount += len(records)
			collected += len(records)

			if err := e.store.Save(progress); err != nil {
				return err
			}

			e.logger.Debug("page accumulated",
				"category", spec.Category,
				"query", query,
				"page", page,
				"pageCount", len(records),
				"total", len(progress.AccumulatedImages),
			)
		}
	}
	return nil
}

// fetchPage requests one page through the provider chain, applying the
// retry policy: up to maxRetries attempts with 2s×attempt backoff, and a
// flat 60s pause on rate limiting that does not advance the backoff.
// Exhaustion yields errRetriesExhausted; cancellation surfaces the
// context error.
func (e *Engine) fetchPage(ctx context.Context, query string, page int) ([]domain.ImageRecord, error) {
	attempt := 1
	for attempt <= maxRetries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := e.chain.Search(ctx, query, page, pageSize)
		if err == nil {
			return records, nil
		}

		if errors.Is(err, provider.ErrRateLimited) {
			e.logger.Warn("rate limited, pausing",
				"query", query,
				"page", page,
				"pause", rateLimitPause,
			)
			e.sleep(rateLimitPause)
			continue
		}

		e.logger.Warn("page fetch failed, backing off",
			"query", query,
			"page", page,
			"attempt", attempt,
			"error", err,
		)
		e.sleep(time.Duration(attempt) * retryDelayUnit)
		attempt++
	}

	e.logger.Warn("retries exhausted, skipping page", "query", query, "page", page)
	return nil, errRetriesExhausted
}
