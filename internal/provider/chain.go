package provider

import (
	"context"
	"errors"
	"log/slog"

	"github.com/loftlist/seedkit/internal/domain"
)

// Chain tries an ordered list of providers until one yields results for a
// page. Adding a provider is a configuration change, not a code change:
// the engine only ever talks to the chain.
type Chain struct {
	providers []Searcher
	logger    *slog.Logger
}

// NewChain creates a fallback chain over the given providers, in priority
// order.
func NewChain(logger *slog.Logger, providers ...Searcher) *Chain {
	return &Chain{providers: providers, logger: logger}
}

// Len returns the number of configured providers.
func (c *Chain) Len() int {
	return len(c.providers)
}

// Sources returns the sources of all configured providers, in order.
func (c *Chain) Sources() []domain.Source {
	sources := make([]domain.Source, len(c.providers))
	for i, p := range c.providers {
		sources[i] = p.Source()
	}
	return sources
}

// Search asks each provider in order for the page and returns the first
// non-empty result. A provider that errors or comes back empty falls
// through to the next one. If no provider yielded results and at least
// one errored, the joined errors are returned so the caller can apply its
// retry policy; if they all merely returned nothing, the result is an
// empty slice and a nil error.
func (c *Chain) Search(ctx context.Context, query string, page, perPage int) ([]domain.ImageRecord, error) {
	var errs []error

	for _, p := range c.providers {
		records, err := p.Search(ctx, query, page, perPage)
		if err != nil {
			c.logger.Warn("provider search failed, trying next",
				"source", p.Source(),
				"query", query,
				"page", page,
				"error", err,
			)
			errs = append(errs, err)
			continue
		}
		if len(records) == 0 {
			c.logger.Debug("provider returned no results, trying next",
				"source", p.Source(),
				"query", query,
				"page", page,
			)
			continue
		}
		return records, nil
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, nil
}
