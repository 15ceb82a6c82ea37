// Package provider defines the photo-search provider abstraction used by
// the acquisition engine, plus the ordered fallback chain across the
// configured providers.
package provider

import (
	"context"

	"github.com/loftlist/seedkit/internal/domain"
)

// Searcher is a photo-search provider. Implementations are expected to be
// rate-limited internally; Search blocks until the provider's pacing
// allows the request.
//
// Returned records carry no Category; the acquisition engine stamps the
// category it was searching for.
type Searcher interface {
	// Source identifies the provider in records and catalogs.
	Source() domain.Source
	// Search returns one page of photo metadata for the query.
	// An empty slice with a nil error means the provider has no results
	// for that page.
	Search(ctx context.Context, query string, page, perPage int) ([]domain.ImageRecord, error)
}
