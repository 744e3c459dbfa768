package driving

import (
	"context"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// CatalogService provides catalog browsing, filtering, and relevance
// ranking to the storefront front-ends.
type CatalogService interface {
	// Search runs the full pipeline: filter stages, optional travel
	// intent narrowing, then stable relevance ranking. When the request
	// has no active filters, the curated featured set is returned in
	// catalog order instead.
	Search(ctx context.Context, req domain.FilterRequest) ([]domain.TravelPackage, error)

	// ApplyFilters runs only the filter stages, preserving catalog
	// order and skipping intent narrowing and ranking.
	ApplyFilters(ctx context.Context, req domain.FilterRequest) ([]domain.TravelPackage, error)

	// PackageByID retrieves a single package.
	// Returns domain.ErrNotFound for unknown IDs.
	PackageByID(ctx context.Context, id string) (*domain.TravelPackage, error)

	// Featured returns the curated home-view packages in catalog order.
	Featured(ctx context.Context) ([]domain.TravelPackage, error)

	// Related returns up to limit other packages sharing the seed
	// package's destination or country, ranked by relevance. An unknown
	// seed ID yields an empty slice, not an error.
	Related(ctx context.Context, packageID string, limit int) ([]domain.TravelPackage, error)

	// HasActiveFilters reports whether the request deviates from the
	// default bounds.
	HasActiveFilters(req domain.FilterRequest) bool
}
