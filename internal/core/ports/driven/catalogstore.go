package driven

import (
	"context"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// CatalogStore provides read access to the travel-package catalog.
// The catalog is seeded once at startup and is immutable for the
// lifetime of the process; implementations never expose mutation.
type CatalogStore interface {
	// GetAllPackages returns every package in catalog order.
	// The returned slice is a copy and safe for the caller to reorder.
	GetAllPackages(ctx context.Context) ([]domain.TravelPackage, error)

	// GetPackageByID retrieves a package by ID.
	// Returns domain.ErrNotFound for unknown IDs.
	GetPackageByID(ctx context.Context, id string) (*domain.TravelPackage, error)

	// GetFeatured returns the packages flagged for the curated home
	// view, in catalog order.
	GetFeatured(ctx context.Context) ([]domain.TravelPackage, error)
}
