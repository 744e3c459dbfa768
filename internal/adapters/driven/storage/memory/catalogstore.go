package memory

import (
	"context"
	"sync"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
// Packages are kept in a slice, not a map: catalog order is part of the
// contract (it breaks ties in relevance ranking), so iteration order
// must be deterministic.
type CatalogStore struct {
	mu       sync.RWMutex
	packages []domain.TravelPackage
	byID     map[string]int
}

// NewCatalogStore creates a catalog store holding the given packages.
func NewCatalogStore(packages []domain.TravelPackage) *CatalogStore {
	s := &CatalogStore{
		packages: make([]domain.TravelPackage, len(packages)),
		byID:     make(map[string]int, len(packages)),
	}
	copy(s.packages, packages)
	for i := range s.packages {
		s.byID[s.packages[i].ID] = i
	}
	return s
}

// NewSeededCatalogStore creates a catalog store with the built-in
// storefront catalog.
func NewSeededCatalogStore() *CatalogStore {
	return NewCatalogStore(seedPackages())
}

// GetAllPackages returns every package in catalog order. The returned
// slice is a copy; callers may reorder it freely.
func (s *CatalogStore) GetAllPackages(_ context.Context) ([]domain.TravelPackage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TravelPackage, len(s.packages))
	copy(out, s.packages)
	return out, nil
}

// GetPackageByID retrieves a package by ID.
func (s *CatalogStore) GetPackageByID(_ context.Context, id string) (*domain.TravelPackage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	pkg := s.packages[i]
	return &pkg, nil
}

// GetFeatured returns the curated packages in catalog order.
func (s *CatalogStore) GetFeatured(_ context.Context) ([]domain.TravelPackage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.TravelPackage
	for i := range s.packages {
		if s.packages[i].Featured {
			out = append(out, s.packages[i])
		}
	}
	return out, nil
}
