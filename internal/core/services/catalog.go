package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driving"
	"github.com/wayfarer-labs/wayfarer-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService filters and ranks the travel-package catalog.
//
// Filtering is a fixed pipeline of stages composed left to right:
// destination, date window, price. A stage whose request field is unset
// passes its input through unchanged. Travel-intent narrowing and
// relevance ranking are separate passes applied after the pipeline.
// Every operation is pure with respect to the catalog: the store is
// only read, never mutated, so the service is safe for concurrent use.
type CatalogService struct {
	catalog driven.CatalogStore
	history driven.SearchHistoryStore
}

// NewCatalogService creates a new catalog service.
// The history store is optional (can be nil); searches then simply go
// unrecorded.
func NewCatalogService(catalog driven.CatalogStore, history driven.SearchHistoryStore) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		history: history,
	}
}

// RelevanceScore computes the ranking score for a package from its
// rating and review volume:
//
//	score = rating * ln(reviewCount + 1)
//
// A plain rating average is gameable by a single five-star review; the
// log term rewards social proof with diminishing returns, and a package
// with zero reviews always scores zero (ln 1 = 0) so it can never
// outrank a reviewed one. Monotonic in both inputs for rating >= 0 and
// reviewCount >= 0.
func RelevanceScore(rating float64, reviewCount int) float64 {
	return rating * math.Log(float64(reviewCount)+1)
}

// Search runs the full storefront pipeline: filter stages, optional
// travel-intent narrowing, then stable relevance ranking. A request
// with no active filters returns the curated featured set in catalog
// order instead of ranking the whole catalog.
func (s *CatalogService) Search(ctx context.Context, req domain.FilterRequest) ([]domain.TravelPackage, error) {
	logger.Section("Catalog Search")
	logger.Debug("Destination: %q, price: [%.0f, %.0f], intent: %q",
		req.Destination, req.PriceMin, req.PriceMax, req.Intent)

	if !req.HasActiveFilters() && req.Intent == domain.IntentNone {
		logger.Debug("No active filters, returning curated featured set")
		return s.Featured(ctx)
	}

	matches, err := s.ApplyFilters(ctx, req)
	if err != nil {
		return nil, err
	}
	logger.Debug("After filter stages: %d packages", len(matches))

	matches = ApplyTravelIntent(matches, req.Intent)
	logger.Debug("After intent narrowing: %d packages", len(matches))

	RankByRelevance(matches)
	logger.Info("Search results: %d packages", len(matches))

	s.recordSearch(ctx, req, len(matches))
	return matches, nil
}

// ApplyFilters runs the filter pipeline only, preserving catalog order.
//
// Stage order is fixed: destination, date window, price. The date stage
// is an explicit no-op today because the catalog carries no per-package
// availability; it stays in the pipeline so availability data can be
// wired in later without changing the pipeline shape.
func (s *CatalogService) ApplyFilters(ctx context.Context, req domain.FilterRequest) ([]domain.TravelPackage, error) {
	catalog, err := s.catalog.GetAllPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	matches := filterByDestination(catalog, req.DestinationQuery())
	matches = filterByDateWindow(matches, req.DateFrom, req.DateTo)
	matches = filterByPrice(matches, req.PriceMin, req.PriceMax)
	return matches, nil
}

// filterByDestination keeps packages whose destination or country
// contains the query. An empty query passes everything through.
func filterByDestination(packages []domain.TravelPackage, query string) []domain.TravelPackage {
	if query == "" {
		return packages
	}
	matches := make([]domain.TravelPackage, 0, len(packages))
	for i := range packages {
		if packages[i].MatchesDestination(query) {
			matches = append(matches, packages[i])
		}
	}
	return matches
}

// filterByDateWindow is a pass-through: packages carry no availability
// dates yet. Kept as a pipeline stage on purpose, not removed.
func filterByDateWindow(packages []domain.TravelPackage, _, _ *time.Time) []domain.TravelPackage {
	return packages
}

// filterByPrice keeps packages whose MINIMUM price lies inside the
// inclusive [min, max] interval. The package's maximum price is
// deliberately ignored: catalog pricing is "starting from", so a
// package whose upper tier exceeds the ceiling still matches when its
// entry price is within bounds. Inverted bounds simply match nothing.
func filterByPrice(packages []domain.TravelPackage, min, max float64) []domain.TravelPackage {
	matches := make([]domain.TravelPackage, 0, len(packages))
	for i := range packages {
		if packages[i].Price.Min >= min && packages[i].Price.Min <= max {
			matches = append(matches, packages[i])
		}
	}
	return matches
}

// ApplyTravelIntent narrows matches by the coarse travel intent.
// It only ever removes packages, never reorders them:
//
//   - IntentLuxury keeps packages carrying the luxury category OR the
//     luxury badge.
//   - IntentValue keeps packages priced below the destination average
//     OR carrying the value badge.
//   - IntentNone passes everything through.
func ApplyTravelIntent(matches []domain.TravelPackage, intent domain.TravelIntent) []domain.TravelPackage {
	if intent == domain.IntentNone {
		return matches
	}

	narrowed := make([]domain.TravelPackage, 0, len(matches))
	for i := range matches {
		p := &matches[i]
		switch intent {
		case domain.IntentLuxury:
			if p.HasCategory(domain.CategoryLuxury) || p.Badge == domain.BadgeLuxury {
				narrowed = append(narrowed, *p)
			}
		case domain.IntentValue:
			if p.PriceComparison == domain.PriceBelow || p.Badge == domain.BadgeValue {
				narrowed = append(narrowed, *p)
			}
		case domain.IntentNone:
			narrowed = append(narrowed, *p)
		}
	}
	return narrowed
}

// RankByRelevance sorts packages in place, descending by relevance
// score. The sort is stable: equal-score packages keep their catalog
// order across repeated calls.
func RankByRelevance(packages []domain.TravelPackage) {
	sort.SliceStable(packages, func(i, j int) bool {
		return RelevanceScore(packages[i].Rating, packages[i].ReviewCount) >
			RelevanceScore(packages[j].Rating, packages[j].ReviewCount)
	})
}

// PackageByID retrieves a single package from the catalog.
func (s *CatalogService) PackageByID(ctx context.Context, id string) (*domain.TravelPackage, error) {
	pkg, err := s.catalog.GetPackageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package %s: %w", id, err)
	}
	return pkg, nil
}

// Featured returns the curated home-view packages in catalog order.
func (s *CatalogService) Featured(ctx context.Context) ([]domain.TravelPackage, error) {
	featured, err := s.catalog.GetFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("load featured packages: %w", err)
	}
	return featured, nil
}

// Related returns up to limit other packages sharing the seed package's
// destination or country, ranked by relevance.
//
// An unknown seed ID yields an empty slice and a nil error: related
// panels are decorative, so absence fails soft rather than propagating
// a not-found error into the detail view.
func (s *CatalogService) Related(ctx context.Context, packageID string, limit int) ([]domain.TravelPackage, error) {
	seed, err := s.catalog.GetPackageByID(ctx, packageID)
	if err != nil {
		logger.Debug("Related: seed package %q not found", packageID)
		return []domain.TravelPackage{}, nil
	}

	catalog, err := s.catalog.GetAllPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	related := make([]domain.TravelPackage, 0, limit)
	for i := range catalog {
		if catalog[i].ID == seed.ID {
			continue
		}
		if catalog[i].SharesLocation(seed) {
			related = append(related, catalog[i])
		}
	}

	RankByRelevance(related)
	if limit >= 0 && len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

// HasActiveFilters reports whether the request deviates from the
// default bounds. The definition of "default" lives with the engine so
// all front-ends agree on when to fall back to the curated view.
func (s *CatalogService) HasActiveFilters(req domain.FilterRequest) bool {
	return req.HasActiveFilters()
}

// recordSearch writes the search to the history store, best effort.
func (s *CatalogService) recordSearch(ctx context.Context, req domain.FilterRequest, resultCount int) {
	if s.history == nil {
		return
	}

	rec := domain.SearchRecord{
		ID:          uuid.NewString(),
		Query:       req.DestinationQuery(),
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		Intent:      req.Intent,
		ResultCount: resultCount,
		SearchedAt:  time.Now().UTC(),
	}
	if err := s.history.Record(ctx, rec); err != nil {
		logger.Warn("Recording search history failed: %v", err)
	}
}
