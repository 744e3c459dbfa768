package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driving"
	"github.com/wayfarer-labs/wayfarer-cli/internal/logger"
)

// Ensure ItineraryService implements the interface.
var _ driving.ItineraryService = (*ItineraryService)(nil)

// ItineraryService serves traveler-authored itineraries to the
// storefront. Itineraries share the destination-filter semantics of the
// catalog but are ordered by reader likes, not relevance score.
type ItineraryService struct {
	store driven.ItineraryStore
}

// NewItineraryService creates a new itinerary service.
func NewItineraryService(store driven.ItineraryStore) *ItineraryService {
	return &ItineraryService{store: store}
}

// List returns itineraries matching the destination query, most liked
// first. Equal like counts keep seed order (stable sort).
func (s *ItineraryService) List(ctx context.Context, destinationQuery string) ([]domain.Itinerary, error) {
	all, err := s.store.GetAllItineraries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load itineraries: %w", err)
	}

	matches := make([]domain.Itinerary, 0, len(all))
	for i := range all {
		if all[i].MatchesDestination(destinationQuery) {
			matches = append(matches, all[i])
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Likes > matches[j].Likes
	})

	logger.Debug("Itineraries: %d of %d match %q", len(matches), len(all), destinationQuery)
	return matches, nil
}

// ItineraryByID retrieves a single itinerary.
func (s *ItineraryService) ItineraryByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	it, err := s.store.GetItineraryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get itinerary %s: %w", id, err)
	}
	return it, nil
}

// ForPackage returns itineraries linked to a catalog package.
func (s *ItineraryService) ForPackage(ctx context.Context, packageID string) ([]domain.Itinerary, error) {
	linked, err := s.store.GetItinerariesForPackage(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("itineraries for package %s: %w", packageID, err)
	}
	return linked, nil
}
