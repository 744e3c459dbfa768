package memory

import (
	"context"
	"sync"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driven"
)

// Ensure ItineraryStore implements the interface.
var _ driven.ItineraryStore = (*ItineraryStore)(nil)

// ItineraryStore is an in-memory implementation of driven.ItineraryStore.
type ItineraryStore struct {
	mu          sync.RWMutex
	itineraries []domain.Itinerary
	byID        map[string]int
}

// NewItineraryStore creates an itinerary store holding the given
// itineraries.
func NewItineraryStore(itineraries []domain.Itinerary) *ItineraryStore {
	s := &ItineraryStore{
		itineraries: make([]domain.Itinerary, len(itineraries)),
		byID:        make(map[string]int, len(itineraries)),
	}
	copy(s.itineraries, itineraries)
	for i := range s.itineraries {
		s.byID[s.itineraries[i].ID] = i
	}
	return s
}

// NewSeededItineraryStore creates an itinerary store with the built-in
// traveler itineraries.
func NewSeededItineraryStore() *ItineraryStore {
	return NewItineraryStore(seedItineraries())
}

// GetAllItineraries returns every itinerary in seed order. The returned
// slice is a copy; callers may reorder it freely.
func (s *ItineraryStore) GetAllItineraries(_ context.Context) ([]domain.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Itinerary, len(s.itineraries))
	copy(out, s.itineraries)
	return out, nil
}

// GetItineraryByID retrieves an itinerary by ID.
func (s *ItineraryStore) GetItineraryByID(_ context.Context, id string) (*domain.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	it := s.itineraries[i]
	return &it, nil
}

// GetItinerariesForPackage returns itineraries linked to the given
// catalog package, in seed order.
func (s *ItineraryStore) GetItinerariesForPackage(_ context.Context, packageID string) ([]domain.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Itinerary
	for i := range s.itineraries {
		if s.itineraries[i].PackageID == packageID {
			out = append(out, s.itineraries[i])
		}
	}
	return out, nil
}
