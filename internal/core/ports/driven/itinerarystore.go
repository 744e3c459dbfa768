package driven

import (
	"context"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// ItineraryStore provides read access to traveler-authored itineraries.
// Like the catalog, itineraries are seed content and immutable.
type ItineraryStore interface {
	// GetAllItineraries returns every itinerary in seed order.
	GetAllItineraries(ctx context.Context) ([]domain.Itinerary, error)

	// GetItineraryByID retrieves an itinerary by ID.
	// Returns domain.ErrNotFound for unknown IDs.
	GetItineraryByID(ctx context.Context, id string) (*domain.Itinerary, error)

	// GetItinerariesForPackage returns itineraries linked to a package.
	GetItinerariesForPackage(ctx context.Context, packageID string) ([]domain.Itinerary, error)
}
