package driving

import (
	"context"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// ItineraryService provides traveler-itinerary browsing to the
// storefront front-ends.
type ItineraryService interface {
	// List returns itineraries matching the destination query, most
	// liked first. An empty query returns all itineraries.
	List(ctx context.Context, destinationQuery string) ([]domain.Itinerary, error)

	// ItineraryByID retrieves a single itinerary.
	// Returns domain.ErrNotFound for unknown IDs.
	ItineraryByID(ctx context.Context, id string) (*domain.Itinerary, error)

	// ForPackage returns itineraries linked to a catalog package.
	ForPackage(ctx context.Context, packageID string) ([]domain.Itinerary, error)
}
