// Package tui provides the interactive terminal storefront for wayfarer.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog searches and ranks travel packages.
	Catalog driving.CatalogService

	// Itinerary serves traveler-authored itineraries.
	Itinerary driving.ItineraryService

	// Checkout drives the booking wizard.
	Checkout driving.CheckoutService

	// History exposes recent searches. Optional.
	History driving.HistoryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	catalog driving.CatalogService,
	itinerary driving.ItineraryService,
	checkout driving.CheckoutService,
) *Ports {
	return &Ports{
		Catalog:   catalog,
		Itinerary: itinerary,
		Checkout:  checkout,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Itinerary == nil {
		return ErrMissingItineraryService
	}
	if p.Checkout == nil {
		return ErrMissingCheckoutService
	}
	return nil
}
