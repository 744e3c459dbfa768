package tui

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrMissingItineraryService is returned when the itinerary service is not provided.
var ErrMissingItineraryService = errors.New("tui: itinerary service is required")

// ErrMissingCheckoutService is returned when the checkout service is not provided.
var ErrMissingCheckoutService = errors.New("tui: checkout service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
