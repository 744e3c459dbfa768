// Package domain defines the core business entities for Wayfarer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TravelPackage: A bookable travel package in the catalog
//   - FilterRequest: A storefront search/filter query
//   - Itinerary: A traveler-authored trip itinerary
//   - BookingDraft: Checkout state collected across the wizard steps
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
