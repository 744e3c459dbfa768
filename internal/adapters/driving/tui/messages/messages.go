// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// SearchRequested is a command to perform a catalog search.
type SearchRequested struct {
	Request domain.FilterRequest
}

// SearchCompleted carries ranked search results back to the model.
type SearchCompleted struct {
	Packages []domain.TravelPackage
	Err      error
}

// PackageSelected is sent when a package is chosen from a list.
type PackageSelected struct {
	Package domain.TravelPackage
}

// RelatedLoaded carries the related-packages panel for a detail view.
type RelatedLoaded struct {
	Packages []domain.TravelPackage
	Err      error
}

// ItinerariesLoaded carries the itinerary list from the service.
type ItinerariesLoaded struct {
	Itineraries []domain.Itinerary
	Err         error
}

// CheckoutRequested starts the booking wizard for a package.
type CheckoutRequested struct {
	Package domain.TravelPackage
}

// BookingConfirmed carries the checkout outcome.
type BookingConfirmed struct {
	Confirmation *domain.BookingConfirmation
	Err          error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the destination search view.
	ViewSearch
	// ViewPackageDetail shows a single package with related items.
	ViewPackageDetail
	// ViewItineraries lists traveler-authored itineraries.
	ViewItineraries
	// ViewCheckout is the booking wizard.
	ViewCheckout
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewPackageDetail:
		return "package_detail"
	case ViewItineraries:
		return "itineraries"
	case ViewCheckout:
		return "checkout"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
