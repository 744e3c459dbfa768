package domain

import (
	"strings"
	"time"
)

// DefaultPriceFloor and DefaultPriceCeiling are the default filter
// bounds. A request using exactly these bounds (with no other fields
// set) counts as "no active filters" and callers fall back to the
// curated/featured view.
const (
	DefaultPriceFloor   = 0.0
	DefaultPriceCeiling = 50000.0
)

// TravelIntent is a coarse user preference applied as a post-filter
// narrowing signal, independent of the structured filter fields.
type TravelIntent string

// Available travel intents.
const (
	// IntentNone applies no narrowing.
	IntentNone TravelIntent = ""

	// IntentLuxury keeps packages tagged or badged as luxury.
	IntentLuxury TravelIntent = "luxo"

	// IntentValue keeps packages priced below average or badged as
	// best value.
	IntentValue TravelIntent = "custo-beneficio"
)

// IsValid returns true if the intent is recognised.
func (i TravelIntent) IsValid() bool {
	switch i {
	case IntentNone, IntentLuxury, IntentValue:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (i TravelIntent) String() string {
	return string(i)
}

// Description returns a human-readable label for display.
func (i TravelIntent) Description() string {
	switch i {
	case IntentLuxury:
		return "Luxury"
	case IntentValue:
		return "Value for Money"
	case IntentNone:
		return "Any"
	default:
		return "Any"
	}
}

// AllTravelIntents returns the selectable intents in display order.
func AllTravelIntents() []TravelIntent {
	return []TravelIntent{IntentNone, IntentLuxury, IntentValue}
}

// FilterRequest is a storefront search/filter query. A fresh value is
// built per user interaction and passed down to the catalog service;
// there is no shared mutable filter state.
type FilterRequest struct {
	// Destination is a free-text substring filter matched against a
	// package's destination or country. Empty means no filter.
	Destination string

	// PriceMin and PriceMax are inclusive bounds compared against a
	// package's minimum price only.
	PriceMin float64
	PriceMax float64

	// DateFrom and DateTo bound the desired travel window. The catalog
	// carries no per-package availability yet, so the date stage of the
	// filter pipeline passes everything through; the bounds still count
	// towards HasActiveFilters.
	DateFrom *time.Time
	DateTo   *time.Time

	// DurationDays is the target trip length. Carried on the request
	// but not applied by any filter stage; whether to wire it in is a
	// product decision, not an implementation detail.
	DurationDays int

	// Intent is the optional travel-intent narrowing signal.
	Intent TravelIntent
}

// NewFilterRequest returns a request with the default bounds set.
func NewFilterRequest() FilterRequest {
	return FilterRequest{
		PriceMin: DefaultPriceFloor,
		PriceMax: DefaultPriceCeiling,
	}
}

// DestinationQuery returns the trimmed destination filter text.
func (r FilterRequest) DestinationQuery() string {
	return strings.TrimSpace(r.Destination)
}

// matchesLocation reports whether the trimmed query is a
// case-insensitive substring of either location field. An empty query
// matches everything.
func matchesLocation(query, destination, country string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(destination), q) ||
		strings.Contains(strings.ToLower(country), q)
}

// HasActiveFilters reports whether any filter field deviates from its
// default. Callers use this to decide between filtered results and the
// curated/featured default view.
func (r FilterRequest) HasActiveFilters() bool {
	if r.DestinationQuery() != "" {
		return true
	}
	if r.DateFrom != nil || r.DateTo != nil {
		return true
	}
	if r.PriceMin > DefaultPriceFloor {
		return true
	}
	if r.PriceMax < DefaultPriceCeiling {
		return true
	}
	return false
}
