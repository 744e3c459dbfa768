package domain

import "time"

// ItineraryStop is a single stop within a traveler-authored itinerary.
type ItineraryStop struct {
	// Day is the 1-based day the stop belongs to.
	Day int

	// Title is the stop headline ("Sunrise at Fira", "Tsukiji market").
	Title string

	// Note is free-text advice from the author.
	Note string
}

// Itinerary is a traveler-authored trip write-up browsable alongside
// the package catalog. Itineraries are seed content like the catalog;
// the storefront never creates or edits them.
type Itinerary struct {
	// ID is the unique identifier for the itinerary.
	ID string

	// Title is the itinerary headline.
	Title string

	// Author is the display name of the traveler who wrote it.
	Author string

	// Destination and Country locate the trip; they use the same
	// free-text conventions as TravelPackage and take part in the
	// same destination substring search.
	Destination string
	Country     string

	// DurationDays is the trip length in days.
	DurationDays int

	// Likes is the number of reader endorsements.
	Likes int

	// PackageID optionally links the itinerary to a catalog package.
	PackageID string

	// Stops are the day-by-day entries in trip order.
	Stops []ItineraryStop

	// PostedAt is when the itinerary was published.
	PostedAt time.Time
}

// MatchesDestination reports whether the trimmed, case-folded query
// appears in the itinerary's destination or country. Empty queries
// match everything, mirroring the package destination filter.
func (i *Itinerary) MatchesDestination(query string) bool {
	return matchesLocation(query, i.Destination, i.Country)
}
