package domain

import "time"

// SearchRecord is an entry in the recent-search history.
type SearchRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// Query is the destination text the user searched for.
	Query string

	// PriceMin and PriceMax are the bounds that were applied.
	PriceMin float64
	PriceMax float64

	// Intent is the travel intent that was applied, if any.
	Intent TravelIntent

	// ResultCount is how many packages the search returned.
	ResultCount int

	// SearchedAt is when the search ran.
	SearchedAt time.Time
}
