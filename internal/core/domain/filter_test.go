package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNewFilterRequest_Defaults tests that a fresh request carries the
// default price bounds
func TestNewFilterRequest_Defaults(t *testing.T) {
	r := NewFilterRequest()

	assert.Equal(t, DefaultPriceFloor, r.PriceMin)
	assert.Equal(t, DefaultPriceCeiling, r.PriceMax)
	assert.Empty(t, r.Destination)
	assert.Nil(t, r.DateFrom)
	assert.Nil(t, r.DateTo)
	assert.Equal(t, IntentNone, r.Intent)
}

// TestFilterRequest_HasActiveFilters_Defaults tests the boundary where
// no field deviates from its default
func TestFilterRequest_HasActiveFilters_Defaults(t *testing.T) {
	r := FilterRequest{Destination: "", PriceMin: 0, PriceMax: 50000}

	assert.False(t, r.HasActiveFilters())
}

// TestFilterRequest_HasActiveFilters tests each field that activates
// the filtered view
func TestFilterRequest_HasActiveFilters(t *testing.T) {
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*FilterRequest)
		want   bool
	}{
		{"destination set", func(r *FilterRequest) { r.Destination = "Paris" }, true},
		{"destination whitespace only", func(r *FilterRequest) { r.Destination = "   " }, false},
		{"price floor raised", func(r *FilterRequest) { r.PriceMin = 1 }, true},
		{"price ceiling lowered", func(r *FilterRequest) { r.PriceMax = 49999 }, true},
		{"date from set", func(r *FilterRequest) { r.DateFrom = &date }, true},
		{"date to set", func(r *FilterRequest) { r.DateTo = &date }, true},
		{"duration alone is not a filter", func(r *FilterRequest) { r.DurationDays = 7 }, false},
		{"intent alone is not a filter", func(r *FilterRequest) { r.Intent = IntentLuxury }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewFilterRequest()
			tt.mutate(&r)
			assert.Equal(t, tt.want, r.HasActiveFilters())
		})
	}
}

// TestMatchesLocation tests the case-insensitive OR semantics over
// destination and country
func TestMatchesLocation(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		destination string
		country     string
		want        bool
	}{
		{"empty query matches", "", "Cancún", "México", true},
		{"whitespace query matches", "  ", "Cancún", "México", true},
		{"destination substring", "can", "Cancún", "México", true},
		{"country substring", "méxico", "Cancún", "México", true},
		{"case-insensitive destination", "CANCÚN", "Cancún", "México", true},
		{"query trimmed before match", "  méxico  ", "Cancún", "México", true},
		{"neither field matches", "tokyo", "Cancún", "México", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesLocation(tt.query, tt.destination, tt.country)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestTravelIntent_IsValid tests intent validation
func TestTravelIntent_IsValid(t *testing.T) {
	assert.True(t, IntentNone.IsValid())
	assert.True(t, IntentLuxury.IsValid())
	assert.True(t, IntentValue.IsValid())
	assert.False(t, TravelIntent("budget").IsValid())
}

// TestAllTravelIntents tests the selectable intent list
func TestAllTravelIntents(t *testing.T) {
	intents := AllTravelIntents()

	assert.Len(t, intents, 3)
	assert.Equal(t, IntentNone, intents[0])
}
