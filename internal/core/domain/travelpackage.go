package domain

import "fmt"

// PriceRange is a closed price interval for a package, in a single
// currency. Catalog filtering compares Min only ("starting from" pricing).
type PriceRange struct {
	// Min is the lowest bookable price.
	Min float64

	// Max is the highest bookable price.
	Max float64
}

// Badge is a single promotional tag attached to a package.
// Two values (BadgeLuxury, BadgeValue) double as travel-intent
// matching signals.
type Badge string

// Available badges.
const (
	// BadgeNone marks a package without a badge.
	BadgeNone Badge = ""

	// BadgeBestseller marks top-selling packages.
	BadgeBestseller Badge = "bestseller"

	// BadgeFlash marks limited-time flash offers.
	BadgeFlash Badge = "flash"

	// BadgeLuxury marks premium packages.
	BadgeLuxury Badge = "luxury"

	// BadgeValue marks best value-for-money packages.
	BadgeValue Badge = "value"

	// BadgeVerified marks operator-verified packages.
	BadgeVerified Badge = "verified"

	// BadgeNew marks recently added packages.
	BadgeNew Badge = "new"

	// BadgeFeatured marks editorially promoted packages.
	BadgeFeatured Badge = "featured"
)

// IsValid returns true if the badge is recognised.
func (b Badge) IsValid() bool {
	switch b {
	case BadgeNone, BadgeBestseller, BadgeFlash, BadgeLuxury,
		BadgeValue, BadgeVerified, BadgeNew, BadgeFeatured:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b Badge) String() string {
	return string(b)
}

// Description returns a human-readable label for display.
func (b Badge) Description() string {
	switch b {
	case BadgeBestseller:
		return "Bestseller"
	case BadgeFlash:
		return "Flash Offer"
	case BadgeLuxury:
		return "Luxury"
	case BadgeValue:
		return "Best Value"
	case BadgeVerified:
		return "Verified"
	case BadgeNew:
		return "New"
	case BadgeFeatured:
		return "Featured"
	case BadgeNone:
		return ""
	default:
		return ""
	}
}

// Category classifies a package by trip style.
type Category string

// Available categories.
const (
	CategoryRomantic   Category = "romantic"
	CategoryCultural   Category = "cultural"
	CategoryLuxury     Category = "luxury"
	CategoryAdventure  Category = "adventure"
	CategoryGastronomy Category = "gastronomy"
	CategoryBeach      Category = "beach"
	CategoryFamily     Category = "family"
	CategoryNature     Category = "nature"
)

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryRomantic, CategoryCultural, CategoryLuxury, CategoryAdventure,
		CategoryGastronomy, CategoryBeach, CategoryFamily, CategoryNature:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// PriceComparison positions a package's pricing against the market
// average for its destination.
type PriceComparison string

// Available price comparisons.
const (
	// PriceBelow is priced below the destination average.
	PriceBelow PriceComparison = "below"

	// PriceAverage is priced around the destination average.
	PriceAverage PriceComparison = "average"

	// PriceAbove is priced above the destination average.
	PriceAbove PriceComparison = "above"
)

// TravelPackage is a bookable travel package in the catalog.
// The catalog is seeded once at startup and never mutated afterwards.
type TravelPackage struct {
	// ID is the unique identifier for the package.
	ID string

	// Title is the human-readable package name.
	Title string

	// Destination is the destination city or region.
	Destination string

	// Country is the destination country.
	Country string

	// Description is the storefront description text.
	Description string

	// Price is the bookable price range. Filtering uses Price.Min only.
	Price PriceRange

	// DurationDays is the trip length in days.
	DurationDays int

	// Rating is the average review rating in [0, 5].
	Rating float64

	// ReviewCount is the number of reviews backing Rating.
	ReviewCount int

	// Categories are the trip-style tags. Order is irrelevant.
	Categories []Category

	// Badge is the optional promotional tag.
	Badge Badge

	// Featured marks the package as promotable on the home view.
	Featured bool

	// PriceComparison positions pricing against the destination average.
	PriceComparison PriceComparison

	// Highlights are short selling points shown on the detail view.
	Highlights []string

	// ImageURL points at the cover image asset.
	ImageURL string
}

// Validate checks the catalog invariants for a package.
func (p *TravelPackage) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: package id is empty", ErrInvalidInput)
	}
	if p.Price.Min > p.Price.Max {
		return fmt.Errorf("%w: price min %.2f exceeds max %.2f", ErrInvalidInput, p.Price.Min, p.Price.Max)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: rating %.2f outside [0, 5]", ErrInvalidInput, p.Rating)
	}
	if p.ReviewCount < 0 {
		return fmt.Errorf("%w: review count %d is negative", ErrInvalidInput, p.ReviewCount)
	}
	if p.DurationDays < 1 {
		return fmt.Errorf("%w: duration %d days is below 1", ErrInvalidInput, p.DurationDays)
	}
	if !p.Badge.IsValid() {
		return fmt.Errorf("%w: unknown badge %q", ErrInvalidInput, p.Badge)
	}
	for _, c := range p.Categories {
		if !c.IsValid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, c)
		}
	}
	return nil
}

// HasCategory returns true if the package carries the given category.
func (p *TravelPackage) HasCategory(c Category) bool {
	for _, have := range p.Categories {
		if have == c {
			return true
		}
	}
	return false
}

// MatchesDestination reports whether the trimmed, case-folded query
// appears in the package's destination or country. Empty queries match
// everything.
func (p *TravelPackage) MatchesDestination(query string) bool {
	return matchesLocation(query, p.Destination, p.Country)
}

// SharesLocation returns true if both packages have the same destination
// or the same country. Used for related-package lookups.
func (p *TravelPackage) SharesLocation(other *TravelPackage) bool {
	return p.Destination == other.Destination || p.Country == other.Country
}
