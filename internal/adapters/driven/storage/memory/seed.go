package memory

import (
	"time"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// seedPackages returns the built-in storefront catalog. Prices are in
// BRL, "starting from" per person.
func seedPackages() []domain.TravelPackage {
	return []domain.TravelPackage{
		{
			ID:              "pkg-001",
			Title:           "Cancún All Inclusive",
			Destination:     "Cancún",
			Country:         "México",
			Description:     "Seven nights on the Riviera Maya with unlimited dining, white-sand beaches and a day trip to Chichén Itzá.",
			Price:           domain.PriceRange{Min: 4890, Max: 12400},
			DurationDays:    7,
			Rating:          4.8,
			ReviewCount:     1243,
			Categories:      []domain.Category{domain.CategoryBeach, domain.CategoryFamily},
			Badge:           domain.BadgeBestseller,
			Featured:        true,
			PriceComparison: domain.PriceBelow,
			Highlights: []string{
				"All-inclusive beachfront resort",
				"Chichén Itzá guided tour",
				"Round-trip transfers included",
			},
			ImageURL: "https://images.wayfarer.example/pkg-001.jpg",
		},
		{
			ID:              "pkg-002",
			Title:           "Paris & Loire Valley Romance",
			Destination:     "Paris",
			Country:         "France",
			Description:     "Five nights between the City of Light and Loire castles, with a Seine dinner cruise and a private Louvre visit.",
			Price:           domain.PriceRange{Min: 11200, Max: 19800},
			DurationDays:    8,
			Rating:          4.9,
			ReviewCount:     587,
			Categories:      []domain.Category{domain.CategoryRomantic, domain.CategoryLuxury},
			Badge:           domain.BadgeLuxury,
			Featured:        true,
			PriceComparison: domain.PriceAbove,
			Highlights: []string{
				"Seine dinner cruise",
				"Private Louvre tour",
				"Château d'Amboise stay",
			},
			ImageURL: "https://images.wayfarer.example/pkg-002.jpg",
		},
		{
			ID:              "pkg-003",
			Title:           "Fernando de Noronha Escape",
			Destination:     "Fernando de Noronha",
			Country:         "Brazil",
			Description:     "Four nights on the archipelago with snorkelling at Baía do Sancho and a sunset boat tour.",
			Price:           domain.PriceRange{Min: 6750, Max: 9300},
			DurationDays:    5,
			Rating:          4.9,
			ReviewCount:     892,
			Categories:      []domain.Category{domain.CategoryBeach, domain.CategoryNature},
			Badge:           domain.BadgeFeatured,
			Featured:        true,
			PriceComparison: domain.PriceAverage,
			Highlights: []string{
				"Baía do Sancho snorkelling",
				"Sunset boat tour",
				"Environmental fee included",
			},
			ImageURL: "https://images.wayfarer.example/pkg-003.jpg",
		},
		{
			ID:              "pkg-004",
			Title:           "Salvador Historic & Carnival",
			Destination:     "Salvador",
			Country:         "Brazil",
			Description:     "Six nights in the Pelourinho with capoeira shows, Bahian cooking class and the Bonfim church circuit.",
			Price:           domain.PriceRange{Min: 2390, Max: 4100},
			DurationDays:    6,
			Rating:          4.5,
			ReviewCount:     1876,
			Categories:      []domain.Category{domain.CategoryCultural, domain.CategoryGastronomy},
			Badge:           domain.BadgeValue,
			Featured:        false,
			PriceComparison: domain.PriceBelow,
			Highlights: []string{
				"Pelourinho walking tour",
				"Bahian cooking class",
				"Capoeira performance",
			},
			ImageURL: "https://images.wayfarer.example/pkg-004.jpg",
		},
		{
			ID:              "pkg-005",
			Title:           "Patagonia Trekking Expedition",
			Destination:     "El Calafate",
			Country:         "Argentina",
			Description:     "Eight days across Perito Moreno and Fitz Roy trails with certified mountain guides and refugio stays.",
			Price:           domain.PriceRange{Min: 8900, Max: 14500},
			DurationDays:    8,
			Rating:          4.7,
			ReviewCount:     434,
			Categories:      []domain.Category{domain.CategoryAdventure, domain.CategoryNature},
			Badge:           domain.BadgeNone,
			Featured:        false,
			PriceComparison: domain.PriceAverage,
			Highlights: []string{
				"Perito Moreno glacier walk",
				"Fitz Roy base trek",
				"Certified mountain guides",
			},
			ImageURL: "https://images.wayfarer.example/pkg-005.jpg",
		},
		{
			ID:              "pkg-006",
			Title:           "Maldives Overwater Retreat",
			Destination:     "Malé",
			Country:         "Maldives",
			Description:     "Five nights in an overwater villa with house-reef diving, spa credit and seaplane transfers.",
			Price:           domain.PriceRange{Min: 21500, Max: 38900},
			DurationDays:    6,
			Rating:          4.9,
			ReviewCount:     312,
			Categories:      []domain.Category{domain.CategoryLuxury, domain.CategoryRomantic, domain.CategoryBeach},
			Badge:           domain.BadgeLuxury,
			Featured:        true,
			PriceComparison: domain.PriceAbove,
			Highlights: []string{
				"Overwater villa with private pool",
				"House-reef diving",
				"Seaplane transfers",
			},
			ImageURL: "https://images.wayfarer.example/pkg-006.jpg",
		},
		{
			ID:              "pkg-007",
			Title:           "Lisbon & Porto Flavours",
			Destination:     "Lisbon",
			Country:         "Portugal",
			Description:     "Seven nights between Lisbon and Porto with fado dinner, Douro valley wine tasting and pastel de nata workshop.",
			Price:           domain.PriceRange{Min: 7300, Max: 11900},
			DurationDays:    7,
			Rating:          4.6,
			ReviewCount:     758,
			Categories:      []domain.Category{domain.CategoryGastronomy, domain.CategoryCultural},
			Badge:           domain.BadgeNew,
			Featured:        false,
			PriceComparison: domain.PriceAverage,
			Highlights: []string{
				"Douro valley wine tasting",
				"Fado dinner in Alfama",
				"Pastel de nata workshop",
			},
			ImageURL: "https://images.wayfarer.example/pkg-007.jpg",
		},
		{
			ID:              "pkg-008",
			Title:           "Rio de Janeiro Essentials",
			Destination:     "Rio de Janeiro",
			Country:         "Brazil",
			Description:     "Four nights in Copacabana covering Christ the Redeemer, Sugarloaf and a Tijuca forest jeep tour.",
			Price:           domain.PriceRange{Min: 1990, Max: 3600},
			DurationDays:    4,
			Rating:          4.4,
			ReviewCount:     2651,
			Categories:      []domain.Category{domain.CategoryBeach, domain.CategoryCultural},
			Badge:           domain.BadgeFlash,
			Featured:        true,
			PriceComparison: domain.PriceBelow,
			Highlights: []string{
				"Christ the Redeemer by cog train",
				"Sugarloaf cable car",
				"Tijuca forest jeep tour",
			},
			ImageURL: "https://images.wayfarer.example/pkg-008.jpg",
		},
		{
			ID:              "pkg-009",
			Title:           "Kyoto Temples & Tea",
			Destination:     "Kyoto",
			Country:         "Japan",
			Description:     "Six nights in a machiya townhouse with tea ceremony, Fushimi Inari at dawn and a day in Nara.",
			Price:           domain.PriceRange{Min: 13800, Max: 21400},
			DurationDays:    7,
			Rating:          4.8,
			ReviewCount:     523,
			Categories:      []domain.Category{domain.CategoryCultural, domain.CategoryNature},
			Badge:           domain.BadgeVerified,
			Featured:        false,
			PriceComparison: domain.PriceAverage,
			Highlights: []string{
				"Machiya townhouse stay",
				"Tea ceremony with a master",
				"Fushimi Inari sunrise walk",
			},
			ImageURL: "https://images.wayfarer.example/pkg-009.jpg",
		},
		{
			ID:              "pkg-010",
			Title:           "Atacama Desert Stars",
			Destination:     "San Pedro de Atacama",
			Country:         "Chile",
			Description:     "Five nights in the driest desert on Earth with geysers at dawn, salt-flat lagoons and astronomy nights.",
			Price:           domain.PriceRange{Min: 5400, Max: 8700},
			DurationDays:    5,
			Rating:          4.7,
			ReviewCount:     389,
			Categories:      []domain.Category{domain.CategoryAdventure, domain.CategoryNature},
			Badge:           domain.BadgeNone,
			Featured:        false,
			PriceComparison: domain.PriceBelow,
			Highlights: []string{
				"El Tatio geysers at dawn",
				"Astronomy night with telescopes",
				"Salt-flat lagoon swim",
			},
			ImageURL: "https://images.wayfarer.example/pkg-010.jpg",
		},
		{
			ID:              "pkg-011",
			Title:           "Gramado Serra Gaúcha Getaway",
			Destination:     "Gramado",
			Country:         "Brazil",
			Description:     "Three nights in the Serra Gaúcha with chocolate factory visits, fondue nights and the Snowland park.",
			Price:           domain.PriceRange{Min: 1450, Max: 2800},
			DurationDays:    3,
			Rating:          4.3,
			ReviewCount:     1102,
			Categories:      []domain.Category{domain.CategoryRomantic, domain.CategoryFamily, domain.CategoryGastronomy},
			Badge:           domain.BadgeValue,
			Featured:        false,
			PriceComparison: domain.PriceBelow,
			Highlights: []string{
				"Chocolate factory tour",
				"Fondue dinner",
				"Lago Negro pedal boats",
			},
			ImageURL: "https://images.wayfarer.example/pkg-011.jpg",
		},
		{
			ID:              "pkg-012",
			Title:           "Safari in the Serengeti",
			Destination:     "Serengeti",
			Country:         "Tanzania",
			Description:     "Seven days of game drives across the Serengeti and Ngorongoro crater with luxury tented camps.",
			Price:           domain.PriceRange{Min: 28700, Max: 45200},
			DurationDays:    8,
			Rating:          5.0,
			ReviewCount:     97,
			Categories:      []domain.Category{domain.CategoryAdventure, domain.CategoryLuxury, domain.CategoryNature},
			Badge:           domain.BadgeLuxury,
			Featured:        false,
			PriceComparison: domain.PriceAbove,
			Highlights: []string{
				"Big Five game drives",
				"Ngorongoro crater descent",
				"Luxury tented camp",
			},
			ImageURL: "https://images.wayfarer.example/pkg-012.jpg",
		},
	}
}

// seedItineraries returns the built-in traveler-authored itineraries.
func seedItineraries() []domain.Itinerary {
	return []domain.Itinerary{
		{
			ID:           "itin-001",
			Title:        "Rio Beyond the Postcards",
			Author:       "mariana.travels",
			Destination:  "Rio de Janeiro",
			Country:      "Brazil",
			DurationDays: 5,
			Likes:        842,
			PackageID:    "pkg-008",
			PostedAt:     time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC),
			Stops: []domain.ItineraryStop{
				{Day: 1, Title: "Copacabana sunrise run", Note: "Rent a bike at Posto 4, the boardwalk is empty before 7am."},
				{Day: 2, Title: "Santa Teresa on foot", Note: "Take the bonde up, walk down via Escadaria Selarón."},
				{Day: 3, Title: "Christ the Redeemer early slot", Note: "First cog train beats the tour buses."},
				{Day: 4, Title: "Tijuca waterfalls", Note: "Cachoeira do Horto needs no guide."},
				{Day: 5, Title: "Niterói contemporary art", Note: "The MAC ferry ride is half the fun."},
			},
		},
		{
			ID:           "itin-002",
			Title:        "Noronha on a Diver's Budget",
			Author:       "deep.blue.log",
			Destination:  "Fernando de Noronha",
			Country:      "Brazil",
			DurationDays: 4,
			Likes:        617,
			PackageID:    "pkg-003",
			PostedAt:     time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
			Stops: []domain.ItineraryStop{
				{Day: 1, Title: "Baía do Sancho", Note: "Go at low tide, the ladder queue doubles after 10am."},
				{Day: 2, Title: "Two-tank dive at Laje Dois Irmãos", Note: "Book the local operator, not the resort desk."},
				{Day: 3, Title: "Praia do Leão turtle watch", Note: "Sunset side, bring water."},
				{Day: 4, Title: "Morro Dois Irmãos viewpoint", Note: "Short trail, big payoff."},
			},
		},
		{
			ID:           "itin-003",
			Title:        "Paris in Four Unhurried Days",
			Author:       "claire.sans.carte",
			Destination:  "Paris",
			Country:      "France",
			DurationDays: 4,
			Likes:        1204,
			PackageID:    "pkg-002",
			PostedAt:     time.Date(2024, 11, 19, 0, 0, 0, 0, time.UTC),
			Stops: []domain.ItineraryStop{
				{Day: 1, Title: "Marais and Île Saint-Louis", Note: "Berthillon ice cream even in winter."},
				{Day: 2, Title: "Louvre, one wing only", Note: "Pick Denon, skip the rest, leave happy."},
				{Day: 3, Title: "Montmartre before breakfast", Note: "Sacré-Cœur steps at 8am are yours alone."},
				{Day: 4, Title: "Seine by Batobus", Note: "Cheaper than the cruise, same river."},
			},
		},
		{
			ID:           "itin-004",
			Title:        "Salvador Eats: A Long Weekend",
			Author:       "tempero.na.mala",
			Destination:  "Salvador",
			Country:      "Brazil",
			DurationDays: 3,
			Likes:        498,
			PackageID:    "pkg-004",
			PostedAt:     time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC),
			Stops: []domain.ItineraryStop{
				{Day: 1, Title: "Acarajé crawl in Rio Vermelho", Note: "Dinha's stall opens at 4pm, go hungry."},
				{Day: 2, Title: "Mercado Modelo and moqueca lunch", Note: "Upstairs restaurants beat the tourist floor."},
				{Day: 3, Title: "Cooking class in Pelourinho", Note: "You grind the dendê yourself."},
			},
		},
		{
			ID:           "itin-005",
			Title:        "Atacama Without a Tour Van",
			Author:       "rutas.do.sul",
			Destination:  "San Pedro de Atacama",
			Country:      "Chile",
			DurationDays: 5,
			Likes:        356,
			PackageID:    "pkg-010",
			PostedAt:     time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			Stops: []domain.ItineraryStop{
				{Day: 1, Title: "Rent the 4x4 in Calama", Note: "Cheaper at the airport than in San Pedro."},
				{Day: 2, Title: "Valle de la Luna at sunset", Note: "Buy the park pass in town first."},
				{Day: 3, Title: "El Tatio geysers", Note: "Leave at 4:30am, dress for -10°C."},
				{Day: 4, Title: "Lagunas Escondidas de Baltinache", Note: "Gravel road, worth every rattle."},
				{Day: 5, Title: "Stargazing south of town", Note: "Any dark pull-off beats the paid tour."},
			},
		},
		{
			ID:           "itin-006",
			Title:        "Kyoto Slow: Temples Off-Peak",
			Author:       "wabi.sabi.walks",
			Destination:  "Kyoto",
			Country:      "Japan",
			DurationDays: 6,
			Likes:        731,
			PackageID:    "pkg-009",
			PostedAt:     time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC),
			Stops: []domain.ItineraryStop{
				{Day: 1, Title: "Fushimi Inari at dawn", Note: "Start 6am, torii gates empty until the upper shrine."},
				{Day: 2, Title: "Philosopher's Path north to south", Note: "Finish at Nanzen-ji aqueduct."},
				{Day: 3, Title: "Arashiyama before the crowds", Note: "Bamboo grove is a different place at 7am."},
				{Day: 4, Title: "Nara day trip", Note: "Deer crackers cost 200 yen, dignity extra."},
				{Day: 5, Title: "Nishiki market grazing", Note: "Eat standing, it's the rule."},
				{Day: 6, Title: "Tea ceremony in a private home", Note: "Book a week ahead."},
			},
		},
	}
}
