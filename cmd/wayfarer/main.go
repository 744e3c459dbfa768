// Command wayfarer is a terminal storefront for travel packages.
// It wires the storage adapters into the core services and hands the
// assembled service set to the CLI command tree.
package main

import (
	"fmt"
	"os"

	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driven/config/file"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driven/storage/memory"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driven/storage/sqlite"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/cli"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/services"
	"github.com/wayfarer-labs/wayfarer-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	// Search history persists in SQLite. The storefront still works
	// without it, so a store failure only disables history.
	var historyStore driven.SearchHistoryStore
	sqliteStore, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("Search history unavailable: %v", err)
	} else {
		historyStore = sqliteStore
		defer func() {
			if cerr := sqliteStore.Close(); cerr != nil {
				logger.Warn("Closing history store: %v", cerr)
			}
		}()
	}

	catalogStore := memory.NewSeededCatalogStore()
	itineraryStore := memory.NewSeededItineraryStore()
	bookingStore := memory.NewBookingStore()

	catalogService := services.NewCatalogService(catalogStore, historyStore)
	itineraryService := services.NewItineraryService(itineraryStore)
	checkoutService := services.NewCheckoutService(catalogStore, bookingStore)
	historyService := services.NewHistoryService(historyStore)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Catalog:   catalogService,
		Itinerary: itineraryService,
		Checkout:  checkoutService,
		History:   historyService,
		Config:    configStore,
	})

	return cli.Execute()
}
