// Package cli implements the wayfarer command-line interface using
// cobra. Commands render through cmd.Printf so output can be captured
// in tests.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driving"
	"github.com/wayfarer-labs/wayfarer-cli/internal/logger"
)

// version is the build version, overridden via ldflags.
var version = "dev"

// Services used by the commands. Wired once at startup via SetServices.
var (
	catalogService   driving.CatalogService
	itineraryService driving.ItineraryService
	checkoutService  driving.CheckoutService
	historyService   driving.HistoryService
	configStore      driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wayfarer",
	Short: "Browse and book travel packages from your terminal",
	Long: `Wayfarer is a terminal storefront for travel packages.

Search the catalog by destination, price range and travel intent,
browse traveler itineraries, and walk through a booking checkout
without leaving your shell.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Services bundles everything the commands need.
type Services struct {
	Catalog   driving.CatalogService
	Itinerary driving.ItineraryService
	Checkout  driving.CheckoutService
	History   driving.HistoryService
	Config    driven.ConfigStore
}

// SetServices wires the storefront services into the command tree.
func SetServices(s Services) {
	catalogService = s.Catalog
	itineraryService = s.Itinerary
	checkoutService = s.Checkout
	historyService = s.History
	configStore = s.Config
}

// SetVersion overrides the reported build version.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}
