package cli

import (
	"bytes"

	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driven/storage/memory"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/services"
)

// setupTestServices wires the commands to services backed by the seeded
// in-memory stores. The returned cleanup unwires them again.
func setupTestServices() func() {
	catalog := memory.NewSeededCatalogStore()
	itineraries := memory.NewSeededItineraryStore()
	bookings := memory.NewBookingStore()

	SetServices(Services{
		Catalog:   services.NewCatalogService(catalog, nil),
		Itinerary: services.NewItineraryService(itineraries),
		Checkout:  services.NewCheckoutService(catalog, bookings),
		History:   services.NewHistoryService(nil),
	})

	return func() {
		SetServices(Services{})
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
