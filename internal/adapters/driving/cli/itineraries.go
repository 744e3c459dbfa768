package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

var itinerariesPackageID string

var itinerariesCmd = &cobra.Command{
	Use:   "itineraries [destination]",
	Short: "Browse traveler-authored itineraries",
	Long: `Lists itineraries written by other travelers, most liked first.
An optional destination narrows the list the same way catalog search
does (matching city or country, case-insensitively).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runItineraries,
}

var itinerariesShowCmd = &cobra.Command{
	Use:   "show <itinerary-id>",
	Short: "Show an itinerary day by day",
	Args:  cobra.ExactArgs(1),
	RunE:  runItinerariesShow,
}

func init() {
	itinerariesCmd.Flags().StringVar(&itinerariesPackageID, "package", "", "only itineraries linked to this package ID")
	itinerariesCmd.AddCommand(itinerariesShowCmd)
	rootCmd.AddCommand(itinerariesCmd)
}

func runItineraries(cmd *cobra.Command, args []string) error {
	if itineraryService == nil {
		return errors.New("itinerary service not configured")
	}

	ctx := context.Background()

	var itineraries []domain.Itinerary
	var err error
	if itinerariesPackageID != "" {
		itineraries, err = itineraryService.ForPackage(ctx, itinerariesPackageID)
	} else {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		itineraries, err = itineraryService.List(ctx, query)
	}
	if err != nil {
		return err
	}

	if len(itineraries) == 0 {
		cmd.Println("No itineraries found.")
		return nil
	}

	cmd.Println("Itineraries:")
	cmd.Println()
	for i := range itineraries {
		it := &itineraries[i]
		cmd.Printf("  [%d] %s\n", i+1, it.Title)
		cmd.Printf("      %s, %s · %d days · by %s · %d likes\n",
			it.Destination, it.Country, it.DurationDays, it.Author, it.Likes)
		cmd.Printf("      ID: %s\n", it.ID)
		cmd.Println()
	}

	return nil
}

func runItinerariesShow(cmd *cobra.Command, args []string) error {
	if itineraryService == nil {
		return errors.New("itinerary service not configured")
	}

	it, err := itineraryService.ItineraryByID(context.Background(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("%s\n", it.Title)
	cmd.Printf("%s, %s · %d days · by %s · %d likes\n", it.Destination, it.Country, it.DurationDays, it.Author, it.Likes)
	cmd.Println()
	for _, stop := range it.Stops {
		cmd.Printf("  Day %d: %s\n", stop.Day, stop.Title)
		if stop.Note != "" {
			cmd.Printf("         %s\n", stop.Note)
		}
	}

	return nil
}
