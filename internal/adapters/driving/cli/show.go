package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// relatedPanelLimit caps the related-packages panel under the details.
const relatedPanelLimit = 4

var showCmd = &cobra.Command{
	Use:   "show <package-id>",
	Short: "Show package details",
	Long: `Shows the full details of a catalog package, including highlights,
linked traveler itineraries and related packages for the same
destination.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	ctx := context.Background()
	pkg, err := catalogService.PackageByID(ctx, args[0])
	if err != nil {
		return err
	}

	cmd.Println(pkg.Title)
	cmd.Println(strings.Repeat("=", len(pkg.Title)))
	cmd.Println()
	cmd.Printf("Destination: %s, %s\n", pkg.Destination, pkg.Country)
	cmd.Printf("Duration:    %d days\n", pkg.DurationDays)
	cmd.Printf("Price:       from %s (up to %s)\n", formatPrice(pkg.Price.Min), formatPrice(pkg.Price.Max))
	cmd.Printf("Rating:      %.1f★ (%d reviews)\n", pkg.Rating, pkg.ReviewCount)
	if len(pkg.Categories) > 0 {
		names := make([]string, 0, len(pkg.Categories))
		for _, c := range pkg.Categories {
			names = append(names, string(c))
		}
		cmd.Printf("Categories:  %s\n", strings.Join(names, ", "))
	}
	if suffix := badgeSuffix(pkg.Badge); suffix != "" {
		cmd.Printf("Badge:      %s\n", strings.TrimPrefix(suffix, " ·"))
	}
	cmd.Println()
	if pkg.Description != "" {
		cmd.Println(pkg.Description)
		cmd.Println()
	}

	if len(pkg.Highlights) > 0 {
		cmd.Println("Highlights:")
		for _, h := range pkg.Highlights {
			cmd.Printf("  - %s\n", h)
		}
		cmd.Println()
	}

	if itineraryService != nil {
		linked, err := itineraryService.ForPackage(ctx, pkg.ID)
		if err == nil && len(linked) > 0 {
			cmd.Println("Traveler itineraries:")
			for i := range linked {
				cmd.Printf("  - %s by %s (%d likes)\n", linked[i].Title, linked[i].Author, linked[i].Likes)
			}
			cmd.Println()
		}
	}

	related, err := catalogService.Related(ctx, pkg.ID, relatedPanelLimit)
	if err != nil {
		return fmt.Errorf("loading related packages: %w", err)
	}
	if len(related) > 0 {
		cmd.Println("You might also like:")
		for i := range related {
			cmd.Printf("  - %s (%s) from %s · ID: %s\n",
				related[i].Title, related[i].Destination, formatPrice(related[i].Price.Min), related[i].ID)
		}
	}

	return nil
}
