package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

var (
	searchLimit    int
	searchJSON     bool
	searchMinPrice float64
	searchMaxPrice float64
	searchIntent   string
)

var searchCmd = &cobra.Command{
	Use:   "search [destination]",
	Short: "Search the travel-package catalog",
	Long: `Searches the catalog by destination, price range and travel intent.

The destination matches against both the destination city and the
country, case-insensitively. Results are ranked by relevance
(rating weighted by review volume). With no arguments, the curated
featured selection is shown instead.

Travel intents:
  luxo            - luxury packages only
  custo-beneficio - best value for money`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = config default)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().Float64Var(&searchMinPrice, "min-price", domain.DefaultPriceFloor, "minimum entry price")
	searchCmd.Flags().Float64Var(&searchMaxPrice, "max-price", domain.DefaultPriceCeiling, "maximum entry price")
	searchCmd.Flags().StringVar(&searchIntent, "intent", "", "travel intent (luxo, custo-beneficio)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	req := domain.NewFilterRequest()
	if len(args) > 0 {
		req.Destination = args[0]
	}
	req.PriceMin = searchMinPrice
	req.PriceMax = searchMaxPrice

	if searchIntent != "" {
		intent := domain.TravelIntent(searchIntent)
		if !intent.IsValid() {
			return fmt.Errorf("%w: unknown travel intent %q", domain.ErrInvalidInput, searchIntent)
		}
		req.Intent = intent
	}

	results, err := catalogService.Search(context.Background(), req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	limit := searchLimit
	if limit <= 0 && configStore != nil {
		limit = configStore.GetInt("search.default_limit")
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if searchJSON {
		return outputPackagesJSON(cmd, results)
	}
	return outputPackagesTable(cmd, results, req)
}

func outputPackagesJSON(cmd *cobra.Command, packages []domain.TravelPackage) error {
	data, err := json.MarshalIndent(packages, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputPackagesTable(cmd *cobra.Command, packages []domain.TravelPackage, req domain.FilterRequest) error {
	if len(packages) == 0 {
		cmd.Println("No packages found.")
		return nil
	}

	if catalogService != nil && !catalogService.HasActiveFilters(req) && req.Intent == domain.IntentNone {
		cmd.Println("Featured packages:")
	} else {
		cmd.Println("Results:")
	}
	cmd.Println()

	for i := range packages {
		pkg := &packages[i]
		cmd.Printf("  [%d] %s\n", i+1, pkg.Title)
		cmd.Printf("      %s, %s · %d days · from %s\n",
			pkg.Destination, pkg.Country, pkg.DurationDays, formatPrice(pkg.Price.Min))
		cmd.Printf("      %.1f★ (%d reviews)%s\n", pkg.Rating, pkg.ReviewCount, badgeSuffix(pkg.Badge))
		cmd.Printf("      ID: %s\n", pkg.ID)
		cmd.Println()
	}

	return nil
}

// formatPrice renders a BRL price without decimal noise, using the
// configured currency symbol if one is set.
func formatPrice(v float64) string {
	currency := "R$"
	if configStore != nil {
		if c := configStore.GetString("ui.currency"); c != "" {
			currency = c
		}
	}
	return fmt.Sprintf("%s %s", currency, formatAmount(v))
}

// formatAmount groups thousands with dots, Brazilian style.
func formatAmount(v float64) string {
	whole := fmt.Sprintf("%.0f", v)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func badgeSuffix(badge domain.Badge) string {
	if badge == domain.BadgeNone {
		return ""
	}
	return fmt.Sprintf(" · %s", badge.Description())
}
