package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

var featuredJSON bool

var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "Show the curated featured packages",
	RunE:  runFeatured,
}

func init() {
	featuredCmd.Flags().BoolVar(&featuredJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(featuredCmd)
}

func runFeatured(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	featured, err := catalogService.Featured(context.Background())
	if err != nil {
		return fmt.Errorf("loading featured packages: %w", err)
	}

	if featuredJSON {
		return outputPackagesJSON(cmd, featured)
	}
	return outputPackagesTable(cmd, featured, domain.NewFilterRequest())
}
