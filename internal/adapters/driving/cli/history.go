package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded searches",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of entries (0 = default)")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	records, err := historyService.Recent(context.Background(), historyLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		cmd.Println("No searches recorded yet.")
		return nil
	}

	cmd.Println("Recent searches:")
	cmd.Println()
	for i := range records {
		rec := &records[i]
		query := rec.Query
		if query == "" {
			query = "(any destination)"
		}
		cmd.Printf("  %s  %s", rec.SearchedAt.Local().Format("2006-01-02 15:04"), query)
		if rec.Intent != domain.IntentNone {
			cmd.Printf("  [%s]", rec.Intent)
		}
		cmd.Printf("  %d results\n", rec.ResultCount)
	}

	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(context.Background()); err != nil {
		return err
	}
	cmd.Println("Search history cleared.")
	return nil
}
