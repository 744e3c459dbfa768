package driving

import (
	"context"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// HistoryService exposes the recent-search history to the front-ends.
type HistoryService interface {
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error)

	// Clear removes all history records.
	Clear(ctx context.Context) error
}
