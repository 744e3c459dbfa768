package driven

import (
	"context"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// SearchHistoryStore persists recent searches.
// Backed by SQLite for metadata storage.
type SearchHistoryStore interface {
	// Record stores a search record.
	Record(ctx context.Context, rec domain.SearchRecord) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
