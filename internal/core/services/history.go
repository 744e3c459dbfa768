package services

import (
	"context"
	"fmt"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// defaultHistoryLimit caps how many records Recent returns when the
// caller passes a non-positive limit.
const defaultHistoryLimit = 20

// HistoryService exposes the recent-search history.
type HistoryService struct {
	store driven.SearchHistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.SearchHistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns up to limit records, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if s.store == nil {
		return []domain.SearchRecord{}, nil
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	recs, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent searches: %w", err)
	}
	return recs, nil
}

// Clear removes all history records.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
