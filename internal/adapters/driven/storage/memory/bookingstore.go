package memory

import (
	"context"
	"sync"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driven"
)

// Ensure BookingStore implements the interface.
var _ driven.BookingStore = (*BookingStore)(nil)

// BookingStore is an in-memory implementation of driven.BookingStore.
// Confirmations live for the process lifetime only.
type BookingStore struct {
	mu            sync.RWMutex
	confirmations []domain.BookingConfirmation
}

// NewBookingStore creates a new in-memory booking store.
func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

// SaveConfirmation appends a confirmed booking.
func (s *BookingStore) SaveConfirmation(_ context.Context, conf domain.BookingConfirmation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmations = append(s.confirmations, conf)
	return nil
}

// ListConfirmations returns all confirmations in the order they were
// saved.
func (s *BookingStore) ListConfirmations(_ context.Context) ([]domain.BookingConfirmation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.BookingConfirmation, len(s.confirmations))
	copy(out, s.confirmations)
	return out, nil
}
