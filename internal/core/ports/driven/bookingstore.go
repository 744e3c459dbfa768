package driven

import (
	"context"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// BookingStore keeps booking confirmations for the current session.
// Confirmations are deliberately NOT persisted across restarts; the
// storefront has no real booking backend.
type BookingStore interface {
	// SaveConfirmation records a confirmation.
	SaveConfirmation(ctx context.Context, conf domain.BookingConfirmation) error

	// ListConfirmations returns confirmations in creation order.
	ListConfirmations(ctx context.Context) ([]domain.BookingConfirmation, error)
}
