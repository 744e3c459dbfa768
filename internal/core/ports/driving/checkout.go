package driving

import (
	"context"
	"time"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// CheckoutService drives the multi-step booking wizard:
// date, participants, contact, payment, confirmation.
// Each Set method validates its own step and leaves the draft
// untouched on failure.
type CheckoutService interface {
	// Start begins a draft for a package.
	// Returns domain.ErrNotFound for unknown package IDs.
	Start(ctx context.Context, packageID string) (*domain.BookingDraft, error)

	// SetTravelDate records the departure date on the draft.
	SetTravelDate(draft *domain.BookingDraft, date time.Time) error

	// SetParticipants records the traveler count on the draft.
	SetParticipants(draft *domain.BookingDraft, count int) error

	// SetContact records the lead traveler's contact details.
	SetContact(draft *domain.BookingDraft, contact domain.ContactInfo) error

	// SetPayment records the payment details.
	SetPayment(draft *domain.BookingDraft, payment domain.PaymentDetails) error

	// Confirm validates the whole draft and produces a confirmation.
	// Returns domain.ErrBookingNotConfirmable when steps are missing.
	Confirm(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingConfirmation, error)
}
