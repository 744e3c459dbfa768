package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCatalog indicates the catalog store has no packages.
	// The storefront cannot render without a seeded catalog.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// Checkout Errors.

	// ErrBookingStepIncomplete indicates the current wizard step is
	// missing required fields.
	ErrBookingStepIncomplete = errors.New("booking step incomplete")

	// ErrBookingNotConfirmable indicates the draft cannot be confirmed
	// because earlier steps were skipped.
	ErrBookingNotConfirmable = errors.New("booking not confirmable")

	// ErrInvalidParticipants indicates a participant count below 1.
	ErrInvalidParticipants = errors.New("participant count must be at least 1")

	// ErrInvalidTravelDate indicates a travel date in the past.
	ErrInvalidTravelDate = errors.New("travel date must be in the future")
)
