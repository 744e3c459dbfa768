package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driving"
	"github.com/wayfarer-labs/wayfarer-cli/internal/logger"
)

// Ensure CheckoutService implements the interface.
var _ driving.CheckoutService = (*CheckoutService)(nil)

// CheckoutService drives the booking wizard. No payment is ever
// processed: Confirm validates the collected fields and mints a
// confirmation code. The clock is injectable for tests.
type CheckoutService struct {
	catalog  driven.CatalogStore
	bookings driven.BookingStore
	now      func() time.Time
}

// NewCheckoutService creates a new checkout service.
// The bookings store is optional (can be nil); confirmations are then
// returned to the caller but not retained.
func NewCheckoutService(catalog driven.CatalogStore, bookings driven.BookingStore) *CheckoutService {
	return &CheckoutService{
		catalog:  catalog,
		bookings: bookings,
		now:      time.Now,
	}
}

// WithClock overrides the service clock. Used by tests.
func (s *CheckoutService) WithClock(now func() time.Time) *CheckoutService {
	s.now = now
	return s
}

// Start begins a draft for a package.
func (s *CheckoutService) Start(ctx context.Context, packageID string) (*domain.BookingDraft, error) {
	pkg, err := s.catalog.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("start checkout for %s: %w", packageID, err)
	}

	logger.Debug("Checkout started for package %q", pkg.ID)
	return &domain.BookingDraft{PackageID: pkg.ID}, nil
}

// SetTravelDate records the departure date. Dates before today are
// rejected; the date's time-of-day is ignored.
func (s *CheckoutService) SetTravelDate(draft *domain.BookingDraft, date time.Time) error {
	today := s.now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return domain.ErrInvalidTravelDate
	}
	draft.TravelDate = date
	return nil
}

// SetParticipants records the traveler count.
func (s *CheckoutService) SetParticipants(draft *domain.BookingDraft, count int) error {
	if count < 1 {
		return domain.ErrInvalidParticipants
	}
	draft.Participants = count
	return nil
}

// SetContact records the lead traveler's contact details.
func (s *CheckoutService) SetContact(draft *domain.BookingDraft, contact domain.ContactInfo) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	draft.Contact = contact
	return nil
}

// SetPayment records the payment details.
func (s *CheckoutService) SetPayment(draft *domain.BookingDraft, payment domain.PaymentDetails) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	draft.Payment = payment
	return nil
}

// Confirm validates the whole draft and produces a confirmation.
// The total is the package's minimum ("starting from") price times the
// participant count.
func (s *CheckoutService) Confirm(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingConfirmation, error) {
	if draft.TravelDate.IsZero() || draft.Participants < 1 {
		return nil, domain.ErrBookingNotConfirmable
	}
	if err := draft.Contact.Validate(); err != nil {
		return nil, domain.ErrBookingNotConfirmable
	}
	if err := draft.Payment.Validate(); err != nil {
		return nil, domain.ErrBookingNotConfirmable
	}

	pkg, err := s.catalog.GetPackageByID(ctx, draft.PackageID)
	if err != nil {
		return nil, fmt.Errorf("confirm booking for %s: %w", draft.PackageID, err)
	}

	conf := &domain.BookingConfirmation{
		Code:         uuid.NewString(),
		PackageID:    pkg.ID,
		PackageTitle: pkg.Title,
		TravelDate:   draft.TravelDate,
		Participants: draft.Participants,
		TotalPrice:   pkg.Price.Min * float64(draft.Participants),
		Contact:      draft.Contact,
		MaskedCard:   draft.Payment.MaskedCard(),
		ConfirmedAt:  s.now().UTC(),
	}

	if s.bookings != nil {
		if err := s.bookings.SaveConfirmation(ctx, *conf); err != nil {
			logger.Warn("Saving confirmation failed: %v", err)
		}
	}

	logger.Info("Booking confirmed: %s for %q", conf.Code, conf.PackageTitle)
	return conf, nil
}
