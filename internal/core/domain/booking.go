package domain

import (
	"strings"
	"time"
)

// BookingStep identifies a step in the checkout wizard.
type BookingStep int

// Checkout steps in order.
const (
	// StepDate selects the travel date.
	StepDate BookingStep = iota
	// StepParticipants selects the traveler count.
	StepParticipants
	// StepContact collects contact details.
	StepContact
	// StepPayment collects payment details.
	StepPayment
	// StepConfirmation shows the confirmed booking.
	StepConfirmation
)

// String returns the string representation of the step.
func (s BookingStep) String() string {
	switch s {
	case StepDate:
		return "date"
	case StepParticipants:
		return "participants"
	case StepContact:
		return "contact"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// Description returns a human-readable label for display.
func (s BookingStep) Description() string {
	switch s {
	case StepDate:
		return "Travel Date"
	case StepParticipants:
		return "Participants"
	case StepContact:
		return "Contact Details"
	case StepPayment:
		return "Payment"
	case StepConfirmation:
		return "Confirmation"
	default:
		return "Unknown"
	}
}

// ContactInfo holds the lead traveler's contact details.
type ContactInfo struct {
	FullName string
	Email    string
	Phone    string
}

// Validate checks that the required contact fields are filled.
func (c ContactInfo) Validate() error {
	if strings.TrimSpace(c.FullName) == "" {
		return ErrBookingStepIncomplete
	}
	email := strings.TrimSpace(c.Email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrBookingStepIncomplete
	}
	return nil
}

// PaymentDetails holds the card details collected at the payment step.
// No charge is ever made; the storefront has no payment processor.
type PaymentDetails struct {
	CardholderName string
	// CardNumber keeps only the digits as typed.
	CardNumber string
	ExpiryMonth int
	ExpiryYear  int
}

// MaskedCard returns the card number with all but the last four digits
// hidden, for display on the confirmation view.
func (p PaymentDetails) MaskedCard() string {
	digits := strings.ReplaceAll(p.CardNumber, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// Validate checks that the payment fields look complete. This is form
// completeness only, not card verification.
func (p PaymentDetails) Validate() error {
	if strings.TrimSpace(p.CardholderName) == "" {
		return ErrBookingStepIncomplete
	}
	digits := strings.ReplaceAll(strings.TrimSpace(p.CardNumber), " ", "")
	if len(digits) < 13 || len(digits) > 19 {
		return ErrBookingStepIncomplete
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return ErrBookingStepIncomplete
		}
	}
	if p.ExpiryMonth < 1 || p.ExpiryMonth > 12 {
		return ErrBookingStepIncomplete
	}
	return nil
}

// BookingDraft accumulates checkout state across wizard steps.
// Each step replaces its own fields; earlier fields are never mutated
// by later steps.
type BookingDraft struct {
	// PackageID is the catalog package being booked.
	PackageID string

	// TravelDate is the selected departure date.
	TravelDate time.Time

	// Participants is the traveler count, at least 1.
	Participants int

	// Contact holds the lead traveler's details.
	Contact ContactInfo

	// Payment holds the collected payment details.
	Payment PaymentDetails
}

// BookingConfirmation is the terminal checkout artifact shown on the
// confirmation screen. Bookings are never persisted.
type BookingConfirmation struct {
	// Code is the confirmation code shown to the traveler.
	Code string

	// PackageID is the booked package.
	PackageID string

	// PackageTitle is denormalised for display.
	PackageTitle string

	// TravelDate is the confirmed departure date.
	TravelDate time.Time

	// Participants is the confirmed traveler count.
	Participants int

	// TotalPrice is the package minimum price times participants.
	TotalPrice float64

	// Contact is the lead traveler.
	Contact ContactInfo

	// MaskedCard is the payment card with only the last digits visible.
	MaskedCard string

	// ConfirmedAt is when checkout completed.
	ConfirmedAt time.Time
}
