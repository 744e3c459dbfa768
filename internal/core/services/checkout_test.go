package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// mockBookingStore implements driven.BookingStore for testing.
type mockBookingStore struct {
	confirmations []domain.BookingConfirmation
}

func (m *mockBookingStore) SaveConfirmation(_ context.Context, conf domain.BookingConfirmation) error {
	m.confirmations = append(m.confirmations, conf)
	return nil
}

func (m *mockBookingStore) ListConfirmations(_ context.Context) ([]domain.BookingConfirmation, error) {
	out := make([]domain.BookingConfirmation, len(m.confirmations))
	copy(out, m.confirmations)
	return out, nil
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

func newCheckoutFixture() (*CheckoutService, *mockBookingStore) {
	bookings := &mockBookingStore{}
	svc := NewCheckoutService(&mockCatalogStore{packages: testCatalog()}, bookings).WithClock(fixedClock)
	return svc, bookings
}

func validContact() domain.ContactInfo {
	return domain.ContactInfo{FullName: "Ana Souza", Email: "ana@example.com"}
}

func validPayment() domain.PaymentDetails {
	return domain.PaymentDetails{
		CardholderName: "ANA SOUZA",
		CardNumber:     "4111111111111111",
		ExpiryMonth:    12,
		ExpiryYear:     2028,
	}
}

func TestCheckoutStart(t *testing.T) {
	svc, _ := newCheckoutFixture()

	draft, err := svc.Start(context.Background(), "pkg-cancun")

	require.NoError(t, err)
	assert.Equal(t, "pkg-cancun", draft.PackageID)
}

func TestCheckoutStart_UnknownPackage(t *testing.T) {
	svc, _ := newCheckoutFixture()

	_, err := svc.Start(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetTravelDate(t *testing.T) {
	svc, _ := newCheckoutFixture()
	draft := &domain.BookingDraft{PackageID: "pkg-cancun"}

	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{"future date accepted", fixedClock().AddDate(0, 1, 0), nil},
		{"same day accepted", fixedClock(), nil},
		{"past date rejected", fixedClock().AddDate(0, 0, -1), domain.ErrInvalidTravelDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SetTravelDate(draft, tt.date)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.date, draft.TravelDate)
			}
		})
	}
}

func TestSetParticipants(t *testing.T) {
	svc, _ := newCheckoutFixture()
	draft := &domain.BookingDraft{PackageID: "pkg-cancun"}

	assert.ErrorIs(t, svc.SetParticipants(draft, 0), domain.ErrInvalidParticipants)
	assert.ErrorIs(t, svc.SetParticipants(draft, -3), domain.ErrInvalidParticipants)

	require.NoError(t, svc.SetParticipants(draft, 2))
	assert.Equal(t, 2, draft.Participants)
}

func TestSetContact_Invalid(t *testing.T) {
	svc, _ := newCheckoutFixture()
	draft := &domain.BookingDraft{PackageID: "pkg-cancun"}

	err := svc.SetContact(draft, domain.ContactInfo{FullName: "Ana", Email: "not-an-email"})

	assert.ErrorIs(t, err, domain.ErrBookingStepIncomplete)
}

func TestSetPayment_Invalid(t *testing.T) {
	svc, _ := newCheckoutFixture()
	draft := &domain.BookingDraft{PackageID: "pkg-cancun"}

	payment := validPayment()
	payment.CardNumber = "1234"

	err := svc.SetPayment(draft, payment)

	assert.ErrorIs(t, err, domain.ErrBookingStepIncomplete)
}

func TestConfirm(t *testing.T) {
	svc, bookings := newCheckoutFixture()

	draft, err := svc.Start(context.Background(), "pkg-cancun")
	require.NoError(t, err)
	require.NoError(t, svc.SetTravelDate(draft, fixedClock().AddDate(0, 2, 0)))
	require.NoError(t, svc.SetParticipants(draft, 2))
	require.NoError(t, svc.SetContact(draft, validContact()))
	require.NoError(t, svc.SetPayment(draft, validPayment()))

	conf, err := svc.Confirm(context.Background(), draft)

	require.NoError(t, err)
	assert.NotEmpty(t, conf.Code)
	assert.Equal(t, "pkg-cancun", conf.PackageID)
	assert.Equal(t, "Cancún All Inclusive", conf.PackageTitle)
	// Entry price 3000 times two travelers.
	assert.InDelta(t, 6000.0, conf.TotalPrice, 1e-9)
	assert.Equal(t, "************1111", conf.MaskedCard)
	assert.Equal(t, fixedClock(), conf.ConfirmedAt)

	require.Len(t, bookings.confirmations, 1)
	assert.Equal(t, conf.Code, bookings.confirmations[0].Code)
}

func TestConfirm_IncompleteDraft(t *testing.T) {
	svc, _ := newCheckoutFixture()

	tests := []struct {
		name  string
		setup func(*domain.BookingDraft)
	}{
		{"missing travel date", func(d *domain.BookingDraft) {
			d.TravelDate = time.Time{}
		}},
		{"missing participants", func(d *domain.BookingDraft) {
			d.Participants = 0
		}},
		{"missing contact", func(d *domain.BookingDraft) {
			d.Contact = domain.ContactInfo{}
		}},
		{"missing payment", func(d *domain.BookingDraft) {
			d.Payment = domain.PaymentDetails{}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &domain.BookingDraft{
				PackageID:    "pkg-cancun",
				TravelDate:   fixedClock().AddDate(0, 1, 0),
				Participants: 1,
				Contact:      validContact(),
				Payment:      validPayment(),
			}
			tt.setup(draft)

			_, err := svc.Confirm(context.Background(), draft)

			assert.ErrorIs(t, err, domain.ErrBookingNotConfirmable)
		})
	}
}

func TestConfirm_NilBookingStore(t *testing.T) {
	svc := NewCheckoutService(&mockCatalogStore{packages: testCatalog()}, nil).WithClock(fixedClock)

	draft := &domain.BookingDraft{
		PackageID:    "pkg-paris",
		TravelDate:   fixedClock().AddDate(0, 1, 0),
		Participants: 1,
		Contact:      validContact(),
		Payment:      validPayment(),
	}

	conf, err := svc.Confirm(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, "pkg-paris", conf.PackageID)
}
