package tui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// MockCatalogService implements driving.CatalogService for testing.
type MockCatalogService struct {
	SearchFunc  func(ctx context.Context, req domain.FilterRequest) ([]domain.TravelPackage, error)
	RelatedFunc func(ctx context.Context, packageID string, limit int) ([]domain.TravelPackage, error)
}

func (m *MockCatalogService) Search(
	ctx context.Context, req domain.FilterRequest,
) ([]domain.TravelPackage, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockCatalogService) ApplyFilters(
	ctx context.Context, req domain.FilterRequest,
) ([]domain.TravelPackage, error) {
	return nil, nil
}

func (m *MockCatalogService) PackageByID(ctx context.Context, id string) (*domain.TravelPackage, error) {
	return nil, domain.ErrNotFound
}

func (m *MockCatalogService) Featured(ctx context.Context) ([]domain.TravelPackage, error) {
	return nil, nil
}

func (m *MockCatalogService) Related(
	ctx context.Context, packageID string, limit int,
) ([]domain.TravelPackage, error) {
	if m.RelatedFunc != nil {
		return m.RelatedFunc(ctx, packageID, limit)
	}
	return nil, nil
}

func (m *MockCatalogService) HasActiveFilters(req domain.FilterRequest) bool {
	return req.HasActiveFilters()
}

// MockItineraryService implements driving.ItineraryService for testing.
type MockItineraryService struct {
	ListFunc func(ctx context.Context, destinationQuery string) ([]domain.Itinerary, error)
}

func (m *MockItineraryService) List(
	ctx context.Context, destinationQuery string,
) ([]domain.Itinerary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, destinationQuery)
	}
	return nil, nil
}

func (m *MockItineraryService) ItineraryByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	return nil, domain.ErrNotFound
}

func (m *MockItineraryService) ForPackage(ctx context.Context, packageID string) ([]domain.Itinerary, error) {
	return nil, nil
}

// MockCheckoutService implements driving.CheckoutService for testing.
type MockCheckoutService struct {
	StartFunc   func(ctx context.Context, packageID string) (*domain.BookingDraft, error)
	ConfirmFunc func(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingConfirmation, error)
}

func (m *MockCheckoutService) Start(ctx context.Context, packageID string) (*domain.BookingDraft, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, packageID)
	}
	return &domain.BookingDraft{PackageID: packageID}, nil
}

func (m *MockCheckoutService) SetTravelDate(draft *domain.BookingDraft, date time.Time) error {
	draft.TravelDate = date
	return nil
}

func (m *MockCheckoutService) SetParticipants(draft *domain.BookingDraft, count int) error {
	draft.Participants = count
	return nil
}

func (m *MockCheckoutService) SetContact(draft *domain.BookingDraft, contact domain.ContactInfo) error {
	draft.Contact = contact
	return nil
}

func (m *MockCheckoutService) SetPayment(draft *domain.BookingDraft, payment domain.PaymentDetails) error {
	draft.Payment = payment
	return nil
}

func (m *MockCheckoutService) Confirm(
	ctx context.Context, draft *domain.BookingDraft,
) (*domain.BookingConfirmation, error) {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, draft)
	}
	return &domain.BookingConfirmation{Code: "WF-TEST01", PackageID: draft.PackageID}, nil
}

// MockHistoryService implements driving.HistoryService for testing.
type MockHistoryService struct{}

func (m *MockHistoryService) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	return nil, nil
}

func (m *MockHistoryService) Clear(ctx context.Context) error {
	return nil
}

func TestNewPorts(t *testing.T) {
	catalog := &MockCatalogService{}
	itinerary := &MockItineraryService{}
	checkout := &MockCheckoutService{}

	ports := NewPorts(catalog, itinerary, checkout)

	require.NotNil(t, ports)
	assert.Equal(t, catalog, ports.Catalog)
	assert.Equal(t, itinerary, ports.Itinerary)
	assert.Equal(t, checkout, ports.Checkout)
	assert.Nil(t, ports.History)
}

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := &Ports{
		Catalog:   &MockCatalogService{},
		Itinerary: &MockItineraryService{},
		Checkout:  &MockCheckoutService{},
	}

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_HistoryOptional(t *testing.T) {
	ports := &Ports{
		Catalog:   &MockCatalogService{},
		Itinerary: &MockItineraryService{},
		Checkout:  &MockCheckoutService{},
		History:   nil,
	}

	assert.NoError(t, ports.Validate())

	ports.History = &MockHistoryService{}
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingCatalog(t *testing.T) {
	ports := &Ports{
		Catalog:   nil,
		Itinerary: &MockItineraryService{},
		Checkout:  &MockCheckoutService{},
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingCatalogService)
}

func TestPorts_Validate_MissingItinerary(t *testing.T) {
	ports := &Ports{
		Catalog:   &MockCatalogService{},
		Itinerary: nil,
		Checkout:  &MockCheckoutService{},
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingItineraryService)
}

func TestPorts_Validate_MissingCheckout(t *testing.T) {
	ports := &Ports{
		Catalog:   &MockCatalogService{},
		Itinerary: &MockItineraryService{},
		Checkout:  nil,
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingCheckoutService)
}
