package itineraries

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/messages"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// MockItineraryService implements driving.ItineraryService for testing.
type MockItineraryService struct {
	ListFunc func(ctx context.Context, destinationQuery string) ([]domain.Itinerary, error)
}

func (m *MockItineraryService) List(
	ctx context.Context,
	destinationQuery string,
) ([]domain.Itinerary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, destinationQuery)
	}
	return []domain.Itinerary{}, nil
}

func (m *MockItineraryService) ItineraryByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	return nil, domain.ErrNotFound
}

func (m *MockItineraryService) ForPackage(ctx context.Context, packageID string) ([]domain.Itinerary, error) {
	return []domain.Itinerary{}, nil
}

func testItineraries() []domain.Itinerary {
	return []domain.Itinerary{
		{
			ID:           "itin-1",
			Title:        "A Week in Rio on a Budget",
			Author:       "Marina S.",
			Destination:  "Rio de Janeiro",
			Country:      "Brasil",
			DurationDays: 7,
			Likes:        842,
			Stops: []domain.ItineraryStop{
				{Day: 1, Title: "Copacabana sunrise", Note: "Go before 7am"},
				{Day: 2, Title: "Sugarloaf cable car"},
			},
		},
		{
			ID:           "itin-2",
			Title:        "Paris for First-Timers",
			Author:       "João P.",
			Destination:  "Paris",
			Country:      "France",
			DurationDays: 5,
			Likes:        1204,
		},
	}
}

func TestNewView(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Empty(t, view.Itineraries())
	assert.Equal(t, 0, view.Selected())
	assert.False(t, view.Expanded())
}

func TestView_Init_LoadsItineraries(t *testing.T) {
	mock := &MockItineraryService{
		ListFunc: func(ctx context.Context, destinationQuery string) ([]domain.Itinerary, error) {
			assert.Empty(t, destinationQuery)
			return testItineraries(), nil
		},
	}
	view := NewView(nil, mock)

	cmd := view.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.ItinerariesLoaded)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
	assert.Len(t, loaded.Itineraries, 2)
}

func TestView_Init_NilService(t *testing.T) {
	view := NewView(nil, nil)

	cmd := view.Init()
	require.NotNil(t, cmd)

	assert.Nil(t, cmd())
}

func TestView_Update_ItinerariesLoaded(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})

	view.Update(messages.ItinerariesLoaded{Itineraries: testItineraries()})

	assert.Len(t, view.Itineraries(), 2)
	assert.Equal(t, 0, view.Selected())
	assert.NoError(t, view.Err())
}

func TestView_Update_ItinerariesLoaded_Error(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})
	loadErr := errors.New("store offline")

	view.Update(messages.ItinerariesLoaded{Err: loadErr})

	assert.Equal(t, loadErr, view.Err())
}

func TestView_Update_Navigation(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})
	view.Update(messages.ItinerariesLoaded{Itineraries: testItineraries()})

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, view.Selected())

	// Boundary
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_Enter_TogglesExpand(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})
	view.Update(messages.ItinerariesLoaded{Itineraries: testItineraries()})

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, view.Expanded())

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, view.Expanded())
}

func TestView_Update_Navigation_CollapsesExpanded(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})
	view.Update(messages.ItinerariesLoaded{Itineraries: testItineraries()})
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	assert.False(t, view.Expanded())
}

func TestView_Update_Esc_Collapses(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})
	view.Update(messages.ItinerariesLoaded{Itineraries: testItineraries()})
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, view.Expanded())
	assert.Nil(t, cmd)
}

func TestView_Update_Esc_ReturnsToMenu(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})
	view.Update(messages.ItinerariesLoaded{Itineraries: testItineraries()})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})

	assert.Contains(t, view.View(), "Initialising")
}

func TestView_View_Empty(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})
	view.SetDimensions(80, 24)

	assert.Contains(t, view.View(), "No itineraries yet")
}

func TestView_View_ShowsItineraries(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})
	view.SetDimensions(100, 40)
	view.Update(messages.ItinerariesLoaded{Itineraries: testItineraries()})

	rendered := view.View()

	assert.Contains(t, rendered, "Traveler Itineraries")
	assert.Contains(t, rendered, "A Week in Rio on a Budget")
	assert.Contains(t, rendered, "by Marina S.")
	assert.Contains(t, rendered, "♥ 842")
	assert.Contains(t, rendered, "Paris for First-Timers")
}

func TestView_View_ExpandedShowsStops(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})
	view.SetDimensions(100, 40)
	view.Update(messages.ItinerariesLoaded{Itineraries: testItineraries()})
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	rendered := view.View()

	assert.Contains(t, rendered, "Day 1: Copacabana sunrise")
	assert.Contains(t, rendered, "Go before 7am")
	assert.Contains(t, rendered, "Day 2: Sugarloaf cable car")
}

func TestView_View_Error(t *testing.T) {
	view := NewView(nil, &MockItineraryService{})
	view.SetDimensions(80, 24)
	view.Update(messages.ItinerariesLoaded{Err: errors.New("store offline")})

	assert.Contains(t, view.View(), "Error: store offline")
}
