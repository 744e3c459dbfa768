// Package itineraries provides the traveler-itinerary browsing view for the TUI.
package itineraries

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/messages"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/styles"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driving"
)

// View is the itineraries browsing view. It shows the most-liked
// itineraries and expands the selected one into its day-by-day stops.
type View struct {
	styles           *styles.Styles
	itineraryService driving.ItineraryService
	ctx              context.Context

	itineraries []domain.Itinerary
	selected    int
	expanded    bool
	width       int
	height      int
	ready       bool
	loading     bool
	err         error
}

// NewView creates a new itineraries view.
func NewView(s *styles.Styles, itineraryService driving.ItineraryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:           s,
		itineraryService: itineraryService,
		ctx:              context.Background(),
		width:            80,
		height:           24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads itineraries.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadItineraries()
}

// loadItineraries returns a command that fetches all itineraries.
func (v *View) loadItineraries() tea.Cmd {
	return func() tea.Msg {
		if v.itineraryService == nil {
			return nil
		}

		itineraries, err := v.itineraryService.List(v.ctx, "")
		return messages.ItinerariesLoaded{Itineraries: itineraries, Err: err}
	}
}

// Update handles messages for the itineraries view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ItinerariesLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.itineraries = msg.Itineraries
		v.selected = 0
		v.expanded = false
		return v, nil

	case messages.ErrorOccurred:
		v.loading = false
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.expanded = false
		}
	case "down", "j":
		if v.selected < len(v.itineraries)-1 {
			v.selected++
			v.expanded = false
		}
	case "enter":
		if len(v.itineraries) > 0 {
			v.expanded = !v.expanded
		}
	case "esc":
		if v.expanded {
			v.expanded = false
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// View renders the itineraries view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Traveler Itineraries"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading itineraries..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.itineraries) == 0:
		b.WriteString(v.styles.Muted.Render("No itineraries yet"))
	default:
		v.renderList(&b)
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Expand  [Esc] Back"))

	return b.String()
}

// renderList renders the itinerary entries, expanding the selected one.
func (v *View) renderList(b *strings.Builder) {
	for i, it := range v.itineraries {
		cursor := "  "
		titleStyle := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			titleStyle = v.styles.Selected
		}

		b.WriteString(cursor + titleStyle.Render(it.Title))
		b.WriteString("\n")
		meta := fmt.Sprintf("    %s, %s · %d days · by %s · ♥ %d",
			it.Destination, it.Country, it.DurationDays, it.Author, it.Likes)
		b.WriteString(v.styles.Muted.Render(meta))
		b.WriteString("\n")

		if i == v.selected && v.expanded {
			v.renderStops(b, &v.itineraries[i])
		}
	}
}

// renderStops renders the day-by-day stops of an itinerary.
func (v *View) renderStops(b *strings.Builder, it *domain.Itinerary) {
	for _, stop := range it.Stops {
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("      Day %d: %s", stop.Day, stop.Title)))
		b.WriteString("\n")
		if stop.Note != "" {
			b.WriteString(v.styles.Muted.Render("        " + stop.Note))
			b.WriteString("\n")
		}
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Itineraries returns the loaded itineraries.
func (v *View) Itineraries() []domain.Itinerary {
	return v.itineraries
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// Expanded reports whether the selected itinerary is expanded.
func (v *View) Expanded() bool {
	return v.expanded
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
