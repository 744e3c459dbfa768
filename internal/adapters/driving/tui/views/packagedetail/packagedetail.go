// Package packagedetail provides the package detail view for the TUI.
package packagedetail

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

// relatedLimit caps the "you might also like" panel.
const relatedLimit = 4

// View is the package detail view.
type View struct {
	styles         *styles.Styles
	catalogService driving.CatalogService
	ctx            context.Context

	pkg     *domain.TravelPackage
	related []domain.TravelPackage
	width   int
	height  int
	ready   bool
	err     error
}

// NewView creates a new package detail view.
func NewView(s *styles.Styles, catalogService driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:         s,
		catalogService: catalogService,
		ctx:            context.Background(),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetPackage sets the package to display details for.
func (v *View) SetPackage(pkg domain.TravelPackage) {
	v.pkg = &pkg
	v.related = nil
	v.err = nil
}

// Package returns the displayed package, or nil if none is set.
func (v *View) Package() *domain.TravelPackage {
	return v.pkg
}

// Related returns the loaded related packages.
func (v *View) Related() []domain.TravelPackage {
	return v.related
}

// Init initialises the view and loads related packages.
func (v *View) Init() tea.Cmd {
	return v.loadRelated()
}

// loadRelated returns a command that fetches related packages.
func (v *View) loadRelated() tea.Cmd {
	return func() tea.Msg {
		if v.pkg == nil || v.catalogService == nil {
			return nil
		}

		related, err := v.catalogService.Related(v.ctx, v.pkg.ID, relatedLimit)
		return messages.RelatedLoaded{Packages: related, Err: err}
	}
}

// Update handles messages for the package detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RelatedLoaded:
		if msg.Err != nil {
			// Related suggestions are optional: show the detail anyway
			v.related = nil
			return v, nil
		}
		v.related = msg.Packages
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "b":
		if v.pkg == nil {
			return v, nil
		}
		pkg := *v.pkg
		return v, func() tea.Msg {
			return messages.CheckoutRequested{Package: pkg}
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	}

	return v, nil
}

// View renders the package detail.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.pkg == nil {
		return v.styles.Muted.Render("No package selected")
	}

	var b strings.Builder

	// Title line with optional badge
	title := v.styles.Title.Render(v.pkg.Title)
	b.WriteString(title)
	if v.pkg.Badge != domain.BadgeNone {
		b.WriteString("  ")
		b.WriteString(v.styles.Badge.Render(v.pkg.Badge.Description()))
	}
	b.WriteString("\n\n")

	// Key facts
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%s, %s", v.pkg.Destination, v.pkg.Country)))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d days · %.1f★ (%d reviews)",
		v.pkg.DurationDays, v.pkg.Rating, v.pkg.ReviewCount)))
	b.WriteString("\n")
	b.WriteString(v.styles.Price.Render(fmt.Sprintf("from R$ %.0f per person", v.pkg.Price.Min)))
	b.WriteString("\n\n")

	// Description
	if v.pkg.Description != "" {
		b.WriteString(v.styles.Normal.Render(v.pkg.Description))
		b.WriteString("\n\n")
	}

	// Highlights
	if len(v.pkg.Highlights) > 0 {
		b.WriteString(v.styles.Subtitle.Render("Highlights"))
		b.WriteString("\n")
		for _, h := range v.pkg.Highlights {
			b.WriteString(v.styles.Normal.Render("  • " + h))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Related packages
	if len(v.related) > 0 {
		b.WriteString(v.styles.Subtitle.Render("You might also like"))
		b.WriteString("\n")
		for _, r := range v.related {
			line := fmt.Sprintf("  %s — %s, %s (from R$ %.0f)",
				r.Title, r.Destination, r.Country, r.Price.Min)
			b.WriteString(v.styles.Muted.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	// Footer
	b.WriteString(v.styles.Help.Render("[b] Book  [Esc] Back"))

	return b.String()
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

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
