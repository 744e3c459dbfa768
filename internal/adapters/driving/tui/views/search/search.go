// Package search provides the package search view for the TUI.
package search

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/components/input"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/components/list"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/components/status"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/keymap"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/messages"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/styles"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driving"
)

// ErrNoCatalogService is returned when a search is attempted without a
// catalog service wired in.
var ErrNoCatalogService = errors.New("catalog service not configured")

// View represents the search view with input, results list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.PackageList
	statusbar *status.Bar

	catalogService driving.CatalogService
	ctx            context.Context

	intent     domain.TravelIntent
	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = input mode (typing), false = results mode (navigating)
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, catalogService driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:         s,
		keymap:         km,
		input:          input.NewSearchInput(s),
		list:           list.NewPackageList(s),
		statusbar:      status.NewBar(s),
		catalogService: catalogService,
		ctx:            context.Background(),
		intent:         domain.IntentNone,
		width:          80,
		height:         24,
		ready:          false,
		focusInput:     true, // Start in input mode
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetError(msg.Err.Error())
		return v, nil
	}

	// Forward to input component
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	// Forward to list component
	var listCmd tea.Cmd
	v.list, listCmd = v.list.Update(msg)
	if listCmd != nil {
		cmds = append(cmds, listCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc always signals to go back to menu
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Enter in input mode submits search
	if msg.Type == tea.KeyEnter && v.focusInput {
		v.statusbar.SetState(status.StateSearching)
		v.focusInput = false // Move to results mode after search
		v.input.Blur()
		cmd := v.performSearch(v.input.Value())
		return v, cmd
	}

	// Input mode: all keys go to input
	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Results mode: Enter opens the selected package
	if msg.Type == tea.KeyEnter {
		pkg := v.list.SelectedPackage()
		if pkg == nil {
			return v, nil
		}
		selected := *pkg
		return v, func() tea.Msg {
			return messages.PackageSelected{Package: selected}
		}
	}

	// Results mode: handle navigation
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "i":
		// Cycle travel intent and re-run the search with it
		v.intent = nextIntent(v.intent)
		v.statusbar.SetState(status.StateSearching)
		return v, v.performSearch(v.input.Value())
	case "n":
		// New search: clear input and focus it
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		return v, nil
	}

	return v, nil
}

// nextIntent cycles through the selectable travel intents.
func nextIntent(current domain.TravelIntent) domain.TravelIntent {
	intents := domain.AllTravelIntents()
	for i, intent := range intents {
		if intent == current {
			return intents[(i+1)%len(intents)]
		}
	}
	return domain.IntentNone
}

// performSearch executes a catalog search and returns results.
func (v *View) performSearch(destination string) tea.Cmd {
	intent := v.intent
	return func() tea.Msg {
		if v.catalogService == nil {
			return messages.ErrorOccurred{Err: ErrNoCatalogService}
		}

		req := domain.NewFilterRequest()
		req.Destination = destination
		req.Intent = intent

		packages, err := v.catalogService.Search(v.ctx, req)
		if err != nil {
			return messages.SearchCompleted{Packages: nil, Err: err}
		}
		return messages.SearchCompleted{Packages: packages, Err: nil}
	}
}

// handleSearchCompleted processes search results.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetError(msg.Err.Error())
		return
	}

	v.err = nil
	v.list.SetPackages(msg.Packages)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Packages))

	// Switch to results mode after successful search
	v.focusInput = false
	v.input.Blur()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	// Header
	header := v.styles.Title.Render("Wayfarer")
	sections = append(sections, header, "")

	// Search input
	inputView := v.input.View()
	sections = append(sections, inputView)

	// Intent indicator
	if v.intent != domain.IntentNone {
		intentView := v.styles.Muted.Render("Intent: " + v.intent.Description())
		sections = append(sections, intentView)
	}
	sections = append(sections, "")

	// Error display
	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	// Results list
	listView := v.list.View()
	sections = append(sections, listView)

	// Status bar at bottom
	sections = append(sections, "")
	statusView := v.statusbar.View()
	sections = append(sections, statusView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current destination query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the destination query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Intent returns the current travel intent.
func (v *View) Intent() domain.TravelIntent {
	return v.intent
}

// Packages returns the current search results.
func (v *View) Packages() []domain.TravelPackage {
	return v.list.Packages()
}

// SelectedIndex returns the index of the selected package.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedPackage returns the currently selected package.
func (v *View) SelectedPackage() *domain.TravelPackage {
	return v.list.SelectedPackage()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.Reset()
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetPackages(nil)
	v.intent = domain.IntentNone
	v.err = nil
	v.statusbar.Reset()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
