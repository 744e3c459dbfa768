package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/messages"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/styles"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/views/checkout"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/views/itineraries"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/views/menu"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/views/packagedetail"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/views/search"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// searchView is the package search view component.
	searchView *search.View

	// detailView is the package detail view component.
	detailView *packagedetail.View

	// itinerariesView is the itinerary browsing view component.
	itinerariesView *itineraries.View

	// checkoutView is the booking wizard view component.
	checkoutView *checkout.View

	// selectedPackage tracks the currently selected package for navigation.
	selectedPackage *domain.TravelPackage

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	searchView := search.NewView(s, nil, ports.Catalog)
	detailView := packagedetail.NewView(s, ports.Catalog)
	itinerariesView := itineraries.NewView(s, ports.Itinerary)
	checkoutView := checkout.NewView(s, ports.Checkout)

	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		menuView:        menuView,
		searchView:      searchView,
		detailView:      detailView,
		itinerariesView: itinerariesView,
		checkoutView:    checkoutView,
		currentView:     messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.detailView.WithContext(ctx)
	a.itinerariesView.WithContext(ctx)
	a.checkoutView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("wayfarer - Travel Packages"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		a.itinerariesView.SetDimensions(msg.Width, msg.Height)
		a.checkoutView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
			return a, cmd

		case messages.ViewPackageDetail:
			a.detailView, cmd = a.detailView.Update(msg)
			return a, cmd

		case messages.ViewItineraries:
			a.itinerariesView, cmd = a.itinerariesView.Update(msg)
			return a, cmd

		case messages.ViewCheckout:
			a.checkoutView, cmd = a.checkoutView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewItineraries:
			return a, a.itinerariesView.Init()
		case messages.ViewPackageDetail:
			return a, a.detailView.Init()
		case messages.ViewMenu, messages.ViewCheckout, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.PackageSelected:
		// Navigate from search results to the package detail
		a.selectedPackage = &msg.Package
		a.detailView.SetPackage(msg.Package)
		a.currentView = messages.ViewPackageDetail
		return a, a.detailView.Init()

	case messages.CheckoutRequested:
		// Navigate from the package detail to the booking wizard
		a.selectedPackage = &msg.Package
		a.checkoutView.SetPackage(msg.Package)
		a.currentView = messages.ViewCheckout
		return a, a.checkoutView.Init()

	case messages.RelatedLoaded:
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.ItinerariesLoaded:
		a.itinerariesView, cmd = a.itinerariesView.Update(msg)
		return a, cmd

	case messages.BookingConfirmed:
		a.checkoutView, cmd = a.checkoutView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewPackageDetail:
			a.detailView, cmd = a.detailView.Update(msg)
		case messages.ViewItineraries:
			a.itinerariesView, cmd = a.itinerariesView.Update(msg)
		case messages.ViewCheckout:
			a.checkoutView, cmd = a.checkoutView.Update(msg)
		case messages.ViewMenu, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewPackageDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewItineraries:
		a.itinerariesView, cmd = a.itinerariesView.Update(msg)
	case messages.ViewCheckout:
		a.checkoutView, cmd = a.checkoutView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewPackageDetail:
		return a.detailView.View()
	case messages.ViewItineraries:
		return a.itinerariesView.View()
	case messages.ViewCheckout:
		return a.checkoutView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Search:
  (type)      Enter destination
  enter       Submit search
  esc         Back to Menu

Results:
  j/k, ↑/↓    Navigate results
  enter       Open package
  i           Cycle travel intent
  n           New search

Package:
  b           Book this package
  esc         Back to results

Itineraries:
  j/k, ↑/↓    Navigate
  enter       Expand day-by-day stops

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SelectedPackage returns the package currently in detail or checkout.
func (a *App) SelectedPackage() *domain.TravelPackage {
	return a.selectedPackage
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Also set searchView dimensions so it renders properly
	a.searchView.SetDimensions(width, height)
}
