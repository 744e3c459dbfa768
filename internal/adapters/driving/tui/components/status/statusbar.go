// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/styles"
)

// State represents the current state shown in the status bar.
type State int

const (
	// StateReady indicates the app is idle and ready for input.
	StateReady State = iota
	// StateSearching indicates a search is in progress.
	StateSearching
	// StateResults indicates results are being displayed.
	StateResults
	// StateError indicates an error occurred.
	StateError
	// StateBooking indicates a booking flow is in progress.
	StateBooking
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateSearching:
		return "searching"
	case StateResults:
		return "results"
	case StateError:
		return "error"
	case StateBooking:
		return "booking"
	default:
		return "unknown"
	}
}

// Bar displays contextual state at the bottom of the screen.
type Bar struct {
	state       State
	message     string
	resultCount int
	styles      *styles.Styles
	width       int
}

// NewBar creates a new status bar.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Bar{
		state:  StateReady,
		styles: s,
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	gap := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return b.styles.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}

// renderLeft renders the state indicator and message.
func (b *Bar) renderLeft() string {
	switch b.state {
	case StateReady:
		return "Ready"
	case StateSearching:
		return "Searching..."
	case StateResults:
		if b.resultCount == 1 {
			return "1 package"
		}
		return fmt.Sprintf("%d packages", b.resultCount)
	case StateError:
		if b.message != "" {
			return "Error: " + b.message
		}
		return "Error"
	case StateBooking:
		if b.message != "" {
			return "Booking: " + b.message
		}
		return "Booking"
	default:
		return ""
	}
}

// renderRight renders the persistent key hints.
func (b *Bar) renderRight() string {
	return "? help · q quit"
}

// SetState sets the current state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetMessage sets the status message.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetResultCount sets the result count shown in the results state.
func (b *Bar) SetResultCount(count int) {
	b.resultCount = count
}

// SetError switches to the error state with a message.
func (b *Bar) SetError(message string) {
	b.state = StateError
	b.message = message
}

// Reset returns the bar to the ready state.
func (b *Bar) Reset() {
	b.state = StateReady
	b.message = ""
	b.resultCount = 0
}

// SetWidth sets the bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the bar width.
func (b *Bar) Width() int {
	return b.width
}
