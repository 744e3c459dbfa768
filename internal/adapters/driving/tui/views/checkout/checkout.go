// Package checkout provides the multi-step booking wizard view for the TUI.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/messages"
	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/styles"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/ports/driving"
)

// ErrNoCheckoutService is returned when the wizard is opened without a
// checkout service wired in.
var ErrNoCheckoutService = errors.New("checkout service not configured")

// travelDateLayout is the accepted travel date input format.
const travelDateLayout = "2006-01-02"

// draftStarted carries the result of starting a booking draft.
type draftStarted struct {
	draft *domain.BookingDraft
	err   error
}

// View is the booking wizard view. It walks the traveler through
// date, participants, contact, and payment before confirming.
type View struct {
	styles          *styles.Styles
	checkoutService driving.CheckoutService
	ctx             context.Context

	pkg          *domain.TravelPackage
	draft        *domain.BookingDraft
	confirmation *domain.BookingConfirmation
	step         domain.BookingStep

	dateInput         textinput.Model
	participantsInput textinput.Model
	nameInput         textinput.Model
	emailInput        textinput.Model
	phoneInput        textinput.Model
	cardholderInput   textinput.Model
	cardNumberInput   textinput.Model
	expiryInput       textinput.Model

	focusIndex int
	width      int
	height     int
	ready      bool
	err        error
}

// NewView creates a new checkout wizard view.
func NewView(s *styles.Styles, checkoutService driving.CheckoutService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	dateInput := textinput.New()
	dateInput.Placeholder = "YYYY-MM-DD"
	dateInput.CharLimit = 10

	participantsInput := textinput.New()
	participantsInput.Placeholder = "Number of travelers"
	participantsInput.CharLimit = 2

	nameInput := textinput.New()
	nameInput.Placeholder = "Full name"
	nameInput.CharLimit = 128

	emailInput := textinput.New()
	emailInput.Placeholder = "Email address"
	emailInput.CharLimit = 128

	phoneInput := textinput.New()
	phoneInput.Placeholder = "Phone (optional)"
	phoneInput.CharLimit = 32

	cardholderInput := textinput.New()
	cardholderInput.Placeholder = "Name on card"
	cardholderInput.CharLimit = 128

	cardNumberInput := textinput.New()
	cardNumberInput.Placeholder = "Card number"
	cardNumberInput.EchoMode = textinput.EchoPassword
	cardNumberInput.CharLimit = 23

	expiryInput := textinput.New()
	expiryInput.Placeholder = "MM/YYYY"
	expiryInput.CharLimit = 7

	return &View{
		styles:            s,
		checkoutService:   checkoutService,
		ctx:               context.Background(),
		step:              domain.StepDate,
		dateInput:         dateInput,
		participantsInput: participantsInput,
		nameInput:         nameInput,
		emailInput:        emailInput,
		phoneInput:        phoneInput,
		cardholderInput:   cardholderInput,
		cardNumberInput:   cardNumberInput,
		expiryInput:       expiryInput,
		width:             80,
		height:            24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetPackage sets the package being booked and resets the wizard.
func (v *View) SetPackage(pkg domain.TravelPackage) {
	v.pkg = &pkg
	v.draft = nil
	v.confirmation = nil
	v.step = domain.StepDate
	v.focusIndex = 0
	v.err = nil
	v.resetInputs()
}

// resetInputs clears every input field.
func (v *View) resetInputs() {
	for _, ti := range v.inputs() {
		ti.SetValue("")
		ti.Blur()
	}
}

// inputs returns all input fields in wizard order.
func (v *View) inputs() []*textinput.Model {
	return []*textinput.Model{
		&v.dateInput, &v.participantsInput,
		&v.nameInput, &v.emailInput, &v.phoneInput,
		&v.cardholderInput, &v.cardNumberInput, &v.expiryInput,
	}
}

// stepInputs returns the input fields for the current step.
func (v *View) stepInputs() []*textinput.Model {
	switch v.step {
	case domain.StepDate:
		return []*textinput.Model{&v.dateInput}
	case domain.StepParticipants:
		return []*textinput.Model{&v.participantsInput}
	case domain.StepContact:
		return []*textinput.Model{&v.nameInput, &v.emailInput, &v.phoneInput}
	case domain.StepPayment:
		return []*textinput.Model{&v.cardholderInput, &v.cardNumberInput, &v.expiryInput}
	case domain.StepConfirmation:
		return nil
	default:
		return nil
	}
}

// Init initialises the view and starts the booking draft.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.startDraft(), v.focusStep())
}

// startDraft returns a command that opens a booking draft.
func (v *View) startDraft() tea.Cmd {
	return func() tea.Msg {
		if v.pkg == nil {
			return nil
		}
		if v.checkoutService == nil {
			return draftStarted{draft: nil, err: ErrNoCheckoutService}
		}

		draft, err := v.checkoutService.Start(v.ctx, v.pkg.ID)
		return draftStarted{draft: draft, err: err}
	}
}

// focusStep focuses the first input of the current step.
func (v *View) focusStep() tea.Cmd {
	v.focusIndex = 0
	return v.updateFocus()
}

// updateFocus focuses the input at focusIndex and blurs the rest.
func (v *View) updateFocus() tea.Cmd {
	fields := v.stepInputs()
	cmds := make([]tea.Cmd, 0, len(fields))
	for i, ti := range fields {
		if i == v.focusIndex {
			cmds = append(cmds, ti.Focus())
		} else {
			ti.Blur()
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the checkout view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case draftStarted:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.draft = msg.draft
		return v, nil

	case messages.BookingConfirmed:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.confirmation = msg.Confirmation
		v.step = domain.StepConfirmation
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewPackageDetail}
		}
	}

	if v.step == domain.StepConfirmation {
		if msg.Type == tea.KeyEnter {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		return v, nil
	}

	fields := v.stepInputs()

	switch msg.String() {
	case "tab", "down":
		if len(fields) > 1 {
			v.focusIndex = (v.focusIndex + 1) % len(fields)
			return v, v.updateFocus()
		}
	case "shift+tab", "up":
		if len(fields) > 1 {
			v.focusIndex--
			if v.focusIndex < 0 {
				v.focusIndex = len(fields) - 1
			}
			return v, v.updateFocus()
		}
	}

	if msg.Type == tea.KeyEnter {
		// Enter on the last field of a step submits the step
		if v.focusIndex < len(fields)-1 {
			v.focusIndex++
			return v, v.updateFocus()
		}
		return v, v.submitStep()
	}

	// Forward other keys to the focused input
	if v.focusIndex < len(fields) {
		var cmd tea.Cmd
		*fields[v.focusIndex], cmd = fields[v.focusIndex].Update(msg)
		return v, cmd
	}

	return v, nil
}

// submitStep validates the current step and advances on success.
func (v *View) submitStep() tea.Cmd {
	if v.draft == nil || v.checkoutService == nil {
		v.err = ErrNoCheckoutService
		return nil
	}

	switch v.step {
	case domain.StepDate:
		date, err := time.Parse(travelDateLayout, strings.TrimSpace(v.dateInput.Value()))
		if err != nil {
			v.err = fmt.Errorf("enter the date as YYYY-MM-DD: %w", err)
			return nil
		}
		if err := v.checkoutService.SetTravelDate(v.draft, date); err != nil {
			v.err = err
			return nil
		}
		v.err = nil
		v.step = domain.StepParticipants
		return v.focusStep()

	case domain.StepParticipants:
		var count int
		if _, err := fmt.Sscanf(strings.TrimSpace(v.participantsInput.Value()), "%d", &count); err != nil {
			v.err = fmt.Errorf("enter a number of travelers: %w", err)
			return nil
		}
		if err := v.checkoutService.SetParticipants(v.draft, count); err != nil {
			v.err = err
			return nil
		}
		v.err = nil
		v.step = domain.StepContact
		return v.focusStep()

	case domain.StepContact:
		contact := domain.ContactInfo{
			FullName: strings.TrimSpace(v.nameInput.Value()),
			Email:    strings.TrimSpace(v.emailInput.Value()),
			Phone:    strings.TrimSpace(v.phoneInput.Value()),
		}
		if err := v.checkoutService.SetContact(v.draft, contact); err != nil {
			v.err = err
			return nil
		}
		v.err = nil
		v.step = domain.StepPayment
		return v.focusStep()

	case domain.StepPayment:
		month, year, err := parseExpiry(v.expiryInput.Value())
		if err != nil {
			v.err = err
			return nil
		}
		payment := domain.PaymentDetails{
			CardholderName: strings.TrimSpace(v.cardholderInput.Value()),
			CardNumber:     strings.TrimSpace(v.cardNumberInput.Value()),
			ExpiryMonth:    month,
			ExpiryYear:     year,
		}
		if err := v.checkoutService.SetPayment(v.draft, payment); err != nil {
			v.err = err
			return nil
		}
		v.err = nil
		return v.confirm()

	case domain.StepConfirmation:
		return nil
	default:
		return nil
	}
}

// parseExpiry parses an MM/YYYY expiry string.
func parseExpiry(value string) (month, year int, err error) {
	parts := strings.SplitN(strings.TrimSpace(value), "/", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New("enter the expiry as MM/YYYY")
	}
	if _, err := fmt.Sscanf(parts[0], "%d", &month); err != nil {
		return 0, 0, errors.New("enter the expiry as MM/YYYY")
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &year); err != nil {
		return 0, 0, errors.New("enter the expiry as MM/YYYY")
	}
	return month, year, nil
}

// confirm returns a command that finalises the booking.
func (v *View) confirm() tea.Cmd {
	draft := v.draft
	return func() tea.Msg {
		confirmation, err := v.checkoutService.Confirm(v.ctx, draft)
		return messages.BookingConfirmed{Confirmation: confirmation, Err: err}
	}
}

// View renders the checkout wizard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.pkg == nil {
		return v.styles.Muted.Render("No package selected")
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Book: " + v.pkg.Title))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s, %s · from R$ %.0f per person",
		v.pkg.Destination, v.pkg.Country, v.pkg.Price.Min)))
	b.WriteString("\n\n")

	if v.step == domain.StepConfirmation {
		v.renderConfirmation(&b)
	} else {
		v.renderStep(&b)
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.step == domain.StepConfirmation {
		b.WriteString(v.styles.Help.Render("[Enter] Done  [Esc] Back"))
	} else {
		b.WriteString(v.styles.Help.Render("[Tab] Next field  [Enter] Continue  [Esc] Cancel"))
	}

	return b.String()
}

// renderStep renders the current wizard step's inputs.
func (v *View) renderStep(b *strings.Builder) {
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Step %d of 4: %s",
		int(v.step)+1, v.step.Description())))
	b.WriteString("\n\n")

	labels := v.stepLabels()
	for i, ti := range v.stepInputs() {
		b.WriteString(v.styles.Normal.Render(labels[i] + ": "))
		b.WriteString(ti.View())
		b.WriteString("\n")
	}
}

// stepLabels returns display labels for the current step's inputs.
func (v *View) stepLabels() []string {
	switch v.step {
	case domain.StepDate:
		return []string{"Travel date"}
	case domain.StepParticipants:
		return []string{"Travelers"}
	case domain.StepContact:
		return []string{"Full name", "Email", "Phone"}
	case domain.StepPayment:
		return []string{"Cardholder", "Card number", "Expiry"}
	case domain.StepConfirmation:
		return nil
	default:
		return nil
	}
}

// renderConfirmation renders the confirmed booking summary.
func (v *View) renderConfirmation(b *strings.Builder) {
	if v.confirmation == nil {
		b.WriteString(v.styles.Muted.Render("Confirming..."))
		return
	}

	c := v.confirmation
	b.WriteString(v.styles.Success.Render("Booking confirmed!"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render("Code:       " + c.Code))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("Package:    " + c.PackageTitle))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("Date:       " + c.TravelDate.Format(travelDateLayout)))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Travelers:  %d", c.Participants)))
	b.WriteString("\n")
	b.WriteString(v.styles.Price.Render(fmt.Sprintf("Total:      R$ %.0f", c.TotalPrice)))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Card:       " + c.MaskedCard))
	b.WriteString("\n")
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

// Step returns the current wizard step.
func (v *View) Step() domain.BookingStep {
	return v.step
}

// Draft returns the in-progress booking draft.
func (v *View) Draft() *domain.BookingDraft {
	return v.draft
}

// Confirmation returns the booking confirmation, if the wizard finished.
func (v *View) Confirmation() *domain.BookingConfirmation {
	return v.confirmation
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
