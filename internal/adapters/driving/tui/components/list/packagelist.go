// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wayfarer-labs/wayfarer-cli/internal/adapters/driving/tui/styles"
	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// PackageList displays travel packages in a navigable list.
type PackageList struct {
	packages []domain.TravelPackage
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewPackageList creates a new package list component.
func NewPackageList(s *styles.Styles) *PackageList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &PackageList{
		packages: nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the package list.
func (p *PackageList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (p *PackageList) Update(msg tea.Msg) (*PackageList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			p.MoveUp()
		case tea.KeyDown:
			p.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			p.MoveUp()
		case "j":
			p.MoveDown()
		}
	}
	return p, nil
}

// View renders the package list.
func (p *PackageList) View() string {
	if len(p.packages) == 0 {
		return p.styles.Muted.Render("No packages")
	}

	lines := make([]string, 0, len(p.packages)*2+2)

	// Header
	header := p.styles.Subtitle.Render(fmt.Sprintf("Packages (%d)", len(p.packages)))
	lines = append(lines, header, "")

	// Each entry takes two lines plus spacing
	visibleCount := (p.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if p.selected >= visibleCount {
		start = p.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(p.packages) {
		end = len(p.packages)
	}

	for i := start; i < end; i++ {
		lines = append(lines, p.renderPackage(i, &p.packages[i]))
	}

	return strings.Join(lines, "\n")
}

// renderPackage formats a single package entry.
func (p *PackageList) renderPackage(index int, pkg *domain.TravelPackage) string {
	indicator := "  "
	if index == p.selected {
		indicator = "> "
	}

	title := pkg.Title
	maxTitleLen := p.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	rating := fmt.Sprintf("%.1f★", pkg.Rating)

	var titleLine string
	if index == p.selected {
		titleLine = p.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, rating))
	} else {
		titleLine = p.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			p.styles.Muted.Render(rating)
	}

	detail := fmt.Sprintf("    %s, %s · %d days · from R$ %.0f",
		pkg.Destination, pkg.Country, pkg.DurationDays, pkg.Price.Min)
	detailLine := p.styles.Muted.Render(detail)

	var badgeLine string
	if pkg.Badge != domain.BadgeNone {
		badgeLine = "\n" + "    " + p.styles.Badge.Render(pkg.Badge.Description())
	}

	return titleLine + "\n" + detailLine + badgeLine
}

// SetPackages updates the package list.
func (p *PackageList) SetPackages(packages []domain.TravelPackage) {
	p.packages = packages
	p.selected = 0
}

// Packages returns the current packages.
func (p *PackageList) Packages() []domain.TravelPackage {
	return p.packages
}

// Selected returns the index of the selected package.
func (p *PackageList) Selected() int {
	return p.selected
}

// SetSelected sets the selected index.
func (p *PackageList) SetSelected(index int) {
	if index >= 0 && index < len(p.packages) {
		p.selected = index
	}
}

// SelectedPackage returns the currently selected package, or nil if none.
func (p *PackageList) SelectedPackage() *domain.TravelPackage {
	if len(p.packages) == 0 || p.selected < 0 || p.selected >= len(p.packages) {
		return nil
	}
	return &p.packages[p.selected]
}

// MoveUp moves selection up.
func (p *PackageList) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves selection down.
func (p *PackageList) MoveDown() {
	if p.selected < len(p.packages)-1 {
		p.selected++
	}
}

// SetDimensions sets the list dimensions.
func (p *PackageList) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

// Width returns the current width.
func (p *PackageList) Width() int {
	return p.width
}

// Height returns the current height.
func (p *PackageList) Height() int {
	return p.height
}

// Count returns the number of packages.
func (p *PackageList) Count() int {
	return len(p.packages)
}

// IsEmpty reports whether the list has no packages.
func (p *PackageList) IsEmpty() bool {
	return len(p.packages) == 0
}
