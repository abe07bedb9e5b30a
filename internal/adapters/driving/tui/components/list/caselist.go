// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// CaseList displays stored cases in a navigable list.
type CaseList struct {
	cases    []domain.CaseRecord
	mode     domain.Mode
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewCaseList creates a new case list component.
func NewCaseList(s *styles.Styles) *CaseList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &CaseList{
		mode:   domain.ModeExpungement,
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the case list.
func (l *CaseList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation keys.
func (l *CaseList) Update(msg tea.Msg) (*CaseList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home":
			l.selected = 0
		case "end":
			if len(l.cases) > 0 {
				l.selected = len(l.cases) - 1
			}
		}
	}
	return l, nil
}

// View renders the case list.
func (l *CaseList) View() string {
	if len(l.cases) == 0 {
		return l.styles.Muted.Render("No cases. Import a scraper export with `kokua cases import`.")
	}

	lines := make([]string, 0, len(l.cases)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Cases (%d)", len(l.cases))), "")

	visible := l.height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.cases) {
		end = len(l.cases)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderCase(i, &l.cases[i]))
	}
	return strings.Join(lines, "\n")
}

// renderCase formats one row: marker, case number, defendant, verdict.
func (l *CaseList) renderCase(index int, c *domain.CaseRecord) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	mark := "·"
	if l.Eligible(c) {
		mark = "✓"
	}

	name := truncate(c.DefendantName, l.width/3)
	row := fmt.Sprintf("%s%s %-18s %-*s ", indicator, mark, c.CaseNumber, l.width/3, name)

	verdict := c.Expungeable.String()
	if l.mode == domain.ModeWarrant {
		verdict = c.WarrantStatus.Label()
	}

	if index == l.selected {
		row = l.styles.Selected.Render(row + verdict)
	} else if l.Eligible(c) {
		row = l.styles.Normal.Render(row) + l.styles.Success.Render(verdict)
	} else {
		row = l.styles.Normal.Render(row) + l.styles.Muted.Render(verdict)
	}

	if c.Override {
		row += " " + l.styles.Badge.Render("OVERRIDE")
	}
	return row
}

// Eligible reports whether the case produces paperwork in the current mode.
func (l *CaseList) Eligible(c *domain.CaseRecord) bool {
	if l.mode == domain.ModeWarrant {
		return c.HasOutstandingWarrant()
	}
	return c.ExpungementEligible()
}

// SetCases replaces the list contents, keeping the cursor in range.
func (l *CaseList) SetCases(cases []domain.CaseRecord) {
	l.cases = cases
	if l.selected >= len(cases) {
		l.selected = len(cases) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Cases returns the current cases.
func (l *CaseList) Cases() []domain.CaseRecord {
	return l.cases
}

// SetMode sets the mode used for eligibility markers.
func (l *CaseList) SetMode(mode domain.Mode) {
	l.mode = mode
}

// Selected returns the index of the selected case.
func (l *CaseList) Selected() int {
	return l.selected
}

// SelectedCase returns the currently selected case, or nil if none.
func (l *CaseList) SelectedCase() *domain.CaseRecord {
	if len(l.cases) == 0 || l.selected < 0 || l.selected >= len(l.cases) {
		return nil
	}
	return &l.cases[l.selected]
}

// MoveUp moves selection up.
func (l *CaseList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *CaseList) MoveDown() {
	if l.selected < len(l.cases)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *CaseList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// EligibleCount returns how many loaded cases produce paperwork in the current mode.
func (l *CaseList) EligibleCount() int {
	n := 0
	for i := range l.cases {
		if l.Eligible(&l.cases[i]) {
			n++
		}
	}
	return n
}

// Count returns the number of cases.
func (l *CaseList) Count() int {
	return len(l.cases)
}

func truncate(s string, limit int) string {
	if limit < 4 {
		limit = 4
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
