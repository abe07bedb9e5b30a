// Package casedetail provides the single-case view for the TUI.
package casedetail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// View shows one case with its charges and warrant status.
type View struct {
	styles *styles.Styles
	c      *domain.CaseRecord
	offset int
	width  int
	height int
}

// NewView creates a new case detail view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// SetCase sets the displayed case and resets scrolling.
func (v *View) SetCase(c domain.CaseRecord) {
	v.c = &c
	v.offset = 0
}

// Case returns the displayed case.
func (v *View) Case() *domain.CaseRecord {
	return v.c
}

// Update handles scrolling and navigation back to the list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewCases} }
		case "down", "j":
			v.offset++
		case "up", "k":
			if v.offset > 0 {
				v.offset--
			}
		}
	}
	return v, nil
}

// View renders the case.
func (v *View) View() string {
	if v.c == nil {
		return v.styles.Muted.Render("No case selected")
	}

	lines := v.lines()
	visible := v.height - 2
	if visible < 1 {
		visible = 1
	}
	if maxOffset := len(lines) - visible; v.offset > maxOffset {
		v.offset = max(maxOffset, 0)
	}
	end := min(v.offset+visible, len(lines))

	return strings.Join(lines[v.offset:end], "\n") + "\n" +
		v.styles.Help.Render("[j/k] scroll  [esc] back")
}

func (v *View) lines() []string {
	c := v.c
	lines := []string{
		v.styles.Title.Render(c.CaseNumber),
		v.styles.Normal.Render(c.DefendantName),
		"",
		v.field("Case type", c.CaseType),
		v.field("Court", c.CourtLocation),
		v.field("Filed", c.FilingDate),
		v.verdict(c.Expungeable),
	}
	if c.Override {
		lines = append(lines, v.styles.Badge.Render("OVERRIDE")+" "+v.styles.Muted.Render("expungement paperwork forced"))
	}
	if c.Explanation != "" {
		lines = append(lines, v.field("Explanation", c.Explanation))
	}

	lines = append(lines, "", v.styles.Subtitle.Render("Warrant"), v.field("Status", c.WarrantStatus.Label()))
	if w := c.WarrantStatus; w != nil {
		if w.LatestWarrantType != "" {
			lines = append(lines, v.field("Type", string(w.LatestWarrantType)))
		}
		lines = append(lines, v.field("Issued", w.LatestWarrantDate), v.field("Amount", w.LatestWarrantAmount))
	}

	lines = append(lines, "", v.styles.Subtitle.Render(fmt.Sprintf("Charges (%d)", len(c.Charges))))
	for _, ch := range c.Charges {
		head := strings.TrimSpace(strings.Join([]string{ch.Count, ch.Statute, ch.Description}, " "))
		lines = append(lines, "  "+v.styles.Normal.Render(head))
		if ch.Expungeability.Status != "" {
			lines = append(lines, "    "+v.styles.Muted.Render(ch.Expungeability.Status))
		}
		for _, d := range ch.DispositionSummary() {
			lines = append(lines, "    "+v.styles.Muted.Render(d))
		}
	}
	return lines
}

func (v *View) verdict(e domain.Expungeability) string {
	value := e.String()
	if value == "" {
		value = "-"
	}
	return v.styles.Muted.Render(fmt.Sprintf("%-12s ", "Expungeable:")) + v.styles.ForVerdict(e).Render(value)
}

func (v *View) field(label, value string) string {
	if value == "" {
		value = "-"
	}
	return v.styles.Muted.Render(fmt.Sprintf("%-12s ", label+":")) + v.styles.Normal.Render(value)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
