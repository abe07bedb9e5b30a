// Package report provides the generation report view for the TUI.
package report

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// View shows the outcome of a generation run.
type View struct {
	styles *styles.Styles
	report *domain.BatchReport
	err    error
	width  int
	height int
}

// NewView creates a new report view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// SetResult sets the report or the error that prevented the run.
func (v *View) SetResult(report *domain.BatchReport, err error) {
	v.report = report
	v.err = err
}

// Report returns the displayed report.
func (v *View) Report() *domain.BatchReport {
	return v.report
}

// Update returns to the case list on esc.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && (msg.String() == "esc" || msg.String() == "q") {
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewCases} }
	}
	return v, nil
}

// View renders the report.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Generation report"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Run failed: " + v.err.Error()))
	case v.report == nil:
		b.WriteString(v.styles.Muted.Render("No run yet"))
	case len(v.report.Results) == 0:
		b.WriteString(v.styles.Muted.Render("No eligible documents for mode " + v.report.Mode.String()))
	default:
		for _, res := range v.report.Results {
			b.WriteString(v.renderResult(res))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		summary := fmt.Sprintf("%d emitted, %d failed", v.report.Succeeded(), v.report.Failed())
		if v.report.Failed() > 0 {
			b.WriteString(v.styles.Error.Render(summary))
		} else {
			b.WriteString(v.styles.Success.Render(summary))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[esc] back to cases"))
	return b.String()
}

func (v *View) renderResult(res domain.ArtifactResult) string {
	mark := v.styles.ForStatus(res.Status).Render(styles.StatusMark(res.Status))

	name := res.Filename
	if name == "" {
		name = fmt.Sprintf("%s %s", res.Kind, res.CaseNumber)
	}
	line := fmt.Sprintf("%s %s", mark, v.styles.Normal.Render(name))
	if reason := res.Reason(); reason != "" {
		line += "\n    " + v.styles.Error.Render(reason)
	}
	for _, w := range res.Warnings {
		line += "\n    " + v.styles.Warning.Render(w)
	}
	return line
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
