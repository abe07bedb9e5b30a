package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// printer writes command output, styled when it goes to a terminal.
type printer struct {
	w      io.Writer
	styles *styles.Styles
}

func newPrinter(cmd *cobra.Command) *printer {
	p := &printer{w: cmd.OutOrStdout()}
	if f, ok := p.w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.styles = styles.DefaultStyles()
	}
	return p
}

func (p *printer) render(style func(*styles.Styles) string, text string) string {
	if p.styles == nil {
		return text
	}
	return style(p.styles)
}

func (p *printer) title(text string) {
	fmt.Fprintln(p.w, p.render(func(s *styles.Styles) string { return s.Title.Render(text) }, text))
}

func (p *printer) success(text string) string {
	return p.render(func(s *styles.Styles) string { return s.Success.Render(text) }, text)
}

func (p *printer) warning(text string) string {
	return p.render(func(s *styles.Styles) string { return s.Warning.Render(text) }, text)
}

func (p *printer) failure(text string) string {
	return p.render(func(s *styles.Styles) string { return s.Error.Render(text) }, text)
}

func (p *printer) muted(text string) string {
	return p.render(func(s *styles.Styles) string { return s.Muted.Render(text) }, text)
}

// report prints every document of a run followed by the summary line.
func (p *printer) report(report *domain.BatchReport) {
	p.title(fmt.Sprintf("Run %s (%s)", report.RunID, report.Mode))
	if !report.StartedAt.IsZero() {
		fmt.Fprintln(p.w, p.muted("started "+report.StartedAt.Format("2006-01-02 15:04:05")))
	}
	if len(report.Results) == 0 {
		fmt.Fprintln(p.w, "No eligible documents.")
		return
	}

	for _, res := range report.Results {
		name := res.Filename
		if name == "" {
			name = fmt.Sprintf("%s %s", res.Kind, res.CaseNumber)
		}
		switch res.Status {
		case domain.StatusEmitted:
			fmt.Fprintf(p.w, "  %s %s\n", p.success("ok"), name)
		case domain.StatusEmittedWithWarnings:
			fmt.Fprintf(p.w, "  %s %s\n", p.warning("warn"), name)
		default:
			fmt.Fprintf(p.w, "  %s %s: %s\n", p.failure("FAIL"), name, res.Reason())
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(p.w, "       %s\n", p.warning(w))
		}
	}

	summary := fmt.Sprintf("%d emitted, %d failed", report.Succeeded(), report.Failed())
	if report.Failed() > 0 {
		summary = p.failure(summary)
	} else {
		summary = p.success(summary)
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, summary)
}
