package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/views/casedetail"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/views/cases"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/views/report"
)

// App is the main TUI application following the Elm architecture.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	casesView  *cases.View
	detailView *casedetail.View
	reportView *report.View
	statusBar  *status.Bar

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		casesView:   cases.NewView(s, ports.Records, ports.Generate),
		detailView:  casedetail.NewView(s),
		reportView:  report.NewView(s),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewCases,
	}, nil
}

// WithContext sets the context for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.casesView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.statusBar.SetState(status.StateLoading)
	return tea.Batch(
		tea.SetWindowTitle("kokua - case review"),
		a.casesView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.CasesLoaded:
		a.casesView, cmd = a.casesView.Update(msg)
		a.statusBar.Clear()
		if msg.Err != nil {
			a.setError(msg.Err)
		}
		a.refreshSummary()
		return a, cmd

	case messages.OverrideToggled:
		a.casesView, cmd = a.casesView.Update(msg)
		if msg.Err != nil {
			a.setError(msg.Err)
		} else {
			a.statusBar.SetMessage(overrideMessage(msg))
			a.refreshSummary()
		}
		return a, cmd

	case messages.ModeChanged:
		a.casesView, cmd = a.casesView.Update(msg)
		if msg.Err != nil {
			a.setError(msg.Err)
		} else {
			a.refreshSummary()
		}
		return a, cmd

	case messages.CaseSelected:
		a.detailView.SetCase(msg.Case)
		a.currentView = messages.ViewCaseDetail
		return a, nil

	case messages.GenerateStarted:
		a.statusBar.SetState(status.StateGenerating)
		return a, nil

	case messages.GenerateCompleted:
		a.reportView.SetResult(msg.Report, msg.Err)
		a.currentView = messages.ViewReport
		a.statusBar.Clear()
		if msg.Err != nil {
			a.setError(msg.Err)
		} else if msg.Report != nil {
			a.statusBar.SetMessage(fmt.Sprintf("%d emitted, %d failed", msg.Report.Succeeded(), msg.Report.Failed()))
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewCases {
			a.statusBar.SetState(status.StateReady)
		}
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewCases:
		switch {
		case keymap.Matches(msg.String(), a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(msg.String(), a.keymap.Help):
			a.currentView = messages.ViewHelp
			a.statusBar.SetState(status.StateHelp)
			return a, nil
		}
		a.casesView, cmd = a.casesView.Update(msg)
		return a, cmd

	case messages.ViewCaseDetail:
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.ViewReport:
		a.reportView, cmd = a.reportView.Update(msg)
		if keymap.Matches(msg.String(), a.keymap.Back) || msg.String() == "q" {
			// Reload so overrides and counts reflect the run.
			a.statusBar.SetState(status.StateLoading)
			return a, tea.Batch(cmd, a.casesView.Init())
		}
		return a, cmd

	case messages.ViewHelp:
		if keymap.Matches(msg.String(), a.keymap.Back) || keymap.Matches(msg.String(), a.keymap.Help) {
			a.currentView = messages.ViewCases
			a.statusBar.SetState(status.StateReady)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) refreshSummary() {
	a.statusBar.SetSummary(status.Summary{
		Cases:    a.casesView.Count(),
		Eligible: a.casesView.EligibleCount(),
		Mode:     a.casesView.Mode(),
	})
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

func overrideMessage(msg messages.OverrideToggled) string {
	if msg.Override {
		return "override set on " + msg.CaseNumber
	}
	return "override cleared on " + msg.CaseNumber
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewCaseDetail:
		body = a.detailView.View()
	case messages.ViewReport:
		body = a.reportView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.casesView.View()
	}

	return body + "\n\n" + a.statusBar.View()
}

// viewHelp renders the keybindings.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-8s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to cases"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.casesView.SetDimensions(width, height-2)
	a.detailView.SetDimensions(width, height-2)
	a.reportView.SetDimensions(width, height-2)
	a.statusBar.SetWidth(width)
}
