// Package cases provides the case review view for the TUI.
package cases

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driving"
)

// ErrServiceUnavailable is reported when a command runs without its service.
var ErrServiceUnavailable = errors.New("service not available")

// View lists the stored cases and runs case-level actions.
type View struct {
	styles   *styles.Styles
	records  driving.RecordService
	generate driving.GenerateService
	ctx      context.Context

	list    *list.CaseList
	mode    domain.Mode
	loading bool
	err     error
	width   int
	height  int
}

// NewView creates a new case review view.
func NewView(s *styles.Styles, records driving.RecordService, generate driving.GenerateService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		records:  records,
		generate: generate,
		ctx:      context.Background(),
		list:     list.NewCaseList(s),
		mode:     domain.ModeExpungement,
	}
}

// WithContext sets the context used by service calls.
func (v *View) WithContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads the stored cases.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadCases()
}

func (v *View) loadCases() tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		if v.records == nil {
			return messages.CasesLoaded{Err: ErrServiceUnavailable}
		}
		cases, err := v.records.Cases(ctx)
		if err != nil {
			return messages.CasesLoaded{Err: err}
		}
		mode, err := v.records.Mode(ctx)
		return messages.CasesLoaded{Cases: cases, Mode: mode, Err: err}
	}
}

// Update handles messages for the case view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.CasesLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.list.SetCases(msg.Cases)
			v.setMode(msg.Mode)
		}
		return v, nil

	case messages.OverrideToggled:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadCases()

	case messages.ModeChanged:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.setMode(msg.Mode)
		return v, nil
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if c := v.list.SelectedCase(); c != nil {
			selected := *c
			return v, func() tea.Msg { return messages.CaseSelected{Case: selected} }
		}
	case "o":
		if c := v.list.SelectedCase(); c != nil {
			return v, v.toggleOverride(c.CaseNumber, !c.Override)
		}
	case "g":
		return v, tea.Batch(
			func() tea.Msg { return messages.GenerateStarted{} },
			v.runGenerate(),
		)
	case "m":
		next := domain.ModeWarrant
		if v.mode == domain.ModeWarrant {
			next = domain.ModeExpungement
		}
		return v, v.switchMode(next)
	case "r":
		v.loading = true
		return v, v.loadCases()
	default:
		v.list, _ = v.list.Update(msg)
	}
	return v, nil
}

func (v *View) toggleOverride(caseNumber string, override bool) tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		if v.records == nil {
			return messages.OverrideToggled{CaseNumber: caseNumber, Err: ErrServiceUnavailable}
		}
		err := v.records.SetOverride(ctx, caseNumber, override)
		return messages.OverrideToggled{CaseNumber: caseNumber, Override: override, Err: err}
	}
}

func (v *View) switchMode(mode domain.Mode) tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		if v.records == nil {
			return messages.ModeChanged{Err: ErrServiceUnavailable}
		}
		if err := v.records.SetMode(ctx, mode); err != nil {
			return messages.ModeChanged{Err: err}
		}
		return messages.ModeChanged{Mode: mode}
	}
}

func (v *View) runGenerate() tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		if v.generate == nil {
			return messages.GenerateCompleted{Err: ErrServiceUnavailable}
		}
		report, err := v.generate.Generate(ctx, domain.GenerateOptions{})
		return messages.GenerateCompleted{Report: report, Err: err}
	}
}

func (v *View) setMode(mode domain.Mode) {
	if !mode.IsValid() {
		mode = domain.ModeExpungement
	}
	v.mode = mode
	v.list.SetMode(mode)
}

// View renders the case review screen.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Kokua"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render("Case review · " + v.mode.String()))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading cases..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(v.list.View())
	default:
		b.WriteString(v.list.View())
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-4)
}

// Mode returns the current tool mode.
func (v *View) Mode() domain.Mode {
	return v.mode
}

// Count returns the number of loaded cases.
func (v *View) Count() int {
	return v.list.Count()
}

// EligibleCount returns the number of cases that produce paperwork in the current mode.
func (v *View) EligibleCount() int {
	return v.list.EligibleCount()
}

// Loading reports whether cases are being loaded.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
