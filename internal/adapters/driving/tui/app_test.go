package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/services"
)

const testExport = `[
  {"CaseNumber": "1DTC-20-000001", "DefendantName": "DOE, JANE", "Expungeable": "All Expungeable"},
  {"CaseNumber": "1DTC-20-000002", "DefendantName": "DOE, JANE", "Expungeable": "None Expungeable"}
]`

// stubGenerate implements driving.GenerateService for testing.
type stubGenerate struct {
	report *domain.BatchReport
	err    error
}

func (s *stubGenerate) Generate(_ context.Context, _ domain.GenerateOptions) (*domain.BatchReport, error) {
	return s.report, s.err
}

func (s *stubGenerate) History(_ context.Context, _ int) ([]domain.BatchReport, error) {
	return nil, nil
}

func (s *stubGenerate) Run(_ context.Context, _ string) (*domain.BatchReport, error) {
	return nil, domain.ErrNotFound
}

func newTestApp(t *testing.T) (*App, *services.RecordService, *stubGenerate) {
	t.Helper()
	records := services.NewRecordService(memory.NewRecordStore())
	_, err := records.ImportCases(context.Background(), []byte(testExport))
	require.NoError(t, err)

	gen := &stubGenerate{report: &domain.BatchReport{
		RunID: "run-1",
		Mode:  domain.ModeExpungement,
		Results: []domain.ArtifactResult{
			{Kind: domain.KindExpungementLetter, Filename: "Doe_expungement_letter_1DTC-20-000001.docx", Status: domain.StatusEmitted},
		},
	}}

	app, err := NewApp(&Ports{Records: records, Generate: gen})
	require.NoError(t, err)
	app.SetDimensions(120, 30)
	return app, records, gen
}

// load runs Init and feeds the resulting case load back into the app.
func load(t *testing.T, app *App) {
	t.Helper()
	app.Init()
	msg := app.casesView.Init()()
	app.Update(msg)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain executes cmd and feeds every produced message back into the app.
func drain(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(app, c)
		}
	case nil:
	default:
		_, next := app.Update(msg)
		drain(app, next)
	}
}

func TestNewApp_Success(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Equal(t, messages.ViewCases, app.CurrentView())
	assert.True(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	tests := []struct {
		name     string
		ports    *Ports
		expected error
	}{
		{"nil ports", nil, ErrMissingRecordService},
		{"missing records", &Ports{Generate: &stubGenerate{}}, ErrMissingRecordService},
		{"missing generate", &Ports{Records: services.NewRecordService(memory.NewRecordStore())}, ErrMissingGenerateService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(tt.ports)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, app)
		})
	}
}

func TestApp_WithContext(t *testing.T) {
	app, _, _ := newTestApp(t)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(&Ports{Records: services.NewRecordService(memory.NewRecordStore()), Generate: &stubGenerate{}})
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_LoadsCases(t *testing.T) {
	app, _, _ := newTestApp(t)

	load(t, app)

	assert.Equal(t, status.Summary{Cases: 2, Eligible: 1, Mode: domain.ModeExpungement}, app.statusBar.Summary())
	assert.Equal(t, status.StateReady, app.statusBar.State())
	view := app.View()
	assert.Contains(t, view, "1DTC-20-000001")
	assert.Contains(t, view, "2 cases, 1 eligible · expungement mode")
}

func TestApp_WindowSize(t *testing.T) {
	app, _, _ := newTestApp(t)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.Equal(t, 100, app.statusBar.Width())
}

func TestApp_OpenCaseDetail(t *testing.T) {
	app, _, _ := newTestApp(t)
	load(t, app)

	_, cmd := app.Update(key("enter"))
	drain(app, cmd)

	assert.Equal(t, messages.ViewCaseDetail, app.CurrentView())
	assert.Contains(t, app.View(), "1DTC-20-000001")

	_, cmd = app.Update(key("esc"))
	drain(app, cmd)
	assert.Equal(t, messages.ViewCases, app.CurrentView())
}

func TestApp_ToggleOverride(t *testing.T) {
	app, records, _ := newTestApp(t)
	load(t, app)

	_, cmd := app.Update(key("j"))
	drain(app, cmd)
	_, cmd = app.Update(key("o"))
	require.NotNil(t, cmd)
	toggled, ok := cmd().(messages.OverrideToggled)
	require.True(t, ok)

	_, cmd = app.Update(toggled)
	assert.Equal(t, "override set on 1DTC-20-000002", app.statusBar.Message())

	drain(app, cmd)
	c, err := records.Case(context.Background(), "1DTC-20-000002")
	require.NoError(t, err)
	assert.True(t, c.Override)
	assert.Contains(t, app.View(), "OVERRIDE")
}

func TestApp_SwitchMode(t *testing.T) {
	app, records, _ := newTestApp(t)
	load(t, app)

	_, cmd := app.Update(key("m"))
	drain(app, cmd)

	mode, err := records.Mode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeWarrant, mode)
	assert.Equal(t, domain.ModeWarrant, app.statusBar.Summary().Mode)
}

func TestApp_Generate(t *testing.T) {
	app, _, _ := newTestApp(t)
	load(t, app)

	_, cmd := app.Update(key("g"))
	drain(app, cmd)

	assert.Equal(t, messages.ViewReport, app.CurrentView())
	view := app.View()
	assert.Contains(t, view, "Doe_expungement_letter_1DTC-20-000001.docx")
	assert.Contains(t, view, "1 emitted, 0 failed")

	_, cmd = app.Update(key("esc"))
	drain(app, cmd)
	assert.Equal(t, messages.ViewCases, app.CurrentView())
	assert.Equal(t, status.StateReady, app.statusBar.State())
}

func TestApp_GenerateError(t *testing.T) {
	app, _, gen := newTestApp(t)
	gen.report = nil
	gen.err = domain.ErrInvalidInput
	load(t, app)

	_, cmd := app.Update(key("g"))
	drain(app, cmd)

	assert.Equal(t, messages.ViewReport, app.CurrentView())
	assert.ErrorIs(t, app.Err(), domain.ErrInvalidInput)
	assert.Contains(t, app.View(), "Run failed")
}

func TestApp_Help(t *testing.T) {
	app, _, _ := newTestApp(t)
	load(t, app)

	app.Update(key("?"))
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "override")

	app.Update(key("esc"))
	assert.Equal(t, messages.ViewCases, app.CurrentView())
}

func TestApp_Quit(t *testing.T) {
	tests := []string{"q", "ctrl+c"}

	for _, k := range tests {
		t.Run(k, func(t *testing.T) {
			app, _, _ := newTestApp(t)

			_, cmd := app.Update(key(k))
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestApp_QuitMessage(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app, _, _ := newTestApp(t)
	boom := errors.New("boom")

	app.Update(messages.ErrorOccurred{Err: boom})

	assert.Equal(t, boom, app.Err())
	assert.Equal(t, status.StateError, app.statusBar.State())
	assert.Contains(t, app.View(), "Error: boom")
}
