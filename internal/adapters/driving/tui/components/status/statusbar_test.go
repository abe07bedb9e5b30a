package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, Summary{}, bar.Summary())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_Setters(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateGenerating)
	bar.SetMessage("3 documents")
	bar.SetSummary(Summary{Cases: 4, Eligible: 1, Mode: domain.ModeWarrant})
	bar.SetWidth(120)

	assert.Equal(t, StateGenerating, bar.State())
	assert.Equal(t, "3 documents", bar.Message())
	assert.Equal(t, Summary{Cases: 4, Eligible: 1, Mode: domain.ModeWarrant}, bar.Summary())
	assert.Equal(t, 120, bar.Width())

	bar.Clear()
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 4, bar.Summary().Cases, "clear keeps the summary")
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Bar)
		contains []string
	}{
		{
			name:     "ready with cases",
			setup:    func(b *Bar) { b.SetSummary(Summary{Cases: 2, Eligible: 1, Mode: domain.ModeExpungement}) },
			contains: []string{"2 cases, 1 eligible · expungement mode", "o: override", "g: generate"},
		},
		{
			name:     "ready with message",
			setup:    func(b *Bar) { b.SetSummary(Summary{Cases: 1}); b.SetMessage("override set") },
			contains: []string{"1 cases, 0 eligible", "override set"},
		},
		{
			name:     "ready without cases",
			setup:    func(*Bar) {},
			contains: []string{"0 cases", "q: quit", "?: help"},
		},
		{
			name:     "loading",
			setup:    func(b *Bar) { b.SetState(StateLoading) },
			contains: []string{"Loading cases..."},
		},
		{
			name:     "generating",
			setup:    func(b *Bar) { b.SetState(StateGenerating) },
			contains: []string{"Generating documents..."},
		},
		{
			name:     "error with message",
			setup:    func(b *Bar) { b.SetState(StateError); b.SetMessage("boom") },
			contains: []string{"Error: boom"},
		},
		{
			name:     "error without message",
			setup:    func(b *Bar) { b.SetState(StateError) },
			contains: []string{"Error"},
		},
		{
			name:     "help",
			setup:    func(b *Bar) { b.SetState(StateHelp) },
			contains: []string{"Help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(200)
			tt.setup(bar)

			view := bar.View()
			for _, want := range tt.contains {
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestStatusBar_View_NarrowWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(5)

	assert.NotEmpty(t, bar.View())
}

func TestSummary_String(t *testing.T) {
	assert.Equal(t, "0 cases, 0 eligible", Summary{}.String())
	assert.Equal(t, "3 cases, 2 eligible · warrant mode", Summary{Cases: 3, Eligible: 2, Mode: domain.ModeWarrant}.String())
}
