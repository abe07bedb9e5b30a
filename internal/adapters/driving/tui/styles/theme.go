// Package styles provides the colour theme and lipgloss styles shared by the
// TUI and the styled command output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// Theme defines the colour palette.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#0E7490"), // Deep teal
		Secondary:  lipgloss.Color("#F59E0B"), // Amber
		Background: lipgloss.Color("#0F172A"), // Slate
		Foreground: lipgloss.Color("#E2E8F0"), // Light slate
		Muted:      lipgloss.Color("#64748B"), // Mid slate
		Success:    lipgloss.Color("#22C55E"), // Green
		Warning:    lipgloss.Color("#EAB308"), // Yellow
		Error:      lipgloss.Color("#EF4444"), // Red
		Border:     lipgloss.Color("#334155"), // Border slate
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style

	// Selected highlights the cursor row of a list.
	Selected lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Badge marks short inline tags such as an operator override.
	Badge lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
	Border    lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Secondary).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#020617")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// ForStatus returns the style for an artifact outcome.
func (s *Styles) ForStatus(status domain.ArtifactStatus) lipgloss.Style {
	switch status {
	case domain.StatusEmitted:
		return s.Success
	case domain.StatusEmittedWithWarnings:
		return s.Warning
	default:
		return s.Error
	}
}

// StatusMark returns the one-glyph marker for an artifact outcome.
func StatusMark(status domain.ArtifactStatus) string {
	switch status {
	case domain.StatusEmitted:
		return "✓"
	case domain.StatusEmittedWithWarnings:
		return "!"
	default:
		return "✗"
	}
}

// ForVerdict colours an expungeability verdict: a full verdict is a success,
// "None Expungeable" an error, and everything in between a warning.
func (s *Styles) ForVerdict(e domain.Expungeability) lipgloss.Style {
	switch e.String() {
	case string(domain.ExpungeableAll):
		return s.Success
	case string(domain.ExpungeableNone):
		return s.Error
	case "":
		return s.Muted
	default:
		return s.Warning
	}
}
