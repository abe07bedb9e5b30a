// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady      State = "ready"
	StateLoading    State = "loading"
	StateGenerating State = "generating"
	StateError      State = "error"
	StateHelp       State = "help"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	summary Summary
	width   int
}

// Summary describes the loaded cases for the current mode.
type Summary struct {
	Cases    int
	Eligible int
	Mode     domain.Mode
}

func (s Summary) String() string {
	text := fmt.Sprintf("%d cases, %d eligible", s.Cases, s.Eligible)
	if s.Mode != "" {
		text += " · " + s.Mode.String() + " mode"
	}
	return text
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - s.styles.StatusBar.GetHorizontalPadding() - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading cases...")
	case StateGenerating:
		return s.styles.Warning.Render("Generating documents...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateReady:
	}

	left := s.styles.Normal.Render(s.summary.String())
	if s.message != "" {
		left += s.styles.Muted.Render(" · ") + s.styles.Success.Render(s.message)
	}
	return left
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StateReady && s.summary.Cases > 0 {
		bindings = s.keymap.CasesHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetSummary replaces the case summary.
func (s *Bar) SetSummary(summary Summary) {
	s.summary = summary
}

// Summary returns the displayed case summary.
func (s *Bar) Summary() Summary {
	return s.summary
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear drops the message and returns to StateReady. The summary is kept.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
