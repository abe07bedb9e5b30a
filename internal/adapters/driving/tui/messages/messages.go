// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCases is the case review list.
	ViewCases ViewType = iota
	// ViewCaseDetail shows one case with its charges and warrant status.
	ViewCaseDetail
	// ViewReport shows the outcome of the last generation run.
	ViewReport
	// ViewHelp is the keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCases:
		return "cases"
	case ViewCaseDetail:
		return "case_detail"
	case ViewReport:
		return "report"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// CasesLoaded carries the stored cases and the current tool mode.
type CasesLoaded struct {
	Cases []domain.CaseRecord
	Mode  domain.Mode
	Err   error
}

// CaseSelected signals a case was opened.
type CaseSelected struct {
	Case domain.CaseRecord
}

// OverrideToggled reports the result of toggling a case override.
type OverrideToggled struct {
	CaseNumber string
	Override   bool
	Err        error
}

// ModeChanged reports the result of switching the tool mode.
type ModeChanged struct {
	Mode domain.Mode
	Err  error
}

// GenerateStarted signals that a generation run began.
type GenerateStarted struct{}

// GenerateCompleted carries the batch report of a generation run.
type GenerateCompleted struct {
	Report *domain.BatchReport
	Err    error
}
