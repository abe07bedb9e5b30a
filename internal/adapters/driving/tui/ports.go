// Package tui provides an interactive terminal user interface for reviewing
// cases and generating paperwork. It is a driving adapter over the core services.
package tui

import (
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Records manages cases, overrides and the tool mode.
	Records driving.RecordService

	// Generate runs document assembly.
	Generate driving.GenerateService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Records == nil {
		return ErrMissingRecordService
	}
	if p.Generate == nil {
		return ErrMissingGenerateService
	}
	return nil
}
