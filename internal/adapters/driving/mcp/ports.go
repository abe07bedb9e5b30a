package mcp

import (
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Records manages imported cases and operator profiles.
	Records driving.RecordService

	// Generate runs document assembly. Optional.
	Generate driving.GenerateService

	// Templates inspects registered templates. Optional.
	Templates driving.TemplateService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Records == nil {
		return ErrMissingRecordService
	}
	return nil
}
