package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// ListCasesInput is the input schema for the list_cases tool.
type ListCasesInput struct {
	Mode         string `json:"mode,omitempty" jsonschema:"expungement or warrant; defaults to the stored mode"`
	EligibleOnly bool   `json:"eligible_only,omitempty" jsonschema:"only return cases that produce paperwork in the mode"`
}

// ListCasesOutput is the output schema for the list_cases tool.
type ListCasesOutput struct {
	Mode  string        `json:"mode"`
	Cases []CaseSummary `json:"cases"`
	Count int           `json:"count"`
}

// CaseSummary is one case as reported to the assistant.
type CaseSummary struct {
	CaseNumber    string `json:"case_number"`
	DefendantName string `json:"defendant_name"`
	Expungeable   string `json:"expungeable"`
	Override      bool   `json:"override"`
	WarrantStatus string `json:"warrant_status"`
	Eligible      bool   `json:"eligible"`
	Charges       int    `json:"charges"`
}

// SetOverrideInput is the input schema for the set_override tool.
type SetOverrideInput struct {
	CaseNumber string `json:"case_number" jsonschema:"the court case number"`
	Override   bool   `json:"override" jsonschema:"true to force expungement paperwork for the case"`
}

// SetOverrideOutput is the output schema for the set_override tool.
type SetOverrideOutput struct {
	CaseNumber string `json:"case_number"`
	Override   bool   `json:"override"`
}

// GenerateInput is the input schema for the generate tool.
type GenerateInput struct {
	Mode        string   `json:"mode,omitempty" jsonschema:"expungement or warrant; defaults to the stored mode"`
	CaseNumbers []string `json:"case_numbers,omitempty" jsonschema:"restrict the run to these cases"`
}

// GenerateOutput is the output schema for the generate tool.
type GenerateOutput struct {
	RunID     string         `json:"run_id"`
	Mode      string         `json:"mode"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Results   []ResultOutput `json:"results"`
}

// ResultOutput represents one rendered document.
type ResultOutput struct {
	Kind       string   `json:"kind"`
	CaseNumber string   `json:"case_number,omitempty"`
	ClientName string   `json:"client_name,omitempty"`
	Filename   string   `json:"filename,omitempty"`
	Status     string   `json:"status"`
	Reason     string   `json:"reason,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// CheckTemplatesInput is the input schema for the check_templates tool.
type CheckTemplatesInput struct{}

// CheckTemplatesOutput is the output schema for the check_templates tool.
type CheckTemplatesOutput struct {
	Templates []TemplateOutput `json:"templates"`
	OK        bool             `json:"ok"`
}

// TemplateOutput reports one template check.
type TemplateOutput struct {
	Kind     string `json:"kind"`
	Variant  string `json:"variant"`
	Resource string `json:"resource"`
	Error    string `json:"error,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_cases",
		Description: "List imported court cases with their verdicts and eligibility",
	}, s.handleListCases)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "set_override",
		Description: "Set or clear the operator override on a case",
	}, s.handleSetOverride)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate",
		Description: "Assemble paperwork for the stored cases and report each document",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_templates",
		Description: "Verify every registered template loads and carries its placeholders",
	}, s.handleCheckTemplates)
}

func (s *Server) handleListCases(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListCasesInput,
) (*mcp.CallToolResult, ListCasesOutput, error) {
	mode, err := s.resolveMode(ctx, input.Mode)
	if err != nil {
		return nil, ListCasesOutput{}, err
	}

	cases, err := s.ports.Records.Cases(ctx)
	if err != nil {
		return nil, ListCasesOutput{}, fmt.Errorf("listing cases: %w", err)
	}

	output := ListCasesOutput{Mode: mode.String(), Cases: make([]CaseSummary, 0, len(cases))}
	for i := range cases {
		summary := summarise(&cases[i], mode)
		if input.EligibleOnly && !summary.Eligible {
			continue
		}
		output.Cases = append(output.Cases, summary)
	}
	output.Count = len(output.Cases)

	return nil, output, nil
}

func (s *Server) handleSetOverride(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SetOverrideInput,
) (*mcp.CallToolResult, SetOverrideOutput, error) {
	if input.CaseNumber == "" {
		return nil, SetOverrideOutput{}, fmt.Errorf("%w: case_number is required", domain.ErrInvalidInput)
	}
	if err := s.ports.Records.SetOverride(ctx, input.CaseNumber, input.Override); err != nil {
		return nil, SetOverrideOutput{}, err
	}
	return nil, SetOverrideOutput{CaseNumber: input.CaseNumber, Override: input.Override}, nil
}

func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	if s.ports.Generate == nil {
		return nil, GenerateOutput{}, ErrGenerateUnavailable
	}

	opts := domain.GenerateOptions{
		Mode:        domain.Mode(input.Mode),
		CaseNumbers: input.CaseNumbers,
	}
	if opts.Mode != "" && !opts.Mode.IsValid() {
		return nil, GenerateOutput{}, fmt.Errorf("%w: mode %q", domain.ErrInvalidInput, input.Mode)
	}

	report, err := s.ports.Generate.Generate(ctx, opts)
	if err != nil {
		return nil, GenerateOutput{}, err
	}
	return nil, reportOutput(report), nil
}

func (s *Server) handleCheckTemplates(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CheckTemplatesInput,
) (*mcp.CallToolResult, CheckTemplatesOutput, error) {
	if s.ports.Templates == nil {
		return nil, CheckTemplatesOutput{}, ErrTemplatesUnavailable
	}

	checks, err := s.ports.Templates.Check(ctx)
	if err != nil {
		return nil, CheckTemplatesOutput{}, err
	}

	output := CheckTemplatesOutput{Templates: make([]TemplateOutput, len(checks)), OK: true}
	for i, c := range checks {
		output.Templates[i] = TemplateOutput{
			Kind:     c.Kind.String(),
			Variant:  string(c.Variant),
			Resource: c.Resource,
		}
		if !c.OK() {
			output.Templates[i].Error = c.Err.Error()
			output.OK = false
		}
	}
	return nil, output, nil
}

// resolveMode validates an explicit mode or falls back to the stored one.
func (s *Server) resolveMode(ctx context.Context, raw string) (domain.Mode, error) {
	if raw == "" {
		return s.ports.Records.Mode(ctx)
	}
	mode := domain.Mode(raw)
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: mode %q", domain.ErrInvalidInput, raw)
	}
	return mode, nil
}

func summarise(c *domain.CaseRecord, mode domain.Mode) CaseSummary {
	eligible := c.ExpungementEligible()
	if mode == domain.ModeWarrant {
		eligible = c.HasOutstandingWarrant()
	}
	return CaseSummary{
		CaseNumber:    c.CaseNumber,
		DefendantName: c.DefendantName,
		Expungeable:   c.Expungeable.String(),
		Override:      c.Override,
		WarrantStatus: c.WarrantStatus.Label(),
		Eligible:      eligible,
		Charges:       len(c.Charges),
	}
}

func reportOutput(report *domain.BatchReport) GenerateOutput {
	output := GenerateOutput{
		RunID:     report.RunID,
		Mode:      report.Mode.String(),
		Succeeded: report.Succeeded(),
		Failed:    report.Failed(),
		Results:   make([]ResultOutput, len(report.Results)),
	}
	for i := range report.Results {
		r := &report.Results[i]
		output.Results[i] = ResultOutput{
			Kind:       r.Kind.String(),
			CaseNumber: r.CaseNumber,
			ClientName: r.ClientName,
			Filename:   r.Filename,
			Status:     string(r.Status),
			Reason:     r.Reason(),
			Warnings:   r.Warnings,
		}
	}
	return output
}
