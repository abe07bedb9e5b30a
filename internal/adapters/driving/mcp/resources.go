package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for kokua resources.
	uriScheme = "kokua://"

	// historyLimit caps the runs listed by the runs resource.
	historyLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "cases",
		Name:        "cases",
		Description: "Every imported court case",
		MIMEType:    "application/json",
	}, s.handleCasesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "cases/{caseNumber}",
		Name:        "case",
		Description: "One imported case with its charges and warrant entries",
		MIMEType:    "application/json",
	}, s.handleCaseResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recent assembly runs, newest first",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run",
		Description: "The per-document report of one assembly run",
		MIMEType:    "application/json",
	}, s.handleRunResource)
}

// handleCasesResource returns every stored case.
func (s *Server) handleCasesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	cases, err := s.ports.Records.Cases(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	if cases == nil {
		cases = []domain.CaseRecord{}
	}
	return jsonResult(req.Params.URI, cases)
}

// handleCaseResource returns a single case.
func (s *Server) handleCaseResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	caseNumber := extractCaseNumber(req.Params.URI)
	if caseNumber == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	c, err := s.ports.Records.Case(ctx, caseNumber)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting case: %w", err)
	}
	return jsonResult(req.Params.URI, c)
}

// handleRunsResource returns recent run summaries.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Generate == nil {
		return jsonResult(req.Params.URI, []GenerateOutput{})
	}

	reports, err := s.ports.Generate.History(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	type runInfo struct {
		RunID     string `json:"run_id"`
		Mode      string `json:"mode"`
		StartedAt string `json:"started_at"`
		Succeeded int    `json:"succeeded"`
		Failed    int    `json:"failed"`
	}

	infos := make([]runInfo, len(reports))
	for i := range reports {
		infos[i] = runInfo{
			RunID:     reports[i].RunID,
			Mode:      reports[i].Mode.String(),
			StartedAt: reports[i].StartedAt.Format(time.RFC3339),
			Succeeded: reports[i].Succeeded(),
			Failed:    reports[i].Failed(),
		}
	}
	return jsonResult(req.Params.URI, infos)
}

// handleRunResource returns the report of one run.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Generate == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	report, err := s.ports.Generate.Run(ctx, runID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return jsonResult(req.Params.URI, reportOutput(report))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCaseNumber extracts the case number from a URI like kokua://cases/{caseNumber}.
func extractCaseNumber(uri string) string {
	return extractID(uri, uriScheme+"cases/")
}

// extractRunID extracts the run id from a URI like kokua://runs/{runId}.
func extractRunID(uri string) string {
	return extractID(uri, uriScheme+"runs/")
}

func extractID(uri, prefix string) string {
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
