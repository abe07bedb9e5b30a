package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kokua-cli/internal/logger"
)

// Ensure AssemblyService implements the interface.
var _ driving.DocumentAssembler = (*AssemblyService)(nil)

// MIME types of emitted artifacts.
const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Scope is the unit a document kind is rendered for.
type Scope int

// Document scopes.
const (
	// ScopeClient renders one document per client.
	ScopeClient Scope = iota
	// ScopeCase renders one document per eligible case.
	ScopeCase
)

// DocumentKindSpec describes how and when one document kind is produced.
type DocumentKindSpec struct {
	Kind      domain.DocumentKind
	Mode      domain.Mode
	Scope     Scope
	Suffix    string
	Extension string
	MIMEType  string

	// Eligible reports whether a case produces this document. For client
	// scoped kinds the client qualifies when it has at least one case.
	Eligible func(c *domain.CaseRecord) bool
}

// DefaultDocumentKinds returns the document kinds in rendering order.
func DefaultDocumentKinds() []DocumentKindSpec {
	return []DocumentKindSpec{
		{
			Kind:      domain.KindExpungementSummary,
			Mode:      domain.ModeExpungement,
			Scope:     ScopeClient,
			Suffix:    "form_and_summary",
			Extension: "pdf",
			MIMEType:  MIMETypePDF,
			Eligible:  func(*domain.CaseRecord) bool { return true },
		},
		{
			Kind:      domain.KindExpungementLetter,
			Mode:      domain.ModeExpungement,
			Scope:     ScopeCase,
			Suffix:    "expungement_letter",
			Extension: "docx",
			MIMEType:  MIMETypeDOCX,
			Eligible:  func(c *domain.CaseRecord) bool { return c.ExpungementEligible() },
		},
		{
			Kind:      domain.KindWarrantMotion,
			Mode:      domain.ModeWarrant,
			Scope:     ScopeCase,
			Suffix:    "motion_to_recall_warrant",
			Extension: "docx",
			MIMEType:  MIMETypeDOCX,
			Eligible:  func(c *domain.CaseRecord) bool { return c.HasOutstandingWarrant() },
		},
	}
}

// clientGroup is the cases of one client in first-appearance order.
type clientGroup struct {
	identity domain.ClientIdentity
	cases    []domain.CaseRecord
}

// AssemblyService renders document batches.
type AssemblyService struct {
	catalog   *Catalog
	templates driven.TemplateSource
	patcher   driven.ArchivePatcher
	forms     driven.FormEngine
	sink      driven.ArtifactSink
	kinds     []DocumentKindSpec
}

// NewAssemblyService creates a new assembly service.
func NewAssemblyService(
	catalog *Catalog,
	templates driven.TemplateSource,
	patcher driven.ArchivePatcher,
	forms driven.FormEngine,
	sink driven.ArtifactSink,
) *AssemblyService {
	return &AssemblyService{
		catalog:   catalog,
		templates: templates,
		patcher:   patcher,
		forms:     forms,
		sink:      sink,
		kinds:     DefaultDocumentKinds(),
	}
}

// run holds the state of one Assemble call.
type run struct {
	cfg       domain.RunConfig
	input     domain.AssemblyInput
	names     *filenameSet
	resources map[string][]byte
}

// Assemble renders every eligible document for the input cases.
func (s *AssemblyService) Assemble(
	ctx context.Context,
	cfg domain.RunConfig,
	input domain.AssemblyInput,
) (*domain.BatchReport, error) {
	if !cfg.Mode.IsValid() {
		return nil, fmt.Errorf("%w: mode %q", domain.ErrInvalidInput, cfg.Mode)
	}

	report := &domain.BatchReport{
		RunID:     uuid.New().String(),
		Mode:      cfg.Mode,
		StartedAt: cfg.Now,
	}

	logger.Section("Document Assembly")
	logger.Debug("Run %s: mode=%s variant=%s cases=%d", report.RunID, cfg.Mode, cfg.Attorney.Variant, len(input.Cases))

	r := &run{
		cfg:       cfg,
		input:     input,
		names:     newFilenameSet(),
		resources: make(map[string][]byte),
	}

	for _, group := range groupByClient(input.Cases, cfg.Alternate) {
		for _, kind := range s.kinds {
			if kind.Mode != cfg.Mode {
				continue
			}
			switch kind.Scope {
			case ScopeClient:
				report.Results = append(report.Results, s.render(ctx, r, kind, group, nil))
			case ScopeCase:
				for i := range group.cases {
					c := &group.cases[i]
					if !kind.Eligible(c) {
						logger.Debug("Skipping %s for %s: not eligible", kind.Kind, c.CaseNumber)
						continue
					}
					report.Results = append(report.Results, s.render(ctx, r, kind, group, c))
				}
			}
		}
	}

	logger.Info("Run %s: %d emitted, %d failed", report.RunID, report.Succeeded(), report.Failed())
	return report, nil
}

// render produces and emits one document. Every failure is captured in the result.
func (s *AssemblyService) render(
	ctx context.Context,
	r *run,
	kind DocumentKindSpec,
	group clientGroup,
	c *domain.CaseRecord,
) domain.ArtifactResult {
	result := domain.ArtifactResult{
		ID:         uuid.New().String(),
		Kind:       kind.Kind,
		ClientName: group.identity.FormName,
		Status:     domain.StatusEmitted,
	}
	if c != nil {
		result.CaseNumber = c.CaseNumber
	}
	fail := func(err error) domain.ArtifactResult {
		result.Status = domain.StatusFailed
		result.Err = err
		logger.Warn("%s for %s failed: %v", kind.Kind, result.ClientName, err)
		return result
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	descriptor, err := s.catalog.Lookup(kind.Kind, r.cfg.Attorney.Variant)
	if err != nil {
		return fail(err)
	}
	template, err := s.load(ctx, r, descriptor.Resource)
	if err != nil {
		return fail(err)
	}

	var warrant *domain.WarrantDetails
	if c != nil {
		if d, ok := domain.LookupWarrant(r.input.Warrants, c.CaseNumber); ok {
			warrant = &d
		}
	}
	values := BuildFieldValues(r.cfg, group.identity, c, warrant)

	var content []byte
	switch descriptor.Format {
	case domain.FormatArchive:
		var residual []rune
		content, residual, err = s.renderArchive(template, descriptor, values)
		for _, tok := range residual {
			result.Warnings = append(result.Warnings, residualWarning(tok))
		}
	case domain.FormatForm:
		content, err = s.renderForm(ctx, template, descriptor, values, group)
	default:
		err = fmt.Errorf("%w: format %q", domain.ErrInvalidInput, descriptor.Format)
	}
	if err != nil {
		return fail(err)
	}

	caseNumber := ""
	if kind.Scope == ScopeCase {
		caseNumber = result.CaseNumber
	}
	result.Filename = r.names.claim(ArtifactFilename(group.identity.Last, kind.Suffix, caseNumber, kind.Extension))

	location, err := s.sink.Emit(ctx, domain.Artifact{
		Filename: result.Filename,
		MIMEType: kind.MIMEType,
		Content:  content,
	})
	if err != nil {
		return fail(fmt.Errorf("%w: %s: %v", domain.ErrArtifactEmit, result.Filename, err))
	}

	if len(result.Warnings) > 0 {
		result.Status = domain.StatusEmittedWithWarnings
		for _, w := range result.Warnings {
			logger.Warn("%s: %s", result.Filename, w)
		}
	}
	logger.Debug("Emitted %s to %s", result.Filename, location)
	return result
}

// renderArchive renders the markup part of an archive template.
// It also returns the reserved glyphs left in the final markup.
func (s *AssemblyService) renderArchive(
	template []byte,
	d domain.TemplateDescriptor,
	values *domain.FieldValues,
) ([]byte, []rune, error) {
	var residual []rune
	out, err := s.patcher.Patch(template, d.Part, func(markup []byte) ([]byte, error) {
		final, left, err := Render(markup, d.Placeholders, d.Blocks, values, s.catalog.IsReserved)
		if err != nil {
			return nil, err
		}
		residual = left
		return final, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return out, residual, nil
}

// renderForm fills the form fields and appends the case summary pages.
func (s *AssemblyService) renderForm(
	ctx context.Context,
	template []byte,
	d domain.TemplateDescriptor,
	values *domain.FieldValues,
	group clientGroup,
) ([]byte, error) {
	form, err := s.forms.Open(ctx, template)
	if err != nil {
		return nil, err
	}
	if err := FillForm(form, d.Bindings, values); err != nil {
		return nil, err
	}

	timestamp := values.SummaryTimestamp
	for _, page := range PaginateSummary(group.identity.FormName, timestamp, group.cases) {
		form.AppendPage(page)
	}
	return form.Save(ctx)
}

// load returns a template resource, reading each resource once per run.
func (s *AssemblyService) load(ctx context.Context, r *run, resource string) ([]byte, error) {
	if b, ok := r.resources[resource]; ok {
		return b, nil
	}
	b, err := s.templates.Load(ctx, resource)
	if err != nil {
		if !errors.Is(err, domain.ErrTemplateMissing) {
			err = fmt.Errorf("%w: %s: %v", domain.ErrTemplateMissing, resource, err)
		}
		return nil, err
	}
	r.resources[resource] = b
	return b, nil
}

// groupByClient groups cases by resolved identity in first-appearance order.
func groupByClient(cases []domain.CaseRecord, alt domain.AlternateIdentity) []clientGroup {
	var groups []clientGroup
	index := make(map[string]int)
	for _, c := range cases {
		identity := ResolveIdentity(c.DefendantName, alt)
		key := strings.TrimSpace(identity.Key)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, clientGroup{identity: identity})
		}
		groups[i].cases = append(groups[i].cases, c)
	}
	return groups
}
