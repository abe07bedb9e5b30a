package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driving"
)

// Ensure TemplateService implements the interface.
var _ driving.TemplateService = (*TemplateService)(nil)

// TemplateService checks installed templates against the catalog.
type TemplateService struct {
	catalog   *Catalog
	templates driven.TemplateSource
	patcher   driven.ArchivePatcher
	forms     driven.FormEngine
}

// NewTemplateService creates a new template service.
func NewTemplateService(
	catalog *Catalog,
	templates driven.TemplateSource,
	patcher driven.ArchivePatcher,
	forms driven.FormEngine,
) *TemplateService {
	return &TemplateService{catalog: catalog, templates: templates, patcher: patcher, forms: forms}
}

// List returns every registered template descriptor.
func (s *TemplateService) List() []domain.TemplateDescriptor {
	return s.catalog.Descriptors()
}

// Check loads each template and verifies its markup part and optional regions
// exist, or for forms, that every bound field can be set.
func (s *TemplateService) Check(ctx context.Context) ([]domain.TemplateCheck, error) {
	descriptors := s.catalog.Descriptors()
	checks := make([]domain.TemplateCheck, 0, len(descriptors))
	for _, d := range descriptors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		checks = append(checks, domain.TemplateCheck{
			Kind:     d.Kind,
			Variant:  d.Variant,
			Resource: d.Resource,
			Err:      s.check(ctx, d),
		})
	}
	return checks, nil
}

func (s *TemplateService) check(ctx context.Context, d domain.TemplateDescriptor) error {
	content, err := s.templates.Load(ctx, d.Resource)
	if err != nil {
		return err
	}

	switch d.Format {
	case domain.FormatArchive:
		_, err := s.patcher.Patch(content, d.Part, func(markup []byte) ([]byte, error) {
			spans, err := indexRegions(markup)
			if err != nil {
				return nil, err
			}
			for _, b := range d.Blocks {
				if _, ok := spans[strings.ToUpper(b.RegionID)]; !ok {
					return nil, fmt.Errorf("%w: region %s for %s", domain.ErrRegionMissing, b.RegionID, b.Field.Name)
				}
			}
			return markup, nil
		})
		return err
	case domain.FormatForm:
		form, err := s.forms.Open(ctx, content)
		if err != nil {
			return err
		}
		return FillForm(form, d.Bindings, &domain.FieldValues{})
	default:
		return fmt.Errorf("%w: format %q", domain.ErrInvalidInput, d.Format)
	}
}
