package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/renderers/docx"
)

func TestTemplateService_Check(t *testing.T) {
	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)
	templates := allTemplates(t, catalog)

	d, err := catalog.Lookup(domain.KindWarrantMotion, domain.VariantPrivateCounsel)
	require.NoError(t, err)
	templates.resources[d.Resource] = buildContainer(t, strings.ReplaceAll(buildMarkup(d), d.Blocks[0].RegionID, "7FFF0000"))
	delete(templates.resources, ResourceExpungementLetterPrivate)

	service := NewTemplateService(catalog, templates, docx.New(), &fakeFormEngine{})
	assert.Len(t, service.List(), 6)

	checks, err := service.Check(context.Background())
	require.NoError(t, err)
	require.Len(t, checks, 6)

	byResource := make(map[string]domain.TemplateCheck)
	for _, c := range checks {
		byResource[c.Resource] = c
	}
	assert.True(t, byResource[ResourceExpungementForm].OK())
	assert.True(t, byResource[ResourceExpungementLetterPublic].OK())
	assert.True(t, byResource[ResourceWarrantMotionPublic].OK())
	assert.ErrorIs(t, byResource[ResourceExpungementLetterPrivate].Err, domain.ErrTemplateMissing)
	assert.ErrorIs(t, byResource[ResourceWarrantMotionPrivate].Err, domain.ErrRegionMissing)
}

func TestTemplateService_Check_AllInstalled(t *testing.T) {
	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)

	service := NewTemplateService(catalog, allTemplates(t, catalog), docx.New(), &fakeFormEngine{})

	checks, err := service.Check(context.Background())
	require.NoError(t, err)
	for _, c := range checks {
		assert.True(t, c.OK(), "%s/%s: %v", c.Kind, c.Variant, c.Err)
	}
}
