package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

func TestNewDefaultCatalog(t *testing.T) {
	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)
	assert.Len(t, catalog.Descriptors(), 6)
}

func TestCatalog_Lookup(t *testing.T) {
	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)

	tests := []struct {
		name     string
		kind     domain.DocumentKind
		variant  domain.PartyVariant
		resource string
		wantErr  bool
	}{
		{"summary public", domain.KindExpungementSummary, domain.VariantPublicDefender, ResourceExpungementForm, false},
		{"summary private", domain.KindExpungementSummary, domain.VariantPrivateCounsel, ResourceExpungementForm, false},
		{"letter public", domain.KindExpungementLetter, domain.VariantPublicDefender, ResourceExpungementLetterPublic, false},
		{"letter private", domain.KindExpungementLetter, domain.VariantPrivateCounsel, ResourceExpungementLetterPrivate, false},
		{"motion public", domain.KindWarrantMotion, domain.VariantPublicDefender, ResourceWarrantMotionPublic, false},
		{"motion private", domain.KindWarrantMotion, domain.VariantPrivateCounsel, ResourceWarrantMotionPrivate, false},
		{"unknown variant", domain.KindExpungementLetter, domain.PartyVariant("pro-se"), "", true},
		{"unknown kind", domain.DocumentKind("subpoena"), domain.VariantPublicDefender, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := catalog.Lookup(tt.kind, tt.variant)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnknownVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.resource, d.Resource)
			assert.Equal(t, tt.kind, d.Kind)
		})
	}
}

func TestCatalog_Alphabet(t *testing.T) {
	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)

	alphabet := catalog.Alphabet()
	total := 0
	for _, d := range catalog.Descriptors() {
		total += len(d.Tokens())
	}
	assert.Len(t, alphabet, total, "tokens must be disjoint across templates")
	assert.True(t, sort.SliceIsSorted(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] }))

	for _, r := range alphabet {
		assert.True(t, catalog.IsReserved(r))
	}
	assert.False(t, catalog.IsReserved('a'))
	assert.False(t, catalog.IsReserved('é'))
}

func TestCatalog_Validate(t *testing.T) {
	letter := func(tokens ...rune) domain.TemplateDescriptor {
		d := domain.TemplateDescriptor{
			Kind:     domain.KindExpungementLetter,
			Variant:  domain.VariantPublicDefender,
			Format:   domain.FormatArchive,
			Resource: "letter.docx",
			Part:     letterPart,
		}
		for _, r := range tokens {
			d.Placeholders = append(d.Placeholders, domain.Placeholder{Token: r, Field: domain.FieldCaseNumber})
		}
		return d
	}

	tests := []struct {
		name        string
		descriptors func() []domain.TemplateDescriptor
	}{
		{
			name: "token reused in template",
			descriptors: func() []domain.TemplateDescriptor {
				return []domain.TemplateDescriptor{letter('一', '一')}
			},
		},
		{
			name: "token shared across templates",
			descriptors: func() []domain.TemplateDescriptor {
				other := letter('一')
				other.Variant = domain.VariantPrivateCounsel
				return []domain.TemplateDescriptor{letter('一'), other}
			},
		},
		{
			name: "ascii token",
			descriptors: func() []domain.TemplateDescriptor {
				return []domain.TemplateDescriptor{letter('X')}
			},
		},
		{
			name: "archive without part",
			descriptors: func() []domain.TemplateDescriptor {
				d := letter('一')
				d.Part = ""
				return []domain.TemplateDescriptor{d}
			},
		},
		{
			name: "form without bindings",
			descriptors: func() []domain.TemplateDescriptor {
				return []domain.TemplateDescriptor{{
					Kind:     domain.KindExpungementSummary,
					Variant:  domain.VariantPublicDefender,
					Format:   domain.FormatForm,
					Resource: "form.pdf",
				}}
			},
		},
		{
			name: "block without region",
			descriptors: func() []domain.TemplateDescriptor {
				d := letter('一')
				d.Blocks = []domain.OptionalBlock{{Field: domain.FieldAttorneyFax, Token: '丁'}}
				return []domain.TemplateDescriptor{d}
			},
		},
		{
			name: "duplicate registration",
			descriptors: func() []domain.TemplateDescriptor {
				return []domain.TemplateDescriptor{letter('一'), letter('丁')}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.descriptors()...)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
