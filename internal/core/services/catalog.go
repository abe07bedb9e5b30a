package services

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// letterPart is the markup part of every archive template.
const letterPart = "word/document.xml"

type catalogKey struct {
	kind    domain.DocumentKind
	variant domain.PartyVariant
}

// Catalog maps (document kind, party variant) to a template descriptor.
// It is built once and never modified.
type Catalog struct {
	templates map[catalogKey]domain.TemplateDescriptor
	order     []catalogKey
	alphabet  map[rune]struct{}
}

// NewCatalog registers the given descriptors and validates them.
func NewCatalog(descriptors ...domain.TemplateDescriptor) (*Catalog, error) {
	c := &Catalog{
		templates: make(map[catalogKey]domain.TemplateDescriptor, len(descriptors)),
		alphabet:  make(map[rune]struct{}),
	}
	for _, d := range descriptors {
		key := catalogKey{kind: d.Kind, variant: d.Variant}
		if _, exists := c.templates[key]; exists {
			return nil, fmt.Errorf("%w: duplicate template %s/%s", domain.ErrInvalidInput, d.Kind, d.Variant)
		}
		c.templates[key] = d
		c.order = append(c.order, key)
		for _, r := range d.Tokens() {
			c.alphabet[r] = struct{}{}
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewDefaultCatalog returns the catalog of built-in templates.
func NewDefaultCatalog() (*Catalog, error) {
	return NewCatalog(builtinTemplates()...)
}

// Lookup returns the descriptor registered for kind and variant.
// Returns domain.ErrUnknownVariant if none is registered.
func (c *Catalog) Lookup(kind domain.DocumentKind, variant domain.PartyVariant) (domain.TemplateDescriptor, error) {
	d, ok := c.templates[catalogKey{kind: kind, variant: variant}]
	if !ok {
		return domain.TemplateDescriptor{}, fmt.Errorf("%w: %s/%s", domain.ErrUnknownVariant, kind, variant)
	}
	return d, nil
}

// Descriptors returns every registered descriptor in registration order.
func (c *Catalog) Descriptors() []domain.TemplateDescriptor {
	out := make([]domain.TemplateDescriptor, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.templates[key])
	}
	return out
}

// Alphabet returns every reserved glyph across all templates, sorted.
func (c *Catalog) Alphabet() []rune {
	out := make([]rune, 0, len(c.alphabet))
	for r := range c.alphabet {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsReserved reports whether r is a placeholder glyph of any template.
func (c *Catalog) IsReserved(r rune) bool {
	_, ok := c.alphabet[r]
	return ok
}

// Validate checks the registered tables.
// Tokens must be Han ideographs, unique within a template and disjoint
// across templates; archive templates need a part, form templates need bindings.
func (c *Catalog) Validate() error {
	owner := make(map[rune]catalogKey)
	for _, key := range c.order {
		d := c.templates[key]
		if !d.Variant.IsValid() {
			return fmt.Errorf("%w: template %s has variant %q", domain.ErrInvalidInput, d.Kind, d.Variant)
		}
		if d.Resource == "" {
			return fmt.Errorf("%w: template %s/%s has no resource", domain.ErrInvalidInput, d.Kind, d.Variant)
		}

		switch d.Format {
		case domain.FormatArchive:
			if d.Part == "" {
				return fmt.Errorf("%w: archive template %s/%s has no part", domain.ErrInvalidInput, d.Kind, d.Variant)
			}
			if len(d.Bindings) > 0 {
				return fmt.Errorf("%w: archive template %s/%s has form bindings", domain.ErrInvalidInput, d.Kind, d.Variant)
			}
		case domain.FormatForm:
			if len(d.Bindings) == 0 {
				return fmt.Errorf("%w: form template %s/%s has no bindings", domain.ErrInvalidInput, d.Kind, d.Variant)
			}
			if len(d.Placeholders) > 0 || len(d.Blocks) > 0 {
				return fmt.Errorf("%w: form template %s/%s has placeholders", domain.ErrInvalidInput, d.Kind, d.Variant)
			}
		default:
			return fmt.Errorf("%w: template %s/%s has format %q", domain.ErrInvalidInput, d.Kind, d.Variant, d.Format)
		}

		seen := make(map[rune]bool)
		for _, r := range d.Tokens() {
			if !unicode.Is(unicode.Han, r) {
				return fmt.Errorf("%w: template %s/%s token %U is not a reserved glyph", domain.ErrInvalidInput, d.Kind, d.Variant, r)
			}
			if seen[r] {
				return fmt.Errorf("%w: template %s/%s reuses token %U", domain.ErrInvalidInput, d.Kind, d.Variant, r)
			}
			seen[r] = true
			if prev, ok := owner[r]; ok && prev != key {
				return fmt.Errorf("%w: token %U shared by %s/%s and %s/%s",
					domain.ErrInvalidInput, r, prev.kind, prev.variant, d.Kind, d.Variant)
			}
			owner[r] = key
		}

		regions := make(map[string]bool)
		for _, b := range d.Blocks {
			if b.RegionID == "" {
				return fmt.Errorf("%w: template %s/%s block %s has no region", domain.ErrInvalidInput, d.Kind, d.Variant, b.Field.Name)
			}
			if regions[b.RegionID] {
				return fmt.Errorf("%w: template %s/%s reuses region %s", domain.ErrInvalidInput, d.Kind, d.Variant, b.RegionID)
			}
			regions[b.RegionID] = true
		}
	}
	return nil
}
