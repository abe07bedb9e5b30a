package driven

import "context"

// TemplateSource loads template resources.
type TemplateSource interface {
	// Load returns the raw bytes of the named resource.
	// Returns domain.ErrTemplateMissing if the resource does not exist.
	Load(ctx context.Context, resource string) ([]byte, error)
}
