package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kokua-cli/internal/logger"
)

// Ensure TemplateSource implements the interface.
var _ driven.TemplateSource = (*TemplateSource)(nil)

// TemplateSource loads template resources from a directory.
type TemplateSource struct {
	dir string
}

// NewTemplateSource creates a template source rooted at dir.
func NewTemplateSource(dir string) *TemplateSource {
	return &TemplateSource{dir: dir}
}

// Dir returns the template directory.
func (s *TemplateSource) Dir() string {
	return s.dir
}

// Load reads a resource by its plain file name.
func (s *TemplateSource) Load(ctx context.Context, resource string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateName(resource); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, resource)
	logger.Debug("loading template %s", path)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrTemplateMissing, path, err)
	}
	return data, nil
}

// validateName rejects names that would escape the directory or are hidden.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: resource name %q", domain.ErrInvalidInput, name)
	}
	if isHidden(name) {
		return fmt.Errorf("%w: hidden resource %q", domain.ErrInvalidInput, name)
	}
	return nil
}

// isHidden reports whether any path element starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part != "." && part != ".." && strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
