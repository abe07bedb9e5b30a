package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kokua-cli/internal/logger"
)

// Ensure ArtifactSink implements the interface.
var _ driven.ArtifactSink = (*ArtifactSink)(nil)

// ArtifactSink writes finished documents into an output directory.
// Files are written owner-only and replaced atomically.
type ArtifactSink struct {
	dir string
}

// NewArtifactSink creates a sink writing into dir. The directory is created
// on first emit.
func NewArtifactSink(dir string) *ArtifactSink {
	return &ArtifactSink{dir: dir}
}

// Dir returns the output directory.
func (s *ArtifactSink) Dir() string {
	return s.dir
}

// Emit writes the artifact and returns its path.
func (s *ArtifactSink) Emit(ctx context.Context, artifact domain.Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validateName(artifact.Filename); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".kokua-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(artifact.Content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", artifact.Filename, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return "", fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", artifact.Filename, err)
	}

	path := filepath.Join(s.dir, artifact.Filename)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("moving %s into place: %w", artifact.Filename, err)
	}

	logger.Debug("wrote %s (%d bytes)", path, len(artifact.Content))
	return path, nil
}
