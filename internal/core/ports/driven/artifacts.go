package driven

import (
	"context"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// ArtifactSink receives finished documents.
type ArtifactSink interface {
	// Emit saves an artifact and returns where it was stored.
	Emit(ctx context.Context, artifact domain.Artifact) (string, error)
}
