package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
)

// Ensure ArtifactSink implements the interface.
var _ driven.ArtifactSink = (*ArtifactSink)(nil)

// ArtifactSink collects emitted artifacts in memory, in emission order.
type ArtifactSink struct {
	mu        sync.Mutex
	artifacts []domain.Artifact
	err       error
}

// NewArtifactSink creates a new in-memory artifact sink.
func NewArtifactSink() *ArtifactSink {
	return &ArtifactSink{}
}

// FailWith makes every subsequent Emit return err.
func (s *ArtifactSink) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Emit records the artifact.
func (s *ArtifactSink) Emit(_ context.Context, artifact domain.Artifact) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.artifacts = append(s.artifacts, artifact)
	return "memory://" + artifact.Filename, nil
}

// Artifacts returns the emitted artifacts in order.
func (s *ArtifactSink) Artifacts() []domain.Artifact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Artifact(nil), s.artifacts...)
}

// Filenames returns the emitted filenames in order.
func (s *ArtifactSink) Filenames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.artifacts))
	for i, a := range s.artifacts {
		names[i] = a.Filename
	}
	return names
}
