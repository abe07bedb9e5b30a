package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Template Errors.

	// ErrUnknownVariant indicates no template is registered for the requested
	// party variant of a document kind.
	ErrUnknownVariant = errors.New("unknown template variant")

	// ErrTemplateMissing indicates the template resource could not be loaded.
	ErrTemplateMissing = errors.New("template resource missing")

	// ErrArchiveCorrupt indicates the document container could not be parsed.
	ErrArchiveCorrupt = errors.New("document archive corrupt")

	// ErrArchivePartMissing indicates the expected internal markup part is absent.
	ErrArchivePartMissing = errors.New("document archive part missing")

	// ErrRegionMissing indicates an optional block's structural region is absent
	// while its placeholder token is still present in the markup.
	ErrRegionMissing = errors.New("optional block region missing")

	// ErrFieldNotFound indicates a required form field is absent from the form.
	// The form template drifted from the expected field names.
	ErrFieldNotFound = errors.New("form field not found")

	// ErrResidualPlaceholder indicates reserved placeholder glyphs survived
	// substitution. It is a warning: the document is still emitted.
	ErrResidualPlaceholder = errors.New("residual placeholder")

	// Emission Errors.

	// ErrArtifactEmit indicates the finished artifact could not be saved.
	ErrArtifactEmit = errors.New("artifact emit failed")
)
