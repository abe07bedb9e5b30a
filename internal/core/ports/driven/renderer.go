package driven

import (
	"context"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// MarkupTransform rewrites the bytes of one markup part.
type MarkupTransform func(markup []byte) ([]byte, error)

// ArchivePatcher rewrites a single part of a zip-based document container.
type ArchivePatcher interface {
	// Patch applies transform to the named part and returns a new container.
	// Every other part is carried over unchanged.
	// Returns domain.ErrArchiveCorrupt if the container cannot be read and
	// domain.ErrArchivePartMissing if the part does not exist.
	Patch(container []byte, part string, transform MarkupTransform) ([]byte, error)
}

// FormEngine opens fillable form documents.
type FormEngine interface {
	// Open parses a form template.
	Open(ctx context.Context, content []byte) (FillableForm, error)
}

// FillableForm is an open form document.
// Implementations are not safe for concurrent use.
type FillableForm interface {
	// SetText sets a text field.
	// Returns domain.ErrFieldNotFound if no field has that name.
	SetText(name, value string) error

	// SelectOption selects one option of a radio group by its value.
	// An empty value leaves the group unselected.
	// Returns domain.ErrFieldNotFound if no group has that name.
	SelectOption(name, value string) error

	// AppendPage adds a text page after the form pages.
	AppendPage(page domain.SummaryPage)

	// Save renders the filled form with appended pages.
	Save(ctx context.Context) ([]byte, error)
}
