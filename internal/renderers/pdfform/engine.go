// Package pdfform fills PDF forms and appends generated text pages.
//
// Form fields are read and written through pdfcpu's JSON form export, so
// the form keeps its own appearance streams. Appended pages are drawn with
// fpdf and merged after the form pages.
package pdfform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kokua-cli/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.FormEngine = (*Engine)(nil)

// Engine opens fillable PDF forms.
type Engine struct {
	conf *model.Configuration
}

// New creates a new form engine.
func New() *Engine {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Engine{conf: conf}
}

// Open reads the form fields of a PDF.
func (e *Engine) Open(_ context.Context, content []byte) (driven.FillableForm, error) {
	var exported bytes.Buffer
	if err := api.ExportFormJSON(bytes.NewReader(content), &exported, "template", e.conf); err != nil {
		return nil, fmt.Errorf("%w: export form: %v", domain.ErrArchiveCorrupt, err)
	}

	fields, err := parseFields(exported.Bytes())
	if err != nil {
		return nil, err
	}
	logger.Debug("Form opened: %d fields", fields.count())

	return &Form{
		engine:  e,
		content: content,
		fields:  fields,
	}, nil
}

// Form is an open PDF form. It is not safe for concurrent use.
type Form struct {
	engine  *Engine
	content []byte
	fields  *fieldSet
	pages   []domain.SummaryPage
}

// SetText sets a text or date field.
func (f *Form) SetText(name, value string) error {
	return f.fields.setText(name, value)
}

// SelectOption selects one option of a radio group.
// An empty value only checks that the group exists.
func (f *Form) SelectOption(name, value string) error {
	return f.fields.selectOption(name, value)
}

// AppendPage queues a text page to be added after the form.
func (f *Form) AppendPage(page domain.SummaryPage) {
	f.pages = append(f.pages, page)
}

// Save fills the form and merges the appended pages.
func (f *Form) Save(ctx context.Context) ([]byte, error) {
	payload, err := json.Marshal(f.fields.doc)
	if err != nil {
		return nil, fmt.Errorf("encode form values: %w", err)
	}

	var filled bytes.Buffer
	if err := api.FillForm(bytes.NewReader(f.content), bytes.NewReader(payload), &filled, f.engine.conf); err != nil {
		return nil, fmt.Errorf("fill form: %w", err)
	}
	if len(f.pages) == 0 {
		return filled.Bytes(), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary, err := RenderPages(f.pages)
	if err != nil {
		return nil, err
	}

	var merged bytes.Buffer
	sources := []io.ReadSeeker{bytes.NewReader(filled.Bytes()), bytes.NewReader(summary)}
	if err := api.MergeRaw(sources, &merged, false, f.engine.conf); err != nil {
		return nil, fmt.Errorf("merge summary pages: %w", err)
	}
	return merged.Bytes(), nil
}
