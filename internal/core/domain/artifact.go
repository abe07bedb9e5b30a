package domain

import "time"

// Artifact is a finished document ready to be saved.
type Artifact struct {
	// Filename is the deterministic download name.
	Filename string

	// MIMEType describes Content.
	MIMEType string

	// Content is the rendered document.
	Content []byte
}

// ArtifactStatus is the outcome of rendering one document.
type ArtifactStatus string

// Artifact outcomes.
const (
	StatusEmitted             ArtifactStatus = "emitted"
	StatusEmittedWithWarnings ArtifactStatus = "emitted_with_warnings"
	StatusFailed              ArtifactStatus = "failed"
)

// ArtifactResult reports one document of an assembly run.
type ArtifactResult struct {
	// ID uniquely identifies this rendering.
	ID string

	Kind       DocumentKind
	ClientName string
	CaseNumber string
	Filename   string
	Status     ArtifactStatus

	// Err is the failure cause when Status is StatusFailed.
	Err error

	// Warnings are non-fatal problems (e.g. residual placeholders).
	Warnings []string
}

// Reason returns the failure text, or empty when the document succeeded.
func (r ArtifactResult) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// BatchReport is the outcome of one assembly run.
type BatchReport struct {
	RunID     string
	Mode      Mode
	StartedAt time.Time
	Results   []ArtifactResult
}

// Succeeded returns the number of emitted documents.
func (b *BatchReport) Succeeded() int {
	n := 0
	for i := range b.Results {
		if b.Results[i].Status != StatusFailed {
			n++
		}
	}
	return n
}

// Failed returns the number of failed documents.
func (b *BatchReport) Failed() int {
	return len(b.Results) - b.Succeeded()
}

// RunConfig is the immutable configuration of one assembly run.
// It replaces any process-wide profile state.
type RunConfig struct {
	Mode      Mode
	Attorney  AttorneyProfile
	Alternate AlternateIdentity

	// Now is the generation timestamp.
	Now time.Time

	// Location is the timezone used for printed dates.
	Location *time.Location
}

// LocalNow returns the generation time in the run's timezone.
func (c RunConfig) LocalNow() time.Time {
	if c.Location == nil {
		return c.Now
	}
	return c.Now.In(c.Location)
}

// SummaryLine is a single text line placed on a summary page.
type SummaryLine struct {
	Y    float64
	Size float64
	Text string
}

// SummaryPage is an appended page of the summary form.
type SummaryPage struct {
	Width  float64
	Height float64
	Lines  []SummaryLine
}

// AssemblyInput is the data an assembly run renders from.
type AssemblyInput struct {
	Cases []CaseRecord

	// Warrants holds operator-entered warrant facts keyed by case number.
	Warrants map[string]WarrantDetails
}

// GenerateOptions selects what a generation request produces.
type GenerateOptions struct {
	// Mode overrides the stored tool mode when set.
	Mode Mode

	// CaseNumbers restricts the run to these cases. Empty means all cases.
	CaseNumbers []string
}

// ImportResult summarises a case import.
type ImportResult struct {
	Added   int
	Updated int
	Total   int
}

// TemplateCheck is the outcome of checking one registered template.
type TemplateCheck struct {
	Kind     DocumentKind
	Variant  PartyVariant
	Resource string
	Err      error
}

// OK reports whether the template loaded and matched its descriptor.
func (c TemplateCheck) OK() bool {
	return c.Err == nil
}
