package services

import (
	"fmt"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
)

// Summary page geometry, in points. Y grows upwards from the bottom edge.
const (
	SummaryPageWidth    = 600.0
	SummaryPageHeight   = 400.0
	summaryHeaderOffset = 50.0
	summaryDateOffset   = 70.0
	summaryTitleOffset  = 90.0
	summaryCursorOffset = 110.0
	summaryLineHeight   = 20.0
	summaryBottomMargin = 50.0
	summaryHeaderSize   = 12.0
	summaryBodySize     = 10.0
)

const summaryTitle = "Cases Reviewed For Expungement"

// FillForm sets every bound field of the form.
// Every bound field must exist, even a radio group left unselected.
func FillForm(form driven.FillableForm, bindings []domain.FormBinding, values *domain.FieldValues) error {
	for _, b := range bindings {
		value := resolve(b.Field, values)
		switch b.Kind {
		case domain.FormFieldRadio:
			if err := form.SelectOption(b.Name, value); err != nil {
				return fmt.Errorf("select %q: %w", b.Name, err)
			}
		default:
			if err := form.SetText(b.Name, value); err != nil {
				return fmt.Errorf("set %q: %w", b.Name, err)
			}
		}
	}
	return nil
}

// PaginateSummary lays out one line per case across as many summary pages
// as needed. Each page repeats the client and timestamp header.
func PaginateSummary(formName, timestamp string, cases []domain.CaseRecord) []domain.SummaryPage {
	pages := []domain.SummaryPage{newSummaryPage(formName, timestamp)}
	cursor := SummaryPageHeight - summaryCursorOffset

	for i := range cases {
		if summaryNeedsBreak(cursor) {
			pages = append(pages, newSummaryPage(formName, timestamp))
			cursor = SummaryPageHeight - summaryCursorOffset
		}
		page := &pages[len(pages)-1]
		page.Lines = append(page.Lines, domain.SummaryLine{
			Y:    cursor,
			Size: summaryBodySize,
			Text: summaryLine(&cases[i]),
		})
		cursor -= summaryLineHeight
	}
	return pages
}

// summaryNeedsBreak reports whether a line at cursor would cross the bottom margin.
func summaryNeedsBreak(cursor float64) bool {
	return cursor-summaryLineHeight < summaryBottomMargin
}

func newSummaryPage(formName, timestamp string) domain.SummaryPage {
	top := SummaryPageHeight
	return domain.SummaryPage{
		Width:  SummaryPageWidth,
		Height: SummaryPageHeight,
		Lines: []domain.SummaryLine{
			{Y: top - summaryHeaderOffset, Size: summaryHeaderSize, Text: "Client: " + formName},
			{Y: top - summaryDateOffset, Size: summaryBodySize, Text: "Date and Time (HST): " + timestamp},
			{Y: top - summaryTitleOffset, Size: summaryBodySize, Text: summaryTitle},
		},
	}
}

func summaryLine(c *domain.CaseRecord) string {
	return fmt.Sprintf("Case Number: %s: %s", c.CaseNumber, c.Expungeable.String())
}
