package pdfform

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// Text layout of appended pages.
const (
	pageFont        = "GoRegular"
	pageLeftMargin  = 50.0
	pageOrientation = "P"
)

// glyphFolds maps runes the page font has no glyph for onto look-alikes it has.
// The ʻokina becomes a left single quotation mark.
var glyphFolds = strings.NewReplacer("ʻ", "‘")

// RenderPages draws text pages into a standalone PDF.
// Line positions are measured from the bottom edge of the page.
// Text is drawn with an embedded Unicode font, so kahakō survive.
func RenderPages(pages []domain.SummaryPage) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: no pages to render", domain.ErrInvalidInput)
	}

	first := pages[0]
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: pageOrientation,
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: first.Width, Ht: first.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes(pageFont, "", goregular.TTF)
	pdf.SetFont(pageFont, "", 10)

	for _, page := range pages {
		pdf.AddPageFormat(pageOrientation, fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		for _, line := range page.Lines {
			pdf.SetFontSize(line.Size)
			pdf.Text(pageLeftMargin, page.Height-line.Y, pageText(line.Text))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pages: %w", err)
	}
	return buf.Bytes(), nil
}

func pageText(s string) string {
	return glyphFolds.Replace(s)
}
