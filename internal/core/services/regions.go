package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// Markup names used to locate optional regions in word-processing markup.
const (
	paragraphPrefix = "w"
	paragraphLocal  = "p"
	paraIDPrefix    = "w14"
	paraIDLocal     = "paraId"
)

// region is the byte span of one paragraph element, start tag to end tag inclusive.
type region struct {
	start int64
	end   int64
}

// indexRegions walks the markup token stream and returns the span of every
// paragraph carrying a paragraph id. Ids are upper-cased.
func indexRegions(markup []byte) (map[string]region, error) {
	type open struct {
		id    string
		start int64
	}

	dec := xml.NewDecoder(bytes.NewReader(markup))

	spans := make(map[string]region)
	var stack []open
	for {
		start := dec.InputOffset()
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrArchiveCorrupt, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if !isParagraph(t.Name) {
				continue
			}
			stack = append(stack, open{id: paragraphID(t), start: start})
		case xml.EndElement:
			if !isParagraph(t.Name) || len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.id != "" {
				spans[top.id] = region{start: top.start, end: dec.InputOffset()}
			}
		}
	}
	return spans, nil
}

func isParagraph(name xml.Name) bool {
	return name.Space == paragraphPrefix && name.Local == paragraphLocal
}

func paragraphID(el xml.StartElement) string {
	for _, attr := range el.Attr {
		if attr.Name.Space == paraIDPrefix && attr.Name.Local == paraIDLocal {
			return strings.ToUpper(attr.Value)
		}
	}
	return ""
}
