package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"unicode/utf8"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// Substitute replaces every placeholder token in markup with the XML-escaped
// value of its field. Unresolved fields become empty strings.
// The markup is scanned once, so a value can never introduce a token that is
// substituted in turn.
func Substitute(markup []byte, placeholders []domain.Placeholder, values *domain.FieldValues) []byte {
	if len(placeholders) == 0 {
		return markup
	}
	out, _ := fill(markup, placeholderTable(placeholders, values), nil, nil)
	return out
}

// keptBlock is an optional block whose region survived pruning.
type keptBlock struct {
	token rune
	span  region
	value []byte
}

func placeholderTable(placeholders []domain.Placeholder, values *domain.FieldValues) map[rune][]byte {
	replacements := make(map[rune][]byte, len(placeholders))
	for _, p := range placeholders {
		replacements[p.Token] = escapeMarkup(resolve(p.Field, values))
	}
	return replacements
}

// fill writes markup with placeholder tokens replaced anywhere and block
// tokens replaced only inside their own region. It returns the reserved
// runes it copied through unchanged.
func fill(markup []byte, replacements map[rune][]byte, blocks []keptBlock, reserved func(rune) bool) ([]byte, []rune) {
	var out bytes.Buffer
	out.Grow(len(markup))

	var residual []rune
	seen := make(map[rune]bool)
	for i := 0; i < len(markup); {
		r, size := utf8.DecodeRune(markup[i:])
		if repl, ok := replacements[r]; ok {
			out.Write(repl)
		} else if repl, ok := blockValue(blocks, r, int64(i)); ok {
			out.Write(repl)
		} else {
			out.Write(markup[i : i+size])
			if reserved != nil && reserved(r) && !seen[r] {
				seen[r] = true
				residual = append(residual, r)
			}
		}
		i += size
	}
	return out.Bytes(), residual
}

func blockValue(blocks []keptBlock, r rune, offset int64) ([]byte, bool) {
	for _, b := range blocks {
		if b.token == r && offset >= b.span.start && offset < b.span.end {
			return b.value, true
		}
	}
	return nil, false
}

// ResidualTokens returns the reserved glyphs still present in markup,
// in order of first appearance.
func ResidualTokens(markup []byte, reserved func(rune) bool) []rune {
	var found []rune
	seen := make(map[rune]bool)
	for i := 0; i < len(markup); {
		r, size := utf8.DecodeRune(markup[i:])
		if reserved(r) && !seen[r] {
			seen[r] = true
			found = append(found, r)
		}
		i += size
	}
	return found
}

// residualWarning formats a residual token for reports.
func residualWarning(r rune) string {
	return fmt.Sprintf("%v: %U (%c)", domain.ErrResidualPlaceholder, r, r)
}

func resolve(field domain.Field, values *domain.FieldValues) string {
	if field.Value == nil || values == nil {
		return ""
	}
	return field.Value(values)
}

func escapeMarkup(s string) []byte {
	var buf bytes.Buffer
	// EscapeText only fails when the writer does.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.Bytes()
}
