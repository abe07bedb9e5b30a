package services

import (
	"fmt"
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unnamedClient replaces an empty last name in filenames.
const unnamedClient = "name_unavailable"

// SanitizeComponent folds diacritics and replaces every rune outside
// [A-Za-z0-9-] with an underscore.
func SanitizeComponent(s string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ArtifactFilename builds "{last}_{suffix}[_{case}].{ext}".
func ArtifactFilename(lastName, suffix, caseNumber, ext string) string {
	last := SanitizeComponent(strings.TrimSpace(lastName))
	if last == "" {
		last = unnamedClient
	}

	name := last + "_" + suffix
	if caseNumber = strings.TrimSpace(caseNumber); caseNumber != "" {
		name += "_" + SanitizeComponent(caseNumber)
	}
	return name + "." + ext
}

// filenameSet hands out unique filenames within one run.
type filenameSet struct {
	used map[string]int
}

func newFilenameSet() *filenameSet {
	return &filenameSet{used: make(map[string]int)}
}

// claim returns name, or name with "_2", "_3"... before the extension
// when it was already handed out.
func (s *filenameSet) claim(name string) string {
	key := strings.ToLower(name)
	n := s.used[key]
	s.used[key] = n + 1
	if n == 0 {
		return name
	}

	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := n + 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		ckey := strings.ToLower(candidate)
		if s.used[ckey] == 0 {
			s.used[ckey] = 1
			return candidate
		}
	}
}
