package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// ResolveIdentity derives the client identity for a scraped defendant name.
// When the alternate identity carries any name component, all three
// components come from it verbatim and the scraped name is ignored.
func ResolveIdentity(defendantName string, alt domain.AlternateIdentity) domain.ClientIdentity {
	var parts domain.NameParts
	if alt.OverridesName() {
		parts = domain.NameParts{
			Last:   collapseSpace(alt.Last),
			First:  collapseSpace(alt.First),
			Middle: collapseSpace(alt.Middle),
		}
	} else {
		parts = ParseName(defendantName)
	}

	formName := joinNonEmpty(", ", parts.Last, joinNonEmpty(" ", parts.First, parts.Middle))
	return domain.ClientIdentity{
		NameParts:  parts,
		FormName:   formName,
		LetterName: joinNonEmpty(" ", parts.First, parts.Middle, parts.Last),
		Key:        strings.ToUpper(formName),
	}
}

// ParseName splits a scraped name into components.
//
// "Last, First Middle" and "Last,First" are split at the first comma.
// Otherwise "First Middle... Last" is assumed, and a single token is the
// last name. A single-letter middle name becomes an initial.
func ParseName(name string) domain.NameParts {
	var parts domain.NameParts

	if last, rest, ok := strings.Cut(name, ","); ok {
		parts.Last = collapseSpace(last)
		given := strings.Fields(strings.ReplaceAll(rest, ",", " "))
		if len(given) > 0 {
			parts.First = given[0]
			parts.Middle = strings.Join(given[1:], " ")
		}
	} else {
		tokens := strings.Fields(name)
		switch len(tokens) {
		case 0:
		case 1:
			parts.Last = tokens[0]
		default:
			parts.First = tokens[0]
			parts.Last = tokens[len(tokens)-1]
			parts.Middle = strings.Join(tokens[1:len(tokens)-1], " ")
		}
	}

	parts.Middle = middleInitial(parts.Middle)
	return parts
}

func middleInitial(middle string) string {
	if utf8.RuneCountInString(middle) != 1 {
		return middle
	}
	r, _ := utf8.DecodeRuneInString(middle)
	if !unicode.IsLetter(r) {
		return middle
	}
	return middle + "."
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
