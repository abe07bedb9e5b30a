package domain

import "strings"

// AlternateIdentity is an operator-entered identity for the client.
// When any name component is set, it replaces the scraped name entirely.
type AlternateIdentity struct {
	First    string `json:"alternateFirstName,omitempty"`
	Middle   string `json:"alternateMiddleName,omitempty"`
	Last     string `json:"alternateLastName,omitempty"`
	Address1 string `json:"alternateAddressLine1,omitempty"`
	Address2 string `json:"alternateAddressLine2,omitempty"`
	Address3 string `json:"alternateAddressLine3,omitempty"`
	Phone    string `json:"alternatePhone,omitempty"`
	Email    string `json:"alternateEmail,omitempty"`
	DOB      string `json:"alternateDOB,omitempty"`
	Sex      string `json:"alternateSex,omitempty"`
}

// OverridesName reports whether the name components replace the scraped name.
func (a AlternateIdentity) OverridesName() bool {
	return strings.TrimSpace(a.First) != "" ||
		strings.TrimSpace(a.Middle) != "" ||
		strings.TrimSpace(a.Last) != ""
}

// IsZero reports whether no alternate field is set.
func (a AlternateIdentity) IsZero() bool {
	return a == AlternateIdentity{}
}

// AddressLine joins the non-empty address lines on one line.
func (a AlternateIdentity) AddressLine() string {
	parts := make([]string, 0, 3)
	for _, line := range []string{a.Address1, a.Address2, a.Address3} {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, ", ")
}

// NameParts are the components of a personal name.
type NameParts struct {
	Last   string
	First  string
	Middle string
}

// ClientIdentity is the resolved name of a client with its document renderings.
type ClientIdentity struct {
	NameParts

	// FormName is "Last, First Middle", used for form fields.
	FormName string

	// LetterName is "First Middle Last", used in prose letters.
	LetterName string

	// Key groups cases belonging to the same client.
	Key string
}
