package domain

// PartyVariant selects between the institutional and private-counsel templates.
// The two variants are structurally different documents, not toggled sections.
type PartyVariant string

// Available party variants.
const (
	// VariantPublicDefender is the institutional defender's office.
	VariantPublicDefender PartyVariant = "public"

	// VariantPrivateCounsel is a private attorney or firm.
	VariantPrivateCounsel PartyVariant = "private"
)

// IsValid returns true if the variant is recognised.
func (v PartyVariant) IsValid() bool {
	switch v {
	case VariantPublicDefender, VariantPrivateCounsel:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (v PartyVariant) String() string {
	return string(v)
}

// Description returns a human-readable description of the variant.
func (v PartyVariant) Description() string {
	switch v {
	case VariantPublicDefender:
		return "Office of the Public Defender"
	case VariantPrivateCounsel:
		return "Private Counsel"
	default:
		return "Unknown"
	}
}

// Defaults for the head of the public defender's office.
const (
	DefaultHeadDefenderName         = "Jon N. Ikenaga"
	DefaultHeadDefenderRegistration = "6284"
)

// AttorneyProfile describes the filing attorney.
// It is edited by the operator and read-only to the assembly engine.
type AttorneyProfile struct {
	// Variant selects the template family (public defender or private counsel).
	Variant PartyVariant `json:"variant"`

	// Name and Registration identify the signing attorney.
	Name         string `json:"attorneyName,omitempty"`
	Registration string `json:"attorneyRegistration,omitempty"`

	// HeadDefenderName and HeadDefenderRegistration appear on public defender filings.
	HeadDefenderName         string `json:"headPdName,omitempty"`
	HeadDefenderRegistration string `json:"headPdRegistration,omitempty"`

	// FirmName and the address block appear on private counsel filings.
	FirmName  string `json:"firmName,omitempty"`
	Address1  string `json:"attorneyAddress1,omitempty"`
	Address2  string `json:"attorneyAddress2,omitempty"`
	Address3  string `json:"attorneyAddress3,omitempty"`
	Address4  string `json:"attorneyAddress4,omitempty"`
	Telephone string `json:"attorneyTelephone,omitempty"`
	Fax       string `json:"attorneyFax,omitempty"`
	Email     string `json:"attorneyEmail,omitempty"`

	// CircuitOrdinal names the judicial circuit (e.g. "First").
	CircuitOrdinal string `json:"circuitOrdinal,omitempty"`

	// SignatureLocation is the town printed above the signature line.
	SignatureLocation string `json:"signatureLocation,omitempty"`
}

// DefaultAttorneyProfile returns the profile used before the operator edits it.
func DefaultAttorneyProfile() AttorneyProfile {
	return AttorneyProfile{
		Variant:                  VariantPublicDefender,
		HeadDefenderName:         DefaultHeadDefenderName,
		HeadDefenderRegistration: DefaultHeadDefenderRegistration,
		SignatureLocation:        "Honolulu",
	}
}

// WithDefaults fills empty head defender values and an unset variant.
func (a AttorneyProfile) WithDefaults() AttorneyProfile {
	if !a.Variant.IsValid() {
		a.Variant = VariantPublicDefender
	}
	if a.HeadDefenderName == "" {
		a.HeadDefenderName = DefaultHeadDefenderName
	}
	if a.HeadDefenderRegistration == "" {
		a.HeadDefenderRegistration = DefaultHeadDefenderRegistration
	}
	return a
}
