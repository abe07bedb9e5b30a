package domain

import "strings"

// Expungeability is the precomputed verdict the scraper attaches to a case.
type Expungeability string

// Known verdicts. The scraper may emit other free-form statuses
// (e.g. "Deferred Acceptance") which are treated as not eligible.
const (
	ExpungeableAll          Expungeability = "All Expungeable"
	ExpungeableNone         Expungeability = "None Expungeable"
	ExpungeableSome         Expungeability = "Some Expungeable"
	ExpungeableAllPossibly  Expungeability = "All Possibly Expungeable"
	ExpungeableSomePossibly Expungeability = "Some Possibly Expungeable"
)

// String returns the verdict text.
func (e Expungeability) String() string {
	return strings.TrimSpace(string(e))
}

// CaseRecord is a court case as produced by the external scraper.
// It is read-only to the assembly engine; only the operator Override flag
// is ever written back, and never by the engine itself.
type CaseRecord struct {
	// CaseNumber is the court-assigned identifier (e.g. "1CPC-22-0001376").
	CaseNumber string `json:"CaseNumber" yaml:"CaseNumber"`

	// CaseType is the court's case type description.
	CaseType string `json:"caseType,omitempty" yaml:"caseType,omitempty"`

	// DefendantName is the scraped name, "Last, First Middle" or "First Middle Last".
	DefendantName string `json:"DefendantName" yaml:"DefendantName"`

	// CourtLocation is the court the case was filed in.
	CourtLocation string `json:"CourtLocation,omitempty" yaml:"CourtLocation,omitempty"`

	// FilingDate is the filing date as displayed by the court portal.
	FilingDate string `json:"FilingDate,omitempty" yaml:"FilingDate,omitempty"`

	// Charges lists the charges on the case.
	Charges []Charge `json:"charges,omitempty" yaml:"charges,omitempty"`

	// Expungeable is the overall expungeability verdict.
	Expungeable Expungeability `json:"Expungeable" yaml:"Expungeable"`

	// Explanation describes how the verdict was reached.
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`

	// WarrantStatus is present only when the scraper evaluated warrants.
	WarrantStatus *WarrantStatus `json:"warrantStatus,omitempty" yaml:"warrantStatus,omitempty"`

	// AdditionalFactors is present only when the docket carried extra factors.
	AdditionalFactors *AdditionalFactors `json:"additionalFactors,omitempty" yaml:"additionalFactors,omitempty"`

	// Override forces expungement paperwork regardless of the verdict.
	Override bool `json:"Override,omitempty" yaml:"Override,omitempty"`
}

// ExpungementEligible reports whether expungement paperwork should be generated.
// Only a full "All Expungeable" verdict qualifies unless the operator overrides.
func (c *CaseRecord) ExpungementEligible() bool {
	return c.Expungeable.String() == string(ExpungeableAll) || c.Override
}

// HasOutstandingWarrant reports whether the warrant verdict shows an open warrant.
func (c *CaseRecord) HasOutstandingWarrant() bool {
	return c.WarrantStatus != nil && c.WarrantStatus.HasOutstandingWarrant
}

// Charge is a single count on a case.
type Charge struct {
	Count            string       `json:"count,omitempty" yaml:"count,omitempty"`
	Statute          string       `json:"statute,omitempty" yaml:"statute,omitempty"`
	Description      string       `json:"charge,omitempty" yaml:"charge,omitempty"`
	Severity         string       `json:"severity,omitempty" yaml:"severity,omitempty"`
	OffenseDate      string       `json:"offenseDate,omitempty" yaml:"offenseDate,omitempty"`
	Plea             string       `json:"plea,omitempty" yaml:"plea,omitempty"`
	Dispositions     []string     `json:"dispositions,omitempty" yaml:"dispositions,omitempty"`
	DispositionDates []string     `json:"dispositionDates,omitempty" yaml:"dispositionDates,omitempty"`
	Sentencing       string       `json:"sentencing,omitempty" yaml:"sentencing,omitempty"`
	Expungeability   ChargeStatus `json:"isExpungeable" yaml:"isExpungeable"`
}

// ChargeStatus is the per-charge verdict.
type ChargeStatus struct {
	Status      string `json:"status,omitempty" yaml:"status,omitempty"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// DispositionSummary pairs each disposition with its date where one exists.
func (c Charge) DispositionSummary() []string {
	out := make([]string, len(c.Dispositions))
	for i, d := range c.Dispositions {
		if i < len(c.DispositionDates) && c.DispositionDates[i] != "" {
			out[i] = d + " (" + c.DispositionDates[i] + ")"
			continue
		}
		out[i] = d
	}
	return out
}

// AdditionalFactors carries docket-level facts beyond individual charges.
type AdditionalFactors struct {
	DeferredAcceptance    bool   `json:"deferredAcceptance,omitempty" yaml:"deferredAcceptance,omitempty"`
	DismissedOnOralMotion bool   `json:"dismissedOnOralMotion,omitempty" yaml:"dismissedOnOralMotion,omitempty"`
	OTNNumbers            string `json:"otnNumbers,omitempty" yaml:"otnNumbers,omitempty"`
}

// WarrantType distinguishes bench warrants from penal summonses.
type WarrantType string

// Known warrant types.
const (
	WarrantTypeBench        WarrantType = "bench warrant"
	WarrantTypePenalSummons WarrantType = "penal summons"
)

// WarrantStatus is the scraper's warrant verdict for a case.
type WarrantStatus struct {
	HasOutstandingWarrant bool           `json:"hasOutstandingWarrant" yaml:"hasOutstandingWarrant"`
	Entries               []WarrantEntry `json:"warrantEntries,omitempty" yaml:"warrantEntries,omitempty"`
	LatestWarrantType     WarrantType    `json:"latestWarrantType,omitempty" yaml:"latestWarrantType,omitempty"`
	LatestWarrantDate     string         `json:"latestWarrantDate,omitempty" yaml:"latestWarrantDate,omitempty"`
	LatestWarrantAmount   string         `json:"latestWarrantAmount,omitempty" yaml:"latestWarrantAmount,omitempty"`
	Explanation           string         `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Label returns the operator-facing status text.
func (w *WarrantStatus) Label() string {
	switch {
	case w == nil || len(w.Entries) == 0 && !w.HasOutstandingWarrant:
		return "No Warrant Found"
	case w.HasOutstandingWarrant && w.LatestWarrantType == WarrantTypePenalSummons:
		return "Outstanding Summons"
	case w.HasOutstandingWarrant:
		return "Outstanding Warrant"
	default:
		return "No Outstanding Warrant"
	}
}

// WarrantEntry is one warrant-related docket entry.
type WarrantEntry struct {
	Date       string `json:"date" yaml:"date"`
	Action     string `json:"warrantAction,omitempty" yaml:"warrantAction,omitempty"`
	Type       string `json:"warrantType,omitempty" yaml:"warrantType,omitempty"`
	DocketText string `json:"docketText,omitempty" yaml:"docketText,omitempty"`
	BailAmount string `json:"bailAmount,omitempty" yaml:"bailAmount,omitempty"`
}

// WarrantDetails are operator-entered facts for a warrant motion.
// They are keyed by case number and persisted separately from the case.
type WarrantDetails struct {
	CaseNumber        string `json:"caseNumber"`
	ConsultationDate  string `json:"consultationDate,omitempty"`
	ConsultationTown  string `json:"consultationTown,omitempty"`
	ConsultedAtEvent  bool   `json:"consultedAtEvent,omitempty"`
	NonAppearanceDate string `json:"nonAppearanceDate,omitempty"`
	WarrantIssueDate  string `json:"warrantIssueDate,omitempty"`
	WarrantAmount     string `json:"warrantAmount,omitempty"`
}

// LookupWarrant returns the warrant facts for a case number.
// Case numbers match case-insensitively.
func LookupWarrant(details map[string]WarrantDetails, caseNumber string) (WarrantDetails, bool) {
	caseNumber = strings.TrimSpace(caseNumber)
	if d, ok := details[caseNumber]; ok {
		return d, true
	}
	for key, d := range details {
		if strings.EqualFold(key, caseNumber) {
			return d, true
		}
	}
	return WarrantDetails{}, false
}
