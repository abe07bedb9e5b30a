package services

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// Date layouts.
const (
	signingDateLayout = "January 2, 2006"
	summaryTimeLayout = "1/2/2006, 3:04:05 PM"
)

// defaultCircuit is printed when the attorney profile names no circuit.
const defaultCircuit = "First"

// consultedAtEventClause is inserted when the client was seen at an outreach event.
const consultedAtEventClause = "at a community expungement and warrant clinic"

// inputDateLayouts are the date formats accepted from operator input and
// court records.
var inputDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

var amountPrinter = message.NewPrinter(language.English)

// BuildFieldValues flattens run, client, case and warrant data into the value
// record consumed by template tables. c and warrant may be nil.
func BuildFieldValues(
	run domain.RunConfig,
	identity domain.ClientIdentity,
	c *domain.CaseRecord,
	warrant *domain.WarrantDetails,
) *domain.FieldValues {
	alt := run.Alternate
	attorney := run.Attorney.WithDefaults()

	v := &domain.FieldValues{
		ClientFormName:   identity.FormName,
		ClientLetterName: identity.LetterName,
		ClientLastName:   identity.Last,
		ClientFirstName:  identity.First,
		ClientMiddleName: identity.Middle,
		ClientAddress:    alt.AddressLine(),
		ClientPhone:      strings.TrimSpace(alt.Phone),
		ClientEmail:      strings.TrimSpace(alt.Email),
		ClientDOB:        strings.TrimSpace(alt.DOB),
		ClientSex:        strings.TrimSpace(alt.Sex),

		AttorneyName:         attorney.Name,
		AttorneyRegistration: attorney.Registration,
		AttorneyTelephone:    attorney.Telephone,
		AttorneyFax:          attorney.Fax,
		AttorneyEmail:        attorney.Email,
		CircuitOrdinal:       firstNonEmpty(attorney.CircuitOrdinal, defaultCircuit),
		SignatureLocation:    attorney.SignatureLocation,
		SigningDate:          run.LocalNow().Format(signingDateLayout),
		SummaryTimestamp:     run.LocalNow().Format(summaryTimeLayout),
	}

	switch attorney.Variant {
	case domain.VariantPrivateCounsel:
		v.FirmName = attorney.FirmName
		v.AttorneyAddress1 = attorney.Address1
		v.AttorneyAddress2 = attorney.Address2
		v.AttorneyAddress3 = attorney.Address3
		v.AttorneyAddress4 = attorney.Address4
	default:
		v.HeadDefenderName = attorney.HeadDefenderName
		v.HeadDefenderRegistration = attorney.HeadDefenderRegistration
	}

	if c != nil {
		v.CaseNumber = strings.TrimSpace(c.CaseNumber)
		v.CaseType = c.CaseType
		v.CourtLocation = c.CourtLocation
		v.FilingDate = c.FilingDate
		applyWarrantStatus(v, c.WarrantStatus)
	}
	if warrant != nil {
		applyWarrantDetails(v, warrant)
	}
	return v
}

func applyWarrantStatus(v *domain.FieldValues, status *domain.WarrantStatus) {
	if status == nil {
		return
	}
	v.WarrantKind = string(status.LatestWarrantType)
	if v.WarrantKind == "" && status.HasOutstandingWarrant {
		v.WarrantKind = string(domain.WarrantTypeBench)
	}
	v.WarrantIssueMonth, v.WarrantIssueDay, v.WarrantIssueYear = DateComponents(status.LatestWarrantDate)
	v.WarrantAmount = FormatAmount(status.LatestWarrantAmount)
}

// applyWarrantDetails overlays operator-entered facts on the scraped status.
func applyWarrantDetails(v *domain.FieldValues, d *domain.WarrantDetails) {
	v.ConsultationMonth, v.ConsultationDay, v.ConsultationYear = DateComponents(d.ConsultationDate)
	v.ConsultationTown = strings.TrimSpace(d.ConsultationTown)
	v.NonAppearanceMonth, v.NonAppearanceDay, v.NonAppearanceYear = DateComponents(d.NonAppearanceDate)
	if d.ConsultedAtEvent {
		v.ConsultedAtEventClause = consultedAtEventClause
	}
	if strings.TrimSpace(d.WarrantIssueDate) != "" {
		v.WarrantIssueMonth, v.WarrantIssueDay, v.WarrantIssueYear = DateComponents(d.WarrantIssueDate)
	}
	if strings.TrimSpace(d.WarrantAmount) != "" {
		v.WarrantAmount = FormatAmount(d.WarrantAmount)
	}
}

// DateComponents splits a date into its month name, day and year.
// Unparseable input yields empty components.
func DateComponents(s string) (month, day, year string) {
	t, ok := parseDate(s)
	if !ok {
		return "", "", ""
	}
	return t.Month().String(), strconv.Itoa(t.Day()), strconv.Itoa(t.Year())
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range inputDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatAmount groups the integer digits of a monetary amount with commas,
// keeping the fraction digits as given: "1234.5" becomes "1,234.5".
// A leading "$" and existing separators are accepted. Anything else that
// does not parse as a number is returned unchanged.
func FormatAmount(s string) string {
	trimmed := strings.TrimSpace(s)
	raw := strings.ReplaceAll(strings.TrimPrefix(trimmed, "$"), ",", "")
	if raw == "" {
		return trimmed
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || strings.ContainsAny(raw, "eEnN") {
		return s
	}

	scale := 0
	if _, frac, ok := strings.Cut(raw, "."); ok {
		scale = len(frac)
	}
	return amountPrinter.Sprint(number.Decimal(f, number.Scale(scale)))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
