package domain

// FieldValues is the flattened record of values injected into a template.
// It is assembled immediately before rendering one document.
type FieldValues struct {
	// Client.
	ClientFormName   string
	ClientLetterName string
	ClientLastName   string
	ClientFirstName  string
	ClientMiddleName string
	ClientAddress    string
	ClientPhone      string
	ClientEmail      string
	ClientDOB        string
	ClientSex        string

	// Case.
	CaseNumber    string
	CaseType      string
	CourtLocation string
	FilingDate    string

	// Attorney.
	AttorneyName             string
	AttorneyRegistration     string
	HeadDefenderName         string
	HeadDefenderRegistration string
	FirmName                 string
	AttorneyAddress1         string
	AttorneyAddress2         string
	AttorneyAddress3         string
	AttorneyAddress4         string
	AttorneyTelephone        string
	AttorneyFax              string
	AttorneyEmail            string
	CircuitOrdinal           string
	SignatureLocation        string
	SigningDate              string

	// SummaryTimestamp is the generation time printed on summary pages.
	SummaryTimestamp string

	// Warrant.
	WarrantKind            string
	ConsultationMonth      string
	ConsultationDay        string
	ConsultationYear       string
	ConsultationTown       string
	ConsultedAtEventClause string
	NonAppearanceMonth     string
	NonAppearanceDay       string
	NonAppearanceYear      string
	WarrantIssueMonth      string
	WarrantIssueDay        string
	WarrantIssueYear       string
	WarrantAmount          string
}

// Fields available to template tables.
var (
	FieldClientFormName   = Field{"client_form_name", func(v *FieldValues) string { return v.ClientFormName }}
	FieldClientLetterName = Field{"client_letter_name", func(v *FieldValues) string { return v.ClientLetterName }}
	FieldClientLastName   = Field{"client_last_name", func(v *FieldValues) string { return v.ClientLastName }}
	FieldClientAddress    = Field{"client_address", func(v *FieldValues) string { return v.ClientAddress }}
	FieldClientPhone      = Field{"client_phone", func(v *FieldValues) string { return v.ClientPhone }}
	FieldClientEmail      = Field{"client_email", func(v *FieldValues) string { return v.ClientEmail }}
	FieldClientDOB        = Field{"client_dob", func(v *FieldValues) string { return v.ClientDOB }}
	FieldClientSex        = Field{"client_sex", func(v *FieldValues) string { return v.ClientSex }}

	FieldCaseNumber    = Field{"case_number", func(v *FieldValues) string { return v.CaseNumber }}
	FieldCourtLocation = Field{"court_location", func(v *FieldValues) string { return v.CourtLocation }}
	FieldFilingDate    = Field{"filing_date", func(v *FieldValues) string { return v.FilingDate }}

	FieldAttorneyName             = Field{"attorney_name", func(v *FieldValues) string { return v.AttorneyName }}
	FieldAttorneyRegistration     = Field{"attorney_registration", func(v *FieldValues) string { return v.AttorneyRegistration }}
	FieldHeadDefenderName         = Field{"head_defender_name", func(v *FieldValues) string { return v.HeadDefenderName }}
	FieldHeadDefenderRegistration = Field{"head_defender_registration", func(v *FieldValues) string { return v.HeadDefenderRegistration }}
	FieldFirmName                 = Field{"firm_name", func(v *FieldValues) string { return v.FirmName }}
	FieldAttorneyAddress1         = Field{"attorney_address_1", func(v *FieldValues) string { return v.AttorneyAddress1 }}
	FieldAttorneyAddress2         = Field{"attorney_address_2", func(v *FieldValues) string { return v.AttorneyAddress2 }}
	FieldAttorneyAddress3         = Field{"attorney_address_3", func(v *FieldValues) string { return v.AttorneyAddress3 }}
	FieldAttorneyAddress4         = Field{"attorney_address_4", func(v *FieldValues) string { return v.AttorneyAddress4 }}
	FieldAttorneyTelephone        = Field{"attorney_telephone", func(v *FieldValues) string { return v.AttorneyTelephone }}
	FieldAttorneyFax              = Field{"attorney_fax", func(v *FieldValues) string { return v.AttorneyFax }}
	FieldAttorneyEmail            = Field{"attorney_email", func(v *FieldValues) string { return v.AttorneyEmail }}
	FieldCircuitOrdinal           = Field{"circuit_ordinal", func(v *FieldValues) string { return v.CircuitOrdinal }}
	FieldSignatureLocation        = Field{"signature_location", func(v *FieldValues) string { return v.SignatureLocation }}
	FieldSigningDate              = Field{"signing_date", func(v *FieldValues) string { return v.SigningDate }}

	FieldWarrantKind            = Field{"warrant_kind", func(v *FieldValues) string { return v.WarrantKind }}
	FieldConsultationMonth      = Field{"consultation_month", func(v *FieldValues) string { return v.ConsultationMonth }}
	FieldConsultationDay        = Field{"consultation_day", func(v *FieldValues) string { return v.ConsultationDay }}
	FieldConsultationYear       = Field{"consultation_year", func(v *FieldValues) string { return v.ConsultationYear }}
	FieldConsultationTown       = Field{"consultation_town", func(v *FieldValues) string { return v.ConsultationTown }}
	FieldConsultedAtEventClause = Field{"consulted_at_event", func(v *FieldValues) string { return v.ConsultedAtEventClause }}
	FieldNonAppearanceMonth     = Field{"non_appearance_month", func(v *FieldValues) string { return v.NonAppearanceMonth }}
	FieldNonAppearanceDay       = Field{"non_appearance_day", func(v *FieldValues) string { return v.NonAppearanceDay }}
	FieldNonAppearanceYear      = Field{"non_appearance_year", func(v *FieldValues) string { return v.NonAppearanceYear }}
	FieldWarrantIssueMonth      = Field{"warrant_issue_month", func(v *FieldValues) string { return v.WarrantIssueMonth }}
	FieldWarrantIssueDay        = Field{"warrant_issue_day", func(v *FieldValues) string { return v.WarrantIssueDay }}
	FieldWarrantIssueYear       = Field{"warrant_issue_year", func(v *FieldValues) string { return v.WarrantIssueYear }}
	FieldWarrantAmount          = Field{"warrant_amount", func(v *FieldValues) string { return v.WarrantAmount }}
)
