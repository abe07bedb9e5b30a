package services

import "github.com/custodia-labs/kokua-cli/internal/core/domain"

// Template resource names inside the templates directory.
const (
	ResourceExpungementForm          = "expungement_form.pdf"
	ResourceExpungementLetterPublic  = "expungement_letter_public.docx"
	ResourceExpungementLetterPrivate = "expungement_letter_private.docx"
	ResourceWarrantMotionPublic      = "warrant_motion_public.docx"
	ResourceWarrantMotionPrivate     = "warrant_motion_private.docx"
)

// Form field names of the expungement form.
const (
	formFieldClientName     = "Client_Name"
	formFieldHomeAddress    = "Home_Address"
	formFieldMailingAddress = "Mailing_Address"
	formFieldPhone          = "Phone_Number"
	formFieldEmail          = "Email"
	formFieldDOB            = "Date of Birth"
	formFieldSigningDate    = "Signing_Date"
	formFieldSex            = "Sex"
)

// builtinTemplates returns the registered descriptors. Each archive template
// owns a distinct block of ideographs; a residual glyph names its template.
func builtinTemplates() []domain.TemplateDescriptor {
	form := expungementForm()
	formPrivate := form
	formPrivate.Variant = domain.VariantPrivateCounsel

	return []domain.TemplateDescriptor{
		form,
		formPrivate,
		expungementLetterPublic(),
		expungementLetterPrivate(),
		warrantMotionPublic(),
		warrantMotionPrivate(),
	}
}

func expungementForm() domain.TemplateDescriptor {
	return domain.TemplateDescriptor{
		Kind:     domain.KindExpungementSummary,
		Variant:  domain.VariantPublicDefender,
		Format:   domain.FormatForm,
		Resource: ResourceExpungementForm,
		Bindings: []domain.FormBinding{
			{Name: formFieldClientName, Kind: domain.FormFieldText, Field: domain.FieldClientFormName},
			{Name: formFieldHomeAddress, Kind: domain.FormFieldText, Field: domain.FieldClientAddress},
			{Name: formFieldMailingAddress, Kind: domain.FormFieldText, Field: domain.FieldClientAddress},
			{Name: formFieldPhone, Kind: domain.FormFieldText, Field: domain.FieldClientPhone},
			{Name: formFieldEmail, Kind: domain.FormFieldText, Field: domain.FieldClientEmail},
			{Name: formFieldDOB, Kind: domain.FormFieldText, Field: domain.FieldClientDOB},
			{Name: formFieldSigningDate, Kind: domain.FormFieldText, Field: domain.FieldSigningDate},
			{Name: formFieldSex, Kind: domain.FormFieldRadio, Field: domain.FieldClientSex},
		},
	}
}

func expungementLetterPublic() domain.TemplateDescriptor {
	return domain.TemplateDescriptor{
		Kind:     domain.KindExpungementLetter,
		Variant:  domain.VariantPublicDefender,
		Format:   domain.FormatArchive,
		Resource: ResourceExpungementLetterPublic,
		Part:     letterPart,
		Placeholders: []domain.Placeholder{
			{Token: '一', Field: domain.FieldClientLetterName},
			{Token: '丁', Field: domain.FieldClientFormName},
			{Token: '七', Field: domain.FieldCaseNumber},
			{Token: '万', Field: domain.FieldCourtLocation},
			{Token: '丈', Field: domain.FieldFilingDate},
			{Token: '三', Field: domain.FieldAttorneyName},
			{Token: '上', Field: domain.FieldAttorneyRegistration},
			{Token: '下', Field: domain.FieldHeadDefenderName},
			{Token: '不', Field: domain.FieldHeadDefenderRegistration},
			{Token: '与', Field: domain.FieldCircuitOrdinal},
			{Token: '丐', Field: domain.FieldSignatureLocation},
			{Token: '丑', Field: domain.FieldSigningDate},
		},
		Blocks: []domain.OptionalBlock{
			{Field: domain.FieldClientAddress, Token: '专', RegionID: "1C2A0E01"},
			{Field: domain.FieldAttorneyEmail, Token: '且', RegionID: "1C2A0E02"},
		},
	}
}

func expungementLetterPrivate() domain.TemplateDescriptor {
	return domain.TemplateDescriptor{
		Kind:     domain.KindExpungementLetter,
		Variant:  domain.VariantPrivateCounsel,
		Format:   domain.FormatArchive,
		Resource: ResourceExpungementLetterPrivate,
		Part:     letterPart,
		Placeholders: []domain.Placeholder{
			{Token: '乀', Field: domain.FieldClientLetterName},
			{Token: '乁', Field: domain.FieldClientFormName},
			{Token: '乃', Field: domain.FieldCaseNumber},
			{Token: '久', Field: domain.FieldCourtLocation},
			{Token: '乇', Field: domain.FieldFilingDate},
			{Token: '么', Field: domain.FieldAttorneyName},
			{Token: '义', Field: domain.FieldAttorneyRegistration},
			{Token: '之', Field: domain.FieldFirmName},
			{Token: '乌', Field: domain.FieldAttorneyAddress1},
			{Token: '乍', Field: domain.FieldAttorneyTelephone},
			{Token: '乎', Field: domain.FieldCircuitOrdinal},
			{Token: '乏', Field: domain.FieldSignatureLocation},
			{Token: '乐', Field: domain.FieldSigningDate},
		},
		Blocks: []domain.OptionalBlock{
			{Field: domain.FieldAttorneyAddress2, Token: '乒', RegionID: "2D3B0F01"},
			{Field: domain.FieldAttorneyAddress3, Token: '乓', RegionID: "2D3B0F02"},
			{Field: domain.FieldAttorneyAddress4, Token: '乔', RegionID: "2D3B0F03"},
			{Field: domain.FieldAttorneyFax, Token: '乖', RegionID: "2D3B0F04"},
			{Field: domain.FieldAttorneyEmail, Token: '乗', RegionID: "2D3B0F05"},
			{Field: domain.FieldClientAddress, Token: '乘', RegionID: "2D3B0F06"},
		},
	}
}

func warrantMotionPublic() domain.TemplateDescriptor {
	return domain.TemplateDescriptor{
		Kind:     domain.KindWarrantMotion,
		Variant:  domain.VariantPublicDefender,
		Format:   domain.FormatArchive,
		Resource: ResourceWarrantMotionPublic,
		Part:     letterPart,
		Placeholders: []domain.Placeholder{
			{Token: '亀', Field: domain.FieldClientFormName},
			{Token: '亁', Field: domain.FieldClientLetterName},
			{Token: '亂', Field: domain.FieldCaseNumber},
			{Token: '亃', Field: domain.FieldCircuitOrdinal},
			{Token: '亄', Field: domain.FieldAttorneyName},
			{Token: '亅', Field: domain.FieldAttorneyRegistration},
			{Token: '了', Field: domain.FieldHeadDefenderName},
			{Token: '亇', Field: domain.FieldHeadDefenderRegistration},
			{Token: '予', Field: domain.FieldWarrantKind},
			{Token: '争', Field: domain.FieldConsultationMonth},
			{Token: '亊', Field: domain.FieldConsultationDay},
			{Token: '事', Field: domain.FieldConsultationYear},
			{Token: '二', Field: domain.FieldConsultationTown},
			{Token: '亍', Field: domain.FieldNonAppearanceMonth},
			{Token: '于', Field: domain.FieldNonAppearanceDay},
			{Token: '亏', Field: domain.FieldNonAppearanceYear},
			{Token: '亐', Field: domain.FieldWarrantIssueMonth},
			{Token: '云', Field: domain.FieldWarrantIssueDay},
			{Token: '互', Field: domain.FieldWarrantIssueYear},
			{Token: '亓', Field: domain.FieldWarrantAmount},
			{Token: '五', Field: domain.FieldSignatureLocation},
			{Token: '井', Field: domain.FieldSigningDate},
		},
		Blocks: []domain.OptionalBlock{
			{Field: domain.FieldConsultedAtEventClause, Token: '亖', RegionID: "3E4C1A01"},
		},
	}
}

func warrantMotionPrivate() domain.TemplateDescriptor {
	return domain.TemplateDescriptor{
		Kind:     domain.KindWarrantMotion,
		Variant:  domain.VariantPrivateCounsel,
		Format:   domain.FormatArchive,
		Resource: ResourceWarrantMotionPrivate,
		Part:     letterPart,
		Placeholders: []domain.Placeholder{
			{Token: '什', Field: domain.FieldClientFormName},
			{Token: '仁', Field: domain.FieldClientLetterName},
			{Token: '仂', Field: domain.FieldCaseNumber},
			{Token: '仃', Field: domain.FieldCircuitOrdinal},
			{Token: '仄', Field: domain.FieldAttorneyName},
			{Token: '仅', Field: domain.FieldAttorneyRegistration},
			{Token: '仆', Field: domain.FieldFirmName},
			{Token: '仇', Field: domain.FieldAttorneyAddress1},
			{Token: '仈', Field: domain.FieldAttorneyTelephone},
			{Token: '仉', Field: domain.FieldWarrantKind},
			{Token: '今', Field: domain.FieldConsultationMonth},
			{Token: '介', Field: domain.FieldConsultationDay},
			{Token: '仌', Field: domain.FieldConsultationYear},
			{Token: '仍', Field: domain.FieldConsultationTown},
			{Token: '从', Field: domain.FieldNonAppearanceMonth},
			{Token: '仏', Field: domain.FieldNonAppearanceDay},
			{Token: '仐', Field: domain.FieldNonAppearanceYear},
			{Token: '仑', Field: domain.FieldWarrantIssueMonth},
			{Token: '仒', Field: domain.FieldWarrantIssueDay},
			{Token: '仓', Field: domain.FieldWarrantIssueYear},
			{Token: '仔', Field: domain.FieldWarrantAmount},
			{Token: '仕', Field: domain.FieldSignatureLocation},
			{Token: '他', Field: domain.FieldSigningDate},
		},
		Blocks: []domain.OptionalBlock{
			{Field: domain.FieldConsultedAtEventClause, Token: '仗', RegionID: "4F5D2B01"},
			{Field: domain.FieldAttorneyAddress2, Token: '付', RegionID: "4F5D2B02"},
			{Field: domain.FieldAttorneyAddress3, Token: '仙', RegionID: "4F5D2B03"},
			{Field: domain.FieldAttorneyAddress4, Token: '仚', RegionID: "4F5D2B04"},
			{Field: domain.FieldAttorneyFax, Token: '仛', RegionID: "4F5D2B05"},
			{Field: domain.FieldAttorneyEmail, Token: '仜', RegionID: "4F5D2B06"},
		},
	}
}
