package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeComponent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"O'Brien, Seán", "O_Brien__Sean"},
		{"Kealoha-Nāone", "Kealoha-Naone"},
		{"Doe", "Doe"},
		{"de la Cruz", "de_la_Cruz"},
		{"Müller/../etc", "Muller____etc"},
		{"1DTC-20-000001", "1DTC-20-000001"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeComponent(tt.input))
		})
	}
}

func TestSanitizeComponent_AllowList(t *testing.T) {
	allowed := regexp.MustCompile(`^[A-Za-z0-9_-]*$`)
	for _, input := range []string{"O'Brien, Seán", "李 小龍", "Ōkubo\tTōru\n", "a\x00b"} {
		got := SanitizeComponent(input)
		assert.Regexp(t, allowed, got)
		assert.Equal(t, got, SanitizeComponent(input), "sanitising must be deterministic")
	}
}

func TestArtifactFilename(t *testing.T) {
	tests := []struct {
		name       string
		last       string
		suffix     string
		caseNumber string
		ext        string
		want       string
	}{
		{"client scoped", "Doe", "form_and_summary", "", "pdf", "Doe_form_and_summary.pdf"},
		{"case scoped", "Doe", "expungement_letter", "1DTC-20-000001", "docx", "Doe_expungement_letter_1DTC-20-000001.docx"},
		{"empty last name", "  ", "form_and_summary", "", "pdf", "name_unavailable_form_and_summary.pdf"},
		{"diacritics", "O'Brien", "motion_to_recall_warrant", "2CPC 19/7", "docx", "O_Brien_motion_to_recall_warrant_2CPC_19_7.docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArtifactFilename(tt.last, tt.suffix, tt.caseNumber, tt.ext))
		})
	}
}

func TestFilenameSet_Claim(t *testing.T) {
	names := newFilenameSet()

	assert.Equal(t, "Doe_form_and_summary.pdf", names.claim("Doe_form_and_summary.pdf"))
	assert.Equal(t, "Doe_form_and_summary_2.pdf", names.claim("Doe_form_and_summary.pdf"))
	assert.Equal(t, "Doe_form_and_summary_3.pdf", names.claim("Doe_form_and_summary.pdf"))
	assert.Equal(t, "DOE_form_and_summary_4.pdf", names.claim("DOE_form_and_summary.pdf"), "collisions ignore case")
	assert.Equal(t, "Roe_form_and_summary.pdf", names.claim("Roe_form_and_summary.pdf"))
}
