package casedetail

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

func testCase() domain.CaseRecord {
	return domain.CaseRecord{
		CaseNumber:    "1DTC-20-000001",
		DefendantName: "DOE, JANE",
		CourtLocation: "Honolulu District Court",
		Expungeable:   domain.ExpungeableAll,
		Override:      true,
		WarrantStatus: &domain.WarrantStatus{
			HasOutstandingWarrant: true,
			LatestWarrantType:     domain.WarrantTypeBench,
			LatestWarrantDate:     "03/04/2021",
			LatestWarrantAmount:   "$500.00",
		},
		Charges: []domain.Charge{
			{Count: "1", Statute: "291C-102", Description: "Noncompliance with Speed Limit"},
		},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_NoCase(t *testing.T) {
	v := NewView(nil)

	assert.Nil(t, v.Case())
	assert.Contains(t, v.View(), "No case selected")
}

func TestView_RendersCase(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(100, 40)
	v.SetCase(testCase())

	view := v.View()
	for _, want := range []string{
		"1DTC-20-000001",
		"DOE, JANE",
		"Honolulu District Court",
		"All Expungeable",
		"OVERRIDE",
		"Outstanding Warrant",
		"bench warrant",
		"$500.00",
		"Charges (1)",
		"291C-102",
	} {
		assert.Contains(t, view, want)
	}
}

func TestView_EmptyFieldsShowDash(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(100, 40)
	v.SetCase(domain.CaseRecord{CaseNumber: "1DTC-20-000009"})

	view := v.View()
	assert.Contains(t, view, "No Warrant Found")
	assert.Contains(t, view, "-")
	assert.NotContains(t, view, "OVERRIDE")
}

func TestView_Back(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, runes("q")} {
		t.Run(k.String(), func(t *testing.T) {
			v := NewView(nil)
			v.SetCase(testCase())

			_, cmd := v.Update(k)
			require.NotNil(t, cmd)
			assert.Equal(t, messages.ViewChanged{View: messages.ViewCases}, cmd())
		})
	}
}

func TestView_Scroll(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 6)
	v.SetCase(testCase())

	first := v.View()
	v.Update(runes("j"))
	v.Update(runes("j"))
	assert.NotEqual(t, first, v.View())

	v.Update(runes("k"))
	v.Update(runes("k"))
	v.Update(runes("k"))
	assert.Equal(t, first, v.View())
}

func TestView_ScrollClamped(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 200)
	v.SetCase(testCase())

	first := v.View()
	for i := 0; i < 10; i++ {
		v.Update(runes("j"))
	}
	assert.Equal(t, first, v.View())
}

func TestView_SetCaseResetsScroll(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 6)
	v.SetCase(testCase())
	first := v.View()

	v.Update(runes("j"))
	v.SetCase(testCase())
	assert.Equal(t, first, v.View())
}
