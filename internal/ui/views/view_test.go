package views

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tekstitv/internal/domain"
)

func baseState(phase Phase) ViewState {
	return ViewState{
		Width:     80,
		Height:    24,
		Phase:     phase,
		PageLabel: "P100",
		Clock:     time.Date(2026, 2, 1, 15, 4, 5, 0, time.UTC),
		Spinner:   "*",
		HelpView:  "h: page 100",
	}
}

func TestRenderBeforeWindowSize(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	out := r.Render(ViewState{})
	assert.Equal(t, "Opening...", out)
}

func TestRenderPhaseScreens(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	out := r.Render(baseState(PhaseLoading))
	assert.Contains(t, out, "Loading...")
	assert.Contains(t, out, "P100")
	assert.Contains(t, out, "01.02. 15:04:05")

	out = r.Render(baseState(PhaseFailed))
	assert.Contains(t, out, "Load failed...")
	assert.Contains(t, out, "e: return to previous page")

	out = r.Render(baseState(PhaseFailedFirst))
	assert.Contains(t, out, "Load failed...")
	assert.NotContains(t, out, "e: return to previous page",
		"there is no previous page to return to on a first failure")
	assert.Contains(t, out, "r: try again")
}

func TestRenderTextPage(t *testing.T) {
	t.Parallel()

	state := baseState(PhaseComplete)
	state.Document = domain.Document{
		Kind: domain.PageKindText,
		Text: &domain.TextDocument{
			Title: "YLE TEKSTI-TV",
			PageNavigation: []domain.NavigationItem{
				domain.TextItem("Teksti-TV"),
				domain.LinkItem(domain.Link{URL: "101_0001.htm", Label: "Uutiset"}),
				domain.LinkItem(domain.Link{URL: "160_0001.htm", Label: "Urheilu"}),
				domain.LinkItem(domain.Link{URL: "199_0001.htm", Label: "Sää"}),
			},
			MiddleRows: [][]domain.NavigationItem{
				nil,
				{domain.TextItem("Kotimaan uutiset")},
				{domain.TextItem(" "), domain.LinkItem(domain.Link{URL: "201_0001.htm", Label: "201"})},
			},
			SubPages: []domain.NavigationItem{domain.TextItem(" 1/2 ")},
			BottomNavigation: []domain.Link{
				{URL: "101_0001.htm", Label: "Uutiset"},
				{URL: "130_0001.htm", Label: "Talous"},
				{URL: "160_0001.htm", Label: "Urheilu"},
				{URL: "199_0001.htm", Label: "Sää"},
				{URL: "300_0001.htm", Label: "Ohjelmat"},
				{URL: "800_0001.htm", Label: "Info"},
			},
		},
	}

	r := NewRenderer()
	out := r.Render(state)
	assert.Contains(t, out, "YLE TEKSTI-TV")
	assert.Contains(t, out, "Kotimaan uutiset")
	assert.Contains(t, out, "201")
	assert.Contains(t, out, " 1/2 ")
	assert.Contains(t, out, "Ohjelmat")
	assert.Equal(t, 2, strings.Count(out, "Uutiset | Urheilu"),
		"the navigation row repeats above and below the body")
}

func TestRenderHeaderTightWidth(t *testing.T) {
	t.Parallel()

	state := baseState(PhaseLoading)
	state.Width = 10

	r := NewRenderer()
	out := r.Render(state)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "P100", "a narrow window still shows the page label")
}
