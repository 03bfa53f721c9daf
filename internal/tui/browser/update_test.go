package browser

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
	"github.com/alexisbeaulieu97/streamix/internal/state"
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := update(t, newTestModel(t, &fakeService{}), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120, m.help.Width)
}

func TestUpdate_SpinnerTickOnlyWhileLoading(t *testing.T) {
	m := newTestModel(t, &fakeService{})

	_, cmd := m.Update(spinner.TickMsg{})
	assert.NotNil(t, cmd, "spinner keeps ticking while loading")

	m = update(t, m, catalogLoadedMsg{Result: sampleResult()})
	_, cmd = m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd, "spinner stops once the catalog arrives")
}

func TestUpdate_CatalogLoaded(t *testing.T) {
	m := loadedModel(t, &fakeService{})

	s := m.State()
	assert.False(t, s.Loading)
	assert.Equal(t, catalog.ProviderPrimary, s.Provider)
	require.NotNil(t, s.Featured)
	assert.Equal(t, "p1", s.Featured.ID)
	assert.Len(t, s.Collections.Popular, 3)
}

func TestUpdate_SearchResult(t *testing.T) {
	m := loadedModel(t, &fakeService{})
	before := m.State()

	m = update(t, m, searchResultMsg{Provider: catalog.ProviderPrimary, Query: "dune", Items: posterItems("s", 1), Applied: true})
	after := m.State()
	require.Len(t, after.Collections.Popular, 1)
	assert.Equal(t, "s0", after.Collections.Popular[0].ID)
	assert.Equal(t, before.Collections.Trending, after.Collections.Trending)
	assert.Equal(t, before.Featured, after.Featured)
	assert.Equal(t, before.Provider, after.Provider)

	m = update(t, m, searchResultMsg{Query: "", Applied: false})
	assert.Len(t, m.State().Collections.Popular, 1, "no-op search keeps the previous rows")
}

func TestUpdate_LastSearchResponseWins(t *testing.T) {
	m := loadedModel(t, &fakeService{})

	m = update(t, m, keyRunes("/"))
	m = update(t, m, keyRunes("dun"))

	m = update(t, m, searchResultMsg{Provider: catalog.ProviderPrimary, Query: "dun", Items: posterItems("late", 2), Applied: true})
	m = update(t, m, searchResultMsg{Provider: catalog.ProviderPrimary, Query: "du", Items: posterItems("early", 1), Applied: true})

	assert.Equal(t, "dun", m.State().Query, "a stale response does not rewind the query")
	require.Len(t, m.State().Collections.Popular, 1)
	assert.Equal(t, "early0", m.State().Collections.Popular[0].ID)
}

func TestUpdate_ToggleTheme(t *testing.T) {
	m := loadedModel(t, &fakeService{})

	m = update(t, m, keyRunes("t"))
	assert.Equal(t, state.ThemeLight, m.State().Theme)
	assert.Equal(t, state.ThemeLight, m.styles.Theme.Name)

	m = update(t, m, keyRunes("t"))
	assert.Equal(t, state.ThemeDark, m.State().Theme)
}

func TestUpdate_Navigation(t *testing.T) {
	m := loadedModel(t, &fakeService{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, keyRunes("l"))
	m = update(t, m, keyRunes("l"))
	assert.Equal(t, 2, m.cols[rowPopular], "cursor stops at the last card")

	m = update(t, m, keyRunes("h"))
	assert.Equal(t, 1, m.cols[rowPopular])

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, rowTrending, m.row)
	m = update(t, m, keyRunes("j"))
	m = update(t, m, keyRunes("j"))
	assert.Equal(t, rowPopular, m.row, "rows wrap around")

	m = update(t, m, keyRunes("k"))
	assert.Equal(t, rowGenre, m.row)
	assert.Equal(t, 1, m.cols[rowPopular], "each row keeps its own column")
}

func TestUpdate_OpenAndCloseModal(t *testing.T) {
	m := loadedModel(t, &fakeService{})

	m = update(t, m, keyRunes("l"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.State().Selected)
	assert.Equal(t, "p1", m.State().Selected.ID)

	m = update(t, m, keyRunes("j"))
	assert.Equal(t, rowPopular, m.row, "navigation is disabled while the modal is open")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.State().Selected)
}

func TestUpdate_OpenSkipsPosterlessItems(t *testing.T) {
	m := newTestModel(t, &fakeService{})
	res := sampleResult()
	res.Popular[0].PosterURL = ""
	m = update(t, m, catalogLoadedMsg{Result: res})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.State().Selected)
	assert.Equal(t, "p1", m.State().Selected.ID)
}

func TestUpdate_OpenOnEmptyRowIsNoop(t *testing.T) {
	m := newTestModel(t, &fakeService{})
	m = update(t, m, catalogLoadedMsg{Result: catalog.EmptyResult(catalog.ProviderSecondary)})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.State().Selected)
	m = update(t, m, keyRunes("i"))
	assert.Nil(t, m.State().Selected, "no featured item to open")
}

func TestUpdate_FeaturedMoreInfo(t *testing.T) {
	m := loadedModel(t, &fakeService{})

	m = update(t, m, keyRunes("i"))
	require.NotNil(t, m.State().Selected)
	assert.Equal(t, m.State().Featured.ID, m.State().Selected.ID)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := loadedModel(t, &fakeService{})
	m = update(t, m, keyRunes("?"))
	assert.True(t, m.help.ShowAll)
	m = update(t, m, keyRunes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_Quit(t *testing.T) {
	m := loadedModel(t, &fakeService{})

	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestUpdate_TypingDispatchesSearch(t *testing.T) {
	svc := &fakeService{items: posterItems("s", 2)}
	m := loadedModel(t, svc)

	m = update(t, m, keyRunes("/"))
	require.Equal(t, focusSearch, m.focus)

	next, cmd := m.Update(keyRunes("t"))
	m = next.(Model)
	assert.Equal(t, state.ThemeDark, m.State().Theme, "typing t in the search box does not toggle the theme")
	assert.Equal(t, "t", m.State().Query)

	var results []searchResultMsg
	for _, msg := range drain(cmd) {
		if res, ok := msg.(searchResultMsg); ok {
			results = append(results, res)
		}
	}
	require.Len(t, results, 1)
	assert.Equal(t, "t", results[0].Query)
	assert.Equal(t, catalog.ProviderPrimary, results[0].Provider)
	assert.Equal(t, []searchCall{{Provider: catalog.ProviderPrimary, Query: "t"}}, svc.searches)

	m = update(t, m, results[0])
	assert.Equal(t, "s0", m.State().Collections.Popular[0].ID)
}

func TestUpdate_SearchUsesActiveProvider(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc)
	m = update(t, m, catalogLoadedMsg{Result: catalog.EmptyResult(catalog.ProviderSecondary)})

	m = update(t, m, keyRunes("/"))
	_, cmd := m.Update(keyRunes("x"))
	drain(cmd)

	require.Len(t, svc.searches, 1)
	assert.Equal(t, catalog.ProviderSecondary, svc.searches[0].Provider)
}

func TestUpdate_ClearingSearchDoesNotDispatch(t *testing.T) {
	svc := &fakeService{}
	m := loadedModel(t, svc)

	m = update(t, m, keyRunes("/"))
	m = update(t, m, keyRunes("a"))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Model)

	assert.Equal(t, "", m.State().Query)
	for _, msg := range drain(cmd) {
		_, isSearch := msg.(searchResultMsg)
		assert.False(t, isSearch, "an empty query never reaches the gateway")
	}
	assert.Empty(t, svc.searches)
}

func TestUpdate_LeaveSearch(t *testing.T) {
	m := loadedModel(t, &fakeService{})

	m = update(t, m, keyRunes("/"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusRows, m.focus)
	assert.False(t, m.search.Focused())

	m = update(t, m, keyRunes("t"))
	assert.Equal(t, state.ThemeLight, m.State().Theme, "keys act on the browser again")
}

func TestUpdate_SearchResultFromInactiveProviderDropped(t *testing.T) {
	svc := &fakeService{items: posterItems("tmdb", 2)}
	m := newTestModel(t, svc)

	// The catalog falls back to the secondary provider while a primary
	// search response is still in flight.
	fallback := catalog.Result{
		Provider: catalog.ProviderSecondary,
		Popular:  posterItems("maze", 3),
	}
	m = update(t, m, catalogLoadedMsg{Result: fallback})
	m = update(t, m, searchResultMsg{Provider: catalog.ProviderPrimary, Query: "x", Items: posterItems("tmdb", 2), Applied: true})

	s := m.State()
	assert.Equal(t, catalog.ProviderSecondary, s.Provider)
	require.Len(t, s.Collections.Popular, 3)
	for _, item := range s.Collections.Popular {
		assert.Contains(t, item.ID, "maze")
	}
}

func TestUpdate_SearchWhileLoadingWaitsForProvider(t *testing.T) {
	svc := &fakeService{items: posterItems("maze", 1)}
	m := newTestModel(t, svc)
	require.True(t, m.State().Loading)

	m = update(t, m, keyRunes("/"))
	next, cmd := m.Update(keyRunes("x"))
	m = next.(Model)
	drain(cmd)
	assert.Equal(t, "x", m.State().Query)
	assert.Empty(t, svc.searches, "nothing is searched before the provider is known")

	next, cmd = m.Update(catalogLoadedMsg{Result: catalog.EmptyResult(catalog.ProviderSecondary)})
	m = next.(Model)

	var results []searchResultMsg
	for _, msg := range drain(cmd) {
		if res, ok := msg.(searchResultMsg); ok {
			results = append(results, res)
		}
	}
	require.Len(t, results, 1)
	assert.Equal(t, []searchCall{{Provider: catalog.ProviderSecondary, Query: "x"}}, svc.searches)

	m = update(t, m, results[0])
	require.Len(t, m.State().Collections.Popular, 1)
	assert.Equal(t, "maze0", m.State().Collections.Popular[0].ID)
}

func TestUpdate_CatalogLoadWithoutQueryDoesNotSearch(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc)

	_, cmd := m.Update(catalogLoadedMsg{Result: sampleResult()})
	assert.Empty(t, drain(cmd))
	assert.Empty(t, svc.searches)
}
