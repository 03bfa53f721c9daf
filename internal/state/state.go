// Package state holds the catalog view state and its transitions.
//
// ViewState is a value. Every transition returns a new ViewState so a reader
// never observes a half-applied update.
package state

import (
	"github.com/alexisbeaulieu97/streamix/internal/catalog"
)

// Theme selects the colour palette.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme maps a config value to a Theme. Anything but "light" is dark.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Row headings, in display order.
const (
	TitlePopular  = "Popular on Streamix"
	TitleTrending = "Trending Now"
	TitleGenre    = "Action Movies"

	// EmptyRowMessage replaces the cards of an empty collection.
	EmptyRowMessage = "No movies found."
)

// Collections are the three rows shown by the browser.
type Collections struct {
	Popular       []catalog.Item
	Trending      []catalog.Item
	GenreFiltered []catalog.Item
}

// Row pairs a collection with its heading.
type Row struct {
	Title string
	Items []catalog.Item
}

// Rows returns the collections in display order.
func (c Collections) Rows() []Row {
	return []Row{
		{Title: TitlePopular, Items: c.Popular},
		{Title: TitleTrending, Items: c.Trending},
		{Title: TitleGenre, Items: c.GenreFiltered},
	}
}

// ViewState is everything the view renders from.
type ViewState struct {
	Theme       Theme
	Provider    catalog.Provider
	Featured    *catalog.Item
	Collections Collections
	Selected    *catalog.Item
	Query       string
	Loading     bool
}

// Initial is the state before the first catalog load completes.
func Initial() ViewState {
	return ViewState{
		Theme:    ThemeDark,
		Provider: catalog.ProviderPrimary,
		Collections: Collections{
			Popular:       []catalog.Item{},
			Trending:      []catalog.Item{},
			GenreFiltered: []catalog.Item{},
		},
		Loading: true,
	}
}

// WithTheme returns s using theme t.
func (s ViewState) WithTheme(t Theme) ViewState {
	s.Theme = t
	return s
}

// ToggleTheme flips between dark and light.
func (s ViewState) ToggleTheme() ViewState {
	s.Theme = s.Theme.Toggled()
	return s
}

// SetSelected opens item in the detail modal; nil closes it.
func (s ViewState) SetSelected(item *catalog.Item) ViewState {
	s.Selected = cloneItem(item)
	return s
}

// ApplyCatalog replaces provider, featured and all three rows in one step.
func (s ViewState) ApplyCatalog(res catalog.Result) ViewState {
	s.Provider = res.Provider
	s.Featured = cloneItem(res.Featured)
	s.Collections = Collections{
		Popular:       cloneItems(res.Popular),
		Trending:      cloneItems(res.Trending),
		GenreFiltered: cloneItems(res.GenreFiltered),
	}
	s.Loading = false
	return s
}

// ApplySearch replaces the popular row with search results. Query, provider,
// featured and the other rows are untouched; the query is owned by SetQuery.
func (s ViewState) ApplySearch(items []catalog.Item) ViewState {
	s.Collections.Popular = cloneItems(items)
	return s
}

// SetQuery records the search box text without touching any row.
func (s ViewState) SetQuery(query string) ViewState {
	s.Query = query
	return s
}

func cloneItem(item *catalog.Item) *catalog.Item {
	if item == nil {
		return nil
	}
	c := *item
	return &c
}

func cloneItems(items []catalog.Item) []catalog.Item {
	out := make([]catalog.Item, len(items))
	copy(out, items)
	return out
}
