// Package browser is the interactive catalog browser: header, hero banner,
// three category rows and a detail modal.
package browser

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
	"github.com/alexisbeaulieu97/streamix/internal/logger"
	"github.com/alexisbeaulieu97/streamix/internal/state"
	"github.com/alexisbeaulieu97/streamix/internal/ui/theme"
)

const (
	rowPopular = iota
	rowTrending
	rowGenre
	rowCount
)

var rowTitles = [rowCount]string{
	rowPopular:  state.TitlePopular,
	rowTrending: state.TitleTrending,
	rowGenre:    state.TitleGenre,
}

const searchPlaceholder = "Search movie..."

type focusArea int

const (
	focusRows focusArea = iota
	focusSearch
)

// Options configures a Model.
type Options struct {
	Theme      state.Theme
	UseUnicode bool
	Logger     *logger.Logger
}

// Model is the browser's Bubble Tea model.
type Model struct {
	ctx context.Context
	svc CatalogService
	log *logger.Logger

	view   state.ViewState
	styles theme.Styles

	// Components
	search  textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	// Cursor: the focused row and the column within each row.
	focus focusArea
	row   int
	cols  [rowCount]int

	width      int
	height     int
	useUnicode bool
}

// NewModel builds a browser bound to svc. ctx bounds every fetch the
// browser issues.
func NewModel(ctx context.Context, svc CatalogService, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	view := state.Initial()
	if opts.Theme != "" {
		view = view.WithTheme(opts.Theme)
	}

	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.Width = 24

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		svc:        svc,
		log:        log.With("component", "browser"),
		view:       view,
		search:     ti,
		spinner:    s,
		help:       help.New(),
		keys:       defaultKeyMap(),
		width:      80,
		height:     24,
		useUnicode: opts.UseUnicode,
	}
	m.applyTheme()
	return m
}

// Init starts the spinner and the initial catalog load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCatalogCmd(m.ctx, m.svc))
}

// State returns the current view state.
func (m Model) State() state.ViewState {
	return m.view
}

func (m *Model) applyTheme() {
	m.styles = theme.NewStyles(theme.For(m.view.Theme))
	m.spinner.Style = m.styles.Brand
	m.search.TextStyle = m.styles.HeroOverview
	m.search.PlaceholderStyle = m.styles.Muted
	m.help.Styles.ShortKey = m.styles.Brand
	m.help.Styles.FullKey = m.styles.Brand
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.FullDesc = m.styles.Muted
}

// rowItems returns the collection behind row r, unfiltered.
func (m Model) rowItems(r int) []catalog.Item {
	switch r {
	case rowPopular:
		return m.view.Collections.Popular
	case rowTrending:
		return m.view.Collections.Trending
	case rowGenre:
		return m.view.Collections.GenreFiltered
	default:
		return nil
	}
}

// visibleItems returns the items of row r that can be shown: items
// without a poster are skipped.
func (m Model) visibleItems(r int) []catalog.Item {
	all := m.rowItems(r)
	out := make([]catalog.Item, 0, len(all))
	for _, it := range all {
		if it.HasPoster() {
			out = append(out, it)
		}
	}
	return out
}

// focusedItem returns the item under the cursor, if any.
func (m Model) focusedItem() (catalog.Item, bool) {
	items := m.visibleItems(m.row)
	col := m.cols[m.row]
	if col < 0 || col >= len(items) {
		return catalog.Item{}, false
	}
	return items[col], true
}

// clampCursor keeps every column inside its row after the rows change.
func (m *Model) clampCursor() {
	for r := range m.cols {
		n := len(m.visibleItems(r))
		switch {
		case n == 0:
			m.cols[r] = 0
		case m.cols[r] >= n:
			m.cols[r] = n - 1
		case m.cols[r] < 0:
			m.cols[r] = 0
		}
	}
}

func (m *Model) moveRow(delta int) {
	m.row = (m.row + delta + rowCount) % rowCount
}

func (m *Model) moveCol(delta int) {
	n := len(m.visibleItems(m.row))
	if n == 0 {
		return
	}
	m.cols[m.row] = max(0, min(n-1, m.cols[m.row]+delta))
}
