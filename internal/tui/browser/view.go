package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
	"github.com/alexisbeaulieu97/streamix/internal/state"
	"github.com/alexisbeaulieu97/streamix/internal/ui/card"
)

const (
	heroOverviewLines = 3
	maxModalWidth     = 72
	cardGap           = 1
)

var footerLinks = []string{"LinkedIn", "Instagram", "GitHub", "YouTube"}

// View renders the current model state.
func (m Model) View() string {
	if m.view.Selected != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal(*m.view.Selected))
	}

	sections := []string{m.renderHeader()}
	if m.view.Loading {
		sections = append(sections, m.spinner.View()+" "+m.styles.Muted.Render("Loading catalog..."))
	}
	if hero := m.renderHero(); hero != "" {
		sections = append(sections, hero)
	}
	for r := 0; r < rowCount; r++ {
		sections = append(sections, m.renderRow(r))
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// toggleLabel names the theme the toggle switches to.
func toggleLabel(t state.Theme) string {
	if t == state.ThemeLight {
		return "Dark"
	}
	return "Light"
}

func (m Model) renderHeader() string {
	searchStyle := m.styles.Search
	if m.focus == focusSearch {
		searchStyle = m.styles.SearchFocused
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Brand.Render("Streamix"),
		"   ",
		searchStyle.Render(m.search.View()),
		"   ",
		m.styles.Toggle.Render(toggleLabel(m.view.Theme)),
		" ",
		m.styles.Badge.Render(m.view.Provider.DisplayName()),
	)
}

func (m Model) renderHero() string {
	item := m.view.Featured
	if item == nil {
		return ""
	}

	width := max(20, m.width-4)
	meta := fmt.Sprintf("Released: %s   %s", item.Release(), card.RatingLabel(item.Rating, !m.useUnicode))
	overview := clampLines(lipgloss.NewStyle().Width(width).Render(item.Overview), heroOverviewLines)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.ButtonPrimary.Render("Play"),
		"  ",
		m.styles.ButtonSecondary.Render("More Info"),
		"  ",
		m.styles.Muted.Render("(i)"),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.HeroTitle.Render(card.Truncate(item.Title, width)),
		m.styles.HeroMeta.Render(meta),
		"",
		m.styles.HeroOverview.Render(overview),
		"",
		buttons,
	)
	return m.styles.HeroFrame.Render(body)
}

func (m Model) renderRow(r int) string {
	title := rowTitles[r]
	items := m.visibleItems(r)
	focused := m.focus == focusRows && r == m.row

	if focused && len(items) > 0 {
		title += m.styles.Muted.Render(fmt.Sprintf("  %d/%d", m.cols[r]+1, len(items)))
	}
	header := m.styles.RowTitle.Render(title)

	if len(m.rowItems(r)) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.styles.Empty.Render(state.EmptyRowMessage))
	}
	if len(items) == 0 {
		return header
	}

	fit := max(1, m.width/(card.DefaultWidth+cardGap))
	col := m.cols[r]
	start := 0
	if col >= fit {
		start = col - fit + 1
	}
	end := min(len(items), start+fit)

	style := card.StyleFrom(m.styles)
	cards := make([]string, 0, 2*(end-start))
	for i := start; i < end; i++ {
		if i > start {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		c := card.New(items[i], style).
			WithFocus(focused && i == col).
			WithASCII(!m.useUnicode)
		cards = append(cards, c.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
}

func (m Model) renderModal(item catalog.Item) string {
	width := min(maxModalWidth, max(30, m.width-4))
	inner := width - m.styles.Modal.GetHorizontalFrameSize()

	closeHint := "esc ✕"
	if !m.useUnicode {
		closeHint = "esc x"
	}
	lines := []string{
		m.styles.ModalTitle.Render(card.Truncate(item.Title, inner-6)) + "  " + m.styles.Muted.Render(closeHint),
		"",
	}
	if item.HasPoster() {
		lines = append(lines, m.styles.ModalLabel.Render("Poster: ")+card.Truncate(item.PosterURL, inner-8))
	}
	lines = append(lines,
		m.styles.ModalLabel.Render("Rating: ")+item.Rating.String(),
		m.styles.ModalLabel.Render("Released: ")+item.Release(),
		"",
		lipgloss.NewStyle().Width(inner).Render(item.Overview),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.ButtonPrimary.Render("Play"),
			"  ",
			m.styles.ButtonSecondary.Render("Add to List"),
		),
	)

	return m.styles.Modal.Width(width - m.styles.Modal.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	sep, copyright := " · ", "© Streamix"
	if !m.useUnicode {
		sep, copyright = " | ", "(c) Streamix"
	}
	links := make([]string, len(footerLinks))
	for i, l := range footerLinks {
		links[i] = m.styles.Link.Render(l)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Footer.Render(copyright),
		strings.Join(links, sep),
		"",
		m.help.View(m.keys),
	)
}

// clampLines keeps the first n lines of s, marking a cut with an ellipsis.
func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	lines = lines[:n]
	lines[n-1] = strings.TrimRight(lines[n-1], " ") + "…"
	return strings.Join(lines, "\n")
}
