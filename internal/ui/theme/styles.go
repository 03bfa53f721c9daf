package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds every style the browser renders with. Build it once per theme
// change with NewStyles.
type Styles struct {
	Theme Theme

	Brand         lipgloss.Style
	Search        lipgloss.Style
	SearchFocused lipgloss.Style
	Toggle        lipgloss.Style
	Badge         lipgloss.Style

	HeroTitle    lipgloss.Style
	HeroMeta     lipgloss.Style
	HeroOverview lipgloss.Style
	HeroFrame    lipgloss.Style

	ButtonPrimary   lipgloss.Style
	ButtonSecondary lipgloss.Style

	RowTitle lipgloss.Style
	Empty    lipgloss.Style

	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardTitle   lipgloss.Style
	CardRating  lipgloss.Style

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	ModalLabel lipgloss.Style

	Footer lipgloss.Style
	Link   lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles derives the browser styles from t.
func NewStyles(t Theme) Styles {
	base := lipgloss.NewStyle()

	card := t.Style(base, RoundedBorder(SlotRaised), Foreground(SlotRaised)).Padding(0, 1)

	return Styles{
		Theme: t,

		Brand:         t.Style(base, Foreground(SlotBrand), Bold()),
		Search:        t.Style(base, RoundedBorder(SlotNeutral), Foreground(SlotSurface)).Padding(0, 1),
		SearchFocused: t.Style(base, Foreground(SlotSurface)).Border(t.Borders.Rounded).BorderForeground(t.Palette.Brand.Base).Padding(0, 1),
		Toggle:        t.Style(base, Background(SlotRaised), PaddingX(1)),
		Badge:         t.Style(base, Background(SlotNeutral), PaddingX(1)),

		HeroTitle:    t.Style(base, Foreground(SlotSurface), Bold()).MarginBottom(1),
		HeroMeta:     t.Style(base, Muted(SlotSurface)),
		HeroOverview: t.Style(base, Foreground(SlotSurface)),
		HeroFrame:    t.Style(base).Border(t.Borders.Thick, false, false, false, true).BorderForeground(t.Palette.Brand.Base).PaddingLeft(2),

		ButtonPrimary:   t.Style(base, Background(SlotAccent), Bold(), PaddingX(1)),
		ButtonSecondary: t.Style(base, Background(SlotNeutral), PaddingX(1)),

		RowTitle: t.Style(base, Foreground(SlotSurface), Bold()).MarginTop(1),
		Empty:    t.Style(base, Muted(SlotSurface)).Italic(true),

		Card:        card,
		CardFocused: card.BorderForeground(t.Palette.Brand.Base),
		CardTitle:   t.Style(base, Foreground(SlotRaised), Bold()),
		CardRating:  t.Style(base, Foreground(SlotRating)),

		Modal:      t.Style(base, Background(SlotRaised)).Border(t.Borders.Rounded).BorderForeground(t.Palette.Brand.Base).Padding(1, 2),
		ModalTitle: t.Style(base, Bold()).Foreground(t.Palette.Raised.OnBase),
		ModalLabel: t.Style(base, Muted(SlotSurface)),

		Footer: t.Style(base, Muted(SlotSurface)).MarginTop(1),
		Link:   t.Style(base, Foreground(SlotNeutral)).Underline(true),
		Muted:  t.Style(base, Muted(SlotSurface)),
		Error:  t.Style(base, Foreground(SlotBrand)),
	}
}
