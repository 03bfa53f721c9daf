// Package card renders a single catalog item as a poster card.
package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
	"github.com/alexisbeaulieu97/streamix/internal/ui/theme"
)

const (
	// DefaultWidth is the outer width of a card, border included.
	DefaultWidth = 22
	minWidth     = 8
	ellipsis     = "…"
	star         = "★"
)

// Style defines the visual appearance of a Card.
type Style struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Rating       lipgloss.Style
	Meta         lipgloss.Style
	Width        int
}

// StyleFrom picks the card styles out of the browser styles.
func StyleFrom(s theme.Styles) Style {
	return Style{
		Frame:        s.Card,
		FocusedFrame: s.CardFocused,
		Title:        s.CardTitle,
		Rating:       s.CardRating,
		Meta:         s.Muted,
		Width:        DefaultWidth,
	}
}

// Card is a poster card for one item.
type Card struct {
	item    catalog.Item
	style   Style
	focused bool
	ascii   bool
}

// New creates a card for item.
func New(item catalog.Item, style Style) *Card {
	if style.Width < minWidth {
		style.Width = DefaultWidth
	}
	return &Card{item: item, style: style}
}

// WithFocus marks the card as the cursor position.
func (c *Card) WithFocus(focused bool) *Card {
	c.focused = focused
	return c
}

// WithASCII swaps the star glyph for plain text.
func (c *Card) WithASCII(ascii bool) *Card {
	c.ascii = ascii
	return c
}

// View renders the card: truncated title, rating and release year.
func (c *Card) View() string {
	frame := c.style.Frame
	if c.focused {
		frame = c.style.FocusedFrame
	}

	inner := c.innerWidth(frame)
	lines := []string{
		c.style.Title.Render(Truncate(c.item.Title, inner)),
		c.style.Rating.Render(RatingLabel(c.item.Rating, c.ascii)) + " " + c.style.Meta.Render(Year(c.item)),
	}
	return frame.Width(c.style.Width - frame.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func (c *Card) innerWidth(frame lipgloss.Style) int {
	w := c.style.Width - frame.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

// Truncate shortens s to at most width terminal cells, ending with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// RatingLabel renders "★ 7.8", or "* 7.8" in ASCII mode.
func RatingLabel(r catalog.Rating, ascii bool) string {
	glyph := star
	if ascii {
		glyph = "*"
	}
	return glyph + " " + r.String()
}

// Year returns the first four characters of the release label, or the
// unknown marker.
func Year(item catalog.Item) string {
	label := item.Release()
	if len(label) >= 4 && label != catalog.UnknownMarker {
		return label[:4]
	}
	return label
}
