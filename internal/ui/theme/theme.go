// Package theme provides the dark and light palettes and the lipgloss styles
// derived from them.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/streamix/internal/state"
)

// ColourSet represents a semantic colour slot with base, on-base, muted and
// contrast colours.
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette describes the semantic colour slots used by the browser.
type Palette struct {
	Brand   ColourSet
	Surface ColourSet
	Raised  ColourSet
	Accent  ColourSet
	Rating  ColourSet
	Neutral ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// Theme is a named palette plus borders.
type Theme struct {
	Name    state.Theme
	Palette Palette
	Borders BorderSet
}

func defaultBorders() BorderSet {
	return BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}
}

// Dark is the default theme.
func Dark() Theme {
	return Theme{
		Name: state.ThemeDark,
		Palette: Palette{
			Brand: ColourSet{
				Base:     "#e50914",
				OnBase:   "#ffffff",
				Muted:    "#b20710",
				Contrast: "#f5f5f1",
			},
			Surface: ColourSet{
				Base:     "#141414",
				OnBase:   "#e5e5e5",
				Muted:    "#808080",
				Contrast: "#ffffff",
			},
			Raised: ColourSet{
				Base:     "#1f1f1f",
				OnBase:   "#f5f5f1",
				Muted:    "#333333",
				Contrast: "#e50914",
			},
			Accent: ColourSet{
				Base:     "#ffffff",
				OnBase:   "#141414",
				Muted:    "#6d6d6e",
				Contrast: "#e50914",
			},
			Rating: ColourSet{
				Base:     "#f5c518",
				OnBase:   "#141414",
				Muted:    "#a58a10",
				Contrast: "#ffffff",
			},
			Neutral: ColourSet{
				Base:     "#6d6d6e",
				OnBase:   "#e5e5e5",
				Muted:    "#4d4d4d",
				Contrast: "#b3b3b3",
			},
		},
		Borders: defaultBorders(),
	}
}

// Light mirrors Dark on a white surface.
func Light() Theme {
	return Theme{
		Name: state.ThemeLight,
		Palette: Palette{
			Brand: ColourSet{
				Base:     "#e50914",
				OnBase:   "#ffffff",
				Muted:    "#f40612",
				Contrast: "#141414",
			},
			Surface: ColourSet{
				Base:     "#ffffff",
				OnBase:   "#141414",
				Muted:    "#6b7280",
				Contrast: "#000000",
			},
			Raised: ColourSet{
				Base:     "#f3f4f6",
				OnBase:   "#111827",
				Muted:    "#d1d5db",
				Contrast: "#e50914",
			},
			Accent: ColourSet{
				Base:     "#141414",
				OnBase:   "#ffffff",
				Muted:    "#9ca3af",
				Contrast: "#e50914",
			},
			Rating: ColourSet{
				Base:     "#b45309",
				OnBase:   "#ffffff",
				Muted:    "#d97706",
				Contrast: "#141414",
			},
			Neutral: ColourSet{
				Base:     "#9ca3af",
				OnBase:   "#1f2937",
				Muted:    "#d1d5db",
				Contrast: "#4b5563",
			},
		},
		Borders: defaultBorders(),
	}
}

// For returns the theme matching name.
func For(name state.Theme) Theme {
	if name == state.ThemeLight {
		return Light()
	}
	return Dark()
}

// StyleApplier applies one modification to a style under a theme.
type StyleApplier interface {
	Apply(base lipgloss.Style, t Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, t Theme) lipgloss.Style {
	return fn(base, t)
}

// Style applies appliers in order.
func (t Theme) Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		base = applier.Apply(base, t)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	SlotBrand   PaletteSlot = func(p Palette) ColourSet { return p.Brand }
	SlotSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	SlotRaised  PaletteSlot = func(p Palette) ColourSet { return p.Raised }
	SlotAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	SlotRating  PaletteSlot = func(p Palette) ColourSet { return p.Rating }
	SlotNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a slot's background and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		cs := slot(t.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a slot's base colour as foreground.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Foreground(slot(t.Palette).Base)
	}
}

// Muted applies a slot's muted colour as foreground.
func Muted(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Foreground(slot(t.Palette).Muted)
	}
}

// RoundedBorder draws a rounded border in the slot's muted colour.
func RoundedBorder(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Border(t.Borders.Rounded).BorderForeground(slot(t.Palette).Muted)
	}
}

// Bold sets bold text.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// PaddingX sets horizontal padding.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(0, n)
	}
}
