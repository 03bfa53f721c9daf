package catalog

import (
	"math"
	"strconv"
)

const (
	// OverviewPlaceholder is shown when a provider has no description for an item.
	OverviewPlaceholder = "No description available."
	// UnknownMarker renders a missing rating or release date.
	UnknownMarker = "—"
)

// Item is the provider-independent record every view renders.
// Items are values: a re-fetch produces a new Item, existing ones are never mutated.
type Item struct {
	ID           string
	Title        string
	PosterURL    string // empty when the provider has no poster
	BackdropURL  string // empty when the provider has no backdrop
	Rating       Rating
	ReleaseLabel string // empty when unknown
	Overview     string
}

// HasPoster reports whether the item carries a resolvable poster URL.
func (i Item) HasPoster() bool {
	return i.PosterURL != ""
}

// Release returns the release label or the unknown marker.
func (i Item) Release() string {
	if i.ReleaseLabel == "" {
		return UnknownMarker
	}
	return i.ReleaseLabel
}

// Rating is a 0–10 score that may be unknown.
type Rating struct {
	Value float64
	Known bool
}

// KnownRating returns a rating holding v.
func KnownRating(v float64) Rating {
	return Rating{Value: v, Known: true}
}

// UnknownRating returns the unknown rating.
func UnknownRating() Rating {
	return Rating{}
}

// RoundedRating rounds v to one decimal place.
func RoundedRating(v float64) Rating {
	return KnownRating(math.Round(v*10) / 10)
}

// String renders the rating with one decimal, or the unknown marker.
func (r Rating) String() string {
	if !r.Known {
		return UnknownMarker
	}
	return strconv.FormatFloat(r.Value, 'f', 1, 64)
}
