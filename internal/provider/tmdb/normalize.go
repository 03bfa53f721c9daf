package tmdb

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
)

// Normalize converts a raw TMDB record into a catalog.Item.
// It is a pure function of raw and imageBase.
func Normalize(raw Movie, imageBase string) catalog.Item {
	title := raw.Title
	if title == "" {
		title = raw.Name
	}

	release := raw.ReleaseDate
	if release == "" {
		release = raw.FirstAirDate
	}

	overview := strings.TrimSpace(raw.Overview)
	if overview == "" {
		overview = catalog.OverviewPlaceholder
	}

	return catalog.Item{
		ID:           strconv.FormatInt(raw.ID, 10),
		Title:        title,
		PosterURL:    imageURL(imageBase, raw.PosterPath),
		BackdropURL:  imageURL(imageBase, raw.BackdropPath),
		Rating:       rating(raw.VoteAverage),
		ReleaseLabel: release,
		Overview:     overview,
	}
}

// NormalizeAll normalizes a list, preserving order.
func NormalizeAll(raw []Movie, imageBase string) []catalog.Item {
	items := make([]catalog.Item, 0, len(raw))
	for _, m := range raw {
		items = append(items, Normalize(m, imageBase))
	}
	return items
}

// imageURL returns "" for a missing path; it never builds a URL from nothing.
func imageURL(base string, path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	p := *path
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(base, "/") + p
}

// A zero vote average means "no votes yet" on TMDB, not a score of zero.
func rating(avg *float64) catalog.Rating {
	if avg == nil || *avg == 0 {
		return catalog.UnknownRating()
	}
	return catalog.RoundedRating(*avg)
}
