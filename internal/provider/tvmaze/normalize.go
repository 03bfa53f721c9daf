package tvmaze

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
)

// Normalize converts a raw TVMaze show into a catalog.Item.
// It is a pure function of raw and imageHost.
func Normalize(raw Show, imageHost string) catalog.Item {
	item := catalog.Item{
		ID:       strconv.FormatInt(raw.ID, 10),
		Title:    raw.Name,
		Rating:   catalog.UnknownRating(),
		Overview: catalog.OverviewPlaceholder,
	}

	if raw.Image != nil {
		item.PosterURL = imageURL(imageHost, raw.Image.Medium)
		item.BackdropURL = imageURL(imageHost, raw.Image.Original)
	}
	if raw.Rating.Average != nil {
		item.Rating = catalog.KnownRating(*raw.Rating.Average)
	}
	if raw.Premiered != nil {
		item.ReleaseLabel = strings.TrimSpace(*raw.Premiered)
	}
	if raw.Summary != nil {
		if text := PlainText(*raw.Summary); text != "" {
			item.Overview = text
		}
	}
	return item
}

// NormalizeAll normalizes a list, preserving order.
func NormalizeAll(raw []Show, imageHost string) []catalog.Item {
	items := make([]catalog.Item, 0, len(raw))
	for _, s := range raw {
		items = append(items, Normalize(s, imageHost))
	}
	return items
}

// PlainText strips every tag from an HTML fragment, decodes entities and
// collapses runs of whitespace.
func PlainText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	text := fragment
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err == nil {
		text = doc.Text()
	}
	return strings.Join(strings.Fields(text), " ")
}

func imageURL(host, ref string) string {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "https://"), strings.HasPrefix(ref, "http://"):
		return ref
	case strings.HasPrefix(ref, "//"):
		return "https:" + ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return strings.TrimRight(host, "/") + ref
}
