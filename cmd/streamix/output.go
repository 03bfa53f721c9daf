package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
	"github.com/alexisbeaulieu97/streamix/internal/state"
	"github.com/alexisbeaulieu97/streamix/internal/ui/card"
)

const titleColumnWidth = 40

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// renderRowText prints one row as a table. Items without a poster are
// skipped, matching the browser.
func renderRowText(w io.Writer, row state.Row, useUnicode bool) error {
	fmt.Fprintln(w, row.Title)
	if len(row.Items) == 0 {
		fmt.Fprintf(w, "  %s\n\n", state.EmptyRowMessage)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	n := 0
	for _, item := range row.Items {
		if !item.HasPoster() {
			continue
		}
		n++
		fmt.Fprintf(tw, "  %d.\t%s\t%s\t%s\n",
			n,
			card.Truncate(item.Title, titleColumnWidth),
			card.RatingLabel(item.Rating, !useUnicode),
			card.Year(item),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func renderFeaturedText(w io.Writer, item *catalog.Item, useUnicode bool) {
	if item == nil {
		return
	}
	fmt.Fprintf(w, "Featured: %s\n", item.Title)
	fmt.Fprintf(w, "  Released: %s   %s\n", item.Release(), card.RatingLabel(item.Rating, !useUnicode))
	fmt.Fprintf(w, "  %s\n\n", strings.TrimSpace(item.Overview))
}

type itemJSON struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	PosterURL   string   `json:"poster_url,omitempty"`
	BackdropURL string   `json:"backdrop_url,omitempty"`
	Rating      *float64 `json:"rating"`
	Released    string   `json:"released,omitempty"`
	Overview    string   `json:"overview"`
}

type rowJSON struct {
	Title string     `json:"title"`
	Items []itemJSON `json:"items"`
}

type catalogJSONPayload struct {
	Version  string    `json:"version"`
	Provider string    `json:"provider"`
	Query    string    `json:"query,omitempty"`
	Featured *itemJSON `json:"featured"`
	Rows     []rowJSON `json:"rows"`
}

func toItemJSON(item catalog.Item) itemJSON {
	out := itemJSON{
		ID:          item.ID,
		Title:       item.Title,
		PosterURL:   item.PosterURL,
		BackdropURL: item.BackdropURL,
		Released:    item.ReleaseLabel,
		Overview:    item.Overview,
	}
	if item.Rating.Known {
		v := item.Rating.Value
		out.Rating = &v
	}
	return out
}

func renderJSON(w io.Writer, s state.ViewState, rows []state.Row) error {
	payload := catalogJSONPayload{
		Version:  "1.0",
		Provider: s.Provider.String(),
		Query:    s.Query,
		Rows:     make([]rowJSON, len(rows)),
	}
	if s.Featured != nil {
		featured := toItemJSON(*s.Featured)
		payload.Featured = &featured
	}
	for i, row := range rows {
		items := make([]itemJSON, len(row.Items))
		for j, item := range row.Items {
			items[j] = toItemJSON(item)
		}
		payload.Rows[i] = rowJSON{Title: row.Title, Items: items}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
