package tvmaze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  Show
		want catalog.Item
	}{
		{
			name: "full show",
			raw: Show{
				ID:        1,
				Name:      "Under the Dome",
				Premiered: strPtr("2013-06-24"),
				Summary:   strPtr("<p><b>Under the Dome</b> is the story of a small town.</p>"),
				Rating:    Rating{Average: floatPtr(6.5)},
				Image: &Image{
					Medium:   "https://static.tvmaze.com/uploads/images/medium_portrait/81/202627.jpg",
					Original: "https://static.tvmaze.com/uploads/images/original_untouched/81/202627.jpg",
				},
			},
			want: catalog.Item{
				ID:           "1",
				Title:        "Under the Dome",
				PosterURL:    "https://static.tvmaze.com/uploads/images/medium_portrait/81/202627.jpg",
				BackdropURL:  "https://static.tvmaze.com/uploads/images/original_untouched/81/202627.jpg",
				Rating:       catalog.KnownRating(6.5),
				ReleaseLabel: "2013-06-24",
				Overview:     "Under the Dome is the story of a small town.",
			},
		},
		{
			name: "nulls everywhere",
			raw:  Show{ID: 2, Name: "Bare"},
			want: catalog.Item{
				ID:       "2",
				Title:    "Bare",
				Rating:   catalog.UnknownRating(),
				Overview: catalog.OverviewPlaceholder,
			},
		},
		{
			name: "relative image paths use the image host",
			raw: Show{
				ID:      3,
				Name:    "Relative",
				Summary: strPtr("<p></p>"),
				Image:   &Image{Medium: "/uploads/m.jpg", Original: "uploads/o.jpg"},
			},
			want: catalog.Item{
				ID:          "3",
				Title:       "Relative",
				PosterURL:   "https://static.tvmaze.com/uploads/m.jpg",
				BackdropURL: "https://static.tvmaze.com/uploads/o.jpg",
				Rating:      catalog.UnknownRating(),
				Overview:    catalog.OverviewPlaceholder,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.raw, DefaultImageHost))
		})
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                                   "",
		"   ":                                "",
		"plain":                              "plain",
		"<p>One</p><p>Two</p>":               "OneTwo",
		"<p>One <i>two</i>\n\n  three</p>":   "One two three",
		"<p>Tom &amp; Jerry &lt;3</p>":       "Tom & Jerry <3",
		`<p>Link <a href="/x">here</a>.</p>`: "Link here.",
		"<p>Broken <b>markup":                "Broken markup",
	}
	for in, want := range tests {
		assert.Equal(t, want, PlainText(in), "input %q", in)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	raw := Show{
		ID:      9,
		Name:    "Lost",
		Summary: strPtr("<p>Plane <b>crash</b>.</p>"),
		Rating:  Rating{Average: floatPtr(8.1)},
		Image:   &Image{Medium: "/m.jpg"},
	}
	assert.True(t, reflect.DeepEqual(Normalize(raw, DefaultImageHost), Normalize(raw, DefaultImageHost)))
}
