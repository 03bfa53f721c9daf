package tvmaze

import "github.com/alexisbeaulieu97/streamix/internal/catalog"

const rowSize = 20

// Partition splits the flat /shows listing into the three catalog rows.
//
//	popular:        items[0:20]
//	trending:       items[20:40]
//	genre-filtered: items at even indices, at most 20 (0, 2, ..., 38)
//	featured:       items[0], or nil for an empty list
//
// Short lists produce short rows.
func Partition(items []catalog.Item) catalog.Result {
	res := catalog.EmptyResult(catalog.ProviderSecondary)
	res.Popular = window(items, 0, rowSize)
	res.Trending = window(items, rowSize, 2*rowSize)

	for i := 0; i < len(items) && len(res.GenreFiltered) < rowSize; i += 2 {
		res.GenreFiltered = append(res.GenreFiltered, items[i])
	}

	if len(items) > 0 {
		featured := items[0]
		res.Featured = &featured
	}
	return res
}

func window(items []catalog.Item, from, to int) []catalog.Item {
	if from >= len(items) {
		return []catalog.Item{}
	}
	to = min(to, len(items))
	out := make([]catalog.Item, to-from)
	copy(out, items[from:to])
	return out
}
