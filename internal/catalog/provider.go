package catalog

// Provider identifies the upstream that produced the displayed data.
type Provider int

const (
	// ProviderPrimary is TMDB, used whenever an API key is configured and reachable.
	ProviderPrimary Provider = iota
	// ProviderSecondary is TVMaze, the keyless fallback.
	ProviderSecondary
)

// String returns the provider's short identifier.
func (p Provider) String() string {
	switch p {
	case ProviderPrimary:
		return "tmdb"
	case ProviderSecondary:
		return "tvmaze"
	default:
		return "unknown"
	}
}

// DisplayName returns the provider name shown to users.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderPrimary:
		return "TMDB"
	case ProviderSecondary:
		return "TVMaze"
	default:
		return "Unknown"
	}
}

// Result is a complete catalog load from a single provider.
type Result struct {
	Provider      Provider
	Featured      *Item
	Popular       []Item
	Trending      []Item
	GenreFiltered []Item
}

// EmptyResult returns a result for p with empty collections and no featured item.
func EmptyResult(p Provider) Result {
	return Result{
		Provider:      p,
		Popular:       []Item{},
		Trending:      []Item{},
		GenreFiltered: []Item{},
	}
}
