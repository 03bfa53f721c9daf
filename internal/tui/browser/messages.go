package browser

import "github.com/alexisbeaulieu97/streamix/internal/catalog"

// catalogLoadedMsg carries the result of the startup load.
type catalogLoadedMsg struct {
	Result catalog.Result
}

// searchResultMsg carries one search response. Applied is false when the
// gateway treated the search as a no-op. Provider is the source the search
// was sent to.
type searchResultMsg struct {
	Provider catalog.Provider
	Query    string
	Items    []catalog.Item
	Applied  bool
}
