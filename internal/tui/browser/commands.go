package browser

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
)

// loadCatalogCmd runs the startup load off the UI goroutine.
func loadCatalogCmd(ctx context.Context, svc CatalogService) tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{Result: svc.LoadInitialCatalog(ctx)}
	}
}

// searchCmd queries the active provider. Responses are applied in arrival
// order, so the last one to return wins.
func searchCmd(ctx context.Context, svc CatalogService, active catalog.Provider, query string) tea.Cmd {
	return func() tea.Msg {
		items, applied := svc.Search(ctx, active, query)
		return searchResultMsg{Provider: active, Query: query, Items: items, Applied: applied}
	}
}
