package browser

import (
	"context"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
)

// CatalogService is the part of the provider gateway the browser needs.
type CatalogService interface {
	LoadInitialCatalog(ctx context.Context) catalog.Result
	Search(ctx context.Context, active catalog.Provider, query string) ([]catalog.Item, bool)
}
