package provider

import (
	"context"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
)

// Source is one upstream catalog service.
//
// Implementations normalize their own wire shapes into catalog.Item and never
// mix items from another provider into a result. They do no caching and no
// retrying; the Gateway decides what a failure means.
type Source interface {
	Kind() catalog.Provider
	LoadInitial(ctx context.Context) (catalog.Result, error)
	Search(ctx context.Context, query string) ([]catalog.Item, error)
}
