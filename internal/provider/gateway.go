package provider

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
	"github.com/alexisbeaulieu97/streamix/internal/logger"
)

// Gateway hides the two upstreams behind one catalog contract.
//
// The primary source is optional: without a credential the gateway is built
// with primary == nil and every load goes straight to the secondary.
type Gateway struct {
	primary   Source
	secondary Source
	log       *logger.Logger
}

// NewGateway wires the sources. secondary must not be nil.
func NewGateway(primary, secondary Source, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{
		primary:   primary,
		secondary: secondary,
		log:       log.With("component", "gateway"),
	}
}

// HasPrimary reports whether a primary source is configured.
func (g *Gateway) HasPrimary() bool {
	return g.primary != nil
}

// LoadInitialCatalog loads the startup catalog. It never fails: when the
// primary is absent or errors it falls back to the secondary, and when that
// fails too it returns empty secondary collections.
func (g *Gateway) LoadInitialCatalog(ctx context.Context) catalog.Result {
	if g.primary != nil {
		res, err := g.primary.LoadInitial(ctx)
		if err == nil {
			g.log.WithFields(map[string]any{
				"provider": res.Provider.String(),
				"popular":  len(res.Popular),
				"trending": len(res.Trending),
				"genre":    len(res.GenreFiltered),
			}).Info("catalog loaded")
			return res
		}
		g.log.Warn(err, "primary provider failed, falling back")
	} else {
		g.log.Info("no primary credential configured, using fallback provider")
	}

	return g.loadFallback(ctx)
}

func (g *Gateway) loadFallback(ctx context.Context) catalog.Result {
	if g.secondary == nil {
		return catalog.EmptyResult(catalog.ProviderSecondary)
	}

	res, err := g.secondary.LoadInitial(ctx)
	if err != nil {
		g.log.Error(err, "fallback provider failed")
		return catalog.EmptyResult(g.secondary.Kind())
	}

	g.log.WithFields(map[string]any{
		"provider": res.Provider.String(),
		"popular":  len(res.Popular),
		"trending": len(res.Trending),
		"genre":    len(res.GenreFiltered),
	}).Info("catalog loaded")
	return res
}

// Search queries the active provider. The boolean is false when the call was
// a no-op (empty query or unknown provider) and the caller should keep its
// state. A failed search yields an empty, applied result.
func (g *Gateway) Search(ctx context.Context, active catalog.Provider, query string) ([]catalog.Item, bool) {
	if query == "" {
		return nil, false
	}

	src := g.source(active)
	if src == nil {
		g.log.With("provider", active.String()).Warn(nil, "search against unconfigured provider ignored")
		return nil, false
	}

	items, err := src.Search(ctx, query)
	if err != nil {
		g.log.WithFields(map[string]any{
			"provider": active.String(),
			"query":    strings.TrimSpace(query),
		}).Error(err, "search failed")
		return []catalog.Item{}, true
	}
	if items == nil {
		items = []catalog.Item{}
	}
	return items, true
}

func (g *Gateway) source(kind catalog.Provider) Source {
	for _, src := range []Source{g.primary, g.secondary} {
		if src != nil && src.Kind() == kind {
			return src
		}
	}
	return nil
}
