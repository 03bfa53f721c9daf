package tvmaze

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
	"github.com/alexisbeaulieu97/streamix/internal/provider"
	streamixerrors "github.com/alexisbeaulieu97/streamix/pkg/errors"
)

const (
	DefaultBaseURL   = "https://api.tvmaze.com"
	DefaultImageHost = "https://static.tvmaze.com"
	providerName     = "tvmaze"
)

// Options configures a Client. Zero values pick the public endpoints.
type Options struct {
	BaseURL      string
	ImageBaseURL string
	HTTPClient   *http.Client
}

// Client is the keyless secondary catalog source.
type Client struct {
	baseURL   string
	imageHost string
	http      *http.Client
}

func NewClient(opts Options) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		imageHost: opts.ImageBaseURL,
		http:      opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.imageHost == "" {
		c.imageHost = DefaultImageHost
	}
	if c.http == nil {
		c.http = provider.DefaultHTTPClient()
	}
	return c
}

// Kind implements provider.Source.
func (c *Client) Kind() catalog.Provider {
	return catalog.ProviderSecondary
}

// LoadInitial fetches the first page of /shows and partitions it into rows.
func (c *Client) LoadInitial(ctx context.Context) (catalog.Result, error) {
	var shows []Show
	if err := provider.GetJSON(ctx, c.http, c.baseURL+"/shows", &shows); err != nil {
		return catalog.Result{}, streamixerrors.NewProviderError(providerName, "shows", err)
	}
	return Partition(NormalizeAll(shows, c.imageHost)), nil
}

// Search runs a show search with the literal query.
func (c *Client) Search(ctx context.Context, query string) ([]catalog.Item, error) {
	endpoint := c.baseURL + "/search/shows?" + url.Values{"q": {query}}.Encode()

	body, err := provider.GetBody(ctx, c.http, endpoint)
	if err != nil {
		return nil, streamixerrors.NewProviderError(providerName, "search", err)
	}

	shows, err := unwrapSearch(body)
	if err != nil {
		return nil, streamixerrors.NewProviderError(providerName, "search", err)
	}
	return NormalizeAll(shows, c.imageHost), nil
}

// unwrapSearch pulls the show objects out of [{"score":..,"show":{..}}].
func unwrapSearch(body []byte) ([]Show, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decode response: invalid JSON")
	}

	raw := gjson.GetBytes(body, "#.show").Raw
	if raw == "" {
		return []Show{}, nil
	}

	var shows []Show
	if err := json.Unmarshal([]byte(raw), &shows); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return shows, nil
}

var _ provider.Source = (*Client)(nil)
