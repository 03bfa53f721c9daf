package tmdb

import (
	"context"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/alexisbeaulieu97/streamix/internal/catalog"
	"github.com/alexisbeaulieu97/streamix/internal/provider"
	streamixerrors "github.com/alexisbeaulieu97/streamix/pkg/errors"
)

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p/original"
	DefaultLanguage     = "en-US"
	// ActionGenreID is TMDB's genre id for action movies.
	ActionGenreID = 28
)

// Options configures a Client.
type Options struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Language     string
	GenreID      int
	HTTPClient   *http.Client
	// Random returns an int in [0, n). Defaults to math/rand/v2.IntN.
	Random func(n int) int
}

// Client is the primary catalog source backed by the TMDB v3 API.
type Client struct {
	apiKey    string
	baseURL   string
	imageBase string
	language  string
	genreID   int
	http      *http.Client
	random    func(n int) int
}

// NewClient validates opts and returns a Client. An empty API key yields
// ErrMissingAPIKey; callers then run without a primary source.
func NewClient(opts Options) (*Client, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, streamixerrors.ErrMissingAPIKey
	}

	c := &Client{
		apiKey:    key,
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		imageBase: opts.ImageBaseURL,
		language:  opts.Language,
		genreID:   opts.GenreID,
		http:      opts.HTTPClient,
		random:    opts.Random,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.imageBase == "" {
		c.imageBase = DefaultImageBaseURL
	}
	if c.language == "" {
		c.language = DefaultLanguage
	}
	if c.genreID == 0 {
		c.genreID = ActionGenreID
	}
	if c.http == nil {
		c.http = provider.DefaultHTTPClient()
	}
	if c.random == nil {
		c.random = rand.Intn
	}
	return c, nil
}

// Kind implements provider.Source.
func (c *Client) Kind() catalog.Provider {
	return catalog.ProviderPrimary
}

// LoadInitial fetches the popular, weekly trending and genre lists
// concurrently. Any failure fails the whole load.
func (c *Client) LoadInitial(ctx context.Context) (catalog.Result, error) {
	var popular, trending, genre []Movie

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		popular, err = c.list(ctx, "popular", "/movie/popular", url.Values{
			"language": {c.language},
			"page":     {"1"},
		})
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		trending, err = c.list(ctx, "trending", "/trending/movie/week", nil)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		genre, err = c.list(ctx, "discover", "/discover/movie", url.Values{
			"with_genres": {strconv.Itoa(c.genreID)},
			"page":        {"1"},
		})
		return err
	})
	if err := p.Wait(); err != nil {
		return catalog.Result{}, err
	}

	res := catalog.Result{
		Provider:      catalog.ProviderPrimary,
		Popular:       NormalizeAll(popular, c.imageBase),
		Trending:      NormalizeAll(trending, c.imageBase),
		GenreFiltered: NormalizeAll(genre, c.imageBase),
	}
	res.Featured = pickFeatured(res.Popular, c.random)
	return res, nil
}

// Search runs a free-text movie search with the literal query.
func (c *Client) Search(ctx context.Context, query string) ([]catalog.Item, error) {
	results, err := c.list(ctx, "search", "/search/movie", url.Values{"query": {query}})
	if err != nil {
		return nil, err
	}
	return NormalizeAll(results, c.imageBase), nil
}

func (c *Client) list(ctx context.Context, op, path string, params url.Values) ([]Movie, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("api_key", c.apiKey)

	var resp listResponse
	if err := provider.GetJSON(ctx, c.http, c.baseURL+path+"?"+q.Encode(), &resp); err != nil {
		return nil, streamixerrors.NewProviderError(catalog.ProviderPrimary.String(), op, err)
	}
	if resp.Results == nil {
		return []Movie{}, nil
	}
	return resp.Results, nil
}

// pickFeatured returns a uniformly random item, or nil for an empty list.
func pickFeatured(items []catalog.Item, random func(n int) int) *catalog.Item {
	if len(items) == 0 {
		return nil
	}
	item := items[random(len(items))]
	return &item
}

var _ provider.Source = (*Client)(nil)
