// Package startpage is a client for the Startpage search engine. It builds
// search requests, fetches result pages through a rate limited transport and
// parses them into typed results.
package startpage

import (
	"context"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Options configures a Client. Zero values pick the defaults: a 30s timeout
// and a 1s delay between requests. A negative Delay disables spacing.
// HTTPClient replaces the built-in client, so Proxy and Timeout must be left
// empty when it is set.
type Options struct {
	Proxy      string
	Timeout    time.Duration
	Delay      time.Duration
	HTTPClient *http.Client
	Logger     logrus.FieldLogger
	// BaseURL overrides the Startpage origin
	BaseURL string
}

// Client performs searches. It is safe for concurrent use; requests made
// through one Client are serialized and spaced by the configured delay.
type Client struct {
	baseURL   string
	transport *Transport
	log       logrus.FieldLogger
}

func New(opts Options) (*Client, error) {
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = BaseURL
	} else if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &ConfigError{Field: "base_url", Message: "must be an absolute URL"}
	}

	transport, err := NewTransport(TransportConfig{
		Proxy:      opts.Proxy,
		Timeout:    opts.Timeout,
		Delay:      opts.Delay,
		HTTPClient: opts.HTTPClient,
		Logger:     opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:   base,
		transport: transport,
		log:       opts.Logger,
	}, nil
}

// Search runs a web search.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*Response, error) {
	return c.SearchKind(ctx, KindWeb, req)
}

// Images runs an image search. Results are ImageResult values.
func (c *Client) Images(ctx context.Context, req SearchRequest) (*Response, error) {
	return c.SearchKind(ctx, KindImages, req)
}

// Videos runs a video search.
func (c *Client) Videos(ctx context.Context, req SearchRequest) (*Response, error) {
	return c.SearchKind(ctx, KindVideos, req)
}

// News runs a news search. Safe search is not sent for news.
func (c *Client) News(ctx context.Context, req SearchRequest) (*Response, error) {
	return c.SearchKind(ctx, KindNews, req)
}

// Places runs a places search, optionally around Latitude/Longitude.
func (c *Client) Places(ctx context.Context, req SearchRequest) (*Response, error) {
	return c.SearchKind(ctx, KindPlaces, req)
}

// SearchKind runs a search of the given kind.
func (c *Client) SearchKind(ctx context.Context, kind Kind, req SearchRequest) (*Response, error) {
	target, err := c.SearchURL(req, kind)
	if err != nil {
		return nil, err
	}

	body, err := c.transport.Get(ctx, target, c.baseURL+"/")
	if err != nil {
		return nil, err
	}

	resp, err := ParseResults(body, kind)
	if err != nil {
		c.log.WithField("kind", kind).WithError(err).Warn("[Startpage] could not parse results page")
		return nil, err
	}
	c.log.WithFields(logrus.Fields{"kind": kind, "results": len(resp.Results)}).Debug("[Startpage] search completed")
	return resp, nil
}

// AdvancedSearch runs a web search with extra provider parameters. Readable
// names from the advanced table are translated; advanced values override
// req.Extra.
func (c *Client) AdvancedSearch(ctx context.Context, req SearchRequest, advanced RawParams) (*Response, error) {
	merged := make(RawParams, len(req.Extra)+len(advanced))
	maps.Copy(merged, req.Extra)
	maps.Copy(merged, advanced)
	req.Extra = merged
	return c.SearchKind(ctx, KindWeb, req)
}

// SearchURL returns the URL a search would fetch. It performs no I/O.
func (c *Client) SearchURL(req SearchRequest, kind Kind) (string, error) {
	return buildSearchURL(c.baseURL, req, kind)
}

// Suggestions returns up to 10 completions for partial. An empty partial
// returns an empty list without contacting Startpage.
func (c *Client) Suggestions(ctx context.Context, partial, lang string) ([]string, error) {
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return []string{}, nil
	}
	if lang == "" {
		lang = defaultLanguage
	}

	params := url.Values{}
	params.Set("q", partial)
	params.Set("segment", "startpage.ucp")
	params.Set("format", "opensearch")
	params.Set("lang", normalizeLanguage(lang))

	body, err := c.transport.Get(ctx, c.baseURL+suggestionsPath+"?"+params.Encode(), c.baseURL+"/")
	if err != nil {
		return nil, err
	}
	return ParseSuggestions(body), nil
}

// InstantAnswers fetches the web results page for query and extracts a direct
// answer and a knowledge panel from it.
func (c *Client) InstantAnswers(ctx context.Context, query, lang string, extra RawParams) (*InstantAnswers, error) {
	params, err := buildInstantParams(query, lang, extra)
	if err != nil {
		return nil, err
	}

	body, err := c.transport.Get(ctx, c.baseURL+searchPath+"?"+params.Encode(), c.baseURL+"/")
	if err != nil {
		return nil, err
	}
	return ParseInstantAnswers(body, query)
}

// Delay returns the effective minimum spacing between requests.
func (c *Client) Delay() time.Duration {
	return c.transport.Limiter().MinDelay()
}

// Async returns the non-blocking view of c. Both views share one delay gate.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{client: c}
}
