package ris

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public test-phase endpoint of the federal legal
// information service.
const DefaultBaseURL = "https://testphase.rechtsinformationen.bund.de"

const (
	defaultTimeout = 30 * time.Second
	defaultSize    = 10
	maxSize        = 100

	// The service is public and unauthenticated; stay well below any
	// sensible server-side limit.
	requestsPerSecond = 5
	requestBurst      = 5
)

// Config configures the API client. Zero values fall back to defaults.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client calls the document search API. Safe for concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	log       zerolog.Logger
}

// SearchOptions narrows a single search call.
type SearchOptions struct {
	Size int
	Kind DocumentKind
}

// NewClient builds a client with a fixed per-call timeout and a traced
// transport. There are no retries; callers compensate by searching more
// terms instead.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "bundesrecht-mcp"
	}

	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		log:     log,
	}
}

// Search issues one lookup for the given term. A non-2xx status or a
// transport failure is returned as an error; the caller decides whether
// to continue with its remaining terms.
func (c *Client) Search(ctx context.Context, term string, opts SearchOptions) (*SearchResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	size := opts.Size
	if size <= 0 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}

	endpoint := c.baseURL + searchPath(opts.Kind)
	params := url.Values{
		"searchTerm": []string{term},
		"size":       []string{strconv.Itoa(size)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", term, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("searching %q: unexpected status %d", term, resp.StatusCode)
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding search response for %q: %w", term, err)
	}

	c.log.Debug().
		Str("term", term).
		Str("kind", string(opts.Kind)).
		Int("hits", len(result.Member)).
		Dur("elapsed", time.Since(start)).
		Msg("document search")

	return &result, nil
}

// searchPath maps the document kind to its API path. The service splits
// legislation and case law into separate endpoints with a combined one
// on top.
func searchPath(kind DocumentKind) string {
	switch kind {
	case KindNorm:
		return "/v1/legislation"
	case KindCaseLaw:
		return "/v1/case-law"
	default:
		return "/v1/document"
	}
}
