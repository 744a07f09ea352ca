// Package pokemontcg implements the card data source against the
// pokemontcg.io v2 HTTP API.
package pokemontcg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pockettcg/facade/internal/domain"
	"github.com/pockettcg/facade/internal/domain/query"
	"github.com/pockettcg/facade/internal/metrics"
)

// Client is the HTTP client for the upstream card data provider. One
// attempt per call, no retries, no caching. Safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	logger  *zap.Logger

	initOnce sync.Once
	httpc    *http.Client
}

// Config holds the upstream provider settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewClient creates an upstream client. The underlying HTTP transport is
// initialized on first use, guarded against concurrent first requests.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: timeout,
		logger:  logger,
	}
}

// httpClient returns the memoized transport.
func (c *Client) httpClient() *http.Client {
	c.initOnce.Do(func() {
		c.httpc = &http.Client{Timeout: c.timeout}
		c.logger.Debug("upstream client initialized",
			zap.String("base_url", c.baseURL),
			zap.Bool("api_key_set", c.apiKey != ""),
		)
	})
	return c.httpc
}

// queryTerm maps a normalized filter key to its upstream query field.
var queryTerm = map[string]string{
	"name":               "name",
	"set":                "set.name",
	query.FieldType:      "types",
	query.FieldRarity:    "rarity",
	query.FieldSupertype: "supertype",
	query.FieldSubtype:   "subtypes",
}

// buildQuery renders a filter set into the upstream q syntax, in the
// fixed key order so identical filters produce identical requests.
func buildQuery(filters query.Filters, keys []string) string {
	terms := make([]string, 0, len(filters))
	for _, key := range keys {
		v, ok := filters[key]
		if !ok {
			continue
		}
		terms = append(terms, fmt.Sprintf("%s:%q", queryTerm[key], v))
	}
	return strings.Join(terms, " ")
}

// listResponse is the upstream paginated payload shape.
type listResponse[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Count      int `json:"count"`
	TotalCount int `json:"totalCount"`
}

// singleResponse is the upstream single-record payload shape.
type singleResponse[T any] struct {
	Data T `json:"data"`
}

// FindCards queries cards by filter set with upstream-side pagination.
func (c *Client) FindCards(ctx context.Context, filters query.Filters, pg query.Pagination) (domain.CardPage, error) {
	params := url.Values{
		"page":     []string{strconv.Itoa(pg.Page)},
		"pageSize": []string{strconv.Itoa(pg.Limit)},
	}
	if q := buildQuery(filters, query.CardFilterKeys); q != "" {
		params.Set("q", q)
	}

	var resp listResponse[domain.Card]
	if err := c.getJSON(ctx, "find_cards", "/cards", params, &resp); err != nil {
		return domain.CardPage{}, err
	}
	return domain.CardPage{Cards: resp.Data, TotalCount: resp.TotalCount}, nil
}

// GetCard fetches a single card by its opaque id.
func (c *Client) GetCard(ctx context.Context, id string) (domain.Card, error) {
	var resp singleResponse[domain.Card]
	if err := c.getJSON(ctx, "get_card", "/cards/"+url.PathEscape(id), nil, &resp); err != nil {
		return domain.Card{}, err
	}
	return resp.Data, nil
}

// FindSets queries sets by filter set with upstream-side pagination.
func (c *Client) FindSets(ctx context.Context, filters query.Filters, pg query.Pagination) (domain.SetPage, error) {
	params := url.Values{
		"page":     []string{strconv.Itoa(pg.Page)},
		"pageSize": []string{strconv.Itoa(pg.Limit)},
	}
	if name, ok := filters["name"]; ok {
		params.Set("q", fmt.Sprintf("name:%q", name))
	}

	var resp listResponse[domain.Set]
	if err := c.getJSON(ctx, "find_sets", "/sets", params, &resp); err != nil {
		return domain.SetPage{}, err
	}
	return domain.SetPage{Sets: resp.Data, TotalCount: resp.TotalCount}, nil
}

// GetSet fetches a single set by its opaque id.
func (c *Client) GetSet(ctx context.Context, id string) (domain.Set, error) {
	var resp singleResponse[domain.Set]
	if err := c.getJSON(ctx, "get_set", "/sets/"+url.PathEscape(id), nil, &resp); err != nil {
		return domain.Set{}, err
	}
	return resp.Data, nil
}

// ListTypes returns the enumerated energy types.
func (c *Client) ListTypes(ctx context.Context) ([]string, error) {
	return c.listStrings(ctx, "list_types", "/types")
}

// ListSupertypes returns the enumerated supertypes.
func (c *Client) ListSupertypes(ctx context.Context) ([]string, error) {
	return c.listStrings(ctx, "list_supertypes", "/supertypes")
}

// ListSubtypes returns the enumerated subtypes.
func (c *Client) ListSubtypes(ctx context.Context) ([]string, error) {
	return c.listStrings(ctx, "list_subtypes", "/subtypes")
}

// ListRarities returns the enumerated rarities.
func (c *Client) ListRarities(ctx context.Context) ([]string, error) {
	return c.listStrings(ctx, "list_rarities", "/rarities")
}

// Ping verifies upstream availability via the types listing, the
// cheapest enumeration endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListTypes(ctx)
	return err
}

func (c *Client) listStrings(ctx context.Context, op, path string) ([]string, error) {
	var resp singleResponse[[]string]
	if err := c.getJSON(ctx, op, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// getJSON performs one GET against the upstream and decodes the body,
// recording per-operation metrics.
func (c *Client) getJSON(ctx context.Context, op, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	duration := time.Since(start)

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("upstream request: %v: %w", err, domain.ErrUpstream)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(duration.Seconds())

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "not_found").Inc()
		return domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("upstream status %d: %s: %w",
			resp.StatusCode, extractError(resp.Body), domain.ErrUpstream)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("decode upstream response: %v: %w", err, domain.ErrUpstream)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(op, "success").Inc()
	return nil
}

// extractError pulls the message out of an upstream error body
// ({"error": {"message": "...", "code": N}}); falls back to a truncated
// raw body.
func extractError(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 512))
	if err != nil || len(raw) == 0 {
		return "no error detail"
	}
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &parsed) == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return strings.TrimSpace(string(raw))
}
