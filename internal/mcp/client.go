package mcp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// baseURL is the facade's root URL, set by main.
var baseURL = "http://localhost:8080"

// httpClient is shared across all tool invocations.
var httpClient = &http.Client{Timeout: 60 * time.Second}

// SetBaseURL sets the facade's root URL.
func SetBaseURL(u string) {
	baseURL = strings.TrimRight(u, "/")
}

// fetch performs a GET against the facade and returns the raw response
// body. The facade reports lookup outcomes inside its JSON envelope, so
// any HTTP status that carries a body is passed through as-is; only
// transport failures surface as errors.
func fetch(ctx context.Context, path string, params url.Values) (string, error) {
	target := baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("GET %s: empty response (HTTP %d)", path, resp.StatusCode)
	}
	return string(body), nil
}
