package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func toolRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestHandleCards_ForwardsFiltersAndPagination(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()
	SetBaseURL(srv.URL)

	req := toolRequest(map[string]any{
		"name":  "Charizard",
		"type":  "Fire",
		"page":  2.0,
		"limit": 10.0,
	})
	result, err := handleCards(context.Background(), req)
	if err != nil {
		t.Fatalf("handleCards: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}
	if gotPath != "/cards" {
		t.Errorf("expected /cards, got %s", gotPath)
	}
	for _, want := range []string{"name=Charizard", "type=Fire", "page=2", "limit=10"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
	if resultText(t, result) != `{"status":"success"}` {
		t.Errorf("envelope not passed through verbatim: %s", resultText(t, result))
	}
}

func TestHandleCards_OmitsBlankFilters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()
	SetBaseURL(srv.URL)

	result, err := handleCards(context.Background(), toolRequest(map[string]any{"name": "Pikachu"}))
	if err != nil {
		t.Fatalf("handleCards: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result")
	}
	if gotQuery != "name=Pikachu" {
		t.Errorf("expected only the name filter, got %q", gotQuery)
	}
}

func TestHandleCardByID_EscapesPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()
	SetBaseURL(srv.URL)

	_, err := handleCardByID(context.Background(), toolRequest(map[string]any{"card_id": "base1-4"}))
	if err != nil {
		t.Fatalf("handleCardByID: %v", err)
	}
	if gotPath != "/cards/base1-4" {
		t.Errorf("expected /cards/base1-4, got %s", gotPath)
	}
}

func TestHandleCardByID_MissingID(t *testing.T) {
	result, err := handleCardByID(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("handleCardByID: %v", err)
	}
	if !result.IsError {
		t.Error("expected an error result for missing card_id")
	}
}

func TestHandleCardPrice(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"status":"no_price_data"}`))
	}))
	defer srv.Close()
	SetBaseURL(srv.URL)

	result, err := handleCardPrice(context.Background(), toolRequest(map[string]any{"card_name": "Ancient Mew"}))
	if err != nil {
		t.Fatalf("handleCardPrice: %v", err)
	}
	if gotQuery != "card_name=Ancient+Mew" {
		t.Errorf("unexpected query: %q", gotQuery)
	}
	if resultText(t, result) != `{"status":"no_price_data"}` {
		t.Errorf("envelope not passed through: %s", resultText(t, result))
	}
}

func TestHandleCardPrice_MissingName(t *testing.T) {
	result, err := handleCardPrice(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("handleCardPrice: %v", err)
	}
	if !result.IsError {
		t.Error("expected an error result for missing card_name")
	}
}

func TestHandleCatalog(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":"success","data":["Fire"]}`))
	}))
	defer srv.Close()
	SetBaseURL(srv.URL)

	result, err := handleCatalog("/types")(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("catalog handler: %v", err)
	}
	if gotPath != "/types" {
		t.Errorf("expected /types, got %s", gotPath)
	}
	if result.IsError {
		t.Errorf("unexpected error result: %s", resultText(t, result))
	}
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	SetBaseURL(srv.URL)

	result, err := handleSets(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("handleSets: %v", err)
	}
	if !result.IsError {
		t.Error("expected an error result when the facade is unreachable")
	}
}
