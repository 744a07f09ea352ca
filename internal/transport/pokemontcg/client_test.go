package pokemontcg

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pockettcg/facade/internal/domain"
	"github.com/pockettcg/facade/internal/domain/query"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&Config{BaseURL: srv.URL, APIKey: "test-key"})
}

func TestFindCards_BuildsQueryAndParsesPage(t *testing.T) {
	var gotQuery, gotPage, gotPageSize, gotAPIKey string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("q")
		gotPage = r.URL.Query().Get("page")
		gotPageSize = r.URL.Query().Get("pageSize")
		gotAPIKey = r.Header.Get("X-Api-Key")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [{"id": "base1-4", "name": "Charizard", "set": {"id": "base1", "name": "Base"}}],
			"page": 2, "pageSize": 10, "count": 1, "totalCount": 21
		}`))
	})

	filters := query.Filters{"name": "Charizard", "type": "Fire"}
	page, err := client.FindCards(context.Background(), filters, query.Pagination{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != `name:"Charizard" types:"Fire"` {
		t.Errorf("unexpected q: %q", gotQuery)
	}
	if gotPage != "2" || gotPageSize != "10" {
		t.Errorf("unexpected pagination params: page=%q pageSize=%q", gotPage, gotPageSize)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("expected X-Api-Key header, got %q", gotAPIKey)
	}
	if len(page.Cards) != 1 || page.Cards[0].Name != "Charizard" {
		t.Fatalf("unexpected cards: %+v", page.Cards)
	}
	if page.TotalCount != 21 {
		t.Errorf("expected totalCount 21, got %d", page.TotalCount)
	}
}

func TestFindCards_NoFiltersOmitsQ(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("q") {
			t.Errorf("expected no q parameter, got %q", r.URL.Query().Get("q"))
		}
		_, _ = w.Write([]byte(`{"data": [], "totalCount": 0}`))
	})

	_, err := client.FindCards(context.Background(), query.Filters{}, query.Pagination{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetCard_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetCard(context.Background(), "missing-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetCard_Single(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/base1-4" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data": {
			"id": "base1-4", "name": "Charizard", "rarity": "Rare Holo",
			"set": {"id": "base1", "name": "Base", "series": "Base"},
			"tcgplayer": {"prices": {"holofoil": {"low": 100, "mid": 110.25, "market": 120.5}}}
		}}`))
	})

	card, err := client.GetCard(context.Background(), "base1-4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.ID != "base1-4" || card.Set.Name != "Base" {
		t.Errorf("unexpected card: %+v", card)
	}
	if !card.HasPrices() {
		t.Fatal("expected pricing data")
	}
	holo := card.TCGPlayer.Prices["holofoil"]
	if holo.Market == nil || *holo.Market != 120.5 {
		t.Errorf("unexpected market price: %+v", holo)
	}
}

func TestGetJSON_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limit exceeded", "code": 429}}`))
	})

	_, err := client.FindCards(context.Background(), query.Filters{}, query.Pagination{Page: 1, Limit: 20})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "rate limit exceeded") {
		t.Errorf("expected error detail in message, got %q", got)
	}
}

func TestGetJSON_ConnectionRefused(t *testing.T) {
	client := NewClient(&Config{BaseURL: "http://127.0.0.1:1"})

	_, err := client.GetSet(context.Background(), "base1")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected ErrUpstream on connection failure, got %v", err)
	}
}

func TestListTypes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/types" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data": ["Fire", "Water", "Lightning"]}`))
	})

	types, err := client.ListTypes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(types) != 3 || types[2] != "Lightning" {
		t.Errorf("unexpected types: %v", types)
	}
}

func TestFindSets_NameFilter(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`{"data": [{"id": "base1", "name": "Base", "series": "Base"}], "totalCount": 1}`))
	})

	page, err := client.FindSets(context.Background(), query.Filters{"name": "Base"}, query.Pagination{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != `name:"Base"` {
		t.Errorf("unexpected q: %q", gotQuery)
	}
	if len(page.Sets) != 1 || page.Sets[0].ID != "base1" {
		t.Errorf("unexpected sets: %+v", page.Sets)
	}
}
