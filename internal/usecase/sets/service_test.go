package sets

import (
	"context"
	"errors"
	"testing"

	"github.com/pockettcg/facade/internal/domain"
	"github.com/pockettcg/facade/internal/domain/envelope"
	"github.com/pockettcg/facade/internal/domain/query"
)

type mockSource struct {
	page    domain.SetPage
	set     domain.Set
	findErr error
	getErr  error
}

func (m *mockSource) FindSets(_ context.Context, _ query.Filters, _ query.Pagination) (domain.SetPage, error) {
	return m.page, m.findErr
}

func (m *mockSource) GetSet(_ context.Context, _ string) (domain.Set, error) {
	return m.set, m.getErr
}

func TestList_Success(t *testing.T) {
	src := &mockSource{page: domain.SetPage{
		Sets:       []domain.Set{{ID: "base1", Name: "Base", Series: "Base"}},
		TotalCount: 1,
	}}
	svc := New(src)

	env := svc.List(context.Background(), query.Filters{"name": "Base"}, query.Pagination{Page: 1, Limit: 20})

	if env.Status != envelope.StatusSuccess {
		t.Fatalf("expected success, got %q", env.Status)
	}
	if env.Pagination.TotalItems != 1 || env.Pagination.TotalPages != 1 {
		t.Errorf("unexpected pagination: %+v", env.Pagination)
	}
}

func TestList_Empty_NotFoundWithoutSuggestions(t *testing.T) {
	src := &mockSource{}
	svc := New(src)

	filters := query.Filters{"name": "Bases"}
	env := svc.List(context.Background(), filters, query.Pagination{Page: 1, Limit: 20})

	if env.Status != envelope.StatusNotFound {
		t.Fatalf("expected not_found, got %q", env.Status)
	}
	if env.Query["name"] != "Bases" {
		t.Errorf("expected filter echo, got %v", env.Query)
	}
	if env.Suggestions != nil {
		t.Errorf("set filters are free text, got suggestions %v", env.Suggestions)
	}
}

func TestList_UpstreamFailure(t *testing.T) {
	src := &mockSource{findErr: errors.New("boom")}
	svc := New(src)

	env := svc.List(context.Background(), query.Filters{}, query.Pagination{Page: 1, Limit: 20})
	if env.Status != envelope.StatusError {
		t.Fatalf("expected error envelope, got %q", env.Status)
	}
}

func TestGetByID_Found(t *testing.T) {
	src := &mockSource{set: domain.Set{ID: "base1", Name: "Base"}}
	svc := New(src)

	env := svc.GetByID(context.Background(), "base1")
	if env.Status != envelope.StatusSuccess {
		t.Fatalf("expected success, got %q", env.Status)
	}
	set, ok := env.Data.(domain.Set)
	if !ok || set.ID != "base1" {
		t.Errorf("unexpected data: %+v", env.Data)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	src := &mockSource{getErr: domain.ErrNotFound}
	svc := New(src)

	env := svc.GetByID(context.Background(), "missing")
	if env.Status != envelope.StatusNotFound {
		t.Fatalf("expected not_found, got %q", env.Status)
	}
	if env.SetID != "missing" {
		t.Errorf("expected set_id echo, got %q", env.SetID)
	}
}
