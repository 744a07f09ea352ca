package sets

import (
	"context"

	"github.com/pockettcg/facade/internal/domain"
	"github.com/pockettcg/facade/internal/domain/query"
)

// Source is the set data source contract.
type Source interface {
	FindSets(ctx context.Context, filters query.Filters, pg query.Pagination) (domain.SetPage, error)
	GetSet(ctx context.Context, id string) (domain.Set, error)
}
