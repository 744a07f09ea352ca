package cards

import (
	"context"

	"github.com/pockettcg/facade/internal/domain"
	"github.com/pockettcg/facade/internal/domain/query"
)

// Source is the card data source contract.
type Source interface {
	FindCards(ctx context.Context, filters query.Filters, pg query.Pagination) (domain.CardPage, error)
	GetCard(ctx context.Context, id string) (domain.Card, error)
}

// Suggester offers spelling corrections for catalog-backed filter values.
type Suggester interface {
	Suggest(filters query.Filters) map[string]string
}
