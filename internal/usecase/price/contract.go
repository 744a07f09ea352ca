package price

import (
	"context"

	"github.com/pockettcg/facade/internal/domain"
	"github.com/pockettcg/facade/internal/domain/query"
)

// CardFinder resolves cards by filter set; the price lookup needs only an
// exact-name query for the first match.
type CardFinder interface {
	FindCards(ctx context.Context, filters query.Filters, pg query.Pagination) (domain.CardPage, error)
}
