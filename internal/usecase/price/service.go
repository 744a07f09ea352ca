// Package price resolves market prices for a card looked up by exact name.
package price

import (
	"context"

	"go.uber.org/zap"

	"github.com/pockettcg/facade/internal/domain"
	"github.com/pockettcg/facade/internal/domain/envelope"
	"github.com/pockettcg/facade/internal/domain/query"
	"github.com/pockettcg/facade/internal/logger"
)

// Service handles price lookups.
type Service struct {
	finder CardFinder
}

// New creates a price service.
func New(finder CardFinder) *Service {
	return &Service{finder: finder}
}

// Lookup resolves a card by exact name and extracts its per-variant
// prices. A card without pricing data is a successful lookup reported as
// no_price_data, not an error.
func (s *Service) Lookup(ctx context.Context, cardName string) envelope.Envelope {
	filters := query.Filters{"name": cardName}
	page, err := s.finder.FindCards(ctx, filters, query.Pagination{Page: 1, Limit: 1})
	if err != nil {
		logger.FromContext(ctx).Warn("price lookup failed", zap.String("card_name", cardName), zap.Error(err))
		return envelope.Error("failed to query card prices from the data source", err.Error())
	}

	if len(page.Cards) == 0 {
		return envelope.NotFound(filters, "No card found with that name", nil)
	}

	card := page.Cards[0]
	if !card.HasPrices() {
		return envelope.NoPriceData(card.Name, card.ID)
	}

	return envelope.SuccessPrices(card.Name, card.ID, ResolvePrices(card.TCGPlayer.Prices))
}

// ResolvePrices picks one figure per print variant: market preferred,
// then mid, else the raw variant sub-object unmodified.
func ResolvePrices(variants map[string]domain.PriceVariant) map[string]any {
	prices := make(map[string]any, len(variants))
	for name, v := range variants {
		switch {
		case v.Market != nil:
			prices[name] = *v.Market
		case v.Mid != nil:
			prices[name] = *v.Mid
		default:
			prices[name] = v
		}
	}
	return prices
}
