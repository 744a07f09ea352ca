// Package cards shapes card listing and lookup results into response
// envelopes.
package cards

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pockettcg/facade/internal/domain"
	"github.com/pockettcg/facade/internal/domain/envelope"
	"github.com/pockettcg/facade/internal/domain/query"
	"github.com/pockettcg/facade/internal/logger"
)

// Service handles card queries.
type Service struct {
	source  Source
	suggest Suggester
}

// New creates a cards service.
func New(source Source, suggest Suggester) *Service {
	return &Service{source: source, suggest: suggest}
}

// List queries cards by filter set and shapes the outcome. Upstream
// failures are normalized into the error variant, never propagated raw.
func (s *Service) List(ctx context.Context, filters query.Filters, pg query.Pagination) envelope.Envelope {
	page, err := s.source.FindCards(ctx, filters, pg)
	if err != nil {
		logger.FromContext(ctx).Warn("find cards failed", zap.Error(err))
		return envelope.Error("failed to query cards from the data source", err.Error())
	}

	if len(page.Cards) == 0 {
		return envelope.NotFound(filters, "No cards found matching the given filters", s.suggest.Suggest(filters))
	}

	// The upstream total may be absent; fall back to the page count, a
	// known limitation of the pagination metadata.
	total := page.TotalCount
	if total == 0 {
		total = len(page.Cards)
	}
	return envelope.Success(page.Cards, envelope.NewPagination(total, pg))
}

// GetByID fetches a single card by its opaque id.
func (s *Service) GetByID(ctx context.Context, id string) envelope.Envelope {
	card, err := s.source.GetCard(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return envelope.NotFoundCard(id, fmt.Sprintf("Card with id %q not found", id))
	case err != nil:
		logger.FromContext(ctx).Warn("get card failed", zap.String("card_id", id), zap.Error(err))
		return envelope.Error("failed to fetch card from the data source", err.Error())
	}
	return envelope.SuccessSingle(card)
}
