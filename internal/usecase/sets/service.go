// Package sets shapes set listing and lookup results into response
// envelopes.
package sets

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

// Service handles set queries.
type Service struct {
	source Source
}

// New creates a sets service.
func New(source Source) *Service {
	return &Service{source: source}
}

// List queries sets by name with upstream-side pagination. Sets have no
// catalog-backed filters, so not-found responses never carry suggestions.
func (s *Service) List(ctx context.Context, filters query.Filters, pg query.Pagination) envelope.Envelope {
	page, err := s.source.FindSets(ctx, filters, pg)
	if err != nil {
		logger.FromContext(ctx).Warn("find sets failed", zap.Error(err))
		return envelope.Error("failed to query sets from the data source", err.Error())
	}

	if len(page.Sets) == 0 {
		return envelope.NotFound(filters, "No sets found matching the given filters", nil)
	}

	total := page.TotalCount
	if total == 0 {
		total = len(page.Sets)
	}
	return envelope.Success(page.Sets, envelope.NewPagination(total, pg))
}

// GetByID fetches a single set by its opaque id.
func (s *Service) GetByID(ctx context.Context, id string) envelope.Envelope {
	set, err := s.source.GetSet(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return envelope.NotFoundSet(id, fmt.Sprintf("Set with id %q not found", id))
	case err != nil:
		logger.FromContext(ctx).Warn("get set failed", zap.String("set_id", id), zap.Error(err))
		return envelope.Error("failed to fetch set from the data source", err.Error())
	}
	return envelope.SuccessSingle(set)
}
