// Package catalogs serves the four enumerated value listings and builds
// the suggestion library at startup.
package catalogs

import (
	"context"

	"go.uber.org/zap"

	"github.com/pockettcg/facade/internal/domain/catalog"
	"github.com/pockettcg/facade/internal/domain/envelope"
	"github.com/pockettcg/facade/internal/logger"
)

// Kind names one of the four catalogs.
type Kind string

const (
	Types      Kind = "types"
	Supertypes Kind = "supertypes"
	Subtypes   Kind = "subtypes"
	Rarities   Kind = "rarities"
)

// Service handles catalog listings.
type Service struct {
	source Source
}

// New creates a catalogs service.
func New(source Source) *Service {
	return &Service{source: source}
}

// List fetches one catalog from the upstream and shapes the outcome.
func (s *Service) List(ctx context.Context, kind Kind) envelope.Envelope {
	var (
		values []string
		err    error
	)
	switch kind {
	case Types:
		values, err = s.source.ListTypes(ctx)
	case Supertypes:
		values, err = s.source.ListSupertypes(ctx)
	case Subtypes:
		values, err = s.source.ListSubtypes(ctx)
	case Rarities:
		values, err = s.source.ListRarities(ctx)
	default:
		return envelope.Error("unknown catalog "+string(kind), "")
	}
	if err != nil {
		logger.FromContext(ctx).Warn("list catalog failed", zap.String("catalog", string(kind)), zap.Error(err))
		return envelope.Error("failed to fetch "+string(kind)+" from the data source", err.Error())
	}
	return envelope.SuccessSingle(values)
}

// LoadLibrary fetches all four catalogs once and builds the suggestion
// library. Catalogs the upstream cannot serve fall back to the compiled-in
// defaults; the library is immutable afterwards.
func LoadLibrary(ctx context.Context, source Source, log *zap.Logger) *catalog.Library {
	load := func(name string, fetch func(context.Context) ([]string, error), def catalog.Catalog) catalog.Catalog {
		values, err := fetch(ctx)
		if err != nil || len(values) == 0 {
			log.Warn("catalog refresh failed, using compiled-in defaults",
				zap.String("catalog", name), zap.Error(err))
			return def
		}
		return catalog.New(values)
	}

	return catalog.NewLibrary(
		load("types", source.ListTypes, catalog.DefaultTypes()),
		load("supertypes", source.ListSupertypes, catalog.DefaultSupertypes()),
		load("subtypes", source.ListSubtypes, catalog.DefaultSubtypes()),
		load("rarities", source.ListRarities, catalog.DefaultRarities()),
	)
}
