package catalogs

import "context"

// Source lists the upstream's enumerated catalog values.
type Source interface {
	ListTypes(ctx context.Context) ([]string, error)
	ListSupertypes(ctx context.Context) ([]string, error)
	ListSubtypes(ctx context.Context) ([]string, error)
	ListRarities(ctx context.Context) ([]string, error)
}
