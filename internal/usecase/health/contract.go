package health

import "context"

// UpstreamPinger checks card data source availability.
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}
