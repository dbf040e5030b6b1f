// Package remote holds the cloud-side collaborators: a key-value table store
// mirroring the local tables and an object store for vehicle images. Clients
// are constructed once at startup and injected; nothing in this package keeps
// global state.
package remote

import (
	"context"

	"fleetsync/internal/wire"
)

// TableStore is the remote key-value table contract.
//
// Scan returns the entire table in one call. Implementations may page
// internally, but callers hold the full result in memory: acceptable for a
// small fleet, a known scalability limit beyond that.
type TableStore interface {
	PutItem(ctx context.Context, table string, item wire.Item) error
	DeleteItem(ctx context.Context, table string, key wire.Item) error
	Scan(ctx context.Context, table string) ([]wire.Item, error)
}
