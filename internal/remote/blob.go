package remote

import "context"

// ObjectStore uploads local files to the remote blob store and returns a
// stable retrieval URL on success. The upload is cancellable through ctx.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key, path string) (string, error)
}
