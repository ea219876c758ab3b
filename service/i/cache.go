package i

import "context"

// ImageCache stores encoded maze images by key.
type ImageCache interface {
	// Get returns the cached bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key until the cache's TTL expires.
	Set(ctx context.Context, key string, data []byte) error

	// Lock takes a distributed lock on key so only one caller renders it.
	// The returned function releases the lock.
	Lock(ctx context.Context, key string) (func(), error)
}
