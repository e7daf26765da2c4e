package kv

import "context"

// Store is an opaque key-value store for small shared state: the favorite
// course set and per-roadmap step-status maps. Callers inject an
// implementation rather than reaching for a process-wide singleton.
//
// Get returns (nil, nil) for a missing key; callers treat absent or
// malformed values as empty state.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
