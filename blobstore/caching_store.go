package blobstore

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// CachingStore wraps a remote Store and keeps copies of the blobs it reads
// in a local Store. Blobs are immutable, so a cached copy stays valid until
// it is overwritten or deleted through the CachingStore.
type CachingStore struct {
	inner Store
	cache Store
}

// NewCachingStore creates a new CachingStore.
func NewCachingStore(inner, cache Store) *CachingStore {
	return &CachingStore{inner: inner, cache: cache}
}

// Put writes through to the inner store and drops the cached copy.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.cache.Delete(ctx, name); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Get serves the blob from the cache, filling it from the inner store on
// a miss.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.cache.Get(ctx, name)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	data, err = s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	// A failed cache fill only costs the next read.
	_ = s.cache.Put(ctx, name, data)
	return data, nil
}

// Delete removes the blob from both stores.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	if err := s.cache.Delete(ctx, name); err != nil {
		return err
	}
	return s.inner.Delete(ctx, name)
}

// List lists the inner store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Prefetch loads the named blobs into the cache with at most parallelism
// concurrent reads (unbounded if parallelism <= 0).
func (s *CachingStore) Prefetch(ctx context.Context, names []string, parallelism int) error {
	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for _, name := range names {
		g.Go(func() error {
			_, err := s.Get(ctx, name)
			return err
		})
	}
	return g.Wait()
}
