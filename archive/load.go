package archive

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/slotlist/blobstore"
	"golang.org/x/sync/errgroup"
)

// Load reads one archived entry.
func Load[T any](ctx context.Context, store blobstore.Store, name string) (*Entry[T], error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("archive: get %s: %w", name, err)
	}
	e, err := decodeEntry[T](data)
	if err != nil {
		return nil, fmt.Errorf("archive: %s: %w", name, err)
	}
	return e, nil
}

// List returns the archived entry names of session in sequence order.
// An empty session lists every session.
func List(ctx context.Context, store blobstore.Store, session string) ([]string, error) {
	prefix := ""
	if session != "" {
		prefix = session + "/"
	}
	names, err := store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	out := names[:0]
	for _, n := range names {
		if strings.HasSuffix(n, Suffix) {
			out = append(out, n)
		}
	}
	return out, nil
}

// LoadAll reads the named entries with at most parallelism concurrent
// reads. The result is in the order of names.
func LoadAll[T any](ctx context.Context, store blobstore.Store, names []string, parallelism int) ([]*Entry[T], error) {
	if parallelism <= 0 {
		parallelism = 4
	}
	entries := make([]*Entry[T], len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, name := range names {
		g.Go(func() error {
			e, err := Load[T](gctx, store, name)
			if err != nil {
				return err
			}
			entries[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
