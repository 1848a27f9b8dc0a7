package archive

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/slotlist"
	"github.com/hupe1980/slotlist/blobstore"
	"github.com/hupe1980/slotlist/codec"
	"golang.org/x/sync/errgroup"
)

// Suffix is the file extension of archived snapshots.
const Suffix = ".slar"

type options struct {
	codec       codec.Codec
	compression Compression
	session     string
	parallelism int
	logger      *slotlist.Logger
	now         func() time.Time
}

// Option configures an Archiver.
type Option func(*options)

// WithCodec sets the snapshot codec (default codec.Default).
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithCompression sets the payload compression (default CompressionZstd).
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithSession overrides the generated session id.
func WithSession(id string) Option {
	return func(o *options) {
		if id != "" {
			o.session = id
		}
	}
}

// WithParallelism bounds concurrent uploads during Flush.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithLogger sets the logger that receives upload failures.
func WithLogger(l *slotlist.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock overrides the time source for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Archiver persists list diagnostics to a blob store.
//
// Every entry is stored as <session>/<seq>.slar. Report only buffers the
// entry; Flush uploads the buffered entries concurrently. Save uploads a
// single entry right away.
type Archiver[T any] struct {
	store blobstore.Store
	opts  options

	mu      sync.Mutex
	seq     int64
	pending []*Entry[T]
}

// New creates an Archiver writing to store. Each archiver gets a fresh
// session id unless WithSession is given.
func New[T any](store blobstore.Store, optFns ...Option) *Archiver[T] {
	opts := options{
		codec:       codec.Default,
		compression: CompressionZstd,
		session:     uuid.NewString(),
		parallelism: 4,
		logger:      slotlist.NoopLogger(),
		now:         time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Archiver[T]{store: store, opts: opts}
}

// Session returns the session id that prefixes every blob name.
func (a *Archiver[T]) Session() string { return a.opts.session }

func (a *Archiver[T]) next(reason string, snap *slotlist.Snapshot[T]) *Entry[T] {
	a.seq++
	return &Entry[T]{
		Session:  a.opts.session,
		Seq:      a.seq,
		Reason:   reason,
		Time:     a.opts.now().UTC(),
		Snapshot: snap,
	}
}

// Name returns the blob name of entry seq in session.
func Name(session string, seq int64) string {
	return path.Join(session, fmt.Sprintf("%06d%s", seq, Suffix))
}

// Report implements slotlist.Reporter by buffering the entry.
func (a *Archiver[T]) Report(reason string, snap *slotlist.Snapshot[T]) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = append(a.pending, a.next(reason, snap))
}

// Pending returns the number of buffered entries.
func (a *Archiver[T]) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}

// Save encodes and uploads one entry immediately and returns its blob name.
func (a *Archiver[T]) Save(ctx context.Context, reason string, snap *slotlist.Snapshot[T]) (string, error) {
	a.mu.Lock()
	e := a.next(reason, snap)
	a.mu.Unlock()

	if err := a.put(ctx, e); err != nil {
		return "", err
	}
	return Name(e.Session, e.Seq), nil
}

func (a *Archiver[T]) put(ctx context.Context, e *Entry[T]) error {
	data, err := encodeEntry(a.opts.codec, a.opts.compression, e)
	if err != nil {
		return err
	}
	name := Name(e.Session, e.Seq)
	if err := a.store.Put(ctx, name, data); err != nil {
		a.opts.logger.Error("archive upload failed", "name", name, "error", err)
		return fmt.Errorf("archive: put %s: %w", name, err)
	}
	return nil
}

// Flush uploads all buffered entries. Entries that fail to upload stay
// buffered for the next Flush.
func (a *Archiver[T]) Flush(ctx context.Context) error {
	a.mu.Lock()
	batch := a.pending
	a.pending = nil
	a.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	done := make([]bool, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.parallelism)
	for i, e := range batch {
		g.Go(func() error {
			if err := a.put(gctx, e); err != nil {
				return err
			}
			done[i] = true
			return nil
		})
	}
	err := g.Wait()

	if err != nil {
		var retry []*Entry[T]
		for i, e := range batch {
			if !done[i] {
				retry = append(retry, e)
			}
		}
		a.mu.Lock()
		a.pending = append(retry, a.pending...)
		a.mu.Unlock()
	}
	return err
}
