package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random numbers in [0,limit).
// Locks only once per call.
func (r *RNG) Ints(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(limit)
	}
	return out
}

// OpKind names a positional list operation.
type OpKind int

const (
	OpPushBack OpKind = iota
	OpPushFront
	OpPopBack
	OpPopFront
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case OpPushBack:
		return "push_back"
	case OpPushFront:
		return "push_front"
	case OpPopBack:
		return "pop_back"
	case OpPopFront:
		return "pop_front"
	default:
		return "unknown"
	}
}

// Op is one step of a random workload. Value is only used by pushes.
type Op struct {
	Kind  OpKind
	Value int
}

// Ops returns n random operations. pushRate is the probability that an
// operation is a push; pushes and pops pick either end with equal odds.
func (r *RNG) Ops(n int, pushRate float64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]Op, n)
	for i := range ops {
		front := r.rand.Intn(2) == 0
		if r.rand.Float64() < pushRate {
			ops[i] = Op{Kind: OpPushBack, Value: r.rand.Intn(1 << 20)}
			if front {
				ops[i].Kind = OpPushFront
			}
			continue
		}
		ops[i] = Op{Kind: OpPopBack}
		if front {
			ops[i].Kind = OpPopFront
		}
	}
	return ops
}

// Deque is a slice-backed double-ended queue used as the reference model
// for list behavior. The zero value is an empty deque.
type Deque[T any] struct {
	items []T
}

// PushBack appends v.
func (d *Deque[T]) PushBack(v T) {
	d.items = append(d.items, v)
}

// PushFront prepends v.
func (d *Deque[T]) PushFront(v T) {
	d.items = append([]T{v}, d.items...)
}

// PopBack removes the last element. ok is false if the deque is empty.
func (d *Deque[T]) PopBack() (v T, ok bool) {
	if len(d.items) == 0 {
		return v, false
	}
	v = d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]
	return v, true
}

// PopFront removes the first element. ok is false if the deque is empty.
func (d *Deque[T]) PopFront() (v T, ok bool) {
	if len(d.items) == 0 {
		return v, false
	}
	v = d.items[0]
	d.items = d.items[1:]
	return v, true
}

// InsertAt inserts v so that it ends up at position i.
func (d *Deque[T]) InsertAt(i int, v T) {
	d.items = append(d.items, v)
	copy(d.items[i+1:], d.items[i:])
	d.items[i] = v
}

// RemoveAt removes and returns the element at position i.
func (d *Deque[T]) RemoveAt(i int) T {
	v := d.items[i]
	d.items = append(d.items[:i], d.items[i+1:]...)
	return v
}

// Get returns the element at position i.
func (d *Deque[T]) Get(i int) (v T, ok bool) {
	if i < 0 || i >= len(d.items) {
		return v, false
	}
	return d.items[i], true
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	return len(d.items)
}

// Values returns a copy of the elements in order.
func (d *Deque[T]) Values() []T {
	out := make([]T, len(d.items))
	copy(out, d.items)
	return out
}
