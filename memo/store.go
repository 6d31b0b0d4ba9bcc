package memo

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// Store is a single-key cache backend for memoized functions that prefer a
// shared, cost-aware cache over per-function generation rotation. Entries
// may be rejected or evicted at the store's discretion; the wrapper then
// simply recomputes.
type Store[V any] interface {
	Get(key uint64) (V, bool)
	Set(key uint64, value V)
}

// NewRistrettoStore returns a Store backed by a ristretto cache admitting
// roughly maxItems unit-cost entries under TinyLFU.
func NewRistrettoStore[V any](maxItems int64) (Store[V], error) {
	if maxItems <= 0 {
		return nil, fmt.Errorf("memo: maxItems must be positive, got %d", maxItems)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, V]{
		NumCounters: maxItems * 10,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return ristrettoStore[V]{Cache: cache}, nil
}

type ristrettoStore[V any] struct {
	*ristretto.Cache[uint64, V]
}

func (s ristrettoStore[V]) Get(key uint64) (V, bool) {
	return s.Cache.Get(key)
}

func (s ristrettoStore[V]) Set(key uint64, value V) {
	s.Cache.Set(key, value, 1)
	// Set is async; wait so a following Get sees the entry.
	s.Cache.Wait()
}

// StoreFunc1 memoizes a pure single-argument function into store, keyed by
// an xxhash digest of the argument. Several functions may share one store;
// pass a distinct tag per function to keep their key spaces apart.
func StoreFunc1[I1 Arg, O any](fn func(I1) O, store Store[O], tag string) func(I1) O {
	memoized := wrapStore(
		func(args ...Arg) O {
			return fn(args[0].(I1))
		},
		store, tag,
	)
	return func(i1 I1) O {
		return memoized(i1)
	}
}

// StoreFunc2 is the two-argument variant of StoreFunc1.
func StoreFunc2[I1, I2 Arg, O any](fn func(I1, I2) O, store Store[O], tag string) func(I1, I2) O {
	memoized := wrapStore(
		func(args ...Arg) O {
			return fn(args[0].(I1), args[1].(I2))
		},
		store, tag,
	)
	return func(i1 I1, i2 I2) O {
		return memoized(i1, i2)
	}
}

func wrapStore[O any](fn func(...Arg) O, store Store[O], tag string) func(...Arg) O {
	return func(args ...Arg) O {
		key := digest(tag, keysOf(args))
		v, ok := store.Get(key)
		if !ok {
			v = fn(args...)
			store.Set(key, v)
		}
		return v
	}
}

// digest collapses a key sequence into a 64-bit store key. Keys are
// rendered with their dynamic type so 1 (int) and "1" (string) differ.
func digest(tag string, keys []Key) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(tag)
	for _, k := range keys {
		_, _ = fmt.Fprintf(h, "|%T=%v", k, k)
	}
	return h.Sum64()
}
