package memo

import (
	"sync"
	"sync/atomic"
)

// Unbounded disables eviction: the memo grows for the lifetime of the
// wrapped function, like a plain map-backed memoizer.
const Unbounded uint32 = 0

// Trie is a concurrent memo table keyed by a sequence of argument keys.
// Entries live in one of two generations. When the live generation reaches
// the size cap, the stale generation is cleared and becomes the new live
// one, so eviction is wholesale rather than per-entry. Lookups consult the
// live generation first, then the stale one, which keeps recently written
// entries reachable across a rotation.
type Trie[O any] struct {
	gens    [2]*sync.Map
	live    atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewTrie returns a trie holding at most maxSize entries per generation.
// Pass Unbounded for no eviction.
func NewTrie[O any](maxSize uint32) *Trie[O] {
	return &Trie[O]{
		gens:    [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

// Load returns the value stored under keys, if any.
func (t *Trie[O]) Load(keys []Key) (O, bool) {
	live := t.live.Load()
	if v, ok := lookup(t.gens[live], keys); ok {
		return v.(O), true
	}
	if t.maxSize != Unbounded {
		if v, ok := lookup(t.gens[1-live], keys); ok {
			return v.(O), true
		}
	}
	var zero O
	return zero, false
}

// Store records value under keys, rotating generations when the cap is
// hit. Racing stores can overshoot the cap briefly, but the rotation check
// fires on every store past it, so one lost CompareAndSwap only defers the
// rotation to the next store instead of disabling it. Concurrent stores
// during a rotation may land in either generation; both stay readable
// until the next rotation.
func (t *Trie[O]) Store(keys []Key, value O) {
	m, last := descend(t.gens[t.live.Load()], keys)
	m.Store(last, value)
	if t.maxSize == Unbounded {
		return
	}
	if n := t.size.Add(1); n >= t.maxSize && t.size.CompareAndSwap(n, 0) {
		stale := 1 - t.live.Load()
		t.gens[stale].Clear()
		t.live.Store(stale)
	}
}

// lookup walks the nested maps without creating intermediate nodes.
func lookup(m *sync.Map, keys []Key) (any, bool) {
	if len(keys) == 0 {
		panic("memo: empty key sequence")
	}
	for _, k := range keys[:len(keys)-1] {
		v, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m = v.(*sync.Map)
	}
	return m.Load(keys[len(keys)-1])
}

// descend walks the nested maps, creating intermediate nodes as needed,
// and returns the leaf map plus the final key.
func descend(m *sync.Map, keys []Key) (*sync.Map, Key) {
	if len(keys) == 0 {
		panic("memo: empty key sequence")
	}
	for _, k := range keys[:len(keys)-1] {
		v, _ := m.LoadOrStore(k, &sync.Map{})
		m = v.(*sync.Map)
	}
	return m, keys[len(keys)-1]
}
