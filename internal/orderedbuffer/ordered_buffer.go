// Package orderedbuffer provides a bounded, insertion-sorted buffer that
// releases its smallest element to a sink channel once the bound is
// exceeded. stream.OrderBy uses it as its sorting window.
package orderedbuffer

import (
	"context"
	"sort"
	"sync/atomic"
)

// CompareFunc orders elements: negative when a sorts before b.
type CompareFunc[T any] func(a, b T) int

// OrderedBoundedBuffer keeps at most window elements sorted. Inserting
// beyond the window evicts the current minimum to the sink. Insert and
// Close must be called from a single goroutine; Source may be drained
// concurrently.
type OrderedBoundedBuffer[T any] struct {
	data    []T
	window  int
	compare CompareFunc[T]

	sink   chan T
	closed atomic.Bool
}

func New[T any](window int, cmp CompareFunc[T]) *OrderedBoundedBuffer[T] {
	if window < 1 {
		window = 1
	}
	return &OrderedBoundedBuffer[T]{
		data:    make([]T, 0, window),
		window:  window,
		compare: cmp,
		// headroom so eviction rarely blocks on a slow consumer
		sink: make(chan T, window*2),
	}
}

// Insert places val in sort order, evicting the minimum when the window
// overflows. Returns false when the buffer is closed or ctx is done.
func (b *OrderedBoundedBuffer[T]) Insert(ctx context.Context, val T) bool {
	if b.closed.Load() {
		return false
	}

	idx := sort.Search(len(b.data), func(i int) bool {
		return b.compare(val, b.data[i]) < 0
	})
	b.data = append(b.data, val)
	copy(b.data[idx+1:], b.data[idx:])
	b.data[idx] = val

	if len(b.data) > b.window {
		evicted := b.data[0]
		b.data = b.data[1:]
		select {
		case b.sink <- evicted:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// Source delivers evicted and, after Close, remaining elements in order.
func (b *OrderedBoundedBuffer[T]) Source() <-chan T {
	return b.sink
}

// Close flushes the buffered elements to the sink and closes it. Repeated
// calls are no-ops. A done ctx abandons the flush; the sink is then left
// open so consumers should also watch the same ctx.
func (b *OrderedBoundedBuffer[T]) Close(ctx context.Context) {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, v := range b.data {
			select {
			case b.sink <- v:
			case <-ctx.Done():
				return
			}
		}
		close(b.sink)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
