// Package stream provides channel pipelines: map, filter, merge, windowed
// ordering, and parallel variants that fan work out over a worker pool.
//
// Every operation blocks until its source is exhausted or ctx is done, and
// closes its sink exactly once on return. Run them in their own goroutines
// to build pipelines:
//
//	go stream.Map(ctx, ints, strs, strconv.Itoa)
//	go stream.Filter(ctx, strs, short, func(s string) bool { return len(s) < 3 })
package stream

import (
	"context"
	"sync"

	"github.com/sotte/pelper/internal/orderedbuffer"
)

// Map applies fn to each source value and sends the result to sink.
func Map[T, R any](ctx context.Context, source <-chan T, sink chan<- R, fn func(T) R) {
	defer close(sink)
	for {
		select {
		case v, ok := <-source:
			if !ok {
				return
			}
			select {
			case sink <- fn(v):
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Filter forwards the source values for which pred holds.
func Filter[T any](ctx context.Context, source <-chan T, sink chan<- T, pred func(T) bool) {
	defer close(sink)
	for {
		select {
		case v, ok := <-source:
			if !ok {
				return
			}
			if !pred(v) {
				continue
			}
			select {
			case sink <- v:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Pipe forwards source to sink unchanged.
func Pipe[T any](ctx context.Context, source <-chan T, sink chan<- T) {
	Map(ctx, source, sink, func(v T) T {
		return v
	})
}

// Merge interleaves all sources into sink. Arrival order across sources is
// unspecified.
func Merge[T any](ctx context.Context, sink chan<- T, sources ...<-chan T) {
	defer close(sink)
	var wg sync.WaitGroup
	wg.Add(len(sources))
	for _, source := range sources {
		go func() {
			defer wg.Done()
			for {
				select {
				case v, ok := <-source:
					if !ok {
						return
					}
					select {
					case sink <- v:
					case <-ctx.Done():
						return
					}
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	wg.Wait()
}

// OrderBy sorts the source within a sliding window of the given size and
// emits in cmp order. Values farther than window positions out of order may
// be emitted out of place; a window at least as large as the source yields
// a full sort.
func OrderBy[T any](ctx context.Context, window int, cmp func(a, b T) int, source <-chan T, sink chan<- T) {
	buf := orderedbuffer.New(window, orderedbuffer.CompareFunc[T](cmp))

	done := make(chan struct{})
	go func() {
		defer close(done)
		// buf leaves its sink open when ctx dies mid-flush, so the drain
		// must watch ctx itself or it would never see a close.
		for {
			select {
			case v, ok := <-buf.Source():
				if !ok {
					return
				}
				select {
				case sink <- v:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	defer func() {
		buf.Close(ctx)
		<-done
		close(sink)
	}()

	for {
		select {
		case v, ok := <-source:
			if !ok {
				return
			}
			if !buf.Insert(ctx, v) {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
