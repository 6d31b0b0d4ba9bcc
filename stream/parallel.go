package stream

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Partitionable routes a value to a fixed worker by key.
type Partitionable interface {
	PartitionKey() string
}

// sequenced tags a value with its position in the source.
type sequenced[T any] struct {
	idx uint64
	val T
}

// ParallelMap applies fn to the source values on a pool of workers and
// delivers the results to sink in source order. A panicking fn drops only
// the value it was applied to (logged with the worker's scope id); later
// values keep flowing and keep their order.
func ParallelMap[T, R any](ctx context.Context, workers int, source <-chan T, sink chan<- R, fn func(T) R) {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan sequenced[T], workers)
	results := make(chan sequenced[R], workers)
	lost := make(chan uint64, workers)

	go func() {
		defer close(jobs)
		var idx uint64
		for {
			select {
			case v, ok := <-source:
				if !ok {
					return
				}
				select {
				case jobs <- sequenced[T]{idx: idx, val: v}:
					idx++
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			scope := uuid.NewString()
			for {
				select {
				case job, ok := <-jobs:
					if !ok {
						return
					}
					v, ok := apply(fn, job.val, scope)
					if !ok {
						select {
						case lost <- job.idx:
						case <-ctx.Done():
							return
						}
						continue
					}
					select {
					case results <- sequenced[R]{idx: job.idx, val: v}:
					case <-ctx.Done():
						return
					}
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
		close(lost)
	}()

	resequence(ctx, results, lost, sink)
}

// apply runs fn, converting a panic into a dropped value.
func apply[T, R any](fn func(T) R, v T, scope string) (out R, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger().Error("map fn panicked, value dropped",
				zap.Any("error", r),
				zap.String("worker", scope),
			)
		}
	}()
	return fn(v), true
}

// resequence restores source order. A held result is released as soon as
// every lower index has either been delivered or reported lost to a panic,
// so one poisoned value never dams the rest of the stream.
func resequence[R any](ctx context.Context, results <-chan sequenced[R], lost <-chan uint64, sink chan<- R) {
	defer close(sink)
	pending := make(map[uint64]R)
	skipped := make(map[uint64]struct{})
	var next uint64

	flush := func() bool {
		for {
			if _, skip := skipped[next]; skip {
				delete(skipped, next)
				next++
				continue
			}
			v, ok := pending[next]
			if !ok {
				return true
			}
			select {
			case sink <- v:
				delete(pending, next)
				next++
			case <-ctx.Done():
				return false
			}
		}
	}

	for results != nil || lost != nil {
		select {
		case r, ok := <-results:
			if !ok {
				results = nil
				continue
			}
			pending[r.idx] = r.val
			if !flush() {
				return
			}
		case idx, ok := <-lost:
			if !ok {
				lost = nil
				continue
			}
			skipped[idx] = struct{}{}
			if !flush() {
				return
			}
		}
	}
	if len(pending) > 0 {
		logger().Warn("dropping undelivered results on shutdown",
			zap.Int("dropped", len(pending)),
		)
	}
}

// ParallelEach consumes the source on a pool of workers, calling handle for
// each value. Values implementing Partitionable are routed to the worker
// selected by hashing their key, so values sharing a key are handled
// sequentially in arrival order; everything else is spread round-robin.
func ParallelEach[T any](ctx context.Context, workers int, source <-chan T, handle func(context.Context, T)) {
	if workers < 1 {
		workers = 1
	}

	queues := make([]chan T, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range queues {
		q := make(chan T, workers)
		queues[i] = q
		go func() {
			defer wg.Done()
			for v := range q {
				handle(ctx, v)
			}
		}()
	}

	var rr uint64
feed:
	for {
		select {
		case v, ok := <-source:
			if !ok {
				break feed
			}
			idx := rr % uint64(workers)
			rr++
			if p, ok := any(v).(Partitionable); ok {
				idx = partitionIndex(p.PartitionKey(), workers)
			}
			select {
			case queues[idx] <- v:
			case <-ctx.Done():
				break feed
			}
		case <-ctx.Done():
			break feed
		}
	}
	for _, q := range queues {
		close(q)
	}
	wg.Wait()
}

func partitionIndex(key string, workers int) uint64 {
	if workers == 1 {
		return 0
	}
	return xxhash.Sum64String(key) % uint64(workers)
}

var (
	loggerOnce sync.Once
	pkgLogger  *zap.Logger
)

func logger() *zap.Logger {
	loggerOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		pkgLogger = l
	})
	return pkgLogger
}
