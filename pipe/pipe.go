// Package pipe threads a value through a sequence of transformation steps,
// in the spirit of unix pipes.
//
// Same-type pipelines use Value or the fluent Chain; pipelines whose type
// changes use the Map family, since Go generics cannot express a variadic
// heterogeneous pipeline.
package pipe

import "go.uber.org/zap"

// Value threads v through fns in order and returns the final value.
func Value[T any](v T, fns ...func(T) T) T {
	for _, fn := range fns {
		v = fn(v)
	}
	return v
}

// Chain carries a value, or the first error, through a fluent pipeline.
// After a failed ThenTry all later steps are skipped.
type Chain[T any] struct {
	val T
	err error
}

// From starts a chain at v.
func From[T any](v T) Chain[T] {
	return Chain[T]{val: v}
}

// Then applies fn to the carried value.
func (c Chain[T]) Then(fn func(T) T) Chain[T] {
	if c.err != nil {
		return c
	}
	return Chain[T]{val: fn(c.val)}
}

// ThenTry applies an error-aware step. On failure the carried value stays
// at its pre-step state and the chain short-circuits.
func (c Chain[T]) ThenTry(fn func(T) (T, error)) Chain[T] {
	if c.err != nil {
		return c
	}
	v, err := fn(c.val)
	if err != nil {
		return Chain[T]{val: c.val, err: err}
	}
	return Chain[T]{val: v}
}

// Tap runs a side effect with the carried value and passes the value
// through unchanged. Useful for steps that only observe, like printing.
func (c Chain[T]) Tap(fn func(T)) Chain[T] {
	if c.err == nil {
		fn(c.val)
	}
	return c
}

// Inspect logs the carried value at info level and passes it through.
// A nil logger falls back to the global zap logger.
func (c Chain[T]) Inspect(logger *zap.Logger, msg string) Chain[T] {
	if c.err != nil {
		return c
	}
	if logger == nil {
		logger = zap.L()
	}
	logger.Info(msg, zap.Any("value", c.val))
	return c
}

// Value returns the carried value, ignoring any error.
func (c Chain[T]) Value() T {
	return c.val
}

// Eval returns the carried value and the first error, if any.
func (c Chain[T]) Eval() (T, error) {
	return c.val, c.err
}

// Map applies fn to v. It exists so cross-type steps read in pipeline
// order rather than inside-out.
func Map[A, B any](v A, fn func(A) B) B {
	return fn(v)
}

// Map3 threads v through two cross-type steps.
func Map3[A, B, C any](v A, f func(A) B, g func(B) C) C {
	return g(f(v))
}

// Map4 threads v through three cross-type steps.
func Map4[A, B, C, D any](v A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(v)))
}

// Map5 threads v through four cross-type steps.
func Map5[A, B, C, D, E any](v A, f func(A) B, g func(B) C, h func(C) D, i func(D) E) E {
	return i(h(g(f(v))))
}
