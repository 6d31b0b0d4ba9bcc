// Package seq provides small utilities over iter.Seq: bounded consumption
// (Take, Nth), lazy adapters (Map, Filter), and flattening of nested slices.
package seq

import (
	"iter"
	"reflect"
)

// FromSlice yields the elements of s in order.
func FromSlice[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains s into a slice. The result is never nil.
func Collect[T any](s iter.Seq[T]) []T {
	out := make([]T, 0)
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Take returns the first n elements of s, fewer if s is shorter. It stops
// consuming s as soon as n elements are seen, so s may be infinite.
func Take[T any](s iter.Seq[T], n int) []T {
	out := make([]T, 0, max(n, 0))
	if n <= 0 {
		return out
	}
	for v := range s {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// Nth returns the element of s at position n (0-based), or fallback when s
// has no such element. Negative n always yields fallback.
func Nth[T any](s iter.Seq[T], n int, fallback T) T {
	if n < 0 {
		return fallback
	}
	i := 0
	for v := range s {
		if i == n {
			return v
		}
		i++
	}
	return fallback
}

// Map yields fn applied to each element of s, lazily.
func Map[A, B any](s iter.Seq[A], fn func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter yields the elements of s for which pred holds, lazily.
func Filter[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Flatten flattens arbitrarily nested slices and arrays into a flat []any,
// depth first. Strings count as atoms, not as sequences of runes. A
// non-slice value flattens to a single-element slice.
func Flatten(v any) []any {
	out := make([]any, 0)
	flattenInto(&out, v)
	return out
}

func flattenInto(out *[]any, v any) {
	if _, ok := v.(string); ok {
		*out = append(*out, v)
		return
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			flattenInto(out, rv.Index(i).Interface())
		}
	default:
		*out = append(*out, v)
	}
}

// FlattenSlices concatenates the inner slices, a typed one-level flatten.
func FlattenSlices[T any](nested [][]T) []T {
	total := 0
	for _, inner := range nested {
		total += len(inner)
	}
	out := make([]T, 0, total)
	for _, inner := range nested {
		out = append(out, inner...)
	}
	return out
}
