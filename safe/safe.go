// Package safe contains small recovery helpers: scoped panic suppression,
// panic-to-error conversion, error discarding, and bounded retries.
package safe

import (
	"errors"
	"fmt"
)

// ErrPanic wraps a recovered panic value when Do converts it to an error.
var ErrPanic = errors.New("recovered panic")

// ErrMaxAttempts is returned by Retry when every attempt failed.
var ErrMaxAttempts = errors.New("max attempts reached")

// Ignore runs fn and swallows a panic when any matcher accepts the
// recovered value. A panic no matcher accepts propagates unchanged; in
// particular, with no matchers nothing is suppressed. Blanket suppression
// must be spelled out with Any.
func Ignore(fn func(), matchers ...func(recovered any) bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		for _, match := range matchers {
			if match(r) {
				return
			}
		}
		panic(r)
	}()
	fn()
}

// Any matches every panic value: Ignore(fn, safe.Any) is the explicit
// opt-in to swallowing everything.
func Any(any) bool {
	return true
}

// ErrIs returns a matcher accepting panics whose value is an error matching
// target via errors.Is.
func ErrIs(target error) func(recovered any) bool {
	return func(r any) bool {
		err, ok := r.(error)
		return ok && errors.Is(err, target)
	}
}

// TypeIs returns a matcher accepting panics whose value has dynamic type T.
func TypeIs[T any]() func(recovered any) bool {
	return func(r any) bool {
		_, ok := r.(T)
		return ok
	}
}

// Do runs fn and converts a panic into an error wrapping ErrPanic.
func Do(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = fmt.Errorf("%w: %w", ErrPanic, e)
			return
		}
		err = fmt.Errorf("%w: %v", ErrPanic, r)
	}()
	fn()
	return nil
}

// IgnoreErrs runs fn and discards its error when it matches one of the
// targets via errors.Is. With no targets the error passes through
// untouched.
func IgnoreErrs(fn func() error, targets ...error) error {
	err := fn()
	if err == nil {
		return nil
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return nil
		}
	}
	return err
}

// Retry re-runs fn until it returns nil, giving up after maxAttempts
// additional tries and wrapping the last error with ErrMaxAttempts.
func Retry(maxAttempts int, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt >= maxAttempts {
			return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, attempt, err)
		}
	}
}
