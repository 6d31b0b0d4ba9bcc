package safe_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/sotte/pelper/safe"

	"github.com/stretchr/testify/assert"
)

func TestIgnore_NoMatchersSuppressesNothing(t *testing.T) {
	assert.PanicsWithValue(t, "anything", func() {
		safe.Ignore(func() {
			panic("anything")
		})
	})
}

func TestIgnore_AnySwallowsEverything(t *testing.T) {
	assert.NotPanics(t, func() {
		safe.Ignore(func() {
			panic("anything")
		}, safe.Any)
	})
	assert.NotPanics(t, func() {
		safe.Ignore(func() {
			panic(errors.New("also errors"))
		}, safe.Any)
	})
}

func TestIgnore_MatchedPanicIsSwallowed(t *testing.T) {
	assert.NotPanics(t, func() {
		safe.Ignore(func() {
			panic(fs.ErrNotExist)
		}, safe.ErrIs(fs.ErrNotExist))
	})
}

func TestIgnore_UnmatchedPanicPropagates(t *testing.T) {
	assert.PanicsWithValue(t, "unrelated", func() {
		safe.Ignore(func() {
			panic("unrelated")
		}, safe.ErrIs(fs.ErrNotExist))
	})
}

func TestIgnore_WrappedErrorMatches(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), fs.ErrPermission)
	assert.NotPanics(t, func() {
		safe.Ignore(func() {
			panic(wrapped)
		}, safe.ErrIs(fs.ErrPermission))
	})
}

func TestIgnore_TypeMatcher(t *testing.T) {
	assert.NotPanics(t, func() {
		safe.Ignore(func() {
			panic(42)
		}, safe.TypeIs[int]())
	})
	assert.Panics(t, func() {
		safe.Ignore(func() {
			panic("not an int")
		}, safe.TypeIs[int]())
	})
}

func TestIgnore_NoPanicNoEffect(t *testing.T) {
	ran := false
	safe.Ignore(func() { ran = true })
	assert.True(t, ran)
}

func TestDo(t *testing.T) {
	assert.NoError(t, safe.Do(func() {}))

	err := safe.Do(func() { panic("boom") })
	assert.ErrorIs(t, err, safe.ErrPanic)
	assert.Contains(t, err.Error(), "boom")

	cause := errors.New("root cause")
	err = safe.Do(func() { panic(cause) })
	assert.ErrorIs(t, err, safe.ErrPanic)
	assert.ErrorIs(t, err, cause)
}

func TestIgnoreErrs(t *testing.T) {
	boom := errors.New("boom")

	// matching error is discarded
	assert.NoError(t, safe.IgnoreErrs(func() error {
		return boom
	}, boom))

	// non-matching error passes through
	other := errors.New("other")
	assert.ErrorIs(t, safe.IgnoreErrs(func() error {
		return other
	}, boom), other)

	// no targets discards nothing
	assert.ErrorIs(t, safe.IgnoreErrs(func() error {
		return other
	}), other)

	// nil stays nil
	assert.NoError(t, safe.IgnoreErrs(func() error {
		return nil
	}, boom))
}

func TestRetry(t *testing.T) {
	attempts := 0
	err := safe.Retry(5, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetry_Exhausted(t *testing.T) {
	boom := errors.New("always")
	attempts := 0
	err := safe.Retry(2, func() error {
		attempts++
		return boom
	})
	assert.ErrorIs(t, err, safe.ErrMaxAttempts)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, attempts) // first try plus two retries
}
