// Package timing measures how long things take and logs the result.
//
// The deferred form covers a scope:
//
//	defer timing.Start(logger, "rebuild index")()
//
// and the Func family wraps a function so every call is measured.
package timing

import (
	"sync"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// DefaultMessage is logged when no message is given, matching the habit of
// measuring first and naming later.
const DefaultMessage = "duration"

// Timer measures one interval.
type Timer struct {
	start time.Time
}

// NewTimer starts measuring immediately.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Span returns the measured interval as a TimeSpan, from start to now.
func (t *Timer) Span() timespan.TimeSpan {
	return timespan.BetweenTimes(t.start, time.Now())
}

// Start begins a measurement and returns the stop func; calling it logs the
// elapsed duration at info level. A nil logger falls back to a package
// production logger, an empty msg to DefaultMessage.
func Start(logger *zap.Logger, msg string) func() {
	logger = orFallback(logger)
	if msg == "" {
		msg = DefaultMessage
	}
	t := NewTimer()
	return func() {
		span := t.Span()
		logger.Info(msg,
			zap.Duration("elapsed", span.Duration()),
			zap.Time("start", span.Start()),
			zap.Time("end", span.End()),
		)
	}
}

// Func0 wraps a niladic function so each call logs its duration.
func Func0(logger *zap.Logger, msg string, fn func()) func() {
	return func() {
		defer Start(logger, msg)()
		fn()
	}
}

// Func1 wraps a single-argument function so each call logs its duration.
func Func1[I, O any](logger *zap.Logger, msg string, fn func(I) O) func(I) O {
	return func(i I) O {
		defer Start(logger, msg)()
		return fn(i)
	}
}

// Func2 is the two-argument variant of Func1.
func Func2[I1, I2, O any](logger *zap.Logger, msg string, fn func(I1, I2) O) func(I1, I2) O {
	return func(i1 I1, i2 I2) O {
		defer Start(logger, msg)()
		return fn(i1, i2)
	}
}

// Measure runs fn and returns its duration alongside the result, for
// callers that want the number instead of a log line.
func Measure[O any](fn func() O) (O, time.Duration) {
	t := NewTimer()
	out := fn()
	return out, t.Elapsed()
}

var (
	fallbackOnce sync.Once
	fallback     *zap.Logger
)

func orFallback(logger *zap.Logger) *zap.Logger {
	if logger != nil {
		return logger
	}
	fallbackOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		fallback = l
	})
	return fallback
}
