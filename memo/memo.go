// Package memo caches the results of pure functions by their arguments.
//
// The Func family wraps a function of up to four arguments so that repeated
// calls with equal arguments return the stored result instead of re-invoking
// the function. Arguments must be comparable or implement fmt.Stringer;
// anything else panics at first call. Results are held in a bounded Trie
// (dual-generation rotation) or, via the Store variants, in a shared
// cost-aware cache.
//
// Only wrap pure functions. Memoizing anything that depends on time, I/O, or
// mutable state returns stale results by construction.
package memo

import "fmt"

// Arg is an argument accepted by a memoized function: any comparable value,
// or a value implementing fmt.Stringer. Enforced at runtime, not by the type
// system.
type Arg = any

// Key is the canonical map key derived from an Arg.
type Key = any

// Func1 returns a memoizing wrapper around a pure single-argument function.
// size bounds the memo per generation; pass Unbounded to never evict.
func Func1[I1 Arg, O any](fn func(I1) O, size uint32) func(I1) O {
	memoized := wrap(
		func(args ...Arg) O {
			return fn(args[0].(I1))
		},
		size,
	)
	return func(i1 I1) O {
		return memoized(i1)
	}
}

// Func2 is the two-argument variant of Func1.
func Func2[I1, I2 Arg, O any](fn func(I1, I2) O, size uint32) func(I1, I2) O {
	memoized := wrap(
		func(args ...Arg) O {
			return fn(args[0].(I1), args[1].(I2))
		},
		size,
	)
	return func(i1 I1, i2 I2) O {
		return memoized(i1, i2)
	}
}

// Func3 is the three-argument variant of Func1.
func Func3[I1, I2, I3 Arg, O any](fn func(I1, I2, I3) O, size uint32) func(I1, I2, I3) O {
	memoized := wrap(
		func(args ...Arg) O {
			return fn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		size,
	)
	return func(i1 I1, i2 I2, i3 I3) O {
		return memoized(i1, i2, i3)
	}
}

// Func4 is the four-argument variant of Func1.
func Func4[I1, I2, I3, I4 Arg, O any](fn func(I1, I2, I3, I4) O, size uint32) func(I1, I2, I3, I4) O {
	memoized := wrap(
		func(args ...Arg) O {
			return fn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
		},
		size,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		return memoized(i1, i2, i3, i4)
	}
}

// keyOf maps an argument to its map key. Stringer arguments key by their
// string form so non-comparable types can still participate.
func keyOf(a Arg) Key {
	if s, ok := a.(fmt.Stringer); ok {
		return s.String()
	}
	return a
}

func keysOf(args []Arg) []Key {
	keys := make([]Key, len(args))
	for i, a := range args {
		keys[i] = keyOf(a)
	}
	return keys
}

func wrap[O any](fn func(...Arg) O, size uint32) func(...Arg) O {
	table := NewTrie[O](size)
	return func(args ...Arg) O {
		keys := keysOf(args)
		v, ok := table.Load(keys)
		if !ok {
			v = fn(args...)
			table.Store(keys, v)
		}
		return v
	}
}
