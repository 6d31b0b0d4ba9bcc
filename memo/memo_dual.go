package memo

// pair boxes two results so dual-output functions can share the single
// result machinery.
type pair[A, B any] struct {
	fst A
	snd B
}

// Func1x2 memoizes a single-argument function with two results, covering
// the common (T, error) shape. Both results are cached, errors included.
func Func1x2[I1 Arg, O1, O2 any](fn func(I1) (O1, O2), size uint32) func(I1) (O1, O2) {
	memoized := Func1(
		func(i1 I1) pair[O1, O2] {
			a, b := fn(i1)
			return pair[O1, O2]{fst: a, snd: b}
		},
		size,
	)
	return func(i1 I1) (O1, O2) {
		p := memoized(i1)
		return p.fst, p.snd
	}
}

// Func2x2 is the two-argument variant of Func1x2.
func Func2x2[I1, I2 Arg, O1, O2 any](fn func(I1, I2) (O1, O2), size uint32) func(I1, I2) (O1, O2) {
	memoized := Func2(
		func(i1 I1, i2 I2) pair[O1, O2] {
			a, b := fn(i1, i2)
			return pair[O1, O2]{fst: a, snd: b}
		},
		size,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		p := memoized(i1, i2)
		return p.fst, p.snd
	}
}

// Func3x2 is the three-argument variant of Func1x2.
func Func3x2[I1, I2, I3 Arg, O1, O2 any](fn func(I1, I2, I3) (O1, O2), size uint32) func(I1, I2, I3) (O1, O2) {
	memoized := Func3(
		func(i1 I1, i2 I2, i3 I3) pair[O1, O2] {
			a, b := fn(i1, i2, i3)
			return pair[O1, O2]{fst: a, snd: b}
		},
		size,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		p := memoized(i1, i2, i3)
		return p.fst, p.snd
	}
}

// Func4x2 is the four-argument variant of Func1x2.
func Func4x2[I1, I2, I3, I4 Arg, O1, O2 any](fn func(I1, I2, I3, I4) (O1, O2), size uint32) func(I1, I2, I3, I4) (O1, O2) {
	memoized := Func4(
		func(i1 I1, i2 I2, i3 I3, i4 I4) pair[O1, O2] {
			a, b := fn(i1, i2, i3, i4)
			return pair[O1, O2]{fst: a, snd: b}
		},
		size,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		p := memoized(i1, i2, i3, i4)
		return p.fst, p.snd
	}
}
