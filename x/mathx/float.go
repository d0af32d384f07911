package mathx

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float comparisons in this file treat two values as equal when each lies
// within one representable step (ULP) of the other. The tolerance scales
// with magnitude and has no tunable constant. Infinities compare strictly
// and NaN is unordered: every predicate involving NaN is false.

// Next returns the representable value immediately above v, stepping in the
// precision of T.
func Next[T constraints.Float](v T) T {
	if unsafe.Sizeof(v) == 4 {
		return T(math.Nextafter32(float32(v), float32(math.Inf(1))))
	}
	return T(math.Nextafter(float64(v), math.Inf(1)))
}

// Prev returns the representable value immediately below v.
func Prev[T constraints.Float](v T) T {
	if unsafe.Sizeof(v) == 4 {
		return T(math.Nextafter32(float32(v), float32(math.Inf(-1))))
	}
	return T(math.Nextafter(float64(v), math.Inf(-1)))
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite[T constraints.Float](v T) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func isInf[T constraints.Float](v T) bool { return math.IsInf(float64(v), 0) }

// SafeEquals reports whether b is within one ULP of a.
func SafeEquals[T constraints.Float](a, b T) bool {
	// The neighbour of an infinity is undefined; inf - inf would be NaN.
	if isInf(a) || isInf(b) {
		return a == b
	}
	return Prev(a) <= b && Next(a) >= b
}

// SafeLess reports whether a is below b by more than one ULP.
func SafeLess[T constraints.Float](a, b T) bool {
	if isInf(a) || isInf(b) {
		return a < b
	}
	return Next(a) < b
}

// SafeGreater reports whether a is above b by more than one ULP.
func SafeGreater[T constraints.Float](a, b T) bool {
	if isInf(a) || isInf(b) {
		return a > b
	}
	return Prev(a) > b
}

// SafeLessOrEqual reports whether a is below or within one ULP of b.
func SafeLessOrEqual[T constraints.Float](a, b T) bool {
	return SafeLess(a, b) || SafeEquals(a, b)
}

// SafeGreaterOrEqual reports whether a is above or within one ULP of b.
func SafeGreaterOrEqual[T constraints.Float](a, b T) bool {
	return SafeGreater(a, b) || SafeEquals(a, b)
}

// SafeClamp limits v to [lo, hi] using the ULP-tolerant predicates, so a
// value within one step of a bound snaps onto it. If lo > hi, the bounds are
// swapped. The result is always in [lo, hi] except for a NaN v, which is
// returned unchanged.
func SafeClamp[T constraints.Float](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if SafeLessOrEqual(v, lo) {
		return lo
	}
	if SafeGreaterOrEqual(v, hi) {
		return hi
	}
	return v
}
