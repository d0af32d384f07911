package mathx

import (
	"math"

	"cube-go/errcode"

	"golang.org/x/exp/constraints"
)

// Number is any builtin integer or floating type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Interpolable is a value that can be blended linearly with another value of
// the same type. Blend must return the receiver at t == 0 and other at
// t == 1; t is always in [0, 1] when called from Map.
type Interpolable[T any] interface {
	Blend(other T, t float64) T
}

// Fraction returns the normalised position of v in the source range
// [s0, s1] (which may be descending), in float64 regardless of S.
// v is clamped into the range first, so the result is always in [0, 1]
// and is exactly 0 at s0 and exactly 1 at s1.
//
// A zero-width or non-finite range fails with errcode.DomainError; a NaN v
// fails with errcode.NotANumber.
func Fraction[S Number](v, s0, s1 S) (float64, error) {
	x, a, b := float64(v), float64(s0), float64(s1)
	if !IsFinite(a) || !IsFinite(b) {
		return 0, &errcode.E{C: errcode.DomainError, Op: "mathx.Fraction", Msg: "non-finite source range"}
	}
	if SafeEquals(a, b) {
		return 0, &errcode.E{C: errcode.DomainError, Op: "mathx.Fraction", Msg: "zero-width source range"}
	}
	if math.IsNaN(x) {
		return 0, &errcode.E{C: errcode.NotANumber, Op: "mathx.Fraction"}
	}
	x = SafeClamp(x, a, b)
	switch x {
	case a:
		return 0, nil
	case b:
		return 1, nil
	}
	d := b - a
	if math.IsInf(d, 0) {
		// a and b lie near opposite float64 limits; halve both terms.
		return SafeClamp((x/2-a/2)/(b/2-a/2), 0, 1), nil
	}
	return SafeClamp((x-a)/d, 0, 1), nil
}

// isFloat reports whether T is a floating type.
func isFloat[T Number]() bool {
	h := 0.5
	return T(h) != 0
}

// Lerp returns a + (b-a)*t computed in float64. t is confined to [0, 1];
// the endpoints are returned exactly and the result never leaves [a, b].
// Integer results are rounded to the nearest value, halves away from zero
// (127.5 -> 128, -2.5 -> -3).
func Lerp[T Number](a, b T, t float64) T {
	if !(t > 0) {
		return a
	}
	if t >= 1 {
		return b
	}
	fa, fb := float64(a), float64(b)
	var y float64
	if d := fb - fa; math.IsInf(d, 0) {
		y = fa*(1-t) + fb*t
	} else {
		y = fa + d*t
	}
	if !isFloat[T]() {
		y = math.Round(y)
	}
	// float64 loses integer precision above 2^53 and the weighted form can
	// round past an endpoint, so confine before converting.
	lo, hi := Min(fa, fb), Max(fa, fb)
	if y <= lo {
		return Min(a, b)
	}
	if y >= hi {
		return Max(a, b)
	}
	return T(y)
}

// Map maps v from the source range [s0, s1] onto the target range [t0, t1].
// v outside the source range collapses onto the nearer target endpoint;
// Map never extrapolates. See Fraction for the failure cases.
func Map[S, T Number](v, s0, s1 S, t0, t1 T) (T, error) {
	t, err := Fraction(v, s0, s1)
	if err != nil {
		return t0, err
	}
	return Lerp(t0, t1, t), nil
}

// MapTo is Map for composite targets such as colors.
func MapTo[S Number, T Interpolable[T]](v, s0, s1 S, t0, t1 T) (T, error) {
	t, err := Fraction(v, s0, s1)
	if err != nil {
		return t0, err
	}
	switch t {
	case 0:
		return t0, nil
	case 1:
		return t1, nil
	}
	return t0.Blend(t1, t), nil
}

// Must returns v, panicking if err is non-nil. Use it only where the source
// range is a constant known to be non-degenerate.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
