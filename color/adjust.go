package color

import "cube-go/x/mathx"

// Lighter moves c toward white by factor in [0, 1]; factor is clamped.
// Alpha is kept.
func (c Color) Lighter(factor float64) Color {
	w := White
	w.A = c.A
	return c.toward(w, factor)
}

// Darker moves c toward black by factor in [0, 1]; factor is clamped.
// Alpha is kept.
func (c Color) Darker(factor float64) Color {
	k := Black
	k.A = c.A
	return c.toward(k, factor)
}

func (c Color) toward(target Color, factor float64) Color {
	f := mathx.SafeClamp(factor, 0, 1)
	out, err := mathx.MapTo(f, 0.0, 1.0, c, target)
	if err != nil {
		// NaN factor.
		return c
	}
	return out
}

// AdjustBrightness treats factor in [0, 1] as a brightness dial with 0.5 as
// neutral: 0 is black, 1 is white, and each half scales linearly.
func (c Color) AdjustBrightness(factor float64) Color {
	f := mathx.SafeClamp(factor, 0, 1)
	switch {
	case mathx.SafeLess(f, 0.5):
		return c.Darker(mathx.Must(mathx.Map(f, 0.5, 0.0, 0.0, 1.0)))
	case mathx.SafeGreater(f, 0.5):
		return c.Lighter(mathx.Must(mathx.Map(f, 0.5, 1.0, 0.0, 1.0)))
	}
	return c
}

// IsOpaque reports whether alpha is at maximum.
func (c Color) IsOpaque() bool { return c.A == 0xff }

// Opaque returns c with full alpha.
func (c Color) Opaque() Color {
	c.A = 0xff
	return c
}

// Translucent returns c with alpha set from a [0, 1] opacity (0.5 -> 128).
// Out-of-range opacity is clamped; NaN yields fully transparent.
func (c Color) Translucent(alpha float64) Color {
	a, err := mathx.Map(alpha, 0.0, 1.0, uint8(0), uint8(0xff))
	if err != nil {
		a = 0
	}
	c.A = a
	return c
}
