package color

import "cube-go/x/mathx"

// BlendInto composites c over backdrop with straight-alpha blending,
// out = a*c + (1-a)*backdrop per channel, and returns an opaque color.
// The backdrop's own alpha is ignored. Opaque colors are returned as is.
func (c Color) BlendInto(backdrop Color) Color {
	if c.IsOpaque() {
		return c
	}
	return mathx.Must(mathx.MapTo(c.A, 0, 0xff, backdrop.Opaque(), c.Opaque()))
}
