// Package color is the 8-bit RGBA color type driven onto the cube, with
// brightness adjustment, alpha compositing and name/hex parsing built on the
// interpolation helpers in x/mathx.
package color

import (
	stdcolor "image/color"

	"cube-go/x/conv"
	"cube-go/x/mathx"
)

// Color is a straight (non-premultiplied) alpha color.
type Color struct {
	R, G, B, A uint8
}

var _ mathx.Interpolable[Color] = Color{}

// Palette.
var (
	Transparent = Color{0x00, 0x00, 0x00, 0x00}
	Black       = Color{0x00, 0x00, 0x00, 0xff}
	White       = Color{0xff, 0xff, 0xff, 0xff}
	Red         = Color{0xff, 0x00, 0x00, 0xff}
	Green       = Color{0x00, 0xff, 0x00, 0xff}
	Blue        = Color{0x00, 0x00, 0xff, 0xff}
	Cyan        = Color{0x00, 0xff, 0xff, 0xff}
	Magenta     = Color{0xff, 0x00, 0xff, 0xff}
	Yellow      = Color{0xff, 0xff, 0x00, 0xff}
	Orange      = Color{0xff, 0x80, 0x00, 0xff}
	Pink        = Color{0xff, 0x60, 0xff, 0xff}
	SteelBlue   = Color{0x46, 0x8b, 0xb4, 0xff}
)

// Blend interpolates each channel independently, rounding halves away from
// zero. It makes Color usable as a mathx.MapTo target.
func (c Color) Blend(other Color, t float64) Color {
	return Color{
		R: mathx.Lerp(c.R, other.R, t),
		G: mathx.Lerp(c.G, other.G, t),
		B: mathx.Lerp(c.B, other.B, t),
		A: mathx.Lerp(c.A, other.A, t),
	}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// ToRGBA returns the opaque device color, compositing c onto black.
func (c Color) ToRGBA() stdcolor.RGBA {
	o := c.BlendInto(Black)
	return stdcolor.RGBA{R: o.R, G: o.G, B: o.B, A: o.A}
}

// FromStd converts any image/color.Color.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// Uint32 packs c as 0xRRGGBBAA.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// String returns "#rrggbb" for opaque colors, "#rrggbbaa" otherwise.
func (c Color) String() string {
	buf := make([]byte, 0, 9)
	buf = append(buf, '#')
	buf = conv.AppendHex8(buf, c.R)
	buf = conv.AppendHex8(buf, c.G)
	buf = conv.AppendHex8(buf, c.B)
	if !c.IsOpaque() {
		buf = conv.AppendHex8(buf, c.A)
	}
	return string(buf)
}
