// Package mock provides Screen, a host-side drivers.Displayer that keeps
// pixels in memory.
package mock

import (
	stdcolor "image/color"
	"io"

	"cube-go/color"
	"cube-go/x/conv"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Screen)(nil)

// Screen is an in-memory display of fixed size.
type Screen struct {
	w, h    int16
	pix     []stdcolor.RGBA
	Flushes int
	// Err, when set, is returned by Display.
	Err error
}

// New returns a w by h Screen with every pixel zeroed. Negative sizes are
// treated as zero.
func New(w, h int16) *Screen {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Screen{w: w, h: h, pix: make([]stdcolor.RGBA, int(w)*int(h))}
}

// Size returns the width and height.
func (d *Screen) Size() (x, y int16) { return d.w, d.h }

// SetPixel ignores coordinates outside the display, like the TinyGo drivers.
func (d *Screen) SetPixel(x, y int16, c stdcolor.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.pix[int(y)*int(d.w)+int(x)] = c
}

// Display counts a flush, or returns Err if set.
func (d *Screen) Display() error {
	if d.Err != nil {
		return d.Err
	}
	d.Flushes++
	return nil
}

// At returns the pixel at x, y.
func (d *Screen) At(x, y int16) color.Color {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return color.Color{}
	}
	return color.FromStd(d.pix[int(y)*int(d.w)+int(x)])
}

// Dump writes one "x,y #rrggbbaa" line per pixel.
func (d *Screen) Dump(w io.Writer) error {
	var num [20]byte
	var hex [8]byte
	line := make([]byte, 0, 32)
	for y := int16(0); y < d.h; y++ {
		for x := int16(0); x < d.w; x++ {
			line = line[:0]
			line = append(line, conv.Utoa(num[:], uint64(x))...)
			line = append(line, ',')
			line = append(line, conv.Utoa(num[:], uint64(y))...)
			line = append(line, ' ', '#')
			line = append(line, conv.U32Hex(hex[:], d.At(x, y).Uint32())...)
			line = append(line, '\n')
			if _, err := w.Write(line); err != nil {
				return err
			}
		}
	}
	return nil
}
