// Package display pushes cube colors to a TinyGo display driver.
package display

import (
	"cube-go/color"
	"cube-go/errcode"
	"cube-go/x/mathx"

	"tinygo.org/x/drivers"
)

// Frame composites colors onto a backdrop before handing them to the
// driver, so every pixel the driver sees is opaque. Not safe for
// concurrent use.
type Frame struct {
	dev      drivers.Displayer
	backdrop color.Color
}

// NewFrame wraps dev. backdrop is what translucent pixels are blended onto;
// its own alpha is ignored.
func NewFrame(dev drivers.Displayer, backdrop color.Color) *Frame {
	return &Frame{dev: dev, backdrop: backdrop.Opaque()}
}

// Size reports the driver's dimensions in pixels.
func (f *Frame) Size() (w, h int16) { return f.dev.Size() }

// Backdrop returns the opaque color translucent pixels are blended onto.
func (f *Frame) Backdrop() color.Color { return f.backdrop }

// Set writes one pixel.
func (f *Frame) Set(x, y int16, c color.Color) error {
	w, h := f.dev.Size()
	if w <= 0 || h <= 0 || !mathx.Between(x, 0, w-1) || !mathx.Between(y, 0, h-1) {
		return &errcode.E{C: errcode.OutOfRange, Op: "display.Set"}
	}
	f.dev.SetPixel(x, y, c.BlendInto(f.backdrop).ToRGBA())
	return nil
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c color.Color) {
	px := c.BlendInto(f.backdrop).ToRGBA()
	w, h := f.dev.Size()
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			f.dev.SetPixel(x, y, px)
		}
	}
}

// Flush sends the buffered pixels to the device.
func (f *Frame) Flush() error {
	if err := f.dev.Display(); err != nil {
		return &errcode.E{C: errcode.MapDriverErr(err), Op: "display", Err: err}
	}
	return nil
}
