package color

import (
	"strings"

	"golang.org/x/image/colornames"
)

// palette overrides the SVG names where the cube uses saturated primaries
// (e.g. "green" is #00ff00 here, #008000 in SVG).
var palette = map[string]Color{
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"yellow":      Yellow,
	"orange":      Orange,
	"pink":        Pink,
	"steelblue":   SteelBlue,
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// Lookup resolves a color name case-insensitively, ignoring '_', '-' and
// spaces. The cube palette wins over the SVG 1.1 names.
func Lookup(name string) (Color, bool) {
	key := normalizeName(name)
	if c, ok := palette[key]; ok {
		return c, true
	}
	if c, ok := colornames.Map[key]; ok {
		return Color{c.R, c.G, c.B, c.A}, true
	}
	return Color{}, false
}

// Names returns the palette names, for help output.
func Names() []string {
	out := make([]string, 0, len(palette))
	for k := range palette {
		out = append(out, k)
	}
	return out
}
