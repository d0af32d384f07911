package color

import (
	"strings"

	"cube-go/errcode"
	"cube-go/x/conv"
)

// Parse accepts "#RRGGBB" (opaque), "#RRGGBBAA", or a name known to Lookup.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if c, ok := Lookup(s); ok {
		return c, nil
	}
	return Color{}, &errcode.E{C: errcode.UnknownColor, Op: "color.Parse", Msg: s}
}

func parseHex(h string) (Color, error) {
	if len(h) != 6 && len(h) != 8 {
		return Color{}, &errcode.E{C: errcode.InvalidColor, Op: "color.Parse", Msg: "#" + h}
	}
	var ch [4]byte
	ch[3] = 0xff
	for i := 0; i < len(h)/2; i++ {
		b, ok := conv.ParseHex8(h[2*i], h[2*i+1])
		if !ok {
			return Color{}, &errcode.E{C: errcode.InvalidColor, Op: "color.Parse", Msg: "#" + h}
		}
		ch[i] = b
	}
	return Color{ch[0], ch[1], ch[2], ch[3]}, nil
}

// MustParse is Parse for literals; it panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
