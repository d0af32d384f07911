package color

import (
	"errors"
	stdcolor "image/color"
	"sync"
	"testing"

	"cube-go/errcode"
	"cube-go/x/mathx"

	"github.com/google/go-cmp/cmp"
)

func TestBlendRedToWhite(t *testing.T) {
	want := Color{255, 128, 128, 255}
	if got := Red.Blend(White, 0.5); got != want {
		t.Fatalf("Red.Blend(White, 0.5) = %v, want %v", got, want)
	}
	got, err := mathx.MapTo(0.5, 0.0, 1.0, Red, White)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("MapTo(0.5, 0, 1, red, white) = %v, want %v", got, want)
	}
}

func TestBlendMatchesPerChannelMap(t *testing.T) {
	a, b := SteelBlue.Translucent(0.2), Orange
	for i := 0; i <= 64; i++ {
		v := float64(i) / 64
		got := mathx.Must(mathx.MapTo(v, 0.0, 1.0, a, b))
		want := Color{
			R: mathx.Must(mathx.Map(v, 0.0, 1.0, a.R, b.R)),
			G: mathx.Must(mathx.Map(v, 0.0, 1.0, a.G, b.G)),
			B: mathx.Must(mathx.Map(v, 0.0, 1.0, a.B, b.B)),
			A: mathx.Must(mathx.Map(v, 0.0, 1.0, a.A, b.A)),
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Fatalf("v=%v: vector vs channel blend (-want +got):\n%s", v, d)
		}
	}
}

func TestLighterDarker(t *testing.T) {
	type C struct {
		name      string
		got, want Color
	}
	half := Red.Translucent(0.5)
	for _, c := range []C{
		{"lighter 0", SteelBlue.Lighter(0), SteelBlue},
		{"lighter 1", SteelBlue.Lighter(1), White},
		{"lighter clamps", SteelBlue.Lighter(7), White},
		{"lighter keeps alpha", half.Lighter(1), Color{255, 255, 255, 128}},
		{"darker half", White.Darker(0.5), Color{128, 128, 128, 255}},
		{"darker 1", SteelBlue.Darker(1), Black},
		{"darker clamps", SteelBlue.Darker(-3), SteelBlue},
	} {
		if c.got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestAdjustBrightness(t *testing.T) {
	type C struct {
		f    float64
		want Color
	}
	for _, c := range []C{
		{0.5, SteelBlue},
		{mathx.Next(0.5), SteelBlue},
		{0, Black},
		{1, White},
		{0.75, Color{163, 197, 218, 255}},
		{0.25, Color{35, 70, 90, 255}},
		{-1, Black},
		{9, White},
	} {
		if got := SteelBlue.AdjustBrightness(c.f); got != c.want {
			t.Fatalf("AdjustBrightness(%v) = %v, want %v", c.f, got, c.want)
		}
	}
}

func TestOpacity(t *testing.T) {
	if got := White.Translucent(0.5).A; got != 128 {
		t.Fatalf("Translucent(0.5).A = %d, want 128", got)
	}
	if got := White.Translucent(2).A; got != 255 {
		t.Fatalf("Translucent(2).A = %d, want 255", got)
	}
	if got := White.Translucent(-1).A; got != 0 {
		t.Fatalf("Translucent(-1).A = %d, want 0", got)
	}
	c := Pink.Translucent(0.1)
	if c.IsOpaque() {
		t.Fatal("translucent color reports opaque")
	}
	if got := c.Opaque(); got != Pink {
		t.Fatalf("Opaque() = %v, want %v", got, Pink)
	}
}

func TestBlendInto(t *testing.T) {
	type C struct {
		name     string
		fg, bg   Color
		expected Color
	}
	for _, c := range []C{
		{"opaque passes through", Red, Blue, Red},
		{"transparent shows backdrop", Transparent, Red, Red},
		{"half red on black", Red.Translucent(0.5), Black, Color{128, 0, 0, 255}},
		{"white on steel blue", White.Translucent(0.5), SteelBlue.Translucent(0.5), Color{163, 197, 218, 255}},
	} {
		if got := c.fg.BlendInto(c.bg); got != c.expected {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.expected)
		}
	}
}

func TestStdColorConformance(t *testing.T) {
	c := Red.Translucent(0.5)
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := stdcolor.NRGBA{255, 0, 0, 128}.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Fatalf("RGBA() = %d %d %d %d, want %d %d %d %d", r, g, b, a, wr, wg, wb, wa)
	}
	if got := FromStd(stdcolor.RGBA{128, 0, 0, 128}); got != c {
		t.Fatalf("FromStd = %v, want %v", got, c)
	}
	if got := c.ToRGBA(); got != (stdcolor.RGBA{128, 0, 0, 255}) {
		t.Fatalf("ToRGBA = %v", got)
	}
	if got := SteelBlue.Uint32(); got != 0x468bb4ff {
		t.Fatalf("Uint32 = %#x", got)
	}
}

func TestParse(t *testing.T) {
	type C struct {
		in   string
		want Color
	}
	for _, c := range []C{
		{"#ff0000ff", Red},
		{"#ff0000", Red},
		{"#468BB4", SteelBlue},
		{"#00000000", Transparent},
		{" #ff000080 ", Color{255, 0, 0, 128}},
		{"steel_blue", SteelBlue},
		{"Steel Blue", SteelBlue},
		{"GREEN", Green},
		{"darkolivegreen", Color{0x55, 0x6b, 0x2f, 0xff}},
	} {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for in, want := range map[string]errcode.Code{
		"#12345":    errcode.InvalidColor,
		"#gg0000":   errcode.InvalidColor,
		"#ff0000f":  errcode.InvalidColor,
		"#":         errcode.InvalidColor,
		"nocolor":   errcode.UnknownColor,
		"":          errcode.UnknownColor,
		"ff0000ff0": errcode.UnknownColor,
	} {
		_, err := Parse(in)
		if !errors.Is(err, want) {
			t.Fatalf("Parse(%q) error = %v, want %v", in, err, want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	in := []Color{Red, SteelBlue, Transparent, Pink.Translucent(0.3), {1, 2, 3, 254}}
	var out []Color
	for _, c := range in {
		out = append(out, MustParse(c.String()))
	}
	if d := cmp.Diff(in, out); d != "" {
		t.Fatalf("String/Parse round trip (-want +got):\n%s", d)
	}
	if got := Red.String(); got != "#ff0000" {
		t.Fatalf("Red.String() = %q", got)
	}
	if got := Red.Translucent(0.5).String(); got != "#ff000080" {
		t.Fatalf("translucent String() = %q", got)
	}
}

func TestLookupPaletteComplete(t *testing.T) {
	for _, name := range Names() {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("palette name %q not found", name)
		}
	}
	if _, ok := Lookup("not-a-color"); ok {
		t.Fatal("Lookup of unknown name succeeded")
	}
}

// Everything here is a pure value computation; concurrent callers need no
// synchronisation.
func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := Red.Blend(White, 0.5); got != (Color{255, 128, 128, 255}) {
					t.Errorf("concurrent Blend = %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
