// cmd/cube-mock/main.go
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"cube-go/color"
	"cube-go/display"
	"cube-go/display/mock"
	"cube-go/errcode"
	"cube-go/x/ramp"

	"github.com/google/shlex"
)

// ---------- Configuration ----------

const (
	cubeWidth  = 4
	cubeHeight = 4

	fadeDurationMs = 1000
)

var errQuit = errors.New("quit")

const usage = `commands:
  parse C             resolve a name or #rrggbb[aa]
  lighter C F         move C toward white by F in [0,1]
  darker C F          move C toward black by F in [0,1]
  brightness C F      brightness dial, 0.5 neutral
  translucent C F     set opacity of C to F in [0,1]
  blend FG BG         composite FG over BG
  mix A B T           blend A toward B at T in [0,1]
  fade A B STEPS      fade across the mock cube and dump it
  names               list palette names
  quit
hex colors must be quoted ('#ff0000'); an unquoted # starts a comment`

func main() {
	// Demo: two half-transparent colors composited.
	c1 := color.White.Translucent(0.5)
	c2 := color.SteelBlue.Translucent(0.5)
	c3 := c1.BlendInto(c2)
	red, err := color.Parse("#ff0000ff")
	fmt.Println(c3, red, err)

	println("Info: cube-mock ready, type 'help'")
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		err := run(sc.Text(), os.Stdout)
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			println("Error:", err.Error())
		}
	}
	if err := sc.Err(); err != nil {
		println("Error:", err.Error())
		os.Exit(1)
	}
}

// run executes a single command line.
func run(line string, out io.Writer) error {
	args, err := shlex.Split(line)
	if err != nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "shell", Err: err}
	}
	if len(args) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(args[0]), args[1:]

	switch cmd {
	case "help":
		_, err := fmt.Fprintln(out, usage)
		return err
	case "quit", "exit":
		return errQuit
	case "names":
		names := color.Names()
		sort.Strings(names)
		_, err := fmt.Fprintln(out, strings.Join(names, " "))
		return err
	case "parse":
		if err := want(args, 1); err != nil {
			return err
		}
		c, err := color.Parse(args[0])
		if err != nil {
			return err
		}
		return show(out, c)
	case "lighter", "darker", "brightness", "translucent":
		if err := want(args, 2); err != nil {
			return err
		}
		c, err := color.Parse(args[0])
		if err != nil {
			return err
		}
		f, err := parseFactor(args[1])
		if err != nil {
			return err
		}
		switch cmd {
		case "lighter":
			c = c.Lighter(f)
		case "darker":
			c = c.Darker(f)
		case "brightness":
			c = c.AdjustBrightness(f)
		default:
			c = c.Translucent(f)
		}
		return show(out, c)
	case "blend":
		if err := want(args, 2); err != nil {
			return err
		}
		fg, err := color.Parse(args[0])
		if err != nil {
			return err
		}
		bg, err := color.Parse(args[1])
		if err != nil {
			return err
		}
		return show(out, fg.BlendInto(bg))
	case "mix":
		if err := want(args, 3); err != nil {
			return err
		}
		a, err := color.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := color.Parse(args[1])
		if err != nil {
			return err
		}
		f, err := parseFactor(args[2])
		if err != nil {
			return err
		}
		return show(out, a.Blend(b, f))
	case "fade":
		if err := want(args, 3); err != nil {
			return err
		}
		a, err := color.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := color.Parse(args[1])
		if err != nil {
			return err
		}
		steps, err := strconv.ParseUint(args[2], 10, 16)
		if err != nil {
			return &errcode.E{C: errcode.InvalidParams, Op: "fade", Msg: args[2], Err: err}
		}
		return fade(out, a, b, uint16(steps))
	}
	return &errcode.E{C: errcode.Unsupported, Op: "shell", Msg: cmd}
}

// fade ramps the whole mock cube from a to b without sleeping and dumps the
// final frame.
func fade(out io.Writer, a, b color.Color, steps uint16) error {
	dev := mock.New(cubeWidth, cubeHeight)
	frame := display.NewFrame(dev, color.Black)
	var ferr error
	ramp.Fade(a, b, fadeDurationMs, steps, func(time.Duration) bool {
		return ferr == nil
	}, func(c color.Color) {
		frame.Fill(c)
		if err := frame.Flush(); err != nil {
			ferr = err
			return
		}
		_, ferr = fmt.Fprintln(out, c)
	})
	if ferr != nil {
		return ferr
	}
	return dev.Dump(out)
}

func want(args []string, n int) error {
	if len(args) != n {
		return &errcode.E{C: errcode.InvalidParams, Msg: "want " + strconv.Itoa(n) + " arguments"}
	}
	return nil
}

func parseFactor(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &errcode.E{C: errcode.InvalidParams, Msg: s, Err: err}
	}
	return f, nil
}

func show(out io.Writer, c color.Color) error {
	_, err := fmt.Fprintln(out, c)
	return err
}
