package ramp

import (
	"time"

	"cube-go/x/mathx"
)

// Step sets the new logical level in [0..top].
type Step func(level uint16)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

func stepDuration(durationMs uint32, steps uint16) time.Duration {
	ms := mathx.RoundDiv(durationMs, uint32(steps))
	if ms == 0 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// StartLinear starts a synchronous (caller-driven) integer ramp.
// Call it from a goroutine and provide Tick to handle timing & cancellation.
// steps==0 or durationMs==0 snaps to 'to'. Levels are clamped to top and a
// level is only reported when it changes.
func StartLinear(cur, to, top uint16, durationMs uint32, steps uint16, tick Tick, set Step) {
	to = mathx.Min(to, top)
	if steps == 0 || durationMs == 0 {
		set(to)
		return
	}
	stepDur := stepDuration(durationMs, steps)
	last := cur
	for i := uint16(1); i < steps; i++ {
		if !tick(stepDur) {
			return
		}
		lvl := mathx.Min(mathx.Must(mathx.Map(i, 0, steps, cur, to)), top)
		if lvl != last {
			last = lvl
			set(lvl)
		}
	}
	set(to)
}

// Fade walks from 'from' to 'to' in steps, calling set with each
// intermediate value (via mathx.MapTo) and finally with 'to' itself.
// steps==0 or durationMs==0 snaps to 'to'.
func Fade[T mathx.Interpolable[T]](from, to T, durationMs uint32, steps uint16, tick Tick, set func(T)) {
	if steps == 0 || durationMs == 0 {
		set(to)
		return
	}
	stepDur := stepDuration(durationMs, steps)
	for i := uint16(1); i <= steps; i++ {
		if !tick(stepDur) {
			return
		}
		set(mathx.Must(mathx.MapTo(i, 0, steps, from, to)))
	}
}
