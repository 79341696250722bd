package ramp

import (
	"time"

	"wukong-go/x/mathx"
)

// Step applies the next level in [0..top]. A non-nil error stops the ramp.
type Step func(level uint16) error

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Linear runs a synchronous (caller-driven) integer ramp from cur to to.
// Each of the steps is preceded by one tick of duration/steps; the last step
// always lands exactly on to (bounded by top). Intermediate levels that do not
// change are skipped. steps==0 or duration<=0 snaps to 'to'.
//
// The first error returned by set aborts the ramp and is returned. A
// cancelled tick returns nil with the ramp left where it stopped.
func Linear(cur, to, top uint16, duration time.Duration, steps uint16, tick Tick, set Step) error {
	to = mathx.Min(to, top)
	if steps == 0 || duration <= 0 {
		return set(to)
	}
	d := int32(to) - int32(cur)
	st := int32(steps)
	acc := int32(0)
	cur32 := int32(cur)
	stepDur := duration / time.Duration(steps)
	if stepDur <= 0 {
		stepDur = time.Millisecond
	}

	for i := uint16(1); i < steps; i++ {
		if !tick(stepDur) {
			return nil
		}
		acc += d
		inc := acc / st
		if inc != 0 {
			acc -= inc * st
			cur32 = mathx.Clamp(cur32+inc, 0, int32(top))
			if err := set(uint16(cur32)); err != nil {
				return err
			}
		}
	}
	if !tick(stepDur) {
		return nil
	}
	return set(to)
}
