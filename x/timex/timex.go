package timex

import (
	"time"

	"wukong-go/x/mathx"
)

// Sleeper is the default blocking delay provider. It parks the calling
// goroutine for d; on a single-core MCU that is the whole program.
type Sleeper struct{}

func (Sleeper) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// TicksToDuration converts a count of timer ticks at tickHz into a duration,
// rounded to the nearest nanosecond. tickHz==0 yields 0.
func TicksToDuration(ticks uint64, tickHz uint32) time.Duration {
	if tickHz == 0 {
		return 0
	}
	return time.Duration(mathx.RoundDiv(ticks*uint64(time.Second), uint64(tickHz)))
}
