package buzzer

import "math"

// Frequency returns the equal-temperament pitch of MIDI key in Hz, with key
// 69 as A4 = 440 Hz.
func Frequency(key uint8) float64 {
	return 440 * math.Pow(2, (float64(key)-69)/12)
}

// Period returns the PWM counter period, in ticks of a tickHz clock, for
// MIDI key. The result is rounded to the nearest tick.
func Period(tickHz uint32, key uint8) uint32 {
	return uint32(math.Round(float64(tickHz) / Frequency(key)))
}

// Loops returns how many waveform loops of the given period fill durationMs.
// One loop is an up-and-down sweep of the counter, two periods long, so
// loops = durationMs*tickHz / (2000*period). The division truncates. The
// result can exceed 32 bits for long notes at high keys.
func Loops(tickHz, durationMs, period uint32) uint64 {
	if period == 0 {
		return 0
	}
	return uint64(durationMs) * uint64(tickHz) / (2000 * uint64(period))
}
