// Package buzzer plays square-wave tones on the WuKong's bottom-mounted
// speaker. A tone is a MIDI key number and a duration; the driver converts
// it into a PWM counter period and a loop count, starts the waveform and
// then busy-waits on the PWM's loops-done flag until the tone is over.
//
// PlayNote blocks for the length of the note. There is no cancellation.
package buzzer

import (
	"time"

	"wukong-go/errcode"
	"wukong-go/x/mathx"
)

// TickHz is the PWM counter clock: 16 MHz divided by 8.
const TickHz = 2_000_000

// MaxKey is the highest MIDI key.
const MaxKey = 127

// Rest is a Note key that plays silence for the note's duration.
const Rest = 0xFF

// MaxLoops is the largest loop count the hardware takes in one burst.
const MaxLoops = 0xFFFF

// PWM is the hardware capability the sequencer drives: a single channel
// that plays a 50% duty square wave for a counted number of loops.
type PWM interface {
	// Configure sets the counter period in ticks.
	Configure(period uint32) error
	// Start clears the loops-done flag and plays loops loops.
	Start(loops uint16) error
	// LoopsDone reports whether the last Start has finished.
	LoopsDone() bool
	// Stop silences the output.
	Stop()
}

// Delayer blocks the caller for d. Used for rests.
type Delayer interface {
	Sleep(d time.Duration)
}

// Errors returned by the driver.
var (
	ErrInvalidKey = &errcode.E{C: errcode.InvalidKey, Op: "buzzer"}
	ErrBusy       = &errcode.E{C: errcode.Busy, Op: "buzzer"}
)

// State of the sequencer.
type State uint8

const (
	// Idle means the PWM channel is free.
	Idle State = iota
	// Playing means a note holds the PWM channel.
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "idle"
}

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// TickHz defaults to 2 MHz if zero.
	TickHz uint32
}

// Device is a buzzer bound to one PWM channel.
type Device struct {
	pwm    PWM // nil while a note is playing
	delay  Delayer
	tickHz uint32
}

// New creates a buzzer on pwm. delay is only used for rests.
func New(pwm PWM, delay Delayer) *Device {
	return &Device{
		pwm:    pwm,
		delay:  delay,
		tickHz: TickHz,
	}
}

// Configure applies optional config.
func (d *Device) Configure(cfg Config) {
	if cfg.TickHz != 0 {
		d.tickHz = cfg.TickHz
	}
}

// State reports whether a note is in progress.
func (d *Device) State() State {
	if d.pwm == nil {
		return Playing
	}
	return Idle
}

// PlayNote sounds MIDI key (0..127) for durationMs milliseconds and returns
// once the PWM reports the last loop done. A note too short for a single
// loop returns at once without touching the hardware.
func (d *Device) PlayNote(key uint8, durationMs uint32) error {
	if key > MaxKey {
		return ErrInvalidKey
	}
	pwm := d.pwm
	if pwm == nil {
		return ErrBusy
	}
	p := Period(d.tickHz, key)
	n := Loops(d.tickHz, durationMs, p)
	if n == 0 {
		return nil
	}

	d.pwm = nil
	defer func() { d.pwm = pwm }()

	if err := pwm.Configure(p); err != nil {
		return err
	}
	defer pwm.Stop()
	for n > 0 {
		burst := mathx.Min(n, MaxLoops)
		if err := pwm.Start(uint16(burst)); err != nil {
			return err
		}
		for !pwm.LoopsDone() {
		}
		n -= burst
	}
	return nil
}

// Note is one entry of a tune.
type Note struct {
	Key        uint8 // MIDI key, or Rest
	DurationMs uint32
}

// PlayTune plays notes in order, stopping at the first error.
func (d *Device) PlayTune(notes ...Note) error {
	for _, n := range notes {
		if n.Key == Rest {
			d.delay.Sleep(time.Duration(n.DurationMs) * time.Millisecond)
			continue
		}
		if err := d.PlayNote(n.Key, n.DurationMs); err != nil {
			return err
		}
	}
	return nil
}
