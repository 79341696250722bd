package platform

import (
	"errors"
	"time"

	"wukong-go/x/timex"
)

var errNoPeriod = errors.New("platform: tone period not configured")

// toneOutput is the raw square-wave output behind a tone channel.
type toneOutput interface {
	// SetPeriod sets the waveform period to ticks of a tickHz clock.
	SetPeriod(ticks, tickHz uint32) error
	// Enable switches the 50% duty output on or off.
	Enable(on bool)
}

// timedPWM implements buzzer.PWM on outputs without a hardware loop
// counter: the loops-done flag is raised once loops full waveforms (two
// counter periods each) worth of time has passed since Start.
type timedPWM struct {
	out      toneOutput
	tickHz   uint32
	period   uint32
	deadline time.Time
	now      func() time.Time
}

func newTimedPWM(out toneOutput, tickHz uint32) *timedPWM {
	return &timedPWM{out: out, tickHz: tickHz, now: time.Now}
}

func (p *timedPWM) Configure(period uint32) error {
	if err := p.out.SetPeriod(period, p.tickHz); err != nil {
		return err
	}
	p.period = period
	return nil
}

func (p *timedPWM) Start(loops uint16) error {
	if p.period == 0 {
		return errNoPeriod
	}
	p.deadline = p.now().Add(timex.TicksToDuration(2*uint64(loops)*uint64(p.period), p.tickHz))
	p.out.Enable(true)
	return nil
}

func (p *timedPWM) LoopsDone() bool { return !p.now().Before(p.deadline) }

func (p *timedPWM) Stop() { p.out.Enable(false) }
