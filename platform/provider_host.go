//go:build !(tinygo && nrf52833)

package platform

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers"

	"wukong-go/drivers/ambient"
	"wukong-go/drivers/buzzer"
)

// ----------------------------- I²C (host) ------------------------------------

// HostTx is one recorded I²C write.
type HostTx struct {
	Addr uint16
	W    []byte
}

// HostI2C implements tinygo drivers.I2C for host-side tests. It records
// every write and never fails.
type HostI2C struct {
	mu  sync.Mutex
	Log []HostTx
}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Log = append(h.Log, HostTx{Addr: addr, W: append([]byte(nil), w...)})
	// The WuKong never answers; leave r zeroed.
	return nil
}

// Writes returns a copy of the recorded writes.
func (h *HostI2C) Writes() []HostTx {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]HostTx(nil), h.Log...)
}

// ----------------------------- Tone (host) -----------------------------------

// HostTone is an inert square-wave output.
type HostTone struct {
	mu      sync.Mutex
	Periods []uint32
	On      bool
	Starts  int
}

func (h *HostTone) SetPeriod(ticks, _ uint32) error {
	h.mu.Lock()
	h.Periods = append(h.Periods, ticks)
	h.mu.Unlock()
	return nil
}

func (h *HostTone) Enable(on bool) {
	h.mu.Lock()
	h.On = on
	if on {
		h.Starts++
	}
	h.mu.Unlock()
}

// ----------------------------- LEDs (host) -----------------------------------

// HostLEDs records every frame written to the chain.
type HostLEDs struct {
	mu     sync.Mutex
	Frames [][]color.RGBA
}

func (h *HostLEDs) WriteColors(buf []color.RGBA) error {
	h.mu.Lock()
	h.Frames = append(h.Frames, append([]color.RGBA(nil), buf...))
	h.mu.Unlock()
	return nil
}

// ----------------------------- Provider --------------------------------------

var (
	_ drivers.I2C    = (*HostI2C)(nil)
	_ toneOutput     = (*HostTone)(nil)
	_ ambient.Writer = (*HostLEDs)(nil)
	_ buzzer.PWM     = (*timedPWM)(nil)
)

type hostProvider struct {
	i2c  *HostI2C
	tone *HostTone
	leds *HostLEDs
}

func newProvider() provider {
	return &hostProvider{i2c: &HostI2C{}, tone: &HostTone{}, leds: &HostLEDs{}}
}

func (p *hostProvider) I2C(uint32) (drivers.I2C, error) { return p.i2c, nil }

func (p *hostProvider) TonePWM(tickHz uint32) (buzzer.PWM, error) {
	return newTimedPWM(p.tone, tickHz), nil
}

func (p *hostProvider) LEDChain() (ambient.Writer, error) { return p.leds, nil }

// Host exposes the fakes behind b. Only available off-target.
func (b *Board) Host() (*HostI2C, *HostTone, *HostLEDs) {
	p := b.prov.(*hostProvider)
	return p.i2c, p.tone, p.leds
}
