// Package platform wires the WuKong drivers to a concrete board. On a
// micro:bit v2 (tinygo, nrf52833) it uses the real I2C0, PWM0 and edge
// pins; everywhere else it provides inert host fakes for tests and demos.
package platform

import (
	"tinygo.org/x/drivers"

	"wukong-go/config"
	"wukong-go/drivers/ambient"
	"wukong-go/drivers/buzzer"
	"wukong-go/drivers/wukong"
	"wukong-go/x/timex"
)

// Resources used by the board.
const (
	BusI2C     = "i2c0"
	PinBuzzer  = 0  // edge P0
	PinAmbient = 16 // edge P16
)

// Device IDs recorded as resource owners.
const (
	devWuKong  = "wukong"
	devBuzzer  = "buzzer"
	devAmbient = "ambient"
)

// provider builds the hardware collaborators for one board.
type provider interface {
	I2C(hz uint32) (drivers.I2C, error)
	TonePWM(tickHz uint32) (buzzer.PWM, error)
	LEDChain() (ambient.Writer, error)
}

// Board owns the resources of one micro:bit + WuKong pair. Each peripheral
// can be opened once; a second open fails with bus_in_use or pin_in_use.
type Board struct {
	Reg  Registry
	cfg  config.Board
	prov provider
}

// New returns a board using cfg.
func New(cfg config.Board) *Board {
	return &Board{cfg: cfg, prov: newProvider()}
}

// WuKong claims the I2C bus and returns the co-processor driver.
func (b *Board) WuKong() (*wukong.Device, error) {
	if err := b.Reg.ClaimBus(devWuKong, BusI2C); err != nil {
		return nil, err
	}
	bus, err := b.prov.I2C(b.cfg.I2CHz)
	if err != nil {
		b.Reg.ReleaseBus(devWuKong, BusI2C)
		return nil, err
	}
	d := wukong.New(bus, timex.Sleeper{})
	d.Configure(b.cfg.WuKong())
	return d, nil
}

// Buzzer claims the speaker pin and returns the tone driver.
func (b *Board) Buzzer() (*buzzer.Device, error) {
	if err := b.Reg.ClaimPin(devBuzzer, PinBuzzer); err != nil {
		return nil, err
	}
	pwm, err := b.prov.TonePWM(b.cfg.ToneTickHz)
	if err != nil {
		b.Reg.ReleasePin(devBuzzer, PinBuzzer)
		return nil, err
	}
	d := buzzer.New(pwm, timex.Sleeper{})
	d.Configure(b.cfg.Buzzer())
	return d, nil
}

// Ambient claims the LED chain pin and returns the ambient LED driver, with
// every LED off.
func (b *Board) Ambient() (*ambient.Device, error) {
	if err := b.Reg.ClaimPin(devAmbient, PinAmbient); err != nil {
		return nil, err
	}
	w, err := b.prov.LEDChain()
	if err == nil {
		var d *ambient.Device
		if d, err = ambient.New(w); err == nil {
			return d, nil
		}
	}
	b.Reg.ReleasePin(devAmbient, PinAmbient)
	return nil, err
}
