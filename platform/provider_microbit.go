//go:build tinygo && nrf52833

package platform

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ws2812"

	"wukong-go/drivers/ambient"
	"wukong-go/drivers/buzzer"
	"wukong-go/x/timex"
)

// -----------------------------------------------------------------------------
// BBC micro:bit v2. The WuKong sits on the edge connector: I²C on P19/P20,
// speaker on P0, ambient LED chain on P16.
// -----------------------------------------------------------------------------

type mcuProvider struct{}

func newProvider() provider { return mcuProvider{} }

// I2C configures i2c0 on the edge connector pins.
func (mcuProvider) I2C(hz uint32) (drivers.I2C, error) {
	bus := machine.I2C0
	err := bus.Configure(machine.I2CConfig{
		Frequency: hz,
		SCL:       machine.SCL_PIN,
		SDA:       machine.SDA_PIN,
	})
	if err != nil {
		return nil, err
	}
	return bus, nil
}

// TonePWM drives the speaker from PWM0.
func (mcuProvider) TonePWM(tickHz uint32) (buzzer.PWM, error) {
	pwm := machine.PWM0
	if err := pwm.Configure(machine.PWMConfig{}); err != nil {
		return nil, err
	}
	ch, err := pwm.Channel(machine.P0)
	if err != nil {
		return nil, err
	}
	pwm.Set(ch, 0)
	return newTimedPWM(&mcuTone{pwm: pwm, ch: ch}, tickHz), nil
}

// LEDChain returns the WS2812 chain on P16.
func (mcuProvider) LEDChain() (ambient.Writer, error) {
	pin := machine.P16
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return ws2812.New(pin), nil
}

// ---- tone output on a machine.PWM channel ----

type mcuTone struct {
	pwm *machine.PWM
	ch  uint8
}

func (m *mcuTone) SetPeriod(ticks, tickHz uint32) error {
	return m.pwm.SetPeriod(uint64(timex.TicksToDuration(uint64(ticks), tickHz)))
}

func (m *mcuTone) Enable(on bool) {
	if on {
		m.pwm.Set(m.ch, m.pwm.Top()/2)
		return
	}
	m.pwm.Set(m.ch, 0)
}
