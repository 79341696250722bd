// Package wukong drives the I2C side of the ELECFREAKS WuKong expansion
// board for the BBC micro:bit v2: the blue "mood" lights, the two DC motor
// outputs and the eight servo ports. All three are handled by a co-processor
// at a single I2C address; every command is a 4-byte write and nothing is
// ever read back.
//
//	d := wukong.New(machine.I2C0, timex.Sleeper{})
//	err := d.SetMoodLights(wukong.MoodBreath)
//
// Calls block for the duration of the bus traffic plus any settle delay the
// protocol requires. Bus errors are returned as-is and never retried.
package wukong

import (
	"time"

	"tinygo.org/x/drivers"
)

// I2C address of the WuKong co-processor.
const Address = 0x10

// Register (first payload byte) values.
const (
	regMotorBase  = 0x01 // motor N (0-based) is regMotorBase+N
	regServoBase  = 0x03 // servo N (0-based) is regServoBase+N
	regMoodMode   = 0x11
	regMoodLevel  = 0x12
	moodBreathArg = 150 // regMoodLevel argument that starts breathing
	moodSteadyArg = 160 // regMoodMode argument that latches a steady level

	motorForward = 1
	motorReverse = 2
)

// MoodSettle is the pause the co-processor needs between the two writes of
// a mood light mode change.
const MoodSettle = 100 * time.Millisecond

// Delayer blocks the caller for d.
type Delayer interface {
	Sleep(d time.Duration)
}

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x10 if zero.
	Address uint16
}

// Device wraps an I2C connection to the WuKong co-processor.
type Device struct {
	bus   drivers.I2C
	delay Delayer
	addr  uint16
}

// New creates a new WuKong connection. The I2C bus must already be
// configured. This function only creates the Device object; it does not
// touch the board.
func New(bus drivers.I2C, delay Delayer) *Device {
	return &Device{
		bus:   bus,
		delay: delay,
		addr:  Address,
	}
}

// Configure applies optional config.
func (d *Device) Configure(cfg Config) {
	if cfg.Address != 0 {
		d.addr = cfg.Address
	}
}

// Addr returns the 7-bit address commands are sent to.
func (d *Device) Addr() uint16 { return d.addr }

func (d *Device) write(f Frame) error {
	return d.bus.Tx(d.addr, f[:], nil)
}
