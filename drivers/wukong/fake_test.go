package wukong

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

// event is one observable action: a bus write or a delay.
type event struct {
	addr  uint16
	frame Frame
	sleep time.Duration
}

func (e event) isWrite() bool { return e.sleep == 0 }

// fakeI2C records writes and delays in a shared log. failAt makes the n-th
// write (1-based) fail with errNack.
type fakeI2C struct {
	log    *[]event
	writes int
	failAt int
}

var errNack = errors.New("i2c: nack")

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.writes++
	if f.failAt == f.writes {
		return errNack
	}
	var fr Frame
	copy(fr[:], w)
	*f.log = append(*f.log, event{addr: addr, frame: fr})
	return nil
}

type fakeDelay struct{ log *[]event }

func (d fakeDelay) Sleep(dt time.Duration) { *d.log = append(*d.log, event{sleep: dt}) }

func newTestDevice() (*Device, *fakeI2C, *[]event) {
	log := &[]event{}
	bus := &fakeI2C{log: log}
	return New(bus, fakeDelay{log: log}), bus, log
}

func writes(log []event) []Frame {
	var out []Frame
	for _, e := range log {
		if e.isWrite() {
			out = append(out, e.frame)
		}
	}
	return out
}

func mustServo(n uint8) Servo {
	s, err := NewServo(n)
	if err != nil {
		panic(err)
	}
	return s
}

func mustAngle(deg uint16) ServoAngle {
	a, err := NewServoAngle(deg)
	if err != nil {
		panic(err)
	}
	return a
}
