package wukong

import (
	"time"

	"wukong-go/x/mathx"
	"wukong-go/x/ramp"
)

const (
	// NumServos is the number of servo ports on the board.
	NumServos = 8
	// MaxAngle is the largest angle accepted by NewServoAngle.
	MaxAngle = 359
	// servoSpan is the co-processor's native command range, 0..180.
	servoSpan = 180
)

// Servo identifies a servo port. Numbering is one-based on the board
// silkscreen and in NewServo; the zero value is servo 1.
type Servo struct{ idx uint8 }

// NewServo returns servo n (1..8).
func NewServo(n uint8) (Servo, error) {
	if !mathx.Between(n, 1, NumServos) {
		return Servo{}, invalid(ErrInvalidIndex, int(n))
	}
	return Servo{idx: n - 1}, nil
}

// Number returns the one-based servo number.
func (s Servo) Number() uint8 { return s.idx + 1 }

// Index returns the zero-based servo index.
func (s Servo) Index() uint8 { return s.idx }

// ServoAngle is an angle in whole degrees, 0..359.
type ServoAngle struct{ deg uint16 }

// NewServoAngle validates deg.
func NewServoAngle(deg uint16) (ServoAngle, error) {
	if deg > MaxAngle {
		return ServoAngle{}, invalid(ErrInvalidAngle, int(deg))
	}
	return ServoAngle{deg: deg}, nil
}

// Degrees returns the angle in degrees.
func (a ServoAngle) Degrees() uint16 { return a.deg }

// ServoLimit pairs a servo with the physical travel of the part plugged
// into it.
type ServoLimit struct {
	Servo    Servo
	MaxAngle ServoAngle
}

// ServoConfig records, per servo port, the maximum travel of the attached
// servo so that a request in 0..max can be rescaled to the co-processor's
// 0..180 range. A zero slot means the port is not configured; a zero
// maximum is rejected, so the two never collide.
type ServoConfig struct {
	max [NumServos]uint16
}

// NewServoConfig builds a table from limits. It fails on a zero maximum or
// on a servo listed twice.
func NewServoConfig(limits ...ServoLimit) (*ServoConfig, error) {
	c := &ServoConfig{}
	for _, l := range limits {
		if err := c.Configure(l.Servo, l.MaxAngle); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Configure sets the maximum angle of an unconfigured servo. Configuring a
// servo twice fails with ErrRepeatServo and leaves the first setting.
func (c *ServoConfig) Configure(s Servo, max ServoAngle) error {
	if max.deg == 0 {
		return invalid(ErrInvalidAngle, 0)
	}
	if c.max[s.idx] != 0 {
		return invalid(ErrRepeatServo, int(s.Number()))
	}
	c.max[s.idx] = max.deg
	return nil
}

// MaxAngle returns the configured maximum for s.
func (c *ServoConfig) MaxAngle(s Servo) (ServoAngle, bool) {
	m := c.max[s.idx]
	return ServoAngle{deg: m}, m != 0
}

// Scale converts a requested angle into the co-processor's 0..180 range:
// floor(angle*180/max). It never rounds up, so max maps to exactly 180.
func (c *ServoConfig) Scale(s Servo, a ServoAngle) (uint8, error) {
	m := c.max[s.idx]
	if m == 0 {
		return 0, invalid(ErrUnconfiguredServo, int(s.Number()))
	}
	if a.deg > m {
		return 0, &Error{Err: ErrOverangle, Value: int(a.deg), Limit: int(m)}
	}
	raw := mathx.MulDiv16(a.deg, servoSpan, m)
	if raw > servoSpan {
		panic("wukong: scaled servo angle out of range")
	}
	return uint8(raw), nil
}

// SetServoAngle drives servo s to angle a, interpreted against the maximum
// configured for s in cfg.
func (d *Device) SetServoAngle(cfg *ServoConfig, s Servo, a ServoAngle) error {
	raw, err := cfg.Scale(s, a)
	if err != nil {
		return err
	}
	return d.write(EncodeServo(s, raw))
}

// SweepServo moves servo s from one angle to another in steps evenly spaced
// writes, sleeping duration/steps before each one. The first write goes to
// from immediately. Both ends are checked against cfg before anything is
// sent; a bus error stops the sweep where it is.
func (d *Device) SweepServo(cfg *ServoConfig, s Servo, from, to ServoAngle, duration time.Duration, steps uint16) error {
	if _, err := cfg.Scale(s, from); err != nil {
		return err
	}
	if _, err := cfg.Scale(s, to); err != nil {
		return err
	}
	if err := d.SetServoAngle(cfg, s, from); err != nil {
		return err
	}
	top := cfg.max[s.idx]
	return ramp.Linear(from.deg, to.deg, top, duration, steps,
		func(dt time.Duration) bool {
			d.delay.Sleep(dt)
			return true
		},
		func(deg uint16) error {
			return d.SetServoAngle(cfg, s, ServoAngle{deg: deg})
		})
}
