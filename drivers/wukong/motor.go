package wukong

import "wukong-go/x/mathx"

const (
	// NumMotors is the number of DC motor outputs on the board.
	NumMotors = 2
	// MaxSpeed is the largest accepted |velocity|.
	MaxSpeed = 100
)

// Motor identifies a motor output, one-based like Servo. The zero value is
// motor 1.
type Motor struct{ idx uint8 }

// NewMotor returns motor n (1..2).
func NewMotor(n uint8) (Motor, error) {
	if !mathx.Between(n, 1, NumMotors) {
		return Motor{}, invalid(ErrInvalidIndex, int(n))
	}
	return Motor{idx: n - 1}, nil
}

// Number returns the one-based motor number.
func (m Motor) Number() uint8 { return m.idx + 1 }

// Index returns the zero-based motor index.
func (m Motor) Index() uint8 { return m.idx }

// Velocity is a signed motor speed in percent, -100..100. Positive is
// forward.
type Velocity struct{ v int8 }

// NewVelocity validates v.
func NewVelocity(v int8) (Velocity, error) {
	if !mathx.Between(v, -MaxSpeed, MaxSpeed) {
		return Velocity{}, invalid(ErrOverspeed, int(v))
	}
	return Velocity{v: v}, nil
}

// Value returns the signed speed.
func (v Velocity) Value() int8 { return v.v }

// Speed returns |v|.
func (v Velocity) Speed() uint8 { return mathx.AbsU8(v.v) }

// Sign returns the direction byte sent on the bus: 1 forward (and stopped),
// 2 reverse.
func (v Velocity) Sign() byte {
	if v.v < 0 {
		return motorReverse
	}
	return motorForward
}

// SetMotorVelocity sets motor m to velocity (-100..100). Out of range values
// are rejected without touching the bus.
func (d *Device) SetMotorVelocity(m Motor, velocity int8) error {
	v, err := NewVelocity(velocity)
	if err != nil {
		return err
	}
	return d.write(EncodeMotor(m, v))
}

// StopMotors sets every motor to zero velocity. All motors are attempted;
// the first error is returned.
func (d *Device) StopMotors() error {
	var first error
	for i := uint8(0); i < NumMotors; i++ {
		if err := d.write(EncodeMotor(Motor{idx: i}, Velocity{})); err != nil && first == nil {
			first = err
		}
	}
	return first
}
