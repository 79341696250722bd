package wukong

// Frame is one bus transaction: register byte followed by three argument
// bytes.
type Frame [4]byte

// Register returns the target register of f.
func (f Frame) Register() byte { return f[0] }

// EncodeMoodLights returns the two frames of a mood light mode change, in
// send order.
//
//	breath:        0x11 0 0 0,         then 0x12 150 0 0
//	off/intensity: 0x12 level 0 0,     then 0x11 160 0 0
func EncodeMoodLights(m MoodLights) ([2]Frame, error) {
	var level uint8
	switch m.Mode {
	case Breath:
		return [2]Frame{
			{regMoodMode, 0, 0, 0},
			{regMoodLevel, moodBreathArg, 0, 0},
		}, nil
	case Off:
	case Steady:
		if m.Intensity > MaxIntensity {
			return [2]Frame{}, invalid(ErrOverintensity, int(m.Intensity))
		}
		level = m.Intensity
	default:
		return [2]Frame{}, invalid(ErrInvalidMode, int(m.Mode))
	}
	return [2]Frame{
		{regMoodLevel, level, 0, 0},
		{regMoodMode, moodSteadyArg, 0, 0},
	}, nil
}

// EncodeMotor returns the frame setting motor m to v.
func EncodeMotor(m Motor, v Velocity) Frame {
	return Frame{regMotorBase + m.idx, v.Sign(), v.Speed(), 0}
}

// EncodeServo returns the frame driving servo s to raw, already scaled to
// 0..180.
func EncodeServo(s Servo, raw uint8) Frame {
	return Frame{regServoBase + s.idx, raw, 0, 0}
}
