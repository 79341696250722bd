package wukong

// MoodMode selects how the mood lights behave.
type MoodMode uint8

const (
	// Off turns the lights off (the power-on state).
	Off MoodMode = iota
	// Breath hands the lights to the co-processor, which fades them in and
	// out with a period of a couple of seconds.
	Breath
	// Steady holds the lights at a fixed intensity.
	Steady
)

// MaxIntensity is the brightest steady level.
const MaxIntensity = 100

// MoodLights is a mood light command. Use MoodOff, MoodBreath or
// MoodIntensity to build one.
type MoodLights struct {
	Mode      MoodMode
	Intensity uint8 // 0..100, Steady only
}

var (
	MoodOff    = MoodLights{Mode: Off}
	MoodBreath = MoodLights{Mode: Breath}
)

// MoodIntensity returns a steady mode at level (0..100). The level is
// checked when the command is encoded.
func MoodIntensity(level uint8) MoodLights {
	return MoodLights{Mode: Steady, Intensity: level}
}

// SetMoodLights switches the mood lights to m. Every mode change is two
// writes with MoodSettle between them; both must land for the change to show.
// A bus failure is returned as a *PhaseError. There is no rollback: a failed
// second write leaves the first one applied.
func (d *Device) SetMoodLights(m MoodLights) error {
	frames, err := EncodeMoodLights(m)
	if err != nil {
		return err
	}
	if err := d.write(frames[0]); err != nil {
		return &PhaseError{Phase: 1, Err: err}
	}
	d.delay.Sleep(MoodSettle)
	if err := d.write(frames[1]); err != nil {
		return &PhaseError{Phase: 2, Err: err}
	}
	return nil
}
