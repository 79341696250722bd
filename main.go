package main

import (
	"image/color"
	"time"

	"wukong-go/config"
	"wukong-go/drivers/buzzer"
	"wukong-go/drivers/wukong"
	"wukong-go/errcode"
	"wukong-go/platform"
)

// C major, one octave up from middle C.
var scale = []uint8{72, 74, 76, 77, 79, 81, 83, 84}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	cfg, err := config.Load("microbit")
	if !check("config", err) {
		return
	}
	board := platform.New(cfg)

	wk, err := board.WuKong()
	if !check("wukong", err) {
		return
	}
	servos, err := cfg.ServoConfig()
	check("servos", err)

	check("mood", wk.SetMoodLights(wukong.MoodBreath))

	for _, v := range []int8{-100, 0, 100} {
		m, _ := wukong.NewMotor(1)
		check("motor", wk.SetMotorVelocity(m, v))
		time.Sleep(500 * time.Millisecond)
	}
	check("stop", wk.StopMotors())

	if servos != nil {
		s, _ := wukong.NewServo(1)
		from, _ := wukong.NewServoAngle(0)
		to, _ := wukong.NewServoAngle(180)
		check("sweep", wk.SweepServo(servos, s, from, to, 180*30*time.Millisecond, 180))
	}

	if bz, err := board.Buzzer(); check("buzzer", err) {
		tune := make([]buzzer.Note, 0, len(scale))
		for _, k := range scale {
			tune = append(tune, buzzer.Note{Key: k, DurationMs: 125})
		}
		check("tune", bz.PlayTune(tune...))
	}

	check("mood", wk.SetMoodLights(wukong.MoodIntensity(40)))

	amb, err := board.Ambient()
	check("ambient", err)

	// Periodic stats.
	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	i := 0
	for t := range tick.C {
		if amb != nil {
			check("ambient", amb.SetAll(color.RGBA{}))
			check("ambient", amb.SetColor(i%4, color.RGBA{R: 64, A: 255}))
		}
		i++
		println(t.Format("15:04:05"), "Heartbeat")
	}
}

// check prints err with its code and reports whether err was nil.
func check(op string, err error) bool {
	if err == nil {
		return true
	}
	println(op, "failed:", string(errcode.Of(err)), err.Error())
	return false
}
