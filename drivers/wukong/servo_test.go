package wukong

import (
	"errors"
	"testing"
	"time"
)

func TestNewServoRoundTrip(t *testing.T) {
	for n := 1; n <= NumServos; n++ {
		s, err := NewServo(uint8(n))
		if err != nil {
			t.Fatalf("NewServo(%d): %v", n, err)
		}
		if s.Number() != uint8(n) || s.Index() != uint8(n-1) {
			t.Fatalf("servo %d: Number=%d Index=%d", n, s.Number(), s.Index())
		}
	}
	for _, n := range []uint8{0, 9, 255} {
		_, err := NewServo(n)
		var e *Error
		if !errors.As(err, &e) || !errors.Is(err, ErrInvalidIndex) || e.Value != int(n) {
			t.Fatalf("NewServo(%d) err = %v", n, err)
		}
	}
}

func TestNewServoAngle(t *testing.T) {
	for deg := uint16(0); deg <= MaxAngle; deg++ {
		a, err := NewServoAngle(deg)
		if err != nil || a.Degrees() != deg {
			t.Fatalf("NewServoAngle(%d) = %v, %v", deg, a.Degrees(), err)
		}
	}
	for _, deg := range []uint16{360, 1000, 65535} {
		if _, err := NewServoAngle(deg); !errors.Is(err, ErrInvalidAngle) {
			t.Fatalf("NewServoAngle(%d) err = %v", deg, err)
		}
	}
}

func TestServoConfigScale(t *testing.T) {
	s := mustServo(1)
	for _, max := range []uint16{1, 7, 90, 180, 270, 359} {
		cfg, err := NewServoConfig(ServoLimit{Servo: s, MaxAngle: mustAngle(max)})
		if err != nil {
			t.Fatal(err)
		}
		for deg := uint16(0); deg <= max; deg++ {
			raw, err := cfg.Scale(s, mustAngle(deg))
			if err != nil {
				t.Fatalf("max %d: Scale(%d): %v", max, deg, err)
			}
			want := uint32(deg) * 180 / uint32(max)
			if uint32(raw) != want || raw > 180 {
				t.Fatalf("max %d: Scale(%d) = %d, want %d", max, deg, raw, want)
			}
		}
		if raw, _ := cfg.Scale(s, mustAngle(max)); raw != 180 {
			t.Fatalf("max %d: Scale(max) = %d, want 180", max, raw)
		}
		if raw, _ := cfg.Scale(s, mustAngle(0)); raw != 0 {
			t.Fatalf("max %d: Scale(0) = %d, want 0", max, raw)
		}
		if max < MaxAngle {
			_, err := cfg.Scale(s, mustAngle(max+1))
			var e *Error
			if !errors.As(err, &e) || e.Err != ErrOverangle || e.Limit != int(max) {
				t.Fatalf("max %d: Scale(max+1) err = %v", max, err)
			}
		}
	}
}

func TestServoConfigScaleTruncates(t *testing.T) {
	s := mustServo(4)
	cfg, _ := NewServoConfig(ServoLimit{Servo: s, MaxAngle: mustAngle(270)})
	// 100*180/270 = 66.67
	if raw, _ := cfg.Scale(s, mustAngle(100)); raw != 66 {
		t.Fatalf("Scale(100/270) = %d, want 66", raw)
	}
}

func TestServoConfigRepeat(t *testing.T) {
	s := mustServo(2)
	cfg := &ServoConfig{}
	if err := cfg.Configure(s, mustAngle(180)); err != nil {
		t.Fatal(err)
	}
	err := cfg.Configure(s, mustAngle(270))
	if !errors.Is(err, ErrRepeatServo) {
		t.Fatalf("second Configure err = %v", err)
	}
	if max, ok := cfg.MaxAngle(s); !ok || max.Degrees() != 180 {
		t.Fatalf("table changed after repeat: %d %v", max.Degrees(), ok)
	}

	_, err = NewServoConfig(
		ServoLimit{Servo: s, MaxAngle: mustAngle(90)},
		ServoLimit{Servo: s, MaxAngle: mustAngle(90)},
	)
	if !errors.Is(err, ErrRepeatServo) {
		t.Fatalf("NewServoConfig duplicate err = %v", err)
	}
}

func TestServoConfigRejectsZeroMax(t *testing.T) {
	cfg := &ServoConfig{}
	if err := cfg.Configure(mustServo(1), mustAngle(0)); !errors.Is(err, ErrInvalidAngle) {
		t.Fatalf("zero max err = %v", err)
	}
	if _, ok := cfg.MaxAngle(mustServo(1)); ok {
		t.Fatal("zero max was recorded")
	}
}

func TestSetServoAngle(t *testing.T) {
	d, _, log := newTestDevice()
	s := mustServo(3)
	cfg, _ := NewServoConfig(ServoLimit{Servo: s, MaxAngle: mustAngle(270)})

	if err := d.SetServoAngle(cfg, s, mustAngle(90)); err != nil {
		t.Fatal(err)
	}
	if len(*log) != 1 {
		t.Fatalf("writes = %d, want 1", len(*log))
	}
	got := (*log)[0]
	if got.addr != Address || got.frame != (Frame{0x05, 60, 0, 0}) {
		t.Fatalf("write = %#x %v", got.addr, got.frame)
	}
}

func TestSetServoAngleRejectsWithoutWriting(t *testing.T) {
	d, _, log := newTestDevice()
	s := mustServo(8)
	cfg, _ := NewServoConfig(ServoLimit{Servo: s, MaxAngle: mustAngle(180)})

	if err := d.SetServoAngle(cfg, mustServo(7), mustAngle(10)); !errors.Is(err, ErrUnconfiguredServo) {
		t.Fatalf("unconfigured err = %v", err)
	}
	if err := d.SetServoAngle(cfg, s, mustAngle(181)); !errors.Is(err, ErrOverangle) {
		t.Fatalf("overangle err = %v", err)
	}
	if len(*log) != 0 {
		t.Fatalf("bus touched: %v", *log)
	}
}

func TestSetServoAngleBusError(t *testing.T) {
	d, bus, _ := newTestDevice()
	bus.failAt = 1
	s := mustServo(1)
	cfg, _ := NewServoConfig(ServoLimit{Servo: s, MaxAngle: mustAngle(180)})
	if err := d.SetServoAngle(cfg, s, mustAngle(45)); err != errNack {
		t.Fatalf("err = %v, want bus error unchanged", err)
	}
}

func TestSweepServo(t *testing.T) {
	d, _, log := newTestDevice()
	s := mustServo(1)
	cfg, _ := NewServoConfig(ServoLimit{Servo: s, MaxAngle: mustAngle(180)})

	if err := d.SweepServo(cfg, s, mustAngle(0), mustAngle(180), 180*30*time.Millisecond, 180); err != nil {
		t.Fatal(err)
	}
	w := writes(*log)
	if len(w) != 181 {
		t.Fatalf("writes = %d, want 181", len(w))
	}
	for i, f := range w {
		if f != (Frame{0x03, byte(i), 0, 0}) {
			t.Fatalf("write %d = %v", i, f)
		}
	}
	for _, e := range *log {
		if !e.isWrite() && e.sleep != 30*time.Millisecond {
			t.Fatalf("sleep = %v, want 30ms", e.sleep)
		}
	}
}

func TestSweepServoValidatesBothEnds(t *testing.T) {
	d, _, log := newTestDevice()
	s := mustServo(1)
	cfg, _ := NewServoConfig(ServoLimit{Servo: s, MaxAngle: mustAngle(90)})
	if err := d.SweepServo(cfg, s, mustAngle(0), mustAngle(120), time.Second, 10); !errors.Is(err, ErrOverangle) {
		t.Fatalf("err = %v", err)
	}
	if len(*log) != 0 {
		t.Fatalf("bus touched: %v", *log)
	}
}

func TestSweepServoStopsOnBusError(t *testing.T) {
	d, bus, _ := newTestDevice()
	bus.failAt = 4
	s := mustServo(1)
	cfg, _ := NewServoConfig(ServoLimit{Servo: s, MaxAngle: mustAngle(180)})
	err := d.SweepServo(cfg, s, mustAngle(0), mustAngle(180), time.Second, 10)
	if err != errNack || bus.writes != 4 {
		t.Fatalf("err = %v after %d writes", err, bus.writes)
	}
}
