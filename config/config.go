// Package config holds the per-board JSON configuration: bus settings and
// the travel of each servo plugged into the WuKong.
package config

import (
	"encoding/json"
	"errors"

	"wukong-go/drivers/buzzer"
	"wukong-go/drivers/wukong"
)

// Defaults applied by Decode to zero fields.
const (
	DefaultI2CHz  = 100_000
	DefaultTickHz = buzzer.TickHz
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Board is the configuration of one micro:bit + WuKong pair.
type Board struct {
	Address    uint16  `json:"address,omitempty"`      // co-processor address, default 0x10
	I2CHz      uint32  `json:"i2c_hz,omitempty"`       // bus clock, default 100 kHz
	ToneTickHz uint32  `json:"tone_tick_hz,omitempty"` // buzzer PWM clock, default 2 MHz
	Servos     []Servo `json:"servos,omitempty"`
}

// Servo declares the travel of the servo on one port.
type Servo struct {
	Port     uint8  `json:"port"`      // 1..8
	MaxAngle uint16 `json:"max_angle"` // 1..359
}

// Load resolves the embedded config for device.
func Load(device string) (Board, error) {
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return Board{}, errors.New("config: no embedded config for device: " + device)
	}
	return Decode(raw)
}

// Decode parses raw JSON and fills defaults.
func Decode(raw []byte) (Board, error) {
	var b Board
	if err := json.Unmarshal(raw, &b); err != nil {
		return Board{}, err
	}
	if b.Address == 0 {
		b.Address = wukong.Address
	}
	if b.I2CHz == 0 {
		b.I2CHz = DefaultI2CHz
	}
	if b.ToneTickHz == 0 {
		b.ToneTickHz = DefaultTickHz
	}
	return b, nil
}

// ServoConfig builds the servo table. Ports and angles are validated the
// same way as at run time; a port listed twice is an error.
func (b Board) ServoConfig() (*wukong.ServoConfig, error) {
	limits := make([]wukong.ServoLimit, 0, len(b.Servos))
	for _, s := range b.Servos {
		port, err := wukong.NewServo(s.Port)
		if err != nil {
			return nil, err
		}
		maxAngle, err := wukong.NewServoAngle(s.MaxAngle)
		if err != nil {
			return nil, err
		}
		limits = append(limits, wukong.ServoLimit{Servo: port, MaxAngle: maxAngle})
	}
	return wukong.NewServoConfig(limits...)
}

// WuKong returns the bus driver config.
func (b Board) WuKong() wukong.Config { return wukong.Config{Address: b.Address} }

// Buzzer returns the buzzer driver config.
func (b Board) Buzzer() buzzer.Config { return buzzer.Config{TickHz: b.ToneTickHz} }
