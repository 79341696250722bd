package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID passed to Load
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

// Port 1 carries a standard 180° servo, port 2 a 270° one and port 8 a
// continuous-rotation part driven as 360° (max angle 359).
const cfgMicrobit = `{
  "address": 16,
  "i2c_hz": 100000,
  "tone_tick_hz": 2000000,
  "servos": [
    {"port": 1, "max_angle": 180},
    {"port": 2, "max_angle": 270},
    {"port": 8, "max_angle": 359}
  ]
}`

var embeddedConfigs = map[string][]byte{
	"microbit": []byte(cfgMicrobit),
}
