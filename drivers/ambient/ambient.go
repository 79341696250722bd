// Package ambient drives the four WS2812B "ambient" LEDs at the corners of
// the WuKong board. The chain is written as a whole on every change; the
// timing-critical single-wire transfer is left to the Writer, which
// tinygo.org/x/drivers/ws2812.Device satisfies.
package ambient

import (
	"image/color"

	"wukong-go/errcode"
	"wukong-go/x/conv"
)

// NumLEDs is the length of the chain.
const NumLEDs = 4

// Writer transmits a full chain of colours, first LED first.
type Writer interface {
	WriteColors(buf []color.RGBA) error
}

// Device holds the current colour of every LED.
type Device struct {
	w      Writer
	colors [NumLEDs]color.RGBA
}

// New creates the driver and turns every LED off. The Writer's pin must
// already be configured as an output.
func New(w Writer) (*Device, error) {
	d := &Device{w: w}
	if err := d.send(); err != nil {
		return nil, err
	}
	return d, nil
}

// SetColor sets LED index (0..3) to c and rewrites the chain.
func (d *Device) SetColor(index int, c color.RGBA) error {
	if index < 0 || index >= NumLEDs {
		return &errcode.E{C: errcode.InvalidIndex, Op: "ambient.SetColor", Msg: conv.Itoa(int64(index))}
	}
	d.colors[index] = c
	return d.send()
}

// SetAll sets every LED to c.
func (d *Device) SetAll(c color.RGBA) error {
	for i := range d.colors {
		d.colors[i] = c
	}
	return d.send()
}

// Color returns the last colour set for LED index; out of range indexes
// report black.
func (d *Device) Color(index int) color.RGBA {
	if index < 0 || index >= NumLEDs {
		return color.RGBA{}
	}
	return d.colors[index]
}

func (d *Device) send() error {
	return d.w.WriteColors(d.colors[:])
}
