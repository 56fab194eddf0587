// internal/adc/gpio.go
package adc

import (
	"fmt"

	"github.com/warthog618/gpiod"
)

// line is the subset of gpiod.Line the driver uses.
type line interface {
	SetValue(value int) error
	Value() (int, error)
	Close() error
}

// Pins identifies the GPIO lines wired to the converter.
type Pins struct {
	Chip  string
	Clock int
	Data  int
	Hold  int
}

// GPIOLines implements Lines on top of the GPIO character device.
//
// The data line is requested with pull-up bias: an idle or disconnected line
// reads as 1, which the frame marker search relies on.
type GPIOLines struct {
	clock line
	data  line
	hold  line
}

// OpenGPIO requests the three converter lines. Any failure here is fatal to
// the process; there is no retry.
func OpenGPIO(p Pins) (*GPIOLines, error) {
	c, err := gpiod.NewChip(p.Chip, gpiod.WithConsumer("adccapd"))
	if err != nil {
		return nil, fmt.Errorf("adc: open chip %s: %w", p.Chip, err)
	}
	// Requested lines stay valid after the chip handle is closed.
	defer c.Close()

	clock, err := c.RequestLine(p.Clock, gpiod.AsOutput(1))
	if err != nil {
		return nil, fmt.Errorf("adc: request clock line %d: %w", p.Clock, err)
	}

	data, err := c.RequestLine(p.Data, gpiod.AsInput, gpiod.WithPullUp)
	if err != nil {
		clock.Close()
		return nil, fmt.Errorf("adc: request data line %d: %w", p.Data, err)
	}

	// The hold line can force an immediate conversion on a rising edge, but
	// that path is untested on the target board. It is requested only to pin
	// it at its inactive level.
	hold, err := c.RequestLine(p.Hold, gpiod.AsOutput(0))
	if err != nil {
		clock.Close()
		data.Close()
		return nil, fmt.Errorf("adc: request hold line %d: %w", p.Hold, err)
	}

	return &GPIOLines{clock: clock, data: data, hold: hold}, nil
}

// Pulse toggles the clock and samples the data line. The sample is taken
// after the rising edge: the converter writes on falling edges, so the level
// is stable again by the time the clock is back high.
func (g *GPIOLines) Pulse() (int, error) {
	if err := g.clock.SetValue(0); err != nil {
		return 0, err
	}
	if err := g.clock.SetValue(1); err != nil {
		return 0, err
	}
	return g.data.Value()
}

// Tick toggles the clock without sampling.
func (g *GPIOLines) Tick() error {
	if err := g.clock.SetValue(0); err != nil {
		return err
	}
	return g.clock.SetValue(1)
}

// Close releases all three lines. The clock is left high.
func (g *GPIOLines) Close() error {
	var last error
	for _, l := range []line{g.clock, g.data, g.hold} {
		if err := l.Close(); err != nil {
			last = err
		}
	}
	return last
}
