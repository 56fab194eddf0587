// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks a normalized configuration. It performs declarative
// validation only. It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	a := cfg.Capture.ADC

	if a.ResolutionBits < 1 || a.ResolutionBits > 32 {
		return fmt.Errorf("adc: resolution_bits must be in 1..32, got %d", a.ResolutionBits)
	}
	if a.ReferenceVoltageMv <= 0 {
		return fmt.Errorf("adc: reference_voltage_mv must be > 0, got %v", a.ReferenceVoltageMv)
	}
	if a.MarkerZeroRun < 1 {
		return fmt.Errorf("adc: marker_zero_run must be >= 1, got %d", a.MarkerZeroRun)
	}
	// The flush burst has to cover at least one marker plus whatever could
	// be left in the shift register.
	if a.FlushPulses < 2*a.MarkerZeroRun {
		return fmt.Errorf(
			"adc: flush_pulses must be >= %d (twice marker_zero_run), got %d",
			2*a.MarkerZeroRun, a.FlushPulses,
		)
	}

	g := cfg.Capture.GPIO
	if g.Chip == "" {
		return fmt.Errorf("gpio: chip required")
	}
	for name, offset := range map[string]int{
		"clock_line": g.ClockLine,
		"data_line":  g.DataLine,
		"hold_line":  g.HoldLine,
	} {
		if offset < 0 {
			return fmt.Errorf("gpio: %s must be >= 0, got %d", name, offset)
		}
	}
	if g.ClockLine == g.DataLine || g.ClockLine == g.HoldLine || g.DataLine == g.HoldLine {
		return fmt.Errorf(
			"gpio: clock_line, data_line and hold_line must be distinct, got %d/%d/%d",
			g.ClockLine, g.DataLine, g.HoldLine,
		)
	}

	r := cfg.Capture.Record
	if r.Path == "" {
		return fmt.Errorf("record: path required")
	}
	if r.ThresholdMv == nil || *r.ThresholdMv < 0 {
		return fmt.Errorf("record: threshold_mv must be >= 0")
	}
	if r.IntervalMs <= 0 {
		return fmt.Errorf("record: interval_ms must be > 0, got %d", r.IntervalMs)
	}
	if r.MQTT.Broker != "" && r.MQTT.Topic == "" {
		return fmt.Errorf("record: mqtt.topic required when mqtt.broker is set")
	}

	s := cfg.Capture.Stats
	if s.IntervalS == nil || *s.IntervalS < 0 {
		return fmt.Errorf("stats: interval_s must be >= 0")
	}

	return nil
}
