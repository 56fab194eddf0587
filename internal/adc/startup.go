// internal/adc/startup.go
package adc

import "context"

// Startup brings the converter to a known-clear state. The first conversion
// after power-up may be garbage, so its frame marker is consumed and
// discarded, then a flush burst of clock pulses (with no sampling) clears
// whatever the converter's shift register still holds.
func Startup(ctx context.Context, lines Lines, s *Synchronizer, flushPulses int) error {
	if err := s.Sync(ctx); err != nil {
		return err
	}
	for i := 0; i < flushPulses; i++ {
		if err := lines.Tick(); err != nil {
			return err
		}
	}
	return nil
}
