// internal/adc/sync.go
package adc

import (
	"context"
	"errors"
)

// Synchronizer locates the start of a data frame. The converter precedes
// every valid frame with a run of zero bits; with the data line pulled up,
// 1 means no data yet.
type Synchronizer struct {
	lines   Lines
	zeroRun int
}

// NewSynchronizer creates a Synchronizer that treats zeroRun consecutive
// zero bits as a complete frame marker.
func NewSynchronizer(lines Lines, zeroRun int) (*Synchronizer, error) {
	if lines == nil {
		return nil, errors.New("adc: synchronizer: lines required")
	}
	if zeroRun < 1 {
		return nil, errors.New("adc: synchronizer: zero run must be >= 1")
	}
	return &Synchronizer{lines: lines, zeroRun: zeroRun}, nil
}

// Sync pulses the clock until it has observed the full frame marker, leaving
// the stream positioned at the first data bit and the clock idle-high.
//
// A 1 bit discards ALL marker progress; the search restarts from zero, never
// from a shorter partial run. There is no timeout: the converter is the
// trigger source, so the only exits are marker completion, a line error, or
// ctx cancellation.
func (s *Synchronizer) Sync(ctx context.Context) error {
	run := 0
	for run < s.zeroRun {
		if err := ctx.Err(); err != nil {
			return err
		}
		b, err := s.lines.Pulse()
		if err != nil {
			return err
		}
		if b == 0 {
			run++
		} else {
			run = 0
		}
	}
	return nil
}
