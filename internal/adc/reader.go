// internal/adc/reader.go
package adc

import "errors"

// Reader collects one raw sample. The caller must have just completed a
// Sync: the reader does not re-validate framing mid-read.
type Reader struct {
	lines Lines
	bits  uint
}

// NewReader creates a Reader for a converter of the given resolution.
func NewReader(lines Lines, bits uint) (*Reader, error) {
	if lines == nil {
		return nil, errors.New("adc: reader: lines required")
	}
	if bits < 1 || bits > 32 {
		return nil, errors.New("adc: reader: resolution must be in 1..32 bits")
	}
	return &Reader{lines: lines, bits: bits}, nil
}

// ReadRaw pulses the clock exactly once per resolution bit and folds the
// sampled bits into an unsigned value, first bit most significant.
func (r *Reader) ReadRaw() (uint32, error) {
	var v uint32
	for i := uint(0); i < r.bits; i++ {
		b, err := r.lines.Pulse()
		if err != nil {
			return 0, err
		}
		v <<= 1
		if b != 0 {
			v |= 1
		}
	}
	return v, nil
}
