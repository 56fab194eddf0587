// internal/record/record.go
package record

import (
	"fmt"
	"time"
)

// timeLayout is fixed-width local time with sub-second precision.
const timeLayout = "02 01 2006 15:04:05.000000"

// Record is one captured sample. The timestamp is assigned the moment the
// raw value finishes assembling, not before.
type Record struct {
	At         time.Time
	Millivolts float64
}

// Line renders the record as a single sink line, newline included. Sinks
// must deliver it whole: no partial lines.
func (r Record) Line() string {
	return fmt.Sprintf("%s %f\n", r.At.Format(timeLayout), r.Millivolts)
}

// Sink is an append-only record stream.
type Sink interface {
	Write(r Record) error
	Close() error
}
