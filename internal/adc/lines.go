// internal/adc/lines.go
package adc

// Lines is the clock/data line pair wired to the converter.
// The converter shifts data out on falling clock edges; the host only ever
// drives the clock and samples the data line.
//
// Every method leaves the clock in its logic-high idle state so no caller
// can cause a stray active edge between operations.
type Lines interface {
	// Pulse drives the clock low then high and returns the data line level
	// (0 or 1). The level is read after the rising edge.
	Pulse() (int, error)

	// Tick drives the clock low then high without sampling the data line.
	Tick() error

	// Close releases the lines.
	Close() error
}
