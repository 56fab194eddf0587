// internal/stats/stats.go
package stats

import "go.uber.org/zap"

// Counters accumulates acquisition totals. It is owned and mutated by the
// capture loop's single goroutine only; there is no locking by contract.
type Counters struct {
	Synced         uint64
	Samples        uint64
	Emitted        uint64
	BelowThreshold uint64
	WriteErrors    uint64
	LastMillivolts float64
}

// Fields renders the counters for structured logging. No IO, no side
// effects.
func (c Counters) Fields() []zap.Field {
	return []zap.Field{
		zap.Uint64("synced", c.Synced),
		zap.Uint64("samples", c.Samples),
		zap.Uint64("emitted", c.Emitted),
		zap.Uint64("below_threshold", c.BelowThreshold),
		zap.Uint64("write_errors", c.WriteErrors),
		zap.Float64("last_mv", c.LastMillivolts),
	}
}
