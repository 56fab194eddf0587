// internal/config/normalize.go
package config

// Normalize fills defaults for omitted values. It is allowed to mutate
// configuration. It MUST be called before Validate(), which assumes a
// normalized config.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	a := &cfg.Capture.ADC
	if a.ReferenceVoltageMv == 0 {
		a.ReferenceVoltageMv = DefaultReferenceVoltageMv
	}
	if a.ResolutionBits == 0 {
		a.ResolutionBits = DefaultResolutionBits
	}
	if a.MarkerZeroRun == 0 {
		a.MarkerZeroRun = DefaultMarkerZeroRun
	}
	if a.FlushPulses == 0 {
		a.FlushPulses = DefaultFlushPulses
	}

	g := &cfg.Capture.GPIO
	if g.Chip == "" {
		g.Chip = DefaultChip
	}

	r := &cfg.Capture.Record
	if r.ThresholdMv == nil {
		v := float64(DefaultThresholdMv)
		r.ThresholdMv = &v
	}
	if r.IntervalMs == 0 {
		r.IntervalMs = DefaultIntervalMs
	}

	s := &cfg.Capture.Stats
	if s.IntervalS == nil {
		v := DefaultStatsIntervalS
		s.IntervalS = &v
	}
}
