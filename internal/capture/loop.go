// internal/capture/loop.go
package capture

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/detectorlab/adc-capture/internal/adc"
	"github.com/detectorlab/adc-capture/internal/record"
	"github.com/detectorlab/adc-capture/internal/stats"
)

// Config is the immutable runtime config the loop needs. It is constructed
// once at startup and never read from ambient state.
type Config struct {
	ResolutionBits uint
	MarkerZeroRun  int
	FlushPulses    int
	VrefMv         float64
	OffsetMv       float64
	ThresholdMv    float64
	Interval       time.Duration
	StatsInterval  time.Duration
}

// Loop is the acquisition state machine: startup once, then capture until
// cancelled. Everything runs on the caller's goroutine — the clock and data
// lines are never touched concurrently.
type Loop struct {
	cfg    Config
	lines  adc.Lines
	sync   *adc.Synchronizer
	reader *adc.Reader
	sink   record.Sink
	log    *zap.Logger

	counters  stats.Counters
	last      *record.Record
	nextStats time.Time
}

// New creates a Loop with immutable config.
func New(cfg Config, lines adc.Lines, sink record.Sink, log *zap.Logger) (*Loop, error) {
	if lines == nil {
		return nil, errors.New("capture: lines required")
	}
	if sink == nil {
		return nil, errors.New("capture: sink required")
	}
	if log == nil {
		return nil, errors.New("capture: logger required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("capture: interval must be > 0")
	}

	sync, err := adc.NewSynchronizer(lines, cfg.MarkerZeroRun)
	if err != nil {
		return nil, err
	}
	reader, err := adc.NewReader(lines, cfg.ResolutionBits)
	if err != nil {
		return nil, err
	}

	return &Loop{
		cfg:    cfg,
		lines:  lines,
		sync:   sync,
		reader: reader,
		sink:   sink,
		log:    log,
	}, nil
}

// Run drives the converter until ctx is cancelled. Cancellation is the only
// normal exit; a line failure is fatal and returned. On cancellation the
// last computed sample, if any, is flushed best-effort before returning.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("starting converter",
		zap.Uint("resolution_bits", l.cfg.ResolutionBits),
		zap.Int("marker_zero_run", l.cfg.MarkerZeroRun),
		zap.Int("flush_pulses", l.cfg.FlushPulses),
	)

	if err := adc.Startup(ctx, l.lines, l.sync, l.cfg.FlushPulses); err != nil {
		if ctx.Err() != nil {
			return l.finish()
		}
		return err
	}
	l.log.Info("converter started")

	if l.cfg.StatsInterval > 0 {
		l.nextStats = time.Now().Add(l.cfg.StatsInterval)
	}

	for {
		if err := l.sync.Sync(ctx); err != nil {
			if ctx.Err() != nil {
				return l.finish()
			}
			return err
		}
		l.counters.Synced++

		raw, err := l.reader.ReadRaw()
		if err != nil {
			return err
		}

		mv := adc.ToMillivolts(raw, l.cfg.ResolutionBits, l.cfg.VrefMv, l.cfg.OffsetMv)
		rec := record.Record{At: time.Now(), Millivolts: mv}
		l.last = &rec
		l.counters.Samples++
		l.counters.LastMillivolts = mv

		// Software threshold: at-or-below is computed but not recorded. A
		// hardware threshold is still preferred; the host can miss events
		// that land closer together than one capture cycle.
		if mv > l.cfg.ThresholdMv {
			if err := l.sink.Write(rec); err != nil {
				l.counters.WriteErrors++
				l.log.Error("record write failed", zap.Error(err))
			} else {
				l.counters.Emitted++
			}
		} else {
			l.counters.BelowThreshold++
		}

		l.maybeLogStats()

		// The converter, not this pause, governs real sample timing; the
		// interval only needs to be approximate.
		select {
		case <-ctx.Done():
			return l.finish()
		case <-time.After(l.cfg.Interval):
		}
	}
}

// finish flushes the last computed sample, if one exists, and reports final
// totals. A sample exists only after a full read; no partial frame is ever
// committed here.
func (l *Loop) finish() error {
	if l.last != nil {
		if err := l.sink.Write(*l.last); err != nil {
			l.counters.WriteErrors++
			l.log.Error("final record write failed", zap.Error(err))
		}
	}
	l.log.Info("capture stopped", l.counters.Fields()...)
	return nil
}

func (l *Loop) maybeLogStats() {
	if l.cfg.StatsInterval <= 0 {
		return
	}
	now := time.Now()
	if now.Before(l.nextStats) {
		return
	}
	l.nextStats = now.Add(l.cfg.StatsInterval)
	l.log.Info("capture stats", l.counters.Fields()...)
}
