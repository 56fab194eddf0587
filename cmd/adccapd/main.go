// cmd/adccapd/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/detectorlab/adc-capture/internal/adc"
	"github.com/detectorlab/adc-capture/internal/capture"
	"github.com/detectorlab/adc-capture/internal/config"
	"github.com/detectorlab/adc-capture/internal/logger"
	"github.com/detectorlab/adc-capture/internal/record"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: adccapd <config.yaml>")
	}

	if err := run(os.Args[1]); err != nil {
		log.Fatalf("adccapd: %v", err)
	}
}

// run keeps every exit path inside one function so the deferred releases
// (lines, sinks, logger) always execute, interrupt included.
func run(cfgPath string) error {
	// --------------------
	// Load + normalize + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	zl, err := logger.New(cfg.Capture.LogPath)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}
	defer zl.Sync()

	// --------------------
	// Hardware (fail fast, before RUNNING)
	// --------------------

	lines, err := adc.OpenGPIO(adc.Pins{
		Chip:  cfg.Capture.GPIO.Chip,
		Clock: cfg.Capture.GPIO.ClockLine,
		Data:  cfg.Capture.GPIO.DataLine,
		Hold:  cfg.Capture.GPIO.HoldLine,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := lines.Close(); err != nil {
			zl.Error("line release failed", zap.Error(err))
		}
	}()

	// --------------------
	// Sinks (file always, MQTT opt-in)
	// --------------------

	file, err := record.OpenFile(cfg.Capture.Record.Path)
	if err != nil {
		return err
	}
	sinks := []record.Sink{file}

	if cfg.Capture.Record.MQTT.Broker != "" {
		m, err := record.NewMQTT(cfg.Capture.Record.MQTT.Broker, cfg.Capture.Record.MQTT.Topic)
		if err != nil {
			file.Close()
			return err
		}
		sinks = append(sinks, m)
	}

	sink := record.Multi(sinks...)
	defer func() {
		if err := sink.Close(); err != nil {
			zl.Error("sink close failed", zap.Error(err))
		}
	}()

	// --------------------
	// Acquisition loop
	// --------------------

	loop, err := capture.New(capture.Config{
		ResolutionBits: cfg.Capture.ADC.ResolutionBits,
		MarkerZeroRun:  cfg.Capture.ADC.MarkerZeroRun,
		FlushPulses:    cfg.Capture.ADC.FlushPulses,
		VrefMv:         cfg.Capture.ADC.ReferenceVoltageMv,
		OffsetMv:       cfg.Capture.ADC.OffsetMv,
		ThresholdMv:    *cfg.Capture.Record.ThresholdMv,
		Interval:       time.Duration(cfg.Capture.Record.IntervalMs) * time.Millisecond,
		StatsInterval:  time.Duration(*cfg.Capture.Stats.IntervalS) * time.Second,
	}, lines, sink, zl)
	if err != nil {
		return err
	}

	// A termination signal is the loop's only normal exit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil {
		return err
	}

	zl.Info("shutdown complete")
	return nil
}
