// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults match the target converter and detector board.
const (
	DefaultReferenceVoltageMv = 3300
	DefaultResolutionBits     = 12
	DefaultMarkerZeroRun      = 4
	DefaultFlushPulses        = 20
	DefaultThresholdMv        = 200
	DefaultIntervalMs         = 3
	DefaultStatsIntervalS     = 60
	DefaultChip               = "gpiochip0"
)

type Config struct {
	Capture CaptureConfig `yaml:"capture"`
}

type CaptureConfig struct {
	ADC    ADCConfig    `yaml:"adc"`
	GPIO   GPIOConfig   `yaml:"gpio"`
	Record RecordConfig `yaml:"record"`
	Stats  StatsConfig  `yaml:"stats"`

	// LogPath tees diagnostics to a file in addition to stderr (optional).
	LogPath string `yaml:"log_path"`
}

// ---- CONVERTER ----

type ADCConfig struct {
	ReferenceVoltageMv float64 `yaml:"reference_voltage_mv"`
	ResolutionBits     uint    `yaml:"resolution_bits"`
	OffsetMv           float64 `yaml:"offset_mv"`
	MarkerZeroRun      int     `yaml:"marker_zero_run"`
	FlushPulses        int     `yaml:"flush_pulses"`
}

// ---- LINES ----

type GPIOConfig struct {
	Chip      string `yaml:"chip"`
	ClockLine int    `yaml:"clock_line"`
	DataLine  int    `yaml:"data_line"`
	HoldLine  int    `yaml:"hold_line"`
}

// ---- RECORDING ----

type RecordConfig struct {
	Path string `yaml:"path"`

	// ThresholdMv is a pointer so an explicit 0 is distinguishable from an
	// omitted value.
	ThresholdMv *float64 `yaml:"threshold_mv"`

	IntervalMs int `yaml:"interval_ms"`

	// MQTT publishing is opt-in; an empty broker disables it.
	MQTT MQTTConfig `yaml:"mqtt"`
}

type MQTTConfig struct {
	Broker string `yaml:"broker"`
	Topic  string `yaml:"topic"`
}

// ---- STATS ----

type StatsConfig struct {
	// IntervalS is a pointer so an explicit 0 (disabled) is distinguishable
	// from an omitted value.
	IntervalS *int `yaml:"interval_s"`
}

// Load reads and decodes a configuration file. It performs no validation.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &cfg, nil
}
