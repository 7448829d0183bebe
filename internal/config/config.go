package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/trickstertwo/flog"
	"github.com/trickstertwo/flog/adapter/filelog"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	File string `json:"file" yaml:"file"`

	// Level is the level of records written by the command; MinLevel is the
	// backend threshold.
	Level    string `json:"level" yaml:"level"`
	MinLevel string `json:"minLevel" yaml:"minLevel"`

	// Capacity is the pending buffer size in bytes.
	Capacity        int    `json:"capacity" yaml:"capacity"`
	RecordBuffer    int    `json:"recordBuffer" yaml:"recordBuffer"`
	FlushIntervalMs int    `json:"flushIntervalMs" yaml:"flushIntervalMs"`
	TimeFormat      string `json:"timeFormat" yaml:"timeFormat"`
	UTC             bool   `json:"utc" yaml:"utc"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Level:           "info",
		MinLevel:        "trace",
		Capacity:        8192,
		RecordBuffer:    4096,
		FlushIntervalMs: 1000,
		TimeFormat:      time.RFC3339Nano,
	}
}

// Load reads configuration from a JSON or YAML file (by extension) on top of
// the defaults. If path is empty, returns defaults.
func Load(path string) (Config, error) {
	return LoadWith(Default(), path)
}

// LoadWith is Load with base in place of the defaults. Keys missing from the
// file keep their base value.
func LoadWith(base Config, path string) (Config, error) {
	cfg := base
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		err = json.Unmarshal(b, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that levels parse and sizes are usable.
func (c Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("config: no log file set")
	}
	if _, err := flog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("config: level: %w", err)
	}
	if _, err := flog.ParseLevel(c.MinLevel); err != nil {
		return fmt.Errorf("config: minLevel: %w", err)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("config: capacity must be positive, got %d", c.Capacity)
	}
	if c.FlushIntervalMs < 0 {
		return fmt.Errorf("config: flushIntervalMs must not be negative, got %d", c.FlushIntervalMs)
	}
	return nil
}

// RecordLevel is the parsed Level. Call Validate first.
func (c Config) RecordLevel() flog.Level {
	l, _ := flog.ParseLevel(c.Level)
	return l
}

// FlushInterval is zero when periodic flushing is off.
func (c Config) FlushInterval() time.Duration {
	return time.Duration(c.FlushIntervalMs) * time.Millisecond
}

// Filelog maps c onto the file backend configuration.
func (c Config) Filelog() (filelog.Config, error) {
	if err := c.Validate(); err != nil {
		return filelog.Config{}, err
	}
	min, _ := flog.ParseLevel(c.MinLevel)
	return filelog.Config{
		Path:             c.File,
		MinLevel:         min,
		TimeFormat:       c.TimeFormat,
		UTC:              c.UTC,
		BufferSize:       c.Capacity,
		RecordBufferSize: c.RecordBuffer,
	}, nil
}
