package config

import (
	"os"
	"strconv"
)

// FromEnv overlays FLOG_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("FLOG_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("FLOG_MIN_LEVEL"); v != "" {
		cfg.MinLevel = v
	}
	if v := os.Getenv("FLOG_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Capacity = n
		}
	}
	if v := os.Getenv("FLOG_FLUSH_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FlushIntervalMs = n
		}
	}
	if v := os.Getenv("FLOG_TIME_FORMAT"); v != "" {
		cfg.TimeFormat = v
	}
	if v := os.Getenv("FLOG_UTC"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UTC = b
		}
	}
}
