// Package config loads settings for the flog command from a YAML or JSON
// file and FLOG_* environment variables.
package config
