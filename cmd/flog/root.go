package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/flog"
	"github.com/trickstertwo/flog/adapter/filelog"
	"github.com/trickstertwo/flog/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "flog",
		Short:        "Append timestamped lines to a log file",
		Long:         "flog buffers log records in memory and appends them to a file as \"[timestamp] message\" lines.",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (.yaml, .yml or .json)")
	pf.String("file", "", "Log file to append to")
	pf.String("min-level", "", "Least severe level written: trace|debug|info|warn|error|fatal")
	pf.Int("capacity", 0, "Pending buffer size in bytes")

	root.AddCommand(newWriteCmd(), newPipeCmd())
	return root
}

// resolveConfig layers defaults, env, the config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()

	base := config.Default()
	config.FromEnv(&base)
	path, _ := f.GetString("config")
	cfg, err := config.LoadWith(base, path)
	if err != nil {
		return config.Config{}, err
	}

	if f.Changed("file") {
		cfg.File, _ = f.GetString("file")
	}
	if f.Changed("level") {
		cfg.Level, _ = f.GetString("level")
	}
	if f.Changed("min-level") {
		cfg.MinLevel, _ = f.GetString("min-level")
	}
	if f.Changed("capacity") {
		cfg.Capacity, _ = f.GetInt("capacity")
	}
	if f.Changed("flush-interval") {
		d, _ := f.GetDuration("flush-interval")
		cfg.FlushIntervalMs = int(d / time.Millisecond)
	}
	return cfg, cfg.Validate()
}

func openLogger(cfg config.Config, errs io.Writer) (*flog.Logger, error) {
	fc, err := cfg.Filelog()
	if err != nil {
		return nil, err
	}
	fc.ErrorHandler = func(err error) { fmt.Fprintf(errs, "flog: %v\n", err) }
	l, _, err := filelog.NewLogger(fc)
	return l, err
}
