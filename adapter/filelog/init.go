package filelog

import (
	"io"
	"os"

	"github.com/trickstertwo/flog"
)

// Register this adapter as the default for flog.Default()/New().
//
// Env:
//
//	FLOG_MIN_LEVEL or FLOG_LEVEL : trace|debug|info|warn|error|fatal (default info)
//	FLOG_TIME_FORMAT             : Go time layout for the "[...]" tag (default RFC3339Nano)
//	FLOG_UTC=1                   : format timestamps in UTC
func init() {
	flog.RegisterDefaultAdapterFactory(func(w io.Writer) flog.Adapter {
		return NewWithWriter(w, optionsFromEnv())
	})
}

func optionsFromEnv() Options {
	opts := Options{MinLevel: flog.LevelInfo}
	if v := firstNonEmpty(os.Getenv("FLOG_MIN_LEVEL"), os.Getenv("FLOG_LEVEL")); v != "" {
		if l, err := flog.ParseLevel(v); err == nil {
			opts.MinLevel = l
		}
	}
	opts.TimeFormat = os.Getenv("FLOG_TIME_FORMAT")
	opts.UTC = os.Getenv("FLOG_UTC") == "1"
	return opts
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
