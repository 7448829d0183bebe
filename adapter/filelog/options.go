package filelog

import (
	"fmt"
	"os"
	"time"

	"github.com/trickstertwo/flog"
)

const (
	defaultBufferSize       = 8192
	defaultRecordBufferSize = 4096
	defaultFileMode         = os.FileMode(0o644)
)

// ErrorHandler receives errors from Log, which cannot return them.
type ErrorHandler func(error)

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "flog error: %v\n", err) }

// Options configures the adapter behavior
type Options struct {
	// MinLevel is the least severe level written. It is fixed for the
	// adapter's lifetime.
	MinLevel flog.Level

	// ErrorHandler receives flush errors hit by Log. Defaults to a line on stderr.
	ErrorHandler ErrorHandler

	// TimeFormat is the layout for the leading "[...]" tag (default time.RFC3339Nano).
	TimeFormat string
	UTC        bool // convert timestamps to UTC before formatting

	// BufferSize is the capacity of the pending-output ring in bytes (default 8192).
	BufferSize int

	// RecordBufferSize is the initial capacity of the per-record scratch (default 4096).
	RecordBufferSize int

	// FileMode is used when the log file is created (default 0644).
	FileMode os.FileMode
}

func (o *Options) setDefaults() {
	if o.ErrorHandler == nil {
		o.ErrorHandler = defaultErrorHandler
	}
	if o.TimeFormat == "" {
		o.TimeFormat = time.RFC3339Nano
	}
	if o.BufferSize <= 0 {
		o.BufferSize = defaultBufferSize
	}
	if o.RecordBufferSize <= 0 {
		o.RecordBufferSize = defaultRecordBufferSize
	}
	if o.FileMode == 0 {
		o.FileMode = defaultFileMode
	}
}
