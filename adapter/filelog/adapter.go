package filelog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/trickstertwo/flog"
)

// Adapter is the buffered file backend. Records are formatted into a fixed
// ring and reach the destination in batches: when the next record would not
// fit, on Flush, and on Close.
//
// All methods are safe for concurrent use. Every Log and Flush takes the same
// exclusive lock, shared with children created by With, so records from
// concurrent callers land whole and in lock-acquisition order.
type Adapter struct {
	// immutable after construction
	opts Options
	path string

	// shared with children
	mu *sync.Mutex
	w  *recordWriter

	// bound fields (immutable)
	bound    []flog.Field
	preBound []byte
}

// New returns an adapter appending to the file at path. The file is opened
// at flush time, created if absent, and never truncated.
func New(path string, opts Options) *Adapter {
	opts.setDefaults()
	a := &Adapter{opts: opts, path: path, mu: &sync.Mutex{}}
	a.w = newRecordWriter(&fileDestination{path: path, mode: opts.FileMode}, &a.opts)
	return a
}

// NewWithWriter returns an adapter that flushes into w instead of a file.
func NewWithWriter(w io.Writer, opts Options) *Adapter {
	if w == nil {
		w = os.Stderr
	}
	opts.setDefaults()
	a := &Adapter{opts: opts, mu: &sync.Mutex{}}
	a.w = newRecordWriter(&streamDestination{w: w}, &a.opts)
	return a
}

// Path is the destination file, empty for writer-backed adapters.
func (a *Adapter) Path() string { return a.path }

func (a *Adapter) MinLevel() flog.Level { return a.opts.MinLevel }

// Enabled reports whether level is at least as severe as the threshold.
func (a *Adapter) Enabled(level flog.Level) bool { return level >= a.opts.MinLevel }

// Log implements flog.Adapter. Errors go to Options.ErrorHandler.
func (a *Adapter) Log(level flog.Level, msg string, at time.Time, fields []flog.Field) {
	if err := a.Write(level, msg, at, fields); err != nil {
		a.opts.ErrorHandler(err)
	}
}

// Write is Log with the error returned. A non-nil error means a flush
// forced by a full buffer failed; the record itself is still buffered.
func (a *Adapter) Write(level flog.Level, msg string, at time.Time, fields []flog.Field) error {
	if !a.Enabled(level) {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.w.write(level, msg, at, a.preBound, fields); err != nil {
		return fmt.Errorf("filelog: flush %s: %w", a.w.dst, err)
	}
	return nil
}

// Flush writes everything buffered to the destination. When it fails the
// buffered text is kept for the next attempt.
func (a *Adapter) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.w.flush(); err != nil {
		return fmt.Errorf("filelog: flush %s: %w", a.w.dst, err)
	}
	return nil
}

// Close performs a final flush. The adapter stays usable afterwards.
func (a *Adapter) Close() error { return a.Flush() }

// With returns a child sharing the buffer and lock, with fields pre-encoded.
func (a *Adapter) With(fs []flog.Field) flog.Adapter {
	child := &Adapter{
		opts: a.opts,
		path: a.path,
		mu:   a.mu,
		w:    a.w,
	}
	if n := len(a.bound); n > 0 {
		child.bound = make([]flog.Field, n, n+len(fs))
		copy(child.bound, a.bound)
	}
	if len(fs) > 0 {
		child.bound = append(child.bound, fs...)
	}
	if len(child.bound) > 0 {
		child.preBound = encodeBoundText(child.bound)
	}
	return child
}

// SetMetricsCollector installs a collector shared by this adapter and its children.
func (a *Adapter) SetMetricsCollector(collector MetricsCollector) {
	if collector == nil {
		collector = &NoopMetricsCollector{}
	}
	a.mu.Lock()
	a.w.metrics = collector
	a.mu.Unlock()
}

// Stats returns a snapshot of internal counters.
func (a *Adapter) Stats() StatsSnapshot { return a.w.st.snapshot() }

// ResetStats resets internal counters.
func (a *Adapter) ResetStats() { a.w.st.reset() }

// Buffered returns how many bytes are waiting for the next flush.
func (a *Adapter) Buffered() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.w.ring.Len()
}
