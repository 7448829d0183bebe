package filelog

import (
	"io"
	"os"
	"time"

	"github.com/trickstertwo/flog"
	"github.com/trickstertwo/flog/textring"
)

// destination receives whole flushes. Implementations either write all of p
// or return an error.
type destination interface {
	writeAll(p []byte) error
	String() string
}

// fileDestination opens the file per flush: create if absent, append only.
type fileDestination struct {
	path string
	mode os.FileMode
}

func (d *fileDestination) writeAll(p []byte) error {
	f, err := os.OpenFile(d.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, d.mode)
	if err != nil {
		return err
	}
	if _, err := f.Write(p); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (d *fileDestination) String() string { return d.path }

type streamDestination struct{ w io.Writer }

func (d *streamDestination) writeAll(p []byte) error {
	n, err := d.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return err
}

func (d *streamDestination) String() string { return "writer" }

// recordWriter formats records into a ring and moves the ring to its
// destination when the next record would not fit or on demand. It is not safe
// for concurrent use; the Adapter serializes access.
type recordWriter struct {
	dst     destination
	opts    *Options
	ring    *textring.Buffer
	stamp   [64]byte
	rec     buffer
	st      stats
	metrics MetricsCollector
}

func newRecordWriter(dst destination, opts *Options) *recordWriter {
	return &recordWriter{
		dst:     dst,
		opts:    opts,
		ring:    textring.New(opts.BufferSize),
		rec:     newBuffer(opts.RecordBufferSize),
		metrics: &NoopMetricsCollector{},
	}
}

// write appends one formatted record. When the record does not fit in the
// remaining space the ring is flushed first, exactly once. A failed flush does
// not drop the record: it is appended anyway (possibly overwriting the oldest
// pending bytes) and the flush error is returned.
func (w *recordWriter) write(level flog.Level, msg string, at time.Time, boundPrefix []byte, fields []flog.Field) error {
	stamp := appendStamp(w.stamp[:0], at, w.opts)
	w.rec.reset()
	formatRecord(&w.rec, stamp, msg, boundPrefix, fields)
	rec := w.rec.b

	var err error
	if len(rec) > w.ring.SpaceRemaining() {
		err = w.flush()
		if err == nil && len(rec) > w.ring.Cap() {
			// Would wrap onto itself even in an empty ring.
			err = w.dst.writeAll(rec)
			if err == nil {
				w.st.directWrites.Add(1)
				w.st.records.Add(1)
				w.metrics.LoggedMessage(level, len(rec), nil)
				return nil
			}
			w.st.flushErrors.Add(1)
		}
	}
	_, _ = w.ring.Write(rec)
	w.st.records.Add(1)
	w.metrics.LoggedMessage(level, len(rec), err)
	return err
}

// flush writes the pending text to the destination and clears the ring. On
// failure the ring is left as it was so a later flush can retry.
func (w *recordWriter) flush() error {
	if w.ring.IsEmpty() {
		return nil
	}
	start := time.Now()
	data := w.ring.Bytes()
	err := w.dst.writeAll(data)
	durMS := float64(time.Since(start)) / float64(time.Millisecond)
	w.metrics.Flushed(len(data), durMS, err)
	if err != nil {
		w.st.flushErrors.Add(1)
		return err
	}
	w.st.flushes.Add(1)
	w.st.bytesFlushed.Add(uint64(len(data)))
	w.ring.Clear()
	return nil
}
