package flog

import "time"

// Adapter is a logging backend. The Logger filters, stamps and forwards;
// the adapter decides how a record is rendered and where it goes.
type Adapter interface {
	// Enabled reports whether a record at level would be emitted. It must not
	// have side effects.
	Enabled(level Level) bool

	// Log receives the one timestamp the Logger read for this record. fields
	// is only valid for the duration of the call.
	Log(level Level, msg string, at time.Time, fields []Field)

	// With returns a child that prepends fields to every record. The receiver
	// is left unchanged.
	With(fields []Field) Adapter
}

// Flusher is implemented by adapters that hold records in memory.
// Logger.Flush and the package-level Flush call it; adapters without buffering
// need not implement it.
type Flusher interface {
	Flush() error
}
