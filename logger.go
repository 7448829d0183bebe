package flog

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

// Logger filters records by level, stamps them once and hands them to its
// Adapter. It is safe for concurrent use.
type Logger struct {
	adapter  Adapter
	minLevel Level
	clock    xclock.Clock
	bound    []Field // mirrors what the adapter has pre-bound; observers need it
	obs      *observerSet
}

func newLogger(cfg Config) *Logger {
	l := &Logger{
		adapter:  cfg.Adapter,
		minLevel: cfg.MinLevel,
		clock:    cfg.Clock,
		obs:      newObserverSet(cfg.Observers),
	}
	if len(cfg.Fields) > 0 {
		l.bound = append([]Field(nil), cfg.Fields...)
		l.adapter = l.adapter.With(l.bound)
	}
	return l
}

var global atomic.Pointer[Logger]

// SetGlobal registers l as the process-wide logger. Registration happens once:
// a second call returns ErrAlreadyRegistered and keeps the first logger.
func SetGlobal(l *Logger) error {
	if l == nil {
		return ErrNilLogger
	}
	if !global.CompareAndSwap(nil, l) {
		return ErrAlreadyRegistered
	}
	return nil
}

// L returns the registered logger and panics when there is none.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("flog: no logger registered; call flog.SetGlobal or an adapter's Init first")
	}
	return l
}

// Global returns the registered Logger or nil.
func Global() *Logger { return global.Load() }

// Enabled reports whether a record at level would reach the adapter. Both the
// logger's threshold and the adapter's must admit it.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.minLevel && l.adapter.Enabled(level)
}

func (l *Logger) MinLevel() Level { return l.minLevel }

func (l *Logger) Trace() *Event { return newEvent(l, LevelTrace) }
func (l *Logger) Debug() *Event { return newEvent(l, LevelDebug) }
func (l *Logger) Info() *Event  { return newEvent(l, LevelInfo) }
func (l *Logger) Warn() *Event  { return newEvent(l, LevelWarn) }
func (l *Logger) Error() *Event { return newEvent(l, LevelError) }

// Fatal records at the most severe level. It does not exit the process.
func (l *Logger) Fatal() *Event { return newEvent(l, LevelFatal) }

// Log emits msg at level without fields.
func (l *Logger) Log(level Level, msg string) {
	if l.Enabled(level) {
		l.emit(level, msg, nil)
	}
}

// Logf formats only when level is enabled.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if l.Enabled(level) {
		l.emit(level, fmt.Sprintf(format, args...), nil)
	}
}

// Flush writes out whatever the adapter buffers. Adapters that do not
// implement Flusher have nothing to flush.
func (l *Logger) Flush() error {
	if f, ok := l.adapter.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// With returns a child logger whose records carry fs after the parent's
// bound fields. The child starts with the parent's observers; observers added
// later to either one are not shared.
func (l *Logger) With(fs ...Field) *Logger {
	if len(fs) == 0 {
		return l
	}
	bound := make([]Field, 0, len(l.bound)+len(fs))
	bound = append(append(bound, l.bound...), fs...)
	return &Logger{
		adapter:  l.adapter.With(fs),
		minLevel: l.minLevel,
		clock:    l.clock,
		bound:    bound,
		obs:      l.obs.clone(),
	}
}

func (l *Logger) AddObserver(o Observer) {
	if o != nil {
		l.obs.add(o)
	}
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

// emit assumes the caller checked Enabled.
func (l *Logger) emit(level Level, msg string, fields []Field) {
	at := l.now()
	l.adapter.Log(level, msg, at, fields)

	obs := l.obs.load()
	if len(obs) == 0 {
		return
	}
	all := make([]Field, 0, len(l.bound)+len(fields))
	all = append(append(all, l.bound...), fields...)
	e := Entry{At: at, Level: level, Message: msg, Fields: all}
	for _, o := range obs {
		o.OnLog(e)
	}
}
