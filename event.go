package flog

import (
	"fmt"
	"sync"
	"time"
)

// Event accumulates fields for one record and emits it on Msg.
//
//	flog.Info().Str("file", path).Int("bytes", n).Msg("flushed")
//
// A disabled level yields a nil *Event; every method is a no-op on nil, so
// the chain costs nothing and Msgf never formats.
type Event struct {
	l      *Logger
	level  Level
	fields []Field
}

const maxPooledFields = 64

var eventPool = sync.Pool{
	New: func() any { return &Event{fields: make([]Field, 0, 8)} },
}

func newEvent(l *Logger, level Level) *Event {
	if !l.Enabled(level) {
		return nil
	}
	e := eventPool.Get().(*Event)
	e.l, e.level = l, level
	return e
}

func (e *Event) release() {
	if cap(e.fields) > maxPooledFields {
		e.fields = make([]Field, 0, 8)
	}
	clear(e.fields)
	e.fields = e.fields[:0]
	e.l = nil
	eventPool.Put(e)
}

func (e *Event) add(f Field) *Event {
	if e != nil {
		e.fields = append(e.fields, f)
	}
	return e
}

func (e *Event) Str(k, v string) *Event               { return e.add(FStr(k, v)) }
func (e *Event) Int(k string, v int) *Event           { return e.add(FInt(k, int64(v))) }
func (e *Event) Int64(k string, v int64) *Event       { return e.add(FInt(k, v)) }
func (e *Event) Uint64(k string, v uint64) *Event     { return e.add(FUint(k, v)) }
func (e *Event) Float64(k string, v float64) *Event   { return e.add(FFloat(k, v)) }
func (e *Event) Bool(k string, v bool) *Event         { return e.add(FBool(k, v)) }
func (e *Event) Dur(k string, v time.Duration) *Event { return e.add(FDur(k, v)) }
func (e *Event) Time(k string, v time.Time) *Event    { return e.add(FTime(k, v)) }
func (e *Event) Bytes(k string, v []byte) *Event      { return e.add(FBytes(k, v)) }
func (e *Event) Any(k string, v any) *Event           { return e.add(FAny(k, v)) }

// Stringer calls v.String only when the event is enabled.
func (e *Event) Stringer(k string, v fmt.Stringer) *Event {
	if e == nil {
		return nil
	}
	if v == nil {
		return e.add(FAny(k, nil))
	}
	return e.add(FStr(k, v.String()))
}

// Err adds err under "error"; nil errors are skipped.
func (e *Event) Err(err error) *Event {
	if err == nil {
		return e
	}
	return e.add(FErr("error", err))
}

// Fields appends prebuilt fields.
func (e *Event) Fields(fs ...Field) *Event {
	if e != nil {
		e.fields = append(e.fields, fs...)
	}
	return e
}

// Msg emits the event. The Event must not be used afterwards.
func (e *Event) Msg(msg string) {
	if e == nil {
		return
	}
	e.l.emit(e.level, msg, e.fields)
	e.release()
}

func (e *Event) Msgf(format string, args ...any) {
	if e == nil {
		return
	}
	e.Msg(fmt.Sprintf(format, args...))
}

// Send emits the event with an empty message.
func (e *Event) Send() { e.Msg("") }
