package zerologadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/flog"
)

// LevelWriter is a zerolog.LevelWriter that decodes each JSON event zerolog
// produces and re-emits it through a flog.Adapter.
type LevelWriter struct {
	a flog.Adapter
}

var _ zerolog.LevelWriter = (*LevelWriter)(nil)

func NewLevelWriter(a flog.Adapter) *LevelWriter { return &LevelWriter{a: a} }

// New returns a zerolog.Logger at min that timestamps events and writes them
// into a.
func New(a flog.Adapter, min flog.Level) zerolog.Logger {
	return zerolog.New(NewLevelWriter(a)).
		Level(toZerolog(min)).
		With().Timestamp().Logger()
}

// Write handles events without a known level (zerolog.Logger.Write, or a
// writer used outside a Logger). The level is taken from the payload.
func (w *LevelWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

func (w *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	ev, ok := decode(p)
	if !ok {
		level := fromZerolog(l)
		if w.a.Enabled(level) {
			w.a.Log(level, string(bytes.TrimRight(p, "\r\n")), xclock.Now(), nil)
		}
		return len(p), nil
	}

	if l == zerolog.NoLevel {
		if s, ok := ev[zerolog.LevelFieldName].(string); ok {
			if parsed, err := zerolog.ParseLevel(s); err == nil {
				l = parsed
			}
		}
	}
	level := fromZerolog(l)
	if !w.a.Enabled(level) {
		return len(p), nil
	}

	msg, _ := ev[zerolog.MessageFieldName].(string)
	at := eventTime(ev)
	delete(ev, zerolog.MessageFieldName)
	delete(ev, zerolog.LevelFieldName)
	delete(ev, zerolog.TimestampFieldName)

	w.a.Log(level, msg, at, toFields(ev))

	// zerolog exits or panics after Fatal/Panic events.
	if l == zerolog.FatalLevel || l == zerolog.PanicLevel {
		w.Flush()
	}
	return len(p), nil
}

// Flush flushes the adapter when it buffers.
func (w *LevelWriter) Flush() error {
	if f, ok := w.a.(flog.Flusher); ok {
		return f.Flush()
	}
	return nil
}

func decode(p []byte) (map[string]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	var ev map[string]any
	if err := dec.Decode(&ev); err != nil || ev == nil {
		return nil, false
	}
	// Trailing garbage means this was not a single zerolog event.
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return ev, true
}

func eventTime(ev map[string]any) time.Time {
	if s, ok := ev[zerolog.TimestampFieldName].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t
		}
	}
	return xclock.Now()
}

func toFields(ev map[string]any) []flog.Field {
	if len(ev) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ev))
	for k := range ev {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]flog.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, toField(k, ev[k]))
	}
	return fields
}

func toField(k string, v any) flog.Field {
	switch vv := v.(type) {
	case string:
		return flog.FStr(k, vv)
	case bool:
		return flog.FBool(k, vv)
	case json.Number:
		if i, err := vv.Int64(); err == nil {
			return flog.FInt(k, i)
		}
		if f, err := vv.Float64(); err == nil {
			return flog.FFloat(k, f)
		}
		return flog.FStr(k, vv.String())
	case nil:
		return flog.FAny(k, nil)
	default:
		b, err := json.Marshal(vv)
		if err != nil {
			return flog.FAny(k, vv)
		}
		return flog.FStr(k, string(b))
	}
}

func fromZerolog(l zerolog.Level) flog.Level {
	switch l {
	case zerolog.TraceLevel:
		return flog.LevelTrace
	case zerolog.DebugLevel:
		return flog.LevelDebug
	case zerolog.WarnLevel:
		return flog.LevelWarn
	case zerolog.ErrorLevel:
		return flog.LevelError
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return flog.LevelFatal
	default:
		return flog.LevelInfo
	}
}

func toZerolog(l flog.Level) zerolog.Level {
	switch {
	case l <= flog.LevelTrace:
		return zerolog.TraceLevel
	case l <= flog.LevelDebug:
		return zerolog.DebugLevel
	case l <= flog.LevelInfo:
		return zerolog.InfoLevel
	case l <= flog.LevelWarn:
		return zerolog.WarnLevel
	case l <= flog.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}
