package zapadapter

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/flog"
)

// core is a zapcore.Core writing into a flog.Adapter. Filtering is delegated
// to the adapter, so a zap logger built on it honours the backend threshold.
type core struct {
	a flog.Adapter
}

// NewCore wraps a as a zapcore.Core.
func NewCore(a flog.Adapter) zapcore.Core { return &core{a: a} }

// New returns a zap.Logger whose output goes to a.
func New(a flog.Adapter, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(a), opts...)
}

func (c *core) Enabled(l zapcore.Level) bool { return c.a.Enabled(mapLevel(l)) }

func (c *core) With(fs []zapcore.Field) zapcore.Core {
	if len(fs) == 0 {
		return c
	}
	return &core{a: c.a.With(convertFields(fs))}
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fs []zapcore.Field) error {
	fields := convertFields(fs)
	if ent.LoggerName != "" {
		fields = append(fields, flog.FStr("logger", ent.LoggerName))
	}
	if ent.Caller.Defined {
		fields = append(fields, flog.FStr("caller", ent.Caller.TrimmedPath()))
	}
	msg := ent.Message
	if ent.Stack != "" {
		msg += "\n" + ent.Stack
	}
	c.a.Log(mapLevel(ent.Level), msg, ent.Time, fields)

	// zap may exit or panic right after this entry; get it on disk first.
	if ent.Level > zapcore.ErrorLevel {
		return c.Sync()
	}
	return nil
}

// Sync flushes the adapter when it buffers.
func (c *core) Sync() error {
	if f, ok := c.a.(flog.Flusher); ok {
		return f.Flush()
	}
	return nil
}

func mapLevel(l zapcore.Level) flog.Level {
	switch {
	case l < zapcore.DebugLevel:
		return flog.LevelTrace
	case l == zapcore.DebugLevel:
		return flog.LevelDebug
	case l == zapcore.InfoLevel:
		return flog.LevelInfo
	case l == zapcore.WarnLevel:
		return flog.LevelWarn
	case l == zapcore.ErrorLevel:
		return flog.LevelError
	default: // DPanic, Panic, Fatal
		return flog.LevelFatal
	}
}

func convertFields(fs []zapcore.Field) []flog.Field {
	out := make([]flog.Field, 0, len(fs))
	for i := range fs {
		out = appendField(out, &fs[i])
	}
	return out
}

func appendField(dst []flog.Field, f *zapcore.Field) []flog.Field {
	switch f.Type {
	case zapcore.SkipType:
		return dst
	case zapcore.StringType:
		return append(dst, flog.FStr(f.Key, f.String))
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
		return append(dst, flog.FInt(f.Key, f.Integer))
	case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type, zapcore.UintptrType:
		return append(dst, flog.FUint(f.Key, uint64(f.Integer)))
	case zapcore.Float64Type:
		return append(dst, flog.FFloat(f.Key, math.Float64frombits(uint64(f.Integer))))
	case zapcore.Float32Type:
		return append(dst, flog.FFloat(f.Key, float64(math.Float32frombits(uint32(f.Integer)))))
	case zapcore.BoolType:
		return append(dst, flog.FBool(f.Key, f.Integer == 1))
	case zapcore.DurationType:
		return append(dst, flog.FDur(f.Key, time.Duration(f.Integer)))
	case zapcore.TimeType:
		t := time.Unix(0, f.Integer)
		if loc, ok := f.Interface.(*time.Location); ok && loc != nil {
			t = t.In(loc)
		}
		return append(dst, flog.FTime(f.Key, t))
	case zapcore.TimeFullType:
		if t, ok := f.Interface.(time.Time); ok {
			return append(dst, flog.FTime(f.Key, t))
		}
	case zapcore.ErrorType:
		if err, ok := f.Interface.(error); ok {
			return append(dst, flog.FErr(f.Key, err))
		}
	case zapcore.StringerType:
		if s, ok := f.Interface.(fmt.Stringer); ok {
			return append(dst, flog.FStr(f.Key, s.String()))
		}
	case zapcore.ByteStringType:
		if b, ok := f.Interface.([]byte); ok {
			return append(dst, flog.FStr(f.Key, string(b)))
		}
	case zapcore.BinaryType:
		if b, ok := f.Interface.([]byte); ok {
			return append(dst, flog.FBytes(f.Key, b))
		}
	}
	return appendEncoded(dst, f)
}

// appendEncoded handles the remaining field types (objects, arrays,
// reflected values) through zap's own map encoder.
func appendEncoded(dst []flog.Field, f *zapcore.Field) []flog.Field {
	enc := zapcore.NewMapObjectEncoder()
	f.AddTo(enc)
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dst = append(dst, flog.FAny(k, enc.Fields[k]))
	}
	return dst
}
