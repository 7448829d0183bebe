package slogadapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/flog"
)

// HandlerOptions tunes the bridge.
type HandlerOptions struct {
	// AddSource appends a "source" field with file:line of the log call.
	AddSource bool
}

// Handler is a slog.Handler that routes records into a flog.Adapter, so code
// written against log/slog ends up in the same backend as the facade.
type Handler struct {
	a      flog.Adapter
	opts   HandlerOptions
	prefix string // "group." for each open group
}

func NewHandler(a flog.Adapter, opts *HandlerOptions) *Handler {
	h := &Handler{a: a}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

// Use installs a slog logger backed by a as slog's default and returns it.
// slog.SetDefault also routes the standard log package through it.
func Use(a flog.Adapter, opts *HandlerOptions) *slog.Logger {
	l := slog.New(NewHandler(a, opts))
	slog.SetDefault(l)
	return l
}

// flog levels use slog's numeric scale.
func fromSlog(l slog.Level) flog.Level { return flog.Level(l) }

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return h.a.Enabled(fromSlog(l))
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]flog.Field, 0, r.NumAttrs()+1)
	r.Attrs(func(attr slog.Attr) bool {
		fields = appendAttr(fields, h.prefix, attr)
		return true
	})
	if h.opts.AddSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		fields = append(fields, flog.FStr("source", fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)))
	}
	at := r.Time
	if at.IsZero() {
		at = xclock.Now()
	}
	h.a.Log(fromSlog(r.Level), r.Message, at, fields)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	fields := make([]flog.Field, 0, len(attrs))
	for _, attr := range attrs {
		fields = appendAttr(fields, h.prefix, attr)
	}
	child := *h
	child.a = h.a.With(fields)
	return &child
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	child := *h
	child.prefix = h.prefix + name + "."
	return &child
}

func appendAttr(dst []flog.Field, prefix string, attr slog.Attr) []flog.Field {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	key := prefix + attr.Key
	v := attr.Value
	switch v.Kind() {
	case slog.KindString:
		return append(dst, flog.FStr(key, v.String()))
	case slog.KindInt64:
		return append(dst, flog.FInt(key, v.Int64()))
	case slog.KindUint64:
		return append(dst, flog.FUint(key, v.Uint64()))
	case slog.KindFloat64:
		return append(dst, flog.FFloat(key, v.Float64()))
	case slog.KindBool:
		return append(dst, flog.FBool(key, v.Bool()))
	case slog.KindDuration:
		return append(dst, flog.FDur(key, v.Duration()))
	case slog.KindTime:
		return append(dst, flog.FTime(key, v.Time()))
	case slog.KindGroup:
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = key + "."
		}
		for _, ga := range v.Group() {
			dst = appendAttr(dst, groupPrefix, ga)
		}
		return dst
	default:
		if err, ok := v.Any().(error); ok {
			return append(dst, flog.FErr(key, err))
		}
		return append(dst, flog.FAny(key, v.Any()))
	}
}
