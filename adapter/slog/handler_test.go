package slogadapter

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/flog"
	"github.com/trickstertwo/flog/adapter/filelog"
)

func TestHandler_RoutesIntoBackend(t *testing.T) {
	var out bytes.Buffer
	backend := filelog.NewWithWriter(&out, filelog.Options{MinLevel: flog.LevelInfo})
	l := slog.New(NewHandler(backend, nil))

	l.Debug("filtered")
	l.Info("hello", "count", 2, "ok", true)
	l.With("svc", "api").WithGroup("req").Warn("slow", "path", "/x", slog.Duration("took", time.Second))
	l.Error("failed", "err", errors.New("boom"))
	require.NoError(t, backend.Flush())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "] hello count=2 ok=true"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "] slow svc=api req.path=/x req.took=1s"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], `] failed err="boom"`), lines[2])
}

func TestHandler_EnabledFollowsBackend(t *testing.T) {
	backend := filelog.NewWithWriter(&bytes.Buffer{}, filelog.Options{MinLevel: flog.LevelWarn})
	h := NewHandler(backend, nil)
	ctx := context.Background()

	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestHandler_AddSource(t *testing.T) {
	var out bytes.Buffer
	backend := filelog.NewWithWriter(&out, filelog.Options{})
	l := slog.New(NewHandler(backend, &HandlerOptions{AddSource: true}))

	l.Info("where")
	require.NoError(t, backend.Flush())
	assert.Contains(t, out.String(), "source=handler_test.go:")
}

func TestHandler_InlineGroupAndEmptyAttr(t *testing.T) {
	var out bytes.Buffer
	backend := filelog.NewWithWriter(&out, filelog.Options{})
	l := slog.New(NewHandler(backend, nil))

	l.Info("grouped", slog.Group("", slog.String("a", "1")), slog.Group("g", slog.Int("b", 2)), slog.Attr{})
	require.NoError(t, backend.Flush())
	assert.True(t, strings.HasSuffix(out.String(), "] grouped a=1 g.b=2\n"), out.String())
}
