package filelog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/flog"
)

var (
	testAt    = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	testStamp = "[2025-01-01T00:00:00Z]"
	lineRE    = regexp.MustCompile(`^\[[^\]]+\] .*$`)
)

func record(msg string) string { return testStamp + " " + msg + "\n" }

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestTextLine_Shape(t *testing.T) {
	var out bytes.Buffer
	a := NewWithWriter(&out, Options{MinLevel: flog.LevelTrace})

	a.Log(flog.LevelInfo, "hello", testAt, nil)
	assert.Empty(t, out.String(), "records stay buffered until flush")

	require.NoError(t, a.Flush())
	assert.Equal(t, record("hello"), out.String())
}

func TestTextLine_MultiLineStampsEachLine(t *testing.T) {
	var out bytes.Buffer
	a := NewWithWriter(&out, Options{})

	a.Log(flog.LevelInfo, "first\r\nsecond\nthird\n", testAt, nil)
	require.NoError(t, a.Flush())

	assert.Equal(t, record("first")+record("second")+record("third"), out.String())
}

func TestTextLine_FieldsFollowMessage(t *testing.T) {
	var out bytes.Buffer
	a := NewWithWriter(&out, Options{})
	child := a.With([]flog.Field{flog.FStr("svc", "api")})

	child.Log(flog.LevelInfo, "done", testAt, []flog.Field{
		flog.FInt("count", 2),
		flog.FBool("ok", true),
		flog.FDur("took", time.Millisecond),
		flog.FStr("note", "two words\nsplit"),
		flog.FErr("error", errors.New("boom")),
	})
	require.NoError(t, child.(*Adapter).Flush())

	want := testStamp + ` done svc=api count=2 ok=true took=1ms note="two words\nsplit" error="boom"` + "\n"
	assert.Equal(t, want, out.String())
}

func TestTextLine_InvalidUTF8Replaced(t *testing.T) {
	var out bytes.Buffer
	a := NewWithWriter(&out, Options{})

	a.Log(flog.LevelInfo, "bad \xff byte", testAt, nil)
	require.NoError(t, a.Flush())
	assert.Equal(t, record("bad � byte"), out.String())
}

func TestTextLine_TimeFormatAndUTC(t *testing.T) {
	var out bytes.Buffer
	a := NewWithWriter(&out, Options{TimeFormat: "2006-01-02 15:04:05 -07:00", UTC: true})

	at := time.Date(2025, 1, 1, 2, 0, 0, 0, time.FixedZone("EET", 2*60*60))
	a.Log(flog.LevelInfo, "x", at, nil)
	require.NoError(t, a.Flush())
	assert.Equal(t, "[2025-01-01 00:00:00 +00:00] x\n", out.String())
}

func TestWrite_FlushesOnceBeforeOverflow(t *testing.T) {
	var out bytes.Buffer
	a := NewWithWriter(&out, Options{BufferSize: 64})

	first := record("first")
	second := record("second record!!")
	require.Less(t, len(first), 64)
	require.Greater(t, len(first)+len(second), 64)

	require.NoError(t, a.Write(flog.LevelInfo, "first", testAt, nil))
	require.NoError(t, a.Write(flog.LevelInfo, "second record!!", testAt, nil))

	assert.Equal(t, first, out.String())
	assert.Equal(t, len(second), a.Buffered())
	assert.Equal(t, uint64(1), a.Stats().Flushes)

	require.NoError(t, a.Flush())
	assert.Equal(t, first+second, out.String())
}

func TestWrite_OversizeRecordBypassesBuffer(t *testing.T) {
	var out bytes.Buffer
	a := NewWithWriter(&out, Options{BufferSize: 32})

	long := strings.Repeat("x", 100)
	require.NoError(t, a.Write(flog.LevelInfo, "a", testAt, nil))
	require.NoError(t, a.Write(flog.LevelInfo, long, testAt, nil))

	assert.Equal(t, record("a")+record(long), out.String())
	assert.Equal(t, 0, a.Buffered())

	st := a.Stats()
	assert.Equal(t, uint64(1), st.Flushes)
	assert.Equal(t, uint64(1), st.DirectWrites)
	assert.Equal(t, uint64(2), st.Records)
}

func TestSeverityFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	a := New(path, Options{MinLevel: flog.LevelWarn})

	assert.True(t, a.Enabled(flog.LevelError))
	assert.True(t, a.Enabled(flog.LevelWarn))
	assert.False(t, a.Enabled(flog.LevelInfo))

	a.Log(flog.LevelError, "error", testAt, nil)
	a.Log(flog.LevelWarn, "warn", testAt, nil)
	a.Log(flog.LevelInfo, "info", testAt, nil)
	require.NoError(t, a.Flush())

	assert.Equal(t, record("error")+record("warn"), readFile(t, path))
}

func TestFlush_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o644))

	a := New(path, Options{})
	a.Log(flog.LevelInfo, "next", testAt, nil)
	require.NoError(t, a.Close())

	b := New(path, Options{})
	b.Log(flog.LevelInfo, "after restart", testAt, nil)
	require.NoError(t, b.Close())

	assert.Equal(t, "existing\n"+record("next")+record("after restart"), readFile(t, path))
}

func TestFlush_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	a := New(path, Options{})

	a.Log(flog.LevelInfo, "once", testAt, nil)
	require.NoError(t, a.Flush())
	require.NoError(t, a.Flush())

	assert.Equal(t, record("once"), readFile(t, path))
	assert.Equal(t, uint64(1), a.Stats().Flushes)
}

func TestFlush_EmptyDoesNoIO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	a := New(path, Options{})

	require.NoError(t, a.Flush())
	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestFlush_FailureKeepsBuffer(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	path := filepath.Join(dir, "app.log")
	a := New(path, Options{})

	a.Log(flog.LevelInfo, "kept", testAt, nil)
	err := a.Flush()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, len(record("kept")), a.Buffered())
	assert.Equal(t, uint64(1), a.Stats().FlushErrors)

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, a.Flush())
	assert.Equal(t, record("kept"), readFile(t, path))
	assert.Equal(t, 0, a.Buffered())
}

func TestLog_ForcedFlushErrorGoesToHandler(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	path := filepath.Join(dir, "app.log")

	var got []error
	a := New(path, Options{BufferSize: 64, ErrorHandler: func(err error) { got = append(got, err) }})

	a.Log(flog.LevelInfo, "first", testAt, nil)
	assert.Empty(t, got)
	a.Log(flog.LevelInfo, "second record!!", testAt, nil)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Error(), path)

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, a.Flush())
	assert.True(t, strings.HasSuffix(readFile(t, path), record("second record!!")))
}

func TestConcurrentLogging(t *testing.T) {
	const goroutines, perG = 8, 250

	path := filepath.Join(t.TempDir(), "app.log")
	a := New(path, Options{MinLevel: flog.LevelTrace, BufferSize: 1024})

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				a.Log(flog.LevelInfo, fmt.Sprintf("g%d-m%d", g, i), time.Now(), nil)
			}
		}(g)
	}
	wg.Wait()
	require.NoError(t, a.Flush())

	lines := strings.Split(strings.TrimSuffix(readFile(t, path), "\n"), "\n")
	require.Len(t, lines, goroutines*perG)

	msgs := make([]string, 0, len(lines))
	for _, line := range lines {
		require.Regexp(t, lineRE, line)
		_, msg, ok := strings.Cut(line, "] ")
		require.True(t, ok, line)
		msgs = append(msgs, msg)
	}
	want := make([]string, 0, goroutines*perG)
	for g := 0; g < goroutines; g++ {
		for i := 0; i < perG; i++ {
			want = append(want, fmt.Sprintf("g%d-m%d", g, i))
		}
	}
	sort.Strings(msgs)
	sort.Strings(want)
	assert.Equal(t, want, msgs)
	assert.Zero(t, a.Stats().FlushErrors)
}

type countingMetrics struct {
	mu      sync.Mutex
	logged  int
	flushed int
	bytes   int
}

func (m *countingMetrics) LoggedMessage(level flog.Level, size int, err error) {
	m.mu.Lock()
	m.logged++
	m.mu.Unlock()
}

func (m *countingMetrics) Flushed(size int, durMS float64, err error) {
	m.mu.Lock()
	m.flushed++
	m.bytes += size
	m.mu.Unlock()
}

func TestMetricsCollector(t *testing.T) {
	var out bytes.Buffer
	a := NewWithWriter(&out, Options{})
	m := &countingMetrics{}
	a.SetMetricsCollector(m)

	a.Log(flog.LevelInfo, "one", testAt, nil)
	a.Log(flog.LevelInfo, "two", testAt, nil)
	require.NoError(t, a.Flush())

	assert.Equal(t, 2, m.logged)
	assert.Equal(t, 1, m.flushed)
	assert.Equal(t, out.Len(), m.bytes)

	a.ResetStats()
	assert.Equal(t, StatsSnapshot{}, a.Stats())
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("FLOG_MIN_LEVEL", "")
	t.Setenv("FLOG_LEVEL", "warn")
	t.Setenv("FLOG_TIME_FORMAT", time.RFC1123Z)
	t.Setenv("FLOG_UTC", "1")

	opts := optionsFromEnv()
	assert.Equal(t, flog.LevelWarn, opts.MinLevel)
	assert.Equal(t, time.RFC1123Z, opts.TimeFormat)
	assert.True(t, opts.UTC)
}

func TestNewLogger_NoDestination(t *testing.T) {
	_, _, err := NewLogger(Config{})
	assert.ErrorIs(t, err, ErrNoDestination)
}

// The only test in this package that registers the global logger.
func TestInit_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.log")

	require.NoError(t, Init(path))
	flog.Trace().Msg("hello")
	require.NoError(t, flog.Flush())

	content := readFile(t, path)
	assert.Regexp(t, regexp.MustCompile(`^\[[^\]]+\] hello\n$`), content)

	err := InitWithLevel(path, flog.LevelWarn)
	assert.ErrorIs(t, err, flog.ErrAlreadyRegistered)
}
