package filelog

import (
	"io"
	"testing"
	"time"

	"github.com/trickstertwo/flog"
)

func BenchmarkAdapter_NoFields(b *testing.B) {
	a := NewWithWriter(io.Discard, Options{})
	at := time.Now()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(flog.LevelInfo, "ok", at, nil)
	}
}

func BenchmarkAdapter_5Fields(b *testing.B) {
	a := NewWithWriter(io.Discard, Options{})
	at := time.Date(2024, 12, 31, 23, 59, 59, 1, time.UTC)
	fields := []flog.Field{
		flog.FStr("a", "b"),
		flog.FInt("i", 42),
		flog.FBool("ok", true),
		flog.FDur("dur", time.Millisecond),
		flog.FFloat("f", 3.14),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(flog.LevelInfo, "bench", at, fields)
	}
}

func BenchmarkAdapter_WithBound(b *testing.B) {
	a := NewWithWriter(io.Discard, Options{})
	a2 := a.With([]flog.Field{
		flog.FStr("svc", "api"),
		flog.FStr("ver", "1.0.0"),
	})
	at := time.Unix(0, 0).UTC()
	fields := []flog.Field{
		flog.FStr("path", "/healthz"),
		flog.FInt("code", 200),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a2.Log(flog.LevelInfo, "probe", at, fields)
	}
}

func BenchmarkAdapter_Parallel(b *testing.B) {
	a := NewWithWriter(io.Discard, Options{})
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		at := time.Now()
		for pb.Next() {
			a.Log(flog.LevelInfo, "parallel", at, nil)
		}
	})
}
