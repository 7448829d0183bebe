package filelog

import "github.com/trickstertwo/flog"

// MetricsCollector receives write metrics. Implementations must be concurrency-safe.
// Calls happen while the backend lock is held, so they should be cheap.
type MetricsCollector interface {
	LoggedMessage(level flog.Level, size int, err error)
	Flushed(size int, durMS float64, err error)
}

type NoopMetricsCollector struct{}

func (*NoopMetricsCollector) LoggedMessage(level flog.Level, size int, err error) {}
func (*NoopMetricsCollector) Flushed(size int, durMS float64, err error)         {}
