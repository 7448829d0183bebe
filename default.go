package flog

import (
	"io"
	"os"
)

// defaultAdapterFactory is set by an adapter package (e.g., adapter/filelog)
// in its init() to avoid import cycles. Default() uses this to build a logger.
var defaultAdapterFactory func(w io.Writer) Adapter

// RegisterDefaultAdapterFactory registers the constructor used by flog.Default().
// Adapters should call this from init() to avoid import cycles.
// Example (in adapter/filelog):
//
//	func init() {
//	  flog.RegisterDefaultAdapterFactory(func(w io.Writer) flog.Adapter {
//	    return filelog.NewWithWriter(w, filelog.Options{})
//	  })
//	}
func RegisterDefaultAdapterFactory(f func(io.Writer) Adapter) {
	defaultAdapterFactory = f
}

// Default creates a logger using the registered adapter factory.
// It writes to os.Stderr and passes every level through to the adapter, which
// applies its own threshold. E.g. side import github.com/trickstertwo/flog/adapter/filelog
// to auto-register the buffered backend. Panics if no factory is registered.
func Default() *Logger {
	if defaultAdapterFactory == nil {
		panic("flog: no default adapter registered. Import adapter/filelog or call flog.RegisterDefaultAdapterFactory")
	}
	adapter := defaultAdapterFactory(os.Stderr)
	cfg := Config{
		Adapter:  adapter,
		MinLevel: LevelTrace,
	}
	return newLogger(cfg)
}

// New creates a default logger (via Default()) and registers it as global.
func New() (*Logger, error) {
	l := Default()
	if err := SetGlobal(l); err != nil {
		return nil, err
	}
	return l, nil
}

// UseAdapter registers the given adapter as the global logger with the provided min level.
// It builds the logger, sets it as global, and returns it. Single line, explicit, no envs.
func UseAdapter(a Adapter, min Level, observers ...Observer) (*Logger, error) {
	b := NewBuilder().
		WithAdapter(a).
		WithMinLevel(min)
	for _, o := range observers {
		b.AddObserver(o)
	}
	l, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := SetGlobal(l); err != nil {
		return nil, err
	}
	return l, nil
}
