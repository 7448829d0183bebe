package filelog

import (
	"errors"
	"io"
	"os"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/flog"
)

var ErrNoDestination = errors.New("filelog: config needs a Path or a Writer")

// Config is an explicit, code-first configuration for the file backend.
// Use provides a single-call setup with no envs or side-imports.
type Config struct {
	// Path is the log file. Writer is used instead when Path is empty.
	Path   string
	Writer io.Writer

	// Core behavior (mirrors Options)
	MinLevel         flog.Level
	ErrorHandler     ErrorHandler
	TimeFormat       string
	UTC              bool
	BufferSize       int
	RecordBufferSize int
	FileMode         os.FileMode

	Clock     xclock.Clock     // optional; defaults to xclock.Default()
	Metrics   MetricsCollector // optional observability
	Observers []flog.Observer
}

func (cfg Config) options() Options {
	return Options{
		MinLevel:         cfg.MinLevel,
		ErrorHandler:     cfg.ErrorHandler,
		TimeFormat:       cfg.TimeFormat,
		UTC:              cfg.UTC,
		BufferSize:       cfg.BufferSize,
		RecordBufferSize: cfg.RecordBufferSize,
		FileMode:         cfg.FileMode,
	}
}

// NewLogger builds a logger backed by a new Adapter without registering it.
func NewLogger(cfg Config) (*flog.Logger, *Adapter, error) {
	var ad *Adapter
	switch {
	case cfg.Path != "":
		ad = New(cfg.Path, cfg.options())
	case cfg.Writer != nil:
		ad = NewWithWriter(cfg.Writer, cfg.options())
	default:
		return nil, nil, ErrNoDestination
	}
	if cfg.Metrics != nil {
		ad.SetMetricsCollector(cfg.Metrics)
	}

	// Keep the facade's filter and the adapter's filter aligned.
	b := flog.NewBuilder().
		WithAdapter(ad).
		WithMinLevel(cfg.MinLevel).
		WithClock(cfg.Clock)
	for _, o := range cfg.Observers {
		b.AddObserver(o)
	}
	l, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	return l, ad, nil
}

// Use builds a logger from cfg and registers it as the global logger.
// It fails with flog.ErrAlreadyRegistered when one is already registered.
func Use(cfg Config) (*flog.Logger, error) {
	l, _, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	if err := flog.SetGlobal(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Init registers a file backend for path that writes every level.
func Init(path string) error {
	return InitWithLevel(path, flog.LevelTrace)
}

// InitWithLevel registers a file backend for path that writes level and
// anything more severe.
func InitWithLevel(path string, level flog.Level) error {
	_, err := Use(Config{Path: path, MinLevel: level})
	return err
}
