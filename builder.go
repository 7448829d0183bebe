package flog

import "github.com/trickstertwo/xclock"

// Config holds everything needed to build a Logger.
type Config struct {
	Adapter   Adapter
	MinLevel  Level
	Observers []Observer

	// Fields are bound to every record, as if passed to Logger.With.
	Fields []Field

	// Clock stamps records; nil reads xclock's process default at emit time.
	Clock xclock.Clock
}

// Builder assembles a Config step by step. NewBuilder starts at LevelInfo.
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{MinLevel: LevelInfo}}
}

func (b *Builder) WithAdapter(a Adapter) *Builder {
	b.cfg.Adapter = a
	return b
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = l
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) WithFields(fs ...Field) *Builder {
	b.cfg.Fields = append(b.cfg.Fields, fs...)
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	if o != nil {
		b.cfg.Observers = append(b.cfg.Observers, o)
	}
	return b
}

// Build returns ErrNoAdapter when no adapter was set. The builder can be
// reused; later changes do not affect loggers already built.
func (b *Builder) Build() (*Logger, error) {
	if b.cfg.Adapter == nil {
		return nil, ErrNoAdapter
	}
	return newLogger(b.cfg), nil
}
