package flog

import "errors"

var (
	ErrNoAdapter = errors.New("flog: builder has no adapter")

	// ErrAlreadyRegistered is returned when a global logger has already been set.
	// The existing registration is left untouched.
	ErrAlreadyRegistered = errors.New("flog: a global logger is already registered")

	ErrNilLogger    = errors.New("flog: nil logger")
	ErrUnknownLevel = errors.New("flog: unknown level")
)
