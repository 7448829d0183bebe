// Package flog is a small logging facade: callers log through named levels
// and a single registered Adapter decides what reaches the output.
//
// The facade answers two questions for every record, "is this level enabled?"
// and "emit this record", and exposes Flush for adapters that buffer. One logger
// is registered per process with SetGlobal (or UseAdapter); a second
// registration fails with ErrAlreadyRegistered instead of replacing the first.
//
// The buffered file backend lives in adapter/filelog. Bridges in adapter/slog,
// adapter/zap and adapter/zerolog route those libraries into any Adapter.
package flog
