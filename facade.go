package flog

// Facade helpers using global Singleton logger.
// Usage: flog.Info().Str("k","v").Msg("hello")

func Trace() *Event { return L().Trace() }
func Debug() *Event { return L().Debug() }
func Info() *Event  { return L().Info() }
func Warn() *Event  { return L().Warn() }
func Error() *Event { return L().Error() }
func Fatal() *Event { return L().Fatal() }

// Flush flushes the global logger's adapter. It is a no-op when no logger
// is registered, so it is safe to defer from main unconditionally.
func Flush() error {
	l := Global()
	if l == nil {
		return nil
	}
	return l.Flush()
}
