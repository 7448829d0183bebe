// Package filelog is a buffered file backend for flog.
//
// Records are formatted as "[<timestamp>] <message>" lines into a fixed-size
// text ring and appended to the log file when the ring cannot take the next
// record, or on Flush. The file is opened for each flush in append mode and
// closed again, so external truncation or removal is picked up.
//
//	if err := filelog.InitWithLevel("app.log", flog.LevelWarn); err != nil {
//		return err
//	}
//	defer flog.Flush()
//	flog.Warn().Str("user", "ada").Msg("quota almost used")
//
// Records lost between a failed flush and the next successful one are the
// ring's oldest bytes; Log reports such failures through Options.ErrorHandler,
// Write returns them.
package filelog
