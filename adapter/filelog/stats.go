package filelog

import "sync/atomic"

type stats struct {
	records      atomic.Uint64
	flushes      atomic.Uint64
	flushErrors  atomic.Uint64
	bytesFlushed atomic.Uint64
	directWrites atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Records      uint64 // records accepted into the buffer (or written directly)
	Flushes      uint64 // successful flushes that wrote bytes
	FlushErrors  uint64
	BytesFlushed uint64
	DirectWrites uint64 // records too large for the buffer, written straight through
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Records:      s.records.Load(),
		Flushes:      s.flushes.Load(),
		FlushErrors:  s.flushErrors.Load(),
		BytesFlushed: s.bytesFlushed.Load(),
		DirectWrites: s.directWrites.Load(),
	}
}

func (s *stats) reset() {
	s.records.Store(0)
	s.flushes.Store(0)
	s.flushErrors.Store(0)
	s.bytesFlushed.Store(0)
	s.directWrites.Store(0)
}
