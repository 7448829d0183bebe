package flog

import (
	"sync"
	"sync/atomic"
	"time"
)

// Entry is what an Observer sees for each emitted record.
type Entry struct {
	At      time.Time
	Level   Level
	Message string
	Fields  []Field // bound fields, then event fields; owned by the observer
}

// Observer is called synchronously after the adapter has taken the record.
// Implementations must be safe for concurrent use.
type Observer interface {
	OnLog(entry Entry)
}

type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }

// observerSet is a copy-on-write list: emit reads it without locking, add
// publishes a new slice.
type observerSet struct {
	mu   sync.Mutex
	list atomic.Pointer[[]Observer]
}

func newObserverSet(seed []Observer) *observerSet {
	s := &observerSet{}
	if len(seed) > 0 {
		list := append([]Observer(nil), seed...)
		s.list.Store(&list)
	}
	return s
}

func (s *observerSet) load() []Observer {
	if p := s.list.Load(); p != nil {
		return *p
	}
	return nil
}

func (s *observerSet) add(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.load()
	next := make([]Observer, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, o)
	s.list.Store(&next)
}

// clone gives a child logger its own set starting from the current members.
func (s *observerSet) clone() *observerSet { return newObserverSet(s.load()) }
