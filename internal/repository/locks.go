package repository

import "sync"

// EventLocks hands out one mutex per event id. The metadata log uses
// whole-log read-modify-write, so every mutation to the same event must
// hold that event's lock; event deletion takes the same lock so it never
// races an in-flight append. Cross-event operations share nothing.
type EventLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEventLocks() *EventLocks {
	return &EventLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *EventLocks) Lock(eventID string) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[eventID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[eventID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}
