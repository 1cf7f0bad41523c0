// Package ratelimit provides an in-process sliding-window attempt store for
// the rate limiting middleware. The service keeps no external state, so a
// mutex-guarded map is sufficient.
package ratelimit

import (
	"sync"
	"time"
)

// MemoryStore tracks attempt timestamps per identifier.
type MemoryStore struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
}

// NewMemoryStore builds an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{attempts: make(map[string][]time.Time)}
}

// CountAttempts returns the number of attempts within the window ending at reference.
func (s *MemoryStore) CountAttempts(identifier string, window time.Duration, reference time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trimLocked(identifier, window, reference)
	return len(s.attempts[identifier])
}

// RecordAttempt appends an attempt timestamp for the identifier.
func (s *MemoryStore) RecordAttempt(identifier string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts[identifier] = append(s.attempts[identifier], at)
}

// OldestAttempt returns the earliest attempt still inside the window, if any.
func (s *MemoryStore) OldestAttempt(identifier string, window time.Duration, reference time.Time) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trimLocked(identifier, window, reference)
	entries := s.attempts[identifier]
	if len(entries) == 0 {
		return time.Time{}, false
	}
	return entries[0], true
}

func (s *MemoryStore) trimLocked(identifier string, window time.Duration, reference time.Time) {
	cutoff := reference.Add(-window)
	entries := s.attempts[identifier]

	kept := entries[:0]
	for _, at := range entries {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}

	if len(kept) == 0 {
		delete(s.attempts, identifier)
		return
	}
	s.attempts[identifier] = kept
}
