package ratelimit

import (
	"testing"
	"time"
)

func TestMemoryStoreSlidingWindow(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	window := time.Minute

	if got := store.CountAttempts("ip", window, now); got != 0 {
		t.Fatalf("expected 0 attempts, got %d", got)
	}

	store.RecordAttempt("ip", now.Add(-90*time.Second))
	store.RecordAttempt("ip", now.Add(-30*time.Second))
	store.RecordAttempt("ip", now.Add(-10*time.Second))

	if got := store.CountAttempts("ip", window, now); got != 2 {
		t.Fatalf("expected 2 attempts inside window, got %d", got)
	}

	oldest, ok := store.OldestAttempt("ip", window, now)
	if !ok {
		t.Fatal("expected an oldest attempt")
	}
	if want := now.Add(-30 * time.Second); !oldest.Equal(want) {
		t.Fatalf("oldest = %v, want %v", oldest, want)
	}
}

func TestMemoryStoreIsolatesIdentifiers(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()

	store.RecordAttempt("a", now)

	if got := store.CountAttempts("b", time.Minute, now); got != 0 {
		t.Fatalf("identifiers must be isolated, got %d", got)
	}
}

func TestMemoryStoreDropsEmptyIdentifiers(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()

	store.RecordAttempt("ip", now.Add(-2*time.Minute))

	if got := store.CountAttempts("ip", time.Minute, now); got != 0 {
		t.Fatalf("expected expired attempts trimmed, got %d", got)
	}
	if _, ok := store.OldestAttempt("ip", time.Minute, now); ok {
		t.Fatal("expected no oldest attempt after trim")
	}
}
