// Package blacklist loads the set of disallowed passwords from a
// line-oriented text file. The set is immutable after load and shared
// read-only across requests, so lookups need no locking.
package blacklist

import (
	"bufio"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Store holds the loaded blacklist entries in lowercase.
type Store struct {
	entries map[string]struct{}
}

// Load reads one candidate password per line from path, trimming whitespace
// and lowercasing each entry. Empty lines are skipped and duplicates collapse.
// A missing or unreadable file is not fatal: it logs a warning and yields an
// empty store so startup always succeeds.
func Load(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}

	store := &Store{entries: make(map[string]struct{})}

	f, err := os.Open(path)
	if err != nil {
		log.Warn("blacklist file unavailable, continuing with empty set",
			zap.String("path", path),
			zap.Error(err),
		)
		return store
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entry := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if entry == "" {
			continue
		}
		store.entries[entry] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		log.Warn("blacklist file partially read",
			zap.String("path", path),
			zap.Error(err),
		)
	}

	log.Info("blacklist loaded",
		zap.String("path", path),
		zap.Int("entries", len(store.entries)),
	)

	return store
}

// Contains reports whether the lowercase form of password is blacklisted.
func (s *Store) Contains(password string) bool {
	if s == nil {
		return false
	}
	_, ok := s.entries[strings.ToLower(password)]
	return ok
}

// Size returns the number of loaded entries.
func (s *Store) Size() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}
