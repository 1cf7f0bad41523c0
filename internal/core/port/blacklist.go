package port

// Blacklist exposes case-insensitive membership lookups against the set of
// disallowed passwords. Implementations are read-only after construction and
// safe for concurrent use.
type Blacklist interface {
	Contains(password string) bool
	Size() int
}
