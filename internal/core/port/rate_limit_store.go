package port

import "time"

// RateLimitStore defines the operations required to enforce sliding-window limits.
type RateLimitStore interface {
	CountAttempts(identifier string, window time.Duration, reference time.Time) int
	RecordAttempt(identifier string, at time.Time)
	OldestAttempt(identifier string, window time.Duration, reference time.Time) (time.Time, bool)
}
