// Package signinlog keeps a bounded, in-memory record of successful
// sign-ins. It is independent of the credential service so that
// federated sign-ins share the same audit path as password logins.
package signinlog

import (
	"sync"
	"time"
)

type Entry struct {
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	Provider   string    `json:"provider"`
	SignedInAt time.Time `json:"signedInAt"`
}

// Log holds the most recent entries, newest first. Past the cap the
// oldest entry is evicted on insert.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	cap     int
	now     func() time.Time
}

func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{
		entries: make([]Entry, 0, capacity),
		cap:     capacity,
		now:     time.Now,
	}
}

// Record appends a sign-in at the front with a server-assigned
// timestamp. It never fails; auditing must not block a sign-in.
func (l *Log) Record(email, name, provider string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) < l.cap {
		l.entries = append(l.entries, Entry{})
	}
	copy(l.entries[1:], l.entries)
	l.entries[0] = Entry{
		Email:      email,
		Name:       name,
		Provider:   provider,
		SignedInAt: l.now(),
	}
}

// List returns up to limit entries, newest first. The limit is clamped
// to [0, cap] so callers cannot request an unbounded response.
func (l *Log) List(limit int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > l.cap {
		limit = l.cap
	}
	if limit > len(l.entries) {
		limit = len(l.entries)
	}

	out := make([]Entry, limit)
	copy(out, l.entries[:limit])
	return out
}

// Len reports the current number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
