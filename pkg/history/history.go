package history

import (
	"context"
	"time"
)

// DefaultMaxEntries is the per-conversation cap when none is configured.
const DefaultMaxEntries = 50

// Entry is one recorded conversation message.
type Entry struct {
	At     time.Time `json:"at"`
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Text   string    `json:"text"`
}

// Store records and returns recent conversation messages.
type Store interface {
	// Append adds e to the end of the conversation identified by key,
	// dropping the oldest entries beyond the store's cap.
	Append(ctx context.Context, key string, e Entry) error

	// Recent returns up to n of the latest entries, oldest first.
	// n <= 0 returns every retained entry.
	Recent(ctx context.Context, key string, n int) ([]Entry, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// Option configures a store.
type Option func(*options)

type options struct {
	prefix     string
	maxEntries int
	ttl        time.Duration
}

func defaultOptions() *options {
	return &options{
		maxEntries: DefaultMaxEntries,
		ttl:        24 * time.Hour,
	}
}

// WithMaxEntries caps the entries kept per conversation.
// Default: 50.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxEntries = n
		}
	}
}

// WithTTL sets how long an idle conversation is retained in Redis.
// Zero or negative keeps it forever. Ignored by Memory.
// Default: 24 hours.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		o.ttl = d
	}
}

// WithPrefix namespaces Redis keys as "{prefix}:history:{key}".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}
