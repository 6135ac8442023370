package history

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Memory is an in-process Store.
type Memory struct {
	entries map[string][]Entry
	opts    *options
	mu      sync.RWMutex
	closed  bool
}

// NewMemory creates an empty in-memory store.
func NewMemory(opts ...Option) *Memory {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Memory{entries: make(map[string][]Entry), opts: o}
}

func (m *Memory) Append(_ context.Context, key string, e Entry) error {
	if key == "" {
		return ErrEmptyKey
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	list := append(m.entries[key], e)
	if over := len(list) - m.opts.maxEntries; over > 0 {
		list = slices.Clone(list[over:])
	}
	m.entries[key] = list
	return nil
}

func (m *Memory) Recent(_ context.Context, key string, n int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}

	list := m.entries[key]
	if n > 0 && n < len(list) {
		list = list[len(list)-n:]
	}
	return slices.Clone(list), nil
}

func (m *Memory) Ping(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrClosed
	}
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.entries = nil
	return nil
}
