package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/vtt-importer/internal/pkg/clock"
)

// Memory is the in-process Cache backend
type Memory[T any] struct {
	clock clock.Clock
	ttl   time.Duration

	mu      sync.RWMutex
	entries map[string]*Entry[T]
}

// MemoryConfig holds the dependencies for a Memory cache
type MemoryConfig struct {
	Clock clock.Clock
	TTL   time.Duration
}

// NewMemory creates an in-process cache. A nil Clock falls back to the
// real clock; a non-positive TTL is rejected.
func NewMemory[T any](cfg *MemoryConfig) *Memory[T] {
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &Memory[T]{
		clock:   c,
		ttl:     ttl,
		entries: make(map[string]*Entry[T]),
	}
}

// Exists returns the live entry for id, or false when absent or expired
func (m *Memory[T]) Exists(_ context.Context, id string) (*Entry[T], bool) {
	m.mu.RLock()
	entry, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if entry.Expired(m.clock.Now(), m.ttl) {
		m.mu.Lock()
		delete(m.entries, id)
		m.mu.Unlock()
		return nil, false
	}
	return entry, true
}

// Add replaces any prior entry for id with a fresh one
func (m *Memory[T]) Add(_ context.Context, id string, data T) {
	if id == "" || !usable(data) {
		slog.Debug("cache: rejecting empty entry", "id", id)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = &Entry[T]{
		ID:         id,
		Data:       data,
		LastUpdate: m.clock.Now(),
	}
}
