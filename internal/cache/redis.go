package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/vtt-importer/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/vtt-importer/internal/redis"
)

const sessionKeyPrefix = "session:"

// Redis is the shared Cache backend. Entries are JSON blobs with a
// server-side TTL, so expiry holds even across importer processes.
type Redis[T any] struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
	prefix string
}

// RedisConfig holds the dependencies for a Redis cache
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration

	// KeyPrefix namespaces entries; defaults to "session:"
	KeyPrefix string
}

// NewRedis creates a Redis-backed cache
func NewRedis[T any](cfg *RedisConfig) *Redis[T] {
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = sessionKeyPrefix
	}

	return &Redis[T]{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
		prefix: prefix,
	}
}

// Exists returns the live entry for id, or false when absent or expired
func (r *Redis[T]) Exists(ctx context.Context, id string) (*Entry[T], bool) {
	result, err := r.client.Get(ctx, r.prefix+id).Result()
	if err != nil {
		if err != goredis.Nil {
			slog.Warn("cache: redis lookup failed", "id", id, "error", err)
		}
		return nil, false
	}

	var entry Entry[T]
	if err := json.Unmarshal([]byte(result), &entry); err != nil {
		slog.Warn("cache: discarding undecodable entry", "id", id, "error", err)
		r.client.Del(ctx, r.prefix+id)
		return nil, false
	}

	// Redis enforces TTL server-side, but a clock-skewed entry written
	// by another process may still linger past our own deadline.
	if entry.Expired(r.clock.Now(), r.ttl) {
		r.client.Del(ctx, r.prefix+id)
		return nil, false
	}
	return &entry, true
}

// Add replaces any prior entry for id with a fresh one
func (r *Redis[T]) Add(ctx context.Context, id string, data T) {
	if id == "" || !usable(data) {
		slog.Debug("cache: rejecting empty entry", "id", id)
		return
	}

	entry := &Entry[T]{
		ID:         id,
		Data:       data,
		LastUpdate: r.clock.Now(),
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		slog.Warn("cache: failed to marshal entry", "id", id, "error", err)
		return
	}

	if err := r.client.Set(ctx, r.prefix+id, payload, r.ttl).Err(); err != nil {
		slog.Warn("cache: redis write failed", "id", id, "error", err)
	}
}
