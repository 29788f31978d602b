// Package cache provides a generic TTL-expiring key/value store used
// for short-lived session data such as bearer tokens and provider
// configuration. Two backends exist: an in-process map (the default;
// the cache carries no persistence guarantee) and Redis for deployments
// where several importer processes share tokens.
package cache

import (
	"context"
	"reflect"
	"time"
)

//go:generate mockgen -destination=mock/mock.go -package=cachemock -source=cache.go

// Entry is a cached value stamped with its insertion time
type Entry[T any] struct {
	ID         string    `json:"id"`
	Data       T         `json:"data"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// Expired reports whether the entry has outlived ttl as of now
func (e *Entry[T]) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.LastUpdate) >= ttl
}

// Cache is a TTL-expiring key/value store. Add performs a full
// find-and-replace per key; there are no partial merges.
type Cache[T any] interface {
	// Exists returns the live entry for id, or false when the id is
	// unknown or its entry has expired.
	Exists(ctx context.Context, id string) (*Entry[T], bool)

	// Add replaces any prior entry for id with data, stamped with the
	// current time. Empty or invalid data is rejected as a no-op.
	Add(ctx context.Context, id string, data T)
}

// usable rejects values that would cache nothing: nil pointers and
// interfaces, empty strings, and empty collections.
func usable(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return usable(rv.Elem().Interface())
	case reflect.String:
		return rv.Len() > 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	default:
		return true
	}
}
