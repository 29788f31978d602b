package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtt-importer/internal/cache"
	"github.com/KirkDiggler/vtt-importer/internal/pkg/clock"
)

const testTTL = 4 * time.Hour

type MemoryCacheTestSuite struct {
	suite.Suite
	clock *clock.Fake
	cache *cache.Memory[string]
	ctx   context.Context
}

func (s *MemoryCacheTestSuite) SetupTest() {
	s.clock = clock.NewFakeAt(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	s.cache = cache.NewMemory[string](&cache.MemoryConfig{
		Clock: s.clock,
		TTL:   testTTL,
	})
	s.ctx = context.Background()
}

func TestMemoryCacheSuite(t *testing.T) {
	suite.Run(t, new(MemoryCacheTestSuite))
}

func (s *MemoryCacheTestSuite) TestAddAndExists() {
	s.cache.Add(s.ctx, "token-1", "bearer-abc")

	entry, ok := s.cache.Exists(s.ctx, "token-1")
	s.Require().True(ok)
	s.Equal("bearer-abc", entry.Data)
	s.Equal("token-1", entry.ID)
	s.Equal(s.clock.Now(), entry.LastUpdate)
}

func (s *MemoryCacheTestSuite) TestMissingEntry() {
	_, ok := s.cache.Exists(s.ctx, "nope")
	s.False(ok)
}

func (s *MemoryCacheTestSuite) TestNotExpiredAtHalfTTL() {
	s.cache.Add(s.ctx, "token-1", "bearer-abc")
	s.clock.Advance(testTTL / 2)

	_, ok := s.cache.Exists(s.ctx, "token-1")
	s.True(ok)
}

func (s *MemoryCacheTestSuite) TestExpiredJustPastTTL() {
	s.cache.Add(s.ctx, "token-1", "bearer-abc")
	s.clock.Advance(testTTL + time.Millisecond)

	_, ok := s.cache.Exists(s.ctx, "token-1")
	s.False(ok)
}

func (s *MemoryCacheTestSuite) TestExpiredExactlyAtTTL() {
	s.cache.Add(s.ctx, "token-1", "bearer-abc")
	s.clock.Advance(testTTL)

	_, ok := s.cache.Exists(s.ctx, "token-1")
	s.False(ok)
}

func (s *MemoryCacheTestSuite) TestAddReplacesWholesale() {
	s.cache.Add(s.ctx, "token-1", "old")
	s.clock.Advance(time.Hour)
	s.cache.Add(s.ctx, "token-1", "new")

	entry, ok := s.cache.Exists(s.ctx, "token-1")
	s.Require().True(ok)
	s.Equal("new", entry.Data)
	s.Equal(s.clock.Now(), entry.LastUpdate)
}

func (s *MemoryCacheTestSuite) TestRejectsEmptyString() {
	s.cache.Add(s.ctx, "token-1", "")

	_, ok := s.cache.Exists(s.ctx, "token-1")
	s.False(ok)
}

func (s *MemoryCacheTestSuite) TestRejectsEmptyID() {
	s.cache.Add(s.ctx, "", "bearer-abc")

	_, ok := s.cache.Exists(s.ctx, "")
	s.False(ok)
}

func TestMemoryCacheRejectsEmptyCollections(t *testing.T) {
	fake := clock.NewFakeAt(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	sliceCache := cache.NewMemory[[]string](&cache.MemoryConfig{Clock: fake, TTL: testTTL})
	sliceCache.Add(ctx, "empty", []string{})
	if _, ok := sliceCache.Exists(ctx, "empty"); ok {
		t.Fatal("empty slice should be rejected")
	}
	sliceCache.Add(ctx, "full", []string{"a"})
	if _, ok := sliceCache.Exists(ctx, "full"); !ok {
		t.Fatal("non-empty slice should be cached")
	}

	mapCache := cache.NewMemory[map[string]int](&cache.MemoryConfig{Clock: fake, TTL: testTTL})
	mapCache.Add(ctx, "empty", map[string]int{})
	if _, ok := mapCache.Exists(ctx, "empty"); ok {
		t.Fatal("empty map should be rejected")
	}

	ptrCache := cache.NewMemory[*string](&cache.MemoryConfig{Clock: fake, TTL: testTTL})
	ptrCache.Add(ctx, "nil", nil)
	if _, ok := ptrCache.Exists(ctx, "nil"); ok {
		t.Fatal("nil pointer should be rejected")
	}
}
