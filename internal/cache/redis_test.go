package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtt-importer/internal/cache"
	"github.com/KirkDiggler/vtt-importer/internal/pkg/clock"
	"github.com/KirkDiggler/vtt-importer/internal/testutils"
)

type RedisCacheTestSuite struct {
	suite.Suite
	clock   *clock.Fake
	cache   *cache.Redis[string]
	cleanup func()
	ctx     context.Context
}

func (s *RedisCacheTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	s.clock = clock.NewFakeAt(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	s.cache = cache.NewRedis[string](&cache.RedisConfig{
		Client: client,
		Clock:  s.clock,
		TTL:    testTTL,
	})
	s.ctx = context.Background()
}

func (s *RedisCacheTestSuite) TearDownTest() {
	s.cleanup()
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}

func (s *RedisCacheTestSuite) TestAddAndExists() {
	s.cache.Add(s.ctx, "token-1", "bearer-abc")

	entry, ok := s.cache.Exists(s.ctx, "token-1")
	s.Require().True(ok)
	s.Equal("bearer-abc", entry.Data)
}

func (s *RedisCacheTestSuite) TestMissingEntry() {
	_, ok := s.cache.Exists(s.ctx, "nope")
	s.False(ok)
}

func (s *RedisCacheTestSuite) TestClockExpiry() {
	s.cache.Add(s.ctx, "token-1", "bearer-abc")
	s.clock.Advance(testTTL + time.Second)

	_, ok := s.cache.Exists(s.ctx, "token-1")
	s.False(ok)
}

func (s *RedisCacheTestSuite) TestRejectsEmptyData() {
	s.cache.Add(s.ctx, "token-1", "")

	_, ok := s.cache.Exists(s.ctx, "token-1")
	s.False(ok)
}

func (s *RedisCacheTestSuite) TestReplacesWholesale() {
	s.cache.Add(s.ctx, "token-1", "old")
	s.cache.Add(s.ctx, "token-1", "new")

	entry, ok := s.cache.Exists(s.ctx, "token-1")
	s.Require().True(ok)
	s.Equal("new", entry.Data)
}

func TestRedisCacheDiscardsCorruptEntry(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "session:bad", "{not json", 0).Err())

	c := cache.NewRedis[string](&cache.RedisConfig{Client: client, TTL: testTTL})
	_, ok := c.Exists(ctx, "bad")
	require.False(t, ok)
}
