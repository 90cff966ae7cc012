package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
)

const statsCacheKey = "wedding_rsvp:stats"

// redisStatsCache memoizes computed statistics in Redis. Cache trouble is
// never fatal: a miss just means recomputing over a few hundred rows.
type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) StatsCache {
	return &redisStatsCache{client: client, ttl: ttl}
}

func (c *redisStatsCache) Get(ctx context.Context) (*entity.RsvpStats, bool) {
	payload, err := c.client.Get(ctx, statsCacheKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logrus.Warnf("Stats cache read failed: %v", err)
		return nil, false
	}

	var stats entity.RsvpStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		logrus.Warnf("Stats cache payload invalid: %v", err)
		return nil, false
	}
	return &stats, true
}

func (c *redisStatsCache) Set(ctx context.Context, stats *entity.RsvpStats) {
	payload, err := json.Marshal(stats)
	if err != nil {
		logrus.Warnf("Stats cache marshal failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, statsCacheKey, payload, c.ttl).Err(); err != nil {
		logrus.Warnf("Stats cache write failed: %v", err)
	}
}

func (c *redisStatsCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, statsCacheKey).Err(); err != nil {
		logrus.Warnf("Stats cache invalidation failed: %v", err)
	}
}
