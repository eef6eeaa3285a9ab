package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/RaikyD/charms-admin/internal/domain"
)

const revenueKeyPrefix = "charms-admin:revenue:"

// ErrMiss is returned when no report is cached for the period.
var ErrMiss = errors.New("cache: miss")

// RevenueCache stores dashboard revenue reports in Redis for a fixed TTL.
type RevenueCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRevenueCache(addr, password string, db int, ttl time.Duration) *RevenueCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RevenueCache{client: client, ttl: ttl}
}

// NewRevenueCacheWithClient wraps an existing client.
func NewRevenueCacheWithClient(client *redis.Client, ttl time.Duration) *RevenueCache {
	return &RevenueCache{client: client, ttl: ttl}
}

func (c *RevenueCache) GetReport(ctx context.Context, period domain.Period) (*domain.RevenueReport, error) {
	data, err := c.client.Get(ctx, revenueKeyPrefix+string(period)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	var report domain.RevenueReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *RevenueCache) SetReport(ctx context.Context, period domain.Period, report *domain.RevenueReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, revenueKeyPrefix+string(period), data, c.ttl).Err()
}

// Invalidate drops every cached report, e.g. after orders changed.
func (c *RevenueCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, revenueKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *RevenueCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RevenueCache) Close() error {
	return c.client.Close()
}
