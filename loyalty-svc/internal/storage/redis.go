package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"tableside/loyalty-svc/internal/domain"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func summaryKey(customerID int) string {
	return "loyalty:" + strconv.Itoa(customerID)
}

// Get returns (nil, nil) on a cache miss.
func (c *RedisCache) Get(ctx context.Context, customerID int) (*domain.LoyaltySummary, error) {
	fields, err := c.Client.HGetAll(ctx, summaryKey(customerID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	points, _ := strconv.Atoi(fields["total_points"])
	completed, _ := strconv.Atoi(fields["total_completed_orders"])
	spent, _ := strconv.ParseFloat(fields["total_spent"], 64)
	updatedUnix, _ := strconv.ParseInt(fields["updated_at"], 10, 64)

	return &domain.LoyaltySummary{
		CustomerID:           customerID,
		TotalPoints:          points,
		TotalCompletedOrders: completed,
		TotalSpent:           spent,
		CurrentBadge:         domain.Badge(fields["current_badge"]),
		UpdatedAt:            time.Unix(updatedUnix, 0),
	}, nil
}

func (c *RedisCache) Set(ctx context.Context, summary domain.LoyaltySummary) error {
	key := summaryKey(summary.CustomerID)
	if err := c.Client.HSet(ctx, key, map[string]interface{}{
		"total_points":           summary.TotalPoints,
		"total_completed_orders": summary.TotalCompletedOrders,
		"total_spent":            summary.TotalSpent,
		"current_badge":          string(summary.CurrentBadge),
		"updated_at":             summary.UpdatedAt.Unix(),
	}).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, c.TTL).Err()
}
