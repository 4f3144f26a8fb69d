package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"temp_dashboard/internal/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Client is a best-effort cache for order aggregates. It is never
// authoritative: readers fall through to the database on any miss or error.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewClient wraps an existing connection without checking it.
func NewClient(rdb *redis.Client, ttl time.Duration) *Client {
	return &Client{rdb: rdb, ttl: ttl}
}

func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewClient(rdb, ttl), nil
}

func orderKey(id uuid.UUID) string {
	return "order:" + id.String()
}

func (c *Client) SetOrder(order *models.Order) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	return c.rdb.Set(ctx, orderKey(order.ID), jsonData, c.ttl).Err()
}

func (c *Client) GetOrder(id uuid.UUID) (*models.Order, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, orderKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order from cache: %w", err)
	}

	var order models.Order
	if err := json.Unmarshal([]byte(val), &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached order: %w", err)
	}

	return &order, nil
}

func (c *Client) DeleteOrder(id uuid.UUID) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, orderKey(id)).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
