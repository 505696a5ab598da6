package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"storefront/internal/config"
	"storefront/internal/models"
)

// RedisCache is a JSON cache for order tracking lookups.
type RedisCache struct {
	client *redis.Client
	config *config.RedisConfig
}

func NewRedisCache(cfg *config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
		config: cfg,
	}
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

func (r *RedisCache) setJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisCache) getJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func orderKey(id string) string {
	return fmt.Sprintf("order:%s", id)
}

// CacheOrder stores order under order:<id> for the configured TTL.
func (r *RedisCache) CacheOrder(ctx context.Context, order *models.Order) error {
	return r.setJSON(ctx, orderKey(order.ID), order, r.config.OrderTTL)
}

// GetCachedOrder returns ErrNotFound on a cache miss.
func (r *RedisCache) GetCachedOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.getJSON(ctx, orderKey(id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}
