package pricing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// daily prices never change once the day closed; expiry only bounds growth.
const redisDayPriceTTL = 30 * 24 * time.Hour

// RedisCache shares day prices between runs and between instances.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache wraps a redis client as a SharedCache.
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "arenawatch"
	}
	return &RedisCache{client: client, prefix: prefix}
}

func (r *RedisCache) key(day time.Time) string {
	return fmt.Sprintf("%s:price:avax_usd:%s", r.prefix, day.Format("2006-01-02"))
}

// GetDayPrice reads a cached day price. The second return is false on miss.
func (r *RedisCache) GetDayPrice(ctx context.Context, day time.Time) (float64, bool, error) {
	val, err := r.client.Get(ctx, r.key(day)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get day price: %w", err)
	}
	price, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse cached day price %q: %w", val, err)
	}
	return price, true, nil
}

// SetDayPrice stores a day price.
func (r *RedisCache) SetDayPrice(ctx context.Context, day time.Time, price float64) error {
	err := r.client.Set(ctx, r.key(day), strconv.FormatFloat(price, 'f', -1, 64), redisDayPriceTTL).Err()
	if err != nil {
		return fmt.Errorf("redis set day price: %w", err)
	}
	return nil
}
