package cache

import (
	"ShopFront/internal/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

const categoriesKey = "catalog:categories"

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCache{
		client:  client,
		baseTTL: ttl,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r RedisCache) GetItems(ctx context.Context, key string) ([]model.Item, error) {
	var items []model.Item
	if err := r.get(ctx, itemsKey(key), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r RedisCache) SetItems(ctx context.Context, key string, items []model.Item) error {
	return r.set(ctx, itemsKey(key), items)
}

func (r RedisCache) GetCategories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := r.get(ctx, categoriesKey, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r RedisCache) SetCategories(ctx context.Context, categories []string) error {
	return r.set(ctx, categoriesKey, categories)
}

func (r RedisCache) get(ctx context.Context, key string, dst any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal %s failed: %w", key, err)
	}
	return nil
}

func (r RedisCache) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s failed: %w", key, err)
	}
	// джиттер, чтобы ключи каталога не истекали одновременно
	jitter := time.Duration(rand.Int63n(int64(r.baseTTL/5) + 1))
	if err := r.client.Set(ctx, key, data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func itemsKey(key string) string {
	return fmt.Sprintf("catalog:items:%s", key)
}
