// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package coin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/moneta/internal/platform/constants"
)

// RedisCache implements [Cache] with one JSON value per coin.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed [Cache] whose entries expire after ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// cacheKey namespaces coin entries, e.g. "catalog:coin:42".
func cacheKey(id int) string {
	return constants.RedisPrefixCoin + strconv.Itoa(id)
}

/*
Get returns the cached coin, or (nil, nil) when absent or expired.

A corrupt entry is deleted and reported as a miss.
*/
func (cache *RedisCache) Get(context context.Context, id int) (*Coin, error) {
	payload, err := cache.client.Get(context, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis_coin_get_failed: %w", err)
	}

	var coin Coin
	if err := json.Unmarshal(payload, &coin); err != nil {
		_ = cache.client.Del(context, cacheKey(id)).Err()
		return nil, nil
	}
	return &coin, nil
}

func (cache *RedisCache) Set(context context.Context, c *Coin) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("redis_coin_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, cacheKey(c.ID), payload, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_coin_set_failed: %w", err)
	}
	return nil
}

func (cache *RedisCache) Invalidate(context context.Context, id int) error {
	if err := cache.client.Del(context, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("redis_coin_invalidate_failed: %w", err)
	}
	return nil
}
