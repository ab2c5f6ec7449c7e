// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package coin_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/moneta/internal/core/coin"
	"github.com/taibuivan/moneta/internal/platform/dberr"
)

// # Repository

type memoryRepository struct {
	mu     sync.Mutex
	coins  map[int]coin.Coin
	nextID int
	finds  int
}

func newMemoryRepository(coins ...coin.Coin) *memoryRepository {
	repository := &memoryRepository{coins: map[int]coin.Coin{}, nextID: 1}
	for _, c := range coins {
		repository.coins[c.ID] = c
		repository.nextID = max(repository.nextID, c.ID+1)
	}
	return repository
}

func (repository *memoryRepository) List(context.Context) ([]*coin.Coin, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var coins []*coin.Coin
	for _, c := range repository.coins {
		copied := c
		coins = append(coins, &copied)
	}
	slices.SortFunc(coins, func(a, b *coin.Coin) int { return a.ID - b.ID })
	return coins, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id int) (*coin.Coin, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.finds++
	c, found := repository.coins[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	return &c, nil
}

func (repository *memoryRepository) FindByIDs(_ context.Context, ids []int) ([]*coin.Coin, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var coins []*coin.Coin
	for _, id := range ids {
		if c, found := repository.coins[id]; found {
			coins = append(coins, &c)
		}
	}
	return coins, nil
}

func (repository *memoryRepository) Create(_ context.Context, c *coin.Coin) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	c.ID = repository.nextID
	repository.nextID++
	c.CreatedAt, c.UpdatedAt = time.Now(), time.Now()
	repository.coins[c.ID] = *c
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, c *coin.Coin) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, found := repository.coins[c.ID]; !found {
		return dberr.ErrNotFound
	}
	c.UpdatedAt = time.Now()
	repository.coins[c.ID] = *c
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, id int) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, found := repository.coins[id]; !found {
		return dberr.ErrNotFound
	}
	delete(repository.coins, id)
	return nil
}

// # Cache

type memoryCache struct {
	entries     map[int]coin.Coin
	invalidated []int
	failReads   bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[int]coin.Coin{}}
}

func (cache *memoryCache) Get(_ context.Context, id int) (*coin.Coin, error) {
	if cache.failReads {
		return nil, errors.New("connection refused")
	}
	c, found := cache.entries[id]
	if !found {
		return nil, nil
	}
	return &c, nil
}

func (cache *memoryCache) Set(_ context.Context, c *coin.Coin) error {
	cache.entries[c.ID] = *c
	return nil
}

func (cache *memoryCache) Invalidate(_ context.Context, id int) error {
	delete(cache.entries, id)
	cache.invalidated = append(cache.invalidated, id)
	return nil
}

// # Image Store

type memoryImages struct {
	uploaded map[string]bool
}

func (images *memoryImages) Exists(_ context.Context, imageID string) (bool, error) {
	return images.uploaded[imageID], nil
}

func (images *memoryImages) PresignGet(_ context.Context, imageID string, ttl time.Duration) (string, error) {
	return "https://images.example/" + imageID + ".jpg?ttl=" + ttl.String(), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
