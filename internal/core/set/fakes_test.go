package set_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/taibuivan/moneta/internal/core/coin"
	"github.com/taibuivan/moneta/internal/core/set"
	"github.com/taibuivan/moneta/internal/platform/dberr"
)

type memoryRepository struct {
	sets   map[int]set.Set
	nextID int
}

func newMemoryRepository(sets ...set.Set) *memoryRepository {
	repository := &memoryRepository{sets: map[int]set.Set{}, nextID: 1}
	for _, s := range sets {
		repository.sets[s.ID] = s
		repository.nextID = max(repository.nextID, s.ID+1)
	}
	return repository
}

func (repository *memoryRepository) List(_ context.Context, filter set.Filter, limit, offset int) ([]*set.Set, int, error) {
	var sets []*set.Set
	for _, s := range repository.sets {
		if len(filter.CoinIDs) > 0 && !slices.ContainsFunc(filter.CoinIDs, func(id int) bool { return slices.Contains(s.CoinIDs, id) }) {
			continue
		}
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Query)) {
			copied := s
			sets = append(sets, &copied)
		}
	}
	slices.SortFunc(sets, func(a, b *set.Set) int { return strings.Compare(a.Name, b.Name) })

	total := len(sets)
	start := min(offset, total)
	return sets[start:min(start+limit, total)], total, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id int) (*set.Set, error) {
	s, found := repository.sets[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	return &s, nil
}

func (repository *memoryRepository) FindBySlug(_ context.Context, slug string) (*set.Set, error) {
	for _, s := range repository.sets {
		if s.Slug == slug {
			return &s, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) Create(_ context.Context, s *set.Set) error {
	s.ID = repository.nextID
	repository.nextID++
	s.CreatedAt, s.UpdatedAt = time.Now(), time.Now()
	repository.sets[s.ID] = *s
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, s *set.Set) error {
	if _, found := repository.sets[s.ID]; !found {
		return dberr.ErrNotFound
	}
	repository.sets[s.ID] = *s
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, id int) error {
	if _, found := repository.sets[id]; !found {
		return dberr.ErrNotFound
	}
	delete(repository.sets, id)
	return nil
}

// stubCatalog serves already decorated coins, keeping the requested order.
type stubCatalog map[int]*coin.Coin

func (catalog stubCatalog) Lookup(_ context.Context, ids []int) ([]*coin.Coin, error) {
	var coins []*coin.Coin
	for _, id := range ids {
		if c, found := catalog[id]; found {
			coins = append(coins, c)
		}
	}
	return coins, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
