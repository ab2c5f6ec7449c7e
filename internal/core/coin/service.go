// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package coin

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/moneta/internal/platform/apperr"
	"github.com/taibuivan/moneta/internal/platform/ctxutil"
	"github.com/taibuivan/moneta/internal/platform/sec"
	"github.com/taibuivan/moneta/pkg/imageid"
	"github.com/taibuivan/moneta/pkg/pagination"
	"github.com/taibuivan/moneta/pkg/slice"
	"github.com/taibuivan/moneta/pkg/slug"
	"github.com/taibuivan/moneta/pkg/yearrange"
)

// # Service Layer

// Service orchestrates the business logic for the coin catalog.
type Service struct {
	repo     Repository
	cache    Cache
	images   ImageStore
	imageTTL time.Duration
	slugs    *slug.Memo
	logger   *slog.Logger
}

// NewService constructs a new [Service]. cache and images may be nil when
// Redis or the image bucket are not configured.
func NewService(repo Repository, cache Cache, images ImageStore, imageTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		images:   images,
		imageTTL: imageTTL,
		slugs:    &slug.Memo{},
		logger:   logger,
	}
}

// # Coin Lookups

/*
List filters, sorts and pages the whole catalog in memory.

Returns:
  - []*Coin: The requested page, decorated
  - int: Number of coins matching filter across all pages
  - error: Repository failures
*/
func (service *Service) List(context context.Context, filter Filter, page pagination.Params) ([]*Coin, int, error) {
	coins, err := service.repo.List(context)
	if err != nil {
		return nil, 0, err
	}

	matched := slice.Filter(coins, service.matcher(filter))
	sortCoins(matched, filter.Sort, filter.SortDir)

	window := pagination.Window(matched, page)
	for _, coin := range window {
		service.decorate(coin)
	}
	redact(context, window...)

	return window, len(matched), nil
}

/*
Get fetches a coin by numeric id or by catalog slug segment.

Both "42" and "42-hadrian-denarius" resolve to coin 42, as does a slug
carrying a label from before a rename. The label part is never checked.
*/
func (service *Service) Get(context context.Context, identifier string) (*Coin, error) {
	id := ResolveID(identifier)
	if id == 0 {
		return nil, apperr.NotFound("Coin")
	}

	coin, err := service.find(context, id)
	if err != nil {
		return nil, err
	}

	service.decorate(coin)
	redact(context, coin)
	return coin, nil
}

// Lookup returns the decorated live coins among ids, ordered like ids.
func (service *Service) Lookup(context context.Context, ids []int) ([]*Coin, error) {
	coins, err := service.repo.FindByIDs(context, ids)
	if err != nil {
		return nil, err
	}

	position := make(map[int]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}
	slices.SortFunc(coins, func(a, b *Coin) int { return cmp.Compare(position[a.ID], position[b.ID]) })

	for _, coin := range coins {
		service.decorate(coin)
	}
	redact(context, coins...)
	return coins, nil
}

// ResolveID maps a route identifier to a coin id, 0 when it names none.
func ResolveID(identifier string) int {
	if id, err := strconv.Atoi(identifier); err == nil {
		return max(id, 0)
	}
	return slug.ExtractID(identifier)
}

// find reads through the detail cache. Cache failures only cost latency.
func (service *Service) find(context context.Context, id int) (*Coin, error) {
	if service.cache != nil {
		cached, err := service.cache.Get(context, id)
		if err != nil {
			service.logger.WarnContext(context, "coin_cache_read_failed", slog.Int("coin_id", id), slog.Any("error", err))
		}
		if cached != nil {
			return cached, nil
		}
	}

	coin, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, notFound(err)
	}

	if service.cache != nil {
		if err := service.cache.Set(context, coin); err != nil {
			service.logger.WarnContext(context, "coin_cache_write_failed", slog.Int("coin_id", id), slog.Any("error", err))
		}
	}
	return coin, nil
}

// # Coin Mutations

// Create validates and persists a new coin.
func (service *Service) Create(context context.Context, coin *Coin) error {
	normalize(coin)
	if err := validateCoin(coin); err != nil {
		return err
	}

	if err := service.repo.Create(context, coin); err != nil {
		return err
	}

	service.decorate(coin)
	service.logger.InfoContext(context, "coin_created",
		slog.Int("coin_id", coin.ID),
		slog.String("slug", coin.Slug),
		slog.String("actor", ctxutil.ActorID(context)),
	)
	return nil
}

// Update replaces every editable field of coin id.
func (service *Service) Update(context context.Context, id int, coin *Coin) error {
	coin.ID = id
	normalize(coin)
	if err := validateCoin(coin); err != nil {
		return err
	}

	if err := service.repo.Update(context, coin); err != nil {
		return notFound(err)
	}
	service.invalidate(context, id)

	service.decorate(coin)
	service.logger.InfoContext(context, "coin_updated", slog.Int("coin_id", id), slog.String("actor", ctxutil.ActorID(context)))
	return nil
}

// Delete soft-deletes coin id.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return notFound(err)
	}
	service.invalidate(context, id)

	service.logger.WarnContext(context, "coin_deleted", slog.Int("coin_id", id), slog.String("actor", ctxutil.ActorID(context)))
	return nil
}

func (service *Service) invalidate(context context.Context, id int) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Invalidate(context, id); err != nil {
		service.logger.ErrorContext(context, "coin_cache_invalidate_failed", slog.Int("coin_id", id), slog.Any("error", err))
	}
}

// notFound names the coin in storage NOT_FOUND errors.
func notFound(err error) error {
	if apperr.IsNotFound(err) {
		return apperr.NotFound("Coin")
	}
	return err
}

// # Derived Fields

// decorate fills the fields computed from stored data.
func (service *Service) decorate(coin *Coin) {
	coin.Slug = service.slugs.Make(coin.ID, coin.Nickname)
	coin.YearRange = yearrange.Format(coin.YearEarliest, coin.YearLatest)
	coin.ImageIDs = imageIDs(coin)

	if coin.DeityIDs == nil {
		coin.DeityIDs = []int{}
	}
	if coin.Views == nil {
		coin.Views = []imageid.View{}
	}
}

// redact hides the purchase price from readers below curator.
func redact(context context.Context, coins ...*Coin) {
	if ctxutil.HasRole(context, sec.RoleCurator) {
		return
	}
	for _, coin := range coins {
		coin.Acquisition.Price = nil
	}
}

// normalize drops duplicate links and views before validation.
func normalize(coin *Coin) {
	coin.Nickname = strings.TrimSpace(coin.Nickname)
	coin.Denomination = strings.TrimSpace(coin.Denomination)
	coin.Acquisition.Vendor = strings.TrimSpace(coin.Acquisition.Vendor)
	coin.DeityIDs = slice.Unique(coin.DeityIDs)
}

// # Filtering & Sorting

// matcher builds the predicate for filter. Text search compares sanitized
// forms so "hadrian" finds "Hadrián". Only stored coin text goes through the
// memo; the query comes from the client.
func (service *Service) matcher(filter Filter) func(*Coin) bool {
	needle := slug.Sanitize(filter.Query)

	return func(coin *Coin) bool {
		if needle != "" && !slice.Any(searchable(coin), func(text string) bool {
			return strings.Contains(service.slugs.Sanitize(text), needle)
		}) {
			return false
		}
		if len(filter.Metals) > 0 && !slices.Contains(filter.Metals, coin.Metal) {
			return false
		}
		if filter.RulerID != nil && (coin.RulerID == nil || *coin.RulerID != *filter.RulerID) {
			return false
		}
		if filter.MintID != nil && (coin.MintID == nil || *coin.MintID != *filter.MintID) {
			return false
		}
		if filter.DeityID != nil && !slices.Contains(coin.DeityIDs, *filter.DeityID) {
			return false
		}
		if filter.MinWeight != nil && (coin.WeightG == nil || *coin.WeightG < *filter.MinWeight) {
			return false
		}
		if filter.MaxWeight != nil && (coin.WeightG == nil || *coin.WeightG > *filter.MaxWeight) {
			return false
		}
		if filter.CuratorPhotographed && !coin.Acquisition.PhotographedByCurator {
			return false
		}
		return overlaps(coin, filter.From, filter.To)
	}
}

func searchable(coin *Coin) []string {
	texts := []string{coin.Nickname, coin.Denomination}
	for _, legend := range []*string{coin.ObverseLegend, coin.ReverseLegend} {
		if legend != nil {
			texts = append(texts, *legend)
		}
	}
	return texts
}

// overlaps reports whether the coin's dating intersects [from, to]. Undated
// coins only match an open window.
func overlaps(coin *Coin, from, to *int) bool {
	if from == nil && to == nil {
		return true
	}

	low, high := coin.YearEarliest, coin.YearLatest
	if low == nil {
		low = high
	}
	if high == nil {
		high = low
	}
	if low == nil {
		return false
	}

	return (to == nil || *low <= *to) && (from == nil || *high >= *from)
}

// sortCoins orders coins in place. Missing values sort last in both
// directions; ties keep id order.
func sortCoins(coins []*Coin, key, direction string) {
	descending := strings.EqualFold(direction, "desc")

	compare := func(a, b *Coin) int {
		switch key {
		case SortName:
			return strings.Compare(strings.ToLower(a.Nickname), strings.ToLower(b.Nickname))
		case SortYear:
			return compareOptional(a.YearEarliest, b.YearEarliest, descending)
		case SortWeight:
			return compareOptional(a.WeightG, b.WeightG, descending)
		case SortAcquired:
			return compareOptional(optionalString(a.Acquisition.Date), optionalString(b.Acquisition.Date), descending)
		}
		return cmp.Compare(a.ID, b.ID)
	}

	slices.SortStableFunc(coins, func(a, b *Coin) int {
		result := compare(a, b)
		if descending && (key == SortName || key == "") {
			result = -result
		}
		if result == 0 {
			return cmp.Compare(a.ID, b.ID)
		}
		return result
	})
}

// compareOptional orders nil after every value and applies descending to
// the non-nil comparison only.
func compareOptional[T cmp.Ordered](a, b *T, descending bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case descending:
		return cmp.Compare(*b, *a)
	default:
		return cmp.Compare(*a, *b)
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
