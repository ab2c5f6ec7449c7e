// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/moneta/internal/core/coin"
	"github.com/taibuivan/moneta/internal/platform/apperr"
	"github.com/taibuivan/moneta/internal/platform/ctxutil"
	"github.com/taibuivan/moneta/internal/platform/validate"
	"github.com/taibuivan/moneta/pkg/pagination"
	"github.com/taibuivan/moneta/pkg/slice"
	"github.com/taibuivan/moneta/pkg/slug"
)

// # Service Layer

// Service handles business logic for coin sets.
type Service struct {
	repo   Repository
	coins  CoinCatalog
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, coins CoinCatalog, logger *slog.Logger) *Service {
	return &Service{repo: repo, coins: coins, logger: logger}
}

// # Set Lookups

// List returns one page of sets, without member details.
func (service *Service) List(context context.Context, filter Filter, page pagination.Params) ([]*Set, int, error) {
	sets, total, err := service.repo.List(context, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	for _, s := range sets {
		normalizeMembers(s)
	}
	return sets, total, nil
}

/*
Get retrieves a set by slug together with its member summaries.

Member slugs are scoped to the set ("/sets/{slug}/{id}-{label}"). Members
that were deleted from the catalog are skipped.
*/
func (service *Service) Get(context context.Context, setSlug string) (*Set, error) {
	s, err := service.findBySlug(context, setSlug)
	if err != nil {
		return nil, err
	}

	members, err := service.coins.Lookup(context, s.CoinIDs)
	if err != nil {
		return nil, err
	}

	s.Coins = slice.Map(members, func(c *coin.Coin) Member {
		return Member{
			ID:        c.ID,
			Nickname:  c.Nickname,
			Slug:      slug.MakeScoped(s.Slug, c.ID, c.Nickname),
			YearRange: c.YearRange,
			ImageIDs:  c.ImageIDs,
		}
	})
	return s, nil
}

/*
GetMember resolves a coin through one of its sets.

Parameters:
  - setSlug: The set slug ("severan-dynasty")
  - coinSlug: A catalog slug segment ("42-caracalla-antoninianus")

Returns:
  - *Membership: The coin with its scoped slug
  - error: NOT_FOUND when coinSlug carries no id or the coin is not a member
*/
func (service *Service) GetMember(context context.Context, setSlug, coinSlug string) (*Membership, error) {
	if !slug.IsCatalogSlug(coinSlug) {
		return nil, apperr.NotFound("Coin")
	}
	coinID := slug.ExtractID(coinSlug)

	s, err := service.findBySlug(context, setSlug)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(s.CoinIDs, coinID) {
		return nil, apperr.NotFound("Coin")
	}

	found, err := service.coins.Lookup(context, []int{coinID})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, apperr.NotFound("Coin")
	}

	return &Membership{
		Set:  Summary{ID: s.ID, Name: s.Name, Slug: s.Slug},
		Slug: slug.MakeScoped(s.Slug, coinID, found[0].Nickname),
		Coin: found[0],
	}, nil
}

func (service *Service) findBySlug(context context.Context, setSlug string) (*Set, error) {
	s, err := service.repo.FindBySlug(context, setSlug)
	if apperr.IsNotFound(err) {
		return nil, apperr.NotFound("Set")
	}
	if err != nil {
		return nil, err
	}

	normalizeMembers(s)
	return s, nil
}

// # Set Mutations

// Create validates and persists a new set. An empty slug is derived from
// the name.
func (service *Service) Create(context context.Context, s *Set) error {
	prepare(s)
	if err := validateSet(s); err != nil {
		return err
	}

	if err := service.repo.Create(context, s); err != nil {
		return err
	}

	service.logger.InfoContext(context, "set_created",
		slog.Int("set_id", s.ID),
		slog.String("slug", s.Slug),
		slog.String("actor", ctxutil.ActorID(context)),
	)
	return nil
}

// Update replaces the fields and the member list of set id.
func (service *Service) Update(context context.Context, id int, s *Set) error {
	s.ID = id
	prepare(s)
	if err := validateSet(s); err != nil {
		return err
	}

	if err := service.repo.Update(context, s); err != nil {
		if apperr.IsNotFound(err) {
			return apperr.NotFound("Set")
		}
		return err
	}

	service.logger.InfoContext(context, "set_updated",
		slog.Int("set_id", id),
		slog.Int("members", len(s.CoinIDs)),
		slog.String("actor", ctxutil.ActorID(context)),
	)
	return nil
}

// Delete soft-deletes set id. Member coins are untouched.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		if apperr.IsNotFound(err) {
			return apperr.NotFound("Set")
		}
		return err
	}

	service.logger.WarnContext(context, "set_deleted", slog.Int("set_id", id), slog.String("actor", ctxutil.ActorID(context)))
	return nil
}

// # Helpers

func prepare(s *Set) {
	s.Name = strings.TrimSpace(s.Name)
	s.Slug = strings.TrimSpace(s.Slug)
	if s.Slug == "" {
		s.Slug = slug.Sanitize(s.Name)
	}
	s.CoinIDs = slice.Unique(s.CoinIDs)
	normalizeMembers(s)
}

func normalizeMembers(s *Set) {
	if s.CoinIDs == nil {
		s.CoinIDs = []int{}
	}
}

func validateSet(s *Set) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, s.Name).MaxLen(FieldName, s.Name, 200)
	validator.Required(FieldSlug, s.Slug).Slug(FieldSlug, s.Slug).MaxLen(FieldSlug, s.Slug, 200)
	validator.Custom(FieldSlug, slug.IsCatalogSlug(s.Slug), "Must not start with a number followed by a hyphen")

	if s.Description != nil {
		validator.MaxLen(FieldDescription, *s.Description, 5000)
	}
	validator.Custom(FieldCoinIDs, slice.Any(s.CoinIDs, func(id int) bool { return id <= 0 }), "Must contain positive ids")

	return validator.Err()
}
