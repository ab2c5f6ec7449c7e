// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import (
	"context"

	"github.com/taibuivan/moneta/internal/core/coin"
)

// Repository defines the persistence contract for sets and their members.
type Repository interface {
	List(context context.Context, filter Filter, limit, offset int) ([]*Set, int, error)
	FindByID(context context.Context, id int) (*Set, error)
	FindBySlug(context context.Context, slug string) (*Set, error)

	// Create and Update persist CoinIDs as the ordered member list.
	Create(context context.Context, s *Set) error
	Update(context context.Context, s *Set) error

	Delete(context context.Context, id int) error
}

// CoinCatalog resolves member ids to decorated coins. [coin.Service]
// implements it.
type CoinCatalog interface {
	Lookup(context context.Context, ids []int) ([]*coin.Coin, error)
}
