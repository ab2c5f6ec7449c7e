// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package coin

import (
	"context"
	"time"
)

// # Data Access

// Repository defines the persistence contract for coins.
type Repository interface {

	// List returns every live coin with its deity links. The catalog is small
	// enough that filtering and sorting happen in the service.
	List(context context.Context) ([]*Coin, error)

	// FindByID returns a live coin or dberr.ErrNotFound.
	FindByID(context context.Context, id int) (*Coin, error)

	// FindByIDs returns the live coins among ids, in no particular order.
	FindByIDs(context context.Context, ids []int) ([]*Coin, error)

	// Create inserts c and fills its ID and timestamps.
	Create(context context.Context, c *Coin) error

	// Update replaces the stored fields and deity links of c.
	Update(context context.Context, c *Coin) error

	// Delete soft-deletes a coin.
	Delete(context context.Context, id int) error
}

// # Detail Cache

// Cache stores decorated-free coin records keyed by id.
type Cache interface {

	// Get returns (nil, nil) on a miss.
	Get(context context.Context, id int) (*Coin, error)

	Set(context context.Context, c *Coin) error

	Invalidate(context context.Context, id int) error
}

// # Photographs

// ImageStore resolves image ids to downloadable objects.
type ImageStore interface {
	Exists(context context.Context, imageID string) (bool, error)
	PresignGet(context context.Context, imageID string, ttl time.Duration) (string, error)
}
