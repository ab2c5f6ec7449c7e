// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package set manages themed sets of coins, such as "Severan dynasty" or
"Twelve Caesars".

A set has its own slug, and the coins inside it are addressed with scoped
catalog slugs ("/sets/severan-dynasty/42-caracalla-antoninianus") so a coin
can be browsed in the context of each set it belongs to.
*/
package set

import (
	"time"

	"github.com/taibuivan/moneta/internal/core/coin"
)

// # Core Entities

// Set is an ordered, curated group of coins.
type Set struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description"`
	CoinIDs     []int      `json:"coin_ids"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`

	// Coins is populated on detail reads only.
	Coins []Member `json:"coins,omitempty"`
}

// Member is the summary of one coin as listed inside a set.
type Member struct {
	ID        int      `json:"id"`
	Nickname  string   `json:"nickname"`
	Slug      string   `json:"slug"`
	YearRange string   `json:"year_range"`
	ImageIDs  []string `json:"image_ids"`
}

// Summary identifies a set without its members.
type Summary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Membership is a coin viewed through one of its sets.
type Membership struct {
	Set  Summary    `json:"set"`
	Slug string     `json:"slug"`
	Coin *coin.Coin `json:"coin"`
}

// # Search & Filtering

// Filter holds parameters for listing sets.
type Filter struct {
	Query   string // Case-insensitive match against name
	CoinIDs []int  // Sets containing any of these coins
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldCoinIDs     = "coin_ids"
)
