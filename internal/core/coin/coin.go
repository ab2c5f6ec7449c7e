// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package coin manages the coins of the catalog.

A coin carries its physical description, its links to reference records
(ruler, mint, deities) and its acquisition provenance. Three fields are never
stored: the catalog slug, the human readable year range and the image ids.
They are derived on every read from the stored fields, so a renamed coin or
a corrected acquisition date is reflected everywhere at once.
*/
package coin

import (
	"time"

	"github.com/taibuivan/moneta/pkg/imageid"
)

// # Domain Entity

// Coin is one physical specimen in the collection.
type Coin struct {
	ID           int      `json:"id"`
	Nickname     string   `json:"nickname"`
	Denomination string   `json:"denomination"`
	RulerID      *int     `json:"ruler_id"`
	MintID       *int     `json:"mint_id"`
	DeityIDs     []int    `json:"deity_ids"`
	YearEarliest *int     `json:"year_earliest"`
	YearLatest   *int     `json:"year_latest"`
	Metal        Metal    `json:"metal"`
	WeightG      *float64 `json:"weight_g"`
	DiameterMM   *float64 `json:"diameter_mm"`

	ObverseLegend *string `json:"obverse_legend"`
	ReverseLegend *string `json:"reverse_legend"`
	Description   *string `json:"description"`

	Acquisition Acquisition `json:"acquisition"`

	// Views lists the photographs taken of this coin.
	Views []imageid.View `json:"views"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`

	// Derived on read, ignored on write.
	Slug      string   `json:"slug"`
	YearRange string   `json:"year_range"`
	ImageIDs  []string `json:"image_ids"`
}

// Acquisition records how and when the coin entered the collection.
type Acquisition struct {
	// Date is YYYY-MM-DD, empty when unknown.
	Date                  string   `json:"date"`
	Vendor                string   `json:"vendor"`
	PhotographedByCurator bool     `json:"photographed_by_curator"`
	Price                 *float64 `json:"price"`
}

// ImageInput returns the key derivation input for one view of c.
func (c *Coin) ImageInput(view imageid.View) imageid.Input {
	return imageid.Input{
		Nickname:              c.Nickname,
		Denomination:          c.Denomination,
		AcquisitionDate:       c.Acquisition.Date,
		Vendor:                c.Acquisition.Vendor,
		View:                  view,
		PhotographedByCurator: c.Acquisition.PhotographedByCurator,
	}
}

// # Metal

// Metal is the alloy a coin is struck in.
type Metal string

const (
	MetalGold       Metal = "gold"
	MetalSilver     Metal = "silver"
	MetalBillon     Metal = "billon"
	MetalElectrum   Metal = "electrum"
	MetalOrichalcum Metal = "orichalcum"
	MetalBronze     Metal = "bronze"
	MetalCopper     Metal = "copper"
	MetalLead       Metal = "lead"
)

// Metals returns every accepted metal.
func Metals() []string {
	return []string{
		string(MetalGold), string(MetalSilver), string(MetalBillon), string(MetalElectrum),
		string(MetalOrichalcum), string(MetalBronze), string(MetalCopper), string(MetalLead),
	}
}

// # Image Views

// Image is one photograph of a coin, as served to clients.
type Image struct {
	View imageid.View `json:"view"`
	ID   string       `json:"id"`
	URL  string       `json:"url"`
}

// ImagePreview is the answer of the image-id form helper.
type ImagePreview struct {
	ID      string   `json:"id"`
	Valid   bool     `json:"valid"`
	Hint    string   `json:"hint,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// HintInvalidImageID is shown by editing forms when no key can be derived.
const HintInvalidImageID = "generate a valid id"

// # Search Params

// Sort keys accepted by [Filter].
const (
	SortName     = "name"
	SortYear     = "year"
	SortAcquired = "acquired"
	SortWeight   = "weight"
)

// Filter holds the in-memory listing criteria. Zero values disable a criterion.
type Filter struct {
	Query   string  // Case-insensitive match against nickname, denomination and legends
	Metals  []Metal // Any of
	RulerID *int
	MintID  *int
	DeityID *int
	From    *int // Year window; a coin matches when its range overlaps [From, To]
	To      *int

	MinWeight *float64 // Grams; unweighed coins never match a weight bound
	MaxWeight *float64

	CuratorPhotographed bool

	Sort    string // name, year, acquired, weight
	SortDir string // asc, desc
}

// # Field Identifiers

const (
	FieldNickname      = "nickname"
	FieldDenomination  = "denomination"
	FieldMetal         = "metal"
	FieldYearEarliest  = "year_earliest"
	FieldYearLatest    = "year_latest"
	FieldWeight        = "weight_g"
	FieldDiameter      = "diameter_mm"
	FieldLegend        = "legend"
	FieldDescription   = "description"
	FieldAcquiredDate  = "acquisition.date"
	FieldVendor        = "acquisition.vendor"
	FieldPrice         = "acquisition.price"
	FieldViews         = "views"
	FieldDeityIDs      = "deity_ids"
	FieldProvenance    = "acquisition"
)
