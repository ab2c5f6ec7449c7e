// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package coin

import (
	"github.com/taibuivan/moneta/internal/platform/validate"
	"github.com/taibuivan/moneta/pkg/imageid"
)

// Catalog bounds for dated coins. There is no year 0.
const (
	minYear = -3000
	maxYear = 2100
)

// validateCoin checks field rules and the cross-field refinements that keep
// image ids derivable for every attached view.
func validateCoin(coin *Coin) error {
	validator := &validate.Validator{}

	validator.Required(FieldNickname, coin.Nickname).
		MaxLen(FieldNickname, coin.Nickname, 200).
		MaxLen(FieldDenomination, coin.Denomination, 100).
		MaxLen(FieldVendor, coin.Acquisition.Vendor, 200)

	if coin.Metal != "" {
		validator.OneOf(FieldMetal, string(coin.Metal), Metals()...)
	}

	// Dating
	if coin.YearEarliest != nil {
		validator.Range(FieldYearEarliest, *coin.YearEarliest, minYear, maxYear).
			Custom(FieldYearEarliest, *coin.YearEarliest == 0, "Year 0 does not exist")
	}
	if coin.YearLatest != nil {
		validator.Range(FieldYearLatest, *coin.YearLatest, minYear, maxYear).
			Custom(FieldYearLatest, *coin.YearLatest == 0, "Year 0 does not exist")
	}
	if coin.YearEarliest != nil && coin.YearLatest != nil {
		validator.Custom(FieldYearLatest, *coin.YearLatest < *coin.YearEarliest, "Must not precede year_earliest")
	}

	// Physical description
	if coin.WeightG != nil {
		validator.FloatRange(FieldWeight, *coin.WeightG, 0.01, 2000)
	}
	if coin.DiameterMM != nil {
		validator.FloatRange(FieldDiameter, *coin.DiameterMM, 1, 200)
	}
	for _, legend := range []*string{coin.ObverseLegend, coin.ReverseLegend} {
		if legend != nil {
			validator.MaxLen(FieldLegend, *legend, 500)
		}
	}
	if coin.Description != nil {
		validator.MaxLen(FieldDescription, *coin.Description, 10000)
	}
	for _, deityID := range coin.DeityIDs {
		validator.Custom(FieldDeityIDs, deityID < 1, "Must contain positive ids")
	}

	// Acquisition
	if coin.Acquisition.Date != "" {
		validator.Date(FieldAcquiredDate, coin.Acquisition.Date)
	}
	if coin.Acquisition.Price != nil {
		validator.FloatRange(FieldPrice, *coin.Acquisition.Price, 0, 1e9)
	}

	// Views
	seen := make(map[imageid.View]bool, len(coin.Views))
	for _, view := range coin.Views {
		validator.Custom(FieldViews, !view.IsValid(), "Unknown view "+string(view)).
			Custom(FieldViews, seen[view], "Duplicate view "+string(view))
		seen[view] = true
	}

	if len(coin.Views) > 0 {
		validator.
			Custom(FieldAcquiredDate, imageid.AcquisitionToken(coin.Acquisition.Date) == "",
				"Acquisition date is required when images are attached").
			Custom(FieldProvenance, !imageid.HasValidSource(coin.Acquisition.Vendor, coin.Acquisition.PhotographedByCurator),
				"Vendor or photographed_by_curator is required when images are attached").
			Custom(FieldNickname, imageid.RootToken(coin.Nickname, coin.Denomination) == "",
				"Nickname or denomination must contain letters or digits when images are attached")
	}

	return validator.Err()
}
