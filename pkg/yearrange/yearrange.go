// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package yearrange formats signed years for display.
//
// Negative years are Before Common Era, positive years are Common Era. There
// is no year zero: a 0 is treated the same as a missing value.
package yearrange

import "strconv"

// Format renders a range of years in parentheses:
//
//	Format(-102, -101) // "(102—101 BCE)"
//	Format(98, 117)    // "(98—117 CE)"
//	Format(-27, 14)    // "(27 BCE—14 CE)"
//
// The order of the inputs is kept as given. It returns "" when either bound
// is nil or 0, or when a positive year is followed by a negative one.
func Format(earliest, latest *int) string {
	if earliest == nil || latest == nil || *earliest == 0 || *latest == 0 {
		return ""
	}

	from, to := *earliest, *latest
	switch {
	case from > 0 && to > 0:
		return "(" + strconv.Itoa(from) + "—" + strconv.Itoa(to) + " CE)"
	case from < 0 && to < 0:
		return "(" + strconv.Itoa(-from) + "—" + strconv.Itoa(-to) + " BCE)"
	case from < 0 && to > 0:
		return "(" + strconv.Itoa(-from) + " BCE—" + strconv.Itoa(to) + " CE)"
	default:
		return ""
	}
}

// FormatYear renders a single year with its era ("27 BCE", "14 CE"), or ""
// for nil and 0.
func FormatYear(year *int) string {
	if year == nil || *year == 0 {
		return ""
	}
	if *year < 0 {
		return strconv.Itoa(-*year) + " BCE"
	}
	return strconv.Itoa(*year) + " CE"
}
