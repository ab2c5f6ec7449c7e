// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for optional query
parameters.

Malformed input is treated like absent input. Do not use this package where
the caller must distinguish the two; use [strconv] directly instead.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	if s == "" {
		return false
	}

	v, _ := strconv.ParseBool(s)
	return v
}

// ToFloatPtr parses s as a float64, returning nil when s is empty or invalid.
func ToFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}
