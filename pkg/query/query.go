// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses repeated and comma separated list filters from URL
// query strings.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// IntSlice parses a slice of string values from URL query parameters
// into a slice of integers. Invalid entries are ignored safely.
func IntSlice(vals []string) []int {
	var res []int
	for _, v := range vals {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			res = append(res, i)
		}
	}
	return res
}

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Values accepts both "?metal=gold&metal=silver" and "?metal=gold,silver".
func Values(values url.Values, key string) []string {
	var res []string
	for _, raw := range values[key] {
		res = append(res, StringSlice(raw)...)
	}
	return res
}
