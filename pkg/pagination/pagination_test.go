// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/moneta/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected pagination.Params
	}{
		{"defaults", "/coins", pagination.Params{Page: 1, Limit: 20}},
		{"explicit", "/coins?page=3&limit=50", pagination.Params{Page: 3, Limit: 50}},
		{"negative_page", "/coins?page=-2", pagination.Params{Page: 1, Limit: 20}},
		{"limit_over_max", "/coins?limit=500", pagination.Params{Page: 1, Limit: 20}},
		{"garbage", "/coins?page=x&limit=y", pagination.Params{Page: 1, Limit: 20}},
		{"huge_page", "/coins?page=922337203685477581", pagination.Params{Page: pagination.MaxPage, Limit: 20}},
		{"max_int_page", "/coins?page=9223372036854775807&limit=100", pagination.Params{Page: pagination.MaxPage, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pagination.FromRequest(httptest.NewRequest("GET", tt.url, nil)))
		})
	}
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, 3, pagination.NewMeta(1, 20, 41).TotalPages)
	assert.Equal(t, 0, pagination.NewMeta(1, 20, 0).TotalPages)
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, pagination.Window(items, pagination.Params{Page: 1, Limit: 2}))
	assert.Equal(t, []int{5}, pagination.Window(items, pagination.Params{Page: 3, Limit: 2}))
	assert.Equal(t, []int{}, pagination.Window(items, pagination.Params{Page: 4, Limit: 2}))
}

func TestWindow_HugePage(t *testing.T) {
	items := []int{1, 2, 3}

	for _, url := range []string{"/coins?page=922337203685477581", "/coins?page=9223372036854775807&limit=100"} {
		t.Run(url, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest("GET", url, nil))

			assert.GreaterOrEqual(t, params.Offset(), 0)
			assert.Equal(t, []int{}, pagination.Window(items, params))
		})
	}

	unclamped := pagination.Params{Page: math.MaxInt, Limit: 20}
	assert.Equal(t, math.MaxInt, unclamped.Offset())
	assert.Equal(t, []int{}, pagination.Window(items, unclamped))
}
