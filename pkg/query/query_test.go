// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/moneta/pkg/query"
)

func TestIntSlice(t *testing.T) {
	assert.Equal(t, []int{1, 3}, query.IntSlice([]string{"1", "x", " 3"}))
	assert.Nil(t, query.IntSlice(nil))
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"gold", "silver"}, query.StringSlice(" gold, ,silver "))
	assert.Nil(t, query.StringSlice(""))
}

func TestValues(t *testing.T) {
	values, err := url.ParseQuery("metal=gold,silver&metal=bronze")
	assert.NoError(t, err)
	assert.Equal(t, []string{"gold", "silver", "bronze"}, query.Values(values, "metal"))
	assert.Nil(t, query.Values(values, "ruler"))
}
