// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/moneta/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, slice.Map([]int{1, 2}, strconv.Itoa))
	assert.Nil(t, slice.Map[int, string](nil, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, []int{2, 4}, slice.Filter([]int{1, 2, 3, 4}, even))
	assert.Nil(t, slice.Filter([]int{1, 3}, even))
}

func TestAny(t *testing.T) {
	negative := func(v int) bool { return v < 0 }

	assert.True(t, slice.Any([]int{3, -44}, negative))
	assert.False(t, slice.Any([]int{3, 44}, negative))
	assert.False(t, slice.Any(nil, negative))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, slice.Unique([]int{3, 1, 3, 2, 1}))
	assert.Nil(t, slice.Unique[int](nil))
}
