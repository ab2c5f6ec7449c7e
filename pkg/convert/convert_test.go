// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/moneta/pkg/convert"
)

func TestToBool(t *testing.T) {
	assert.True(t, convert.ToBool("true"))
	assert.True(t, convert.ToBool("1"))
	assert.False(t, convert.ToBool(""))
	assert.False(t, convert.ToBool("yes"))
}

func TestToFloatPtr(t *testing.T) {
	value := convert.ToFloatPtr("3.41")
	if assert.NotNil(t, value) {
		assert.InDelta(t, 3.41, *value, 1e-9)
	}
	assert.Nil(t, convert.ToFloatPtr(""))
	assert.Nil(t, convert.ToFloatPtr("heavy"))
}
