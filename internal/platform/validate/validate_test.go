// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/moneta/internal/platform/apperr"
	"github.com/taibuivan/moneta/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "nickname", "Trajan Sestertius", false},
		{"empty_string", "nickname", "", true},
		{"whitespace_only", "nickname", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Date checks the acquisition date format rule.
*/
func TestValidator_Date(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		isValid bool
	}{
		{"iso_date", "2024-03-05", true},
		{"leap_day", "2024-02-29", true},
		{"not_a_leap_day", "2023-02-29", false},
		{"timestamp", "2024-03-05T10:00:00Z", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Date("acquired_on", tt.date)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_URL checks the image URL rule.
*/
func TestValidator_URL(t *testing.T) {
	assert.False(t, (&validate.Validator{}).URL("image_url", "https://images.example.com/a.jpg").HasErrors())
	assert.True(t, (&validate.Validator{}).URL("image_url", "ftp://example.com/a.jpg").HasErrors())
	assert.True(t, (&validate.Validator{}).URL("image_url", "/relative/path.jpg").HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("nickname", "").                     // Fails
		Slug("slug", "Not A Slug").                   // Fails
		FloatRange("latitude", 120, -90, 90).         // Fails
		OneOf("metal", "gold", "AV", "AR", "AE").     // Fails
		Custom("year_latest", true, "Out of order"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 5)
}
