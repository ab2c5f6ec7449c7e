// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/moneta/internal/platform/config"
)

/*
TestLoad_Defaults checks defaults when only the required variables are set.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/moneta")
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 15*time.Minute, cfg.ImageURLTTL)
	assert.False(t, cfg.ImageStoreEnabled())
	assert.Empty(t, cfg.AllowedOrigins())
}

/*
TestLoad_MissingRequired fails without a database URL.
*/
func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTH_JWT_SECRET", "secret")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestConfig_AllowedOrigins(t *testing.T) {
	cfg := &config.Config{ExtraOrigins: " https://moneta.example , ,https://admin.moneta.example"}
	assert.Equal(t, []string{"https://moneta.example", "https://admin.moneta.example"}, cfg.AllowedOrigins())
}
