// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/moneta/internal/platform/ctxutil"
	"github.com/taibuivan/moneta/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies that token claims can be stored in context.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-123"},
		AppMetadata:      sec.AppMetadata{Role: "curator"},
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithAuthUser(ctx, claims)
	retrieved := ctxutil.GetAuthUser(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "user-123", retrieved.UserID())
	assert.Equal(t, sec.RoleCurator, retrieved.Role())
}

func TestContext_ActorID(t *testing.T) {
	assert.Empty(t, ctxutil.ActorID(context.Background()))

	claims := &sec.AuthClaims{}
	claims.Subject = "user-9"
	assert.Equal(t, "user-9", ctxutil.ActorID(ctxutil.WithAuthUser(context.Background(), claims)))
}

/*
TestContext_HasRole checks the role hierarchy against stored claims.
*/
func TestContext_HasRole(t *testing.T) {
	ctx := context.Background()
	assert.False(t, ctxutil.HasRole(ctx, sec.RoleViewer))

	ctx = ctxutil.WithAuthUser(ctx, &sec.AuthClaims{AppMetadata: sec.AppMetadata{Role: "admin"}})
	assert.True(t, ctxutil.HasRole(ctx, sec.RoleCurator))
	assert.True(t, ctxutil.HasRole(ctx, sec.RoleAdmin))
}
