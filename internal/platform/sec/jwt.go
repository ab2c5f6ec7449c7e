// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec verifies access tokens issued by the hosted auth provider.
//
// # Architecture
//
// Sign-in, sessions and refresh happen entirely at the provider. The API only
// checks the HS256 signature of the bearer token with the project's shared
// secret and reads the role granted in the token's app metadata.
package sec

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload of a provider-issued access token.
type AuthClaims struct {
	jwt.RegisteredClaims

	Email       string      `json:"email,omitempty"`
	AppMetadata AppMetadata `json:"app_metadata"`
}

// AppMetadata carries the provider-managed, user-immutable attributes.
type AppMetadata struct {
	Role string `json:"role,omitempty"`
}

// UserID returns the provider's user identifier (the "sub" claim).
func (c *AuthClaims) UserID() string {
	return c.Subject
}

// Role returns the catalog role granted to the user.
func (c *AuthClaims) Role() UserRole {
	return UserRole(c.AppMetadata.Role)
}

// TokenVerifier checks provider-issued HS256 tokens.
type TokenVerifier struct {
	secret []byte
	issuer string
}

// NewTokenVerifier creates a verifier for tokens signed with secret. When
// issuer is non-empty the "iss" claim must match it.
func NewTokenVerifier(secret, issuer string) (*TokenVerifier, error) {
	if secret == "" {
		return nil, errors.New("sec: empty token secret")
	}
	return &TokenVerifier{secret: []byte(secret), issuer: issuer}, nil
}

// VerifyToken checks the signature and validity of a JWT string.
func (verifier *TokenVerifier) VerifyToken(tokenString string) (*AuthClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if verifier.issuer != "" {
		options = append(options, jwt.WithIssuer(verifier.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return verifier.secret, nil
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("sec: invalid token claims")
	}

	return claims, nil
}
