// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package coin_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/moneta/internal/core/coin"
	"github.com/taibuivan/moneta/internal/platform/middleware"
	"github.com/taibuivan/moneta/internal/platform/sec"
	"github.com/taibuivan/moneta/pkg/pagination"
)

// roleVerifier accepts the role name itself as the bearer token.
type roleVerifier struct{}

func (roleVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	switch sec.UserRole(token) {
	case sec.RoleViewer, sec.RoleCurator, sec.RoleAdmin:
		return &sec.AuthClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-" + token},
			AppMetadata:      sec.AppMetadata{Role: token},
		}, nil
	}
	return nil, errors.New("invalid token")
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	service, _ := newTestService(nil, nil)
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(roleVerifier{}))
	router.Mount("/coins", coin.NewHandler(service).Routes())
	return router
}

func serve(router http.Handler, method, target, role, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if role != "" {
		request.Header.Set("Authorization", "Bearer "+role)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_ListCoins(t *testing.T) {
	router := newTestRouter(t)

	recorder := serve(router, http.MethodGet, "/coins?metal=silver&sort=year&dir=asc", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []coin.Coin     `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	require.Len(t, body.Data, 2)
	assert.Equal(t, "/coin/3-athena-owl", body.Data[0].Slug)
	assert.Equal(t, "(454—404 BCE)", body.Data[0].YearRange)
	assert.Equal(t, 2, body.Meta.Total)
}

func TestHandler_ListCoins_InvalidSort(t *testing.T) {
	recorder := serve(newTestRouter(t), http.MethodGet, "/coins?sort=popular", "", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_GetCoin(t *testing.T) {
	router := newTestRouter(t)

	recorder := serve(router, http.MethodGet, "/coins/1-hadrian", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"slug":"/coin/1-hadrian"`)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/coins/hadrian", "", "").Code)
}

func TestHandler_ListImages_NoStore(t *testing.T) {
	recorder := serve(newTestRouter(t), http.MethodGet, "/coins/1/images", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

/*
TestHandler_Access checks the role required by each mutating route.
*/
func TestHandler_Access(t *testing.T) {
	const newCoin = `{"nickname":"Trajan","denomination":"Sestertius","metal":"orichalcum"}`

	tests := []struct {
		name     string
		method   string
		target   string
		role     string
		body     string
		expected int
	}{
		{"create_anonymous", http.MethodPost, "/coins", "", newCoin, http.StatusUnauthorized},
		{"create_viewer", http.MethodPost, "/coins", "viewer", newCoin, http.StatusForbidden},
		{"create_curator", http.MethodPost, "/coins", "curator", newCoin, http.StatusCreated},
		{"create_invalid_json", http.MethodPost, "/coins", "curator", `{"nickname":`, http.StatusBadRequest},
		{"update_curator", http.MethodPatch, "/coins/3", "curator", `{"nickname":"Owl"}`, http.StatusOK},
		{"update_bad_id", http.MethodPatch, "/coins/abc", "curator", `{"nickname":"Owl"}`, http.StatusBadRequest},
		{"update_missing", http.MethodPatch, "/coins/99", "curator", `{"nickname":"Owl"}`, http.StatusNotFound},
		{"delete_curator", http.MethodDelete, "/coins/1", "curator", "", http.StatusForbidden},
		{"delete_admin", http.MethodDelete, "/coins/1", "admin", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(newTestRouter(t), tt.method, tt.target, tt.role, tt.body)
			assert.Equal(t, tt.expected, recorder.Code, recorder.Body.String())
		})
	}
}

func TestHandler_PreviewImageID(t *testing.T) {
	router := newTestRouter(t)

	recorder := serve(router, http.MethodPost, "/coins/image-id", "curator",
		`{"nickname":"Hadrian","denomination":"Denarius","acquisition_date":"2024-03-05","view":"sketch-o","photographed_by_curator":true}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data coin.ImagePreview `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "20240305__hadrian-denarius__sketch-o__curator", body.Data.ID)

	recorder = serve(router, http.MethodPost, "/coins/image-id", "curator", `{"nickname":"Hadrian"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), coin.HintInvalidImageID)
}
