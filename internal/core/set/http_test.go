package set_test

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

	"github.com/taibuivan/moneta/internal/core/set"
	"github.com/taibuivan/moneta/internal/platform/middleware"
	"github.com/taibuivan/moneta/internal/platform/sec"
)

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

func newTestRouter() http.Handler {
	service, _ := newTestService(severanDynasty())

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(roleVerifier{}))
	router.Mount("/sets", set.NewHandler(service).Routes())
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

func TestHandler_GetMember(t *testing.T) {
	router := newTestRouter()

	recorder := serve(router, http.MethodGet, "/sets/severan-dynasty/7-septimius", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data set.Membership `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "/sets/severan-dynasty/7-septimius-severus", body.Data.Slug)
	assert.Equal(t, 7, body.Data.Coin.ID)

	recorder = serve(router, http.MethodGet, "/sets/severan-dynasty/septimius", "", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_ListSets_ByCoin(t *testing.T) {
	tests := []struct {
		target string
		total  int
	}{
		{"/sets?coin=42", 1},
		{"/sets?coin=50,51", 0},
		{"/sets?coin=x&coin=7", 1},
	}

	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			recorder := serve(router, http.MethodGet, tt.target, "", "")
			require.Equal(t, http.StatusOK, recorder.Code)

			var body struct {
				Meta struct {
					Total int `json:"total"`
				} `json:"meta"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.total, body.Meta.Total)
		})
	}
}

func TestHandler_Access(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		role   string
		body   string
		want   int
	}{
		{name: "public_list", method: http.MethodGet, target: "/sets", want: http.StatusOK},
		{name: "public_detail", method: http.MethodGet, target: "/sets/severan-dynasty", want: http.StatusOK},
		{name: "anonymous_create", method: http.MethodPost, target: "/sets", body: `{"name":"Owls"}`, want: http.StatusUnauthorized},
		{name: "viewer_create", method: http.MethodPost, target: "/sets", role: "viewer", body: `{"name":"Owls"}`, want: http.StatusForbidden},
		{name: "curator_create", method: http.MethodPost, target: "/sets", role: "curator", body: `{"name":"Owls"}`, want: http.StatusCreated},
		{name: "curator_update", method: http.MethodPatch, target: "/sets/1", role: "curator", body: `{"name":"Severans","coin_ids":[7]}`, want: http.StatusOK},
		{name: "curator_delete", method: http.MethodDelete, target: "/sets/1", role: "curator", want: http.StatusForbidden},
		{name: "admin_delete", method: http.MethodDelete, target: "/sets/1", role: "admin", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(newTestRouter(), tt.method, tt.target, tt.role, tt.body)
			assert.Equal(t, tt.want, recorder.Code, recorder.Body.String())
		})
	}
}
