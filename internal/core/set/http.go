// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/moneta/internal/platform/middleware"
	requestutil "github.com/taibuivan/moneta/internal/platform/request"
	"github.com/taibuivan/moneta/internal/platform/respond"
	"github.com/taibuivan/moneta/internal/platform/sec"
	"github.com/taibuivan/moneta/pkg/pagination"
	"github.com/taibuivan/moneta/pkg/query"
)

// Handler implements the HTTP layer for coin sets.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the set endpoints. Coins are browsed inside a set at
// /{slug}/{coinSlug}; membership changes go through PATCH /{id}.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSets)
	router.Get("/{slug}", handler.getSet)
	router.Get("/{slug}/{coinSlug}", handler.getMember)

	router.Group(func(curator chi.Router) {
		curator.Use(middleware.RequireRole(sec.RoleCurator))

		curator.Post("/", handler.createSet)
		curator.Patch("/{id}", handler.updateSet)

		curator.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteSet)
	})

	return router
}

/*
GET /api/v1/sets.

Request:
  - q: string (name contains)
  - coin: []int (sets holding any of these coins, repeated or comma separated)
  - page, limit: int
*/
func (handler *Handler) listSets(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)
	values := request.URL.Query()

	filter := Filter{
		Query:   values.Get("q"),
		CoinIDs: query.IntSlice(query.Values(values, "coin")),
	}

	sets, total, err := handler.service.List(request.Context(), filter, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, sets, pagination.NewMeta(page.Page, page.Limit, total))
}

// GET /api/v1/sets/{slug}.
func (handler *Handler) getSet(writer http.ResponseWriter, request *http.Request) {
	s, err := handler.service.Get(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

// GET /api/v1/sets/{slug}/{coinSlug}.
func (handler *Handler) getMember(writer http.ResponseWriter, request *http.Request) {
	membership, err := handler.service.GetMember(request.Context(),
		requestutil.Param(request, "slug"),
		requestutil.Param(request, "coinSlug"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, membership)
}

func (handler *Handler) createSet(writer http.ResponseWriter, request *http.Request) {
	var input Set
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateSet(writer http.ResponseWriter, request *http.Request) {
	setID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Set
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), setID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteSet(writer http.ResponseWriter, request *http.Request) {
	setID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), setID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
