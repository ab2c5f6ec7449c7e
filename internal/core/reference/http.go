// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/moneta/internal/platform/middleware"
	requestutil "github.com/taibuivan/moneta/internal/platform/request"
	"github.com/taibuivan/moneta/internal/platform/respond"
	"github.com/taibuivan/moneta/internal/platform/sec"
	"github.com/taibuivan/moneta/pkg/pagination"
)

// Handler implements the HTTP layer for reference records.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/*
Routes returns the endpoints of one kind, mounted at /{kind.Collection()}.

# Access Control

  - Public: list, detail and (mints, places) the map markers.
  - Curator: create and update.
  - Admin: deletion.
*/
func (handler *Handler) Routes(kind Kind) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list(kind))
	if kind.Geographic() {
		router.Get("/map", handler.geoPoints(kind))
	}
	router.Get("/{identifier}", handler.get(kind))

	router.Group(func(curator chi.Router) {
		curator.Use(middleware.RequireRole(sec.RoleCurator))

		curator.Post("/", handler.create(kind))
		curator.Patch("/{id}", handler.update(kind))

		curator.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.delete(kind))
	})

	return router
}

/*
GET /api/v1/{kind}.

Request:
  - q: string (name or alternative name contains)
  - page, limit: int

Response:
  - 200: []Entry
*/
func (handler *Handler) list(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		page := pagination.FromRequest(request)

		entries, total, err := handler.service.List(request.Context(), kind, Filter{Query: request.URL.Query().Get("q")}, page)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Paginated(writer, entries, pagination.NewMeta(page.Page, page.Limit, total))
	}
}

// GET /api/v1/{kind}/{identifier}, where identifier is an id or "{id}-{label}".
func (handler *Handler) get(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		entry, err := handler.service.Get(request.Context(), kind, requestutil.Param(request, "identifier"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, entry)
	}
}

// GET /api/v1/{mints,places}/map.
func (handler *Handler) geoPoints(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		points, err := handler.service.Map(request.Context(), kind)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, points)
	}
}

func (handler *Handler) create(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input Entry
		if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		if err := handler.service.Create(request.Context(), kind, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, input)
	}
}

func (handler *Handler) update(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, err := requestutil.IntID(request, "id")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		var input Entry
		if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		if err := handler.service.Update(request.Context(), kind, id, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, input)
	}
}

func (handler *Handler) delete(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, err := requestutil.IntID(request, "id")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		if err := handler.service.Delete(request.Context(), kind, id); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.NoContent(writer)
	}
}
