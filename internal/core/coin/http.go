// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package coin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/moneta/internal/platform/middleware"
	requestutil "github.com/taibuivan/moneta/internal/platform/request"
	"github.com/taibuivan/moneta/internal/platform/respond"
	"github.com/taibuivan/moneta/internal/platform/sec"
	"github.com/taibuivan/moneta/internal/platform/validate"
	"github.com/taibuivan/moneta/pkg/convert"
	"github.com/taibuivan/moneta/pkg/imageid"
	"github.com/taibuivan/moneta/pkg/pagination"
	"github.com/taibuivan/moneta/pkg/query"
	"github.com/taibuivan/moneta/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for the coin catalog.
type Handler struct {
	service *Service
}

// NewHandler constructs a new coin [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the coin endpoints.
//
//   - Browsing (Public): list, detail, photographs.
//   - Editing (Curator): create, update, image-id preview.
//   - Deletion (Admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Browsing
	router.Get("/", handler.listCoins)
	router.Get("/{identifier}", handler.getCoin)
	router.Get("/{identifier}/images", handler.listImages)

	// ## Catalog Editing
	router.Group(func(curator chi.Router) {
		curator.Use(middleware.RequireRole(sec.RoleCurator))

		curator.Post("/", handler.createCoin)
		curator.Post("/image-id", handler.previewImageID)
		curator.Patch("/{id}", handler.updateCoin)

		curator.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteCoin)
	})

	return router
}

// # Coin Endpoints

/*
GET /api/v1/coins.

Request:
  - q: string (accent-insensitive search over nickname, denomination, legends)
  - metal: []string (repeated or comma separated)
  - ruler, mint, deity: int
  - from, to: int (year window, negative for BCE)
  - weight_min, weight_max: float (grams)
  - curator: bool (only coins photographed by the curator)
  - sort: string (name, year, acquired, weight)
  - dir: string (asc, desc)
  - page, limit: int

Response:
  - 200: []Coin
*/
func (handler *Handler) listCoins(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)
	values := request.URL.Query()

	filter := Filter{
		Query:               values.Get("q"),
		Metals:              slice.Map(query.Values(values, "metal"), func(metal string) Metal { return Metal(metal) }),
		RulerID:             requestutil.OptionalInt(request, "ruler"),
		MintID:              requestutil.OptionalInt(request, "mint"),
		DeityID:             requestutil.OptionalInt(request, "deity"),
		From:                requestutil.OptionalInt(request, "from"),
		To:                  requestutil.OptionalInt(request, "to"),
		MinWeight:           convert.ToFloatPtr(values.Get("weight_min")),
		MaxWeight:           convert.ToFloatPtr(values.Get("weight_max")),
		CuratorPhotographed: convert.ToBool(values.Get("curator")),
		Sort:                values.Get("sort"),
		SortDir:             values.Get("dir"),
	}

	validator := &validate.Validator{}
	if filter.Sort != "" {
		validator.OneOf("sort", filter.Sort, SortName, SortYear, SortAcquired, SortWeight)
	}
	if filter.SortDir != "" {
		validator.OneOf("dir", filter.SortDir, "asc", "desc")
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	coins, total, err := handler.service.List(request.Context(), filter, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, coins, pagination.NewMeta(page.Page, page.Limit, total))
}

/*
GET /api/v1/coins/{identifier}.

The identifier is a numeric id or a catalog slug segment ("42-hadrian-denarius").
*/
func (handler *Handler) getCoin(writer http.ResponseWriter, request *http.Request) {
	coin, err := handler.service.Get(request.Context(), requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, coin)
}

// GET /api/v1/coins/{identifier}/images.
func (handler *Handler) listImages(writer http.ResponseWriter, request *http.Request) {
	images, err := handler.service.Images(request.Context(), requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, images)
}

func (handler *Handler) createCoin(writer http.ResponseWriter, request *http.Request) {
	var input Coin
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

func (handler *Handler) updateCoin(writer http.ResponseWriter, request *http.Request) {
	coinID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Coin
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), coinID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteCoin(writer http.ResponseWriter, request *http.Request) {
	coinID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), coinID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// previewImageRequest mirrors the fields of the coin editing form.
type previewImageRequest struct {
	Nickname              string `json:"nickname"`
	Denomination          string `json:"denomination"`
	AcquisitionDate       string `json:"acquisition_date"`
	Vendor                string `json:"vendor"`
	View                  string `json:"view"`
	PhotographedByCurator bool   `json:"photographed_by_curator"`
}

/*
POST /api/v1/coins/image-id.

Always answers 200; an underivable key is reported in the body, not as an
error, so forms can show the hint inline.
*/
func (handler *Handler) previewImageID(writer http.ResponseWriter, request *http.Request) {
	var input previewImageRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, handler.service.PreviewImageID(imageid.Input{
		Nickname:              input.Nickname,
		Denomination:          input.Denomination,
		AcquisitionDate:       input.AcquisitionDate,
		Vendor:                input.Vendor,
		View:                  imageid.View(input.View),
		PhotographedByCurator: input.PhotographedByCurator,
	}))
}
