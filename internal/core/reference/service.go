// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/taibuivan/moneta/internal/platform/apperr"
	"github.com/taibuivan/moneta/internal/platform/ctxutil"
	"github.com/taibuivan/moneta/internal/platform/validate"
	"github.com/taibuivan/moneta/pkg/pagination"
	"github.com/taibuivan/moneta/pkg/slice"
	"github.com/taibuivan/moneta/pkg/slug"
	"github.com/taibuivan/moneta/pkg/yearrange"
)

// Dating bounds shared with coins. There is no year 0.
const (
	minYear = -3000
	maxYear = 2100
)

// # Service Layer

// Service orchestrates business rules for reference records of every kind.
type Service struct {
	repo   Repository
	slugs  *slug.Memo
	logger *slog.Logger
}

// NewService constructs a new reference [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, slugs: &slug.Memo{}, logger: logger}
}

// # Lookups

/*
List provides a paginated search over one kind.

Parameters:
  - context: context.Context
  - kind: Kind
  - filter: Filter (Search query)
  - page: pagination.Params

Returns:
  - []*Entry: Decorated matches
  - int: Total record count for pagination
  - error: Retrieval errors
*/
func (service *Service) List(context context.Context, kind Kind, filter Filter, page pagination.Params) ([]*Entry, int, error) {
	entries, total, err := service.repo.List(context, kind, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	for _, entry := range entries {
		service.decorate(entry)
	}
	return entries, total, nil
}

// Get resolves an entry by numeric id or by slug segment ("3-athena").
func (service *Service) Get(context context.Context, kind Kind, identifier string) (*Entry, error) {
	id, err := strconv.Atoi(identifier)
	if err != nil {
		id = slug.ExtractID(identifier)
	}
	if id <= 0 {
		return nil, apperr.NotFound(kind.Label())
	}

	entry, err := service.repo.FindByID(context, kind, id)
	if err != nil {
		return nil, notFound(kind, err)
	}

	service.decorate(entry)
	return entry, nil
}

/*
Map returns the map markers of a geographic kind.

Entries missing either coordinate are left off the map. Non-geographic
kinds answer BAD_REQUEST.
*/
func (service *Service) Map(context context.Context, kind Kind) ([]GeoPoint, error) {
	if !kind.Geographic() {
		return nil, apperr.BadRequest(kind.Label() + " records have no coordinates")
	}

	entries, err := service.repo.Located(context, kind)
	if err != nil {
		return nil, err
	}

	points := []GeoPoint{}
	located := slice.Filter(entries, func(entry *Entry) bool { return entry.Latitude != nil && entry.Longitude != nil })
	return append(points, slice.Map(located, func(entry *Entry) GeoPoint {
		service.decorate(entry)
		return GeoPoint{
			ID:        entry.ID,
			Name:      entry.Name,
			Slug:      entry.Slug,
			YearRange: entry.YearRange,
			Latitude:  *entry.Latitude,
			Longitude: *entry.Longitude,
		}
	})...), nil
}

// # Mutations

// Create validates and persists a new entry of kind.
func (service *Service) Create(context context.Context, kind Kind, entry *Entry) error {
	entry.Kind = kind
	normalize(entry)
	if err := validateEntry(entry); err != nil {
		return err
	}

	if err := service.repo.Create(context, entry); err != nil {
		return err
	}

	service.decorate(entry)
	service.logger.InfoContext(context, "reference_created",
		slog.String("kind", string(kind)),
		slog.Int("id", entry.ID),
		slog.String("actor", ctxutil.ActorID(context)),
	)
	return nil
}

// Update replaces every editable field of entry id.
func (service *Service) Update(context context.Context, kind Kind, id int, entry *Entry) error {
	entry.Kind, entry.ID = kind, id
	normalize(entry)
	if err := validateEntry(entry); err != nil {
		return err
	}

	if err := service.repo.Update(context, entry); err != nil {
		return notFound(kind, err)
	}

	service.decorate(entry)
	service.logger.InfoContext(context, "reference_updated",
		slog.String("kind", string(kind)),
		slog.Int("id", id),
		slog.String("actor", ctxutil.ActorID(context)),
	)
	return nil
}

// Delete soft-deletes entry id. Coins keep their link to it.
func (service *Service) Delete(context context.Context, kind Kind, id int) error {
	if err := service.repo.Delete(context, kind, id); err != nil {
		return notFound(kind, err)
	}

	service.logger.WarnContext(context, "reference_deleted",
		slog.String("kind", string(kind)),
		slog.Int("id", id),
		slog.String("actor", ctxutil.ActorID(context)),
	)
	return nil
}

// # Helpers

func (service *Service) decorate(entry *Entry) {
	entry.Slug = service.slugs.Make(entry.ID, entry.Name, entry.Kind.BasePath())
	entry.YearRange = yearrange.Format(entry.YearEarliest, entry.YearLatest)
	if entry.NameAlt == nil {
		entry.NameAlt = []string{}
	}
}

func normalize(entry *Entry) {
	entry.Name = strings.TrimSpace(entry.Name)
	entry.NameAlt = slice.Unique(slice.Filter(
		slice.Map(entry.NameAlt, strings.TrimSpace),
		func(name string) bool { return name != "" },
	))
}

// notFound names the kind in storage NOT_FOUND errors.
func notFound(kind Kind, err error) error {
	if apperr.IsNotFound(err) {
		return apperr.NotFound(kind.Label())
	}
	return err
}

func validateEntry(entry *Entry) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, entry.Name).MaxLen(FieldName, entry.Name, 200)
	for _, alt := range entry.NameAlt {
		validator.MaxLen(FieldNameAlt, alt, 200)
	}
	if entry.Description != nil {
		validator.MaxLen(FieldDescription, *entry.Description, 10000)
	}
	if entry.ImageURL != nil {
		validator.URL(FieldImageURL, *entry.ImageURL)
	}

	// Dating
	if entry.YearEarliest != nil {
		validator.Range(FieldYearEarliest, *entry.YearEarliest, minYear, maxYear).
			Custom(FieldYearEarliest, *entry.YearEarliest == 0, "Year 0 does not exist")
	}
	if entry.YearLatest != nil {
		validator.Range(FieldYearLatest, *entry.YearLatest, minYear, maxYear).
			Custom(FieldYearLatest, *entry.YearLatest == 0, "Year 0 does not exist")
	}
	if entry.YearEarliest != nil && entry.YearLatest != nil {
		validator.Custom(FieldYearLatest, *entry.YearLatest < *entry.YearEarliest, "Must not precede year_earliest")
	}

	// Coordinates come in pairs and only on geographic kinds
	located := entry.Latitude != nil || entry.Longitude != nil
	validator.Custom(FieldLatitude, located && !entry.Kind.Geographic(), "Not supported for "+string(entry.Kind)+" records")
	if entry.Kind.Geographic() && located {
		validator.Custom(FieldLatitude, entry.Latitude == nil, "Required with longitude").
			Custom(FieldLongitude, entry.Longitude == nil, "Required with latitude")
		if entry.Latitude != nil {
			validator.FloatRange(FieldLatitude, *entry.Latitude, -90, 90)
		}
		if entry.Longitude != nil {
			validator.FloatRange(FieldLongitude, *entry.Longitude, -180, 180)
		}
	}

	return validator.Err()
}
