package reference_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/moneta/internal/core/reference"
	"github.com/taibuivan/moneta/internal/platform/apperr"
	"github.com/taibuivan/moneta/internal/platform/dberr"
	"github.com/taibuivan/moneta/pkg/pagination"
	"github.com/taibuivan/moneta/pkg/pointer"
)

// # Fakes

type entryKey struct {
	kind reference.Kind
	id   int
}

type memoryRepository struct {
	entries map[entryKey]reference.Entry
	nextID  int
}

func newMemoryRepository(entries ...reference.Entry) *memoryRepository {
	repository := &memoryRepository{entries: map[entryKey]reference.Entry{}, nextID: 100}
	for _, entry := range entries {
		repository.entries[entryKey{entry.Kind, entry.ID}] = entry
	}
	return repository
}

func (repository *memoryRepository) List(_ context.Context, kind reference.Kind, _ reference.Filter, limit, offset int) ([]*reference.Entry, int, error) {
	var entries []*reference.Entry
	for id := range 100 {
		if entry, found := repository.entries[entryKey{kind, id}]; found {
			entries = append(entries, &entry)
		}
	}
	total := len(entries)
	start := min(offset, total)
	return entries[start:min(start+limit, total)], total, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, kind reference.Kind, id int) (*reference.Entry, error) {
	entry, found := repository.entries[entryKey{kind, id}]
	if !found {
		return nil, dberr.ErrNotFound
	}
	return &entry, nil
}

func (repository *memoryRepository) Located(context context.Context, kind reference.Kind) ([]*reference.Entry, error) {
	entries, _, err := repository.List(context, kind, reference.Filter{}, 100, 0)
	return entries, err
}

func (repository *memoryRepository) Create(_ context.Context, entry *reference.Entry) error {
	entry.ID = repository.nextID
	repository.nextID++
	repository.entries[entryKey{entry.Kind, entry.ID}] = *entry
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, entry *reference.Entry) error {
	key := entryKey{entry.Kind, entry.ID}
	if _, found := repository.entries[key]; !found {
		return dberr.ErrNotFound
	}
	repository.entries[key] = *entry
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, kind reference.Kind, id int) error {
	key := entryKey{kind, id}
	if _, found := repository.entries[key]; !found {
		return dberr.ErrNotFound
	}
	delete(repository.entries, key)
	return nil
}

// # Fixtures

func newTestService() (*reference.Service, *memoryRepository) {
	repository := newMemoryRepository(
		reference.Entry{ID: 3, Kind: reference.KindDeity, Name: "Athéna", NameAlt: []string{"Minerva"}},
		reference.Entry{ID: 7, Kind: reference.KindFigure, Name: "Hadrian", YearEarliest: pointer.To(117), YearLatest: pointer.To(138)},
		reference.Entry{ID: 2, Kind: reference.KindMint, Name: "Athens", Latitude: pointer.To(37.97), Longitude: pointer.To(23.72),
			YearEarliest: pointer.To(-510), YearLatest: pointer.To(-38)},
		reference.Entry{ID: 4, Kind: reference.KindMint, Name: "Unknown eastern mint"},
	)
	return reference.NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil))), repository
}

// # Tests

func TestService_Get(t *testing.T) {
	tests := []struct {
		name       string
		kind       reference.Kind
		identifier string
		wantSlug   string
		wantRange  string
		wantErr    string
	}{
		{name: "numeric", kind: reference.KindDeity, identifier: "3", wantSlug: "/deity/3-athena"},
		{name: "slug_segment", kind: reference.KindFigure, identifier: "7-hadrianus", wantSlug: "/figure/7-hadrian", wantRange: "(117—138 CE)"},
		{name: "bce_mint", kind: reference.KindMint, identifier: "2", wantSlug: "/mint/2-athens", wantRange: "(510—38 BCE)"},
		{name: "wrong_kind", kind: reference.KindPlace, identifier: "3", wantErr: "Place not found"},
		{name: "no_id", kind: reference.KindDeity, identifier: "athena", wantErr: "Deity not found"},
	}

	service, _ := newTestService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := service.Get(context.Background(), tt.kind, tt.identifier)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, apperr.As(err).Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSlug, entry.Slug)
			assert.Equal(t, tt.wantRange, entry.YearRange)
		})
	}
}

func TestService_List(t *testing.T) {
	service, _ := newTestService()

	entries, total, err := service.List(context.Background(), reference.KindMint, reference.Filter{}, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{}, entries[1].NameAlt)
}

func TestService_Map(t *testing.T) {
	service, _ := newTestService()

	points, err := service.Map(context.Background(), reference.KindMint)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, reference.GeoPoint{
		ID: 2, Name: "Athens", Slug: "/mint/2-athens", YearRange: "(510—38 BCE)",
		Latitude: 37.97, Longitude: 23.72,
	}, points[0])

	_, err = service.Map(context.Background(), reference.KindDeity)
	assert.Equal(t, "BAD_REQUEST", apperr.As(err).Code)
}

func TestService_Create(t *testing.T) {
	service, repository := newTestService()

	input := &reference.Entry{Name: " Antioch ", NameAlt: []string{"Antiocheia", " ", "Antiocheia"}, Latitude: pointer.To(36.2), Longitude: pointer.To(36.16)}
	require.NoError(t, service.Create(context.Background(), reference.KindPlace, input))

	assert.Equal(t, "/place/100-antioch", input.Slug)
	stored := repository.entries[entryKey{reference.KindPlace, 100}]
	assert.Equal(t, []string{"Antiocheia"}, stored.NameAlt)
}

/*
TestService_Create_Validation covers the field rules shared by every kind.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		kind  reference.Kind
		input reference.Entry
		field string
	}{
		{name: "missing_name", kind: reference.KindDeity, input: reference.Entry{}, field: reference.FieldName},
		{name: "year_zero", kind: reference.KindFigure, input: reference.Entry{Name: "Augustus", YearEarliest: pointer.To(0)}, field: reference.FieldYearEarliest},
		{name: "reversed_reign", kind: reference.KindFigure, input: reference.Entry{Name: "Nero", YearEarliest: pointer.To(68), YearLatest: pointer.To(54)}, field: reference.FieldYearLatest},
		{name: "coordinates_on_deity", kind: reference.KindDeity, input: reference.Entry{Name: "Zeus", Latitude: pointer.To(40.0), Longitude: pointer.To(22.0)}, field: reference.FieldLatitude},
		{name: "half_coordinates", kind: reference.KindMint, input: reference.Entry{Name: "Rome", Longitude: pointer.To(12.5)}, field: reference.FieldLatitude},
		{name: "latitude_range", kind: reference.KindPlace, input: reference.Entry{Name: "Nowhere", Latitude: pointer.To(95.0), Longitude: pointer.To(0.0)}, field: reference.FieldLatitude},
		{name: "image_url", kind: reference.KindArtifact, input: reference.Entry{Name: "Hoard", ImageURL: pointer.To("ftp://x")}, field: reference.FieldImageURL},
	}

	service, _ := newTestService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			err := service.Create(context.Background(), tt.kind, &input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
		})
	}
}

func TestService_UpdateDelete_NotFound(t *testing.T) {
	service, _ := newTestService()

	err := service.Update(context.Background(), reference.KindFigure, 99, &reference.Entry{Name: "Trajan"})
	assert.Equal(t, "Figure not found", apperr.As(err).Message)

	require.NoError(t, service.Delete(context.Background(), reference.KindDeity, 3))
	err = service.Delete(context.Background(), reference.KindDeity, 3)
	assert.Equal(t, "Deity not found", apperr.As(err).Message)
}

func TestKind_Collection(t *testing.T) {
	got := make([]string, 0, len(reference.Kinds()))
	for _, kind := range reference.Kinds() {
		got = append(got, kind.Collection())
	}
	assert.Equal(t, []string{"deities", "mints", "places", "figures", "artifacts"}, got)
}
