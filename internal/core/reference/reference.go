/*
Package reference manages the records coins point at: deities, mints,
places, historical figures and artifacts.

# Core Responsibility

  - Kinds: Every [Kind] shares the [Entry] shape and its own table.
  - Dating: Figures carry a reign, mints an activity window; both render
    through the same year range formatter as coins.
  - Geography: Mints and places carry coordinates for the client map.

Coins reference mints, deities and rulers (figures) by id.
*/
package reference

import "time"

// # Kinds

// Kind names one family of reference records.
type Kind string

const (
	KindDeity    Kind = "deity"
	KindMint     Kind = "mint"
	KindPlace    Kind = "place"
	KindFigure   Kind = "figure"
	KindArtifact Kind = "artifact"
)

// Kinds lists every reference kind in route registration order.
func Kinds() []Kind {
	return []Kind{KindDeity, KindMint, KindPlace, KindFigure, KindArtifact}
}

// Collection is the plural route segment of the kind ("deities").
func (k Kind) Collection() string {
	if k == KindDeity {
		return "deities"
	}
	return string(k) + "s"
}

// BasePath is the slug base path of the kind ("/deity").
func (k Kind) BasePath() string {
	return "/" + string(k)
}

// Geographic reports whether entries of the kind may carry coordinates.
func (k Kind) Geographic() bool {
	return k == KindMint || k == KindPlace
}

// Label is the resource name used in error messages.
func (k Kind) Label() string {
	switch k {
	case KindDeity:
		return "Deity"
	case KindMint:
		return "Mint"
	case KindPlace:
		return "Place"
	case KindFigure:
		return "Figure"
	}
	return "Artifact"
}

// # Core Entities

// Entry is one reference record of any [Kind].
type Entry struct {
	ID           int        `json:"id"`
	Kind         Kind       `json:"kind"`
	Name         string     `json:"name"`
	NameAlt      []string   `json:"name_alt"`
	Description  *string    `json:"description"`
	YearEarliest *int       `json:"year_earliest"`
	YearLatest   *int       `json:"year_latest"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	ImageURL     *string    `json:"image_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"` // soft-delete tracker

	// Derived on read
	Slug      string `json:"slug"`
	YearRange string `json:"year_range"`
}

// GeoPoint is the map marker for a located mint or place.
type GeoPoint struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	YearRange string  `json:"year_range"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// # Search Params

// Filter holds the parameters for a paginated reference search.
type Filter struct {
	Query string // Case-insensitive match against name and name_alt
}

// # Field Identifiers

const (
	FieldName         = "name"
	FieldNameAlt      = "name_alt"
	FieldDescription  = "description"
	FieldYearEarliest = "year_earliest"
	FieldYearLatest   = "year_latest"
	FieldLatitude     = "latitude"
	FieldLongitude    = "longitude"
	FieldImageURL     = "image_url"
)
