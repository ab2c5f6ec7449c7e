package schema

// CatalogReferenceTable describes one of the reference tables. Deities,
// mints, places, figures and artifacts share the same column layout.
type CatalogReferenceTable struct {
	Table        string
	ID           string
	Name         string
	NameAlt      string
	Description  string
	YearEarliest string
	YearLatest   string
	Latitude     string
	Longitude    string
	ImageURL     string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

func referenceTable(name string) CatalogReferenceTable {
	return CatalogReferenceTable{
		Table:        "catalog." + name,
		ID:           "id",
		Name:         "name",
		NameAlt:      "namealt",
		Description:  "description",
		YearEarliest: "yearearliest",
		YearLatest:   "yearlatest",
		Latitude:     "latitude",
		Longitude:    "longitude",
		ImageURL:     "imageurl",
		CreatedAt:    "createdat",
		UpdatedAt:    "updatedat",
		DeletedAt:    "deletedat",
	}
}

var (
	CatalogDeity    = referenceTable("deity")
	CatalogMint     = referenceTable("mint")
	CatalogPlace    = referenceTable("place")
	CatalogFigure   = referenceTable("figure")
	CatalogArtifact = referenceTable("artifact")
)

func (t CatalogReferenceTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.NameAlt, t.Description, t.YearEarliest, t.YearLatest,
		t.Latitude, t.Longitude, t.ImageURL, t.CreatedAt, t.UpdatedAt,
	}
}
