package schema

// CatalogCoinTable represents the 'catalog.coin' table
type CatalogCoinTable struct {
	Table                 string
	ID                    string
	Nickname              string
	Denomination          string
	RulerID               string
	MintID                string
	YearEarliest          string
	YearLatest            string
	Metal                 string
	WeightG               string
	DiameterMM            string
	ObverseLegend         string
	ReverseLegend         string
	Description           string
	AcquiredOn            string
	Vendor                string
	PhotographedByCurator string
	Price                 string
	Views                 string
	CreatedAt             string
	UpdatedAt             string
	DeletedAt             string
}

// CatalogCoin is the schema definition for catalog.coin
var CatalogCoin = CatalogCoinTable{
	Table:                 "catalog.coin",
	ID:                    "id",
	Nickname:              "nickname",
	Denomination:          "denomination",
	RulerID:               "rulerid",
	MintID:                "mintid",
	YearEarliest:          "yearearliest",
	YearLatest:            "yearlatest",
	Metal:                 "metal",
	WeightG:               "weightg",
	DiameterMM:            "diametermm",
	ObverseLegend:         "obverselegend",
	ReverseLegend:         "reverselegend",
	Description:           "description",
	AcquiredOn:            "acquiredon",
	Vendor:                "vendor",
	PhotographedByCurator: "photographedbycurator",
	Price:                 "price",
	Views:                 "views",
	CreatedAt:             "createdat",
	UpdatedAt:             "updatedat",
	DeletedAt:             "deletedat",
}

// Writable lists the columns set by INSERT and UPDATE, in bind order.
func (t CatalogCoinTable) Writable() []string {
	return []string{
		t.Nickname, t.Denomination, t.RulerID, t.MintID, t.YearEarliest, t.YearLatest,
		t.Metal, t.WeightG, t.DiameterMM, t.ObverseLegend, t.ReverseLegend, t.Description,
		t.AcquiredOn, t.Vendor, t.PhotographedByCurator, t.Price, t.Views,
	}
}

func (t CatalogCoinTable) Columns() []string {
	return append(append([]string{t.ID}, t.Writable()...), t.CreatedAt, t.UpdatedAt)
}
