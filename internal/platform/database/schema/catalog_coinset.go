package schema

// CatalogCoinSetTable represents the 'catalog.coinset' table
type CatalogCoinSetTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// CatalogCoinSet is the schema definition for catalog.coinset
var CatalogCoinSet = CatalogCoinSetTable{
	Table:       "catalog.coinset",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

func (t CatalogCoinSetTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Description, t.CreatedAt, t.UpdatedAt}
}

// CatalogCoinSetMemberTable represents the 'catalog.coinsetmember' table
type CatalogCoinSetMemberTable struct {
	Table    string
	SetID    string
	CoinID   string
	Position string
}

// CatalogCoinSetMember is the schema definition for catalog.coinsetmember
var CatalogCoinSetMember = CatalogCoinSetMemberTable{
	Table:    "catalog.coinsetmember",
	SetID:    "setid",
	CoinID:   "coinid",
	Position: "position",
}
