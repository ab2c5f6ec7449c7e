package schema

// CatalogCoinDeityTable represents the 'catalog.coindeity' link table
type CatalogCoinDeityTable struct {
	Table   string
	CoinID  string
	DeityID string
}

// CatalogCoinDeity is the schema definition for catalog.coindeity
var CatalogCoinDeity = CatalogCoinDeityTable{
	Table:   "catalog.coindeity",
	CoinID:  "coinid",
	DeityID: "deityid",
}
