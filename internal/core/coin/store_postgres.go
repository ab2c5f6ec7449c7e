// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package coin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/moneta/internal/platform/database/schema"
	"github.com/taibuivan/moneta/internal/platform/dberr"
	"github.com/taibuivan/moneta/pkg/imageid"
	"github.com/taibuivan/moneta/pkg/slice"
)

// PostgresRepository implements [Repository] on the catalog schema.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Query Building

var (
	coinTable  = schema.CatalogCoin
	deityTable = schema.CatalogCoinDeity

	// selectCoins reads every column plus the aggregated deity links.
	selectCoins = fmt.Sprintf(`
		SELECT %s,
			COALESCE((SELECT array_agg(d.%s ORDER BY d.%s) FROM %s d WHERE d.%s = c.%s), '{}')
		FROM %s c
		WHERE c.%s IS NULL`,
		"c."+strings.Join(coinTable.Columns(), ", c."),
		deityTable.DeityID, deityTable.DeityID, deityTable.Table, deityTable.CoinID, coinTable.ID,
		coinTable.Table,
		coinTable.DeletedAt,
	)
)

// scanCoin reads one row produced by selectCoins.
func scanCoin(row pgx.Row) (*Coin, error) {
	var (
		coin       Coin
		acquiredOn *time.Time
		views      []string
	)

	err := row.Scan(
		&coin.ID, &coin.Nickname, &coin.Denomination, &coin.RulerID, &coin.MintID,
		&coin.YearEarliest, &coin.YearLatest, &coin.Metal, &coin.WeightG, &coin.DiameterMM,
		&coin.ObverseLegend, &coin.ReverseLegend, &coin.Description,
		&acquiredOn, &coin.Acquisition.Vendor, &coin.Acquisition.PhotographedByCurator, &coin.Acquisition.Price,
		&views, &coin.CreatedAt, &coin.UpdatedAt,
		&coin.DeityIDs,
	)
	if err != nil {
		return nil, err
	}

	if acquiredOn != nil {
		coin.Acquisition.Date = acquiredOn.Format(time.DateOnly)
	}
	coin.Views = slice.Map(views, func(view string) imageid.View { return imageid.View(view) })

	return &coin, nil
}

// writeArgs returns the bind values for [schema.CatalogCoinTable.Writable].
func writeArgs(c *Coin) []any {
	var acquiredOn *time.Time
	if parsed, err := time.Parse(time.DateOnly, c.Acquisition.Date); err == nil {
		acquiredOn = &parsed
	}

	return []any{
		c.Nickname, c.Denomination, c.RulerID, c.MintID, c.YearEarliest, c.YearLatest,
		string(c.Metal), c.WeightG, c.DiameterMM, c.ObverseLegend, c.ReverseLegend, c.Description,
		acquiredOn, c.Acquisition.Vendor, c.Acquisition.PhotographedByCurator, c.Acquisition.Price,
		slice.Map(c.Views, func(view imageid.View) string { return string(view) }),
	}
}

// placeholders renders "$from, $from+1, ..." for count values.
func placeholders(from, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ", ")
}

// # Reads

func (repository *PostgresRepository) List(context context.Context) ([]*Coin, error) {
	query := selectCoins + fmt.Sprintf(" ORDER BY c.%s", coinTable.ID)
	return repository.query(context, "list_coins", query)
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Coin, error) {
	query := selectCoins + fmt.Sprintf(" AND c.%s = $1", coinTable.ID)

	coin, err := scanCoin(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_coin")
	}
	return coin, nil
}

func (repository *PostgresRepository) FindByIDs(context context.Context, ids []int) ([]*Coin, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := selectCoins + fmt.Sprintf(" AND c.%s = ANY($1)", coinTable.ID)
	return repository.query(context, "find_coins", query, ids)
}

func (repository *PostgresRepository) query(context context.Context, action, query string, args ...any) ([]*Coin, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var coins []*Coin
	for rows.Next() {
		coin, err := scanCoin(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_coin")
		}
		coins = append(coins, coin)
	}

	return coins, dberr.Wrap(rows.Err(), action)
}

// # Writes

func (repository *PostgresRepository) Create(context context.Context, c *Coin) error {
	writable := coinTable.Writable()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING %s, %s, %s
	`,
		coinTable.Table, strings.Join(writable, ", "),
		placeholders(1, len(writable)),
		coinTable.ID, coinTable.CreatedAt, coinTable.UpdatedAt,
	)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(context, query, writeArgs(c)...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return err
		}
		return replaceDeities(context, tx, c.ID, c.DeityIDs)
	})
	return dberr.Wrap(err, "create_coin")
}

func (repository *PostgresRepository) Update(context context.Context, c *Coin) error {
	writable := coinTable.Writable()
	assignments := make([]string, len(writable))
	for i, column := range writable {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+2)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s, %s
	`,
		coinTable.Table,
		strings.Join(assignments, ", "), coinTable.UpdatedAt,
		coinTable.ID, coinTable.DeletedAt,
		coinTable.CreatedAt, coinTable.UpdatedAt,
	)

	args := append([]any{c.ID}, writeArgs(c)...)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(context, query, args...).Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
			return err
		}
		return replaceDeities(context, tx, c.ID, c.DeityIDs)
	})
	return dberr.Wrap(err, "update_coin")
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		coinTable.Table, coinTable.DeletedAt, coinTable.ID, coinTable.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_coin")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// replaceDeities rewrites the deity links of one coin inside tx.
func replaceDeities(context context.Context, tx pgx.Tx, coinID int, deityIDs []int) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, deityTable.Table, deityTable.CoinID)
	if _, err := tx.Exec(context, deleteQuery, coinID); err != nil {
		return err
	}

	if len(deityIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) SELECT $1, unnest($2::int[])`,
		deityTable.Table, deityTable.CoinID, deityTable.DeityID,
	)
	_, err := tx.Exec(context, insertQuery, coinID, deityIDs)
	return err
}
