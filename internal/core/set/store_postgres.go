// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/moneta/internal/platform/database/schema"
	"github.com/taibuivan/moneta/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on the catalog schema.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	setTable    = schema.CatalogCoinSet
	memberTable = schema.CatalogCoinSetMember

	selectSets = fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, s.%s, s.%s, s.%s,
			COALESCE((SELECT array_agg(m.%s ORDER BY m.%s, m.%s) FROM %s m WHERE m.%s = s.%s), '{}')
		FROM %s s
		WHERE s.%s IS NULL`,
		setTable.ID, setTable.Name, setTable.Slug, setTable.Description, setTable.CreatedAt, setTable.UpdatedAt,
		memberTable.CoinID, memberTable.Position, memberTable.CoinID, memberTable.Table, memberTable.SetID, setTable.ID,
		setTable.Table,
		setTable.DeletedAt,
	)
)

func scanSet(row pgx.Row) (*Set, error) {
	s := &Set{}
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.CreatedAt, &s.UpdatedAt, &s.CoinIDs)
	return s, err
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Set, int, error) {
	query := selectSets
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s s WHERE s.%s IS NULL`, setTable.Table, setTable.DeletedAt)

	args := []any{}
	if filter.Query != "" {
		condition := fmt.Sprintf(" AND s.%s ILIKE $1", setTable.Name)
		query += condition
		countQuery += condition
		args = append(args, "%"+filter.Query+"%")
	}
	if len(filter.CoinIDs) > 0 {
		condition := fmt.Sprintf(" AND EXISTS (SELECT 1 FROM %s m WHERE m.%s = s.%s AND m.%s = ANY($%d))",
			memberTable.Table, memberTable.SetID, setTable.ID, memberTable.CoinID, len(args)+1)
		query += condition
		countQuery += condition
		args = append(args, filter.CoinIDs)
	}

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_sets")
	}

	query += fmt.Sprintf(" ORDER BY s.%s ASC LIMIT $%s OFFSET $%s",
		setTable.Name, strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_sets")
	}
	defer rows.Close()

	var sets []*Set
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_set")
		}
		sets = append(sets, s)
	}

	return sets, total, dberr.Wrap(rows.Err(), "list_sets")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Set, error) {
	s, err := scanSet(repository.db.QueryRow(context, selectSets+fmt.Sprintf(" AND s.%s = $1", setTable.ID), id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_set")
	}
	return s, nil
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Set, error) {
	s, err := scanSet(repository.db.QueryRow(context, selectSets+fmt.Sprintf(" AND s.%s = $1", setTable.Slug), slug))
	if err != nil {
		return nil, dberr.Wrap(err, "find_set_by_slug")
	}
	return s, nil
}

func (repository *PostgresRepository) Create(context context.Context, s *Set) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s
	`,
		setTable.Table, setTable.Name, setTable.Slug, setTable.Description,
		setTable.ID, setTable.CreatedAt, setTable.UpdatedAt,
	)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(context, query, s.Name, s.Slug, s.Description).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return err
		}
		return replaceMembers(context, tx, s.ID, s.CoinIDs)
	})
	return dberr.Wrap(err, "create_set")
}

func (repository *PostgresRepository) Update(context context.Context, s *Set) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s, %s
	`,
		setTable.Table, setTable.Name, setTable.Slug, setTable.Description, setTable.UpdatedAt,
		setTable.ID, setTable.DeletedAt,
		setTable.CreatedAt, setTable.UpdatedAt,
	)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(context, query, s.ID, s.Name, s.Slug, s.Description).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
			return err
		}
		return replaceMembers(context, tx, s.ID, s.CoinIDs)
	})
	return dberr.Wrap(err, "update_set")
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		setTable.Table, setTable.DeletedAt, setTable.ID, setTable.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_set")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// replaceMembers rewrites the ordered member list of one set inside tx.
func replaceMembers(context context.Context, tx pgx.Tx, setID int, coinIDs []int) error {
	if _, err := tx.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, memberTable.Table, memberTable.SetID), setID); err != nil {
		return err
	}

	if len(coinIDs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		SELECT $1, member.id, member.position
		FROM unnest($2::int[]) WITH ORDINALITY AS member(id, position)
	`, memberTable.Table, memberTable.SetID, memberTable.CoinID, memberTable.Position)

	_, err := tx.Exec(context, query, setID, coinIDs)
	return err
}
