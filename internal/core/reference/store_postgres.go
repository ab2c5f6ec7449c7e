package reference

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/moneta/internal/platform/database/schema"
	"github.com/taibuivan/moneta/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var tables = map[Kind]schema.CatalogReferenceTable{
	KindDeity:    schema.CatalogDeity,
	KindMint:     schema.CatalogMint,
	KindPlace:    schema.CatalogPlace,
	KindFigure:   schema.CatalogFigure,
	KindArtifact: schema.CatalogArtifact,
}

func tableFor(kind Kind) (schema.CatalogReferenceTable, error) {
	table, found := tables[kind]
	if !found {
		return table, fmt.Errorf("reference: unknown kind %q", kind)
	}
	return table, nil
}

func selectEntries(table schema.CatalogReferenceTable) string {
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL`,
		table.ID, table.Name, table.NameAlt, table.Description, table.YearEarliest, table.YearLatest,
		table.Latitude, table.Longitude, table.ImageURL, table.CreatedAt, table.UpdatedAt,
		table.Table,
		table.DeletedAt,
	)
}

func scanEntry(kind Kind, row pgx.Row) (*Entry, error) {
	entry := &Entry{Kind: kind}
	err := row.Scan(
		&entry.ID, &entry.Name, &entry.NameAlt, &entry.Description, &entry.YearEarliest, &entry.YearLatest,
		&entry.Latitude, &entry.Longitude, &entry.ImageURL, &entry.CreatedAt, &entry.UpdatedAt,
	)
	return entry, err
}

func (repository *PostgresRepository) List(context context.Context, kind Kind, filter Filter, limit, offset int) ([]*Entry, int, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, 0, err
	}

	query := selectEntries(table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`, table.Table, table.DeletedAt)

	args := []any{}
	if filter.Query != "" {
		condition := fmt.Sprintf(" AND (%s ILIKE $1 OR array_to_string(%s, ' ') ILIKE $1)", table.Name, table.NameAlt)
		query += condition
		countQuery += condition
		args = append(args, "%"+filter.Query+"%")
	}

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_"+string(kind))
	}

	query += fmt.Sprintf(" ORDER BY lower(%s) ASC, %s ASC LIMIT $%s OFFSET $%s",
		table.Name, table.ID, strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_"+string(kind))
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(kind, rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_"+string(kind))
		}
		entries = append(entries, entry)
	}

	return entries, total, dberr.Wrap(rows.Err(), "list_"+string(kind))
}

func (repository *PostgresRepository) FindByID(context context.Context, kind Kind, id int) (*Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := selectEntries(table) + fmt.Sprintf(" AND %s = $1", table.ID)
	entry, err := scanEntry(kind, repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_"+string(kind))
	}
	return entry, nil
}

func (repository *PostgresRepository) Located(context context.Context, kind Kind) ([]*Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := selectEntries(table) + fmt.Sprintf(" AND %s IS NOT NULL AND %s IS NOT NULL ORDER BY %s ASC",
		table.Latitude, table.Longitude, table.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "locate_"+string(kind))
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(kind, rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_"+string(kind))
		}
		entries = append(entries, entry)
	}

	return entries, dberr.Wrap(rows.Err(), "locate_"+string(kind))
}

func (repository *PostgresRepository) Create(context context.Context, entry *Entry) error {
	table, err := tableFor(entry.Kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s, %s
	`,
		table.Table, table.Name, table.NameAlt, table.Description, table.YearEarliest, table.YearLatest,
		table.Latitude, table.Longitude, table.ImageURL,
		table.ID, table.CreatedAt, table.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query, writeArgs(entry)...).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	return dberr.Wrap(err, "create_"+string(entry.Kind))
}

func (repository *PostgresRepository) Update(context context.Context, entry *Entry) error {
	table, err := tableFor(entry.Kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s, %s
	`,
		table.Table,
		table.Name, table.NameAlt, table.Description, table.YearEarliest, table.YearLatest,
		table.Latitude, table.Longitude, table.ImageURL, table.UpdatedAt,
		table.ID, table.DeletedAt,
		table.CreatedAt, table.UpdatedAt,
	)

	args := append([]any{entry.ID}, writeArgs(entry)...)
	err = repository.db.QueryRow(context, query, args...).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	return dberr.Wrap(err, "update_"+string(entry.Kind))
}

func (repository *PostgresRepository) Delete(context context.Context, kind Kind, id int) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		table.Table, table.DeletedAt, table.ID, table.DeletedAt)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_"+string(kind))
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// writeArgs returns the editable columns in insert order.
func writeArgs(entry *Entry) []any {
	nameAlt := entry.NameAlt
	if nameAlt == nil {
		nameAlt = []string{}
	}
	return []any{
		entry.Name, nameAlt, entry.Description, entry.YearEarliest, entry.YearLatest,
		entry.Latitude, entry.Longitude, entry.ImageURL,
	}
}
