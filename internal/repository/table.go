package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/deppfellow/blogful/internal/model"
)

// DBTX is the subset of pgxpool.Pool (and pgx.Tx) the repositories use.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Table is the data access for one single-table resource.
//
// T must carry `db` tags for every column in columns. The first column is
// the primary key "id"; the others are the writable set.
type Table[T model.Entity] struct {
	db       DBTX
	name     string
	selects  string
	writable map[string]bool
}

// NewTable builds the store for table name with the given column list.
func NewTable[T model.Entity](db DBTX, name string, columns []string) *Table[T] {
	quoted := make([]string, len(columns))
	writable := make(map[string]bool, len(columns))
	for i, col := range columns {
		quoted[i] = quote(col)
		if col != "id" {
			writable[col] = true
		}
	}

	return &Table[T]{
		db:       db,
		name:     name,
		selects:  strings.Join(quoted, ", "),
		writable: writable,
	}
}

func quote(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

// Name returns the table name.
func (t *Table[T]) Name() string {
	return t.name
}

// List returns every row ordered by id. An empty table yields an empty,
// non-nil slice.
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY "id"`, t.selects, quote(t.name))

	rows, err := t.db.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: list", t.name)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: scan list", t.name)
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}

// FindByID returns the row with the given id, or nil when there is none.
func (t *Table[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE "id" = $1`, t.selects, quote(t.name))

	rows, err := t.db.Query(ctx, query, id)
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: find id=%d", t.name, id)
	}

	return t.collectOne(rows, "find", id)
}

// Insert writes one row built from fields and returns it as stored,
// generated id and column defaults included.
func (t *Table[T]) Insert(ctx context.Context, fields map[string]any) (*T, error) {
	names, args, err := t.columns(fields)
	if err != nil {
		return nil, err
	}

	var query string
	if len(names) == 0 {
		query = fmt.Sprintf(`INSERT INTO %s DEFAULT VALUES RETURNING %s`, quote(t.name), t.selects)
	} else {
		placeholders := make([]string, len(names))
		for i := range names {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		query = fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
			quote(t.name), strings.Join(names, ", "), strings.Join(placeholders, ", "), t.selects)
	}

	rows, err := t.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: insert", t.name)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: scan insert", t.name)
	}
	return &item, nil
}

// Update applies fields to the row with the given id and returns the new
// row, or nil when no row has that id.
func (t *Table[T]) Update(ctx context.Context, id int64, fields map[string]any) (*T, error) {
	names, args, err := t.columns(fields)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errors.Errorf("table:%s: update id=%d: no columns to set", t.name, id)
	}

	assignments := make([]string, len(names))
	for i, name := range names {
		assignments[i] = fmt.Sprintf("%s = $%d", name, i+1)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE "id" = $%d RETURNING %s`,
		quote(t.name), strings.Join(assignments, ", "), len(args), t.selects)

	rows, err := t.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: update id=%d", t.name, id)
	}

	return t.collectOne(rows, "update", id)
}

// Delete removes the row with the given id and reports how many rows went.
func (t *Table[T]) Delete(ctx context.Context, id int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE "id" = $1`, quote(t.name))

	tag, err := t.db.Exec(ctx, query, id)
	if err != nil {
		return 0, errors.Wrapf(err, "table:%s: delete id=%d", t.name, id)
	}
	return tag.RowsAffected(), nil
}

func (t *Table[T]) collectOne(rows pgx.Rows, op string, id int64) (*T, error) {
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: scan %s id=%d", t.name, op, id)
	}
	return &item, nil
}

// columns returns the quoted column names of fields in a stable order and
// the matching argument list. Unknown or read-only columns are an error.
func (t *Table[T]) columns(fields map[string]any) ([]string, []any, error) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		if !t.writable[key] {
			return nil, nil, errors.Errorf("table:%s: column %q is not writable", t.name, key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	names := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, key := range keys {
		names[i] = quote(key)
		args[i] = fields[key]
	}
	return names, args, nil
}
