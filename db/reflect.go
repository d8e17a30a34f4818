// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// migrationsTable is golang-migrate's bookkeeping table. It is never
// exposed as a queryable table.
const migrationsTable = "schema_migrations"

// Column describes one reflected column
type Column struct {
	Name       string
	Type       string
	NotNull    bool
	PrimaryKey bool
	Position   int
}

// Table is a handle to a reflected table. It is immutable once Reflect
// returns.
type Table struct {
	Name    string
	Columns []Column

	byName map[string]int
}

func newTable(name string, cols []Column) *Table {
	t := &Table{Name: name, Columns: cols, byName: make(map[string]int, len(cols))}
	for i, c := range cols {
		t.byName[c.Name] = i
	}
	return t
}

// C returns the named column, or ErrUnknownColumn
func (t *Table) C(name string) (Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, t.Name, name)
	}
	return t.Columns[i], nil
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// ColumnNames returns column names in declaration order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Schema maps table names to reflected table handles.
type Schema struct {
	tables map[string]*Table
}

// Table looks up a reflected table by name
func (s *Schema) Table(name string) (*Table, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return t, nil
}

// TableNames returns all reflected table names, sorted
func (s *Schema) TableNames() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Require checks that every named table was reflected.
func (s *Schema) Require(names ...string) error {
	var result *multierror.Error
	for _, name := range names {
		if _, err := s.Table(name); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Reflect enumerates all user tables and their columns.
// Any failure is returned as a *ReflectionError.
func Reflect(ctx context.Context, q queryer, d Dialect) (*Schema, error) {
	names, err := tableNames(ctx, q, d)
	if err != nil {
		return nil, &ReflectionError{Err: fmt.Errorf("failed to list tables: %w", err)}
	}

	schema := &Schema{tables: make(map[string]*Table, len(names))}
	var result *multierror.Error
	for _, name := range names {
		cols, err := tableColumns(ctx, q, d, name)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("table %s: %w", name, err))
			continue
		}
		if len(cols) == 0 {
			result = multierror.Append(result, fmt.Errorf("table %s: no columns", name))
			continue
		}
		schema.tables[name] = newTable(name, cols)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, &ReflectionError{Err: err}
	}

	return schema, nil
}

func tableNames(ctx context.Context, q queryer, d Dialect) ([]string, error) {
	var query string
	switch d {
	case SQLite:
		query = `
			SELECT name
			FROM sqlite_master
			WHERE type = 'table'
			  AND substr(name, 1, 7) <> 'sqlite_'
			ORDER BY name
		`
	case Postgres:
		query = `
			SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = 'public'
			  AND table_type = 'BASE TABLE'
			ORDER BY table_name
		`
	default:
		return nil, fmt.Errorf("unsupported dialect %q", d)
	}

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		if name == migrationsTable {
			continue
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func tableColumns(ctx context.Context, q queryer, d Dialect, table string) ([]Column, error) {
	switch d {
	case SQLite:
		return sqliteColumns(ctx, q, table)
	case Postgres:
		return postgresColumns(ctx, q, table)
	}
	return nil, errors.New("unsupported dialect")
}

func sqliteColumns(ctx context.Context, q queryer, table string) ([]Column, error) {
	rows, err := q.QueryContext(ctx, `SELECT cid, name, type, "notnull", pk FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var (
			col     Column
			notNull int
			pk      int
		)
		if err := rows.Scan(&col.Position, &col.Name, &col.Type, &notNull, &pk); err != nil {
			return nil, err
		}
		// drivers disagree on the case of some types (INTEGER vs integer)
		col.Type = strings.ToLower(col.Type)
		col.NotNull = notNull != 0
		col.PrimaryKey = pk > 0
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

func postgresColumns(ctx context.Context, q queryer, table string) ([]Column, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT c.ordinal_position, c.column_name, c.data_type, c.is_nullable = 'NO',
		       EXISTS (
		           SELECT 1
		           FROM information_schema.table_constraints tc
		           JOIN information_schema.key_column_usage kcu
		             ON tc.constraint_name = kcu.constraint_name
		            AND tc.table_schema = kcu.table_schema
		           WHERE tc.constraint_type = 'PRIMARY KEY'
		             AND tc.table_schema = c.table_schema
		             AND tc.table_name = c.table_name
		             AND kcu.column_name = c.column_name
		       )
		FROM information_schema.columns c
		WHERE c.table_schema = 'public' AND c.table_name = $1
		ORDER BY c.ordinal_position
	`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var col Column
		if err := rows.Scan(&col.Position, &col.Name, &col.Type, &col.NotNull, &col.PrimaryKey); err != nil {
			return nil, err
		}
		// information_schema positions are 1-based, sqlite cids are 0-based
		col.Position--
		cols = append(cols, col)
	}
	return cols, rows.Err()
}
