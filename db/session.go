// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ListOptions controls ordering and size of a List query
type ListOptions struct {
	Where      Predicate
	OrderBy    string
	Descending bool
	Limit      int // <= 0 means no limit
}

// Session runs read queries on a single pooled connection. A Session
// belongs to one request and must not be shared between goroutines.
type Session struct {
	conn    *sql.Conn
	schema  *Schema
	dialect Dialect
}

// List returns the rows of table matching opts. No matching rows is an
// empty slice, not an error.
func (s *Session) List(ctx context.Context, table string, opts ListOptions) ([]Row, error) {
	if s.conn == nil {
		return nil, ErrSessionClosed
	}
	t, err := s.schema.Table(table)
	if err != nil {
		return nil, err
	}

	query, args, err := s.selectQuery(t, opts)
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", table, err)
	}
	return result, nil
}

// GetOne returns the first row of table matching pred, or ErrNotFound.
func (s *Session) GetOne(ctx context.Context, table string, pred Predicate) (Row, error) {
	rows, err := s.List(ctx, table, ListOptions{Where: pred, Limit: 1})
	if err != nil {
		return Row{}, err
	}
	if len(rows) == 0 {
		return Row{}, fmt.Errorf("%s: %w", table, ErrNotFound)
	}
	return rows[0], nil
}

// Count returns the number of rows of table matching pred
func (s *Session) Count(ctx context.Context, table string, pred Predicate) (int64, error) {
	if s.conn == nil {
		return 0, ErrSessionClosed
	}
	t, err := s.schema.Table(table)
	if err != nil {
		return 0, err
	}

	where, args, err := pred.build(t, s.dialect, 1)
	if err != nil {
		return 0, err
	}
	query := "SELECT COUNT(*) FROM " + quoteIdent(t.Name)
	if where != "" {
		query += " WHERE " + where
	}

	var n int64
	if err := s.conn.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// Close returns the connection to the pool. Closing twice is a no-op.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func (s *Session) selectQuery(t *Table, opts ListOptions) (string, []any, error) {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quoteIdent(c.Name)
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(" FROM ")
	b.WriteString(quoteIdent(t.Name))

	where, args, err := opts.Where.build(t, s.dialect, 1)
	if err != nil {
		return "", nil, err
	}
	if where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}

	if opts.OrderBy != "" {
		if _, err := t.C(opts.OrderBy); err != nil {
			return "", nil, err
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(quoteIdent(opts.OrderBy))
		if opts.Descending {
			b.WriteString(" DESC")
		}
	}

	if opts.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", opts.Limit)
	}

	return b.String(), args, nil
}
