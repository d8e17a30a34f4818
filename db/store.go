// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"log/slog"
)

// Store owns the connection pool and the schema reflected from it.
type Store struct {
	db      *sql.DB
	dialect Dialect
	schema  *Schema
}

// Connect opens a pool for dsn and verifies it is reachable.
// Failures are returned as *ConnectionError.
func Connect(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, &ConnectionError{Dialect: d, Err: err}
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, &ConnectionError{Dialect: d, Err: err}
	}

	return conn, nil
}

// New reflects the schema behind an open pool. The Store takes ownership
// of conn only on success.
func New(ctx context.Context, conn *sql.DB, d Dialect) (*Store, error) {
	schema, err := Reflect(ctx, conn, d)
	if err != nil {
		return nil, err
	}

	slog.Info("schema reflected", "dialect", d, "tables", schema.TableNames())
	return &Store{db: conn, dialect: d, schema: schema}, nil
}

// Open connects to dsn and reflects its schema
func Open(ctx context.Context, d Dialect, dsn string) (*Store, error) {
	conn, err := Connect(ctx, d, dsn)
	if err != nil {
		return nil, err
	}

	store, err := New(ctx, conn, d)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return store, nil
}

// Session checks out one connection from the pool. Callers must Close it.
func (s *Store) Session(ctx context.Context) (*Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, &ConnectionError{Dialect: s.dialect, Err: err}
	}
	return &Session{conn: conn, schema: s.schema, dialect: s.dialect}, nil
}

func (s *Store) Schema() *Schema { return s.schema }

func (s *Store) Dialect() Dialect { return s.dialect }

// DB exposes the underlying pool for migrations and the debug console
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error {
	return s.db.Close()
}
