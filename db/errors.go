// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by GetOne when no row matches
	ErrNotFound = errors.New("not found")

	ErrUnknownTable  = errors.New("unknown table")
	ErrUnknownColumn = errors.New("unknown column")

	ErrSessionClosed = errors.New("session closed")
)

// ConnectionError reports that the database could not be reached.
type ConnectionError struct {
	Dialect Dialect
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s database: %v", e.Dialect, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ReflectionError reports that the schema could not be introspected.
type ReflectionError struct {
	Err error
}

func (e *ReflectionError) Error() string {
	return fmt.Sprintf("reflect schema: %v", e.Err)
}

func (e *ReflectionError) Unwrap() error { return e.Err }
