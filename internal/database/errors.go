// Package database opens the listings store and makes sure every declared
// table exists in it.
//
// Both failures the package reports are unrecoverable for the caller:
// ErrStorageUnavailable when the store cannot be created or reached, and
// ErrSchemaConflict when a table already exists with a shape that does not
// hold the declared columns.
package database

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrSchemaConflict     = errors.New("schema conflict")
)

// ConflictError lists the declared columns an existing table lacks.
type ConflictError struct {
	Table   string
	Missing []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("schema conflict: table %s is missing columns %s", e.Table, strings.Join(e.Missing, ", "))
}

func (e *ConflictError) Unwrap() error { return ErrSchemaConflict }
