// Package store is the data-access layer over the persistent ledger:
// user-scoped queries and the write-time invariant checks for categories,
// transactions and profiles.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors surfaced to handlers, which map them onto field-level
// messages. None of these indicates a fault in the store itself.
var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateUser        = errors.New("username already taken")
	ErrDuplicateCategory    = errors.New("a category with this name already exists for this type")
	ErrCategoryInUse        = errors.New("category has transactions")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrNoCategory           = errors.New("no category selected and no new name given")
	ErrAmbiguousCategory    = errors.New("both an existing category and a new name given")
	ErrCategoryTypeMismatch = errors.New("category type does not match the transaction type")
)

// Store wraps the database behind the queries the handlers and the
// reporting engine consume.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// NormalizeName collapses runs of whitespace and trims the ends, so
// " Weekly  Groceries " and "Weekly Groceries" are the same category name.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
