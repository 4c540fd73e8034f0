// Package postgres implements the storage interfaces on PostgreSQL with
// hand-written SQL. It is the relational counterpart of the dynamodb package;
// both satisfy the same capability interfaces and the ledger service cannot
// tell them apart.
package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/anikets/paisaledger/pkg/storage"
)

// Store implements the Storage interface using PostgreSQL.
type Store struct {
	db *sql.DB
}

// New creates a new Store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// isUniqueViolation reports whether err is a Postgres unique-constraint error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
