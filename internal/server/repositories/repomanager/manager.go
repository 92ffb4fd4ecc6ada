package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bookshelf/internal/dbx"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/rentals"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/sequences"
)

// RepositoryManager vends repositories bound to a DBTX, so services can use
// the same repositories on *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Books(db dbx.DBTX) books.Repository
	Rentals(db dbx.DBTX) rentals.Repository
	Sequences(db dbx.DBTX) sequences.Repository
}
