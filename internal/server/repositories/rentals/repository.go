// Package rentals stores the append-only lending ledger.
package rentals

import (
	"context"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, r *models.Rental) error
	Get(ctx context.Context, rentalID int64) (*models.Rental, error)
	// MarkReturned flips return_flag on an unreturned rental of lender and
	// returns the updated row. common.ErrNotFound when no such open rental.
	MarkReturned(ctx context.Context, lender string, rentalID int64, at time.Time) (*models.Rental, error)
	// ActiveForBook returns the open rental of a lender's book, or
	// common.ErrNotFound.
	ActiveForBook(ctx context.Context, lender string, seqNo int64) (*models.Rental, error)
	// ListActive returns the lender's open rentals, oldest first.
	ListActive(ctx context.Context, lender string) ([]models.Rental, error)
}
