package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/dbx"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/catalog"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/sequences"
)

const lendScanPageSize = 300

// LendingService runs the lend/return transitions. Each transition is two
// writes (rental row, book lend_flag) executed in one transaction; a failed
// transition is reported and never retried here.
type LendingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func NewLendingService(db *sql.DB, repomanager repomanager.RepositoryManager, logger logging.Logger) *LendingService {
	return &LendingService{
		db:          db,
		repomanager: repomanager,
		logger:      logger.With("module", "lending"),
		now:         time.Now,
	}
}

// lockingISBNScan serves catalog.FindAvailableCopy from the row-locking
// variant of the ISBN scan.
type lockingISBNScan struct {
	repo books.Repository
}

func (l lockingISBNScan) ByISBN(ctx context.Context, owner, isbn string, afterSeqNo int64, limit int) ([]models.Book, error) {
	return l.repo.ByISBNForUpdate(ctx, owner, isbn, afterSeqNo, limit)
}

// Lend lends any available copy of isbn owned by lender to renter.
//
//  1. find and lock an available copy (common.ErrNoAvailableCopy if none);
//     copies locked by a concurrent lend are skipped
//  2. allocate a rental id
//  3. insert the rental
//  4. flip the copy's lend_flag; a concurrent lend of the same copy makes
//     this a conflict and rolls the whole transition back
func (s *LendingService) Lend(ctx context.Context, lender, renter, isbn string) (*models.Rental, error) {
	switch {
	case lender == "":
		return nil, common.Validationf("lender is required")
	case renter == "":
		return nil, common.Validationf("renter is required")
	case isbn == "":
		return nil, common.Validationf("isbn is required")
	case lender == renter:
		return nil, common.Validationf("cannot lend to yourself")
	}

	var rental *models.Rental
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		booksRepo := s.repomanager.Books(tx)

		book, err := catalog.FindAvailableCopy(ctx, lockingISBNScan{booksRepo}, lender, isbn, lendScanPageSize)
		if err != nil {
			return err
		}

		id, err := s.repomanager.Sequences(tx).Next(ctx, sequences.RentalsScope)
		if err != nil {
			return err
		}

		rental = &models.Rental{
			RentalID:       id,
			LenderUsername: lender,
			RenterUsername: renter,
			ISBN:           book.ISBN,
			SeqNo:          book.SeqNo,
			RentalDate:     s.now().UTC(),
		}
		if err := s.repomanager.Rentals(tx).Insert(ctx, rental); err != nil {
			return err
		}

		return booksRepo.SetLendFlag(ctx, lender, book.SeqNo, true)
	})
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) && !errors.Is(err, common.ErrValidation) {
			s.logger.Error(ctx, "lend failed", "lender", lender, "isbn", isbn, "error", err)
		}
		return nil, err
	}

	s.logger.Info(ctx, "book lent", "rental_id", rental.RentalID, "owner", lender, "seqno", rental.SeqNo, "renter", renter)
	return rental, nil
}

// Return closes an open rental of lender and makes the book available again.
// A second return of the same rental yields common.ErrAlreadyReturned.
func (s *LendingService) Return(ctx context.Context, lender string, rentalID int64) (*models.Rental, error) {
	if lender == "" || rentalID <= 0 {
		return nil, common.Validationf("lender and rentalId are required")
	}

	var rental *models.Rental
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		rentalsRepo := s.repomanager.Rentals(tx)

		r, err := rentalsRepo.MarkReturned(ctx, lender, rentalID, s.now().UTC())
		if errors.Is(err, common.ErrNotFound) {
			existing, getErr := rentalsRepo.Get(ctx, rentalID)
			switch {
			case getErr != nil:
				return getErr
			case existing.LenderUsername != lender:
				return common.ErrNotFound
			default:
				return common.ErrAlreadyReturned
			}
		}
		if err != nil {
			return err
		}
		rental = r

		err = s.repomanager.Books(tx).SetLendFlag(ctx, lender, r.SeqNo, false)
		if errors.Is(err, common.ErrConflict) {
			// book already available or deleted; the rental is closed either way
			s.logger.Warn(ctx, "returned rental had no lent book", "rental_id", rentalID, "owner", lender, "seqno", r.SeqNo)
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "book returned", "rental_id", rental.RentalID, "owner", lender, "seqno", rental.SeqNo)
	return rental, nil
}

// ActiveRentals lists the lender's open rentals.
func (s *LendingService) ActiveRentals(ctx context.Context, lender string) ([]models.Rental, error) {
	if lender == "" {
		return nil, common.Validationf("lender is required")
	}
	return s.repomanager.Rentals(s.db).ListActive(ctx, lender)
}
