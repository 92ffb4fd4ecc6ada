package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/dbx"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/biblio"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/sequences"
)

type BookService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewBookService(db *sql.DB, repomanager repomanager.RepositoryManager, logger logging.Logger) *BookService {
	return &BookService{
		db:          db,
		repomanager: repomanager,
		logger:      logger.With("module", "books"),
	}
}

// joinRental denormalizes the active rental into the book at read time.
// A nil rental, or a book that is not lent, leaves the rental fields empty.
func joinRental(b *models.Book, r *models.Rental) *models.BookDetail {
	d := &models.BookDetail{Book: *b}
	if !b.LendFlag || r == nil || r.ReturnFlag || r.SeqNo != b.SeqNo {
		return d
	}
	d.RentalID = r.RentalID
	d.RenterUsername = r.RenterUsername
	d.RentalDate = r.RentalDate.UnixMilli()
	return d
}

// GetBook returns the book with the active rental joined in when it is lent.
func (s *BookService) GetBook(ctx context.Context, owner string, seqNo int64) (*models.BookDetail, error) {
	if owner == "" || seqNo <= 0 {
		return nil, common.Validationf("owner and seqno are required")
	}

	b, err := s.repomanager.Books(s.db).Get(ctx, owner, seqNo)
	if err != nil {
		return nil, err
	}
	if !b.LendFlag {
		return joinRental(b, nil), nil
	}

	r, err := s.repomanager.Rentals(s.db).ActiveForBook(ctx, owner, seqNo)
	if errors.Is(err, common.ErrNotFound) {
		s.logger.Warn(ctx, "lent book has no open rental", "owner", owner, "seqno", seqNo)
		return joinRental(b, nil), nil
	}
	if err != nil {
		return nil, err
	}
	return joinRental(b, r), nil
}

// UpsertBook inserts when in.SeqNo is nil (allocating the next per-owner
// sequence number) and otherwise overwrites the editable fields.
func (s *BookService) UpsertBook(ctx context.Context, owner string, in models.BookInput) (*models.Book, error) {
	if owner == "" {
		return nil, common.Validationf("owner is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, common.Validationf("title is required")
	}

	b := &models.Book{
		Owner:         owner,
		ISBN:          strings.TrimSpace(in.ISBN),
		Title:         in.Title,
		TitleKana:     biblio.NormalizeReading(in.TitleKana),
		Author:        in.Author,
		PublisherName: in.PublisherName,
		SalesDate:     in.SalesDate,
		ReadFlag:      in.ReadFlag,
		Note:          in.Note,
	}

	if in.SeqNo != nil {
		if *in.SeqNo <= 0 {
			return nil, common.Validationf("seqno must be positive")
		}
		b.SeqNo = *in.SeqNo
		if err := s.repomanager.Books(s.db).Update(ctx, b); err != nil {
			return nil, err
		}
		return b, nil
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		seq, err := s.repomanager.Sequences(tx).Next(ctx, sequences.BooksScope(owner))
		if err != nil {
			return err
		}
		b.SeqNo = seq
		return s.repomanager.Books(tx).Insert(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "book registered", "owner", owner, "seqno", b.SeqNo, "isbn", b.ISBN)
	return b, nil
}

func (s *BookService) SetReadFlag(ctx context.Context, owner string, seqNo int64, read bool) error {
	if owner == "" || seqNo <= 0 {
		return common.Validationf("owner and seqno are required")
	}
	return s.repomanager.Books(s.db).SetReadFlag(ctx, owner, seqNo, read)
}

// DeleteBook removes a book. Lent books cannot be deleted (common.ErrBookLent).
func (s *BookService) DeleteBook(ctx context.Context, owner string, seqNo int64) error {
	if owner == "" || seqNo <= 0 {
		return common.Validationf("owner and seqno are required")
	}
	if err := s.repomanager.Books(s.db).DeleteAvailable(ctx, owner, seqNo); err != nil {
		return err
	}
	s.logger.Info(ctx, "book deleted", "owner", owner, "seqno", seqNo)
	return nil
}
