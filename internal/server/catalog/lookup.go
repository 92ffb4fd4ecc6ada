package catalog

import (
	"context"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

// ISBNIndex pages over an owner's books with a given ISBN in seqno order.
type ISBNIndex interface {
	ByISBN(ctx context.Context, owner, isbn string, afterSeqNo int64, limit int) ([]models.Book, error)
}

// scanISBN visits every book of owner with isbn, page by page, until visit
// returns true or the index is exhausted.
func scanISBN(ctx context.Context, idx ISBNIndex, owner, isbn string, pageSize int, visit func(*models.Book) bool) error {
	var after int64
	for {
		page, err := idx.ByISBN(ctx, owner, isbn, after, pageSize)
		if err != nil {
			return err
		}
		for i := range page {
			if visit(&page[i]) {
				return nil
			}
		}
		if len(page) < pageSize {
			return nil
		}
		after = page[len(page)-1].SeqNo
	}
}

// ExistsByISBN reports whether owner already has a book with isbn.
func ExistsByISBN(ctx context.Context, idx ISBNIndex, owner, isbn string, pageSize int) (bool, error) {
	if err := validateISBNRequest(owner, isbn); err != nil {
		return false, err
	}

	found := false
	err := scanISBN(ctx, idx, owner, isbn, pageSize, func(*models.Book) bool {
		found = true
		return true
	})
	return found, err
}

// FindAvailableCopy returns the first copy of isbn owned by owner that is not
// lent, or common.ErrNoAvailableCopy.
func FindAvailableCopy(ctx context.Context, idx ISBNIndex, owner, isbn string, pageSize int) (*models.Book, error) {
	if err := validateISBNRequest(owner, isbn); err != nil {
		return nil, err
	}

	var avail *models.Book
	err := scanISBN(ctx, idx, owner, isbn, pageSize, func(b *models.Book) bool {
		if b.LendFlag {
			return false
		}
		found := *b
		avail = &found
		return true
	})
	if err != nil {
		return nil, err
	}
	if avail == nil {
		return nil, common.ErrNoAvailableCopy
	}
	return avail, nil
}

func validateISBNRequest(owner, isbn string) error {
	if owner == "" {
		return common.Validationf("owner is required")
	}
	if isbn == "" {
		return common.Validationf("isbn is required")
	}
	return nil
}
