// Package books stores BookRecords keyed by (owner, seqno) and serves the
// keyset range queries behind the catalog's sort orders.
package books

import (
	"context"

	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

// Sort names a sort order. Each non-default order is backed by an index on
// (username, <column>, seqno).
type Sort string

const (
	SortSeqNo     Sort = "seqno"
	SortTitle     Sort = "title"
	SortTitleKana Sort = "titleKana"
	SortSalesDate Sort = "salesDate"
)

// ParseSort maps a client sort key to a Sort. Empty means SortSeqNo.
func ParseSort(s string) (Sort, bool) {
	switch Sort(s) {
	case "", SortSeqNo:
		return SortSeqNo, true
	case SortTitle, SortTitleKana, SortSalesDate:
		return Sort(s), true
	default:
		return "", false
	}
}

// Column is the indexed column for s, or "" for the primary order.
func (s Sort) Column() string {
	switch s {
	case SortTitle:
		return "title"
	case SortTitleKana:
		return "title_kana"
	case SortSalesDate:
		return "sales_date"
	default:
		return ""
	}
}

// Value extracts the sort attribute of b under s.
func (s Sort) Value(b *models.Book) string {
	switch s {
	case SortTitle:
		return b.Title
	case SortTitleKana:
		return b.TitleKana
	case SortSalesDate:
		return b.SalesDate
	default:
		return ""
	}
}

// Position is a keyset position: the last row seen. Value is the sort
// attribute and is ignored for SortSeqNo.
type Position struct {
	SeqNo int64
	Value string
}

// RangeQuery asks for up to Limit rows of Owner strictly after After in the
// given order. Ties on the sort attribute always break by seqno ascending.
type RangeQuery struct {
	Owner      string
	Sort       Sort
	Descending bool
	After      *Position
	Limit      int
}

// Page is one physical range query result. HasMore is set when the page was
// filled, i.e. more rows may follow.
type Page struct {
	Books   []models.Book
	HasMore bool
}

type Repository interface {
	Range(ctx context.Context, q RangeQuery) (*Page, error)
	// CountPage counts up to limit rows with seqno > afterSeqNo and returns the
	// count and the largest seqno seen.
	CountPage(ctx context.Context, owner string, afterSeqNo int64, limit int) (int, int64, error)
	// ByISBN pages over the (owner, isbn) index in seqno order.
	ByISBN(ctx context.Context, owner, isbn string, afterSeqNo int64, limit int) ([]models.Book, error)
	// ByISBNForUpdate is ByISBN that row-locks the page inside the caller's
	// transaction, skipping rows other transactions hold.
	ByISBNForUpdate(ctx context.Context, owner, isbn string, afterSeqNo int64, limit int) ([]models.Book, error)

	Get(ctx context.Context, owner string, seqNo int64) (*models.Book, error)
	Insert(ctx context.Context, b *models.Book) error
	// Update overwrites the editable fields. lend_flag is never touched.
	Update(ctx context.Context, b *models.Book) error
	SetReadFlag(ctx context.Context, owner string, seqNo int64, read bool) error
	// SetLendFlag flips lend_flag to lent only if it currently has the
	// opposite value; otherwise common.ErrConflict.
	SetLendFlag(ctx context.Context, owner string, seqNo int64, lent bool) error
	// DeleteAvailable removes a book that is not lent. A lent book yields
	// common.ErrBookLent, a missing one common.ErrNotFound.
	DeleteAvailable(ctx context.Context, owner string, seqNo int64) error
}
