package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	pb "github.com/dmitrijs2005/bookshelf/internal/proto"
	"github.com/dmitrijs2005/bookshelf/internal/server/catalog"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/services"
)

func TestListBooks_PassesRequestWithOwner(t *testing.T) {
	s, f := newServer()
	f.catalog.listResp = &catalog.ListResult{
		Items:      []models.BookSummary{{SeqNo: 1, Title: "Go"}},
		NextCursor: "c1",
	}

	resp, err := s.ListBooks(asOwner("u1"), &pb.ListBooksRequest{PageSize: 5, Cursor: "c0", SortKey: "title", Desc: true, Keyword: "G", UnreadOnly: true})
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.NextCursor)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Go", resp.Items[0].GetTitle())
	assert.Equal(t, catalog.ListRequest{
		Owner: "u1", PageSize: 5, Cursor: "c0", SortKey: "title", Descending: true, Keyword: "G", UnreadOnly: true,
	}, f.catalog.gotList)
}

func TestHandlers_RequireOwner(t *testing.T) {
	s, _ := newServer()
	ctx := context.Background()

	_, err := s.CountBooks(ctx, &pb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.LendBook(ctx, &pb.LendBookRequest{Renter: "u2", Isbn: "1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.LookupBook(ctx, &pb.ISBNRequest{Isbn: "1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestCatalogHandlers(t *testing.T) {
	s, f := newServer()
	f.catalog.count = 7
	f.catalog.exists = true
	f.catalog.copy = &models.Book{SeqNo: 3}
	ctx := asOwner("u1")

	c, err := s.CountBooks(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.Count)

	e, err := s.ExistsByISBN(ctx, &pb.ISBNRequest{Isbn: "1"})
	require.NoError(t, err)
	assert.True(t, e.Exists)

	b, err := s.GetLendableCopy(ctx, &pb.ISBNRequest{Isbn: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), b.Book.GetSeqno())
	assert.Equal(t, "u1", f.catalog.gotOwner)
}

func TestBookHandlers(t *testing.T) {
	s, f := newServer()
	f.books.detail = &models.BookDetail{Book: models.Book{SeqNo: 2}, RentalID: 9}
	f.books.book = &models.Book{SeqNo: 4, Title: "New"}
	ctx := asOwner("u1")

	d, err := s.GetBook(ctx, &pb.SeqNoRequest{Seqno: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(9), d.Book.GetRentalId())

	u, err := s.UpsertBook(ctx, &pb.UpsertBookRequest{Book: &pb.BookInput{Title: "New"}})
	require.NoError(t, err)
	assert.Equal(t, int64(4), u.Book.GetSeqno())
	assert.Equal(t, "New", f.books.gotInput.Title)
	assert.Nil(t, f.books.gotInput.SeqNo)

	_, err = s.UpsertBook(ctx, &pb.UpsertBookRequest{Book: &pb.BookInput{Seqno: 4, Title: "Edit"}})
	require.NoError(t, err)
	require.NotNil(t, f.books.gotInput.SeqNo)
	assert.Equal(t, int64(4), *f.books.gotInput.SeqNo)

	_, err = s.SetReadFlag(ctx, &pb.SetReadFlagRequest{Seqno: 4, ReadFlag: true})
	require.NoError(t, err)
	assert.True(t, f.books.gotRead)

	_, err = s.DeleteBook(ctx, &pb.SeqNoRequest{Seqno: 4})
	require.NoError(t, err)
	assert.Equal(t, "u1", f.books.gotOwner)
}

func TestLendingHandlers(t *testing.T) {
	s, f := newServer()
	returned := time.Unix(1700000500, 0)
	f.lending.rental = &models.Rental{RentalID: 5, RentalDate: time.Unix(1700000000, 0), ReturnFlag: true, ReturnDate: &returned}
	f.lending.rentals = []models.Rental{{RentalID: 5}}
	ctx := asOwner("u1")

	r, err := s.LendBook(ctx, &pb.LendBookRequest{Renter: "u2", Isbn: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), r.Rental.GetRentalId())
	assert.Equal(t, int64(1700000000), r.Rental.GetRentalDate())
	assert.Equal(t, int64(1700000500), r.Rental.GetReturnDate())
	assert.Equal(t, "u1", f.lending.gotLender)
	assert.Equal(t, "u2", f.lending.gotRenter)

	_, err = s.ReturnBook(ctx, &pb.ReturnBookRequest{RentalId: 5})
	require.NoError(t, err)

	a, err := s.ActiveRentals(ctx, &pb.Empty{})
	require.NoError(t, err)
	require.Len(t, a.Rentals, 1)
	assert.Equal(t, int64(0), a.Rentals[0].GetReturnDate())
}

func TestLookupAndExportHandlers(t *testing.T) {
	s, f := newServer()
	f.lookup.rec = &models.BibRecord{Title: "T"}
	f.export.exp = &services.Export{Key: "k", URL: "https://s3/k", Count: 2, ExpiresAt: time.Unix(1700000900, 0)}
	ctx := asOwner("u1")

	l, err := s.LookupBook(ctx, &pb.ISBNRequest{Isbn: "1"})
	require.NoError(t, err)
	assert.Equal(t, "T", l.Record.GetTitle())

	e, err := s.ExportCatalog(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.GetCount())
	assert.Equal(t, "https://s3/k", e.GetUrl())
	assert.Equal(t, int64(1700000900), e.GetExpiresAt())
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{common.Validationf("bad"), codes.InvalidArgument},
		{common.ErrNotFound, codes.NotFound},
		{common.ErrNoAvailableCopy, codes.NotFound},
		{common.ErrBookLent, codes.FailedPrecondition},
		{common.ErrAlreadyReturned, codes.FailedPrecondition},
		{fmt.Errorf("%w: conn reset", common.ErrStoreUnavailable), codes.Unavailable},
		{common.ErrInvalidToken, codes.Unauthenticated},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			s, f := newServer()
			f.lending.err = tt.err
			_, err := s.ReturnBook(asOwner("u1"), &pb.ReturnBookRequest{RentalId: 1})
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	s, f := newServer()
	f.catalog.err = errors.New("pq: secret detail")

	_, err := s.CountBooks(asOwner("u1"), &pb.Empty{})
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, common.ErrInternal.Error(), st.Message())

	f.catalog.err = fmt.Errorf("%w: cursor signer: secret", common.ErrInternal)
	_, err = s.CountBooks(asOwner("u1"), &pb.Empty{})
	st, _ = status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())
}
