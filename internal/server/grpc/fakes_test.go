package grpc

import (
	"context"

	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/catalog"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/transport"
	"github.com/dmitrijs2005/bookshelf/internal/server/services"
)

// ---- fakes ----

type fakeCatalog struct {
	gotList  catalog.ListRequest
	listResp *catalog.ListResult
	count    int64
	exists   bool
	copy     *models.Book
	gotOwner string
	err      error
}

func (f *fakeCatalog) ListBooks(_ context.Context, req catalog.ListRequest) (*catalog.ListResult, error) {
	f.gotList = req
	return f.listResp, f.err
}
func (f *fakeCatalog) CountBooks(_ context.Context, owner string) (int64, error) {
	f.gotOwner = owner
	return f.count, f.err
}
func (f *fakeCatalog) ExistsByISBN(_ context.Context, owner, _ string) (bool, error) {
	f.gotOwner = owner
	return f.exists, f.err
}
func (f *fakeCatalog) LendableCopy(_ context.Context, owner, _ string) (*models.Book, error) {
	f.gotOwner = owner
	return f.copy, f.err
}

type fakeBooks struct {
	detail   *models.BookDetail
	book     *models.Book
	gotInput models.BookInput
	gotOwner string
	gotRead  bool
	err      error
}

func (f *fakeBooks) GetBook(_ context.Context, owner string, _ int64) (*models.BookDetail, error) {
	f.gotOwner = owner
	return f.detail, f.err
}
func (f *fakeBooks) UpsertBook(_ context.Context, owner string, in models.BookInput) (*models.Book, error) {
	f.gotOwner, f.gotInput = owner, in
	return f.book, f.err
}
func (f *fakeBooks) SetReadFlag(_ context.Context, owner string, _ int64, read bool) error {
	f.gotOwner, f.gotRead = owner, read
	return f.err
}
func (f *fakeBooks) DeleteBook(_ context.Context, owner string, _ int64) error {
	f.gotOwner = owner
	return f.err
}

type fakeLending struct {
	rental    *models.Rental
	rentals   []models.Rental
	gotLender string
	gotRenter string
	err       error
}

func (f *fakeLending) Lend(_ context.Context, lender, renter, _ string) (*models.Rental, error) {
	f.gotLender, f.gotRenter = lender, renter
	return f.rental, f.err
}
func (f *fakeLending) Return(_ context.Context, lender string, _ int64) (*models.Rental, error) {
	f.gotLender = lender
	return f.rental, f.err
}
func (f *fakeLending) ActiveRentals(_ context.Context, lender string) ([]models.Rental, error) {
	f.gotLender = lender
	return f.rentals, f.err
}

type fakeLookup struct {
	rec *models.BibRecord
	err error
}

func (f *fakeLookup) Lookup(context.Context, string) (*models.BibRecord, error) { return f.rec, f.err }

type fakeExport struct {
	exp *services.Export
	err error
}

func (f *fakeExport) ExportCatalog(context.Context, string) (*services.Export, error) {
	return f.exp, f.err
}

// ---- helpers ----

type fakes struct {
	catalog *fakeCatalog
	books   *fakeBooks
	lending *fakeLending
	lookup  *fakeLookup
	export  *fakeExport
}

func newServer() (*GRPCServer, *fakes) {
	f := &fakes{
		catalog: &fakeCatalog{},
		books:   &fakeBooks{},
		lending: &fakeLending{},
		lookup:  &fakeLookup{},
		export:  &fakeExport{},
	}
	s := NewGRPCServer("127.0.0.1:0", logging.Nop(), transport.Services{
		Catalog: f.catalog,
		Books:   f.books,
		Lending: f.lending,
		Lookup:  f.lookup,
		Export:  f.export,
	}, "k")
	return s, f
}

func asOwner(owner string) context.Context {
	return context.WithValue(context.Background(), ownerKey, owner)
}
