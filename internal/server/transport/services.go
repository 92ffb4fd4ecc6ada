// Package transport names the application services the gRPC and HTTP
// surfaces dispatch to.
package transport

import (
	"context"

	"github.com/dmitrijs2005/bookshelf/internal/server/catalog"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/services"
)

type CatalogService interface {
	ListBooks(ctx context.Context, req catalog.ListRequest) (*catalog.ListResult, error)
	CountBooks(ctx context.Context, owner string) (int64, error)
	ExistsByISBN(ctx context.Context, owner, isbn string) (bool, error)
	LendableCopy(ctx context.Context, owner, isbn string) (*models.Book, error)
}

type BookService interface {
	GetBook(ctx context.Context, owner string, seqNo int64) (*models.BookDetail, error)
	UpsertBook(ctx context.Context, owner string, in models.BookInput) (*models.Book, error)
	SetReadFlag(ctx context.Context, owner string, seqNo int64, read bool) error
	DeleteBook(ctx context.Context, owner string, seqNo int64) error
}

type LendingService interface {
	Lend(ctx context.Context, lender, renter, isbn string) (*models.Rental, error)
	Return(ctx context.Context, lender string, rentalID int64) (*models.Rental, error)
	ActiveRentals(ctx context.Context, lender string) ([]models.Rental, error)
}

type LookupService interface {
	Lookup(ctx context.Context, isbn string) (*models.BibRecord, error)
}

type ExportService interface {
	ExportCatalog(ctx context.Context, owner string) (*services.Export, error)
}

type Services struct {
	Catalog CatalogService
	Books   BookService
	Lending LendingService
	Lookup  LookupService
	Export  ExportService
}
