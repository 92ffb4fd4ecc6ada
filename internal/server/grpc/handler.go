package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/dmitrijs2005/bookshelf/internal/proto"
	"github.com/dmitrijs2005/bookshelf/internal/server/catalog"
)

func (s *GRPCServer) owner(ctx context.Context) (string, error) {
	owner := ownerFromContext(ctx)
	if owner == "" {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return owner, nil
}

func (s *GRPCServer) ListBooks(ctx context.Context, req *pb.ListBooksRequest) (*pb.ListBooksResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.svc.Catalog.ListBooks(ctx, catalog.ListRequest{
		Owner:      owner,
		PageSize:   int(req.GetPageSize()),
		Cursor:     req.GetCursor(),
		SortKey:    req.GetSortKey(),
		Descending: req.GetDesc(),
		Keyword:    req.GetKeyword(),
		UnreadOnly: req.GetUnreadOnly(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "ListBooks", err)
	}

	return &pb.ListBooksResponse{Items: summariesToPB(res.Items), NextCursor: res.NextCursor}, nil
}

func (s *GRPCServer) CountBooks(ctx context.Context, _ *pb.Empty) (*pb.CountBooksResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.svc.Catalog.CountBooks(ctx, owner)
	if err != nil {
		return nil, s.toStatus(ctx, "CountBooks", err)
	}

	return &pb.CountBooksResponse{Count: n}, nil
}

func (s *GRPCServer) ExistsByISBN(ctx context.Context, req *pb.ISBNRequest) (*pb.ExistsResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := s.svc.Catalog.ExistsByISBN(ctx, owner, req.GetIsbn())
	if err != nil {
		return nil, s.toStatus(ctx, "ExistsByISBN", err)
	}

	return &pb.ExistsResponse{Exists: ok}, nil
}

func (s *GRPCServer) GetLendableCopy(ctx context.Context, req *pb.ISBNRequest) (*pb.BookResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.svc.Catalog.LendableCopy(ctx, owner, req.GetIsbn())
	if err != nil {
		return nil, s.toStatus(ctx, "GetLendableCopy", err)
	}

	return &pb.BookResponse{Book: bookToPB(b)}, nil
}

func (s *GRPCServer) GetBook(ctx context.Context, req *pb.SeqNoRequest) (*pb.BookDetailResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.svc.Books.GetBook(ctx, owner, req.GetSeqno())
	if err != nil {
		return nil, s.toStatus(ctx, "GetBook", err)
	}

	return &pb.BookDetailResponse{Book: detailToPB(b)}, nil
}

func (s *GRPCServer) UpsertBook(ctx context.Context, req *pb.UpsertBookRequest) (*pb.BookResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.svc.Books.UpsertBook(ctx, owner, inputFromPB(req.GetBook()))
	if err != nil {
		return nil, s.toStatus(ctx, "UpsertBook", err)
	}

	return &pb.BookResponse{Book: bookToPB(b)}, nil
}

func (s *GRPCServer) SetReadFlag(ctx context.Context, req *pb.SetReadFlagRequest) (*pb.Empty, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.svc.Books.SetReadFlag(ctx, owner, req.GetSeqno(), req.GetReadFlag()); err != nil {
		return nil, s.toStatus(ctx, "SetReadFlag", err)
	}

	return &pb.Empty{}, nil
}

func (s *GRPCServer) DeleteBook(ctx context.Context, req *pb.SeqNoRequest) (*pb.Empty, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.svc.Books.DeleteBook(ctx, owner, req.GetSeqno()); err != nil {
		return nil, s.toStatus(ctx, "DeleteBook", err)
	}

	return &pb.Empty{}, nil
}

func (s *GRPCServer) LendBook(ctx context.Context, req *pb.LendBookRequest) (*pb.RentalResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	r, err := s.svc.Lending.Lend(ctx, owner, req.GetRenter(), req.GetIsbn())
	if err != nil {
		return nil, s.toStatus(ctx, "LendBook", err)
	}

	return &pb.RentalResponse{Rental: rentalToPB(r)}, nil
}

func (s *GRPCServer) ReturnBook(ctx context.Context, req *pb.ReturnBookRequest) (*pb.RentalResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	r, err := s.svc.Lending.Return(ctx, owner, req.GetRentalId())
	if err != nil {
		return nil, s.toStatus(ctx, "ReturnBook", err)
	}

	return &pb.RentalResponse{Rental: rentalToPB(r)}, nil
}

func (s *GRPCServer) ActiveRentals(ctx context.Context, _ *pb.Empty) (*pb.RentalsResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	rs, err := s.svc.Lending.ActiveRentals(ctx, owner)
	if err != nil {
		return nil, s.toStatus(ctx, "ActiveRentals", err)
	}

	return &pb.RentalsResponse{Rentals: rentalsToPB(rs)}, nil
}

func (s *GRPCServer) LookupBook(ctx context.Context, req *pb.ISBNRequest) (*pb.LookupBookResponse, error) {
	if _, err := s.owner(ctx); err != nil {
		return nil, err
	}

	rec, err := s.svc.Lookup.Lookup(ctx, req.GetIsbn())
	if err != nil {
		return nil, s.toStatus(ctx, "LookupBook", err)
	}

	return &pb.LookupBookResponse{Record: bibToPB(rec)}, nil
}

func (s *GRPCServer) ExportCatalog(ctx context.Context, _ *pb.Empty) (*pb.ExportResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	exp, err := s.svc.Export.ExportCatalog(ctx, owner)
	if err != nil {
		return nil, s.toStatus(ctx, "ExportCatalog", err)
	}

	return exportToPB(exp), nil
}
