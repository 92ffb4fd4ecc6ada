package grpc

import (
	pb "github.com/dmitrijs2005/bookshelf/internal/proto"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/services"
)

// Timestamps travel as unix seconds; zero means unset.

func bookToPB(b *models.Book) *pb.Book {
	if b == nil {
		return nil
	}
	return &pb.Book{
		Seqno:         b.SeqNo,
		Isbn:          b.ISBN,
		Title:         b.Title,
		TitleKana:     b.TitleKana,
		Author:        b.Author,
		PublisherName: b.PublisherName,
		SalesDate:     b.SalesDate,
		ReadFlag:      b.ReadFlag,
		Note:          b.Note,
		LendFlag:      b.LendFlag,
	}
}

func summariesToPB(items []models.BookSummary) []*pb.BookSummary {
	out := make([]*pb.BookSummary, 0, len(items))
	for _, it := range items {
		out = append(out, &pb.BookSummary{
			Seqno:         it.SeqNo,
			Title:         it.Title,
			Author:        it.Author,
			PublisherName: it.PublisherName,
			LendFlag:      it.LendFlag,
			ReadFlag:      it.ReadFlag,
		})
	}
	return out
}

func detailToPB(d *models.BookDetail) *pb.BookDetail {
	if d == nil {
		return nil
	}
	return &pb.BookDetail{
		Book:           bookToPB(&d.Book),
		RentalId:       d.RentalID,
		RenterUsername: d.RenterUsername,
		RentalDate:     d.RentalDate,
	}
}

// inputFromPB maps a zero seqno to "create".
func inputFromPB(in *pb.BookInput) models.BookInput {
	out := models.BookInput{
		ISBN:          in.GetIsbn(),
		Title:         in.GetTitle(),
		TitleKana:     in.GetTitleKana(),
		Author:        in.GetAuthor(),
		PublisherName: in.GetPublisherName(),
		SalesDate:     in.GetSalesDate(),
		ReadFlag:      in.GetReadFlag(),
		Note:          in.GetNote(),
	}
	if seq := in.GetSeqno(); seq != 0 {
		out.SeqNo = &seq
	}
	return out
}

func rentalToPB(r *models.Rental) *pb.Rental {
	if r == nil {
		return nil
	}
	out := &pb.Rental{
		RentalId:       r.RentalID,
		LenderUsername: r.LenderUsername,
		RenterUsername: r.RenterUsername,
		Isbn:           r.ISBN,
		Seqno:          r.SeqNo,
		RentalDate:     r.RentalDate.Unix(),
		ReturnFlag:     r.ReturnFlag,
	}
	if r.ReturnDate != nil {
		out.ReturnDate = r.ReturnDate.Unix()
	}
	return out
}

func rentalsToPB(rs []models.Rental) []*pb.Rental {
	out := make([]*pb.Rental, 0, len(rs))
	for i := range rs {
		out = append(out, rentalToPB(&rs[i]))
	}
	return out
}

func bibToPB(rec *models.BibRecord) *pb.BibRecord {
	if rec == nil {
		return nil
	}
	return &pb.BibRecord{
		Isbn:          rec.ISBN,
		Title:         rec.Title,
		TitleKana:     rec.TitleKana,
		Author:        rec.Author,
		PublisherName: rec.PublisherName,
		SalesDate:     rec.SalesDate,
	}
}

func exportToPB(e *services.Export) *pb.ExportResponse {
	if e == nil {
		return &pb.ExportResponse{}
	}
	return &pb.ExportResponse{
		Key:       e.Key,
		Url:       e.URL,
		Count:     int64(e.Count),
		ExpiresAt: e.ExpiresAt.Unix(),
	}
}
