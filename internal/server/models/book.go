// Package models defines server-side data models persisted in the database.
package models

// Book is one physical copy owned by a user. (Owner, SeqNo) is unique;
// SeqNo is allocated per owner by the sequence generator.
type Book struct {
	Owner         string `db:"username" json:"-"`
	SeqNo         int64  `db:"seqno" json:"seqno"`
	ISBN          string `db:"isbn" json:"isbn"`
	Title         string `db:"title" json:"title"`
	TitleKana     string `db:"title_kana" json:"titleKana"`
	Author        string `db:"author" json:"author"`
	PublisherName string `db:"publisher_name" json:"publisherName"`
	SalesDate     string `db:"sales_date" json:"salesDate"`
	ReadFlag      bool   `db:"read_flag" json:"readFlag"`
	Note          string `db:"note" json:"note"`
	LendFlag      bool   `db:"lend_flag" json:"lendFlag"`
}

// Summary projects the fields shown in list views.
func (b *Book) Summary() BookSummary {
	return BookSummary{
		SeqNo:         b.SeqNo,
		Title:         b.Title,
		Author:        b.Author,
		PublisherName: b.PublisherName,
		LendFlag:      b.LendFlag,
		ReadFlag:      b.ReadFlag,
	}
}

// BookSummary is a list item.
type BookSummary struct {
	SeqNo         int64  `json:"seqno"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublisherName string `json:"publisherName"`
	LendFlag      bool   `json:"lendFlag"`
	ReadFlag      bool   `json:"readFlag"`
}

// BookDetail is a Book with the active rental joined in at read time.
// Rental fields are empty unless the book is lent.
type BookDetail struct {
	Book
	RentalID       int64  `json:"rentalId,omitempty"`
	RenterUsername string `json:"renterUsername,omitempty"`
	RentalDate     int64  `json:"rentalDate,omitempty"`
}

// BookInput is the editable part of a Book as sent by clients.
// A nil SeqNo means "create".
type BookInput struct {
	SeqNo         *int64 `json:"seqno,omitempty"`
	ISBN          string `json:"isbn"`
	Title         string `json:"title"`
	TitleKana     string `json:"titleKana"`
	Author        string `json:"author"`
	PublisherName string `json:"publisherName"`
	SalesDate     string `json:"salesDate"`
	ReadFlag      bool   `json:"readFlag"`
	Note          string `json:"note"`
}
