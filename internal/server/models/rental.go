package models

import "time"

// Rental is one lending transaction. Rows are never deleted; ReturnFlag
// flips false->true once and ReturnDate is set together with it.
type Rental struct {
	RentalID       int64      `db:"rental_id" json:"rentalId"`
	LenderUsername string     `db:"lender_username" json:"lenderUsername"`
	RenterUsername string     `db:"renter_username" json:"renterUsername"`
	ISBN           string     `db:"isbn" json:"isbn"`
	SeqNo          int64      `db:"seqno" json:"seqno"`
	RentalDate     time.Time  `db:"rental_date" json:"rentalDate"`
	ReturnFlag     bool       `db:"return_flag" json:"returnFlag"`
	ReturnDate     *time.Time `db:"return_date" json:"returnDate,omitempty"`
}
