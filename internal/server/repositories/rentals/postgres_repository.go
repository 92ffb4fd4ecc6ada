package rentals

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/dbx"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

const rentalColumns = `rental_id, lender_username, renter_username, isbn, seqno, rental_date, return_flag, return_date`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, rental *models.Rental) error {
	query :=
		`INSERT INTO rentals (rental_id, lender_username, renter_username, isbn, seqno, rental_date, return_flag)
		 VALUES ($1, $2, $3, $4, $5, $6, FALSE)`

	_, err := r.db.ExecContext(ctx, query,
		rental.RentalID, rental.LenderUsername, rental.RenterUsername,
		rental.ISBN, rental.SeqNo, rental.RentalDate)
	if err != nil {
		return dbx.Classify(err)
	}
	return nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	var out []models.Rental
	if err := sqlx.StructScan(rows, &out); err != nil {
		return nil, dbx.Classify(err)
	}
	return out, nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, query string, args ...any) (*models.Rental, error) {
	out, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, common.ErrNotFound
	}
	return &out[0], nil
}

func (r *PostgresRepository) Get(ctx context.Context, rentalID int64) (*models.Rental, error) {
	return r.queryOne(ctx,
		`SELECT `+rentalColumns+` FROM rentals WHERE rental_id = $1`,
		rentalID)
}

func (r *PostgresRepository) MarkReturned(ctx context.Context, lender string, rentalID int64, at time.Time) (*models.Rental, error) {
	return r.queryOne(ctx,
		`UPDATE rentals SET return_flag = TRUE, return_date = $3
		 WHERE rental_id = $1 AND lender_username = $2 AND return_flag = FALSE
		 RETURNING `+rentalColumns,
		rentalID, lender, at)
}

func (r *PostgresRepository) ActiveForBook(ctx context.Context, lender string, seqNo int64) (*models.Rental, error) {
	return r.queryOne(ctx,
		`SELECT `+rentalColumns+` FROM rentals
		 WHERE lender_username = $1 AND seqno = $2 AND return_flag = FALSE
		 ORDER BY rental_id DESC
		 LIMIT 1`,
		lender, seqNo)
}

func (r *PostgresRepository) ListActive(ctx context.Context, lender string) ([]models.Rental, error) {
	return r.query(ctx,
		`SELECT `+rentalColumns+` FROM rentals
		 WHERE lender_username = $1 AND return_flag = FALSE
		 ORDER BY rental_id`,
		lender)
}
