package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/dbx"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

const (
	dialectPostgres = "postgres"
	tableBooks      = "books"

	colOwner    = "username"
	colSeqNo    = "seqno"
	colISBN     = "isbn"
	colLendFlag = "lend_flag"
)

var bookColumns = []any{
	"username", "seqno", "isbn", "title", "title_kana", "author",
	"publisher_name", "sales_date", "read_flag", "note", "lend_flag",
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// buildRangeQuery renders q as a prepared keyset query.
//
// Default order:   seqno ASC|DESC, continuation seqno >|< s.
// Secondary order: col ASC|DESC, seqno ASC, continuation
// col >|< v OR (col = v AND seqno > s).
func buildRangeQuery(q RangeQuery) (string, []any, error) {
	if q.Limit <= 0 {
		return "", nil, fmt.Errorf("%w: range limit must be positive", common.ErrValidation)
	}

	ds := goqu.Dialect(dialectPostgres).
		From(tableBooks).
		Select(bookColumns...).
		Where(goqu.C(colOwner).Eq(q.Owner))

	col := q.Sort.Column()
	if col == "" {
		if q.After != nil {
			if q.Descending {
				ds = ds.Where(goqu.C(colSeqNo).Lt(q.After.SeqNo))
			} else {
				ds = ds.Where(goqu.C(colSeqNo).Gt(q.After.SeqNo))
			}
		}
		if q.Descending {
			ds = ds.Order(goqu.C(colSeqNo).Desc())
		} else {
			ds = ds.Order(goqu.C(colSeqNo).Asc())
		}
	} else {
		if q.After != nil {
			var past exp.BooleanExpression
			if q.Descending {
				past = goqu.C(col).Lt(q.After.Value)
			} else {
				past = goqu.C(col).Gt(q.After.Value)
			}
			ds = ds.Where(goqu.Or(
				past,
				goqu.And(goqu.C(col).Eq(q.After.Value), goqu.C(colSeqNo).Gt(q.After.SeqNo)),
			))
		}
		if q.Descending {
			ds = ds.Order(goqu.C(col).Desc(), goqu.C(colSeqNo).Asc())
		} else {
			ds = ds.Order(goqu.C(col).Asc(), goqu.C(colSeqNo).Asc())
		}
	}

	return ds.Limit(uint(q.Limit)).Prepared(true).ToSQL()
}

func (r *PostgresRepository) queryBooks(ctx context.Context, query string, args ...any) ([]models.Book, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	var out []models.Book
	if err := sqlx.StructScan(rows, &out); err != nil {
		return nil, dbx.Classify(err)
	}
	return out, nil
}

func (r *PostgresRepository) Range(ctx context.Context, q RangeQuery) (*Page, error) {
	query, args, err := buildRangeQuery(q)
	if err != nil {
		return nil, err
	}

	items, err := r.queryBooks(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &Page{Books: items, HasMore: len(items) == q.Limit}, nil
}

func (r *PostgresRepository) CountPage(ctx context.Context, owner string, afterSeqNo int64, limit int) (int, int64, error) {
	query :=
		`SELECT COUNT(*), COALESCE(MAX(seqno), 0) FROM (
			SELECT seqno FROM books
			WHERE username = $1 AND seqno > $2
			ORDER BY seqno
			LIMIT $3
		) AS page`

	var (
		n    int
		last int64
	)
	if err := r.db.QueryRowContext(ctx, query, owner, afterSeqNo, limit).Scan(&n, &last); err != nil {
		return 0, 0, dbx.Classify(err)
	}
	return n, last, nil
}

func (r *PostgresRepository) ByISBN(ctx context.Context, owner, isbn string, afterSeqNo int64, limit int) ([]models.Book, error) {
	return r.byISBN(ctx, owner, isbn, afterSeqNo, limit, false)
}

// ByISBNForUpdate is ByISBN with FOR UPDATE SKIP LOCKED. Rows locked by
// another transaction are left out of the page.
func (r *PostgresRepository) ByISBNForUpdate(ctx context.Context, owner, isbn string, afterSeqNo int64, limit int) ([]models.Book, error) {
	return r.byISBN(ctx, owner, isbn, afterSeqNo, limit, true)
}

func (r *PostgresRepository) byISBN(ctx context.Context, owner, isbn string, afterSeqNo int64, limit int, lock bool) ([]models.Book, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(tableBooks).
		Select(bookColumns...).
		Where(
			goqu.C(colOwner).Eq(owner),
			goqu.C(colISBN).Eq(isbn),
			goqu.C(colSeqNo).Gt(afterSeqNo),
		).
		Order(goqu.C(colSeqNo).Asc()).
		Limit(uint(limit))
	if lock {
		ds = ds.ForUpdate(exp.SkipLocked)
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	return r.queryBooks(ctx, query, args...)
}

func (r *PostgresRepository) Get(ctx context.Context, owner string, seqNo int64) (*models.Book, error) {
	query :=
		`SELECT username, seqno, isbn, title, title_kana, author, publisher_name,
		        sales_date, read_flag, note, lend_flag
		 FROM books
		 WHERE username = $1 AND seqno = $2`

	b := &models.Book{}
	err := r.db.QueryRowContext(ctx, query, owner, seqNo).Scan(
		&b.Owner, &b.SeqNo, &b.ISBN, &b.Title, &b.TitleKana, &b.Author,
		&b.PublisherName, &b.SalesDate, &b.ReadFlag, &b.Note, &b.LendFlag)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, dbx.Classify(err)
	}
	return b, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, b *models.Book) error {
	query :=
		`INSERT INTO books (username, seqno, isbn, title, title_kana, author,
		                    publisher_name, sales_date, read_flag, note, lend_flag)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		b.Owner, b.SeqNo, b.ISBN, b.Title, b.TitleKana, b.Author,
		b.PublisherName, b.SalesDate, b.ReadFlag, b.Note, b.LendFlag)
	if err != nil {
		return dbx.Classify(err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, b *models.Book) error {
	query :=
		`UPDATE books
		 SET isbn = $3, title = $4, title_kana = $5, author = $6,
		     publisher_name = $7, sales_date = $8, read_flag = $9, note = $10
		 WHERE username = $1 AND seqno = $2`

	res, err := r.db.ExecContext(ctx, query,
		b.Owner, b.SeqNo, b.ISBN, b.Title, b.TitleKana, b.Author,
		b.PublisherName, b.SalesDate, b.ReadFlag, b.Note)
	if err != nil {
		return dbx.Classify(err)
	}
	return expectOneRow(res, common.ErrNotFound)
}

func (r *PostgresRepository) SetReadFlag(ctx context.Context, owner string, seqNo int64, read bool) error {
	query := `UPDATE books SET read_flag = $3 WHERE username = $1 AND seqno = $2`

	res, err := r.db.ExecContext(ctx, query, owner, seqNo, read)
	if err != nil {
		return dbx.Classify(err)
	}
	return expectOneRow(res, common.ErrNotFound)
}

func (r *PostgresRepository) SetLendFlag(ctx context.Context, owner string, seqNo int64, lent bool) error {
	query := `UPDATE books SET lend_flag = $3 WHERE username = $1 AND seqno = $2 AND lend_flag = $4`

	res, err := r.db.ExecContext(ctx, query, owner, seqNo, lent, !lent)
	if err != nil {
		return dbx.Classify(err)
	}
	return expectOneRow(res, common.ErrConflict)
}

func (r *PostgresRepository) DeleteAvailable(ctx context.Context, owner string, seqNo int64) error {
	query := `DELETE FROM books WHERE username = $1 AND seqno = $2 AND lend_flag = FALSE`

	res, err := r.db.ExecContext(ctx, query, owner, seqNo)
	if err != nil {
		return dbx.Classify(err)
	}
	if err := expectOneRow(res, common.ErrConflict); !errors.Is(err, common.ErrConflict) {
		return err
	}

	// nothing deleted: either missing or lent
	if _, err := r.Get(ctx, owner, seqNo); err != nil {
		return err
	}
	return common.ErrBookLent
}

// expectOneRow maps RowsAffected: 1 is success, 0 is zeroErr.
func expectOneRow(res sql.Result, zeroErr error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return zeroErr
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
