package rentals

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

var columns = []string{"rental_id", "lender_username", "renter_username", "isbn", "seqno", "rental_date", "return_flag", "return_date"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

func TestInsert(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+rentals\s*\(rental_id,.+VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*FALSE\)$`).
		WithArgs(int64(10), "u1", "u2", "978", int64(3), at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), &models.Rental{
		RentalID: 10, LenderUsername: "u1", RenterUsername: "u2", ISBN: "978", SeqNo: 3, RentalDate: at,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_TransientError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	mock.ExpectExec(`INSERT\s+INTO\s+rentals`).WillReturnError(driver.ErrBadConn)

	err := repo.Insert(context.Background(), &models.Rental{RentalID: 1})
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}

func TestGet(t *testing.T) {
	at := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t)
		mock.ExpectQuery(`SELECT\s+rental_id,.+FROM\s+rentals\s+WHERE\s+rental_id\s*=\s*\$1`).
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(10), "u1", "u2", "978", int64(3), at, false, nil))

		r, err := repo.Get(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, "u2", r.RenterUsername)
		assert.Equal(t, at, r.RentalDate)
		assert.Nil(t, r.ReturnDate)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t)
		mock.ExpectQuery(`FROM\s+rentals\s+WHERE\s+rental_id`).WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.Get(context.Background(), 10)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestMarkReturned(t *testing.T) {
	q := `(?s)^UPDATE\s+rentals\s+SET\s+return_flag\s*=\s*TRUE,\s*return_date\s*=\s*\$3\s+WHERE\s+rental_id\s*=\s*\$1\s+AND\s+lender_username\s*=\s*\$2\s+AND\s+return_flag\s*=\s*FALSE\s+RETURNING\s+rental_id,`
	rentedAt := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	returnedAt := rentedAt.Add(48 * time.Hour)

	t.Run("open rental", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs(int64(10), "u1", returnedAt).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(10), "u1", "u2", "978", int64(3), rentedAt, true, returnedAt))

		r, err := repo.MarkReturned(context.Background(), "u1", 10, returnedAt)
		require.NoError(t, err)
		assert.True(t, r.ReturnFlag)
		require.NotNil(t, r.ReturnDate)
		assert.Equal(t, returnedAt, *r.ReturnDate)
		assert.Equal(t, int64(3), r.SeqNo)
	})

	t.Run("no open rental", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs(int64(10), "u1", returnedAt).WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.MarkReturned(context.Background(), "u1", 10, returnedAt)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestActiveForBook(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	at := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)WHERE\s+lender_username\s*=\s*\$1\s+AND\s+seqno\s*=\s*\$2\s+AND\s+return_flag\s*=\s*FALSE\s+ORDER\s+BY\s+rental_id\s+DESC\s+LIMIT\s+1`).
		WithArgs("u1", int64(3)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(11), "u1", "u2", "978", int64(3), at, false, nil))

	r, err := repo.ActiveForBook(context.Background(), "u1", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(11), r.RentalID)
}

func TestListActive(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	at := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)WHERE\s+lender_username\s*=\s*\$1\s+AND\s+return_flag\s*=\s*FALSE\s+ORDER\s+BY\s+rental_id$`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "u1", "u2", "978", int64(3), at, false, nil).
			AddRow(int64(4), "u1", "u3", "979", int64(5), at, false, nil))

	got, err := repo.ListActive(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "u3", got[1].RenterUsername)
}
