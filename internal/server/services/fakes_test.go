package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/dbx"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/rentals"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/sequences"
)

// -------- test fakes --------

type bookKey struct {
	owner string
	seq   int64
}

type fakeBooksRepo struct {
	books.Repository
	mu    sync.Mutex
	books map[bookKey]models.Book

	setLendErr error
	insertErr  error

	// locked holds copies another transaction has row-locked.
	locked       map[bookKey]bool
	plainScans   int
	lockingScans int
}

func newFakeBooksRepo(bs ...models.Book) *fakeBooksRepo {
	f := &fakeBooksRepo{books: make(map[bookKey]models.Book)}
	for _, b := range bs {
		f.books[bookKey{b.Owner, b.SeqNo}] = b
	}
	return f
}

func (f *fakeBooksRepo) get(owner string, seq int64) (models.Book, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[bookKey{owner, seq}]
	return b, ok
}

func (f *fakeBooksRepo) Range(_ context.Context, q books.RangeQuery) (*books.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.Book
	for _, b := range f.books {
		if b.Owner == q.Owner && (q.After == nil || b.SeqNo > q.After.SeqNo) {
			all = append(all, b)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].SeqNo < all[j].SeqNo })
	if len(all) > q.Limit {
		all = all[:q.Limit]
	}
	return &books.Page{Books: all, HasMore: len(all) == q.Limit}, nil
}

func (f *fakeBooksRepo) ByISBN(_ context.Context, owner, isbn string, after int64, limit int) ([]models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plainScans++
	return f.scanISBN(owner, isbn, after, limit, false), nil
}

func (f *fakeBooksRepo) ByISBNForUpdate(_ context.Context, owner, isbn string, after int64, limit int) ([]models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lockingScans++
	return f.scanISBN(owner, isbn, after, limit, true), nil
}

func (f *fakeBooksRepo) scanISBN(owner, isbn string, after int64, limit int, skipLocked bool) []models.Book {
	var out []models.Book
	for k, b := range f.books {
		if skipLocked && f.locked[k] {
			continue
		}
		if b.Owner == owner && b.ISBN == isbn && b.SeqNo > after {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeqNo < out[j].SeqNo })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (f *fakeBooksRepo) Get(_ context.Context, owner string, seq int64) (*models.Book, error) {
	b, ok := f.get(owner, seq)
	if !ok {
		return nil, common.ErrNotFound
	}
	return &b, nil
}

func (f *fakeBooksRepo) Insert(_ context.Context, b *models.Book) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.books[bookKey{b.Owner, b.SeqNo}] = *b
	return nil
}

func (f *fakeBooksRepo) Update(_ context.Context, b *models.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.books[bookKey{b.Owner, b.SeqNo}]
	if !ok {
		return common.ErrNotFound
	}
	next := *b
	next.LendFlag = cur.LendFlag
	f.books[bookKey{b.Owner, b.SeqNo}] = next
	return nil
}

func (f *fakeBooksRepo) SetReadFlag(_ context.Context, owner string, seq int64, read bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[bookKey{owner, seq}]
	if !ok {
		return common.ErrNotFound
	}
	b.ReadFlag = read
	f.books[bookKey{owner, seq}] = b
	return nil
}

func (f *fakeBooksRepo) SetLendFlag(_ context.Context, owner string, seq int64, lent bool) error {
	if f.setLendErr != nil {
		return f.setLendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[bookKey{owner, seq}]
	if !ok || b.LendFlag == lent {
		return common.ErrConflict
	}
	b.LendFlag = lent
	f.books[bookKey{owner, seq}] = b
	return nil
}

func (f *fakeBooksRepo) DeleteAvailable(_ context.Context, owner string, seq int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[bookKey{owner, seq}]
	switch {
	case !ok:
		return common.ErrNotFound
	case b.LendFlag:
		return common.ErrBookLent
	}
	delete(f.books, bookKey{owner, seq})
	return nil
}

type fakeRentalsRepo struct {
	rentals.Repository
	mu      sync.Mutex
	rentals map[int64]models.Rental

	insertErr error
}

func newFakeRentalsRepo(rs ...models.Rental) *fakeRentalsRepo {
	f := &fakeRentalsRepo{rentals: make(map[int64]models.Rental)}
	for _, r := range rs {
		f.rentals[r.RentalID] = r
	}
	return f
}

func (f *fakeRentalsRepo) Insert(_ context.Context, r *models.Rental) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rentals[r.RentalID] = *r
	return nil
}

func (f *fakeRentalsRepo) Get(_ context.Context, id int64) (*models.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rentals[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &r, nil
}

func (f *fakeRentalsRepo) MarkReturned(_ context.Context, lender string, id int64, at time.Time) (*models.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rentals[id]
	if !ok || r.LenderUsername != lender || r.ReturnFlag {
		return nil, common.ErrNotFound
	}
	r.ReturnFlag = true
	r.ReturnDate = &at
	f.rentals[id] = r
	return &r, nil
}

func (f *fakeRentalsRepo) ActiveForBook(_ context.Context, lender string, seq int64) (*models.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rentals {
		if r.LenderUsername == lender && r.SeqNo == seq && !r.ReturnFlag {
			return &r, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRentalsRepo) ListActive(_ context.Context, lender string) ([]models.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Rental
	for _, r := range f.rentals {
		if r.LenderUsername == lender && !r.ReturnFlag {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RentalID < out[j].RentalID })
	return out, nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	b *fakeBooksRepo
	r *fakeRentalsRepo
	s sequences.Repository
}

func newFakeRepoManager(b *fakeBooksRepo, r *fakeRentalsRepo) *fakeRepoManager {
	return &fakeRepoManager{b: b, r: r, s: sequences.NewMemoryRepository()}
}

func (m *fakeRepoManager) Books(dbx.DBTX) books.Repository         { return m.b }
func (m *fakeRepoManager) Rentals(dbx.DBTX) rentals.Repository     { return m.r }
func (m *fakeRepoManager) Sequences(dbx.DBTX) sequences.Repository { return m.s }

// -------- helpers --------

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
