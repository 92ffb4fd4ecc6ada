package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/books"
)

// memIndex mirrors the keyset semantics of the Postgres repository.
type memIndex struct {
	mu    sync.Mutex
	books []models.Book

	rangeCalls int
	countCalls int
	isbnCalls  int
	rangeErrs  []error
	isbnErrs   []error
}

func newMemIndex(bs ...models.Book) *memIndex {
	return &memIndex{books: bs}
}

func (m *memIndex) add(b models.Book) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.books = append(m.books, b)
}

// less orders rows as the database does for q: the sort column in the
// requested direction, then seqno ascending.
func less(q books.RangeQuery, a, b *models.Book) bool {
	if q.Sort.Column() == "" {
		if q.Descending {
			return a.SeqNo > b.SeqNo
		}
		return a.SeqNo < b.SeqNo
	}
	va, vb := q.Sort.Value(a), q.Sort.Value(b)
	if va != vb {
		if q.Descending {
			return va > vb
		}
		return va < vb
	}
	return a.SeqNo < b.SeqNo
}

func after(q books.RangeQuery, b *models.Book) bool {
	if q.After == nil {
		return true
	}
	pos := &models.Book{SeqNo: q.After.SeqNo}
	switch q.Sort {
	case books.SortTitle:
		pos.Title = q.After.Value
	case books.SortTitleKana:
		pos.TitleKana = q.After.Value
	case books.SortSalesDate:
		pos.SalesDate = q.After.Value
	}
	return less(q, pos, b)
}

func (m *memIndex) sorted(q books.RangeQuery) []models.Book {
	var out []models.Book
	for _, b := range m.books {
		if b.Owner == q.Owner {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(q, &out[i], &out[j]) })
	return out
}

func (m *memIndex) Range(_ context.Context, q books.RangeQuery) (*books.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rangeCalls++
	if len(m.rangeErrs) > 0 {
		err := m.rangeErrs[0]
		m.rangeErrs = m.rangeErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	var page []models.Book
	for _, b := range m.sorted(q) {
		if !after(q, &b) {
			continue
		}
		page = append(page, b)
		if len(page) == q.Limit {
			break
		}
	}
	return &books.Page{Books: page, HasMore: len(page) == q.Limit}, nil
}

func (m *memIndex) CountPage(_ context.Context, owner string, afterSeqNo int64, limit int) (int, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countCalls++

	n, last := 0, int64(0)
	for _, b := range m.sorted(books.RangeQuery{Owner: owner, Sort: books.SortSeqNo}) {
		if b.SeqNo <= afterSeqNo {
			continue
		}
		n++
		last = b.SeqNo
		if n == limit {
			break
		}
	}
	return n, last, nil
}

func (m *memIndex) ByISBN(_ context.Context, owner, isbn string, afterSeqNo int64, limit int) ([]models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isbnCalls++
	if len(m.isbnErrs) > 0 {
		err := m.isbnErrs[0]
		m.isbnErrs = m.isbnErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	var out []models.Book
	for _, b := range m.sorted(books.RangeQuery{Owner: owner, Sort: books.SortSeqNo}) {
		if b.ISBN != isbn || b.SeqNo <= afterSeqNo {
			continue
		}
		out = append(out, b)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
