// Package catalog resolves logical listing requests (sort order, filter,
// cursor, page size) into bounded sequences of physical range queries.
package catalog

import (
	"context"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/dbx"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/books"
)

const (
	msgStaleCursor     = "discarding cursor, restarting scan"
	msgFetchBoundHit   = "fetch bound reached, returning partial page"
	msgPhysicalFetch   = "range query"
	msgStoreFailure    = "range query failed"
	defaultCountPage   = 1000
	defaultISBNPage    = 300
	defaultPhysicalLen = 50
	defaultMaxFetches  = 10
	defaultMaxPageSize = 100
)

// Index is the read side of the book store used by the engine.
type Index interface {
	ISBNIndex
	Range(ctx context.Context, q books.RangeQuery) (*books.Page, error)
	CountPage(ctx context.Context, owner string, afterSeqNo int64, limit int) (int, int64, error)
}

type Config struct {
	// PhysicalPageSize is the row limit of each range query.
	PhysicalPageSize int
	// MaxPageFetches bounds range queries per ListBooks call.
	MaxPageFetches int
	MaxPageSize    int
	CountPageSize  int
	ISBNPageSize   int
	Retry          dbx.RetryPolicy
}

func (c Config) withDefaults() Config {
	if c.PhysicalPageSize <= 0 {
		c.PhysicalPageSize = defaultPhysicalLen
	}
	if c.MaxPageFetches <= 0 {
		c.MaxPageFetches = defaultMaxFetches
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = defaultMaxPageSize
	}
	if c.CountPageSize <= 0 {
		c.CountPageSize = defaultCountPage
	}
	if c.ISBNPageSize <= 0 {
		c.ISBNPageSize = defaultISBNPage
	}
	if c.Retry == (dbx.RetryPolicy{}) {
		c.Retry = dbx.DefaultRetryPolicy
	}
	return c
}

type ListRequest struct {
	Owner      string
	PageSize   int
	Cursor     string
	SortKey    string
	Descending bool
	Keyword    string
	UnreadOnly bool
}

// ListResult is one logical page. An empty NextCursor means the scan
// reached the end of the collection.
type ListResult struct {
	Items      []models.BookSummary
	NextCursor string
}

type Engine struct {
	index  Index
	cfg    Config
	logger logging.Logger
}

func NewEngine(index Index, cfg Config, logger logging.Logger) *Engine {
	return &Engine{index: index, cfg: cfg.withDefaults(), logger: logger.With("module", "catalog")}
}

// ListBooks collects up to PageSize matching books, issuing as many range
// queries as needed but no more than MaxPageFetches. A bad or mismatched
// cursor restarts the scan. Store failures are returned as is, never as a
// truncated page.
func (e *Engine) ListBooks(ctx context.Context, req ListRequest) (*ListResult, error) {
	if req.Owner == "" {
		return nil, common.Validationf("owner is required")
	}
	if req.PageSize <= 0 || req.PageSize > e.cfg.MaxPageSize {
		return nil, common.Validationf("pageSize must be between 1 and %d", e.cfg.MaxPageSize)
	}
	sort, ok := books.ParseSort(req.SortKey)
	if !ok {
		return nil, common.Validationf("unknown sort key %q", req.SortKey)
	}

	q := books.RangeQuery{
		Owner:      req.Owner,
		Sort:       sort,
		Descending: req.Descending,
		After:      e.resume(ctx, req, sort),
		Limit:      e.cfg.PhysicalPageSize,
	}
	f := filter{keyword: req.Keyword, unreadOnly: req.UnreadOnly}
	res := &ListResult{Items: make([]models.BookSummary, 0, req.PageSize)}

	for fetch := 0; fetch < e.cfg.MaxPageFetches; fetch++ {
		page, err := e.fetch(ctx, q)
		if err != nil {
			return nil, err
		}
		e.logger.Debug(ctx, msgPhysicalFetch, "owner", req.Owner, "sort", sort, "rows", len(page.Books), "filtered", f.active())

		for i := range page.Books {
			b := &page.Books[i]
			if !f.match(b) {
				continue
			}
			res.Items = append(res.Items, b.Summary())
			if len(res.Items) < req.PageSize {
				continue
			}
			if i == len(page.Books)-1 && !page.HasMore {
				return res, nil
			}
			return res, e.setCursor(res, req, sort, position(sort, b))
		}

		if !page.HasMore || len(page.Books) == 0 {
			return res, nil
		}
		last := position(sort, &page.Books[len(page.Books)-1])
		q.After = &last
	}

	e.logger.Info(ctx, msgFetchBoundHit, "owner", req.Owner, "sort", sort, "items", len(res.Items))
	return res, e.setCursor(res, req, sort, *q.After)
}

// resume decodes req.Cursor. Anything unusable is logged and dropped.
func (e *Engine) resume(ctx context.Context, req ListRequest, sort books.Sort) *books.Position {
	if req.Cursor == "" {
		return nil
	}
	c, err := DecodeCursor(req.Cursor)
	if err != nil {
		e.logger.Warn(ctx, msgStaleCursor, "owner", req.Owner, "reason", err.Error())
		return nil
	}
	if !c.Matches(req.Owner, sort, req.Descending) {
		e.logger.Warn(ctx, msgStaleCursor, "owner", req.Owner, "reason", "sort context changed",
			"cursor_sort", c.Sort, "sort", sort)
		return nil
	}
	p := c.Position()
	return &p
}

func (e *Engine) fetch(ctx context.Context, q books.RangeQuery) (*books.Page, error) {
	var page *books.Page
	err := dbx.Retry(ctx, e.cfg.Retry, func(ctx context.Context) error {
		var err error
		page, err = e.index.Range(ctx, q)
		return err
	})
	if err != nil {
		e.logger.Error(ctx, msgStoreFailure, "owner", q.Owner, "sort", q.Sort, "error", err)
		return nil, err
	}
	return page, nil
}

func (e *Engine) setCursor(res *ListResult, req ListRequest, sort books.Sort, pos books.Position) error {
	s, err := EncodeCursor(newCursor(req.Owner, sort, req.Descending, pos))
	if err != nil {
		return err
	}
	res.NextCursor = s
	return nil
}

func position(sort books.Sort, b *models.Book) books.Position {
	return books.Position{SeqNo: b.SeqNo, Value: sort.Value(b)}
}

// CountBooks sums count-only pages over the owner's partition.
func (e *Engine) CountBooks(ctx context.Context, owner string) (int64, error) {
	if owner == "" {
		return 0, common.Validationf("owner is required")
	}

	var (
		total int64
		after int64
	)
	for {
		var (
			n    int
			last int64
		)
		err := dbx.Retry(ctx, e.cfg.Retry, func(ctx context.Context) error {
			var err error
			n, last, err = e.index.CountPage(ctx, owner, after, e.cfg.CountPageSize)
			return err
		})
		if err != nil {
			return 0, err
		}
		total += int64(n)
		if n < e.cfg.CountPageSize {
			return total, nil
		}
		after = last
	}
}

func (e *Engine) ExistsByISBN(ctx context.Context, owner, isbn string) (bool, error) {
	return ExistsByISBN(ctx, retryingISBNIndex{e}, owner, isbn, e.cfg.ISBNPageSize)
}

func (e *Engine) LendableCopy(ctx context.Context, owner, isbn string) (*models.Book, error) {
	return FindAvailableCopy(ctx, retryingISBNIndex{e}, owner, isbn, e.cfg.ISBNPageSize)
}

// retryingISBNIndex fetches each ISBN page under the engine's retry policy.
type retryingISBNIndex struct {
	e *Engine
}

func (r retryingISBNIndex) ByISBN(ctx context.Context, owner, isbn string, afterSeqNo int64, limit int) ([]models.Book, error) {
	var page []models.Book
	err := dbx.Retry(ctx, r.e.cfg.Retry, func(ctx context.Context) error {
		var err error
		page, err = r.e.index.ByISBN(ctx, owner, isbn, afterSeqNo, limit)
		return err
	})
	if err != nil {
		r.e.logger.Error(ctx, msgStoreFailure, "owner", owner, "isbn", isbn, "error", err)
		return nil, err
	}
	return page, nil
}
