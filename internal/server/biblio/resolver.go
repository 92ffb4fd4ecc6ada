// Package biblio resolves an ISBN/JAN to a single normalized bibliographic
// record by asking external providers in a fixed order.
package biblio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/circuitbreaker"
	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

const (
	breakerMaxFailures = 5
	breakerTimeout     = 30 * time.Second
)

type guarded struct {
	Provider
	breaker *circuitbreaker.CircuitBreaker
}

type Resolver struct {
	providers []guarded
	logger    logging.Logger
}

// NewResolver asks providers in the given order. Each provider gets its own
// circuit breaker.
func NewResolver(logger logging.Logger, providers ...Provider) *Resolver {
	r := &Resolver{logger: logger.With("module", "biblio")}
	for _, p := range providers {
		r.providers = append(r.providers, guarded{
			Provider: p,
			breaker:  circuitbreaker.New(breakerMaxFailures, breakerTimeout),
		})
	}
	return r
}

func (g guarded) search(ctx context.Context, isbn string) ([]models.BibRecord, error) {
	var recs []models.BibRecord
	var searchErr error
	err := g.breaker.Execute(func() error {
		recs, searchErr = g.Search(ctx, isbn)
		if errors.Is(searchErr, context.Canceled) {
			return nil
		}
		return searchErr
	}, nil)
	if err == nil {
		err = searchErr
	}
	return recs, err
}

// Lookup returns the first provider's record when that provider found
// exactly one. Zero or several candidates fall through to the next provider.
// When no provider matches it returns common.ErrNotFound, unless every
// provider failed, in which case the failures are returned as
// common.ErrStoreUnavailable.
func (r *Resolver) Lookup(ctx context.Context, isbn string) (*models.BibRecord, error) {
	isbn = strings.ReplaceAll(strings.TrimSpace(isbn), "-", "")
	if isbn == "" {
		return nil, common.Validationf("isbn is required")
	}

	var errs []error
	for _, p := range r.providers {
		recs, err := p.search(ctx, isbn)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			r.logger.Warn(ctx, "bibliographic provider failed", "provider", p.Name(), "isbn", isbn, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		if len(recs) != 1 {
			r.logger.Debug(ctx, "no single match", "provider", p.Name(), "isbn", isbn, "candidates", len(recs))
			continue
		}

		rec := recs[0]
		rec.TitleKana = NormalizeReading(rec.TitleKana)
		if rec.ISBN == "" {
			rec.ISBN = isbn
		}
		r.logger.Info(ctx, "bibliographic record resolved", "provider", p.Name(), "isbn", isbn)
		return &rec, nil
	}

	if len(r.providers) > 0 && len(errs) == len(r.providers) {
		return nil, fmt.Errorf("%w: %w", common.ErrStoreUnavailable, errors.Join(errs...))
	}
	return nil, common.ErrNotFound
}
