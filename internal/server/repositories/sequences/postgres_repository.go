package sequences

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Next increments the counter for scope and returns the new value. The first
// call for a scope returns 1.
func (r *PostgresRepository) Next(ctx context.Context, scope string) (int64, error) {
	if scope == "" {
		return 0, errors.Join(common.ErrValidation, errors.New("empty sequence scope"))
	}

	query :=
		`INSERT INTO atomic_numbers (name, value) VALUES ($1, 1)
		 ON CONFLICT (name) DO UPDATE SET value = atomic_numbers.value + 1
		 RETURNING value`

	var v int64
	if err := r.db.QueryRowContext(ctx, query, scope).Scan(&v); err != nil {
		return 0, dbx.Classify(err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("sequence %q returned non-positive value %d", scope, v)
	}
	return v, nil
}
