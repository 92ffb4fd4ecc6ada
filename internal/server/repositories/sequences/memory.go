package sequences

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/bookshelf/internal/common"
)

// MemoryRepository is an in-process Repository for tests and local runs.
type MemoryRepository struct {
	mu     sync.Mutex
	values map[string]int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{values: make(map[string]int64)}
}

func (r *MemoryRepository) Next(_ context.Context, scope string) (int64, error) {
	if scope == "" {
		return 0, errors.Join(common.ErrValidation, errors.New("empty sequence scope"))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[scope]++
	return r.values[scope], nil
}
