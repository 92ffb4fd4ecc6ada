// Package sequences hands out monotonically increasing integers per named
// scope. Allocation is a single atomic statement; concurrent callers never
// receive the same value. Gaps are possible (aborted transactions).
package sequences

import "context"

const (
	booksScopePrefix = "books#"
	RentalsScope     = "rentals"
)

// BooksScope is the per-owner scope for book sequence numbers.
func BooksScope(owner string) string {
	return booksScopePrefix + owner
}

type Repository interface {
	Next(ctx context.Context, scope string) (int64, error)
}
