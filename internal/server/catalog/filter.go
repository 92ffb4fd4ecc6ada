package catalog

import (
	"strings"

	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

// filter is applied after the range query; it is not index-accelerated.
// Keyword matching is a case-sensitive substring test.
type filter struct {
	keyword    string
	unreadOnly bool
}

func (f filter) active() bool {
	return f.keyword != "" || f.unreadOnly
}

func (f filter) match(b *models.Book) bool {
	if f.unreadOnly && b.ReadFlag {
		return false
	}
	if f.keyword == "" {
		return true
	}
	return strings.Contains(b.Title, f.keyword) ||
		strings.Contains(b.Author, f.keyword) ||
		strings.Contains(b.PublisherName, f.keyword)
}
