package catalog

import (
	"encoding/base64"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/books"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errMalformedCursor = errors.New("malformed cursor")

// Cursor is the decoded continuation token. It records the sort context it
// was issued under so a replay under another order can be detected.
// Value is set iff Sort uses a secondary index.
type Cursor struct {
	Sort       books.Sort `json:"s"`
	Descending bool       `json:"d,omitempty"`
	Owner      string     `json:"o"`
	SeqNo      int64      `json:"n"`
	Value      *string    `json:"v,omitempty"`
}

func newCursor(owner string, sort books.Sort, desc bool, pos books.Position) Cursor {
	c := Cursor{Sort: sort, Descending: desc, Owner: owner, SeqNo: pos.SeqNo}
	if sort.Column() != "" {
		v := pos.Value
		c.Value = &v
	}
	return c
}

// Position converts the cursor back into a keyset position.
func (c Cursor) Position() books.Position {
	p := books.Position{SeqNo: c.SeqNo}
	if c.Value != nil {
		p.Value = *c.Value
	}
	return p
}

// Matches reports whether c may resume a scan of owner under sort/desc.
func (c Cursor) Matches(owner string, sort books.Sort, desc bool) bool {
	return c.Owner == owner && c.Sort == sort && c.Descending == desc
}

func EncodeCursor(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func DecodeCursor(s string) (Cursor, error) {
	var c Cursor

	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errMalformedCursor, err)
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%w: %w", errMalformedCursor, err)
	}

	sort, ok := books.ParseSort(string(c.Sort))
	if !ok || sort != c.Sort || c.Owner == "" || c.SeqNo <= 0 {
		return c, errMalformedCursor
	}
	if (sort.Column() != "") != (c.Value != nil) {
		return c, errMalformedCursor
	}
	return c, nil
}
