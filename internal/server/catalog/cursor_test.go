package catalog

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/books"
)

func TestCursor_RoundTripCarriesSortValue(t *testing.T) {
	c := newCursor("u1", books.SortTitleKana, true, books.Position{SeqNo: 42, Value: "あいう"})

	s, err := EncodeCursor(c)
	require.NoError(t, err)

	got, err := DecodeCursor(s)
	require.NoError(t, err)
	assert.Equal(t, c, got)
	assert.Equal(t, books.Position{SeqNo: 42, Value: "あいう"}, got.Position())
	assert.True(t, got.Matches("u1", books.SortTitleKana, true))
	assert.False(t, got.Matches("u1", books.SortTitleKana, false))
	assert.False(t, got.Matches("u1", books.SortTitle, true))
}

func TestCursor_EmptySortValueIsKept(t *testing.T) {
	c := newCursor("u1", books.SortSalesDate, false, books.Position{SeqNo: 3, Value: ""})
	require.NotNil(t, c.Value)

	s, err := EncodeCursor(c)
	require.NoError(t, err)
	got, err := DecodeCursor(s)
	require.NoError(t, err)
	require.NotNil(t, got.Value)
	assert.Equal(t, "", *got.Value)
}

func TestCursor_DefaultSortHasNoValue(t *testing.T) {
	c := newCursor("u1", books.SortSeqNo, false, books.Position{SeqNo: 3, Value: "ignored"})
	assert.Nil(t, c.Value)
}

func TestDecodeCursor_Rejects(t *testing.T) {
	enc := func(raw string) string { return base64.RawURLEncoding.EncodeToString([]byte(raw)) }

	for name, in := range map[string]string{
		"not base64":         "***",
		"not json":           enc("hello"),
		"unknown sort":       enc(`{"s":"author","o":"u1","n":1}`),
		"no owner":           enc(`{"s":"seqno","n":1}`),
		"zero seqno":         enc(`{"s":"seqno","o":"u1","n":0}`),
		"secondary no value": enc(`{"s":"title","o":"u1","n":1}`),
		"primary with value": enc(`{"s":"seqno","o":"u1","n":1,"v":"x"}`),
		"empty sort":         enc(`{"s":"","o":"u1","n":1}`),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeCursor(in)
			assert.ErrorIs(t, err, errMalformedCursor)
		})
	}
}
