package dbx

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastPolicy = RetryPolicy{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

func TestRetry_RetriesTransientUntilSuccess(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastPolicy, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return driver.ErrBadConn
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_GivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastPolicy, func(ctx context.Context) error {
		calls++
		return driver.ErrBadConn
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, driver.ErrBadConn))
	assert.Equal(t, 3, calls)
}

func TestRetry_PermanentErrorReturnsImmediately(t *testing.T) {
	boom := errors.New("syntax error")
	calls := 0
	err := Retry(context.Background(), fastPolicy, func(ctx context.Context) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
