package dbx

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy bounds retries of idempotent reads.
type RetryPolicy struct {
	MaxRetries uint64
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxRetries: 3,
	BaseDelay:  50 * time.Millisecond,
	MaxDelay:   time.Second,
}

// Retry runs fn, retrying with jittered exponential backoff while it fails
// with a transient error (see IsTransient). Other errors return at once.
// Only use it for reads; writes are retried by the caller as a whole.
func Retry(ctx context.Context, p RetryPolicy, fn func(ctx context.Context) error) error {
	b := retry.NewExponential(p.BaseDelay)
	b = retry.WithJitterPercent(20, b)
	if p.MaxDelay > 0 {
		b = retry.WithCappedDuration(p.MaxDelay, b)
	}
	b = retry.WithMaxRetries(p.MaxRetries, b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if IsTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}
