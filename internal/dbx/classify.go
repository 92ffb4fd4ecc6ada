package dbx

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/bookshelf/internal/common"
)

// transient SQLSTATEs outside the 08 (connection exception) class.
var transientCodes = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
	"57P01": {}, // admin_shutdown
	"57P03": {}, // cannot_connect_now
}

// IsTransient reports whether err is a backing-store failure that is safe
// to retry: lost connections, serialization conflicts and server restarts.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, common.ErrStoreUnavailable) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "08") {
			return true
		}
		_, ok := transientCodes[pgErr.Code]
		return ok
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// Classify wraps a driver error for the repository layer. Transient failures
// become common.ErrStoreUnavailable; everything else is a plain "db error".
// The original error stays in the chain.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if IsTransient(err) && !errors.Is(err, common.ErrStoreUnavailable) {
		return fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("db error: %w", err)
}
