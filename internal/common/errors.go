package common

import (
	"errors"
	"fmt"
)

var (

	// taxonomy
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")

	// lending / catalog specific errors
	ErrNoAvailableCopy = fmt.Errorf("%w: no available copy", ErrNotFound)
	ErrBookLent        = fmt.Errorf("%w: book is lent", ErrConflict)
	ErrAlreadyReturned = fmt.Errorf("%w: rental already returned", ErrConflict)

	// service specific errors
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
)

// Validationf builds an ErrValidation carrying a field-specific message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
