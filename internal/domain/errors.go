package domain

import (
	"errors"
	"fmt"
)

var (
	// Decode errors
	ErrMalformedRow = errors.New("malformed row")
	ErrBadAmount    = errors.New("invalid amount")
	ErrBadDate      = errors.New("invalid date")
	ErrBadKind      = errors.New("invalid transaction type")

	// I/O errors
	ErrNotFound     = errors.New("file not found")
	ErrReadFailure  = errors.New("read failed")
	ErrWriteFailure = errors.New("write failed")

	// Entry errors
	ErrUnknownCategory = errors.New("unknown category")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrInvalidPeriod   = errors.New("invalid period")
)

// KindError reports a transaction type outside INCOME/EXPENSE.
type KindError struct {
	Value string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: %q", ErrBadKind, e.Value)
}

func (e *KindError) Unwrap() error {
	return ErrBadKind
}
