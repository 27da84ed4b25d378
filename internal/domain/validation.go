package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MinYear = 1
	MaxYear = 9999
)

// ParseAmount parses a decimal amount such as "1250.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	return amount, nil
}

// ValidateAmount checks the sign of an amount. Negative and zero amounts are
// accepted unless rejectNegative is set.
func ValidateAmount(amount decimal.Decimal, rejectNegative bool) error {
	if rejectNegative && amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}
	return nil
}

// ValidatePeriod validates a summary year and month.
func ValidatePeriod(year int, month time.Month) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d is not between 1 and 12", ErrInvalidPeriod, int(month))
	}
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidPeriod, year)
	}
	return nil
}
