package domain

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	incomeCategories  = []string{"Salary", "Business", "Investment", "Gift", "Other"}
	expenseCategories = []string{"Food", "Rent", "Travel", "Utilities", "Entertainment", "Shopping", "Healthcare", "Education", "Other"}
)

// Categories returns the fixed category list offered for a kind.
func Categories(kind Kind) []string {
	var src []string
	switch kind {
	case KindIncome:
		src = incomeCategories
	case KindExpense:
		src = expenseCategories
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// IsKnownCategory reports whether category belongs to the fixed list of kind.
func IsKnownCategory(kind Kind, category string) bool {
	for _, c := range Categories(kind) {
		if c == category {
			return true
		}
	}
	return false
}

// ResolveCategory maps user input to a canonical category name. The input may
// be a name (case-insensitive) or a 1-based position in the kind's list.
func ResolveCategory(kind Kind, input string) (string, error) {
	input = strings.TrimSpace(input)
	categories := Categories(kind)

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(categories) {
			return "", fmt.Errorf("%w: %d is not between 1 and %d", ErrUnknownCategory, n, len(categories))
		}
		return categories[n-1], nil
	}

	for _, c := range categories {
		if strings.EqualFold(c, input) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q for %s", ErrUnknownCategory, input, kind.Label())
}
