package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in the store and on the command line.
const DateLayout = "2006-01-02"

// Kind distinguishes money coming in from money going out.
type Kind string

const (
	KindIncome  Kind = "INCOME"
	KindExpense Kind = "EXPENSE"
)

// ParseKind accepts exactly the two stored spellings.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome, KindExpense:
		return Kind(s), nil
	}
	return "", &KindError{Value: s}
}

// ParseKindFold is ParseKind after upper-casing the input.
func ParseKindFold(s string) (Kind, error) {
	return ParseKind(strings.ToUpper(strings.TrimSpace(s)))
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Label returns the human readable name, e.g. "Income".
func (k Kind) Label() string {
	switch k {
	case KindIncome:
		return "Income"
	case KindExpense:
		return "Expense"
	}
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}

// Transaction is a single income or expense record. It is passed by value
// and never modified after construction.
type Transaction struct {
	Kind        Kind
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// NewTransaction builds a Transaction with the date truncated to a calendar day.
func NewTransaction(kind Kind, category string, amount decimal.Decimal, date time.Time, description string) Transaction {
	return Transaction{
		Kind:        kind,
		Category:    category,
		Amount:      amount,
		Date:        CalendarDate(date),
		Description: description,
	}
}

// IsIncome reports whether the transaction is income.
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// Equal compares all fields, using decimal equality for the amount.
func (t Transaction) Equal(other Transaction) bool {
	return t.Kind == other.Kind &&
		t.Category == other.Category &&
		t.Amount.Equal(other.Amount) &&
		t.Date.Equal(other.Date) &&
		t.Description == other.Description
}

// CalendarDate drops the time of day and location, keeping the wall-clock date.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
