package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary holds income and expense totals for one calendar month.
type MonthlySummary struct {
	Year              int
	Month             time.Month
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	Balance           decimal.Decimal
	IncomeByCategory  map[string]decimal.Decimal
	ExpenseByCategory map[string]decimal.Decimal
}

// CategoryAmount is one line of a category breakdown.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// Summarize totals the transactions dated within the given month, first and
// last day included. Both breakdown maps start with every fixed category at
// zero; categories outside the fixed lists are added as they are seen.
func Summarize(transactions []Transaction, year int, month time.Month) MonthlySummary {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	s := MonthlySummary{
		Year:              year,
		Month:             month,
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		IncomeByCategory:  seedCategories(KindIncome),
		ExpenseByCategory: seedCategories(KindExpense),
	}

	for _, t := range transactions {
		date := CalendarDate(t.Date)
		if date.Before(first) || date.After(last) {
			continue
		}

		switch {
		case t.IsIncome():
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
			s.IncomeByCategory[t.Category] = s.IncomeByCategory[t.Category].Add(t.Amount)
		case t.IsExpense():
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
			s.ExpenseByCategory[t.Category] = s.ExpenseByCategory[t.Category].Add(t.Amount)
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// IncomeBreakdown lists income categories with a non-zero total.
func (s MonthlySummary) IncomeBreakdown() []CategoryAmount {
	return breakdown(KindIncome, s.IncomeByCategory)
}

// ExpenseBreakdown lists expense categories with a non-zero total.
func (s MonthlySummary) ExpenseBreakdown() []CategoryAmount {
	return breakdown(KindExpense, s.ExpenseByCategory)
}

func seedCategories(kind Kind) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal)
	for _, c := range Categories(kind) {
		m[c] = decimal.Zero
	}
	return m
}

// breakdown keeps the fixed list order and appends unknown categories sorted by name.
func breakdown(kind Kind, totals map[string]decimal.Decimal) []CategoryAmount {
	var out []CategoryAmount
	for _, c := range Categories(kind) {
		if amount, ok := totals[c]; ok && !amount.IsZero() {
			out = append(out, CategoryAmount{Category: c, Amount: amount})
		}
	}

	var extra []string
	for c, amount := range totals {
		if !IsKnownCategory(kind, c) && !amount.IsZero() {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	for _, c := range extra {
		out = append(out, CategoryAmount{Category: c, Amount: totals[c]})
	}

	return out
}
