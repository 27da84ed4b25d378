package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iho/expenseledger/internal/domain"
)

const descriptionWidth = 30

func printTransactions(w io.Writer, transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		fmt.Fprintln(w, "No transactions found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, t := range transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.Date.Format(domain.DateLayout),
			t.Kind,
			t.Category,
			t.Amount.StringFixed(2),
			truncate(t.Description, descriptionWidth),
		)
	}
	return tw.Flush()
}

func printSummary(w io.Writer, s *domain.MonthlySummary) error {
	fmt.Fprintf(w, "Monthly summary: %s %d\n\n", s.Month, s.Year)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total income:\t%s\n", s.TotalIncome.StringFixed(2))
	fmt.Fprintf(tw, "Total expense:\t%s\n", s.TotalExpense.StringFixed(2))
	fmt.Fprintf(tw, "Balance:\t%s\n", s.Balance.StringFixed(2))

	sections := []struct {
		title string
		rows  []domain.CategoryAmount
	}{
		{title: "Income breakdown", rows: s.IncomeBreakdown()},
		{title: "Expense breakdown", rows: s.ExpenseBreakdown()},
	}
	for _, section := range sections {
		fmt.Fprintf(tw, "\n%s\n", section.title)
		for _, row := range section.rows {
			fmt.Fprintf(tw, "  %s:\t%s\n", row.Category, row.Amount.StringFixed(2))
		}
	}

	return tw.Flush()
}

func printCategories(w io.Writer, kinds []domain.Kind) {
	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s categories:\n", kind.Label())
		for n, c := range domain.Categories(kind) {
			fmt.Fprintf(w, "  %d. %s\n", n+1, c)
		}
	}
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
