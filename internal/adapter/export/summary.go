package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iho/expenseledger/internal/domain"
)

// SummaryReport is the structured form of a monthly summary. Breakdowns only
// list categories with a non-zero total.
type SummaryReport struct {
	Year             int                `json:"year"              yaml:"year"`
	Month            int                `json:"month"             yaml:"month"`
	TotalIncome      string             `json:"total_income"      yaml:"total_income"`
	TotalExpense     string             `json:"total_expense"     yaml:"total_expense"`
	Balance          string             `json:"balance"           yaml:"balance"`
	IncomeBreakdown  []CategoryTotalRow `json:"income_breakdown"  yaml:"income_breakdown"`
	ExpenseBreakdown []CategoryTotalRow `json:"expense_breakdown" yaml:"expense_breakdown"`
}

// CategoryTotalRow is one category line of a SummaryReport.
type CategoryTotalRow struct {
	Category string `json:"category" yaml:"category"`
	Amount   string `json:"amount"   yaml:"amount"`
}

// NewSummaryReport converts a summary for output.
func NewSummaryReport(s *domain.MonthlySummary) SummaryReport {
	return SummaryReport{
		Year:             s.Year,
		Month:            int(s.Month),
		TotalIncome:      s.TotalIncome.StringFixed(2),
		TotalExpense:     s.TotalExpense.StringFixed(2),
		Balance:          s.Balance.StringFixed(2),
		IncomeBreakdown:  categoryRows(s.IncomeBreakdown()),
		ExpenseBreakdown: categoryRows(s.ExpenseBreakdown()),
	}
}

// WriteSummary writes the report as JSON or YAML.
func WriteSummary(w io.Writer, format string, s *domain.MonthlySummary) error {
	report := NewSummaryReport(s)

	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("unsupported summary format %q", format)
}

func categoryRows(amounts []domain.CategoryAmount) []CategoryTotalRow {
	rows := make([]CategoryTotalRow, 0, len(amounts))
	for _, a := range amounts {
		rows = append(rows, CategoryTotalRow{Category: a.Category, Amount: a.Amount.StringFixed(2)})
	}
	return rows
}
