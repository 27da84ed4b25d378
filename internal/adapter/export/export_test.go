package export_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/iho/expenseledger/internal/adapter/export"
	"github.com/iho/expenseledger/internal/domain"
)

func fixture() []domain.Transaction {
	return []domain.Transaction{
		domain.NewTransaction(domain.KindIncome, "Salary", decimal.NewFromInt(3100), time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), "September"),
		domain.NewTransaction(domain.KindExpense, "Food", decimal.RequireFromString("7.5"), time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC), "bread, milk"),
	}
}

func TestNewEncoder(t *testing.T) {
	for _, format := range []string{"csv", "JSON", "yaml", "yml"} {
		_, err := export.NewEncoder(format)
		assert.NoError(t, err, format)
	}

	_, err := export.NewEncoder("xml")
	assert.Error(t, err)
}

func TestCSVEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.CSVEncoder{}.Encode(&buf, fixture()))

	assert.Equal(t,
		"TYPE,CATEGORY,AMOUNT,DATE,DESCRIPTION\n"+
			"INCOME,Salary,3100,2025-09-01,September\n"+
			"EXPENSE,Food,7.5,2025-09-02,bread;; milk\n",
		buf.String())
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.JSONEncoder{}.Encode(&buf, fixture()))

	var rows []export.Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "7.50", rows[1].Amount)
	assert.Equal(t, "bread, milk", rows[1].Description)
}

func TestYAMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.YAMLEncoder{}.Encode(&buf, fixture()))

	var rows []export.Row
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "INCOME", rows[0].Type)
	assert.Equal(t, "2025-09-01", rows[0].Date)
}

func TestWriteSummary(t *testing.T) {
	s := domain.Summarize(fixture(), 2025, time.September)

	var buf bytes.Buffer
	require.NoError(t, export.WriteSummary(&buf, "json", &s))

	var report export.SummaryReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 9, report.Month)
	assert.Equal(t, "3092.50", report.Balance)
	assert.Equal(t, []export.CategoryTotalRow{{Category: "Food", Amount: "7.50"}}, report.ExpenseBreakdown)

	assert.Error(t, export.WriteSummary(&buf, "csv", &s))
}
