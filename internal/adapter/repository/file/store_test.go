package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/expenseledger/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expense_data.csv")
	store := NewStore(path)

	want := []domain.Transaction{
		domain.NewTransaction(domain.KindIncome, "Salary", decimal.RequireFromString("4200.00"), time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), "January, net"),
		domain.NewTransaction(domain.KindExpense, "Crypto", decimal.RequireFromString("13.37"), time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), ""),
	}

	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read store: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if lines[0] != "TYPE,CATEGORY,AMOUNT,DATE,DESCRIPTION" {
		t.Fatalf("expected header first, got %q", lines[0])
	}
	if lines[1] != "INCOME,Salary,4200,2025-01-31,January;; net" {
		t.Fatalf("unexpected encoded line %q", lines[1])
	}

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(got))
	}
	for i := range want {
		if !want[i].Equal(got[i]) {
			t.Fatalf("transaction %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := writeFile(t, "data.csv", "TYPE,CATEGORY,AMOUNT,DATE,DESCRIPTION\nINCOME,Gift,1,2025-01-01,old\nINCOME,Gift,2,2025-01-01,old\n")
	store := NewStore(path)

	if err := store.Save(context.Background(), nil); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "TYPE,CATEGORY,AMOUNT,DATE,DESCRIPTION\n" {
		t.Fatalf("expected only header after saving empty ledger, got %q", data)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.csv"))

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("expected missing store to load empty, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no transactions, got %d", len(got))
	}
}

func TestStore_LoadSkipsHeaderAndBlankLines(t *testing.T) {
	path := writeFile(t, "data.csv", "anything at all\r\nEXPENSE,Food,4.5,2025-03-03,tea;;cake\r\n\r\n   \nINCOME,Other,1,2025-03-04\n")

	got, err := NewStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
	if got[0].Description != "tea,cake" {
		t.Fatalf("expected unescaped description, got %q", got[0].Description)
	}
}

func TestStore_LoadAbortsOnBadLine(t *testing.T) {
	path := writeFile(t, "data.csv", "TYPE,CATEGORY,AMOUNT,DATE,DESCRIPTION\nINCOME,Salary,10,2025-01-01,\nINCOME,Salary,10,2025/01/02,\nINCOME,Salary,10,2025-01-03,\n")

	got, err := NewStore(path).Load(context.Background())
	if !errors.Is(err, domain.ErrBadDate) {
		t.Fatalf("expected ErrBadDate, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line number in error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no transactions on failure, got %d", len(got))
	}
}

func TestStore_SaveToMissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "no", "such", "dir", "data.csv"))

	err := store.Save(context.Background(), nil)
	if !errors.Is(err, domain.ErrWriteFailure) {
		t.Fatalf("expected ErrWriteFailure, got %v", err)
	}
}

func TestStore_RoundTripsVeryLongDescription(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "expense_data.csv"))
	description := strings.Repeat("receipt, itemised ", 128*1024)

	want := []domain.Transaction{
		domain.NewTransaction(domain.KindExpense, "Shopping", decimal.RequireFromString("310.15"), time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC), description),
		domain.NewTransaction(domain.KindIncome, "Gift", decimal.RequireFromString("20"), time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC), "after"),
	}
	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("expected long line to load, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
	if !want[0].Equal(got[0]) || !want[1].Equal(got[1]) {
		t.Fatalf("expected transactions to survive the round trip")
	}
}

func TestStore_LoadLastLineWithoutNewline(t *testing.T) {
	path := writeFile(t, "data.csv", "TYPE,CATEGORY,AMOUNT,DATE,DESCRIPTION\nINCOME,Gift,1,2025-01-01,first\nINCOME,Gift,2,2025-01-02,last")

	got, err := NewStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1].Description != "last" {
		t.Fatalf("expected unterminated last line to load, got %+v", got)
	}
}
