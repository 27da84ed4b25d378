package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iho/expenseledger/internal/adapter/repository/file"
	"github.com/iho/expenseledger/internal/domain"
	"github.com/iho/expenseledger/internal/usecase"
)

const importFixture = `type,category,amount,date,description
income,Salary,2500,2025-08-01,August pay
EXPENSE,Food,18.40,2025-08-02,groceries;; fruit
EXPENSE,Food,eighteen,2025-08-03,typo
Expense,Rent,950,2025-08-04,
INCOME,Crypto,12,2025-08-05,airdrop, unexpected
`

func writeImport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write import file: %v", err)
	}
	return path
}

func TestImportReader_ReadImport(t *testing.T) {
	rows, err := file.NewImportReader().ReadImport(context.Background(), writeImport(t, importFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if !errors.Is(rows[2].Err, domain.ErrBadAmount) || rows[2].Line != 4 {
		t.Fatalf("expected file line 4 to fail with ErrBadAmount, got %+v", rows[2])
	}
	if rows[0].Transaction.Kind != domain.KindIncome {
		t.Fatalf("expected lower case kind to be accepted, got %v", rows[0].Transaction.Kind)
	}
	if rows[4].Transaction.Description != "airdrop, unexpected" {
		t.Fatalf("expected rejoined description, got %q", rows[4].Transaction.Description)
	}
}

func TestImportReader_FileNotFound(t *testing.T) {
	_, err := file.NewImportReader().ReadImport(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestImportFile_PartialFailure(t *testing.T) {
	ctx := context.Background()
	store := file.NewStore(filepath.Join(t.TempDir(), "expense_data.csv"))

	ledger := usecase.NewLedgerUseCase(usecase.LedgerConfig{Store: store})
	if _, err := ledger.Load(ctx); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	importer := usecase.NewImportUseCase(ledger, file.NewImportReader(), file.NewULIDGenerator())
	result, err := importer.ImportFile(ctx, writeImport(t, importFixture))
	if err != nil {
		t.Fatalf("unexpected import error: %v", err)
	}

	if result.ImportedCount != 4 {
		t.Fatalf("expected 4 imported, got %d", result.ImportedCount)
	}
	if ledger.Len() != 4 {
		t.Fatalf("expected ledger to gain 4 transactions, got %d", ledger.Len())
	}
	if len(result.BatchID) != 26 {
		t.Fatalf("expected a ULID batch id, got %q", result.BatchID)
	}

	persisted, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}
	if len(persisted) != 4 {
		t.Fatalf("expected import to be saved, got %d persisted", len(persisted))
	}
}

func TestImportFile_LongRowDoesNotAbortBatch(t *testing.T) {
	ctx := context.Background()
	content := "TYPE,CATEGORY,AMOUNT,DATE,DESCRIPTION\n" +
		"INCOME,Salary,100,2025-09-01,ok\n" +
		"EXPENSE,Travel,40,2025-09-02," + strings.Repeat("x", 2*1024*1024) + "\n" +
		"INCOME,Gift,5,2025-09-03,ok\n"

	ledger := usecase.NewLedgerUseCase(usecase.LedgerConfig{
		Store: file.NewStore(filepath.Join(t.TempDir(), "expense_data.csv")),
	})
	importer := usecase.NewImportUseCase(ledger, file.NewImportReader(), file.NewULIDGenerator())

	result, err := importer.ImportFile(ctx, writeImport(t, content))
	if err != nil {
		t.Fatalf("unexpected import error: %v", err)
	}
	if result.ImportedCount != 3 || len(result.Skipped) != 0 {
		t.Fatalf("expected all 3 rows imported, got %d imported, %d skipped", result.ImportedCount, len(result.Skipped))
	}
	if got := len(ledger.All()[1].Description); got != 2*1024*1024 {
		t.Fatalf("expected long description to be kept whole, got %d bytes", got)
	}
}
