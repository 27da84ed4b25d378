package usecase

import (
	"context"
	"time"

	"github.com/iho/expenseledger/internal/domain"
)

// TransactionStore persists the complete ledger.
type TransactionStore interface {
	// Load returns every stored transaction in file order. A missing store
	// yields an empty slice.
	Load(ctx context.Context) ([]domain.Transaction, error)
	// Save replaces the stored contents with transactions.
	Save(ctx context.Context, transactions []domain.Transaction) error
}

// ImportRow is one decoded line of an import file.
type ImportRow struct {
	Line        int
	Raw         string
	Transaction domain.Transaction
	Err         error
}

// ImportReader decodes an external file, reporting each line separately.
type ImportReader interface {
	ReadImport(ctx context.Context, path string) ([]ImportRow, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// MetricsRecorder receives ledger activity counters.
type MetricsRecorder interface {
	TransactionAdded(kind domain.Kind)
	TransactionsLoaded(n int)
	ImportFinished(imported, skipped int)
	StoreSaved(duration time.Duration, err error)
}

// Clock returns the current time.
type Clock func() time.Time

type nopMetrics struct{}

func (nopMetrics) TransactionAdded(domain.Kind) {}
func (nopMetrics) TransactionsLoaded(int) {}
func (nopMetrics) ImportFinished(int, int) {}
func (nopMetrics) StoreSaved(time.Duration, error) {}
