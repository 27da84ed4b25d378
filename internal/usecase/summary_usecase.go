package usecase

import (
	"context"
	"time"

	"github.com/iho/expenseledger/internal/domain"
)

// TransactionLister exposes the transactions held by a ledger.
type TransactionLister interface {
	All() []domain.Transaction
}

// SummaryUseCase computes monthly summaries.
type SummaryUseCase struct {
	ledger TransactionLister
}

// NewSummaryUseCase creates a new SummaryUseCase.
func NewSummaryUseCase(ledger TransactionLister) *SummaryUseCase {
	return &SummaryUseCase{
		ledger: ledger,
	}
}

// MonthlySummary summarises the ledger for the given month.
func (uc *SummaryUseCase) MonthlySummary(ctx context.Context, year int, month time.Month) (*domain.MonthlySummary, error) {
	if err := domain.ValidatePeriod(year, month); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := domain.Summarize(uc.ledger.All(), year, month)
	return &summary, nil
}
