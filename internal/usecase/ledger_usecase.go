package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/expenseledger/internal/domain"
)

// LedgerConfig configures a LedgerUseCase.
type LedgerConfig struct {
	Store          TransactionStore
	Metrics        MetricsRecorder
	Logger         *zerolog.Logger
	Clock          Clock
	RejectNegative bool // refuse negative amounts on entry and import
}

// LedgerUseCase owns the in-memory list of transactions and keeps the store
// in step with it. Every Append rewrites the whole store.
type LedgerUseCase struct {
	store          TransactionStore
	metrics        MetricsRecorder
	logger         *zerolog.Logger
	clock          Clock
	rejectNegative bool

	transactions []domain.Transaction
}

// NewLedgerUseCase creates an empty LedgerUseCase.
func NewLedgerUseCase(cfg LedgerConfig) *LedgerUseCase {
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}
	if cfg.Logger == nil {
		nop := zerolog.Nop()
		cfg.Logger = &nop
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &LedgerUseCase{
		store:          cfg.Store,
		metrics:        cfg.Metrics,
		logger:         cfg.Logger,
		clock:          cfg.Clock,
		rejectNegative: cfg.RejectNegative,
	}
}

// AddTransactionInput represents input for recording a transaction by hand.
type AddTransactionInput struct {
	Kind        domain.Kind
	Category    string // name or 1-based position in the kind's list
	Amount      string
	Date        string // YYYY-MM-DD; empty or invalid means today
	Description string
}

// AddTransaction validates user input, appends the transaction and saves.
func (uc *LedgerUseCase) AddTransaction(ctx context.Context, input AddTransactionInput) (*domain.Transaction, error) {
	if !input.Kind.Valid() {
		return nil, &domain.KindError{Value: string(input.Kind)}
	}

	category, err := domain.ResolveCategory(input.Kind, input.Category)
	if err != nil {
		return nil, err
	}

	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(amount, uc.rejectNegative); err != nil {
		return nil, err
	}

	tx := domain.NewTransaction(input.Kind, category, amount, uc.entryDate(input.Date), input.Description)
	if err := uc.Append(ctx, tx); err != nil {
		return &tx, err
	}

	return &tx, nil
}

// Append adds a transaction and rewrites the store. If the save fails the
// transaction is kept in memory and the error is returned.
func (uc *LedgerUseCase) Append(ctx context.Context, tx domain.Transaction) error {
	uc.transactions = append(uc.transactions, tx)
	uc.metrics.TransactionAdded(tx.Kind)

	uc.logger.Debug().
		Str("type", tx.Kind.String()).
		Str("category", tx.Category).
		Str("amount", tx.Amount.String()).
		Msg("transaction added")

	return uc.Save(ctx)
}

// Load reads the store and appends its transactions in file order.
func (uc *LedgerUseCase) Load(ctx context.Context) (int, error) {
	loaded, err := uc.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	uc.transactions = append(uc.transactions, loaded...)
	uc.metrics.TransactionsLoaded(len(loaded))
	uc.logger.Info().Int("count", len(loaded)).Msg("transactions loaded")

	return len(loaded), nil
}

// Save writes every transaction to the store, replacing its contents.
func (uc *LedgerUseCase) Save(ctx context.Context) error {
	start := uc.clock()
	err := uc.store.Save(ctx, uc.transactions)
	uc.metrics.StoreSaved(uc.clock().Sub(start), err)

	if err != nil {
		uc.logger.Error().Err(err).Msg("failed to save transactions")
		return err
	}

	uc.logger.Debug().Int("count", len(uc.transactions)).Msg("transactions saved")
	return nil
}

// All returns a copy of the transactions in insertion order.
func (uc *LedgerUseCase) All() []domain.Transaction {
	out := make([]domain.Transaction, len(uc.transactions))
	copy(out, uc.transactions)
	return out
}

// Len returns the number of transactions held.
func (uc *LedgerUseCase) Len() int {
	return len(uc.transactions)
}

// appendBatch adds transactions without saving.
func (uc *LedgerUseCase) appendBatch(txs []domain.Transaction) {
	for _, tx := range txs {
		uc.transactions = append(uc.transactions, tx)
		uc.metrics.TransactionAdded(tx.Kind)
	}
}

func (uc *LedgerUseCase) entryDate(input string) time.Time {
	today := domain.CalendarDate(uc.clock())

	input = strings.TrimSpace(input)
	if input == "" {
		return today
	}

	date, err := domain.ParseDate(input)
	if err != nil {
		uc.logger.Warn().
			Str("date", input).
			Msgf("invalid date format, using today's date (%s)", today.Format(domain.DateLayout))
		return today
	}

	return date
}
