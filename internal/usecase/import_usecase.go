package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iho/expenseledger/internal/domain"
)

// ImportUseCase loads transactions from external files into a ledger.
type ImportUseCase struct {
	ledger  *LedgerUseCase
	reader  ImportReader
	idGen   IDGenerator
	metrics MetricsRecorder
	logger  *zerolog.Logger
}

// NewImportUseCase creates a new ImportUseCase.
func NewImportUseCase(ledger *LedgerUseCase, reader ImportReader, idGen IDGenerator) *ImportUseCase {
	return &ImportUseCase{
		ledger:  ledger,
		reader:  reader,
		idGen:   idGen,
		metrics: ledger.metrics,
		logger:  ledger.logger,
	}
}

// SkippedLine describes an import line that was not applied.
type SkippedLine struct {
	Line int
	Raw  string
	Err  error
}

// ImportResult summarises one import run.
type ImportResult struct {
	BatchID       string
	ImportedCount int
	Skipped       []SkippedLine
}

// ImportFile reads path, appends every valid row to the ledger and saves once
// at the end. Bad rows are skipped and reported; they never abort the batch.
func (uc *ImportUseCase) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	result := &ImportResult{BatchID: uc.idGen.Generate()}
	logger := uc.logger.With().Str("batch_id", result.BatchID).Str("path", path).Logger()

	rows, err := uc.reader.ReadImport(ctx, path)
	if err != nil {
		logger.Error().Err(err).Msg("import failed")
		return nil, err
	}

	imported := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		err := row.Err
		if err == nil {
			err = domain.ValidateAmount(row.Transaction.Amount, uc.ledger.rejectNegative)
		}

		if err != nil {
			logger.Warn().Err(err).Int("line", row.Line).Str("raw", row.Raw).Msg("skipping line")
			result.Skipped = append(result.Skipped, SkippedLine{Line: row.Line, Raw: row.Raw, Err: err})
			continue
		}

		imported = append(imported, row.Transaction)
	}

	result.ImportedCount = len(imported)
	uc.metrics.ImportFinished(result.ImportedCount, len(result.Skipped))

	if len(imported) == 0 {
		logger.Info().Int("skipped", len(result.Skipped)).Msg("nothing to import")
		return result, nil
	}

	uc.ledger.appendBatch(imported)
	if err := uc.ledger.Save(ctx); err != nil {
		return result, err
	}

	logger.Info().
		Int("imported", result.ImportedCount).
		Int("skipped", len(result.Skipped)).
		Msg("import finished")

	return result, nil
}
