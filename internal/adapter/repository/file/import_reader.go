package file

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/iho/expenseledger/internal/adapter/codec"
	"github.com/iho/expenseledger/internal/domain"
	"github.com/iho/expenseledger/internal/usecase"
)

// ImportReader implements usecase.ImportReader for delimited text files.
type ImportReader struct{}

// NewImportReader creates a new ImportReader.
func NewImportReader() *ImportReader {
	return &ImportReader{}
}

// ReadImport decodes every line after the header. Decode failures are
// returned per row; only a missing or unreadable file fails the call.
func (r *ImportReader) ReadImport(ctx context.Context, path string) ([]usecase.ImportRow, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrReadFailure, err)
	}
	defer f.Close()

	var rows []usecase.ImportRow
	err = scanLines(ctx, f, func(lineNo int, line string) error {
		tx, err := codec.Decode(line, codec.ModeImport)
		rows = append(rows, usecase.ImportRow{
			Line:        lineNo,
			Raw:         line,
			Transaction: tx,
			Err:         err,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}
