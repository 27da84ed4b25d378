package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iho/expenseledger/internal/adapter/codec"
	"github.com/iho/expenseledger/internal/domain"
)

const filePerm = 0o644

// Store implements usecase.TransactionStore on a single delimited text file.
type Store struct {
	path string
}

// NewStore creates a Store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load decodes every line after the header. A missing file is an empty
// ledger; the first line that fails to decode aborts the load.
func (s *Store) Load(ctx context.Context) ([]domain.Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrReadFailure, err)
	}
	defer f.Close()

	var transactions []domain.Transaction
	err = scanLines(ctx, f, func(lineNo int, line string) error {
		tx, err := codec.Decode(line, codec.ModeStore)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", s.path, lineNo, err)
		}
		transactions = append(transactions, tx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Save writes the header and one line per transaction to a temporary file in
// the same directory and renames it over the store.
func (s *Store) Save(ctx context.Context, transactions []domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWriteFailure, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", domain.ErrWriteFailure, err)
	}

	if err := writeTransactions(tmp, transactions); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", domain.ErrWriteFailure, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWriteFailure, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWriteFailure, err)
	}

	return nil
}

// WriteTransactions writes the header followed by the encoded transactions.
func WriteTransactions(w io.Writer, transactions []domain.Transaction) error {
	return writeTransactions(w, transactions)
}

func writeTransactions(w io.Writer, transactions []domain.Transaction) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(codec.Header + "\n"); err != nil {
		return err
	}
	for _, tx := range transactions {
		if _, err := bw.WriteString(codec.Encode(tx) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// scanLines calls fn for every non-blank line after the header. Line numbers
// are 1-based and count the header. Lines have no length limit.
func scanLines(ctx context.Context, r io.Reader, fn func(lineNo int, line string) error) error {
	br := bufio.NewReader(r)

	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("%w: %w", domain.ErrReadFailure, readErr)
		}
		if readErr == io.EOF && line == "" {
			return nil
		}

		if lineNo > 1 {
			if err := ctx.Err(); err != nil {
				return err
			}

			line = strings.TrimRight(line, "\r\n")
			if strings.TrimSpace(line) != "" {
				if err := fn(lineNo, line); err != nil {
					return err
				}
			}
		}

		if readErr == io.EOF {
			return nil
		}
	}
}
