// Package export renders transactions and monthly summaries for output.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iho/expenseledger/internal/adapter/repository/file"
	"github.com/iho/expenseledger/internal/domain"
)

// Supported formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encoder writes a list of transactions.
type Encoder interface {
	Encode(w io.Writer, transactions []domain.Transaction) error
}

// Row is the structured form of a transaction.
type Row struct {
	Type        string `json:"type"        yaml:"type"`
	Category    string `json:"category"    yaml:"category"`
	Amount      string `json:"amount"      yaml:"amount"`
	Date        string `json:"date"        yaml:"date"`
	Description string `json:"description" yaml:"description"`
}

// NewEncoder returns the encoder for a format name.
func NewEncoder(format string) (Encoder, error) {
	switch strings.ToLower(format) {
	case FormatCSV:
		return CSVEncoder{}, nil
	case FormatJSON:
		return JSONEncoder{}, nil
	case FormatYAML, "yml":
		return YAMLEncoder{}, nil
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

// ToRows converts transactions to rows with amounts fixed to two places.
func ToRows(transactions []domain.Transaction) []Row {
	rows := make([]Row, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, Row{
			Type:        t.Kind.String(),
			Category:    t.Category,
			Amount:      t.Amount.StringFixed(2),
			Date:        t.Date.Format(domain.DateLayout),
			Description: t.Description,
		})
	}
	return rows
}

// CSVEncoder writes the store format, header included.
type CSVEncoder struct{}

func (CSVEncoder) Encode(w io.Writer, transactions []domain.Transaction) error {
	return file.WriteTransactions(w, transactions)
}

// JSONEncoder writes an indented JSON array.
type JSONEncoder struct{}

func (JSONEncoder) Encode(w io.Writer, transactions []domain.Transaction) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToRows(transactions))
}

// YAMLEncoder writes a YAML sequence.
type YAMLEncoder struct{}

func (YAMLEncoder) Encode(w io.Writer, transactions []domain.Transaction) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToRows(transactions)); err != nil {
		return err
	}
	return enc.Close()
}
