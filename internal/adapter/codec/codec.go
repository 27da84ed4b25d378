// Package codec converts transactions to and from single comma-separated lines.
//
// Commas inside the description are stored as the sentinel ";;". Decoding
// rejoins any fields past the fourth with plain commas before restoring the
// sentinel, so a description that was written with a raw comma and one that
// was escaped cannot be told apart.
package codec

import (
	"fmt"
	"strings"

	"github.com/iho/expenseledger/internal/domain"
)

const (
	// Header is the first line of every store and import file.
	Header = "TYPE,CATEGORY,AMOUNT,DATE,DESCRIPTION"

	// Sentinel replaces literal commas in descriptions.
	Sentinel = ";;"

	separator = ","
	minFields = 4
)

// Mode selects how strictly the type field is read.
type Mode int

const (
	// ModeStore expects the type exactly as Encode writes it.
	ModeStore Mode = iota
	// ModeImport upper-cases the type before checking it.
	ModeImport
)

// Encode renders a transaction as one line without a trailing newline.
func Encode(t domain.Transaction) string {
	return strings.Join([]string{
		t.Kind.String(),
		t.Category,
		t.Amount.String(),
		t.Date.Format(domain.DateLayout),
		EscapeDescription(t.Description),
	}, separator)
}

// Decode parses one line produced by Encode or found in an import file.
func Decode(line string, mode Mode) (domain.Transaction, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, separator)
	if len(fields) < minFields {
		return domain.Transaction{}, fmt.Errorf("%w: expected at least %d fields, got %d", domain.ErrMalformedRow, minFields, len(fields))
	}

	kind, err := decodeKind(fields[0], mode)
	if err != nil {
		return domain.Transaction{}, err
	}

	amount, err := domain.ParseAmount(fields[2])
	if err != nil {
		return domain.Transaction{}, err
	}

	date, err := domain.ParseDate(strings.TrimSpace(fields[3]))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD", domain.ErrBadDate, fields[3])
	}

	var description string
	if len(fields) > minFields {
		description = UnescapeDescription(strings.Join(fields[minFields:], separator))
	}

	return domain.NewTransaction(kind, fields[1], amount, date, description), nil
}

// EscapeDescription replaces every comma with the sentinel.
func EscapeDescription(s string) string {
	return strings.ReplaceAll(s, separator, Sentinel)
}

// UnescapeDescription replaces every sentinel with a comma.
func UnescapeDescription(s string) string {
	return strings.ReplaceAll(s, Sentinel, separator)
}

func decodeKind(field string, mode Mode) (domain.Kind, error) {
	if mode == ModeImport {
		return domain.ParseKindFold(field)
	}
	return domain.ParseKind(field)
}
