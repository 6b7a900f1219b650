package ledger

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ipon-dev/ipon/internal/model"
)

const (
	numFields = 5
	fieldSep  = "|"

	colType     = 0
	colDate     = 1
	colCategory = 2
	colAmount   = 3
	colComment  = 4
)

// EncodeTransaction renders a transaction as a pipe-delimited line.
// The comment is the last field, so embedded pipes in it round-trip.
func EncodeTransaction(t model.Transaction) string {
	return strings.Join([]string{
		string(t.Type),
		t.Date,
		t.Category,
		t.Amount.String(),
		t.Comment,
	}, fieldSep)
}

// DecodeTransaction parses a pipe-delimited line. Lines that do not
// split into exactly 5 fields, or whose amount is not numeric, are
// malformed.
func DecodeTransaction(line string) (model.Transaction, error) {
	parts := strings.SplitN(line, fieldSep, numFields)
	if len(parts) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(parts))
	}

	amount, err := decimal.NewFromString(parts[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", parts[colAmount], err)
	}

	return model.Transaction{
		Type:     model.TransactionType(parts[colType]),
		Date:     parts[colDate],
		Category: parts[colCategory],
		Amount:   amount,
		Comment:  parts[colComment],
	}, nil
}

// ReadTransactions reads the transaction log, dropping malformed lines
// and continuing with the rest.
func ReadTransactions(r io.Reader) []model.Transaction {
	var txs []model.Transaction
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		t, err := DecodeTransaction(sc.Text())
		if err != nil {
			continue
		}
		txs = append(txs, t)
	}
	return txs
}
