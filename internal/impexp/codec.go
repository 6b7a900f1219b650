// Package impexp serializes the whole dataset to a portable
// comma-delimited text format and reads it back. The file carries an
// optional balance line followed by marked TRANSACTIONS and BUDGETS
// sections, each with a header row.
package impexp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ipon-dev/ipon/internal/model"
)

const (
	balancePrefix      = "BALANCE,"
	transactionsMarker = "TRANSACTIONS"
	budgetsMarker      = "BUDGETS"

	transactionsHeader = "Type,Date,Category,Amount,Comment"
	budgetsHeader      = "Category,Month,Goal"

	transactionFields = 5
	budgetFields      = 3
)

// LedgerStore is the ledger surface the codec reads and writes.
type LedgerStore interface {
	All() []model.Transaction
	Append(t model.Transaction)
	StartingBalance() (decimal.Decimal, bool)
	SetStartingBalance(v decimal.Decimal)
}

// BudgetStore is the budget surface the codec reads and writes.
type BudgetStore interface {
	All() []model.BudgetGoal
	SaveGoal(g model.BudgetGoal)
}

// Codec exports and imports a full dataset in one pass.
type Codec struct {
	ledger  LedgerStore
	budgets BudgetStore
}

// NewCodec creates a Codec over the two stores.
func NewCodec(ledger LedgerStore, budgets BudgetStore) *Codec {
	return &Codec{ledger: ledger, budgets: budgets}
}

// Export writes the dataset to w. The comment field is always quoted;
// quote characters inside a comment are written as-is, which import
// later strips (a known lossy edge of the format).
func (c *Codec) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if balance, ok := c.ledger.StartingBalance(); ok {
		fmt.Fprintf(bw, "%s%s\n", balancePrefix, balance.String())
	}

	fmt.Fprintln(bw, transactionsMarker)
	fmt.Fprintln(bw, transactionsHeader)
	for _, t := range c.ledger.All() {
		fmt.Fprintf(bw, "%s,%s,%s,%s,\"%s\"\n",
			t.Type, t.Date, t.Category, t.Amount.StringFixed(2), t.Comment)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, budgetsMarker)
	fmt.Fprintln(bw, budgetsHeader)
	for _, g := range c.budgets.All() {
		fmt.Fprintf(bw, "%s,%s,%s\n", g.Category, g.Month, g.Goal.StringFixed(2))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// ExportFile exports the dataset to a file, replacing it.
func (c *Codec) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := c.Export(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}

type section int

const (
	sectionNone section = iota
	sectionTransactions
	sectionBudgets
)

// Import streams r into the stores. Rows whose field count does not
// match their section are skipped silently; a row that matches but
// carries an unparseable number aborts the import, as does a source
// that cannot be scanned. Transactions append, budgets upsert.
func (c *Codec) Import(r io.Reader) error {
	sc := bufio.NewScanner(r)
	state := sectionNone

	for sc.Scan() {
		line := sc.Text()
		if isBlank(line) {
			continue
		}

		switch {
		case strings.HasPrefix(line, balancePrefix):
			v, err := decimal.NewFromString(strings.Split(line, ",")[1])
			if err != nil {
				return fmt.Errorf("parsing balance line %q: %w", line, err)
			}
			c.ledger.SetStartingBalance(v)

		case line == transactionsMarker:
			state = sectionTransactions
			sc.Scan() // discard header row

		case line == budgetsMarker:
			state = sectionBudgets
			sc.Scan() // discard header row

		case state == sectionTransactions:
			parts := splitQuoted(line, transactionFields)
			if len(parts) != transactionFields {
				continue
			}
			amount, err := decimal.NewFromString(parts[3])
			if err != nil {
				return fmt.Errorf("parsing transaction amount %q: %w", parts[3], err)
			}
			c.ledger.Append(model.Transaction{
				Type:     model.TransactionType(parts[0]),
				Date:     parts[1],
				Category: parts[2],
				Amount:   amount,
				Comment:  stripQuotes(parts[4]),
			})

		case state == sectionBudgets:
			// Budget rows are never quoted; split naively.
			parts := strings.Split(line, ",")
			if len(parts) != budgetFields {
				continue
			}
			goal, err := decimal.NewFromString(parts[2])
			if err != nil {
				return fmt.Errorf("parsing budget goal %q: %w", parts[2], err)
			}
			c.budgets.SaveGoal(model.BudgetGoal{Category: parts[0], Month: parts[1], Goal: goal})
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("scanning import: %w", err)
	}
	return nil
}

// ImportFile imports the dataset from a file.
func (c *Codec) ImportFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	return c.Import(f)
}

func isBlank(line string) bool {
	for _, r := range line {
		if r != ' ' && r != '\t' && r != '\r' {
			return false
		}
	}
	return true
}
