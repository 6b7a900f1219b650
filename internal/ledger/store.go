// Package ledger is the durable transaction log plus the starting
// balance. The log is append-only: transactions have no identity and no
// edit or delete path. Reads treat a missing or unreadable file as an
// empty dataset; write failures are reported to the diagnostic channel
// and swallowed, so mutators return normally either way.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ipon-dev/ipon/internal/diag"
	"github.com/ipon-dev/ipon/internal/model"
)

const (
	transactionsFile = "transactions.txt"
	balanceFile      = "balance.txt"
)

// Store persists transactions and the starting balance under dir.
//
// The on-disk format has no concurrent-writer protection; the mutex
// serializes mutators within one process, which the original format
// never guaranteed.
type Store struct {
	dir  string
	diag *diag.Logger
	mu   sync.Mutex
}

// NewStore creates a Store rooted at dir. log may be nil.
func NewStore(dir string, log *diag.Logger) *Store {
	return &Store{dir: dir, diag: log.WithComponent("ledger")}
}

// Append adds a transaction to the end of the log. No validation is
// performed; callers vet their input first. A failed write is reported
// to the diagnostic channel and otherwise swallowed.
func (s *Store) Append(t model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(transactionsFile)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		s.diag.WriteFailed("append transaction", path, err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, EncodeTransaction(t)); err != nil {
		s.diag.WriteFailed("append transaction", path, err)
	}
}

// All returns every transaction in append order.
func (s *Store) All() []model.Transaction {
	f, err := os.Open(s.path(transactionsFile))
	if err != nil {
		return nil
	}
	defer f.Close()

	return ReadTransactions(f)
}

// ByType filters All by exact type match.
func (s *Store) ByType(t model.TransactionType) []model.Transaction {
	var filtered []model.Transaction
	for _, tx := range s.All() {
		if tx.Type == t {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// StartingBalance returns the stored starting balance, or ok=false if
// none has been set or the stored value does not parse.
func (s *Store) StartingBalance() (decimal.Decimal, bool) {
	data, err := os.ReadFile(s.path(balanceFile))
	if err != nil {
		return decimal.Zero, false
	}

	line := strings.TrimSpace(string(data))
	if line == "" {
		return decimal.Zero, false
	}

	v, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// SetStartingBalance overwrites the single-scalar balance record.
func (s *Store) SetStartingBalance(v decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(balanceFile)
	if err := os.WriteFile(path, []byte(v.String()+"\n"), 0o644); err != nil {
		s.diag.WriteFailed("set starting balance", path, err)
	}
}

// CurrentBalance is the starting balance (zero if unset) plus all
// income minus all expenses. It is derived on every call, never cached.
func (s *Store) CurrentBalance() decimal.Decimal {
	current, _ := s.StartingBalance()
	for _, t := range s.All() {
		if t.Type == model.TypeIncome {
			current = current.Add(t.Amount)
		} else {
			current = current.Sub(t.Amount)
		}
	}
	return current
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
