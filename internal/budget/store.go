// Package budget persists monthly spending goals and derives their
// status from the ledger. Goals are unique per (category, month):
// writes are upserts that rewrite the whole store.
package budget

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ipon-dev/ipon/internal/diag"
	"github.com/ipon-dev/ipon/internal/model"
)

const budgetsFile = "budgets.txt"

var (
	hundred = decimal.NewFromInt(100)
	eighty  = decimal.NewFromInt(80)
)

// TransactionSource is the slice of the ledger the budget store needs
// for spend calculations.
type TransactionSource interface {
	ByType(t model.TransactionType) []model.Transaction
}

// Store persists budget goals under dir and reads spending from txs.
//
// Upserts load the whole set, modify it, and rewrite the file through a
// temp-file rename, so a crash mid-write cannot leave a truncated
// store. The mutex serializes mutators within one process.
type Store struct {
	dir  string
	txs  TransactionSource
	diag *diag.Logger
	mu   sync.Mutex
}

// NewStore creates a Store rooted at dir. log may be nil.
func NewStore(dir string, txs TransactionSource, log *diag.Logger) *Store {
	return &Store{dir: dir, txs: txs, diag: log.WithComponent("budget")}
}

// All returns every stored goal, skipping malformed lines.
func (s *Store) All() []model.BudgetGoal {
	f, err := os.Open(s.path())
	if err != nil {
		return nil
	}
	defer f.Close()

	return ReadGoals(f)
}

// SaveGoal upserts one goal: any existing goal for the same
// (category, month) is replaced. A failed rewrite is reported to the
// diagnostic channel and swallowed.
func (s *Store) SaveGoal(g model.BudgetGoal) {
	s.SaveGoals([]model.BudgetGoal{g})
}

// SaveGoals batch-upserts goals with a single rewrite. The final state
// matches calling SaveGoal once per element.
func (s *Store) SaveGoals(goals []model.BudgetGoal) {
	if len(goals) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.All()

	kept := all[:0]
	for _, existing := range all {
		if matchesAny(existing, goals) {
			continue
		}
		kept = append(kept, existing)
	}
	kept = append(kept, goals...)

	s.rewrite(kept)
}

func matchesAny(g model.BudgetGoal, goals []model.BudgetGoal) bool {
	for _, n := range goals {
		if g.Category == n.Category && g.Month == n.Month {
			return true
		}
	}
	return false
}

// GoalsForMonth returns category to goal amount for one month. If
// duplicates exist on disk the last record wins, though upserts keep
// that from happening.
func (s *Store) GoalsForMonth(month string) map[string]decimal.Decimal {
	goals := make(map[string]decimal.Decimal)
	for _, g := range s.All() {
		if g.Month == month {
			goals[g.Category] = g.Goal
		}
	}
	return goals
}

// Goal returns the first goal matching (category, month), or ok=false.
func (s *Store) Goal(category, month string) (decimal.Decimal, bool) {
	for _, g := range s.All() {
		if g.Category == category && g.Month == month {
			return g.Goal, true
		}
	}
	return decimal.Zero, false
}

// Spent sums expense amounts for a category within a month.
func (s *Store) Spent(category, month string) decimal.Decimal {
	spent := decimal.Zero
	for _, t := range s.txs.ByType(model.TypeExpenses) {
		if t.Category == category && t.Month() == month {
			spent = spent.Add(t.Amount)
		}
	}
	return spent
}

// RelevantCategories is the union of categories with a goal for the
// month and expense categories with at least one transaction in it.
func (s *Store) RelevantCategories(month string) []string {
	seen := make(map[string]struct{})
	var names []string

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, g := range s.All() {
		if g.Month == month {
			add(g.Category)
		}
	}
	for _, t := range s.txs.ByType(model.TypeExpenses) {
		if t.Month() == month {
			add(t.Category)
		}
	}
	return names
}

// Classify derives the status tier from a goal and the amount spent
// against it. Boundaries are inclusive toward the higher-severity tier;
// a zero goal is always under budget.
func Classify(goal, spent decimal.Decimal) model.BudgetStatus {
	if goal.IsZero() {
		return model.StatusUnderBudget
	}

	pct := spent.Div(goal).Mul(hundred)
	switch {
	case pct.GreaterThanOrEqual(hundred):
		return model.StatusOverspent
	case pct.GreaterThanOrEqual(eighty):
		return model.StatusNearingLimit
	default:
		return model.StatusUnderBudget
	}
}

// rewrite replaces the store contents atomically (write temp, rename).
func (s *Store) rewrite(goals []model.BudgetGoal) {
	var b strings.Builder
	for _, g := range goals {
		b.WriteString(EncodeGoal(g))
		b.WriteByte('\n')
	}

	path := s.path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		s.diag.WriteFailed("rewrite budgets", tmp, err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		s.diag.WriteFailed("rewrite budgets", path, err)
	}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, budgetsFile)
}
