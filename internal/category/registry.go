// Package category tracks the known transaction categories per type:
// a fixed built-in set unioned with an append-only log of custom names.
package category

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ipon-dev/ipon/internal/diag"
	"github.com/ipon-dev/ipon/internal/model"
)

const categoriesFile = "categories.txt"

var builtinExpense = []string{
	"Health", "Leisure", "Home", "Food", "Education", "Gifts",
	"Groceries", "Family", "Workout", "Transportation", "Other",
}

var builtinIncome = []string{
	"Paycheck", "Gift", "Interest", "Other",
}

// Registry maintains category sets over the custom-category log under dir.
type Registry struct {
	dir  string
	diag *diag.Logger
	mu   sync.Mutex
}

// NewRegistry creates a Registry rooted at dir. log may be nil.
func NewRegistry(dir string, log *diag.Logger) *Registry {
	return &Registry{dir: dir, diag: log.WithComponent("category")}
}

// Builtin returns the fixed set for a transaction type. Anything that
// is not Expenses gets the income set, matching how the stores treat
// type strings elsewhere.
func Builtin(t model.TransactionType) []string {
	if t == model.TypeExpenses {
		return builtinExpense
	}
	return builtinIncome
}

// Categories returns the union of the built-in set and every custom
// category recorded for the type. The result is deduplicated; order is
// not meaningful.
func (r *Registry) Categories(t model.TransactionType) []string {
	seen := make(map[string]struct{})
	var names []string

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, name := range Builtin(t) {
		add(name)
	}
	for _, name := range r.custom(t) {
		add(name)
	}
	return names
}

// AddCustom appends a type:name record. Duplicates are not checked; the
// read side deduplicates via set union.
func (r *Registry) AddCustom(t model.TransactionType, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := filepath.Join(r.dir, categoriesFile)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		r.diag.WriteFailed("add custom category", path, err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s:%s\n", t, name); err != nil {
		r.diag.WriteFailed("add custom category", path, err)
	}
}

func (r *Registry) custom(t model.TransactionType) []string {
	f, err := os.Open(filepath.Join(r.dir, categoriesFile))
	if err != nil {
		return nil
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		parts := strings.SplitN(sc.Text(), ":", 2)
		if len(parts) != 2 || parts[0] != string(t) {
			continue
		}
		names = append(names, parts[1])
	}
	return names
}
