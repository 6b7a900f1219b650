package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ipon-dev/ipon/internal/auth"
	"github.com/ipon-dev/ipon/internal/budget"
	"github.com/ipon-dev/ipon/internal/category"
	"github.com/ipon-dev/ipon/internal/config"
	"github.com/ipon-dev/ipon/internal/diag"
	"github.com/ipon-dev/ipon/internal/gitops"
	"github.com/ipon-dev/ipon/internal/impexp"
	"github.com/ipon-dev/ipon/internal/ledger"
	"github.com/ipon-dev/ipon/internal/model"
	"github.com/ipon-dev/ipon/internal/settings"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// env wires the stores together over one data directory for the
// lifetime of a command.
type env struct {
	dir        string
	cfg        *config.Config
	log        *diag.Logger
	ledger     *ledger.Store
	categories *category.Registry
	budgets    *budget.Store
	settings   *settings.Store
	users      *auth.Store
}

// openEnv resolves the data directory and opens every store over it. A
// missing ipon.yaml falls back to defaults so read-only commands work
// in any directory.
func openEnv(dir string) (*env, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default("", "")
	}

	log := diag.New(os.Stderr, diag.ParseLevel(cfg.Log.Level))
	led := ledger.NewStore(absDir, log)

	return &env{
		dir:        absDir,
		cfg:        cfg,
		log:        log,
		ledger:     led,
		categories: category.NewRegistry(absDir, log),
		budgets:    budget.NewStore(absDir, led, log),
		settings:   settings.NewStore(absDir, log),
		users:      auth.NewStore(absDir, log),
	}, nil
}

func (e *env) codec() *impexp.Codec {
	return impexp.NewCodec(e.ledger, e.budgets)
}

// autoCommit snapshots the data directory after a mutation when git
// versioning is enabled. Failures are diagnostic, not fatal: the store
// write already happened.
func (e *env) autoCommit(message string) {
	if !e.cfg.Git.AutoCommit || !gitops.IsRepo(e.dir) {
		return
	}
	if _, err := gitops.CommitAll(e.dir, message, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail); err != nil {
		e.log.Error("auto-commit failed", "err", err)
	}
}

// currency returns the configured currency label for display.
func (e *env) currency() string {
	c, _ := e.settings.Get(settings.KeyCurrency)
	return c
}

// parseType validates a transaction type argument.
func parseType(s string) (model.TransactionType, error) {
	switch model.TransactionType(s) {
	case model.TypeIncome, model.TypeExpenses:
		return model.TransactionType(s), nil
	}
	return "", fmt.Errorf("invalid type %q: must be %q or %q", s, model.TypeIncome, model.TypeExpenses)
}

// parseDate validates a YYYY-MM-DD date argument.
func parseDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return nil
}

// parseMonth validates a YYYY-MM month argument.
func parseMonth(s string) error {
	if !monthRe.MatchString(s) {
		return fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return nil
}

// parseCategory validates a category argument. Categories land in the
// middle of a pipe-delimited single-line record, so neither pipes nor
// line breaks are allowed.
func parseCategory(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("category must not be empty")
	}
	if strings.ContainsAny(s, "|\n\r") {
		return fmt.Errorf("category must not contain %q or line breaks", "|")
	}
	return nil
}

// parseComment validates a comment argument. The comment is the last
// field of the record, so pipes are fine, but a line break would split
// the record and orphan the tail on reload.
func parseComment(s string) error {
	if strings.ContainsAny(s, "\n\r") {
		return fmt.Errorf("comment must not contain line breaks")
	}
	return nil
}

// parseAmount validates a positive decimal amount argument.
func parseAmount(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !v.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero, got %s", v)
	}
	return v, nil
}
