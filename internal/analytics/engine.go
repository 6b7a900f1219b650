// Package analytics derives monthly figures from the ledger. Every
// call recomputes from the store; nothing here is cached or persisted.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ipon-dev/ipon/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Ledger is the read surface the engine needs.
type Ledger interface {
	ByType(t model.TransactionType) []model.Transaction
}

// Engine computes analytics over a ledger.
type Engine struct {
	ledger Ledger
}

// NewEngine creates an Engine over a ledger.
func NewEngine(ledger Ledger) *Engine {
	return &Engine{ledger: ledger}
}

// CategorySpend is one category's summed expense amount.
type CategorySpend struct {
	Category string
	Amount   decimal.Decimal
}

// MonthlySummary pairs a month with its income and expense totals.
type MonthlySummary struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// TotalIncome sums income amounts for a month.
func (e *Engine) TotalIncome(month string) decimal.Decimal {
	return e.totalByType(model.TypeIncome, month)
}

// TotalExpenses sums expense amounts for a month.
func (e *Engine) TotalExpenses(month string) decimal.Decimal {
	return e.totalByType(model.TypeExpenses, month)
}

// NetSavings is income minus expenses for a month.
func (e *Engine) NetSavings(month string) decimal.Decimal {
	return e.TotalIncome(month).Sub(e.TotalExpenses(month))
}

// SavingsRate is net savings as a percentage of income. Zero income
// yields zero; otherwise the rate may be negative or exceed 100.
func (e *Engine) SavingsRate(month string) decimal.Decimal {
	income := e.TotalIncome(month)
	if income.IsZero() {
		return decimal.Zero
	}
	return e.NetSavings(month).Div(income).Mul(hundred)
}

// SpendingByCategory maps each expense category to its summed amount
// for a month.
func (e *Engine) SpendingByCategory(month string) map[string]decimal.Decimal {
	spending := make(map[string]decimal.Decimal)
	for _, c := range e.spendingOrdered(month) {
		spending[c.Category] = c.Amount
	}
	return spending
}

// TopCategories returns the n largest expense categories for a month,
// sorted by amount descending. Ties keep first-encountered ledger
// order. n <= 0 yields an empty result.
func (e *Engine) TopCategories(month string, n int) []CategorySpend {
	if n <= 0 {
		return nil
	}

	ranked := e.spendingOrdered(month)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Trend returns income and expense totals for each requested month, in
// the caller's order. Duplicate months repeat in the result.
func (e *Engine) Trend(months []string) []MonthlySummary {
	trend := make([]MonthlySummary, 0, len(months))
	for _, m := range months {
		trend = append(trend, MonthlySummary{
			Month:    m,
			Income:   e.TotalIncome(m),
			Expenses: e.TotalExpenses(m),
		})
	}
	return trend
}

func (e *Engine) totalByType(t model.TransactionType, month string) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range e.ledger.ByType(t) {
		if tx.Month() == month {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// spendingOrdered aggregates expenses per category, preserving the
// order categories first appear in the ledger.
func (e *Engine) spendingOrdered(month string) []CategorySpend {
	idx := make(map[string]int)
	var ranked []CategorySpend

	for _, tx := range e.ledger.ByType(model.TypeExpenses) {
		if tx.Month() != month {
			continue
		}
		i, ok := idx[tx.Category]
		if !ok {
			idx[tx.Category] = len(ranked)
			ranked = append(ranked, CategorySpend{Category: tx.Category, Amount: tx.Amount})
			continue
		}
		ranked[i].Amount = ranked[i].Amount.Add(tx.Amount)
	}
	return ranked
}
