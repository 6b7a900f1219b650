package model

import "github.com/shopspring/decimal"

// BudgetStatus is the spending tier for one goal in one month.
type BudgetStatus string

const (
	StatusUnderBudget  BudgetStatus = "under-budget"
	StatusNearingLimit BudgetStatus = "nearing-limit"
	StatusOverspent    BudgetStatus = "overspent"
)

// BudgetGoal is a monthly spending ceiling for one expense category.
// At most one goal exists per (Category, Month) pair; saving an
// existing pair replaces it.
type BudgetGoal struct {
	Category string
	Month    string // "YYYY-MM"
	Goal     decimal.Decimal
}
