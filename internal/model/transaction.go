package model

import "github.com/shopspring/decimal"

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome   TransactionType = "Income"
	TypeExpenses TransactionType = "Expenses"
)

// Transaction is one row in transactions.txt. Transactions carry no
// identity and are immutable once appended; file order is the only order.
type Transaction struct {
	Type     TransactionType
	Date     string // free-form, expected "YYYY-MM-DD"
	Category string
	Amount   decimal.Decimal
	Comment  string
}

// Month returns the "YYYY-MM" bucket for the transaction, the first 7
// characters of Date. Dates shorter than 7 characters bucket to "" and
// never match a real month.
func (t Transaction) Month() string {
	return MonthKey(t.Date)
}

// MonthKey extracts the "YYYY-MM" prefix from a date string.
func MonthKey(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}
