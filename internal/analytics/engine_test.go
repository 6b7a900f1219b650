package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipon-dev/ipon/internal/model"
)

type mockLedger struct {
	txs []model.Transaction
}

func (m *mockLedger) ByType(t model.TransactionType) []model.Transaction {
	var out []model.Transaction
	for _, tx := range m.txs {
		if tx.Type == t {
			out = append(out, tx)
		}
	}
	return out
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(typ model.TransactionType, date, category, amount string) model.Transaction {
	return model.Transaction{Type: typ, Date: date, Category: category, Amount: dec(amount)}
}

func TestTotals(t *testing.T) {
	eng := NewEngine(&mockLedger{txs: []model.Transaction{
		tx(model.TypeIncome, "2024-01-01", "Paycheck", "1000"),
		tx(model.TypeIncome, "2024-01-15", "Interest", "50"),
		tx(model.TypeIncome, "2024-02-01", "Paycheck", "9999"),
		tx(model.TypeExpenses, "2024-01-05", "Food", "300"),
		tx(model.TypeExpenses, "2024-01-20", "Home", "200"),
	}})

	assert.True(t, eng.TotalIncome("2024-01").Equal(dec("1050")))
	assert.True(t, eng.TotalExpenses("2024-01").Equal(dec("500")))
	assert.True(t, eng.NetSavings("2024-01").Equal(dec("550")))
	assert.True(t, eng.TotalIncome("2024-03").IsZero())
}

func TestSavingsRate(t *testing.T) {
	eng := NewEngine(&mockLedger{txs: []model.Transaction{
		tx(model.TypeIncome, "2024-01-01", "Paycheck", "1000"),
		tx(model.TypeExpenses, "2024-01-05", "Food", "1000"),
		tx(model.TypeExpenses, "2024-02-05", "Food", "400"),
		tx(model.TypeIncome, "2024-03-01", "Paycheck", "1000"),
		tx(model.TypeExpenses, "2024-03-02", "Food", "250"),
		tx(model.TypeIncome, "2024-04-01", "Paycheck", "100"),
		tx(model.TypeExpenses, "2024-04-02", "Food", "250"),
	}})

	assert.True(t, eng.SavingsRate("2024-01").IsZero(), "income equals expenses")
	assert.True(t, eng.SavingsRate("2024-02").IsZero(), "no income yields zero even with expenses")
	assert.True(t, eng.SavingsRate("2024-03").Equal(dec("75")))
	assert.True(t, eng.SavingsRate("2024-04").Equal(dec("-150")), "rate may be negative")
}

func TestSpendingByCategory(t *testing.T) {
	eng := NewEngine(&mockLedger{txs: []model.Transaction{
		tx(model.TypeExpenses, "2024-01-05", "Food", "100"),
		tx(model.TypeExpenses, "2024-01-06", "Food", "200"),
		tx(model.TypeExpenses, "2024-01-07", "Transportation", "150"),
		tx(model.TypeExpenses, "2024-02-01", "Food", "777"),
		tx(model.TypeIncome, "2024-01-08", "Paycheck", "5000"),
	}})

	spending := eng.SpendingByCategory("2024-01")
	require.Len(t, spending, 2)
	assert.True(t, spending["Food"].Equal(dec("300")))
	assert.True(t, spending["Transportation"].Equal(dec("150")))
}

func TestTopCategories(t *testing.T) {
	eng := NewEngine(&mockLedger{txs: []model.Transaction{
		tx(model.TypeExpenses, "2024-01-01", "Food", "300"),
		tx(model.TypeExpenses, "2024-01-02", "Transportation", "150"),
		tx(model.TypeExpenses, "2024-01-03", "Gifts", "450"),
	}})

	top := eng.TopCategories("2024-01", 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Gifts", top[0].Category)
	assert.True(t, top[0].Amount.Equal(dec("450")))
	assert.Equal(t, "Food", top[1].Category)
	assert.True(t, top[1].Amount.Equal(dec("300")))
}

func TestTopCategories_TiesKeepLedgerOrder(t *testing.T) {
	eng := NewEngine(&mockLedger{txs: []model.Transaction{
		tx(model.TypeExpenses, "2024-01-01", "Leisure", "100"),
		tx(model.TypeExpenses, "2024-01-02", "Health", "100"),
		tx(model.TypeExpenses, "2024-01-03", "Workout", "100"),
	}})

	top := eng.TopCategories("2024-01", 3)
	require.Len(t, top, 3)
	assert.Equal(t, "Leisure", top[0].Category)
	assert.Equal(t, "Health", top[1].Category)
	assert.Equal(t, "Workout", top[2].Category)
}

func TestTopCategories_Bounds(t *testing.T) {
	eng := NewEngine(&mockLedger{txs: []model.Transaction{
		tx(model.TypeExpenses, "2024-01-01", "Food", "300"),
	}})

	assert.Empty(t, eng.TopCategories("2024-01", 0))
	assert.Empty(t, eng.TopCategories("2024-01", -3))
	assert.Len(t, eng.TopCategories("2024-01", 10), 1, "n larger than dataset truncates to the dataset")
}

func TestTrend(t *testing.T) {
	eng := NewEngine(&mockLedger{txs: []model.Transaction{
		tx(model.TypeIncome, "2024-01-01", "Paycheck", "1000"),
		tx(model.TypeExpenses, "2024-01-05", "Food", "400"),
		tx(model.TypeIncome, "2024-02-01", "Paycheck", "1100"),
	}})

	trend := eng.Trend([]string{"2024-02", "2024-01", "2024-02"})
	require.Len(t, trend, 3, "order and duplicates are preserved")

	assert.Equal(t, "2024-02", trend[0].Month)
	assert.True(t, trend[0].Income.Equal(dec("1100")))
	assert.True(t, trend[0].Expenses.IsZero())

	assert.Equal(t, "2024-01", trend[1].Month)
	assert.True(t, trend[1].Income.Equal(dec("1000")))
	assert.True(t, trend[1].Expenses.Equal(dec("400")))

	assert.Equal(t, trend[0], trend[2])
}
