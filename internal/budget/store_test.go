package budget

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipon-dev/ipon/internal/model"
)

// mockLedger implements TransactionSource without touching disk.
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

func goal(category, month, amount string) model.BudgetGoal {
	return model.BudgetGoal{Category: category, Month: month, Goal: dec(amount)}
}

func expense(date, category, amount string) model.Transaction {
	return model.Transaction{Type: model.TypeExpenses, Date: date, Category: category, Amount: dec(amount)}
}

func TestSaveGoal_Upsert(t *testing.T) {
	store := NewStore(t.TempDir(), &mockLedger{}, nil)

	store.SaveGoal(goal("Food", "2024-01", "500"))
	store.SaveGoal(goal("Food", "2024-01", "700"))
	store.SaveGoal(goal("Food", "2024-02", "300"))

	all := store.All()
	require.Len(t, all, 2, "same (category, month) replaces, different month does not")

	v, ok := store.Goal("Food", "2024-01")
	require.True(t, ok)
	assert.True(t, v.Equal(dec("700")))
}

func TestSaveGoals_Batch(t *testing.T) {
	store := NewStore(t.TempDir(), &mockLedger{}, nil)

	store.SaveGoal(goal("Food", "2024-01", "500"))
	store.SaveGoal(goal("Home", "2024-01", "900"))

	store.SaveGoals([]model.BudgetGoal{
		goal("Food", "2024-01", "650"),
		goal("Transportation", "2024-01", "200"),
	})

	all := store.All()
	require.Len(t, all, 3)

	byCat := store.GoalsForMonth("2024-01")
	assert.True(t, byCat["Food"].Equal(dec("650")))
	assert.True(t, byCat["Home"].Equal(dec("900")))
	assert.True(t, byCat["Transportation"].Equal(dec("200")))
}

func TestSaveGoals_Empty(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, &mockLedger{}, nil)

	store.SaveGoals(nil)

	_, err := os.Stat(filepath.Join(dir, "budgets.txt"))
	assert.True(t, os.IsNotExist(err), "empty batch is a no-op")
}

func TestAll_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	raw := "Food|2024-01|500\nnot a goal\nHome|2024-01|oops\nHome|2024-02|250\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "budgets.txt"), []byte(raw), 0o644))

	store := NewStore(dir, &mockLedger{}, nil)
	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Food", all[0].Category)
	assert.Equal(t, "2024-02", all[1].Month)
}

func TestGoalsForMonth_DuplicateLastWins(t *testing.T) {
	// Upserts never produce duplicates, but a hand-edited file can.
	dir := t.TempDir()
	raw := "Food|2024-01|500\nFood|2024-01|750\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "budgets.txt"), []byte(raw), 0o644))

	store := NewStore(dir, &mockLedger{}, nil)

	goals := store.GoalsForMonth("2024-01")
	require.Len(t, goals, 1)
	assert.True(t, goals["Food"].Equal(dec("750")), "the later record wins")

	v, ok := store.Goal("Food", "2024-01")
	require.True(t, ok)
	assert.True(t, v.Equal(dec("500")), "single-goal lookup takes the first match")
}

func TestSaveGoal_WriteFailureIsSwallowed(t *testing.T) {
	// A directory squatting on budgets.txt makes the rename fail.
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "budgets.txt"), 0o755))

	store := NewStore(dir, &mockLedger{}, nil)
	store.SaveGoal(goal("Food", "2024-01", "500"))

	assert.Empty(t, store.All())
	_, ok := store.Goal("Food", "2024-01")
	assert.False(t, ok)
}

func TestGoal_Absent(t *testing.T) {
	store := NewStore(t.TempDir(), &mockLedger{}, nil)
	_, ok := store.Goal("Food", "2024-01")
	assert.False(t, ok)
}

func TestSpent(t *testing.T) {
	led := &mockLedger{txs: []model.Transaction{
		expense("2024-01-05", "Food", "100"),
		expense("2024-01-20", "Food", "50.25"),
		expense("2024-02-01", "Food", "999"),
		expense("2024-01-10", "Home", "75"),
		{Type: model.TypeIncome, Date: "2024-01-15", Category: "Food", Amount: dec("30")},
	}}
	store := NewStore(t.TempDir(), led, nil)

	assert.True(t, store.Spent("Food", "2024-01").Equal(dec("150.25")))
	assert.True(t, store.Spent("Food", "2024-03").IsZero())
}

func TestSpent_ShortDateNeverMatches(t *testing.T) {
	led := &mockLedger{txs: []model.Transaction{
		expense("2024", "Food", "100"), // buckets to "", not any real month
	}}
	store := NewStore(t.TempDir(), led, nil)

	assert.True(t, store.Spent("Food", "2024-01").IsZero())
}

func TestRelevantCategories(t *testing.T) {
	led := &mockLedger{txs: []model.Transaction{
		expense("2024-01-05", "Food", "100"),
		expense("2024-01-06", "Leisure", "20"),
		expense("2024-02-01", "Workout", "30"),
	}}
	store := NewStore(t.TempDir(), led, nil)
	store.SaveGoal(goal("Food", "2024-01", "500"))
	store.SaveGoal(goal("Home", "2024-01", "900"))
	store.SaveGoal(goal("Gifts", "2024-02", "50"))

	got := store.RelevantCategories("2024-01")
	assert.ElementsMatch(t, []string{"Food", "Home", "Leisure"}, got)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		goal  string
		spent string
		want  model.BudgetStatus
	}{
		{"zero goal", "0", "50", model.StatusUnderBudget},
		{"well under", "100", "79.99", model.StatusUnderBudget},
		{"at 80 percent", "100", "80", model.StatusNearingLimit},
		{"between tiers", "100", "99.99", model.StatusNearingLimit},
		{"at 100 percent", "100", "100", model.StatusOverspent},
		{"over", "100", "150", model.StatusOverspent},
		{"nothing spent", "100", "0", model.StatusUnderBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(dec(tt.goal), dec(tt.spent)))
		})
	}
}
