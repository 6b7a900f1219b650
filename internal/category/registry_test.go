package category

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipon-dev/ipon/internal/model"
)

func TestBuiltinSets(t *testing.T) {
	assert.Len(t, Builtin(model.TypeExpenses), 11)
	assert.Len(t, Builtin(model.TypeIncome), 4)
	assert.Contains(t, Builtin(model.TypeExpenses), "Groceries")
	assert.Contains(t, Builtin(model.TypeIncome), "Paycheck")
}

func TestCategories_BuiltinOnly(t *testing.T) {
	reg := NewRegistry(t.TempDir(), nil)

	assert.Len(t, reg.Categories(model.TypeExpenses), 11)
	assert.Len(t, reg.Categories(model.TypeIncome), 4)
}

func TestAddCustom(t *testing.T) {
	reg := NewRegistry(t.TempDir(), nil)

	reg.AddCustom(model.TypeExpenses, "Pets")
	reg.AddCustom(model.TypeIncome, "Freelance")

	expenses := reg.Categories(model.TypeExpenses)
	assert.Len(t, expenses, 12)
	assert.Contains(t, expenses, "Pets")
	assert.NotContains(t, expenses, "Freelance", "custom categories are scoped per type")

	income := reg.Categories(model.TypeIncome)
	assert.Len(t, income, 5)
	assert.Contains(t, income, "Freelance")
}

func TestAddCustom_WriteFailureIsSwallowed(t *testing.T) {
	// A directory squatting on categories.txt makes the append fail.
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "categories.txt"), 0o755))

	reg := NewRegistry(dir, nil)
	reg.AddCustom(model.TypeExpenses, "Pets")

	got := reg.Categories(model.TypeExpenses)
	assert.Len(t, got, 11, "failed append leaves the builtin set alone")
	assert.NotContains(t, got, "Pets")
}

func TestAddCustom_DuplicatesCollapse(t *testing.T) {
	reg := NewRegistry(t.TempDir(), nil)

	reg.AddCustom(model.TypeExpenses, "Pets")
	reg.AddCustom(model.TypeExpenses, "Pets")
	reg.AddCustom(model.TypeExpenses, "Food") // shadows a builtin

	got := reg.Categories(model.TypeExpenses)
	require.Len(t, got, 12, "duplicates and builtin shadows collapse in the union")

	count := 0
	for _, name := range got {
		if name == "Pets" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
