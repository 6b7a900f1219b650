package budget

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ipon-dev/ipon/internal/model"
)

const (
	numFields = 3
	fieldSep  = "|"
)

// EncodeGoal renders a goal as a pipe-delimited line.
func EncodeGoal(g model.BudgetGoal) string {
	return strings.Join([]string{g.Category, g.Month, g.Goal.String()}, fieldSep)
}

// DecodeGoal parses a pipe-delimited line. Lines that do not split into
// exactly 3 fields, or whose goal is not numeric, are malformed.
func DecodeGoal(line string) (model.BudgetGoal, error) {
	parts := strings.SplitN(line, fieldSep, numFields)
	if len(parts) != numFields {
		return model.BudgetGoal{}, fmt.Errorf("expected %d fields, got %d", numFields, len(parts))
	}

	goal, err := decimal.NewFromString(parts[2])
	if err != nil {
		return model.BudgetGoal{}, fmt.Errorf("parsing goal %q: %w", parts[2], err)
	}

	return model.BudgetGoal{Category: parts[0], Month: parts[1], Goal: goal}, nil
}

// ReadGoals reads the goal store, dropping malformed lines and
// continuing with the rest.
func ReadGoals(r io.Reader) []model.BudgetGoal {
	var goals []model.BudgetGoal
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		g, err := DecodeGoal(sc.Text())
		if err != nil {
			continue
		}
		goals = append(goals, g)
	}
	return goals
}
