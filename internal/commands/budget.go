package commands

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ipon-dev/ipon/internal/budget"
	"github.com/ipon-dev/ipon/internal/model"
)

func newBudgetCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly budget goals",
	}

	cmd.AddCommand(newBudgetSetCommand(dataDir))
	cmd.AddCommand(newBudgetListCommand(dataDir))
	cmd.AddCommand(newBudgetStatusCommand(dataDir))
	return cmd
}

func newBudgetSetCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <month> <goal>",
		Short: "Set or replace a budget goal for a category and month",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, month, goalArg := args[0], args[1], args[2]
			if strings.TrimSpace(cat) == "" {
				return fmt.Errorf("category must not be empty")
			}
			if err := parseMonth(month); err != nil {
				return err
			}
			goal, err := decimal.NewFromString(goalArg)
			if err != nil {
				return fmt.Errorf("invalid goal %q: %w", goalArg, err)
			}
			if goal.IsNegative() {
				return fmt.Errorf("goal must not be negative, got %s", goal)
			}

			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			e.budgets.SaveGoal(model.BudgetGoal{Category: cat, Month: month, Goal: goal})
			e.autoCommit(fmt.Sprintf("budget: set %s %s", cat, month))

			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s in %s set to %s %s\n", cat, month, e.currency(), goal)
			return nil
		},
	}
}

func newBudgetListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every stored budget goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tMONTH\tGOAL")
			for _, g := range e.budgets.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", g.Category, g.Month, g.Goal.StringFixed(2))
			}
			return w.Flush()
		},
	}
}

func newBudgetStatusCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status <month>",
		Short: "Show goal, spend, and status per category for a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := args[0]
			if err := parseMonth(month); err != nil {
				return err
			}

			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			cats := e.budgets.RelevantCategories(month)
			sort.Strings(cats)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tGOAL\tSPENT\tSTATUS")
			for _, cat := range cats {
				spent := e.budgets.Spent(cat, month)

				goal, ok := e.budgets.Goal(cat, month)
				if !ok {
					fmt.Fprintf(w, "%s\t-\t%s\tno goal\n", cat, spent.StringFixed(2))
					continue
				}

				status := budget.Classify(goal, spent)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat, goal.StringFixed(2), spent.StringFixed(2), status)
			}
			return w.Flush()
		},
	}
}
