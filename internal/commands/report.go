package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ipon-dev/ipon/internal/analytics"
)

func newReportCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Derive analytics from the ledger",
	}

	cmd.AddCommand(newReportSummaryCommand(dataDir))
	cmd.AddCommand(newReportTopCommand(dataDir))
	cmd.AddCommand(newReportTrendCommand(dataDir))
	return cmd
}

func newReportSummaryCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <month>",
		Short: "Income, expenses, net savings, and savings rate for a month",
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
			eng := analytics.NewEngine(e.ledger)

			out := cmd.OutOrStdout()
			cur := e.currency()
			fmt.Fprintf(out, "Month:        %s\n", month)
			fmt.Fprintf(out, "Income:       %s %s\n", cur, eng.TotalIncome(month).StringFixed(2))
			fmt.Fprintf(out, "Expenses:     %s %s\n", cur, eng.TotalExpenses(month).StringFixed(2))
			fmt.Fprintf(out, "Net savings:  %s %s\n", cur, eng.NetSavings(month).StringFixed(2))
			fmt.Fprintf(out, "Savings rate: %s%%\n", eng.SavingsRate(month).StringFixed(1))
			return nil
		},
	}
}

func newReportTopCommand(dataDir *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top <month>",
		Short: "Largest expense categories for a month",
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
			eng := analytics.NewEngine(e.ledger)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tSPENT")
			for _, c := range eng.TopCategories(month, limit) {
				fmt.Fprintf(w, "%s\t%s\n", c.Category, c.Amount.StringFixed(2))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "number of categories to show")
	return cmd
}

func newReportTrendCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "trend <month>...",
		Short: "Income and expense totals across months",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, month := range args {
				if err := parseMonth(month); err != nil {
					return err
				}
			}

			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}
			eng := analytics.NewEngine(e.ledger)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES")
			for _, m := range eng.Trend(args) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.Month, m.Income.StringFixed(2), m.Expenses.StringFixed(2))
			}
			return w.Flush()
		},
	}
}
