package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBalanceCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the starting and current balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if start, ok := e.ledger.StartingBalance(); ok {
				fmt.Fprintf(out, "Starting balance: %s %s\n", e.currency(), start)
			} else {
				fmt.Fprintln(out, "Starting balance: not set")
			}
			fmt.Fprintf(out, "Current balance:  %s %s\n", e.currency(), e.ledger.CurrentBalance())
			return nil
		},
	}

	cmd.AddCommand(newBalanceSetCommand(dataDir))
	return cmd
}

func newBalanceSetCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the starting balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			e.ledger.SetStartingBalance(v)
			e.autoCommit("ledger: set starting balance")

			fmt.Fprintf(cmd.OutOrStdout(), "Starting balance set to %s %s\n", e.currency(), v)
			return nil
		},
	}
}
