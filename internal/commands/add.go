package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ipon-dev/ipon/internal/model"
)

func newAddCommand(dataDir *string) *cobra.Command {
	var (
		typeFlag string
		date     string
		cat      string
		amount   string
		comment  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The stores trust their callers; all vetting happens here.
			txType, err := parseType(typeFlag)
			if err != nil {
				return err
			}
			if err := parseDate(date); err != nil {
				return err
			}
			if err := parseCategory(cat); err != nil {
				return err
			}
			v, err := parseAmount(amount)
			if err != nil {
				return err
			}
			if err := parseComment(comment); err != nil {
				return err
			}

			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			e.ledger.Append(model.Transaction{
				Type:     txType,
				Date:     date,
				Category: cat,
				Amount:   v,
				Comment:  comment,
			})
			e.autoCommit(fmt.Sprintf("ledger: add %s %s %s", strings.ToLower(string(txType)), cat, v))

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s of %s %s under %s on %s\n",
				strings.ToLower(string(txType)), e.currency(), v, cat, date)
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", string(model.TypeExpenses), "transaction type (Income or Expenses)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&cat, "category", "", "transaction category (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "transaction amount (required)")
	cmd.Flags().StringVar(&comment, "comment", "", "free-text comment")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
