package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newCategoriesCommand(dataDir *string) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List known categories for a transaction type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txType, err := parseType(typeFlag)
			if err != nil {
				return err
			}

			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			names := e.categories.Categories(txType)
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "Expenses", "transaction type (Income or Expenses)")
	cmd.AddCommand(newCategoriesAddCommand(dataDir))
	return cmd
}

func newCategoriesAddCommand(dataDir *string) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Record a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txType, err := parseType(typeFlag)
			if err != nil {
				return err
			}
			name := args[0]
			if err := parseCategory(name); err != nil {
				return err
			}

			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			e.categories.AddCustom(txType, name)
			e.autoCommit("categories: add " + name)

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s category %q\n", strings.ToLower(string(txType)), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "Expenses", "transaction type (Income or Expenses)")
	return cmd
}
