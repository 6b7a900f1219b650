package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newSettingsCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage user preferences",
	}

	cmd.AddCommand(newSettingsListCommand(dataDir))
	cmd.AddCommand(newSettingsGetCommand(dataDir))
	cmd.AddCommand(newSettingsSetCommand(dataDir))
	cmd.AddCommand(newSettingsResetCommand(dataDir))
	return cmd
}

func newSettingsListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every setting with its effective value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			all := e.settings.All()
			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, all[k])
			}
			return nil
		},
	}
}

func newSettingsGetCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Show one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			v, ok := e.settings.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown setting %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newSettingsSetCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			e.settings.Set(args[0], args[1])
			e.autoCommit("settings: set " + args[0])

			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", args[0], args[1])
			return nil
		},
	}
}

func newSettingsResetCommand(dataDir *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all ledger, budget, and category data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to delete data without --force")
			}

			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			if !e.settings.ResetAllData() {
				return fmt.Errorf("some data files could not be removed")
			}
			e.autoCommit("settings: reset all data")

			fmt.Fprintln(cmd.OutOrStdout(), "All transaction, budget, and category data deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm deletion")
	return cmd
}
