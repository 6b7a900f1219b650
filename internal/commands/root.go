package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ipon-dev/ipon/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:     "ipon",
		Short:   "Personal finance ledger and budget tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".", "data directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand(&dataDir))
	rootCmd.AddCommand(newBalanceCommand(&dataDir))
	rootCmd.AddCommand(newCategoriesCommand(&dataDir))
	rootCmd.AddCommand(newBudgetCommand(&dataDir))
	rootCmd.AddCommand(newReportCommand(&dataDir))
	rootCmd.AddCommand(newSettingsCommand(&dataDir))
	rootCmd.AddCommand(newExportCommand(&dataDir))
	rootCmd.AddCommand(newImportCommand(&dataDir))
	rootCmd.AddCommand(newUserCommand(&dataDir))

	return rootCmd
}
