package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the whole dataset to a portable CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			if err := e.codec().ExportFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		},
	}
}

func newImportCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a previously exported dataset",
		Long: "Import a previously exported dataset. Transactions append to the " +
			"ledger and budget goals upsert; rows that do not match the format " +
			"are skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			if err := e.codec().ImportFile(args[0]); err != nil {
				return err
			}
			e.autoCommit("import: " + args[0])

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", args[0])
			return nil
		},
	}
}
