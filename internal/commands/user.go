package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage ledger credentials",
	}

	cmd.AddCommand(newUserSignupCommand(dataDir))
	cmd.AddCommand(newUserLoginCommand(dataDir))
	return cmd
}

func newUserSignupCommand(dataDir *string) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "signup <username>",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			if !e.users.SignUp(args[0], password) {
				return fmt.Errorf("could not register %q: username taken or blank credentials", args[0])
			}
			e.autoCommit("user: signup " + args[0])

			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUserLoginCommand(dataDir *string) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Verify a user's credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dataDir)
			if err != nil {
				return err
			}

			if !e.users.Login(args[0], password) {
				return fmt.Errorf("invalid username or password")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
