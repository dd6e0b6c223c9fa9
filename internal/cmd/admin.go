package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golasco/golasco/internal/ux"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative actions",
	Long: `Administrative actions. Requires a signed-in admin account.

Subcommands:
  verify-user  Approve a pending agent or franchise owner account

Examples:
  golasco admin verify-user USER_ID`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var adminVerifyUserCmd = &cobra.Command{
	Use:   "verify-user USER_ID",
	Short: "Approve a pending account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newApp()
		identity, err := app.Client.VerifyPendingUser(cmd.Context(), args[0])
		if err != nil {
			return ux.EnhanceError(err)
		}

		fmt.Printf("Approved %s <%s> as %s\n", identity.FullName, identity.Email, identity.Role)
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminVerifyUserCmd)
	rootCmd.AddCommand(adminCmd)
}
