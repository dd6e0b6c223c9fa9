package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golasco/golasco/internal/auth"
	"github.com/golasco/golasco/internal/ux"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the signed-in session",
	Long: `Manage the signed-in session for the Golasco marketplace.

The session is stored in ~/.golasco/session.json and survives restarts
until you log out or it is replaced by another login.

Subcommands:
  login     Sign in with email and password
  register  Create a new account
  logout    Sign out and remove the stored session
  status    Show who is signed in

Examples:
  golasco auth login --email user@example.com --password mypass
  golasco auth status
  golasco auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	Long: `Sign in to the Golasco marketplace.

A successful login replaces any previously stored session wholesale. A
failed login leaves the prior session untouched.

Examples:
  golasco auth login --email user@example.com --password mypass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		app := newApp()
		identity, err := app.Auth.Login(cmd.Context(), email, password)
		if err != nil {
			return ux.EnhanceError(err)
		}

		fmt.Printf("Signed in as %s (%s)\n", identity.FullName, identity.Role)
		if !identity.Verified && identity.Role != "customer" {
			fmt.Println("Your account is awaiting admin approval; some features stay locked until then.")
		}
		return nil
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a Golasco account and sign in with it.

Customers can use their account immediately. Agent and franchise owner
accounts need admin approval before the partner features unlock.

Examples:
  golasco auth register --name "Priya Sharma" --email priya@example.com --password mypass --role customer
  golasco auth register --name "Ravi Kumar" --email ravi@example.com --password mypass --role franchise_owner`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")
		phone, _ := cmd.Flags().GetString("phone")

		app := newApp()
		identity, err := app.Auth.Register(cmd.Context(), auth.RegisterProfile{
			FullName: name,
			Email:    email,
			Password: password,
			Role:     role,
			Phone:    phone,
		})
		if err != nil {
			return ux.EnhanceError(err)
		}

		fmt.Printf("Welcome, %s! You are signed in as a %s.\n", identity.FullName, identity.Role)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the stored session",
	Long: `Sign out of the Golasco marketplace.

Removes the stored session from ~/.golasco/session.json. Signing out
while already signed out is not an error.

Examples:
  golasco auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newApp()

		sess := app.Auth.Current()
		if !sess.Active() {
			fmt.Println("Not signed in.")
			return nil
		}

		fmt.Printf("Signing out %s\n", sess.Identity.Email)
		app.Auth.Logout()
		fmt.Println("Signed out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who is signed in",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newApp()

		sess := app.Auth.Current()
		if !sess.Active() {
			fmt.Println("Not signed in.")
			fmt.Println()
			fmt.Println("Use 'golasco auth login' to sign in.")
			return nil
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		return f.Format(fmt.Sprintf("%s <%s> · role %s · verified %t",
			sess.Identity.FullName, sess.Identity.Email, sess.Role(), sess.Identity.Verified))
	},
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	authLoginCmd.Flags().String("email", "", "Email address (required)")
	authLoginCmd.Flags().String("password", "", "Password (required)")

	authRegisterCmd.Flags().String("name", "", "Full name (required)")
	authRegisterCmd.Flags().String("email", "", "Email address (required)")
	authRegisterCmd.Flags().String("password", "", "Password, 8+ characters (required)")
	authRegisterCmd.Flags().String("role", "customer", "Account role: customer, agent, franchise_owner")
	authRegisterCmd.Flags().String("phone", "", "Phone number in international format (optional)")

	rootCmd.AddCommand(authCmd)
}
