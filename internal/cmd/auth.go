package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/clinbook/clinbook/internal/api"
	"github.com/clinbook/clinbook/internal/auth"
	"github.com/clinbook/clinbook/internal/errors"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the signed-in session",
}

// authLoginCmd signs in and persists the session
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the platform",
	Long: `Sign in to the ClinBook platform and persist the session.

Examples:
  clinbook auth login --email user@example.com --password mypass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		resp, err := app.client.Login(cmd.Context(), email, password)
		if err != nil {
			return errors.NewLoginFailedError(api.UserMessage(err))
		}

		fmt.Println("Signed in.")
		if resp.User.Name != "" {
			fmt.Printf("Name:  %s\n", resp.User.Name)
		}
		fmt.Printf("Email: %s\n", email)
		if resp.User.Role != "" {
			fmt.Printf("Role:  %s\n", resp.User.Role)
		}
		return nil
	},
}

// authLogoutCmd tears the persisted session down
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		session, err := app.store.Load(cmd.Context())
		if err != nil {
			return err
		}
		if session.Empty() {
			fmt.Println("Not signed in.")
			return nil
		}

		app.invalidator.Invalidate(cmd.Context(), auth.ReasonLogout)
		fmt.Println("You have been signed out.")
		return nil
	},
}

// authStatusCmd shows the persisted session
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		session, err := app.store.Load(cmd.Context())
		if err != nil {
			return err
		}
		if session.Empty() {
			fmt.Println("Not signed in.")
			fmt.Println("Use 'clinbook auth login' to authenticate.")
			return nil
		}

		fmt.Println("Signed in")
		fmt.Printf("Role:   %s\n", session.Role)
		if session.Profile != nil {
			fmt.Printf("Name:   %s\n", session.Profile.Name)
			fmt.Printf("Email:  %s\n", session.Profile.Email)
		}

		// Expiry shown for convenience only; the platform remains the
		// authority on whether the token is still accepted.
		if info, err := auth.InspectToken(session.Token); err == nil && !info.ExpiresAt.IsZero() {
			fmt.Printf("Expiry: %s", info.ExpiresAt.Format(time.RFC3339))
			if info.Expired(time.Now()) {
				fmt.Print("  (expired)")
			}
			fmt.Println()
		}
		return nil
	},
}

// authRegisterCmd creates an account and signs in
var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `Create a ClinBook account. On success you are signed in
automatically.

Examples:
  clinbook auth register --name "Ana Souza" --email ana@example.com --password mypass
  clinbook auth register --name "Ana Souza" --email ana@example.com --password mypass --cpf 000.000.000-00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		cpf, _ := cmd.Flags().GetString("cpf")
		phone, _ := cmd.Flags().GetString("phone")
		birthDate, _ := cmd.Flags().GetString("birth-date")

		if name == "" {
			return fmt.Errorf("--name is required")
		}
		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		resp, err := app.client.Register(cmd.Context(), api.NewUser{
			Name:      name,
			Email:     email,
			Password:  password,
			CPF:       cpf,
			Phone:     phone,
			BirthDate: birthDate,
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Println("Account created. You are now signed in.")
		fmt.Printf("Email: %s\n", email)
		if resp.User.Role != "" {
			fmt.Printf("Role:  %s\n", resp.User.Role)
		}
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authRegisterCmd.Flags().String("name", "", "full name")
	authRegisterCmd.Flags().String("email", "", "account email")
	authRegisterCmd.Flags().String("password", "", "account password")
	authRegisterCmd.Flags().String("cpf", "", "CPF document number")
	authRegisterCmd.Flags().String("phone", "", "contact phone")
	authRegisterCmd.Flags().String("birth-date", "", "birth date (YYYY-MM-DD)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authRegisterCmd)
	rootCmd.AddCommand(authCmd)
}
