package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinbook/clinbook/internal/api"
	"github.com/clinbook/clinbook/internal/errors"
)

// profileDetail renders the caller's record for text output
type profileDetail api.User

func (d profileDetail) RenderText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name:  %s\n", d.Name)
	fmt.Fprintf(&b, "Email: %s\n", d.Email)
	if d.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", d.Phone)
	}
	return b.String()
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your account record",
}

// profileShowCmd fetches the caller's record, refreshing the cached copy
var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your account record",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		user, err := app.client.Profile(cmd.Context())
		if err != nil {
			return err
		}

		formatter, err := app.formatter()
		if err != nil {
			return err
		}
		return formatter.Format(profileDetail(*user))
	},
}

// profileEditCmd updates the caller's own record
var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your account record",
	Long: `Edit your account record. Unset flags keep their current value.

Examples:
  clinbook profile edit --phone "+55 11 99999-0000"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		session, err := app.store.Load(cmd.Context())
		if err != nil {
			return err
		}
		if session.Empty() || session.Profile == nil {
			return errors.NewNotLoggedInError()
		}

		upd := api.ProfileUpdate{
			Name:  session.Profile.Name,
			Email: session.Profile.Email,
			Phone: session.Profile.Phone,
		}
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			upd.Name = name
		}
		if email, _ := cmd.Flags().GetString("email"); email != "" {
			upd.Email = email
		}
		if phone, _ := cmd.Flags().GetString("phone"); phone != "" {
			upd.Phone = phone
		}

		if err := app.client.UpdateProfile(cmd.Context(), session.Profile.ID, upd); err != nil {
			return err
		}

		// Refresh the cached copy so the next status shows the new values.
		if _, err := app.client.Profile(cmd.Context()); err != nil {
			app.logger.Warn("profile refresh after edit failed", "error", err.Error())
		}

		fmt.Println("Profile updated.")
		return nil
	},
}

func init() {
	profileEditCmd.Flags().String("name", "", "full name")
	profileEditCmd.Flags().String("email", "", "account email")
	profileEditCmd.Flags().String("phone", "", "contact phone")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}
