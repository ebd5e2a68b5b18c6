package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinbook/clinbook/internal/api"
	"github.com/clinbook/clinbook/internal/auth"
	"github.com/clinbook/clinbook/internal/errors"
)

// userList renders the admin account listing for text output
type userList []api.User

func (l userList) RenderText() string {
	if len(l) == 0 {
		return "No accounts registered.\n"
	}

	var b strings.Builder
	for _, user := range l {
		fmt.Fprintf(&b, "%-4d %s  <%s>", user.ID, user.Name, user.Email)
		if user.Role != "" {
			fmt.Fprintf(&b, "  [%s]", user.Role)
		}
		b.WriteString("\n")
	}
	return b.String()
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage accounts (administrators only)",
}

// requireAdmin checks the persisted role before an admin call. The
// platform enforces authorization regardless; this only produces a
// clearer message than the 401 would.
func requireAdmin(app *appContext, cmd *cobra.Command, operation string) error {
	session, err := app.store.Load(cmd.Context())
	if err != nil {
		return err
	}
	if session.Empty() {
		return errors.NewNotLoggedInError()
	}
	if session.Role != auth.RoleAdmin {
		return errors.NewAdminRequiredError(operation)
	}
	return nil
}

// usersListCmd lists all accounts
var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := requireAdmin(app, cmd, "list accounts"); err != nil {
			return err
		}

		users, err := app.client.Users(cmd.Context())
		if err != nil {
			return err
		}

		formatter, err := app.formatter()
		if err != nil {
			return err
		}
		return formatter.Format(userList(users))
	},
}

// usersDeleteCmd removes an account
var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid account id %q", args[0])
		}

		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := requireAdmin(app, cmd, "delete an account"); err != nil {
			return err
		}

		if err := app.client.DeleteUser(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Account %d removed.\n", id)
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
