// Package cmd implements the clinbook command-line interface.
//
// Running clinbook with no subcommand launches the interactive terminal
// client; subcommands expose the same operations for scripting.
package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/clinbook/clinbook/internal/nav"
	"github.com/clinbook/clinbook/internal/tui"
)

var (
	flagAPIURL   string
	flagHome     string
	flagFormat   string
	flagLogLevel string
	flagNoColor  bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "clinbook",
	Short: "Terminal client for the ClinBook clinic platform",
	Long: `clinbook is a terminal client for the ClinBook appointment platform.

Browse clinics and register an account without signing in; sign in to book
consultations and manage your profile. Administrator accounts additionally
manage registered users and clinic records.

Run without arguments for the interactive client, or use subcommands for
scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		selector := nav.NewSelector(nil)
		model := tui.New(app.client, app.store, app.resolver, app.invalidator, selector, app.logger)

		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err = program.Run()
		return err
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "platform API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagHome, "home", "", "config and session directory (default ~/.clinbook)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "text", "output format: text, json, or yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "shorthand for --log-level debug")
}
