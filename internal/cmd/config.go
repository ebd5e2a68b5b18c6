package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinbook/clinbook/internal/config"
)

// configView renders the effective configuration for text output
type configView config.Config

func (v configView) RenderText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "API URL:      %s\n", v.APIBaseURL)
	fmt.Fprintf(&b, "HTTP timeout: %s\n", v.HTTPTimeout)
	fmt.Fprintf(&b, "Home:         %s\n", v.Home)
	fmt.Fprintf(&b, "Log level:    %s\n", v.LogLevel)
	fmt.Fprintf(&b, "Log format:   %s\n", v.LogFormat)
	fmt.Fprintf(&b, "No color:     %t\n", v.NoColor)
	return b.String()
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize configuration",
}

// configShowCmd prints the effective configuration after defaults, file,
// environment, and flags are applied
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		formatter, err := app.formatter()
		if err != nil {
			return err
		}
		return formatter.Format(configView(app.cfg))
	},
}

// configInitCmd writes a config file with the current effective values
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		if err := app.cfg.Write(); err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", filepath.Join(app.cfg.Home, "config.yaml"))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
