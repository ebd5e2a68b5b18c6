package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinbook/clinbook/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		short, _ := cmd.Flags().GetBool("short")

		info := version.GetInfo()
		if short {
			fmt.Println(info.Short())
			return nil
		}
		fmt.Println(info.String())
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "print only the version number")
	rootCmd.AddCommand(versionCmd)
}
