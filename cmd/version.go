package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/volkovasystems/celene/cmd/root"
	"github.com/volkovasystems/celene/config"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version of Celene",
	Long:  `Print the version of Celene`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version := config.AppVersion()
		fmt.Fprintln(cmd.OutOrStdout(), config.AppName(), "version", version.Version)
		fmt.Fprintln(cmd.OutOrStdout(), "git commit:", version.Revision)
	},
}

func init() {
	root.Cmd().AddCommand(versionCmd)
}
