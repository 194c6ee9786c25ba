package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/volkovasystems/celene/cmd/root"
	"github.com/volkovasystems/celene/ensure"
	"github.com/volkovasystems/celene/probe"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "show the status of the selenium server",
	Long: `Show the status of the selenium server.
The server is probed once at ` + probe.StatusURL + `; nothing is started.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newApp(loadConfig()).Status(cmd.Context())
		if err != nil {
			return err
		}

		out := newOutput(cmd)
		if r != probe.Reachable {
			out.Error(fmt.Sprintf("selenium server is %s", r))
			return ensure.ErrNotRunning
		}
		out.Done(fmt.Sprintf("selenium server is %s", r))
		return nil
	},
}

func init() {
	root.Cmd().AddCommand(statusCmd)
}
