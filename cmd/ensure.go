package cmd

import (
	"fmt"
	"time"

	"github.com/docker/go-units"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/volkovasystems/celene/cmd/root"
	"github.com/volkovasystems/celene/config"
	"github.com/volkovasystems/celene/ensure"
	"github.com/volkovasystems/celene/environment/host"
)

// ensureCmd represents the ensure command
var ensureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "start the selenium server if it is not running",
	Long: `Start the selenium server if it is not running.

The server is probed, started with 'selenium-standalone start' when unreachable,
and probed again to confirm it came up.`,
	Example: "  celene ensure\n" +
		"  celene ensure --async\n" +
		"  celene ensure --quiet",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := applyEnsureFlags(cmd, loadConfig())
		dryRun := rootDryRun(cmd)

		app := newApp(conf)
		if err := host.IsInstalled(app); err != nil && !dryRun {
			// the start sequence reports the fault
			log.Warnln(fmt.Errorf("dependency check failed: %w", err))
		}

		start := time.Now()
		o, err := app.Ensure(cmd.Context(), conf.Synchronous()).Outcome()
		elapsed := units.HumanDuration(time.Since(start))

		out := newOutput(cmd)
		if err != nil {
			out.Error(fmt.Sprintf("selenium server %s after %s", o, elapsed))
			return err
		}
		if dryRun {
			// nothing ran, the server cannot be confirmed
			out.Done(fmt.Sprintf("dry run completed (%s)", elapsed))
			return nil
		}
		if !o.Running() {
			out.Error(fmt.Sprintf("selenium server %s after %s", o, elapsed))
			return ensure.ErrNotRunning
		}
		out.Done(fmt.Sprintf("selenium server %s (%s)", o, elapsed))
		return nil
	},
}

var ensureCmdArgs struct {
	Async bool
	Quiet bool
}

// applyEnsureFlags overrides conf with the flags that were set.
func applyEnsureFlags(cmd *cobra.Command, conf config.Config) config.Config {
	if cmd.Flag("async").Changed {
		conf.Mode = config.ModeSync
		if ensureCmdArgs.Async {
			conf.Mode = config.ModeAsync
		}
	}
	if cmd.Flag("quiet").Changed {
		conf.StartOutput = !ensureCmdArgs.Quiet
	}
	return conf
}

func init() {
	root.Cmd().AddCommand(ensureCmd)
	ensureCmd.Flags().BoolVar(&ensureCmdArgs.Async, "async", false, "run the start sequence as a chain of asynchronous stages")
	ensureCmd.Flags().BoolVarP(&ensureCmdArgs.Quiet, "quiet", "q", false, "suppress the output of the start command")
}
