package root

import (
	"log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/volkovasystems/celene/cli"
	"github.com/volkovasystems/celene/config"
)

var versionInfo = config.AppVersion()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     config.AppName(),
	Short:   "ensure the selenium server is running",
	Long:    `Celene ensures the selenium server is running, starting it when it is not reachable.`,
	Version: versionInfo.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if rootCmdArgs.Config != "" {
			config.SetFile(rootCmdArgs.Config)
		}
		if rootCmdArgs.DryRun {
			cli.DryRun(true)
		}
		cli.Stdout(cmd.OutOrStdout())
		cli.Stderr(cmd.ErrOrStderr())
		if err := initLog(); err != nil {
			return err
		}

		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return nil
	},
}

// Cmd returns the root command.
func Cmd() *cobra.Command {
	return rootCmd
}

// rootCmdArgs holds all flags configured in root Cmd
var rootCmdArgs struct {
	Config      string
	Verbose     bool
	VeryVerbose bool
	DryRun      bool
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootCmdArgs.Verbose, "verbose", "v", rootCmdArgs.Verbose, "enable verbose log")
	rootCmd.PersistentFlags().BoolVar(&rootCmdArgs.VeryVerbose, "very-verbose", rootCmdArgs.VeryVerbose, "enable more verbose log")
	rootCmd.PersistentFlags().StringVar(&rootCmdArgs.Config, "config", "", "config file (default \""+config.File()+"\")")
	rootCmd.PersistentFlags().BoolVar(&rootCmdArgs.DryRun, "dry-run", rootCmdArgs.DryRun, "print commands instead of running them")

	// decide if this should be public
	_ = rootCmd.PersistentFlags().MarkHidden("dry-run")
}

func initLog() error {
	if rootCmdArgs.Verbose {
		cli.Settings.Verbose = true
		logrus.SetLevel(logrus.DebugLevel)
	}
	if rootCmdArgs.VeryVerbose {
		cli.Settings.Verbose = true
		logrus.SetLevel(logrus.TraceLevel)
	}

	// general log output
	log.SetOutput(logrus.StandardLogger().Writer())
	log.SetFlags(0)

	return nil
}
