package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/volkovasystems/celene"
	"github.com/volkovasystems/celene/config"
	"github.com/volkovasystems/celene/config/configmanager"
	"github.com/volkovasystems/celene/util/terminal"
)

// loadConfig loads the config file, reverting to defaults if it cannot be loaded.
func loadConfig() config.Config {
	conf, err := configmanager.Load()
	if err != nil {
		// not fatal, will proceed with defaults
		log.Warnln("error loading config:", err)
		log.Warnln("reverting to default settings")
		return config.Default()
	}
	return conf
}

var newApp = func(conf config.Config) celene.App {
	return celene.New(conf)
}

func newOutput(cmd *cobra.Command) *terminal.Output {
	return terminal.NewOutput(cmd.ErrOrStderr())
}

func rootDryRun(cmd *cobra.Command) bool {
	f := cmd.Flag("dry-run")
	return f != nil && f.Value.String() == "true"
}
