package celene

import (
	"context"

	"github.com/volkovasystems/celene/cli"
	"github.com/volkovasystems/celene/config"
	"github.com/volkovasystems/celene/ensure"
	"github.com/volkovasystems/celene/environment"
	"github.com/volkovasystems/celene/environment/host"
	"github.com/volkovasystems/celene/probe"
)

// App ensures the selenium server is running.
type App interface {
	// Ensure starts the server if it is not reachable.
	// If synchronous, the returned result is already resolved and never carries an error.
	Ensure(ctx context.Context, synchronous bool) *ensure.Pending
	// Status probes the server once.
	Status(ctx context.Context) (probe.Reachability, error)
	// Dependencies are the programs that must be installed on the host.
	Dependencies() []string
}

var _ App = (*celeneApp)(nil)

// New creates a new app running commands on the host.
func New(conf config.Config) App {
	return NewWithRunner(host.New(), conf)
}

// NewWithRunner creates a new app running commands with runner.
// The probe output is also shown in verbose mode.
func NewWithRunner(runner environment.CommandRunner, conf config.Config) App {
	probeOutput := conf.ProbeOutput || cli.Settings.Verbose
	return &celeneApp{
		controller: ensure.New(runner).
			WithStartOutput(conf.StartOutput).
			WithProbeOutput(probeOutput),
		prober: probe.New(runner).Verbose(probeOutput),
	}
}

type celeneApp struct {
	controller ensure.Controller
	prober     probe.Prober
}

func (c celeneApp) Ensure(ctx context.Context, synchronous bool) *ensure.Pending {
	return c.controller.Run(ctx, synchronous)
}

func (c celeneApp) Dependencies() []string { return c.controller.Dependencies() }

func (c celeneApp) Status(ctx context.Context) (probe.Reachability, error) {
	return c.prober.Probe(ctx)
}

// Ensure ensures the selenium server is running with the default configuration.
func Ensure(ctx context.Context, synchronous bool) *ensure.Pending {
	return New(config.Default()).Ensure(ctx, synchronous)
}
