package probe

import (
	"context"
	"fmt"

	"github.com/volkovasystems/celene/cli"
	"github.com/volkovasystems/celene/environment"
)

// StatusURL is the status endpoint of the selenium server.
const StatusURL = "http://localhost:4444/wd/hub/status"

// StatusCommand fails with a non-zero exit status if the server is unreachable.
const StatusCommand = "curl --output /dev/null --silent --fail " + StatusURL

// Reachability is the state of the server as seen by a probe.
type Reachability int

const (
	Unreachable Reachability = iota
	Reachable
)

func (r Reachability) String() string {
	switch r {
	case Reachable:
		return "reachable"
	case Unreachable:
		return "unreachable"
	}
	return fmt.Sprintf("Reachability(%d)", int(r))
}

// Runner is the subset of environment.CommandRunner that Prober requires.
type Runner interface {
	Run(ctx context.Context, cmd environment.Command) (environment.Result, error)
	RunAsync(ctx context.Context, cmd environment.Command, done func(environment.Result, error))
}

var _ Runner = (environment.CommandRunner)(nil)

// Prober checks the reachability of the selenium server.
type Prober struct {
	runner  Runner
	command environment.Command
}

// New creates a new Prober backed by runner.
// The probe output is suppressed.
func New(runner Runner) Prober {
	return Prober{
		runner:  runner,
		command: environment.MustParseCommand(StatusCommand).WithQuiet(true),
	}
}

// Verbose returns a copy of the prober that shows the probe output if verbose is true.
func (p Prober) Verbose(verbose bool) Prober {
	p.command = p.command.WithQuiet(!verbose)
	return p
}

// Command returns the status command.
func (p Prober) Command() environment.Command { return p.command }

// Probe runs the status command.
// A zero exit status means the server is reachable.
// In dry run mode, the server is always unreachable.
// An error is only returned if the status command could not be run.
func (p Prober) Probe(ctx context.Context) (Reachability, error) {
	return reachability(p.runner.Run(ctx, p.command))
}

// ProbeAsync is like Probe but does not block.
// done is called exactly once with the outcome.
func (p Prober) ProbeAsync(ctx context.Context, done func(Reachability, error)) {
	p.runner.RunAsync(ctx, p.command, func(res environment.Result, err error) {
		done(reachability(res, err))
	})
}

func reachability(res environment.Result, err error) (Reachability, error) {
	if err != nil {
		return Unreachable, fmt.Errorf("error probing selenium server status: %w", err)
	}
	if cli.IsDryRun() {
		return Unreachable, nil
	}
	if res.Success() {
		return Reachable, nil
	}
	return Unreachable, nil
}
