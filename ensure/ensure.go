package ensure

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/volkovasystems/celene/cli"
	"github.com/volkovasystems/celene/environment"
	"github.com/volkovasystems/celene/probe"
)

// Name is the name used for logging.
const Name = "selenium"

// StartCommand starts the selenium server in standalone mode.
const StartCommand = "selenium-standalone start"

// ErrNotRunning is returned by callers that need an error when the
// server could not be confirmed running without any fault.
var ErrNotRunning = errors.New("selenium server is not running")

// FaultError is a failure to run the command of a step.
type FaultError struct {
	Step Step
	Err  error
}

func (f *FaultError) Error() string {
	return fmt.Sprintf("cannot ensure selenium server: %v", f.Err)
}

func (f *FaultError) Unwrap() error { return f.Err }

// Controller ensures the selenium server is running.
// A Controller holds no state between calls; concurrent calls are not coordinated.
type Controller struct {
	runner environment.CommandRunner
	prober probe.Prober
	start  environment.Command
	sink   Sink
	log    logrus.FieldLogger
}

// New creates a new Controller backed by runner.
// The start command output is shown and faults in blocking mode are logged as warnings.
func New(runner environment.CommandRunner) Controller {
	log := logrus.WithField("context", Name)
	return Controller{
		runner: runner,
		prober: probe.New(runner),
		start:  environment.MustParseCommand(StartCommand),
		sink:   LogSink(log),
		log:    log,
	}
}

// WithSink returns a copy of the controller reporting masked faults to sink.
func (c Controller) WithSink(sink Sink) Controller {
	if sink == nil {
		sink = NopSink
	}
	c.sink = sink
	return c
}

// WithStartOutput returns a copy of the controller that shows the start command output if show is true.
func (c Controller) WithStartOutput(show bool) Controller {
	c.start = c.start.WithQuiet(!show)
	return c
}

// WithProbeOutput returns a copy of the controller that shows the probe output if show is true.
func (c Controller) WithProbeOutput(show bool) Controller {
	c.prober = c.prober.Verbose(show)
	return c
}

// Dependencies returns the programs the controller runs.
func (c Controller) Dependencies() []string {
	return []string{c.prober.Command().Args[0], c.start.Args[0]}
}

// Run is the entry point for both modes.
// If synchronous, it blocks and returns a resolved Pending whose error is always nil.
func (c Controller) Run(ctx context.Context, synchronous bool) *Pending {
	if synchronous {
		return Resolved(c.EnsureOutcome(ctx), nil)
	}
	return c.EnsureAsync(ctx)
}

// Ensure ensures the server is running and blocks until it is confirmed.
// Faults are reported to the sink and returned as false.
func (c Controller) Ensure(ctx context.Context) bool {
	return c.EnsureOutcome(ctx).Running()
}

// EnsureOutcome is like Ensure but returns the Outcome.
func (c Controller) EnsureOutcome(ctx context.Context) Outcome {
	o, _ := c.settle(Blocking)(c.sequence(ctx, Blocking))
	return o
}

// settle applies the fault convention of m to a finished sequence.
func (c Controller) settle(m Mode) func(Outcome, error) (Outcome, error) {
	return func(o Outcome, err error) (Outcome, error) {
		if err == nil {
			return o, nil
		}
		if m.MaskFaults {
			c.sink.Warn(err)
			return FailedToStart, nil
		}
		return FailedToStart, err
	}
}

func (c Controller) sequence(ctx context.Context, m Mode) (Outcome, error) {
	step := StepProbe
	for {
		sig, err := c.perform(ctx, step)
		if err != nil {
			return FailedToStart, &FaultError{Step: step, Err: err}
		}
		d := Decide(step, sig, m)
		c.log.Debugf("%s: %s", step, sig)
		if d.Done {
			return d.Outcome, nil
		}
		step = d.Next
	}
}

func (c Controller) perform(ctx context.Context, step Step) (Signal, error) {
	if step == StepStart {
		return startSignal(c.runner.Run(ctx, c.start))
	}
	return probeSignal(c.prober.Probe(ctx))
}

// EnsureAsync ensures the server is running without blocking.
// The sequence runs as a chain of stages; faults resolve the chain with an error.
func (c Controller) EnsureAsync(ctx context.Context) *Pending {
	chain := cli.NewChain[Outcome](Name).
		First(c.stage(ctx, StepProbe, NonBlocking)).
		Stage(StepStart.String(), c.stage(ctx, StepStart, NonBlocking)).
		Stage(StepCheck.String(), c.stage(ctx, StepCheck, NonBlocking))

	return &Pending{chain: chain.Exec()}
}

func (c Controller) stage(ctx context.Context, step Step, m Mode) cli.StageFunc[Outcome] {
	return func(chain *cli.Chain[Outcome]) {
		c.performAsync(ctx, step, func(sig Signal, err error) {
			if err != nil {
				o, err := c.settle(m)(FailedToStart, &FaultError{Step: step, Err: err})
				chain.Pass(err, o)
				return
			}
			c.log.Debugf("%s: %s", step, sig)
			d := Decide(step, sig, m)
			if d.Done {
				chain.Pass(nil, d.Outcome)
				return
			}
			chain.Through(d.Next.String())
		})
	}
}

func (c Controller) performAsync(ctx context.Context, step Step, done func(Signal, error)) {
	if step == StepStart {
		c.runner.RunAsync(ctx, c.start, func(res environment.Result, err error) {
			done(startSignal(res, err))
		})
		return
	}
	c.prober.ProbeAsync(ctx, func(r probe.Reachability, err error) {
		done(probeSignal(r, err))
	})
}

func probeSignal(r probe.Reachability, err error) (Signal, error) {
	if err != nil {
		return SignalUnreachable, err
	}
	if r == probe.Reachable {
		return SignalReachable, nil
	}
	return SignalUnreachable, nil
}

func startSignal(res environment.Result, err error) (Signal, error) {
	if err != nil {
		return SignalStartFailed, fmt.Errorf("error starting selenium server: %w", err)
	}
	if res.Success() {
		return SignalStarted, nil
	}
	return SignalStartFailed, nil
}

// Pending is the deferred result of ensuring the server.
type Pending struct {
	chain *cli.Chain[Outcome]
}

// Resolved returns a Pending that is already resolved with o and err.
func Resolved(o Outcome, err error) *Pending {
	return &Pending{chain: cli.Resolved[Outcome](Name, o, err)}
}

// Done returns a channel that is closed once the result is available.
func (p *Pending) Done() <-chan struct{} { return p.chain.Done() }

// Wait blocks until the result is available.
// running is true only if the server was confirmed reachable.
func (p *Pending) Wait() (running bool, err error) {
	o, err := p.chain.Wait()
	return o.Running(), err
}

// Outcome blocks until the result is available and returns the Outcome.
func (p *Pending) Outcome() (Outcome, error) { return p.chain.Wait() }

// Then calls f with the result once it is available.
func (p *Pending) Then(f func(err error, running bool)) {
	p.chain.Then(func(err error, o Outcome) { f(err, o.Running()) })
}
