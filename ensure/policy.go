package ensure

import "fmt"

// Outcome is the result of ensuring the selenium server is running.
type Outcome int

const (
	FailedToStart Outcome = iota
	AlreadyRunning
	StartedSuccessfully
)

// Running returns if the server was confirmed running.
func (o Outcome) Running() bool {
	return o == AlreadyRunning || o == StartedSuccessfully
}

func (o Outcome) String() string {
	switch o {
	case AlreadyRunning:
		return "already running"
	case StartedSuccessfully:
		return "started"
	case FailedToStart:
		return "failed to start"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Step is a step of the ensure sequence.
// Steps only ever move forward: probe, start, check.
type Step int

const (
	StepProbe Step = iota
	StepStart
	StepCheck
)

// String returns the stage name of the step.
func (s Step) String() string {
	switch s {
	case StepProbe:
		return "probe-selenium-server"
	case StepStart:
		return "start-selenium-server"
	case StepCheck:
		return "check-selenium-server"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Signal is the fault-free result of performing a step.
type Signal int

const (
	SignalUnreachable Signal = iota
	SignalReachable
	SignalStarted
	SignalStartFailed
)

func (s Signal) String() string {
	switch s {
	case SignalUnreachable:
		return "unreachable"
	case SignalReachable:
		return "reachable"
	case SignalStarted:
		return "started"
	case SignalStartFailed:
		return "start failed"
	}
	return fmt.Sprintf("Signal(%d)", int(s))
}

// Mode holds the conventions that differ between blocking and non-blocking execution.
type Mode struct {
	// MaskFaults reports faults to the diagnostic sink and resolves to false
	// instead of returning them.
	MaskFaults bool
	// HonorStartExit ends the sequence when the start command exits
	// with a non-zero status instead of re-probing.
	HonorStartExit bool
}

var (
	// Blocking is the mode of Controller.Ensure.
	Blocking = Mode{MaskFaults: true, HonorStartExit: false}
	// NonBlocking is the mode of Controller.EnsureAsync.
	NonBlocking = Mode{MaskFaults: false, HonorStartExit: true}
)

// Decision is what to do after a step.
type Decision struct {
	// Done ends the sequence with Outcome.
	Done    bool
	Outcome Outcome
	// Next is the step to perform when not Done.
	Next Step
}

func done(o Outcome) Decision { return Decision{Done: true, Outcome: o} }
func next(s Step) Decision    { return Decision{Next: s} }

// Decide returns the decision after step completed with sig under mode m.
// Unexpected combinations end the sequence with FailedToStart.
func Decide(step Step, sig Signal, m Mode) Decision {
	switch step {
	case StepProbe:
		switch sig {
		case SignalReachable:
			return done(AlreadyRunning)
		case SignalUnreachable:
			return next(StepStart)
		}

	case StepStart:
		switch sig {
		case SignalStarted:
			return next(StepCheck)
		case SignalStartFailed:
			if m.HonorStartExit {
				return done(FailedToStart)
			}
			return next(StepCheck)
		}

	case StepCheck:
		switch sig {
		case SignalReachable:
			return done(StartedSuccessfully)
		case SignalUnreachable:
			return done(FailedToStart)
		}
	}

	return done(FailedToStart)
}
