package ensure

import "testing"

func TestDecide(t *testing.T) {
	tests := []struct {
		step Step
		sig  Signal
		mode Mode
		want Decision
	}{
		{StepProbe, SignalReachable, Blocking, done(AlreadyRunning)},
		{StepProbe, SignalReachable, NonBlocking, done(AlreadyRunning)},
		{StepProbe, SignalUnreachable, Blocking, next(StepStart)},
		{StepProbe, SignalUnreachable, NonBlocking, next(StepStart)},

		{StepStart, SignalStarted, Blocking, next(StepCheck)},
		{StepStart, SignalStarted, NonBlocking, next(StepCheck)},
		{StepStart, SignalStartFailed, Blocking, next(StepCheck)},
		{StepStart, SignalStartFailed, NonBlocking, done(FailedToStart)},

		{StepCheck, SignalReachable, Blocking, done(StartedSuccessfully)},
		{StepCheck, SignalReachable, NonBlocking, done(StartedSuccessfully)},
		{StepCheck, SignalUnreachable, Blocking, done(FailedToStart)},
		{StepCheck, SignalUnreachable, NonBlocking, done(FailedToStart)},

		// signals that do not belong to the step
		{StepProbe, SignalStarted, Blocking, done(FailedToStart)},
		{StepStart, SignalReachable, NonBlocking, done(FailedToStart)},
		{StepCheck, SignalStartFailed, Blocking, done(FailedToStart)},
		{Step(9), SignalReachable, Blocking, done(FailedToStart)},
	}

	for _, tt := range tests {
		t.Run(tt.step.String()+"/"+tt.sig.String(), func(t *testing.T) {
			if got := Decide(tt.step, tt.sig, tt.mode); got != tt.want {
				t.Errorf("Decide(%v, %v, %+v) = %+v, want %+v", tt.step, tt.sig, tt.mode, got, tt.want)
			}
		})
	}
}

func TestDecide_forwardOnly(t *testing.T) {
	signals := []Signal{SignalUnreachable, SignalReachable, SignalStarted, SignalStartFailed}
	for _, m := range []Mode{Blocking, NonBlocking} {
		for _, step := range []Step{StepProbe, StepStart, StepCheck} {
			for _, sig := range signals {
				d := Decide(step, sig, m)
				if !d.Done && d.Next <= step {
					t.Errorf("Decide(%v, %v, %+v) moves back to %v", step, sig, m, d.Next)
				}
			}
		}
	}
}

func TestOutcome_Running(t *testing.T) {
	tests := []struct {
		o    Outcome
		want bool
	}{
		{AlreadyRunning, true},
		{StartedSuccessfully, true},
		{FailedToStart, false},
	}
	for _, tt := range tests {
		t.Run(tt.o.String(), func(t *testing.T) {
			if got := tt.o.Running(); got != tt.want {
				t.Errorf("Running() = %v, want %v", got, tt.want)
			}
		})
	}
}
