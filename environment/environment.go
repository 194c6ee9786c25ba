package environment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// Command is a command to run on the host.
type Command struct {
	// Args is the program followed by its arguments.
	Args []string
	// Quiet suppresses the output of the command on the console.
	Quiet bool
}

// ParseCommand splits line into a Command using shell quoting rules.
func ParseCommand(line string) (Command, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return Command{}, fmt.Errorf("error parsing command '%s': %w", line, err)
	}
	if len(args) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}
	return Command{Args: args}, nil
}

// MustParseCommand is like ParseCommand but panics on error.
// It is meant for fixed command strings.
func MustParseCommand(line string) Command {
	cmd, err := ParseCommand(line)
	if err != nil {
		panic(err)
	}
	return cmd
}

// WithQuiet returns a copy of the command with Quiet set to quiet.
func (c Command) WithQuiet(quiet bool) Command {
	c.Args = append([]string(nil), c.Args...)
	c.Quiet = quiet
	return c
}

func (c Command) String() string { return strings.Join(c.Args, " ") }

// Result is the result of a command that ran to completion.
type Result struct {
	// ExitCode is the exit status of the process.
	ExitCode int
}

// Success returns if the command exited with a zero status.
func (r Result) Success() bool { return r.ExitCode == 0 }

// CommandRunner runs commands.
//
// A command that runs and exits, with any status, yields a Result.
// An error is only returned if the command could not be run at all.
type CommandRunner interface {
	// Run runs the command and blocks until it exits.
	Run(ctx context.Context, cmd Command) (Result, error)
	// RunAsync runs the command without blocking.
	// done is called exactly once when the command exits or fails to run.
	RunAsync(ctx context.Context, cmd Command, done func(Result, error))
}

// Dependencies are dependencies that must exist on the host.
type Dependencies interface {
	// Dependencies are the programs that must be in the PATH.
	Dependencies() []string
}
