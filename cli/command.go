package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// Settings is global cli settings
var Settings = struct {
	Verbose bool
}{}

var (
	runnerMu sync.RWMutex
	dryRun   bool
	stdout   io.Writer = os.Stdout
	stderr   io.Writer = os.Stderr
)

func current() commandRunner {
	runnerMu.RLock()
	defer runnerMu.RUnlock()
	if dryRun {
		return dryRunCommandRunner{stderr: stderr}
	}
	return defaultCommandRunner{stdout: stdout, stderr: stderr}
}

// DryRun toggles the state of the command runner. If true, commands are only printed to the console
// without execution.
func DryRun(d bool) {
	runnerMu.Lock()
	defer runnerMu.Unlock()
	dryRun = d
}

// IsDryRun returns if commands are printed instead of executed.
func IsDryRun() bool {
	runnerMu.RLock()
	defer runnerMu.RUnlock()
	return dryRun
}

// Stdout sets the stdout for commands.
func Stdout(file io.Writer) {
	runnerMu.Lock()
	defer runnerMu.Unlock()
	stdout = file
}

// Stderr sets the stderr for commands and dry run output.
func Stderr(file io.Writer) {
	runnerMu.Lock()
	defer runnerMu.Unlock()
	stderr = file
}

// Command creates a new command.
func Command(ctx context.Context, command string, args ...string) *exec.Cmd {
	return current().Command(ctx, command, args...)
}

type commandRunner interface {
	Command(ctx context.Context, command string, args ...string) *exec.Cmd
}

var _ commandRunner = defaultCommandRunner{}

type defaultCommandRunner struct {
	stdout io.Writer
	stderr io.Writer
}

func (d defaultCommandRunner) Command(ctx context.Context, command string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdout = d.stdout
	cmd.Stderr = d.stderr
	return cmd
}

var _ commandRunner = dryRunCommandRunner{}

type dryRunCommandRunner struct {
	stderr io.Writer
}

func (d dryRunCommandRunner) Command(ctx context.Context, command string, args ...string) *exec.Cmd {
	d.printArgs("run:", command, args...)
	return exec.CommandContext(ctx, "echo")
}

func (d dryRunCommandRunner) printArgs(prefix, command string, args ...string) {
	var str []string
	str = append(str, prefix, strconv.Quote(command))
	for _, arg := range args {
		str = append(str, strconv.Quote(arg))
	}
	fmt.Fprintln(d.stderr, strings.Join(str, " "))
}
