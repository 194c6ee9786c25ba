package host

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/volkovasystems/celene/cli"
	"github.com/volkovasystems/celene/environment"
)

// New creates a new host environment.
func New() environment.CommandRunner {
	return &hostEnv{}
}

var _ environment.CommandRunner = (*hostEnv)(nil)

type hostEnv struct{}

func (h hostEnv) Run(ctx context.Context, c environment.Command) (environment.Result, error) {
	if len(c.Args) == 0 {
		return environment.Result{}, errors.New("args not specified")
	}

	log := logrus.WithField("context", "host")
	log.Traceln("run:", c.String())

	cmd := cli.Command(ctx, c.Args[0], c.Args[1:]...)
	if c.Quiet {
		// null device
		cmd.Stdout = nil
		cmd.Stderr = nil
	}

	var res environment.Result
	err := cmd.Run()
	if err == nil {
		return res, nil
	}

	// the process ran, the exit status is the result
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		log.Tracef("%s: exit status %d", c.String(), res.ExitCode)
		return res, nil
	}

	return res, fmt.Errorf("error running '%s': %w", c.String(), err)
}

func (h hostEnv) RunAsync(ctx context.Context, c environment.Command, done func(environment.Result, error)) {
	go func() {
		done(h.Run(ctx, c))
	}()
}

// IsInstalled checks if dependencies are installed.
func IsInstalled(dependencies environment.Dependencies) error {
	var missing []string
	for _, p := range dependencies.Dependencies() {
		if _, err := exec.LookPath(p); err != nil {
			missing = append(missing, p)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%s not found in PATH", strings.Join(missing, ", "))
	}

	return nil
}
