// Package runner executes the external command line tools the provisioning
// steps depend on.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner runs external binaries. Output captures standard output, Run streams it.
type Runner interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	Run(ctx context.Context, name string, args ...string) error
}

type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = &ExecRunner{}

func New() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204 - binaries and arguments are assembled by this module, not taken from user input
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return out, commandError(name, args, err, stderr.String())
	}
	return out, nil
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	// #nosec G204 - binaries and arguments are assembled by this module, not taken from user input
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return commandError(name, args, err, "")
	}
	return nil
}

func commandError(name string, args []string, err error, stderr string) error {
	command := strings.TrimSpace(name + " " + strings.Join(args, " "))
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("%q exited with status %d: %s", command, exitErr.ExitCode(), msg)
		}
		return fmt.Errorf("%q exited with status %d", command, exitErr.ExitCode())
	}
	return fmt.Errorf("failed to run %q: %w", command, err)
}
