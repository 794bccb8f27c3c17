// Package os runs external processes on behalf of other packages.
package os

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrExec indicates the process could not be run or exited with a non-zero
// status.
var ErrExec = errors.New("exec")

type ExecOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

type ExecOptions struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env replaces the process environment when non-nil.
	Env []string
}

// Exec runs name with arg and captures its output. When the process exits
// with a non-zero status the returned [ExecOutput] is still populated, and
// the error wraps [ErrExec].
func Exec(ctx context.Context, opts ExecOptions, name string, arg ...string) (*ExecOutput, error) {
	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Dir = opts.Dir
	if opts.Env != nil {
		cmd.Env = opts.Env
	}

	var outb, errb bytes.Buffer
	cmd.Stdout = &outb
	cmd.Stderr = &errb

	err := cmd.Run()

	out := &ExecOutput{
		Stdout:   outb.String(),
		Stderr:   errb.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}
	if err != nil {
		return out, fmt.Errorf("%w: %s: %w", ErrExec, name, err)
	}

	return out, nil
}
