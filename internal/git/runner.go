package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	gserrors "gitsplit.dev/gitsplit/internal/errors"
)

// Executor runs an external command to completion and returns its trimmed
// standard output. A non-zero exit status is reported as a *errors.CommandError.
type Executor interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// CommandRunner is the Executor backed by os/exec
type CommandRunner struct {
	env []string
}

// NewCommandRunner creates a new CommandRunner. The extra environment entries
// are appended to the process environment of every command.
func NewCommandRunner(env ...string) *CommandRunner {
	return &CommandRunner{env: env}
}

// Run executes name with args in dir. An empty dir runs in the current directory.
// There is no default timeout: the command is only interrupted when ctx is done.
func (r *CommandRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return "", gserrors.NewCommandError(name, args, dir, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// ExitCode returns the exit status carried by a command error, or -1 when the
// error did not come from a process that exited.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
