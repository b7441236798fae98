package tools

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external command in dir and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ToolError reports an external command that could not be started or exited
// non-zero.
type ToolError struct {
	Command  string
	ExitCode int // -1 when the command never ran
	Err      error
}

func (e *ToolError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec. The child shares the terminal:
// sphinx-quickstart asks its own questions.
type ExecRunner struct {
	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args in dir, blocking until it exits.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	command := strings.Join(append([]string{name}, args...), " ")

	bin, err := exec.LookPath(name)
	if err != nil {
		return &ToolError{Command: command, ExitCode: -1, Err: err}
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &ToolError{Command: command, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &ToolError{Command: command, ExitCode: -1, Err: err}
	}
	return nil
}
