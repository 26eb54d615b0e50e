package port

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout marks a command that exceeded its deadline.
var ErrTimeout = errors.New("command timed out")

// CommandError is a non-zero exit from an external command, carrying the
// diagnostic text the command printed.
type CommandError struct {
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed (code %d): %s", e.ExitCode, e.Output)
}

// RunOptions bounds one external command invocation.
type RunOptions struct {
	CaptureOutput bool
	Timeout       time.Duration
}

// Runner executes an external command and blocks until it completes or
// times out. Non-zero exit returns a *CommandError; a timeout returns an
// error wrapping ErrTimeout.
type Runner interface {
	Run(ctx context.Context, argv []string, opts RunOptions) (string, error)
}
