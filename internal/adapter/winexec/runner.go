// Package winexec runs OS utility commands (schtasks, net, shutdown) as
// hidden child processes with a per-call deadline.
package winexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cobalt/screentime/internal/port"
)

// DefaultTimeout bounds a single utility invocation. Local OS tools answer
// well within this; anything longer means a hung process.
const DefaultTimeout = 15 * time.Second

type Runner struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

func (r *Runner) Run(ctx context.Context, argv []string, opts port.RunOptions) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("winexec: empty argv")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	hideWindow(cmd)

	var stdout, stderr bytes.Buffer
	if opts.CaptureOutput {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	r.log.Debug().Strs("argv", argv).Msg("running command")
	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		r.log.Error().Str("command", argv[0]).Dur("timeout", timeout).Msg("command timed out")
		return "", fmt.Errorf("%s: %w", argv[0], port.ErrTimeout)
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		output := combinedText(stderr.String(), stdout.String())
		if output == "" {
			output = err.Error()
		}
		r.log.Warn().Strs("argv", argv).Int("code", exitCode).Str("output", output).Msg("command failed")
		return "", &port.CommandError{ExitCode: exitCode, Output: output}
	}

	out := stdout.String()
	r.log.Debug().Str("command", argv[0]).Int("output_bytes", len(out)).Msg("command succeeded")
	return out, nil
}

func combinedText(stderr, stdout string) string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(stderr); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(stdout); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}
