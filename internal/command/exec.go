package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

const waitDelay = 2 * time.Second

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	// Timeout bounds each Execute call. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// Execute resolves name on PATH, runs it in dir and captures both output
// streams.
func (r *ExecRunner) Execute(ctx context.Context, name string, args []string, dir string) (*Result, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", name, err)
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	// Grandchildren may keep the output pipes open after a kill.
	cmd.WaitDelay = waitDelay

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()

	result := &Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("running %s: %w", name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("running %s: %w", name, err)
	}

	result.Success = true
	return result, nil
}
