package command

import "context"

// Runner executes an external command in a working directory.
type Runner interface {
	// Execute runs name with args in dir and waits for it to exit. A non-zero
	// exit is reported through Result.Success, not as an error; the error
	// return is reserved for commands that could not be run at all.
	Execute(ctx context.Context, name string, args []string, dir string) (*Result, error)
}

// Result captures the outcome of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	Success  bool
	ExitCode int
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, name string, args []string, dir string) (*Result, error)

// Execute calls f.
func (f RunnerFunc) Execute(ctx context.Context, name string, args []string, dir string) (*Result, error) {
	return f(ctx, name, args, dir)
}
