package pkgmanifest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mint-labs/mint/internal/command"
	"github.com/mint-labs/mint/internal/ctxlog"
)

// Default introspection command.
const (
	DefaultTool = "swift"
)

// DefaultArgs are the arguments passed to DefaultTool.
var DefaultArgs = []string{"package", "dump-package"}

// Loader runs the introspection command and decodes its output. A Loader has
// no mutable state and may be shared between goroutines.
type Loader struct {
	Runner command.Runner
	Tool   string
	Args   []string
}

// NewLoader returns a Loader that runs `swift package dump-package` through r.
func NewLoader(r command.Runner) *Loader {
	return &Loader{
		Runner: r,
		Tool:   DefaultTool,
		Args:   append([]string(nil), DefaultArgs...),
	}
}

// LoadPackageManifest loads the package in dir using the system toolchain.
func LoadPackageManifest(ctx context.Context, dir string) (*Package, error) {
	return NewLoader(&command.ExecRunner{}).Load(ctx, dir)
}

// Load runs the introspection command once in dir and decodes the result.
// Every failure is a *ReadError.
func (l *Loader) Load(ctx context.Context, dir string) (*Package, error) {
	payload, err := l.Payload(ctx, dir)
	if err != nil {
		return nil, err
	}

	pkg, err := Decode(payload)
	if err != nil {
		return nil, &ReadError{Message: err.Error(), Err: err}
	}

	ctxlog.FromContext(ctx).Debug("decoded package",
		"dir", dir,
		"name", pkg.Name,
		"products", len(pkg.Products),
		"targets", len(pkg.Targets),
		"toolsVersion", pkg.ToolsVersion,
	)
	return pkg, nil
}

// Payload runs the introspection command in dir and returns the JSON
// document from its output without decoding it. Every failure is a
// *ReadError.
func (l *Loader) Payload(ctx context.Context, dir string) (string, error) {
	log := ctxlog.FromContext(ctx)
	log.Debug("running package dump", "tool", l.Tool, "args", l.Args, "dir", dir)

	res, err := l.Runner.Execute(ctx, l.Tool, l.Args, dir)
	if err != nil {
		return "", &ReadError{Message: fmt.Sprintf("running %s: %v", l.Tool, err), Err: err}
	}
	if !res.Success {
		log.Debug("package dump failed", "exitCode", res.ExitCode)
		return "", &ReadError{Message: failureMessage(l.Tool, res)}
	}

	payload, err := ExtractPayload(res.Stdout)
	if err != nil {
		return "", &ReadError{Message: err.Error(), Err: err}
	}
	log.Debug("extracted payload", "offset", len(res.Stdout)-len(payload), "bytes", len(payload))
	return payload, nil
}

// failureMessage picks the stream that carries the tool's diagnostic:
// stderr when it has content, stdout otherwise.
func failureMessage(tool string, res *command.Result) string {
	if msg := strings.TrimRight(res.Stderr, "\r\n"); strings.TrimSpace(msg) != "" {
		return msg
	}
	if msg := strings.TrimRight(res.Stdout, "\r\n"); strings.TrimSpace(msg) != "" {
		return msg
	}
	return fmt.Sprintf("%s exited with status %d and no output", tool, res.ExitCode)
}

// IsParseError reports whether err came from reading tool output rather than
// from running the tool.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
