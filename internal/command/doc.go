// Package command defines the Runner interface used to invoke external tools
// and an os/exec backed implementation. A Runner captures stdout and stderr in
// full and reports whether the process exited successfully.
package command
