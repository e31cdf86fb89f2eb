package pkgmanifest

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPayload means the tool output contained no '{'.
	ErrNoPayload = errors.New("no package dump found in tool output")
	// ErrInvalidEncoding means the payload is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("package dump is not valid UTF-8")
)

// ParseError reports tool output that could not be turned into a Package.
// Raw holds the text that failed: the whole output when no payload could be
// located, otherwise the extracted payload.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v:\n%s", e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadError is returned by Loader.Load for every failure: the tool could not
// be run, it exited unsuccessfully, or its output could not be parsed.
// Message is meant to be shown to the user as is.
type ReadError struct {
	Message string
	Err     error
}

func (e *ReadError) Error() string { return e.Message }

func (e *ReadError) Unwrap() error { return e.Err }
