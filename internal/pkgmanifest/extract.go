package pkgmanifest

import (
	"strings"
	"unicode/utf8"
)

// ExtractPayload returns the JSON document embedded in raw tool output.
// The toolchain may print warnings or progress lines ahead of the dump, so
// everything before the first '{' is discarded.
//
// A '{' inside that leading diagnostic text would be taken as the start of the
// payload; the tool does not guarantee anything stronger.
func ExtractPayload(raw string) (string, error) {
	i := strings.IndexByte(raw, '{')
	if i < 0 {
		return "", &ParseError{Raw: raw, Err: ErrNoPayload}
	}
	payload := raw[i:]
	if !utf8.ValidString(payload) {
		return "", &ParseError{Raw: raw, Err: ErrInvalidEncoding}
	}
	return payload, nil
}

// Parse extracts the payload from raw tool output and decodes it.
func Parse(raw string) (*Package, error) {
	payload, err := ExtractPayload(raw)
	if err != nil {
		return nil, err
	}
	return Decode(payload)
}
