package pkgmanifest

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractPayload(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"payload only", `{"name":"X"}`, `{"name":"X"}`},
		{"warning prefix", "warning: foo\n{\"name\":\"X\",\"products\":[]}", "{\"name\":\"X\",\"products\":[]}"},
		{"first brace wins", "progress\n{\"a\":{\"b\":1}}\n", "{\"a\":{\"b\":1}}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPayload(tt.raw)
			if err != nil {
				t.Fatalf("ExtractPayload error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractPayload = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractPayload_NoBrace(t *testing.T) {
	raw := "error: no Package.swift found in /tmp/empty"
	_, err := ExtractPayload(raw)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Raw != raw {
		t.Errorf("Raw = %q, want %q", pe.Raw, raw)
	}
	if !errors.Is(err, ErrNoPayload) {
		t.Errorf("errors.Is(err, ErrNoPayload) = false for %v", err)
	}
	if !strings.Contains(err.Error(), raw) {
		t.Errorf("error message %q does not contain the raw output", err.Error())
	}
}

func TestExtractPayload_InvalidUTF8(t *testing.T) {
	raw := "{\"name\":\"\xff\xfe\"}"
	_, err := ExtractPayload(raw)
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("error = %v, want ErrInvalidEncoding", err)
	}
}

func TestParse_WithWarnings(t *testing.T) {
	pkg, err := Parse(readFixture(t, "with-warnings.txt"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if pkg.Name != "Tool" {
		t.Errorf("Name = %q, want %q", pkg.Name, "Tool")
	}
	if len(pkg.Products) != 1 || pkg.Products[0].IsExecutable {
		t.Errorf("Products = %+v, want one library product", pkg.Products)
	}
}
