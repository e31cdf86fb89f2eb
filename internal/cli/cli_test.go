package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/mint-labs/mint/internal/pkgmanifest"
)

func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "mint-cli-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("HOME", home)
	code := m.Run()
	os.RemoveAll(home)
	os.Exit(code)
}

// executeCommand runs the root command with args and returns stdout and
// stderr. Flag variables are reset first since cobra keeps them between runs.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	dumpFormat = "table"
	dumpFromFile = ""
	dumpRequireTools = ""
	dumpExecutableOnly = false
	validateFromFile = ""
	resourcesFromFile = ""
	versionShort = false
	versionJSON = false
	logLevel = ""
	logFormat = ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestDump_Table(t *testing.T) {
	out, _, err := executeCommand(t, "dump", "--from-file", "testdata/current.json")
	if err != nil {
		t.Fatalf("dump error: %v", err)
	}
	for _, want := range []string{"Package: Tool (tools 5.3.0)", "PRODUCT", "executable", "Lib"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDump_JSON(t *testing.T) {
	out, _, err := executeCommand(t, "dump", "--from-file", "testdata/current.json", "--format", "json")
	if err != nil {
		t.Fatalf("dump error: %v", err)
	}

	var pkg struct {
		Name     string `json:"name"`
		Products []struct {
			Name         string `json:"name"`
			IsExecutable bool   `json:"isExecutable"`
		} `json:"products"`
	}
	if err := json.Unmarshal([]byte(out), &pkg); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(pkg.Products) != 1 || !pkg.Products[0].IsExecutable {
		t.Errorf("products = %+v, want one executable", pkg.Products)
	}
}

func TestDump_YAML(t *testing.T) {
	out, _, err := executeCommand(t, "dump", "--from-file", "testdata/current.json", "--format", "yaml")
	if err != nil {
		t.Fatalf("dump error: %v", err)
	}
	if !strings.Contains(out, "isExecutable: true") {
		t.Errorf("output missing isExecutable: true:\n%s", out)
	}
}

func TestDump_UnknownFormat(t *testing.T) {
	_, _, err := executeCommand(t, "dump", "--from-file", "testdata/current.json", "--format", "xml")
	if err == nil {
		t.Fatal("expected error for unknown format, got nil")
	}
}

func TestDump_RequireToolsVersion(t *testing.T) {
	if _, _, err := executeCommand(t, "dump", "--from-file", "testdata/current.json", "--require-tools-version", ">= 5.3"); err != nil {
		t.Errorf("unexpected error for satisfied constraint: %v", err)
	}
	if _, _, err := executeCommand(t, "dump", "--from-file", "testdata/current.json", "--require-tools-version", ">= 5.9"); err == nil {
		t.Error("expected error for unsatisfied constraint, got nil")
	}
}

func TestDump_DecodeFailure(t *testing.T) {
	_, _, err := executeCommand(t, "dump", "--from-file", "testdata/invalid-unknown-kind.json")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !pkgmanifest.IsParseError(err) {
		t.Errorf("error = %T, want a parse error", err)
	}
}

func TestValidate(t *testing.T) {
	out, _, err := executeCommand(t, "validate", "--from-file", "testdata/current.json")
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if !strings.Contains(out, "dump format OK") {
		t.Errorf("output = %q, want OK line", out)
	}

	out, _, err = executeCommand(t, "validate", "--from-file", "testdata/invalid-unknown-kind.json")
	if err == nil {
		t.Fatal("expected error for invalid dump, got nil")
	}
	if !strings.Contains(out, "/products/0") {
		t.Errorf("output does not point at the product:\n%s", out)
	}
}

func TestResources(t *testing.T) {
	out, _, err := executeCommand(t, "resources", "tool", "--from-file", "testdata/current.json")
	if err != nil {
		t.Fatalf("resources error: %v", err)
	}
	if out != "Resources/a.txt\n" {
		t.Errorf("output = %q, want %q", out, "Resources/a.txt\n")
	}

	if _, _, err := executeCommand(t, "resources", "missing", "--from-file", "testdata/current.json"); err == nil {
		t.Error("expected error for unknown product, got nil")
	}
}

func TestVersion_Short(t *testing.T) {
	buildVersion = "1.2.3"
	out, _, err := executeCommand(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if out != "1.2.3\n" {
		t.Errorf("output = %q, want %q", out, "1.2.3\n")
	}
}

func TestConfig_SetGet(t *testing.T) {
	if _, _, err := executeCommand(t, "config", "set", "tool", "/usr/local/bin/swift"); err != nil {
		t.Fatalf("config set error: %v", err)
	}
	out, _, err := executeCommand(t, "config", "get", "tool")
	if err != nil {
		t.Fatalf("config get error: %v", err)
	}
	if strings.TrimSpace(out) != "/usr/local/bin/swift" {
		t.Errorf("config get tool = %q, want %q", out, "/usr/local/bin/swift")
	}
}

func TestJoinOrDash(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, "-"},
		{[]string{"A"}, "A"},
		{[]string{"A", "B"}, "A, B"},
	}
	for _, tt := range tests {
		if got := joinOrDash(tt.items); got != tt.want {
			t.Errorf("joinOrDash(%v) = %q, want %q", tt.items, got, tt.want)
		}
	}
}
