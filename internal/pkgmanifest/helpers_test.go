package pkgmanifest

import (
	"os"
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(testdataDir, name))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	return string(data)
}
