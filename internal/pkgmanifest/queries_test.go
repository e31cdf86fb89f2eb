package pkgmanifest

import (
	"reflect"
	"testing"
)

func samplePackage() *Package {
	return &Package{
		Name:         "Mint",
		ToolsVersion: "5.3.0",
		Products: []Product{
			{Name: "mint", IsExecutable: true, TargetNames: []string{"Mint"}},
			{Name: "MintKit", TargetNames: []string{"MintKit"}},
			{Name: "broken", IsExecutable: true, TargetNames: []string{"Ghost", "Mint"}},
		},
		Targets: []Target{
			{
				Name:         "Mint",
				Resources:    []Resource{{Path: "Resources/help.txt"}},
				Dependencies: []Dependency{{ByName: []string{"MintKit"}}},
			},
			{
				Name:         "MintKit",
				Resources:    []Resource{{Path: "Resources/templates"}, {Path: "Resources/help.txt"}},
				Dependencies: []Dependency{{ByName: []string{"Rainbow", "Mint"}}},
			},
		},
	}
}

func TestExecutableProducts(t *testing.T) {
	got := samplePackage().ExecutableProducts()
	if len(got) != 2 || got[0].Name != "mint" || got[1].Name != "broken" {
		t.Errorf("ExecutableProducts = %+v, want [mint broken]", got)
	}
}

func TestTargetLookup(t *testing.T) {
	pkg := samplePackage()
	if _, ok := pkg.Target("MintKit"); !ok {
		t.Error("Target(MintKit) not found")
	}
	if _, ok := pkg.Target("Rainbow"); ok {
		t.Error("Target(Rainbow) found, want missing")
	}
}

func TestMissingTargets(t *testing.T) {
	got := samplePackage().MissingTargets()
	if !reflect.DeepEqual(got, []string{"Ghost"}) {
		t.Errorf("MissingTargets = %v, want [Ghost]", got)
	}
}

func TestResourcePaths(t *testing.T) {
	pkg := samplePackage()
	got := pkg.ResourcePaths(pkg.Products[0])
	want := []string{"Resources/help.txt", "Resources/templates"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResourcePaths = %v, want %v", got, want)
	}
}

func TestToolsSemver(t *testing.T) {
	pkg := samplePackage()
	v, err := pkg.ToolsSemver()
	if err != nil {
		t.Fatalf("ToolsSemver error: %v", err)
	}
	if v.Major() != 5 || v.Minor() != 3 {
		t.Errorf("ToolsSemver = %s, want 5.3.x", v)
	}

	pkg.ToolsVersion = ""
	if _, err := pkg.ToolsSemver(); err == nil {
		t.Error("expected error for missing tools version")
	}
}

func TestRequireToolsVersion(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		wantErr    bool
	}{
		{"5.3.0", ">= 5.3", false},
		{"5.2", ">= 5.3", true},
		{"5.9.0", "~5.9", false},
		{"", ">= 5.0", true},
		{"5.3.0", "not a constraint", true},
	}

	for _, tt := range tests {
		t.Run(tt.version+" "+tt.constraint, func(t *testing.T) {
			pkg := &Package{Name: "p", ToolsVersion: tt.version}
			err := pkg.RequireToolsVersion(tt.constraint)
			if (err != nil) != tt.wantErr {
				t.Errorf("RequireToolsVersion(%q) error = %v, wantErr %v", tt.constraint, err, tt.wantErr)
			}
		})
	}
}
