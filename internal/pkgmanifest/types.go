package pkgmanifest

// Package is the decoded description of a Swift package.
type Package struct {
	Name string `json:"name" yaml:"name"`
	// ToolsVersion is the manifest's swift-tools-version when the dump
	// reports one. Older toolchains omit it.
	ToolsVersion string    `json:"toolsVersion,omitempty" yaml:"toolsVersion,omitempty"`
	Products     []Product `json:"products" yaml:"products"`
	Targets      []Target  `json:"targets" yaml:"targets"`
}

// Product is a named build output of a package.
type Product struct {
	Name         string   `json:"name" yaml:"name"`
	IsExecutable bool     `json:"isExecutable" yaml:"isExecutable"`
	TargetNames  []string `json:"targetNames" yaml:"targetNames"`
}

// Target is a compilation unit within a package.
type Target struct {
	Name         string       `json:"name" yaml:"name"`
	Resources    []Resource   `json:"resources" yaml:"resources"`
	Dependencies []Dependency `json:"dependencies" yaml:"dependencies"`
}

// Resource is a file or directory bundled with a target, relative to the
// target's source directory.
type Resource struct {
	Path string `json:"path" yaml:"path"`
}

// Dependency references other targets or products by name.
type Dependency struct {
	ByName []string `json:"byName" yaml:"byName"`
}

// Product kind values found in the legacy "product_type" field and as keys
// of the current nested "type" object.
const (
	KindExecutable = "executable"
	KindLibrary    = "library"
)
