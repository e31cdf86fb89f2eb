package pkgmanifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ExecutableProducts returns the products that build an executable, in
// manifest order.
func (p *Package) ExecutableProducts() []Product {
	var out []Product
	for _, prod := range p.Products {
		if prod.IsExecutable {
			out = append(out, prod)
		}
	}
	return out
}

// Target looks up a target by name.
func (p *Package) Target(name string) (Target, bool) {
	for _, t := range p.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// MissingTargets lists target names referenced by products that the package
// does not define. Decoding never checks this.
func (p *Package) MissingTargets() []string {
	var missing []string
	seen := make(map[string]bool)
	for _, prod := range p.Products {
		for _, name := range prod.TargetNames {
			if seen[name] {
				continue
			}
			seen[name] = true
			if _, ok := p.Target(name); !ok {
				missing = append(missing, name)
			}
		}
	}
	return missing
}

// ResourcePaths returns the resource paths an executable product needs at
// run time: those of its targets and of every local target they depend on,
// transitively. Names that are not local targets (products of other
// packages) are skipped. Each path is listed once, in discovery order.
func (p *Package) ResourcePaths(product Product) []string {
	var paths []string
	seenPath := make(map[string]bool)
	visited := make(map[string]bool)

	var walk func(name string)
	walk = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		t, ok := p.Target(name)
		if !ok {
			return
		}
		for _, r := range t.Resources {
			if !seenPath[r.Path] {
				seenPath[r.Path] = true
				paths = append(paths, r.Path)
			}
		}
		for _, d := range t.Dependencies {
			for _, dep := range d.ByName {
				walk(dep)
			}
		}
	}

	for _, name := range product.TargetNames {
		walk(name)
	}
	return paths
}

// ToolsSemver parses ToolsVersion. Two-component versions such as "5.3" are
// accepted.
func (p *Package) ToolsSemver() (*semver.Version, error) {
	if p.ToolsVersion == "" {
		return nil, fmt.Errorf("package %s does not report a tools version", p.Name)
	}
	v, err := semver.NewVersion(p.ToolsVersion)
	if err != nil {
		return nil, fmt.Errorf("parsing tools version %q: %w", p.ToolsVersion, err)
	}
	return v, nil
}

// RequireToolsVersion checks ToolsVersion against a semver constraint such
// as ">= 5.3".
func (p *Package) RequireToolsVersion(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing tools version constraint %q: %w", constraint, err)
	}
	v, err := p.ToolsSemver()
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("package %s has tools version %s, which does not satisfy %q", p.Name, p.ToolsVersion, constraint)
	}
	return nil
}
