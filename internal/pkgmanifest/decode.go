package pkgmanifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var errMissing = errors.New("missing required field")

// Decode decodes a package dump payload. Any structural problem is reported
// as a *ParseError carrying the payload.
func Decode(payload string) (*Package, error) {
	var pkg Package
	if err := json.Unmarshal([]byte(payload), &pkg); err != nil {
		return nil, &ParseError{Raw: payload, Err: fmt.Errorf("decoding package dump: %w", err)}
	}
	return &pkg, nil
}

// UnmarshalJSON decodes the top level of a dump. Only the optional
// toolsVersion is tolerated when absent or malformed.
func (p *Package) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}

	name, err := obj.stringField("name")
	if err != nil {
		return err
	}

	var products []Product
	if err := obj.each("products", func(i int, raw json.RawMessage) error {
		var prod Product
		if err := prod.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
		products = append(products, prod)
		return nil
	}); err != nil {
		return err
	}

	var targets []Target
	if err := obj.each("targets", func(i int, raw json.RawMessage) error {
		var t Target
		if err := t.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("targets[%d]: %w", i, err)
		}
		targets = append(targets, t)
		return nil
	}); err != nil {
		return err
	}

	*p = Package{
		Name:         name,
		ToolsVersion: obj.toolsVersion(),
		Products:     nonNil(products),
		Targets:      nonNil(targets),
	}
	return nil
}

// UnmarshalJSON decodes a product in either the legacy or the current shape.
// The legacy "product_type" string wins whenever the key is present.
func (p *Product) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}

	name, err := obj.stringField("name")
	if err != nil {
		return err
	}

	var executable bool
	if obj.has("product_type") {
		kind, err := obj.stringField("product_type")
		if err != nil {
			return err
		}
		executable = kind == KindExecutable
	} else {
		executable, err = obj.productKind()
		if err != nil {
			return err
		}
	}

	targets, err := obj.stringList("targets")
	if err != nil {
		return err
	}

	*p = Product{Name: name, IsExecutable: executable, TargetNames: targets}
	return nil
}

// UnmarshalJSON decodes a target. The target "type" field is ignored.
func (t *Target) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}

	name, err := obj.stringField("name")
	if err != nil {
		return err
	}

	resources := []Resource{}
	if err := obj.each("resources", func(i int, raw json.RawMessage) error {
		var r Resource
		if err := r.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("resources[%d]: %w", i, err)
		}
		resources = append(resources, r)
		return nil
	}); err != nil {
		return fmt.Errorf("target %q: %w", name, err)
	}

	deps := []Dependency{}
	if err := obj.each("dependencies", func(i int, raw json.RawMessage) error {
		var d Dependency
		if err := d.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("dependencies[%d]: %w", i, err)
		}
		deps = append(deps, d)
		return nil
	}); err != nil {
		return fmt.Errorf("target %q: %w", name, err)
	}

	*t = Target{Name: name, Resources: resources, Dependencies: deps}
	return nil
}

// UnmarshalJSON decodes a resource; only the path is kept.
func (r *Resource) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	path, err := obj.stringField("path")
	if err != nil {
		return err
	}
	*r = Resource{Path: path}
	return nil
}

// UnmarshalJSON decodes a byName dependency. Null entries in the list are
// dropped and the remaining names keep their order.
func (d *Dependency) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	raw, err := obj.field("byName")
	if err != nil {
		return err
	}

	var entries []*string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("field %q: %w", "byName", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			names = append(names, *e)
		}
	}
	*d = Dependency{ByName: names}
	return nil
}

// object is a JSON object whose members are decoded on demand.
type object map[string]json.RawMessage

func decodeObject(data []byte) (object, error) {
	if isNull(data) {
		return nil, errors.New("expected object, found null")
	}
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (o object) has(key string) bool {
	_, ok := o[key]
	return ok
}

// field returns the raw member value. A null value counts as missing.
func (o object) field(key string) (json.RawMessage, error) {
	raw, ok := o[key]
	if !ok || isNull(raw) {
		return nil, fmt.Errorf("%w %q", errMissing, key)
	}
	return raw, nil
}

func (o object) stringField(key string) (string, error) {
	raw, err := o.field(key)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}
	return s, nil
}

// stringList decodes an array of strings. Null entries are rejected.
func (o object) stringList(key string) ([]string, error) {
	var out []string
	err := o.each(key, func(i int, raw json.RawMessage) error {
		if isNull(raw) {
			return fmt.Errorf("field %q[%d]: expected string, found null", key, i)
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("field %q[%d]: %w", key, i, err)
		}
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// each calls fn for every element of the required array member key.
func (o object) each(key string, fn func(i int, raw json.RawMessage) error) error {
	raw, err := o.field(key)
	if err != nil {
		return err
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	for i, elem := range elems {
		if err := fn(i, elem); err != nil {
			return err
		}
	}
	return nil
}

// productKind reads the nested "type" object of the current product shape.
// The kind is carried by the key; its value (often null) is irrelevant.
func (o object) productKind() (bool, error) {
	raw, err := o.field("type")
	if err != nil {
		return false, err
	}
	kinds, err := decodeObject(raw)
	if err != nil {
		return false, fmt.Errorf("field %q: %w", "type", err)
	}
	switch {
	case kinds.has(KindExecutable):
		return true, nil
	case kinds.has(KindLibrary):
		return false, nil
	default:
		keys := make([]string, 0, len(kinds))
		for k := range kinds {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return false, fmt.Errorf("field %q: unrecognized product kind %v", "type", keys)
	}
}

// toolsVersion returns toolsVersion._version, or "" when it is absent or not
// a string.
func (o object) toolsVersion() string {
	raw, ok := o["toolsVersion"]
	if !ok {
		return ""
	}
	var tv struct {
		Version string `json:"_version"`
	}
	if err := json.Unmarshal(raw, &tv); err != nil {
		return ""
	}
	return tv.Version
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
