package spec

import (
	"fmt"
	"maps"
)

// MapOptions configures a map-of-fields spec. Required and Optional map
// field names to child specs; when Exclusive is set, any field outside
// required and optional is rejected.
type MapOptions struct {
	// Nullable makes the spec accept nil values.
	Nullable bool
	// Check is an optional extra predicate applied after the base check.
	Check Predicate

	// Required fields must be present and conform to their child spec.
	Required map[string]*Spec
	// Optional fields are validated against their child spec only when
	// present.
	Optional map[string]*Spec
	// Exclusive rejects every field not declared in Required or Optional.
	Exclusive bool
}

type mapSpec struct {
	required  map[string]*Spec
	optional  map[string]*Spec
	exclusive bool
	msg       string
}

// Map builds a spec that accepts string-keyed maps whose fields conform to
// the declared child specs.
func Map(opts MapOptions) (*Spec, error) {
	for _, name := range sortedKeys(opts.Required) {
		if !probeChild(opts.Required[name]) {
			return nil, fmt.Errorf("%w: required field %q", ErrInvalidChildSpec, name)
		}
	}
	for _, name := range sortedKeys(opts.Optional) {
		if !probeChild(opts.Optional[name]) {
			return nil, fmt.Errorf("%w: optional field %q", ErrInvalidChildSpec, name)
		}
	}

	return &Spec{
		nullable: opts.Nullable,
		pred:     opts.Check,
		v: &mapSpec{
			required:  maps.Clone(opts.Required),
			optional:  maps.Clone(opts.Optional),
			exclusive: opts.Exclusive,
			msg:       typeMessage("must be a map", opts.Nullable),
		},
	}, nil
}

// MustMap is like Map but panics on a construction error.
func MustMap(opts MapOptions) *Spec {
	return must(Map(opts))
}

func (m *mapSpec) kind() Kind { return KindMap }

func (m *mapSpec) check(value any, depth int) error {
	fields, ok := asStringMap(value)
	if !ok {
		return Violations{{Message: m.msg}}
	}

	var vs Violations

	// Keys are visited in sorted order so identical inputs always yield an
	// identically ordered result.
	if m.exclusive {
		for _, k := range sortedKeys(fields) {
			if _, declared := m.required[k]; declared {
				continue
			}
			if _, declared := m.optional[k]; declared {
				continue
			}
			vs = append(vs, Violation{Path: Path{Field(k)}, Message: "is not allowed"})
		}
	}

	for _, k := range sortedKeys(m.required) {
		if _, present := fields[k]; !present {
			vs = append(vs, Violation{Path: Path{Field(k)}, Message: "is required"})
		}
	}

	for _, k := range sortedKeys(fields) {
		child := m.required[k]
		if child == nil {
			child = m.optional[k]
		}
		if child == nil {
			continue
		}
		vs = recurse(vs, Field(k), child, fields[k], depth)
	}

	if len(vs) == 0 {
		return nil
	}
	return vs
}
