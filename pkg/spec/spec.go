package spec

import "errors"

// Kind identifies a spec variant.
type Kind int

const (
	KindBool Kind = iota + 1
	KindInt
	KindDecimal
	KindString
	KindMap
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Predicate is an optional caller-supplied check applied after a spec's own
// rules pass. A nil return accepts the value; a non-nil error supplies the
// failure message (an empty message falls back to "invalid"). Predicates
// cannot relax a spec's own rules: they only run once the base check passed.
type Predicate func(value any) error

// variant is the normalized, immutable payload of one spec kind. The
// interface is unexported so the variant set is closed.
type variant interface {
	kind() Kind
	check(value any, depth int) error
}

// Spec is an immutable description of the shape a value must have. Obtain
// specs from the package constructors; the zero value is unusable and
// Validate panics on it. A constructed Spec holds no mutable state and is
// safe for concurrent use by any number of goroutines.
type Spec struct {
	nullable bool
	pred     Predicate
	v        variant
}

// Kind reports the spec's variant kind.
func (s *Spec) Kind() Kind {
	return s.v.kind()
}

// Nullable reports whether the spec accepts nil values.
func (s *Spec) Nullable() bool {
	return s.nullable
}

// maxDepth caps value nesting during validation so hostile deeply-nested
// input cannot exhaust the call stack.
const maxDepth = 1000

// Validate checks value against the spec. It returns nil when the value
// conforms, or a Violations error describing every offending location.
// Validation is a pure function of (value, spec): repeated calls with the
// same input always produce the same result.
func (s *Spec) Validate(value any) error {
	return s.validate(value, 0)
}

func (s *Spec) validate(value any, depth int) error {
	if s == nil || s.v == nil {
		panic("spec: Validate called on an unconstructed Spec")
	}
	if depth > maxDepth {
		return Violations{{Message: "exceeds maximum nesting depth"}}
	}
	if value == nil {
		if s.nullable {
			return nil
		}
		return Violations{{Message: "cannot be nil"}}
	}
	if err := s.v.check(value, depth); err != nil {
		return err
	}
	if s.pred != nil {
		if err := s.pred(value); err != nil {
			msg := err.Error()
			if msg == "" {
				msg = "invalid"
			}
			return Violations{{Message: msg}}
		}
	}
	return nil
}

// recurse validates value against child and folds any failure into vs keyed
// by seg: a flat failure becomes a one-entry path {seg: message}; a nested
// failure has seg prepended to every violation path, once per ancestor.
func recurse(vs Violations, seg Segment, child *Spec, value any, depth int) Violations {
	err := child.validate(value, depth+1)
	if err == nil {
		return vs
	}

	var cvs Violations
	if !errors.As(err, &cvs) {
		return append(vs, Violation{Path: Path{seg}, Message: err.Error()})
	}
	for _, cv := range cvs {
		p := make(Path, 0, len(cv.Path)+1)
		p = append(p, seg)
		p = append(p, cv.Path...)
		vs = append(vs, Violation{Path: p, Message: cv.Message})
	}
	return vs
}

// typeMessage composes a variant's base failure message. Nullable specs
// carry the "if not nil, " prefix since nil was already acceptable by the
// time the variant check runs.
func typeMessage(base string, nullable bool) string {
	if nullable {
		return "if not nil, " + base
	}
	return base
}

// probeChild reports whether a child spec was produced by a constructor.
func probeChild(s *Spec) bool {
	return s != nil && s.v != nil
}

func must(s *Spec, err error) *Spec {
	if err != nil {
		panic(err)
	}
	return s
}
